package flatfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/jhoicas/electricity-billing/internal/domain"
	"github.com/jhoicas/electricity-billing/internal/domain/entity"
	"github.com/jhoicas/electricity-billing/internal/domain/repository"
	"github.com/jhoicas/electricity-billing/pkg/logger"
)

var _ repository.BillLog = (*BillLog)(nil)

// BillLog implementación de repository.BillLog sobre un archivo de texto.
// El archivo se abre y se cierra en cada operación; no hay bloqueo entre escritores.
type BillLog struct {
	path           string
	currencySymbol string
	log            *logger.Logger
}

// NewBillLog construye el adaptador. El archivo se crea en el primer Append.
func NewBillLog(path, currencySymbol string, log *logger.Logger) *BillLog {
	if log == nil {
		log = logger.Nop()
	}
	return &BillLog{path: path, currencySymbol: currencySymbol, log: log.Named("flatfile")}
}

// Path ruta del archivo.
func (l *BillLog) Path() string { return l.path }

// Append agrega una línea al final del archivo.
func (l *BillLog) Append(_ context.Context, record *entity.BillingRecord) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: abrir %s: %v", domain.ErrStoreUnavailable, l.path, err)
	}
	if _, err := f.WriteString(EncodeLine(record)); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrStoreUnavailable, l.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: cerrar %s: %v", domain.ErrStoreUnavailable, l.path, err)
	}
	return nil
}

// Scan lee el archivo desde el inicio. Si el archivo no existe devuelve un error que es a la vez
// domain.ErrNotFound y domain.ErrStoreUnavailable. Las líneas mal formadas se omiten.
func (l *BillLog) Scan(ctx context.Context, fn func(record *entity.BillingRecord) bool) error {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w: %s no existe", domain.ErrNotFound, domain.ErrStoreUnavailable, l.path)
		}
		return fmt.Errorf("%w: abrir %s: %v", domain.ErrStoreUnavailable, l.path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	lineNo := 0
	for {
		line, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("%w: leer %s: %v", domain.ErrStoreUnavailable, l.path, readErr)
		}
		if line == "" && readErr != nil {
			return nil
		}
		lineNo++
		if err := ctx.Err(); err != nil {
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			rec, err := DecodeLine(line, l.currencySymbol)
			if err != nil {
				l.log.Warn().Err(err).Str("path", l.path).Int("line", lineNo).Msg("línea omitida")
			} else if !fn(rec) {
				return nil
			}
		}
		if readErr != nil {
			return nil
		}
	}
}
