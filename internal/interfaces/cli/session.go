// Package cli sesión interactiva de la caja: cada línea de entrada es una acción del usuario
// (calcular, descuento, exportar, imprimir, reiniciar, buscar...). Las acciones se atienden
// una a una; ningún error termina la sesión.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/electricity-billing/internal/application/billing"
	"github.com/jhoicas/electricity-billing/internal/domain"
	"github.com/jhoicas/electricity-billing/internal/domain/entity"
	"github.com/jhoicas/electricity-billing/pkg/logger"
)

const prompt = "> "

const helpText = `Comandos:
  name <texto>        nombre del cliente
  type <tipo>         Residential | Commercial | Industrial
  units <n>           unidades consumidas
  calculate           calcular factura
  discount            aplicar descuento EWS (10%)
  export              agregar el registro al archivo
  print               mostrar resumen
  pdf [ruta]          guardar recibo PDF
  reset               nueva factura
  search <nombre>     buscar y cargar registro
  bpl                 exención BPL
  show                ver la factura actual
  help                esta ayuda
  exit                salir
`

// Session estado de una sesión interactiva: solo el borrador actual.
type Session struct {
	uc     *billing.DeskUseCase
	in     io.Reader
	out    io.Writer
	pdfDir string
	log    *logger.Logger

	draft entity.BillDraft
}

// NewSession construye la sesión con un borrador nuevo.
func NewSession(uc *billing.DeskUseCase, in io.Reader, out io.Writer, pdfDir string, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{uc: uc, in: in, out: out, pdfDir: pdfDir, log: log.Named("cli"), draft: uc.NewDraft()}
}

// Draft borrador actual.
func (s *Session) Draft() entity.BillDraft { return s.draft }

// Run atiende comandos hasta "exit" o fin de la entrada.
func (s *Session) Run(ctx context.Context) error {
	s.printf("Caja de facturación eléctrica. Escriba 'help' para ver los comandos.\n")
	s.show()
	r := bufio.NewReader(s.in)
	for {
		s.printf(prompt)
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("leer entrada: %w", err)
		}
		if line == "" && err != nil {
			return nil
		}
		cmd, arg := splitCommand(strings.TrimRight(line, "\r\n"))
		if cmd == "exit" || cmd == "quit" {
			s.printf("Hasta luego.\n")
			return nil
		}
		if cmd != "" {
			s.dispatch(ctx, cmd, arg)
		}
		if err != nil {
			return nil
		}
	}
}

func (s *Session) dispatch(ctx context.Context, cmd, arg string) {
	switch cmd {
	case "name":
		s.draft = s.uc.SetCustomer(s.draft, arg)
	case "type":
		ct, ok := parseConnectionType(arg)
		if !ok {
			s.printf("Tipo de conexión no válido: %q\n", arg)
			return
		}
		s.draft = s.uc.SetConnectionType(s.draft, ct)
	case "units":
		s.draft = s.uc.SetUnits(s.draft, arg)
	case "calculate":
		d, err := s.uc.Calculate(s.draft)
		s.draft = d
		if s.report(err) {
			s.show()
		}
	case "discount":
		d, err := s.uc.ApplyDiscount(s.draft)
		s.draft = d
		if s.report(err) {
			s.printf("Descuento del 10%% aplicado.\n")
			s.show()
		}
	case "export":
		if s.report(s.uc.Export(ctx, s.draft)) {
			s.printf("Datos exportados correctamente.\n")
		}
	case "print":
		s.printf("%s", s.uc.Print(s.draft))
	case "pdf":
		s.savePDF(ctx, arg)
	case "reset":
		s.draft = s.uc.Reset()
		s.show()
	case "search":
		if arg == "" {
			s.printf("Ingrese un nombre para buscar.\n")
			return
		}
		d, err := s.uc.Search(ctx, arg)
		if s.report(err) {
			s.draft = d
			s.printf("Datos cargados para: %s\n", arg)
			s.show()
		}
	case "bpl":
		s.printf("Exención BPL: %s\n", s.uc.BPLExemption())
	case "show":
		s.show()
	case "help":
		s.printf("%s", helpText)
	default:
		s.printf("Comando desconocido: %q (escriba 'help')\n", cmd)
	}
}

func (s *Session) savePDF(ctx context.Context, path string) {
	doc, filename, err := s.uc.PrintPDF(ctx, s.draft)
	if !s.report(err) {
		return
	}
	if path == "" {
		path = filepath.Join(s.pdfDir, filename)
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("guardar recibo PDF")
		s.printf("Error: no se pudo guardar %s: %v\n", path, err)
		return
	}
	s.printf("Recibo guardado en %s\n", path)
}

// report muestra el error al usuario; devuelve true si no hubo error.
func (s *Session) report(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, domain.ErrBillNotCalculated):
		s.printf("Primero calcule la factura.\n")
	case errors.Is(err, domain.ErrInvalidInput):
		s.printf("Entrada inválida. Ingrese números válidos.\n")
	case errors.Is(err, domain.ErrNotFound) && errors.Is(err, domain.ErrStoreUnavailable):
		s.printf("Archivo de registros no encontrado.\nNombre no encontrado.\n")
	case errors.Is(err, domain.ErrNotFound):
		s.printf("Nombre no encontrado.\n")
	default:
		s.printf("Error: %v\n", err)
	}
	return false
}

func (s *Session) show() {
	s.printf("%s", s.uc.Print(s.draft))
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// splitCommand separa la palabra de comando (en minúsculas) del resto de la línea.
func splitCommand(line string) (cmd, arg string) {
	line = strings.TrimSpace(line)
	cmd, arg, _ = strings.Cut(line, " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

func parseConnectionType(s string) (entity.ConnectionType, bool) {
	for _, ct := range entity.ConnectionTypes {
		if strings.EqualFold(string(ct), s) {
			return ct, true
		}
	}
	return "", false
}
