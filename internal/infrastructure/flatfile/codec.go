// Package flatfile implementa el log de facturas sobre un archivo de texto plano:
// una línea por registro, siete campos separados por coma, sin encabezado ni escapes.
package flatfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/electricity-billing/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const (
	fieldSeparator = ","
	fieldCount     = 7
)

// ErrMalformedLine la línea no tiene el formato de un registro.
var ErrMalformedLine = errors.New("flatfile: línea mal formada")

// EncodeLine serializa el registro en el orden ID, nombre, tipo, fecha, unidades, monto, total.
// Los montos se escriben sin símbolo de moneda. Una coma en el nombre no se escapa.
func EncodeLine(r *entity.BillingRecord) string {
	fields := [fieldCount]string{
		r.CustomerID,
		r.CustomerName,
		string(r.ConnectionType),
		r.BillingDate.Format(entity.BillingDateLayout),
		strconv.Itoa(r.UnitsConsumed),
		r.BillAmount.StringFixed(2),
		r.TotalAmount.StringFixed(2),
	}
	return strings.Join(fields[:], fieldSeparator) + "\n"
}

// splitLine divide una línea (sin salto) en sus campos.
func splitLine(line string) []string {
	return strings.Split(strings.TrimRight(line, "\r\n"), fieldSeparator)
}

// DecodeLine interpreta una línea del archivo. currencySymbol se elimina de los montos
// si algún escritor lo dejó (el formato nunca lo lleva).
func DecodeLine(line, currencySymbol string) (*entity.BillingRecord, error) {
	return decodeFields(splitLine(line), currencySymbol)
}

func decodeFields(data []string, currencySymbol string) (*entity.BillingRecord, error) {
	if len(data) != fieldCount {
		return nil, fmt.Errorf("%w: %d campos, se esperaban %d", ErrMalformedLine, len(data), fieldCount)
	}
	date, err := time.ParseInLocation(entity.BillingDateLayout, data[3], time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", ErrMalformedLine, data[3])
	}
	units, err := strconv.Atoi(data[4])
	if err != nil {
		return nil, fmt.Errorf("%w: unidades %q", ErrMalformedLine, data[4])
	}
	bill, err := parseAmount(data[5], currencySymbol)
	if err != nil {
		return nil, err
	}
	total, err := parseAmount(data[6], currencySymbol)
	if err != nil {
		return nil, err
	}
	return &entity.BillingRecord{
		CustomerID:     data[0],
		CustomerName:   data[1],
		ConnectionType: entity.ConnectionType(data[2]),
		BillingDate:    date,
		UnitsConsumed:  units,
		BillAmount:     bill,
		TotalAmount:    total,
	}, nil
}

func parseAmount(s, currencySymbol string) (decimal.Decimal, error) {
	if currencySymbol != "" {
		s = strings.ReplaceAll(s, currencySymbol, "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: monto %q", ErrMalformedLine, s)
	}
	return d, nil
}
