// Package pdf genera el recibo PDF de una factura eléctrica.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────┐
//	│  HEADER: Emisor        │  ID + Fecha       │
//	│  ───────────────────────────────────────  │
//	│  CLIENTE: Nombre + tipo de conexión       │
//	│  ───────────────────────────────────────  │
//	│  DETALLE: Unidades | Tarifa | Monto       │
//	│  TOTALES: Impuesto / Cargo / Descuento    │
//	│           TOTAL A PAGAR                   │
//	│  ───────────────────────────────────────  │
//	│  FOOTER: QR (ID|fecha|total) + leyenda    │
//	└───────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/jhoicas/electricity-billing/internal/application/billing"
	"github.com/jhoicas/electricity-billing/internal/domain/entity"
	"github.com/jhoicas/electricity-billing/internal/domain/tariff"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbilling.BillPDFGenerator = (*MarotoBillPDF)(nil)

// MarotoBillPDF implementa billing.BillPDFGenerator usando Maroto v2.
type MarotoBillPDF struct{}

// NewMarotoBillPDF construye el generador.
func NewMarotoBillPDF() *MarotoBillPDF { return &MarotoBillPDF{} }

// GenerateBillPDF genera el PDF y devuelve sus bytes.
func (g *MarotoBillPDF) GenerateBillPDF(
	_ context.Context,
	record *entity.BillingRecord,
	meta appbilling.ReceiptMeta,
) ([]byte, error) {
	if record == nil {
		return nil, fmt.Errorf("pdf: registro nil")
	}
	issuer := nonEmpty(meta.Issuer, "Electricity Billing")
	money := moneyFormatter(meta.CurrencySymbol)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de electricidad "+record.CustomerID, true).
		WithAuthor(issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(record, issuer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(record))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailRows(record, money)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(record, meta.DiscountApplied, money))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(record))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: emisor (izq) e ID + fecha (der).
func headerRow(record *entity.BillingRecord, issuer string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(latin1(issuer), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("RECIBO DE ELECTRICIDAD", props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(latin1(record.CustomerID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+record.BillingDate.Format(entity.BillingDateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// customerRow: nombre del cliente y tipo de conexión.
func customerRow(record *entity.BillingRecord) core.Row {
	return row.New(13).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(latin1(nonEmpty(record.CustomerName, "-")), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5,
			}),
			text.New("Conexión: "+string(record.ConnectionType), props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
	)
}

// detailRows: cabecera y una única línea de consumo.
func detailRows(record *entity.BillingRecord, money func(decimal.Decimal) string) []core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	v := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return []core.Row{
		row.New(7).Add(
			h("Unidades", 4, align.Left),
			h("Tarifa", 4, align.Center),
			h("Monto", 4, align.Right),
		),
		row.New(7).Add(
			v(strconv.Itoa(record.UnitsConsumed), 4, align.Left),
			v(money(tariff.Rate(record.ConnectionType)), 4, align.Center),
			v(money(record.BillAmount), 4, align.Right),
		),
	}
}

// totalsRow: impuesto, cargo fijo, descuento y total.
func totalsRow(record *entity.BillingRecord, discount bool, money func(decimal.Decimal) string) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: top, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 8, Align: align.Right, Top: top})
	}

	tax := record.BillAmount.Mul(tariff.TaxRate).Round(2)
	discountText := "No"
	if discount {
		discountText = "10% (EWS)"
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Impuesto 8%:", 1),
			label("Cargo de servicio:", 6),
			label("Descuento:", 11),
			text.New("TOTAL A PAGAR:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 17, Right: 2,
			}),
		),
		col.New(4).Add(
			value(money(tax), 1),
			value(money(tariff.ServiceCharge), 6),
			value(discountText, 11),
			text.New(money(record.TotalAmount), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 17,
			}),
		),
	)
}

// footerRow: QR con ID|fecha|total y leyenda.
func footerRow(record *entity.BillingRecord) core.Row {
	qr := strings.Join([]string{
		record.CustomerID,
		record.BillingDate.Format(entity.BillingDateLayout),
		record.TotalAmount.StringFixed(2),
	}, "|")
	return row.New(35).Add(
		col.New(4).Add(code.NewQr(qr, props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(
			text.New("Conserve este recibo como comprobante de pago.", props.Text{
				Size: 8, Top: 6, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// moneyFormatter usa el símbolo si la fuente estándar puede dibujarlo (Latin-1);
// si no (ej. ₹), usa el código textual.
func moneyFormatter(symbol string) func(decimal.Decimal) string {
	prefix := symbol
	if latin1(symbol) != symbol {
		prefix = currencyFallback(symbol)
	}
	return func(d decimal.Decimal) string {
		return prefix + d.StringFixed(2)
	}
}

func currencyFallback(symbol string) string {
	switch symbol {
	case "₹":
		return "Rs. "
	case "€":
		return "EUR "
	default:
		return ""
	}
}

// latin1 elimina runas fuera de Latin-1: las fuentes core del PDF no las soportan.
func latin1(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFF {
			return -1
		}
		return r
	}, s)
}
