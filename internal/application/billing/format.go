package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/electricity-billing/internal/domain/entity"
)

const summaryRule = "──────────────────────────────"

// FormatAmount monto con símbolo de moneda y dos decimales, ej. ₹590.00.
func FormatAmount(symbol string, d decimal.Decimal) string {
	return symbol + d.StringFixed(2)
}

// FormatSummary resumen textual de la factura (acción "imprimir").
// Mientras no se haya calculado, los montos salen vacíos.
func FormatSummary(d entity.BillDraft, currencySymbol string) string {
	bill, total := "", ""
	if d.Calculated {
		bill = FormatAmount(currencySymbol, d.Record.BillAmount)
		total = FormatAmount(currencySymbol, d.Record.TotalAmount)
	}
	date := ""
	if !d.Record.BillingDate.IsZero() {
		date = d.Record.BillingDate.Format(entity.BillingDateLayout)
	}

	var b strings.Builder
	b.WriteString("Factura de electricidad\n")
	b.WriteString(summaryRule + "\n")
	fmt.Fprintf(&b, "ID cliente: %s\n", d.Record.CustomerID)
	fmt.Fprintf(&b, "Nombre:     %s\n", d.Record.CustomerName)
	fmt.Fprintf(&b, "Conexión:   %s\n", d.Record.ConnectionType)
	fmt.Fprintf(&b, "Fecha:      %s\n", date)
	fmt.Fprintf(&b, "Unidades:   %s\n", d.UnitsInput)
	fmt.Fprintf(&b, "Monto:      %s\n", bill)
	fmt.Fprintf(&b, "Total:      %s\n", total)
	if d.DiscountApplied {
		b.WriteString("Descuento EWS 10% aplicado\n")
	}
	b.WriteString(summaryRule + "\n")
	return b.String()
}
