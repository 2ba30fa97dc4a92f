// Package tariff contiene la lógica pura de facturación eléctrica: tarifa por tipo de
// conexión, impuesto, cargo de servicio, descuento EWS y generación del ID de cliente.
package tariff

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/electricity-billing/internal/domain"
	"github.com/jhoicas/electricity-billing/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var (
	rateResidential = decimal.RequireFromString("5.0")
	rateCommercial  = decimal.RequireFromString("7.5")
	rateDefault     = decimal.RequireFromString("10.0")

	// TaxRate impuesto plano sobre el monto de la factura.
	TaxRate = decimal.RequireFromString("0.08")
	// ServiceCharge cargo fijo de servicio sumado después del impuesto.
	ServiceCharge = decimal.RequireFromString("50.00")
	// DiscountFactor descuento EWS del 10% sobre el total ya gravado.
	DiscountFactor = decimal.RequireFromString("0.9")
)

// Quote montos derivados de una factura.
type Quote struct {
	BillAmount  decimal.Decimal
	TotalAmount decimal.Decimal
}

// Rate devuelve la tarifa por unidad. Cualquier tipo no reconocido paga la tarifa industrial.
func Rate(ct entity.ConnectionType) decimal.Decimal {
	switch ct {
	case entity.ConnectionResidential:
		return rateResidential
	case entity.ConnectionCommercial:
		return rateCommercial
	default:
		return rateDefault
	}
}

// Calculate calcula el monto de la factura y el total a pagar.
//
//	bill  = units * rate
//	total = bill + bill*0.08 + 50      (x 0.9 si hay descuento)
//
// Los montos se redondean a 2 decimales. Unidades negativas no se rechazan.
func Calculate(units int, ct entity.ConnectionType, discountApplied bool) Quote {
	bill := decimal.NewFromInt(int64(units)).Mul(Rate(ct))
	tax := bill.Mul(TaxRate)
	total := bill.Add(tax).Add(ServiceCharge)
	if discountApplied {
		total = total.Mul(DiscountFactor)
	}
	return Quote{
		BillAmount:  bill.Round(2),
		TotalAmount: total.Round(2),
	}
}

// ParseUnits interpreta el texto de unidades consumidas como entero (sin recortar espacios).
func ParseUnits(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: unidades consumidas %q no es un número entero", domain.ErrInvalidInput, text)
	}
	return n, nil
}

// Apply recalcula los montos del registro a partir de sus unidades y tipo de conexión.
func Apply(record *entity.BillingRecord, discountApplied bool) {
	q := Calculate(record.UnitsConsumed, record.ConnectionType, discountApplied)
	record.BillAmount = q.BillAmount
	record.TotalAmount = q.TotalAmount
}
