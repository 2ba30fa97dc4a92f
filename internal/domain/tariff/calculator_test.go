package tariff_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/electricity-billing/internal/domain"
	"github.com/jhoicas/electricity-billing/internal/domain/entity"
	"github.com/jhoicas/electricity-billing/internal/domain/tariff"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// TestCalculate_Residencial100 vector de referencia: 100 unidades residenciales.
func TestCalculate_Residencial100(t *testing.T) {
	q := tariff.Calculate(100, entity.ConnectionResidential, false)

	assert.True(t, dec("500.00").Equal(q.BillAmount), "bill=%s", q.BillAmount)
	assert.True(t, dec("590.00").Equal(q.TotalAmount), "total=%s", q.TotalAmount)
	assert.Equal(t, "590.00", q.TotalAmount.StringFixed(2))
}

func TestCalculate_Residencial100ConDescuento(t *testing.T) {
	q := tariff.Calculate(100, entity.ConnectionResidential, true)

	assert.True(t, dec("500.00").Equal(q.BillAmount), "el descuento no toca el monto base")
	assert.True(t, dec("531.00").Equal(q.TotalAmount), "total=%s", q.TotalAmount)
}

func TestCalculate_TarifaPorTipo(t *testing.T) {
	cases := []struct {
		name     string
		ct       entity.ConnectionType
		units    int
		discount bool
		bill     string
		total    string
	}{
		{"residencial", entity.ConnectionResidential, 10, false, "50.00", "104.00"},
		{"comercial", entity.ConnectionCommercial, 10, false, "75.00", "131.00"},
		{"industrial", entity.ConnectionIndustrial, 10, false, "100.00", "158.00"},
		{"tipo desconocido paga tarifa industrial", entity.ConnectionType("Agricola"), 10, false, "100.00", "158.00"},
		{"cero unidades solo cargo de servicio", entity.ConnectionCommercial, 0, false, "0.00", "50.00"},
		{"comercial impar con descuento redondea", entity.ConnectionCommercial, 1, true, "7.50", "52.29"},
		{"unidades negativas se aceptan", entity.ConnectionResidential, -10, false, "-50.00", "-4.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := tariff.Calculate(tc.units, tc.ct, tc.discount)
			assert.Equal(t, tc.bill, q.BillAmount.StringFixed(2))
			assert.Equal(t, tc.total, q.TotalAmount.StringFixed(2))
		})
	}
}

// TestCalculate_Propiedad total = bill*1.08 + 50 (x0.9 con descuento) para todo tipo.
func TestCalculate_Propiedad(t *testing.T) {
	for _, ct := range entity.ConnectionTypes {
		for units := 0; units <= 1000; units += 37 {
			for _, discount := range []bool{false, true} {
				q := tariff.Calculate(units, ct, discount)

				bill := decimal.NewFromInt(int64(units)).Mul(tariff.Rate(ct))
				total := bill.Mul(dec("1.08")).Add(dec("50"))
				if discount {
					total = total.Mul(dec("0.9"))
				}
				require.True(t, bill.Round(2).Equal(q.BillAmount), "%s/%d", ct, units)
				require.True(t, total.Round(2).Equal(q.TotalAmount), "%s/%d/%v", ct, units, discount)
			}
		}
	}
}

func TestParseUnits(t *testing.T) {
	n, err := tariff.ParseUnits("250")
	require.NoError(t, err)
	assert.Equal(t, 250, n)

	n, err = tariff.ParseUnits("-3")
	require.NoError(t, err, "los negativos no se validan")
	assert.Equal(t, -3, n)

	for _, bad := range []string{"", "abc", "12.5", " 10", "10kWh", "99999999999999999999"} {
		_, err := tariff.ParseUnits(bad)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "entrada %q debe ser inválida", bad)
	}
}

func TestApply(t *testing.T) {
	rec := &entity.BillingRecord{UnitsConsumed: 100, ConnectionType: entity.ConnectionIndustrial}
	tariff.Apply(rec, false)
	assert.Equal(t, "1000.00", rec.BillAmount.StringFixed(2))
	assert.Equal(t, "1130.00", rec.TotalAmount.StringFixed(2))
}
