package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/electricity-billing/internal/application/billing"
	"github.com/jhoicas/electricity-billing/internal/domain/entity"
)

func TestGenerateBillPDF(t *testing.T) {
	rec := &entity.BillingRecord{
		CustomerID:     "CUST42",
		CustomerName:   "Asha Rao",
		ConnectionType: entity.ConnectionResidential,
		BillingDate:    time.Date(2026, 10, 15, 0, 0, 0, 0, time.Local),
		UnitsConsumed:  100,
		BillAmount:     decimal.RequireFromString("500"),
		TotalAmount:    decimal.RequireFromString("531"),
	}

	doc, err := NewMarotoBillPDF().GenerateBillPDF(context.Background(), rec, appbilling.ReceiptMeta{
		Issuer: "electricity-billing", CurrencySymbol: "₹", DiscountApplied: true,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerateBillPDF_RegistroNil(t *testing.T) {
	_, err := NewMarotoBillPDF().GenerateBillPDF(context.Background(), nil, appbilling.ReceiptMeta{})
	assert.Error(t, err)
}

func TestMoneyFormatter(t *testing.T) {
	d := decimal.RequireFromString("590")
	assert.Equal(t, "Rs. 590.00", moneyFormatter("₹")(d))
	assert.Equal(t, "$590.00", moneyFormatter("$")(d))
	assert.Equal(t, "£590.00", moneyFormatter("£")(d))
}

func TestLatin1(t *testing.T) {
	assert.Equal(t, "José", latin1("José"))
	assert.Equal(t, "Asha ", latin1("Asha ⚡"))
}
