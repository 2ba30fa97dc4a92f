package billing

import (
	"context"

	"github.com/jhoicas/electricity-billing/internal/domain/entity"
)

// ReceiptMeta datos de presentación que acompañan al registro en el recibo.
type ReceiptMeta struct {
	Issuer          string // nombre de la aplicación / empresa emisora
	CurrencySymbol  string
	DiscountApplied bool
}

// BillPDFGenerator genera la representación PDF de una factura calculada.
type BillPDFGenerator interface {
	GenerateBillPDF(ctx context.Context, record *entity.BillingRecord, meta ReceiptMeta) ([]byte, error)
}
