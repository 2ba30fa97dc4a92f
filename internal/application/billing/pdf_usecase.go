package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/electricity-billing/internal/domain"
	"github.com/jhoicas/electricity-billing/internal/domain/entity"
)

// PrintPDF genera el recibo PDF del borrador.
//
// Retorna:
//   - (pdfBytes, filename, nil)       si todo sale bien.
//   - domain.ErrBillNotCalculated     si el borrador aún no tiene montos.
func (uc *DeskUseCase) PrintPDF(ctx context.Context, d entity.BillDraft) (pdfBytes []byte, filename string, err error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("pdf: generador no configurado")
	}
	if !d.Complete() {
		return nil, "", domain.ErrBillNotCalculated
	}

	pdfBytes, err = uc.pdf.GenerateBillPDF(ctx, &d.Record, ReceiptMeta{
		Issuer:          uc.cfg.Issuer,
		CurrencySymbol:  uc.cfg.CurrencySymbol,
		DiscountApplied: d.DiscountApplied,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("recibo_%s.pdf", d.Record.CustomerID)
	uc.logger.Info().Str("customer_id", d.Record.CustomerID).Str("file", filename).Msg("recibo PDF generado")
	return pdfBytes, filename, nil
}
