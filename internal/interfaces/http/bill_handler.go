package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electricity-billing/internal/application/billing"
	"github.com/jhoicas/electricity-billing/internal/application/dto"
	"github.com/jhoicas/electricity-billing/internal/domain"
	"github.com/jhoicas/electricity-billing/internal/domain/entity"
)

// BillHandler maneja las peticiones HTTP de la caja de facturación.
type BillHandler struct {
	uc *billing.DeskUseCase
}

// NewBillHandler construye el handler.
func NewBillHandler(uc *billing.DeskUseCase) *BillHandler {
	return &BillHandler{uc: uc}
}

// Quote calcula montos sin persistir.
// POST /api/bills/quote
func (h *BillHandler) Quote(c *fiber.Ctx) error {
	d, err := h.draftFromBody(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.QuoteResponse{BillAmount: d.Record.BillAmount, TotalAmount: d.Record.TotalAmount})
}

// Create calcula y agrega el registro al log.
// POST /api/bills
func (h *BillHandler) Create(c *fiber.Ctx) error {
	d, err := h.draftFromBody(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Export(c.Context(), d); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.toResponse(d))
}

// Search busca el primer registro por nombre (sin distinguir mayúsculas).
// GET /api/bills/search?name=Asha
func (h *BillHandler) Search(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name requerido"})
	}
	d, err := h.uc.Search(c.Context(), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.toResponse(d))
}

// Print devuelve el resumen textual de la factura.
// POST /api/bills/print
func (h *BillHandler) Print(c *fiber.Ctx) error {
	d, err := h.draftFromBody(c)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(h.uc.Print(d))
}

// PDF devuelve el recibo en PDF.
// POST /api/bills/pdf
func (h *BillHandler) PDF(c *fiber.Ctx) error {
	d, err := h.draftFromBody(c)
	if err != nil {
		return writeError(c, err)
	}
	doc, filename, err := h.uc.PrintPDF(c.Context(), d)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(doc)
}

// BPLExemption respuesta fija de exención BPL.
// GET /api/bills/bpl-exemption
func (h *BillHandler) BPLExemption(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: h.uc.BPLExemption()})
}

// draftFromBody arma y calcula un borrador con los datos del body.
func (h *BillHandler) draftFromBody(c *fiber.Ctx) (entity.BillDraft, error) {
	var in dto.BillRequest
	if err := c.BodyParser(&in); err != nil {
		return entity.BillDraft{}, fmt.Errorf("%w: cuerpo inválido", domain.ErrInvalidInput)
	}
	d := h.uc.NewDraft()
	d = h.uc.SetCustomer(d, in.CustomerName)
	if in.ConnectionType != "" {
		d = h.uc.SetConnectionType(d, entity.ConnectionType(in.ConnectionType))
	}
	d = h.uc.SetUnits(d, in.Units)
	if in.Discount {
		return h.uc.ApplyDiscount(d)
	}
	return h.uc.Calculate(d)
}

func (h *BillHandler) toResponse(d entity.BillDraft) dto.BillResponse {
	symbol := h.uc.CurrencySymbol()
	return dto.BillResponse{
		CustomerID:      d.Record.CustomerID,
		CustomerName:    d.Record.CustomerName,
		ConnectionType:  string(d.Record.ConnectionType),
		BillingDate:     d.Record.BillingDate.Format(entity.BillingDateLayout),
		UnitsConsumed:   d.Record.UnitsConsumed,
		BillAmount:      d.Record.BillAmount,
		TotalAmount:     d.Record.TotalAmount,
		DiscountApplied: d.DiscountApplied,
		Display: dto.DisplayAmounts{
			BillAmount:  billing.FormatAmount(symbol, d.Record.BillAmount),
			TotalAmount: billing.FormatAmount(symbol, d.Record.TotalAmount),
		},
	}
}

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	case errors.Is(err, domain.ErrStoreUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
