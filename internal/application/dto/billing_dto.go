package dto

import "github.com/shopspring/decimal"

// BillRequest body para POST /api/bills, /api/bills/quote, /api/bills/print y /api/bills/pdf.
// Units va como texto: se interpreta igual que el campo del formulario (entero, sin recortes).
type BillRequest struct {
	CustomerName   string `json:"customer_name,omitempty"`
	ConnectionType string `json:"connection_type,omitempty"` // Residential (por defecto), Commercial, Industrial
	Units          string `json:"units"`
	Discount       bool   `json:"discount,omitempty"` // descuento EWS 10%
}

// QuoteResponse montos derivados para POST /api/bills/quote.
type QuoteResponse struct {
	BillAmount  decimal.Decimal `json:"bill_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// BillResponse registro de facturación en respuestas.
type BillResponse struct {
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	ConnectionType  string          `json:"connection_type"`
	BillingDate     string          `json:"billing_date"`
	UnitsConsumed   int             `json:"units_consumed"`
	BillAmount      decimal.Decimal `json:"bill_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	DiscountApplied bool            `json:"discount_applied"`
	Display         DisplayAmounts  `json:"display"`
}

// DisplayAmounts montos formateados con símbolo de moneda (₹590.00).
type DisplayAmounts struct {
	BillAmount  string `json:"bill_amount"`
	TotalAmount string `json:"total_amount"`
}
