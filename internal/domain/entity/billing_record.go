package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConnectionType categoría del servicio eléctrico; determina la tarifa por unidad.
type ConnectionType string

const (
	ConnectionResidential ConnectionType = "Residential"
	ConnectionCommercial  ConnectionType = "Commercial"
	ConnectionIndustrial  ConnectionType = "Industrial"
)

// ConnectionTypes lista en el orden en que se ofrecen al usuario (el primero es el valor por defecto).
var ConnectionTypes = []ConnectionType{ConnectionResidential, ConnectionCommercial, ConnectionIndustrial}

// BillingDateLayout formato de la fecha de facturación (texto y archivo).
const BillingDateLayout = "2006-01-02"

// BillingRecord representa un registro de facturación persistido en el log de facturas.
// BillAmount y TotalAmount solo los asigna el calculador de tarifas.
type BillingRecord struct {
	CustomerID     string
	CustomerName   string
	ConnectionType ConnectionType
	BillingDate    time.Time
	UnitsConsumed  int
	BillAmount     decimal.Decimal
	TotalAmount    decimal.Decimal
}

// BillDraft es la factura en edición de una sesión: el registro más el texto de unidades
// tal como lo escribió el usuario y las banderas de descuento y cálculo.
type BillDraft struct {
	Record          BillingRecord
	UnitsInput      string
	DiscountApplied bool
	Calculated      bool // true tras al menos un cálculo exitoso
}

// Complete indica si el borrador ya puede exportarse.
func (d BillDraft) Complete() bool {
	return d.Calculated
}
