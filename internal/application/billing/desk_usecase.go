// Package billing casos de uso de la caja de facturación eléctrica. Cada acción del usuario
// recibe el borrador actual (entity.BillDraft) y devuelve el nuevo; no hay estado compartido.
package billing

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/electricity-billing/internal/domain"
	"github.com/jhoicas/electricity-billing/internal/domain/entity"
	"github.com/jhoicas/electricity-billing/internal/domain/repository"
	"github.com/jhoicas/electricity-billing/internal/domain/tariff"
	"github.com/jhoicas/electricity-billing/pkg/logger"
)

// BPLExemptionMessage respuesta fija para la categoría BPL (bajo la línea de pobreza).
const BPLExemptionMessage = "No tiene que pagar la factura."

// DeskConfig parámetros de la caja.
type DeskConfig struct {
	Issuer         string
	CurrencySymbol string
	Now            func() time.Time // nil = time.Now
}

// DeskUseCase acciones de la caja: calcular, descuento, exportar, imprimir, reiniciar, buscar.
type DeskUseCase struct {
	log    repository.BillLog
	ids    *tariff.CustomerIDGenerator
	pdf    BillPDFGenerator
	cfg    DeskConfig
	logger *logger.Logger
}

// NewDeskUseCase construye el caso de uso inyectando sus dependencias. pdf puede ser nil
// si no se requiere el recibo PDF.
func NewDeskUseCase(
	log repository.BillLog,
	ids *tariff.CustomerIDGenerator,
	pdf BillPDFGenerator,
	cfg DeskConfig,
	lg *logger.Logger,
) *DeskUseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if lg == nil {
		lg = logger.Nop()
	}
	return &DeskUseCase{log: log, ids: ids, pdf: pdf, cfg: cfg, logger: lg.Named("desk")}
}

// CurrencySymbol símbolo usado al presentar montos.
func (uc *DeskUseCase) CurrencySymbol() string { return uc.cfg.CurrencySymbol }

// NewDraft inicia una factura: ID nuevo, fecha de hoy, conexión residencial, sin descuento.
func (uc *DeskUseCase) NewDraft() entity.BillDraft {
	now := uc.cfg.Now()
	return entity.BillDraft{
		Record: entity.BillingRecord{
			CustomerID:     uc.ids.Next(),
			ConnectionType: entity.ConnectionTypes[0],
			BillingDate:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		},
	}
}

// Reset descarta el borrador actual y devuelve uno nuevo (ID y fecha regenerados).
func (uc *DeskUseCase) Reset() entity.BillDraft {
	d := uc.NewDraft()
	uc.logger.Debug().Str("customer_id", d.Record.CustomerID).Msg("borrador reiniciado")
	return d
}

// SetCustomer cambia el nombre del cliente.
func (uc *DeskUseCase) SetCustomer(d entity.BillDraft, name string) entity.BillDraft {
	d.Record.CustomerName = name
	return d
}

// SetConnectionType cambia el tipo de conexión. Si el borrador ya estaba calculado, los montos
// se rederivan de las unidades ya interpretadas para que sigan correspondiendo al tipo.
func (uc *DeskUseCase) SetConnectionType(d entity.BillDraft, ct entity.ConnectionType) entity.BillDraft {
	if d.Record.ConnectionType == ct {
		return d
	}
	d.Record.ConnectionType = ct
	if d.Calculated {
		tariff.Apply(&d.Record, d.DiscountApplied)
	}
	return d
}

// SetUnits guarda el texto de unidades tal cual; se interpreta al calcular.
func (uc *DeskUseCase) SetUnits(d entity.BillDraft, text string) entity.BillDraft {
	d.UnitsInput = text
	return d
}

// Calculate interpreta las unidades y deriva monto y total. Si las unidades no son un entero
// devuelve el borrador sin cambios y un error domain.ErrInvalidInput.
func (uc *DeskUseCase) Calculate(d entity.BillDraft) (entity.BillDraft, error) {
	units, err := tariff.ParseUnits(d.UnitsInput)
	if err != nil {
		uc.logger.Warn().Str("units", d.UnitsInput).Msg("unidades inválidas")
		return d, err
	}
	d.Record.UnitsConsumed = units
	tariff.Apply(&d.Record, d.DiscountApplied)
	d.Calculated = true
	uc.logger.Debug().
		Str("customer_id", d.Record.CustomerID).
		Str("connection_type", string(d.Record.ConnectionType)).
		Int("units", units).
		Bool("discount", d.DiscountApplied).
		Str("total", d.Record.TotalAmount.StringFixed(2)).
		Msg("factura calculada")
	return d, nil
}

// ApplyDiscount activa el descuento EWS (no se puede desactivar salvo con Reset) y recalcula.
// Si el recálculo falla, la bandera queda activa y los montos no cambian.
func (uc *DeskUseCase) ApplyDiscount(d entity.BillDraft) (entity.BillDraft, error) {
	d.DiscountApplied = true
	return uc.Calculate(d)
}

// Export agrega el registro al log. Exportar dos veces el mismo borrador produce un duplicado.
//
// Retorna:
//   - domain.ErrBillNotCalculated si el borrador aún no se calculó.
//   - domain.ErrStoreUnavailable  si el almacén no se pudo escribir.
func (uc *DeskUseCase) Export(ctx context.Context, d entity.BillDraft) error {
	if !d.Complete() {
		return domain.ErrBillNotCalculated
	}
	if err := uc.log.Append(ctx, &d.Record); err != nil {
		uc.logger.Error().Err(err).Str("customer_id", d.Record.CustomerID).Msg("exportar factura")
		return fmt.Errorf("exportar factura: %w", err)
	}
	uc.logger.Info().
		Str("customer_id", d.Record.CustomerID).
		Str("total", d.Record.TotalAmount.StringFixed(2)).
		Msg("factura exportada")
	return nil
}

// Print devuelve el resumen textual del borrador.
func (uc *DeskUseCase) Print(d entity.BillDraft) string {
	return FormatSummary(d, uc.cfg.CurrencySymbol)
}

// Search carga en un borrador el primer registro cuyo nombre coincide (sin distinguir mayúsculas).
func (uc *DeskUseCase) Search(ctx context.Context, name string) (entity.BillDraft, error) {
	if name == "" {
		return entity.BillDraft{}, fmt.Errorf("%w: nombre vacío", domain.ErrInvalidInput)
	}
	rec, err := FindByName(ctx, uc.log, name)
	if err != nil {
		uc.logger.Info().Err(err).Str("name", name).Msg("búsqueda sin resultado")
		return entity.BillDraft{}, err
	}
	uc.logger.Info().Str("name", name).Str("customer_id", rec.CustomerID).Msg("registro encontrado")
	return entity.BillDraft{
		Record:          *rec,
		UnitsInput:      strconv.Itoa(rec.UnitsConsumed),
		DiscountApplied: discountInferred(rec),
		Calculated:      true,
	}, nil
}

// BPLExemption respuesta informativa fija, independiente de cualquier registro.
func (uc *DeskUseCase) BPLExemption() string {
	return BPLExemptionMessage
}

// discountInferred el archivo no guarda la bandera de descuento: se deduce del total.
func discountInferred(r *entity.BillingRecord) bool {
	plain := tariff.Calculate(r.UnitsConsumed, r.ConnectionType, false)
	discounted := tariff.Calculate(r.UnitsConsumed, r.ConnectionType, true)
	return !plain.TotalAmount.Equal(discounted.TotalAmount) && r.TotalAmount.Equal(discounted.TotalAmount)
}
