package repository

import (
	"context"

	"github.com/jhoicas/electricity-billing/internal/domain/entity"
)

//go:generate mockgen -source=bill_log.go -destination=../../mocks/repository/bill_log_mock.go -package=mock_repository

// BillLog define el puerto de persistencia append-only de registros de facturación.
// No existe actualización ni borrado: editar un registro ya exportado produce un duplicado.
type BillLog interface {
	// Append agrega el registro al final del log (crea el almacén si no existe).
	Append(ctx context.Context, record *entity.BillingRecord) error
	// Scan recorre los registros en orden de inserción hasta que fn devuelva false.
	Scan(ctx context.Context, fn func(record *entity.BillingRecord) bool) error
}
