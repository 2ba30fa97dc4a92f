package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/electricity-billing/internal/domain"
	"github.com/jhoicas/electricity-billing/internal/domain/entity"
	"github.com/jhoicas/electricity-billing/internal/domain/repository"
)

var _ repository.BillLog = (*BillLog)(nil)

// BillLog implementación de repository.BillLog sobre la tabla electricity_bills.
// La tabla solo recibe INSERT; el orden de lectura es la columna seq.
type BillLog struct {
	q Querier
}

// NewBillLog construye el adaptador. Pasar pool o tx (Querier).
func NewBillLog(q Querier) *BillLog {
	return &BillLog{q: q}
}

// Append inserta el registro al final del log.
func (r *BillLog) Append(ctx context.Context, record *entity.BillingRecord) error {
	query := `
		INSERT INTO electricity_bills
			(customer_id, customer_name, connection_type, billing_date, units_consumed, bill_amount, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		record.CustomerID, record.CustomerName, string(record.ConnectionType), record.BillingDate,
		record.UnitsConsumed, record.BillAmount.Round(2), record.TotalAmount.Round(2),
	)
	if err != nil {
		return storeErr("insert electricity_bill", err)
	}
	return nil
}

// Scan recorre los registros en orden de inserción. Si la tabla no existe devuelve
// domain.ErrNotFound junto con domain.ErrStoreUnavailable, igual que el archivo ausente.
func (r *BillLog) Scan(ctx context.Context, fn func(record *entity.BillingRecord) bool) error {
	query := `
		SELECT customer_id, customer_name, connection_type, billing_date, units_consumed, bill_amount, total_amount
		FROM electricity_bills
		ORDER BY seq`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return fmt.Errorf("%w: %w: tabla electricity_bills", domain.ErrNotFound, domain.ErrStoreUnavailable)
		}
		return storeErr("select electricity_bills", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rec entity.BillingRecord
			ct  string
		)
		if err := rows.Scan(
			&rec.CustomerID, &rec.CustomerName, &ct, &rec.BillingDate,
			&rec.UnitsConsumed, &rec.BillAmount, &rec.TotalAmount,
		); err != nil {
			return storeErr("scan electricity_bill", err)
		}
		rec.ConnectionType = entity.ConnectionType(ct)
		if !fn(&rec) {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return storeErr("iterar electricity_bills", err)
	}
	return nil
}
