package billing

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"

	"github.com/jhoicas/electricity-billing/internal/domain"
	"github.com/jhoicas/electricity-billing/internal/domain/entity"
	"github.com/jhoicas/electricity-billing/internal/domain/repository"
)

// FindByName recorre el log desde el inicio y devuelve el primer registro cuyo nombre coincide
// sin distinguir mayúsculas (case folding Unicode). No hay índice: cada búsqueda es lineal.
//
// Retorna domain.ErrNotFound si no hay coincidencias o el almacén no existe.
func FindByName(ctx context.Context, log repository.BillLog, name string) (*entity.BillingRecord, error) {
	fold := cases.Fold()
	want := fold.String(name)

	var found *entity.BillingRecord
	err := log.Scan(ctx, func(r *entity.BillingRecord) bool {
		if fold.String(r.CustomerName) == want {
			found = r
			return false
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("buscar %q: %w", name, err)
	}
	if found == nil {
		return nil, fmt.Errorf("buscar %q: %w", name, domain.ErrNotFound)
	}
	return found, nil
}
