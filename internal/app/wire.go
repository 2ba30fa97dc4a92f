// Package app arma la caja de facturación a partir de la configuración (compartido por cmd/api y cmd/billing).
package app

import (
	"context"
	"fmt"

	"github.com/jhoicas/electricity-billing/internal/application/billing"
	"github.com/jhoicas/electricity-billing/internal/domain/repository"
	"github.com/jhoicas/electricity-billing/internal/domain/tariff"
	"github.com/jhoicas/electricity-billing/internal/infrastructure/flatfile"
	infrapdf "github.com/jhoicas/electricity-billing/internal/infrastructure/pdf"
	"github.com/jhoicas/electricity-billing/internal/infrastructure/postgres"
	"github.com/jhoicas/electricity-billing/pkg/config"
	"github.com/jhoicas/electricity-billing/pkg/logger"
)

// NewBillLog construye el log de facturas según STORE_DRIVER. cleanup libera la conexión si la hay.
func NewBillLog(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.BillLog, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Str("driver", cfg.Store.Driver).Msg("log de facturas en PostgreSQL")
		return postgres.NewBillLog(pool), pool.Close, nil
	default:
		log.Info().Str("driver", cfg.Store.Driver).Str("path", cfg.Store.Path).Msg("log de facturas en archivo")
		return flatfile.NewBillLog(cfg.Store.Path, cfg.Bill.CurrencySymbol, log), func() {}, nil
	}
}

// NewDesk construye el caso de uso de la caja con todas sus dependencias.
func NewDesk(ctx context.Context, cfg *config.Config, log *logger.Logger) (*billing.DeskUseCase, func(), error) {
	billLog, cleanup, err := NewBillLog(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	desk := billing.NewDeskUseCase(
		billLog,
		tariff.NewCustomerIDGenerator(cfg.Bill.IDPrefix),
		infrapdf.NewMarotoBillPDF(),
		billing.DeskConfig{
			Issuer:         cfg.App.Name,
			CurrencySymbol: cfg.Bill.CurrencySymbol,
		},
		log,
	)
	return desk, cleanup, nil
}
