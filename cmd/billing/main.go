// billing abre la caja de facturación eléctrica en la terminal.
//
// Uso: go run ./cmd/billing
// Configuración por variables de entorno o .env (STORE_PATH, BILL_CURRENCY_SYMBOL, ...).
package main

import (
	"context"
	"os"

	"github.com/jhoicas/electricity-billing/internal/app"
	"github.com/jhoicas/electricity-billing/internal/interfaces/cli"
	"github.com/jhoicas/electricity-billing/pkg/config"
	"github.com/jhoicas/electricity-billing/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	// Los logs van a stderr para no mezclarse con la sesión.
	log := logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  cfg.App.LogLevel,
		Output: os.Stderr,
	})

	ctx := context.Background()
	desk, cleanup, err := app.NewDesk(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar caja")
	}
	defer cleanup()

	session := cli.NewSession(desk, os.Stdin, os.Stdout, cfg.Bill.PDFOutputDir, log)
	if err := session.Run(ctx); err != nil {
		log.Error().Err(err).Msg("sesión finalizada con error")
	}
}
