package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electricity-billing/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName string
	DeskUC  *billing.DeskUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	bills := api.Group("/bills")
	billHandler := NewBillHandler(deps.DeskUC)
	bills.Post("/quote", billHandler.Quote)
	bills.Post("/", billHandler.Create)
	bills.Get("/search", billHandler.Search)
	bills.Post("/print", billHandler.Print)
	bills.Post("/pdf", billHandler.PDF)
	bills.Get("/bpl-exemption", billHandler.BPLExemption)
}
