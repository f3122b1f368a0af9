package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/routes/auth"
)

// SetupPaymentsRoutes registers the payment and invoice endpoints.
func SetupPaymentsRoutes(app *fiber.App, svc *ledger.Service) {
	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetPaymentsAPI(c, svc) })
	api.Post("/", func(c *fiber.Ctx) error { return RecordPaymentAPI(c, svc) })
	api.Post("/grouped", func(c *fiber.Ctx) error { return RecordGroupedPaymentAPI(c, svc) })
	api.Get("/invoice/:id", func(c *fiber.Ctx) error { return GetInvoiceAPI(c, svc) })
	api.Get("/entry/:feeEntryId/latest", func(c *fiber.Ctx) error { return GetLatestForEntryAPI(c, svc) })
}
