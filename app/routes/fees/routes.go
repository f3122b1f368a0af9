package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/routes/auth"
)

// SetupFeesRoutes registers the derived fee entry endpoints.
func SetupFeesRoutes(app *fiber.App, svc *ledger.Service) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)

	api.Get("/entries", func(c *fiber.Ctx) error { return GetFeeEntriesAPI(c, svc) })
	api.Get("/entries/:id", func(c *fiber.Ctx) error { return GetFeeEntryAPI(c, svc) })
}
