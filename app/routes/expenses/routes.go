package expenses

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/routes/auth"
)

// SetupExpensesRoutes registers the expense endpoints.
func SetupExpensesRoutes(app *fiber.App, svc *ledger.Service) {
	api := app.Group("/api/expenses")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetExpensesAPI(c, svc) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateExpenseAPI(c, svc) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateExpenseAPI(c, svc) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteExpenseAPI(c, svc) })
}
