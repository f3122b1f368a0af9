package feetypes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/routes/auth"
)

// SetupFeeTypesRoutes registers the fee type endpoints.
func SetupFeeTypesRoutes(app *fiber.App, svc *ledger.Service) {
	api := app.Group("/api/fee-types")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetFeeTypesAPI(c, svc) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateFeeTypeAPI(c, svc) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateFeeTypeAPI(c, svc) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteFeeTypeAPI(c, svc) })
}
