package vehicle

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/routes/auth"
)

// SetupVehicleRoutes registers the transport endpoints: routes, student
// assignments, driver payouts and the per-route ledgers.
func SetupVehicleRoutes(app *fiber.App, svc *ledger.Service) {
	api := app.Group("/api/vehicle")
	api.Use(auth.AuthMiddleware)

	api.Get("/routes", func(c *fiber.Ctx) error { return GetRoutesAPI(c, svc) })
	api.Post("/routes", func(c *fiber.Ctx) error { return CreateRouteAPI(c, svc) })
	api.Delete("/routes/:id", func(c *fiber.Ctx) error { return DeleteRouteAPI(c, svc) })

	api.Get("/assignments", func(c *fiber.Ctx) error { return GetAssignmentsAPI(c, svc) })
	api.Post("/assignments", func(c *fiber.Ctx) error { return CreateAssignmentAPI(c, svc) })
	api.Put("/assignments/:id", func(c *fiber.Ctx) error { return UpdateAssignmentAPI(c, svc) })

	api.Put("/payouts", func(c *fiber.Ctx) error { return SetDriverPayoutAPI(c, svc) })

	api.Get("/ledger", func(c *fiber.Ctx) error { return GetRouteLedgersAPI(c, svc) })
	api.Get("/ledger/:routeId", func(c *fiber.Ctx) error { return GetRouteLedgerAPI(c, svc) })
}
