package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/routes/auth"
)

// SetupStudentsRoutes registers the student endpoints.
func SetupStudentsRoutes(app *fiber.App, svc *ledger.Service) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetStudentsAPI(c, svc) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateStudentAPI(c, svc) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetStudentAPI(c, svc) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateStudentAPI(c, svc) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteStudentAPI(c, svc) })
	api.Get("/:id/summary", func(c *fiber.Ctx) error { return GetStudentSummaryAPI(c, svc) })
}
