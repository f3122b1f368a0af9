package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/routes/auth"
)

// SetupClassesRoutes registers the class list endpoints. Classes are plain
// names; defaults are seeded on first read.
func SetupClassesRoutes(app *fiber.App, svc *ledger.Service) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetClassesAPI(c, svc) })
	api.Post("/", func(c *fiber.Ctx) error { return AddClassAPI(c, svc) })
	api.Delete("/:name", func(c *fiber.Ctx) error { return DeleteClassAPI(c, svc) })
}

func GetClassesAPI(c *fiber.Ctx, svc *ledger.Service) error {
	classes, err := svc.Store().ClassNames()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load classes"})
	}
	return c.JSON(classes)
}

func AddClassAPI(c *fiber.Ctx, svc *ledger.Service) error {
	type ClassRequest struct {
		Name string `json:"name"`
	}
	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := svc.AddClass(req.Name); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"name": req.Name})
}

func DeleteClassAPI(c *fiber.Ctx, svc *ledger.Service) error {
	if err := svc.DeleteClass(c.Params("name")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
