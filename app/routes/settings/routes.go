package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/models"
	"github.com/beelineschool-pixel/account/app/routes/auth"
)

// SetupSettingsRoutes registers the school info endpoints. School info only
// feeds invoice headers; changing it never touches the ledger.
func SetupSettingsRoutes(app *fiber.App, svc *ledger.Service) {
	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)

	api.Get("/school", func(c *fiber.Ctx) error { return GetSchoolInfoAPI(c, svc) })
	api.Put("/school", func(c *fiber.Ctx) error { return SetSchoolInfoAPI(c, svc) })
}

func GetSchoolInfoAPI(c *fiber.Ctx, svc *ledger.Service) error {
	info, err := svc.Store().SchoolInfo()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load school info"})
	}
	return c.JSON(info)
}

func SetSchoolInfoAPI(c *fiber.Ctx, svc *ledger.Service) error {
	var info models.SchoolInfo
	if err := c.BodyParser(&info); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := svc.Store().SetSchoolInfo(info); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save school info"})
	}
	return c.JSON(info)
}
