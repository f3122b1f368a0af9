package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
)

// SetupAuthRoutes registers the session endpoints.
func SetupAuthRoutes(app *fiber.App, svc *ledger.Service) {
	api := app.Group("/api/auth")

	api.Post("/login", func(c *fiber.Ctx) error {
		return LoginAPI(c, svc)
	})
	api.Post("/logout", LogoutAPI)
	api.Get("/me", AuthMiddleware, MeAPI)
}

func LoginAPI(c *fiber.Ctx, svc *ledger.Service) error {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	user, ok, err := svc.Store().FindUserByUsername(req.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load users"})
	}
	if !ok || !CheckPasswordHash(req.Password, user.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := GenerateJWT(user.ID, user.Username, user.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    fiber.Map{"id": user.ID, "username": user.Username, "name": user.Name},
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func MeAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"id":       c.Locals("user_id"),
		"username": c.Locals("username"),
		"name":     c.Locals("user_name"),
	})
}
