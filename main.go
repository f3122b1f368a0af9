package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/beelineschool-pixel/account/app/config"
	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/routes/auth"
	"github.com/beelineschool-pixel/account/app/routes/classes"
	"github.com/beelineschool-pixel/account/app/routes/expenses"
	"github.com/beelineschool-pixel/account/app/routes/fees"
	"github.com/beelineschool-pixel/account/app/routes/feetypes"
	"github.com/beelineschool-pixel/account/app/routes/payments"
	"github.com/beelineschool-pixel/account/app/routes/reports"
	"github.com/beelineschool-pixel/account/app/routes/settings"
	"github.com/beelineschool-pixel/account/app/routes/students"
	"github.com/beelineschool-pixel/account/app/routes/vehicle"
	"github.com/beelineschool-pixel/account/app/services"
	"github.com/beelineschool-pixel/account/app/store"
)

// customErrorHandler maps core errors onto HTTP status codes for API
// responses.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if ledger.IsValidation(err) {
		code = fiber.StatusBadRequest
	}
	if ledger.IsNotFound(err) {
		code = fiber.StatusNotFound
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	cfg := config.Load()
	defer cfg.DB.Close()

	kv, err := store.NewPostgresKV(cfg.DB)
	if err != nil {
		log.Fatal("Failed to prepare record store:", err)
	}
	recordStore := store.New(kv)

	calendar, err := ledger.ParseAcademicYear(cfg.AcademicYear)
	if err != nil {
		log.Fatal("Invalid ACADEMIC_YEAR:", err)
	}
	log.Printf("Academic year: %s", calendar.Label())

	svc := ledger.New(recordStore, calendar)

	// Upgrade any legacy vehicle assignment records before serving.
	if _, err := svc.MigrateVehicleAssignments(); err != nil {
		log.Fatal("Failed to migrate vehicle assignments:", err)
	}

	services.StartReminderScanner(svc)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	auth.SetupAuthRoutes(app, svc)
	students.SetupStudentsRoutes(app, svc)
	classes.SetupClassesRoutes(app, svc)
	feetypes.SetupFeeTypesRoutes(app, svc)
	fees.SetupFeesRoutes(app, svc)
	vehicle.SetupVehicleRoutes(app, svc)
	payments.SetupPaymentsRoutes(app, svc)
	expenses.SetupExpensesRoutes(app, svc)
	reports.SetupReportsRoutes(app, svc)
	settings.SetupSettingsRoutes(app, svc)

	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	log.Printf("Server starting on :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
