package reports

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/routes/auth"
)

// SetupReportsRoutes registers the reporting endpoints: the unified
// transaction ledger, dashboard stats and due fee reminders.
func SetupReportsRoutes(app *fiber.App, svc *ledger.Service) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)

	api.Get("/transactions", func(c *fiber.Ctx) error { return GetTransactionsAPI(c, svc) })
	api.Get("/dashboard", func(c *fiber.Ctx) error { return GetDashboardAPI(c, svc) })
	api.Get("/reminders", func(c *fiber.Ctx) error { return GetRemindersAPI(c, svc) })
}

// GetTransactionsAPI returns the date-sorted income/expense ledger, with
// optional date range and type filtering.
func GetTransactionsAPI(c *fiber.Ctx, svc *ledger.Service) error {
	transactions, err := svc.Transactions()
	if err != nil {
		return err
	}

	start := c.Query("start")
	end := c.Query("end")
	txType := c.Query("type")
	method := c.Query("method")

	filtered := make([]ledger.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if start != "" && t.Date < start {
			continue
		}
		if end != "" && t.Date > end {
			continue
		}
		if txType != "" && t.Type != txType {
			continue
		}
		if method != "" && t.Method != method {
			continue
		}
		filtered = append(filtered, t)
	}
	return c.JSON(filtered)
}

func GetDashboardAPI(c *fiber.Ctx, svc *ledger.Service) error {
	stats, err := svc.Dashboard(time.Now())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func GetRemindersAPI(c *fiber.Ctx, svc *ledger.Service) error {
	due, err := svc.DueReminders(time.Now())
	if err != nil {
		return err
	}
	return c.JSON(due)
}
