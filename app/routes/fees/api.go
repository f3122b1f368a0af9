package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/models"
)

// GetFeeEntriesAPI returns the derived fee entries with optional filtering
// by student, class, status and kind.
func GetFeeEntriesAPI(c *fiber.Ctx, svc *ledger.Service) error {
	entries, err := svc.FeeEntries()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to derive fee entries"})
	}

	studentID := c.QueryInt("student_id", 0)
	class := c.Query("class")
	status := c.Query("status")
	kind := c.Query("kind") // "academic" or "vehicle"

	filtered := make([]models.FeeEntry, 0, len(entries))
	for _, e := range entries {
		if studentID != 0 && e.StudentID != studentID {
			continue
		}
		if class != "" && e.StudentClass != class {
			continue
		}
		if status != "" && e.Status != status {
			continue
		}
		if kind == "academic" && e.IsVehicleFee {
			continue
		}
		if kind == "vehicle" && !e.IsVehicleFee {
			continue
		}
		filtered = append(filtered, e)
	}
	return c.JSON(filtered)
}

// GetFeeEntryAPI resolves one fee entry by its composite key.
func GetFeeEntryAPI(c *fiber.Ctx, svc *ledger.Service) error {
	id := c.Params("id")
	entries, err := svc.FeeEntries()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to derive fee entries"})
	}
	for _, e := range entries {
		if e.ID == id {
			return c.JSON(e)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fee entry not found"})
}
