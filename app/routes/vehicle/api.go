package vehicle

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/models"
)

var validate = validator.New()

// RouteRequest creates a transport route.
type RouteRequest struct {
	Name   string `json:"name" validate:"required"`
	Driver string `json:"driver"`
}

// AssignmentRequest enrols a student into the vehicle cycle.
type AssignmentRequest struct {
	StudentID int `json:"studentId" validate:"required"`
}

// AssignmentUpdateRequest applies a route and fee to selected months.
type AssignmentUpdateRequest struct {
	RouteID int      `json:"routeId" validate:"required"`
	Fee     float64  `json:"fee" validate:"gte=0"`
	Months  []string `json:"months" validate:"required,min=1"`
}

// PayoutRequest records what was paid out to a route's driver for a month.
type PayoutRequest struct {
	RouteID int     `json:"routeId" validate:"required"`
	Month   string  `json:"month" validate:"required"`
	Amount  float64 `json:"amount" validate:"gte=0"`
}

func GetRoutesAPI(c *fiber.Ctx, svc *ledger.Service) error {
	records, err := svc.Store().Routes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load routes"})
	}
	return c.JSON(records)
}

func CreateRouteAPI(c *fiber.Ctx, svc *ledger.Service) error {
	var req RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	route, err := svc.CreateRoute(models.Route{Name: req.Name, Driver: req.Driver})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(route)
}

func DeleteRouteAPI(c *fiber.Ctx, svc *ledger.Service) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid route id"})
	}
	if err := svc.DeleteRoute(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func GetAssignmentsAPI(c *fiber.Ctx, svc *ledger.Service) error {
	records, err := svc.Store().VehicleAssignments()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load assignments"})
	}
	return c.JSON(records)
}

func CreateAssignmentAPI(c *fiber.Ctx, svc *ledger.Service) error {
	var req AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	assignment, err := svc.CreateAssignment(req.StudentID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func UpdateAssignmentAPI(c *fiber.Ctx, svc *ledger.Service) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid assignment id"})
	}
	var req AssignmentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	assignment, err := svc.UpdateAssignmentMonths(id, req.Months, req.RouteID, req.Fee)
	if err != nil {
		return err
	}
	return c.JSON(assignment)
}

func SetDriverPayoutAPI(c *fiber.Ctx, svc *ledger.Service) error {
	var req PayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := svc.SetDriverPayout(req.RouteID, req.Month, req.Amount); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Payout recorded"})
}

func GetRouteLedgersAPI(c *fiber.Ctx, svc *ledger.Service) error {
	ledgers, err := svc.RouteLedgers()
	if err != nil {
		return err
	}
	return c.JSON(ledgers)
}

func GetRouteLedgerAPI(c *fiber.Ctx, svc *ledger.Service) error {
	routeID, err := c.ParamsInt("routeId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid route id"})
	}
	routeLedger, err := svc.RouteLedger(routeID)
	if err != nil {
		return err
	}
	return c.JSON(routeLedger)
}
