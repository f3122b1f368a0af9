package feetypes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/models"
)

var validate = validator.New()

// FeeTypeRequest is the create/update payload. Section is "All" or a class
// name.
type FeeTypeRequest struct {
	Name         string  `json:"name" validate:"required"`
	Section      string  `json:"section" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	DueDate      string  `json:"dueDate"`
	ReminderDate string  `json:"reminderDate"`
}

func GetFeeTypesAPI(c *fiber.Ctx, svc *ledger.Service) error {
	records, err := svc.Store().FeeTypes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load fee types"})
	}
	return c.JSON(records)
}

func CreateFeeTypeAPI(c *fiber.Ctx, svc *ledger.Service) error {
	var req FeeTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	feeType, err := svc.CreateFeeType(models.FeeType{
		Name:         req.Name,
		Section:      req.Section,
		Amount:       req.Amount,
		DueDate:      req.DueDate,
		ReminderDate: req.ReminderDate,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(feeType)
}

func UpdateFeeTypeAPI(c *fiber.Ctx, svc *ledger.Service) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid fee type id"})
	}
	var req FeeTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	feeType, err := svc.UpdateFeeType(models.FeeType{
		ID:           id,
		Name:         req.Name,
		Section:      req.Section,
		Amount:       req.Amount,
		DueDate:      req.DueDate,
		ReminderDate: req.ReminderDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(feeType)
}

func DeleteFeeTypeAPI(c *fiber.Ctx, svc *ledger.Service) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid fee type id"})
	}
	if err := svc.DeleteFeeType(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
