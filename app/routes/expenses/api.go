package expenses

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/models"
)

var validate = validator.New()

// ExpenseRequest is the create/update payload.
type ExpenseRequest struct {
	Date        string  `json:"date" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	PayMode     string  `json:"payMode" validate:"required,oneof=Cash Online Card"`
}

func GetExpensesAPI(c *fiber.Ctx, svc *ledger.Service) error {
	records, err := svc.Store().Expenses()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load expenses"})
	}
	return c.JSON(records)
}

func CreateExpenseAPI(c *fiber.Ctx, svc *ledger.Service) error {
	var req ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	expense, err := svc.CreateExpense(models.Expense{
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		PayMode:     req.PayMode,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

func UpdateExpenseAPI(c *fiber.Ctx, svc *ledger.Service) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expense id"})
	}
	var req ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	expense, err := svc.UpdateExpense(models.Expense{
		ID:          id,
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		PayMode:     req.PayMode,
	})
	if err != nil {
		return err
	}
	return c.JSON(expense)
}

func DeleteExpenseAPI(c *fiber.Ctx, svc *ledger.Service) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expense id"})
	}
	if err := svc.DeleteExpense(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
