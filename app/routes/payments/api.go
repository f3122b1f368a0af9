package payments

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
)

var validate = validator.New()

// PaymentRequest records one payment against a single fee entry.
type PaymentRequest struct {
	FeeEntryID string  `json:"feeEntryId" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Date       string  `json:"date" validate:"required"`
	Method     string  `json:"method" validate:"required,oneof=Cash Online Card"`
	InvoiceID  string  `json:"invoiceId" validate:"required"`
}

// GroupedPaymentRequest settles the full balance of several fee entries
// under one invoice.
type GroupedPaymentRequest struct {
	StudentID  int      `json:"studentId" validate:"required"`
	FeeEntries []string `json:"feeEntries" validate:"required,min=1"`
	Date       string   `json:"date" validate:"required"`
	Method     string   `json:"method" validate:"required,oneof=Cash Online Card"`
	InvoiceID  string   `json:"invoiceId" validate:"required"`
}

func GetPaymentsAPI(c *fiber.Ctx, svc *ledger.Service) error {
	records, err := svc.Store().Payments()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load payments"})
	}
	return c.JSON(records)
}

func RecordPaymentAPI(c *fiber.Ctx, svc *ledger.Service) error {
	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payment, err := svc.RecordSinglePayment(req.FeeEntryID, req.Amount, req.Date, req.Method, req.InvoiceID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

func RecordGroupedPaymentAPI(c *fiber.Ctx, svc *ledger.Service) error {
	var req GroupedPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	master, err := svc.RecordGroupedPayment(req.StudentID, req.FeeEntries, req.Date, req.Method, req.InvoiceID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(master)
}

func GetInvoiceAPI(c *fiber.Ctx, svc *ledger.Service) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment id"})
	}
	invoice, err := svc.Invoice(id)
	if err != nil {
		return err
	}
	return c.JSON(invoice)
}

func GetLatestForEntryAPI(c *fiber.Ctx, svc *ledger.Service) error {
	payment, err := svc.LatestPaymentForEntry(c.Params("feeEntryId"))
	if err != nil {
		return err
	}
	return c.JSON(payment)
}
