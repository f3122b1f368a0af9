package students

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/models"
)

var validate = validator.New()

// StudentRequest is the create/update payload.
type StudentRequest struct {
	Name       string `json:"name" validate:"required"`
	AdmNo      string `json:"admNo"`
	Class      string `json:"class" validate:"required"`
	ParentName string `json:"parentName"`
	WhatsApp   string `json:"whatsapp"`
	Contact    string `json:"contact"`
}

func GetStudentsAPI(c *fiber.Ctx, svc *ledger.Service) error {
	records, err := svc.Store().Students()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load students"})
	}
	return c.JSON(records)
}

func GetStudentAPI(c *fiber.Ctx, svc *ledger.Service) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}
	student, ok, err := svc.Store().FindStudent(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load students"})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.JSON(student)
}

func CreateStudentAPI(c *fiber.Ctx, svc *ledger.Service) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := svc.CreateStudent(models.Student{
		Name:       req.Name,
		AdmNo:      req.AdmNo,
		Class:      req.Class,
		ParentName: req.ParentName,
		WhatsApp:   req.WhatsApp,
		Contact:    req.Contact,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

func UpdateStudentAPI(c *fiber.Ctx, svc *ledger.Service) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := svc.UpdateStudent(models.Student{
		ID:         id,
		Name:       req.Name,
		AdmNo:      req.AdmNo,
		Class:      req.Class,
		ParentName: req.ParentName,
		WhatsApp:   req.WhatsApp,
		Contact:    req.Contact,
	})
	if err != nil {
		return err
	}
	return c.JSON(student)
}

func DeleteStudentAPI(c *fiber.Ctx, svc *ledger.Service) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}
	if err := svc.DeleteStudent(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func GetStudentSummaryAPI(c *fiber.Ctx, svc *ledger.Service) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}
	summary, err := svc.StudentSummary(id)
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
