package payments

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/beelineschool-pixel/account/app/ledger"
	"github.com/beelineschool-pixel/account/app/models"
	"github.com/beelineschool-pixel/account/app/routes/auth"
	"github.com/beelineschool-pixel/account/app/store"
)

func newTestApp(t *testing.T) (*fiber.App, *ledger.Service, string) {
	t.Helper()
	cal, err := ledger.ParseAcademicYear("2025-2026")
	if err != nil {
		t.Fatalf("parse academic year: %v", err)
	}
	svc := ledger.New(store.New(store.NewMemoryKV()), cal)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if ledger.IsValidation(err) {
				code = fiber.StatusBadRequest
			}
			if ledger.IsNotFound(err) {
				code = fiber.StatusNotFound
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
	SetupPaymentsRoutes(app, svc)

	token, err := auth.GenerateJWT(1, "admin", "Front Desk")
	if err != nil {
		t.Fatalf("generate jwt: %v", err)
	}
	return app, svc, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "jwt_token", Value: token})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func TestPaymentsRequireAuth(t *testing.T) {
	app, _, _ := newTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/payments/", "", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRecordPaymentEndpoint(t *testing.T) {
	app, svc, token := newTestApp(t)
	student, err := svc.CreateStudent(models.Student{Name: "Asha", Class: "Class 1"})
	if err != nil {
		t.Fatalf("create student: %v", err)
	}
	feeType, err := svc.CreateFeeType(models.FeeType{Name: "Tuition", Section: models.SectionAll, Amount: 5000})
	if err != nil {
		t.Fatalf("create fee type: %v", err)
	}
	key := models.AcademicFeeKey(student.ID, feeType.ID).String()

	resp := doJSON(t, app, http.MethodPost, "/api/payments/", token, PaymentRequest{
		FeeEntryID: key,
		Amount:     2000,
		Date:       "2025-06-01",
		Method:     models.MethodCash,
		InvoiceID:  "INV-1",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var payment models.Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payment.ID != 1 || payment.FeeEntryID != key || payment.Amount != 2000 {
		t.Fatalf("payment = %+v", payment)
	}

	// Bad method fails request validation before reaching the service.
	resp = doJSON(t, app, http.MethodPost, "/api/payments/", token, PaymentRequest{
		FeeEntryID: key,
		Amount:     100,
		Date:       "2025-06-01",
		Method:     "Cheque",
		InvoiceID:  "INV-2",
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("bad method status = %d, want 400", resp.StatusCode)
	}

	// Unknown fee entry surfaces as 404 through the error handler.
	resp = doJSON(t, app, http.MethodPost, "/api/payments/", token, PaymentRequest{
		FeeEntryID: "999-999",
		Amount:     100,
		Date:       "2025-06-01",
		Method:     models.MethodCash,
		InvoiceID:  "INV-3",
	})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("unknown entry status = %d, want 404", resp.StatusCode)
	}
}

func TestGroupedPaymentEndpoint(t *testing.T) {
	app, svc, token := newTestApp(t)
	student, err := svc.CreateStudent(models.Student{Name: "Asha", Class: "Class 1"})
	if err != nil {
		t.Fatalf("create student: %v", err)
	}
	tuition, err := svc.CreateFeeType(models.FeeType{Name: "Tuition", Section: models.SectionAll, Amount: 5000})
	if err != nil {
		t.Fatalf("create fee type: %v", err)
	}
	books, err := svc.CreateFeeType(models.FeeType{Name: "Books", Section: models.SectionAll, Amount: 800})
	if err != nil {
		t.Fatalf("create fee type: %v", err)
	}

	resp := doJSON(t, app, http.MethodPost, "/api/payments/grouped", token, GroupedPaymentRequest{
		StudentID: student.ID,
		FeeEntries: []string{
			models.AcademicFeeKey(student.ID, tuition.ID).String(),
			models.AcademicFeeKey(student.ID, books.ID).String(),
		},
		Date:      "2025-06-10",
		Method:    models.MethodOnline,
		InvoiceID: "INV-7",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var master models.Payment
	if err := json.NewDecoder(resp.Body).Decode(&master); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !master.IsGroupedMaster() || master.Amount != 5800 || len(master.LineItems) != 2 {
		t.Fatalf("master = %+v", master)
	}
}

func TestInvoiceEndpoint(t *testing.T) {
	app, svc, token := newTestApp(t)
	student, err := svc.CreateStudent(models.Student{Name: "Asha", Class: "Class 1"})
	if err != nil {
		t.Fatalf("create student: %v", err)
	}
	feeType, err := svc.CreateFeeType(models.FeeType{Name: "Tuition", Section: models.SectionAll, Amount: 5000})
	if err != nil {
		t.Fatalf("create fee type: %v", err)
	}
	key := models.AcademicFeeKey(student.ID, feeType.ID).String()
	payment, err := svc.RecordSinglePayment(key, 2000, "2025-06-01", models.MethodCash, "INV-1")
	if err != nil {
		t.Fatalf("payment: %v", err)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/payments/invoice/1", token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var invoice ledger.Invoice
	if err := json.NewDecoder(resp.Body).Decode(&invoice); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if invoice.Payment.ID != payment.ID || invoice.Student == nil || invoice.Student.Name != "Asha" {
		t.Fatalf("invoice = %+v", invoice)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/payments/invoice/99", token, nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("missing invoice status = %d, want 404", resp.StatusCode)
	}
}
