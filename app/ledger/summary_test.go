package ledger

import (
	"testing"

	"github.com/beelineschool-pixel/account/app/models"
)

func TestStudentSummary(t *testing.T) {
	s := newTestService(t)
	asha := mustAddStudent(t, s, models.Student{Name: "Asha", Class: "Class 1"})
	tuition := mustAddFeeType(t, s, models.FeeType{Name: "Tuition", Section: models.SectionAll, Amount: 5000})
	mustAddFeeType(t, s, models.FeeType{Name: "Books", Section: models.SectionAll, Amount: 800})
	mustAddFeeType(t, s, models.FeeType{Name: "Lab", Section: "Class 5", Amount: 900})

	if _, err := s.RecordSinglePayment(models.AcademicFeeKey(asha.ID, tuition.ID).String(), 2000, "2025-06-01", models.MethodCash, "INV-1"); err != nil {
		t.Fatalf("payment: %v", err)
	}

	summary, err := s.StudentSummary(asha.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalDue != 5800 || summary.TotalPaid != 2000 || summary.Balance != 3800 {
		t.Fatalf("summary = %+v", summary)
	}
	if summary.Fees["Tuition"] != 5000 || summary.Fees["Books"] != 800 {
		t.Fatalf("fee map = %+v", summary.Fees)
	}
	// Every fee type name appears, even ones that never matched the student.
	if _, ok := summary.Fees["Lab"]; !ok {
		t.Fatal("fee map must be pre-seeded with all fee type names")
	}
	if summary.Fees["Lab"] != 0 {
		t.Fatalf("unmatched fee type should stay zero, got %v", summary.Fees["Lab"])
	}
}

func TestStudentSummaryExcludesVehicleFees(t *testing.T) {
	s := newTestService(t)
	rider := mustAddStudent(t, s, models.Student{Name: "Rider", Class: "Class 3"})
	route := mustAddRoute(t, s, models.Route{Name: "North", Driver: "Ravi"})
	assignment := assignVehicle(t, s, rider.ID, route.ID, 1000, "Jun")

	if _, err := s.RecordSinglePayment(models.VehicleFeeKey(assignment.ID, "Jun").String(), 1000, "2025-06-05", models.MethodCash, "INV-1"); err != nil {
		t.Fatalf("payment: %v", err)
	}

	summary, err := s.StudentSummary(rider.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalDue != 0 || summary.TotalPaid != 0 || summary.Balance != 0 {
		t.Fatalf("vehicle fees must not leak into the summary: %+v", summary)
	}
}

func TestStudentSummaryUnknownStudent(t *testing.T) {
	s := newTestService(t)
	mustAddFeeType(t, s, models.FeeType{Name: "Tuition", Section: models.SectionAll, Amount: 5000})

	summary, err := s.StudentSummary(42)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalDue != 0 || summary.Balance != 0 {
		t.Fatalf("unknown student yields a zero summary, got %+v", summary)
	}
}
