package ledger

import (
	"testing"

	"github.com/beelineschool-pixel/account/app/models"
)

func TestCreateStudentValidation(t *testing.T) {
	s := newTestService(t)
	if _, err := s.CreateStudent(models.Student{Class: "Class 1"}); !IsValidation(err) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}
	if _, err := s.CreateStudent(models.Student{Name: "Asha"}); !IsValidation(err) {
		t.Fatalf("expected validation error for missing class, got %v", err)
	}
}

func TestUpdateStudent(t *testing.T) {
	s := newTestService(t)
	asha := mustAddStudent(t, s, models.Student{Name: "Asha", Class: "Class 1"})

	asha.Class = "Class 2"
	asha.WhatsApp = "9876543210"
	updated, err := s.UpdateStudent(asha)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Class != "Class 2" {
		t.Fatalf("updated = %+v", updated)
	}

	got, ok, err := s.Store().FindStudent(asha.ID)
	if err != nil || !ok {
		t.Fatalf("find: ok=%v err=%v", ok, err)
	}
	if got.WhatsApp != "9876543210" {
		t.Fatalf("persisted = %+v", got)
	}

	if _, err := s.UpdateStudent(models.Student{ID: 99, Name: "Ghost", Class: "X"}); !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteStudentCascades(t *testing.T) {
	s := newTestService(t)
	asha := mustAddStudent(t, s, models.Student{Name: "Asha", Class: "Class 1"})
	ravi := mustAddStudent(t, s, models.Student{Name: "Ravi", Class: "Class 1"})
	tuition := mustAddFeeType(t, s, models.FeeType{Name: "Tuition", Section: models.SectionAll, Amount: 5000})
	route := mustAddRoute(t, s, models.Route{Name: "North", Driver: "Suma"})
	assignVehicle(t, s, asha.ID, route.ID, 1000, "Jun")

	if _, err := s.RecordSinglePayment(models.AcademicFeeKey(asha.ID, tuition.ID).String(), 2000, "2025-06-01", models.MethodCash, "INV-1"); err != nil {
		t.Fatalf("payment: %v", err)
	}
	if _, err := s.RecordSinglePayment(models.AcademicFeeKey(ravi.ID, tuition.ID).String(), 1000, "2025-06-02", models.MethodCash, "INV-2"); err != nil {
		t.Fatalf("payment: %v", err)
	}

	if err := s.DeleteStudent(asha.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	payments, err := s.Store().Payments()
	if err != nil {
		t.Fatalf("payments: %v", err)
	}
	if len(payments) != 1 || payments[0].StudentID != ravi.ID {
		t.Fatalf("other students' payments must survive, got %+v", payments)
	}

	assignments, err := s.Store().VehicleAssignments()
	if err != nil {
		t.Fatalf("assignments: %v", err)
	}
	if len(assignments) != 0 {
		t.Fatalf("assignment must cascade, got %+v", assignments)
	}

	entries, err := s.FeeEntries()
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	for _, e := range entries {
		if e.StudentID == asha.ID {
			t.Fatalf("entry %s still derived for deleted student", e.ID)
		}
	}

	if err := s.DeleteStudent(asha.ID); !IsNotFound(err) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestClassList(t *testing.T) {
	s := newTestService(t)

	classes, err := s.Store().ClassNames()
	if err != nil {
		t.Fatalf("class names: %v", err)
	}
	if len(classes) != 7 {
		t.Fatalf("default classes = %v", classes)
	}

	if err := s.AddClass("Class 6"); err != nil {
		t.Fatalf("add class: %v", err)
	}
	if err := s.AddClass("Class 6"); !IsValidation(err) {
		t.Fatalf("expected validation error for duplicate, got %v", err)
	}
	if err := s.AddClass(""); !IsValidation(err) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}

	if err := s.DeleteClass("LKG"); err != nil {
		t.Fatalf("delete class: %v", err)
	}
	if err := s.DeleteClass("LKG"); !IsNotFound(err) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}

	classes, err = s.Store().ClassNames()
	if err != nil {
		t.Fatalf("class names: %v", err)
	}
	for _, c := range classes {
		if c == "LKG" {
			t.Fatal("LKG still present after delete")
		}
	}
}
