package ledger

import (
	"testing"

	"github.com/beelineschool-pixel/account/app/models"
	"github.com/beelineschool-pixel/account/app/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cal, err := ParseAcademicYear("2025-2026")
	if err != nil {
		t.Fatalf("parse academic year: %v", err)
	}
	return New(store.New(store.NewMemoryKV()), cal)
}

func mustAddStudent(t *testing.T, s *Service, student models.Student) models.Student {
	t.Helper()
	created, err := s.CreateStudent(student)
	if err != nil {
		t.Fatalf("create student: %v", err)
	}
	return created
}

func mustAddFeeType(t *testing.T, s *Service, feeType models.FeeType) models.FeeType {
	t.Helper()
	created, err := s.CreateFeeType(feeType)
	if err != nil {
		t.Fatalf("create fee type: %v", err)
	}
	return created
}

func mustAddRoute(t *testing.T, s *Service, route models.Route) models.Route {
	t.Helper()
	created, err := s.CreateRoute(route)
	if err != nil {
		t.Fatalf("create route: %v", err)
	}
	return created
}

// assignVehicle creates an assignment and applies route+fee to the given
// months.
func assignVehicle(t *testing.T, s *Service, studentID, routeID int, fee float64, months ...string) models.VehicleAssignment {
	t.Helper()
	assignment, err := s.CreateAssignment(studentID)
	if err != nil {
		t.Fatalf("create assignment: %v", err)
	}
	assignment, err = s.UpdateAssignmentMonths(assignment.ID, months, routeID, fee)
	if err != nil {
		t.Fatalf("update assignment months: %v", err)
	}
	return assignment
}

func entryByID(t *testing.T, s *Service, id string) models.FeeEntry {
	t.Helper()
	entries, err := s.FeeEntries()
	if err != nil {
		t.Fatalf("derive entries: %v", err)
	}
	for _, e := range entries {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("fee entry %s not derived", id)
	return models.FeeEntry{}
}
