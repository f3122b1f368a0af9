package ledger

import (
	"testing"

	"github.com/beelineschool-pixel/account/app/models"
)

func TestRouteLedgerAggregation(t *testing.T) {
	s := newTestService(t)
	rider := mustAddStudent(t, s, models.Student{Name: "Rider", Class: "Class 3"})
	other := mustAddStudent(t, s, models.Student{Name: "Other", Class: "Class 4"})
	north := mustAddRoute(t, s, models.Route{Name: "North", Driver: "Ravi"})
	south := mustAddRoute(t, s, models.Route{Name: "South", Driver: "Suma"})

	assignment := assignVehicle(t, s, rider.ID, north.ID, 1000, "Jun", "Jul")
	assignVehicle(t, s, other.ID, south.ID, 800, "Jun")

	key := models.VehicleFeeKey(assignment.ID, "Jun").String()
	if _, err := s.RecordSinglePayment(key, 1000, "2025-06-05", models.MethodCash, "INV-1"); err != nil {
		t.Fatalf("payment: %v", err)
	}

	ledger, err := s.RouteLedger(north.ID)
	if err != nil {
		t.Fatalf("route ledger: %v", err)
	}

	// Only the north rider appears; the south rider belongs to another route.
	if len(ledger.Students) != 1 || ledger.Students[0].StudentID != rider.ID {
		t.Fatalf("students = %+v", ledger.Students)
	}
	row := ledger.Students[0]
	if !row.Months["Jun"].OnRoute || row.Months["Jun"].Paid != 1000 {
		t.Errorf("Jun cell = %+v", row.Months["Jun"])
	}
	if !row.Months["Jul"].OnRoute || row.Months["Jul"].Paid != 0 {
		t.Errorf("Jul cell = %+v", row.Months["Jul"])
	}
	if row.Months["Aug"].OnRoute {
		t.Error("Aug should be off-route")
	}
	if row.TotalPaid != 1000 {
		t.Errorf("row total paid = %v", row.TotalPaid)
	}

	// With no payout recorded: collection=1000, paidToDriver=0, balance=1000.
	var jun MonthTotal
	for _, m := range ledger.Months {
		if m.Month == "Jun" {
			jun = m
		}
	}
	if jun.Collection != 1000 || jun.PaidToDriver != 0 || jun.Balance != 1000 || jun.Overpaid {
		t.Fatalf("Jun totals = %+v", jun)
	}
	if len(ledger.Months) != len(models.AcademicMonths) {
		t.Fatalf("month rows = %d, want %d", len(ledger.Months), len(models.AcademicMonths))
	}
	if ledger.TotalCollection != 1000 || ledger.TotalBalance != 1000 {
		t.Fatalf("totals = %+v", ledger)
	}
}

func TestRouteLedgerOverpaidMonth(t *testing.T) {
	s := newTestService(t)
	rider := mustAddStudent(t, s, models.Student{Name: "Rider", Class: "Class 3"})
	route := mustAddRoute(t, s, models.Route{Name: "North", Driver: "Ravi"})
	assignment := assignVehicle(t, s, rider.ID, route.ID, 1000, "Jun")

	key := models.VehicleFeeKey(assignment.ID, "Jun").String()
	if _, err := s.RecordSinglePayment(key, 500, "2025-06-05", models.MethodCash, "INV-1"); err != nil {
		t.Fatalf("payment: %v", err)
	}
	// Paying the driver more than was collected is allowed and flagged.
	if err := s.SetDriverPayout(route.ID, "Jun", 900); err != nil {
		t.Fatalf("payout: %v", err)
	}

	ledger, err := s.RouteLedger(route.ID)
	if err != nil {
		t.Fatalf("route ledger: %v", err)
	}
	for _, m := range ledger.Months {
		if m.Month != "Jun" {
			continue
		}
		if m.Balance != -400 || !m.Overpaid {
			t.Fatalf("Jun totals = %+v", m)
		}
	}

	// Upsert overwrites rather than appending.
	if err := s.SetDriverPayout(route.ID, "Jun", 300); err != nil {
		t.Fatalf("payout update: %v", err)
	}
	entries, err := s.Store().VehicleLedger()
	if err != nil {
		t.Fatalf("ledger entries: %v", err)
	}
	if len(entries) != 1 || entries[0].PaidToDriver != 300 {
		t.Fatalf("ledger entries = %+v", entries)
	}
}

func TestSetDriverPayoutValidation(t *testing.T) {
	s := newTestService(t)
	route := mustAddRoute(t, s, models.Route{Name: "North", Driver: "Ravi"})

	if err := s.SetDriverPayout(route.ID, "Foo", 100); !IsValidation(err) {
		t.Fatalf("expected validation error for unknown month, got %v", err)
	}
	if err := s.SetDriverPayout(999, "Jun", 100); !IsNotFound(err) {
		t.Fatalf("expected not found for unknown route, got %v", err)
	}
}

func TestDeleteRouteCascades(t *testing.T) {
	s := newTestService(t)
	rider := mustAddStudent(t, s, models.Student{Name: "Rider", Class: "Class 3"})
	north := mustAddRoute(t, s, models.Route{Name: "North", Driver: "Ravi"})
	south := mustAddRoute(t, s, models.Route{Name: "South", Driver: "Suma"})

	assignment := assignVehicle(t, s, rider.ID, north.ID, 1000, "Jun")
	assignment = assignMonths(t, s, assignment.ID, south.ID, 700, "Jul")
	if err := s.SetDriverPayout(north.ID, "Jun", 500); err != nil {
		t.Fatalf("payout: %v", err)
	}

	if err := s.DeleteRoute(north.ID); err != nil {
		t.Fatalf("delete route: %v", err)
	}

	assignments, err := s.Store().VehicleAssignments()
	if err != nil {
		t.Fatalf("assignments: %v", err)
	}
	jun := assignments[0].MonthlyFees["Jun"]
	if jun.RouteID != nil || jun.Fee != 0 || jun.Paid != 0 {
		t.Fatalf("Jun should be unassigned after route deletion, got %+v", jun)
	}
	jul := assignments[0].MonthlyFees["Jul"]
	if jul.RouteID == nil || *jul.RouteID != south.ID || jul.Fee != 700 {
		t.Fatalf("Jul on another route must survive, got %+v", jul)
	}

	payouts, err := s.Store().VehicleLedger()
	if err != nil {
		t.Fatalf("payouts: %v", err)
	}
	if len(payouts) != 0 {
		t.Fatalf("payout rows for deleted route must go, got %+v", payouts)
	}

	// The derived Jun entry disappears with the route.
	entries, err := s.FeeEntries()
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	for _, e := range entries {
		if e.ID == models.VehicleFeeKey(assignment.ID, "Jun").String() {
			t.Fatal("Jun entry still derived after route deletion")
		}
	}

	if err := s.DeleteRoute(north.ID); !IsNotFound(err) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestCreateAssignmentRules(t *testing.T) {
	s := newTestService(t)
	rider := mustAddStudent(t, s, models.Student{Name: "Rider", Class: "Class 3"})

	if _, err := s.CreateAssignment(999); !IsNotFound(err) {
		t.Fatalf("expected not found for unknown student, got %v", err)
	}

	assignment, err := s.CreateAssignment(rider.ID)
	if err != nil {
		t.Fatalf("create assignment: %v", err)
	}
	if len(assignment.MonthlyFees) != len(models.AcademicMonths) {
		t.Fatalf("months seeded = %d, want %d", len(assignment.MonthlyFees), len(models.AcademicMonths))
	}
	for month, data := range assignment.MonthlyFees {
		if data.RouteID != nil || data.Fee != 0 || data.Paid != 0 {
			t.Errorf("month %s not zeroed: %+v", month, data)
		}
	}

	if _, err := s.CreateAssignment(rider.ID); !IsValidation(err) {
		t.Fatalf("expected validation error for duplicate assignment, got %v", err)
	}
}

func TestUpdateAssignmentMonthsValidation(t *testing.T) {
	s := newTestService(t)
	rider := mustAddStudent(t, s, models.Student{Name: "Rider", Class: "Class 3"})
	route := mustAddRoute(t, s, models.Route{Name: "North", Driver: "Ravi"})
	assignment, err := s.CreateAssignment(rider.ID)
	if err != nil {
		t.Fatalf("create assignment: %v", err)
	}

	if _, err := s.UpdateAssignmentMonths(assignment.ID, nil, route.ID, 100); !IsValidation(err) {
		t.Fatalf("expected validation error for no months, got %v", err)
	}
	if _, err := s.UpdateAssignmentMonths(assignment.ID, []string{"Foo"}, route.ID, 100); !IsValidation(err) {
		t.Fatalf("expected validation error for bad month, got %v", err)
	}
	if _, err := s.UpdateAssignmentMonths(assignment.ID, []string{"Jun"}, 999, 100); !IsNotFound(err) {
		t.Fatalf("expected not found for unknown route, got %v", err)
	}
	if _, err := s.UpdateAssignmentMonths(999, []string{"Jun"}, route.ID, 100); !IsNotFound(err) {
		t.Fatalf("expected not found for unknown assignment, got %v", err)
	}
}

// assignMonths re-applies a different route/fee to more months of an existing
// assignment.
func assignMonths(t *testing.T, s *Service, assignmentID, routeID int, fee float64, months ...string) models.VehicleAssignment {
	t.Helper()
	assignment, err := s.UpdateAssignmentMonths(assignmentID, months, routeID, fee)
	if err != nil {
		t.Fatalf("update assignment months: %v", err)
	}
	return assignment
}
