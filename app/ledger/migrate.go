package ledger

import (
	"log"

	"github.com/beelineschool-pixel/account/app/models"
)

// MigrateVehicleAssignments upgrades legacy assignment records, which kept a
// single routeId at the record level, into the per-month route model: the old
// route is copied into every month alongside each month's existing fee and
// paid values (absent months default to zero). Runs at startup; a store with
// no legacy records is left untouched, so re-running is a strict no-op.
// Returns the number of records rewritten.
func (s *Service) MigrateVehicleAssignments() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignments, err := s.store.VehicleAssignments()
	if err != nil {
		return 0, err
	}

	migrated := 0
	for i := range assignments {
		if assignments[i].LegacyRouteID == nil {
			continue
		}
		oldRouteID := *assignments[i].LegacyRouteID
		newMonthlyFees := make(map[string]models.MonthFee, len(models.AcademicMonths))
		for _, month := range models.AcademicMonths {
			oldMonthData := assignments[i].MonthlyFees[month]
			rid := oldRouteID
			newMonthlyFees[month] = models.MonthFee{
				RouteID: &rid,
				Fee:     oldMonthData.Fee,
				Paid:    oldMonthData.Paid,
			}
		}
		assignments[i].MonthlyFees = newMonthlyFees
		assignments[i].LegacyRouteID = nil
		migrated++
	}

	if migrated == 0 {
		return 0, nil
	}
	if err := s.store.SaveVehicleAssignments(assignments); err != nil {
		return 0, err
	}
	s.invalidateLocked()
	log.Printf("Migrated %d vehicle assignment(s) to per-month routes", migrated)
	return migrated, nil
}
