package models

// AcademicMonths is the fixed 10-month billing cycle for vehicle fees,
// spanning June through March of the following calendar year.
var AcademicMonths = []string{"Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}

// MonthIndex returns the position of month in the academic cycle, or -1 if
// it is not a valid academic month.
func MonthIndex(month string) int {
	for i, m := range AcademicMonths {
		if m == month {
			return i
		}
	}
	return -1
}

// MonthFee is one month of a student's vehicle assignment. RouteID is nil
// when the student is unassigned for that month.
type MonthFee struct {
	RouteID *int    `json:"routeId"`
	Fee     float64 `json:"fee"`
	Paid    float64 `json:"paid"`
}

// VehicleAssignment maps a student to per-month routes and fees. There is at
// most one assignment record per student.
//
// LegacyRouteID carries the pre-migration flat shape, where a single route
// applied to the whole assignment; the migrator folds it into MonthlyFees and
// clears it. Migrated records never serialize the field.
type VehicleAssignment struct {
	ID            int                 `json:"id"`
	StudentID     int                 `json:"studentId"`
	LegacyRouteID *int                `json:"routeId,omitempty"`
	MonthlyFees   map[string]MonthFee `json:"monthlyFees"`
}

// VehicleLedgerEntry records a manual payout to a route's driver for one
// month, independent of per-student collections. Keyed by (RouteID, Month).
type VehicleLedgerEntry struct {
	RouteID      int     `json:"routeId"`
	Month        string  `json:"month"`
	PaidToDriver float64 `json:"paidToDriver"`
}
