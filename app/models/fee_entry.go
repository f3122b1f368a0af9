package models

// Fee entry payment statuses.
const (
	StatusPending = "Pending"
	StatusPartial = "Partial"
	StatusPaid    = "Paid"
)

// FeeStatus derives the payment status from totals. Nothing paid is Pending
// even when nothing is due; anything paid flips to Paid once the balance is
// cleared, otherwise Partial.
func FeeStatus(totalDue, totalPaid float64) string {
	if totalPaid == 0 {
		return StatusPending
	}
	if totalDue-totalPaid > 0 {
		return StatusPartial
	}
	return StatusPaid
}

// FeeEntry is a derived, per-student fee obligation unifying academic and
// vehicle dues into one balance/status shape. It is never persisted; the
// ledger recomputes entries from raw records. Student attributes are
// denormalized for rendering.
type FeeEntry struct {
	ID                string  `json:"id"`
	StudentID         int     `json:"studentId"`
	StudentName       string  `json:"studentName"`
	StudentClass      string  `json:"studentClass"`
	StudentParentName string  `json:"studentParentName"`
	StudentWhatsApp   string  `json:"studentWhatsApp"`
	StudentAdmNo      string  `json:"studentAdmNo"`
	FeeTypeID         *int    `json:"feeTypeId"`
	FeeTypeName       string  `json:"feeTypeName"`
	DueDate           string  `json:"dueDate"`
	TotalDue          float64 `json:"totalDue"`
	TotalPaid         float64 `json:"totalPaid"`
	Balance           float64 `json:"balance"`
	Status            string  `json:"status"`
	IsVehicleFee      bool    `json:"isVehicleFee"`
}
