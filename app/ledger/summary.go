package ledger

// StudentSummary rolls a student's academic fee entries up into totals plus a
// per-fee-type due map. Vehicle fees are excluded. Fees is pre-seeded with
// every distinct fee type name so consumers can render a stable column set.
type StudentSummary struct {
	TotalDue  float64            `json:"totalDue"`
	TotalPaid float64            `json:"totalPaid"`
	Balance   float64            `json:"balance"`
	Fees      map[string]float64 `json:"fees"`
}

// StudentSummary aggregates the student's non-vehicle fee entries. A student
// with no matching entries yields a zero summary, not an error.
func (s *Service) StudentSummary(studentID int) (StudentSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.feeEntriesLocked()
	if err != nil {
		return StudentSummary{}, err
	}
	feeTypes, err := s.store.FeeTypes()
	if err != nil {
		return StudentSummary{}, err
	}

	summary := StudentSummary{Fees: make(map[string]float64, len(feeTypes))}
	for _, ft := range feeTypes {
		summary.Fees[ft.Name] = 0
	}

	for _, entry := range entries {
		if entry.IsVehicleFee || entry.StudentID != studentID {
			continue
		}
		summary.Fees[entry.FeeTypeName] += entry.TotalDue
		summary.TotalDue += entry.TotalDue
		summary.TotalPaid += entry.TotalPaid
	}
	summary.Balance = summary.TotalDue - summary.TotalPaid
	return summary, nil
}
