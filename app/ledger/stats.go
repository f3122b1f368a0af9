package ledger

import (
	"time"

	"github.com/beelineschool-pixel/account/app/models"
)

// DashboardStats is the headline financial position: overall income against
// expenses plus the cash and bank positions, with the latest activity.
// Grouped master payments are excluded from every total here; their
// sub-payments already carry the money.
type DashboardStats struct {
	TotalIncome    float64            `json:"totalIncome"`
	TotalExpenses  float64            `json:"totalExpenses"`
	Net            float64            `json:"net"`
	CashBalance    float64            `json:"cashBalance"`
	BankBalance    float64            `json:"bankBalance"`
	RecentPayments []models.Payment   `json:"recentPayments"`
	OverdueEntries []models.FeeEntry  `json:"overdueEntries"`
}

// Dashboard computes the stats as of today.
func (s *Service) Dashboard(today time.Time) (DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.feeEntriesLocked()
	if err != nil {
		return DashboardStats{}, err
	}
	payments, err := s.store.Payments()
	if err != nil {
		return DashboardStats{}, err
	}
	expenses, err := s.store.Expenses()
	if err != nil {
		return DashboardStats{}, err
	}

	var stats DashboardStats
	for _, e := range entries {
		stats.TotalIncome += e.TotalPaid
	}
	for _, e := range expenses {
		stats.TotalExpenses += e.Amount
		switch e.PayMode {
		case models.MethodCash:
			stats.CashBalance -= e.Amount
		case models.MethodOnline, models.MethodCard:
			stats.BankBalance -= e.Amount
		}
	}
	for _, p := range payments {
		if p.IsGroupedMaster() {
			continue
		}
		switch p.Method {
		case models.MethodCash:
			stats.CashBalance += p.Amount
		case models.MethodOnline, models.MethodCard:
			stats.BankBalance += p.Amount
		}
	}
	stats.Net = stats.TotalIncome - stats.TotalExpenses

	for i := len(payments) - 1; i >= 0 && len(stats.RecentPayments) < 5; i-- {
		if payments[i].IsGroupedMaster() {
			continue
		}
		stats.RecentPayments = append(stats.RecentPayments, payments[i])
	}

	for _, e := range entries {
		if e.Balance <= 0 {
			continue
		}
		due := parseDate(e.DueDate)
		if !due.IsZero() && !due.After(today) {
			stats.OverdueEntries = append(stats.OverdueEntries, e)
		}
	}

	return stats, nil
}

// DueReminders returns the unpaid entries whose reminder date has arrived:
// the fee type's reminder date for academic entries, the due date for
// vehicle entries. Entries without a usable date are skipped.
func (s *Service) DueReminders(today time.Time) ([]models.FeeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.feeEntriesLocked()
	if err != nil {
		return nil, err
	}
	feeTypes, err := s.store.FeeTypes()
	if err != nil {
		return nil, err
	}
	reminderDates := make(map[int]string, len(feeTypes))
	for _, ft := range feeTypes {
		reminderDates[ft.ID] = ft.ReminderDate
	}

	due := []models.FeeEntry{}
	for _, e := range entries {
		if e.Balance <= 0 {
			continue
		}
		dateStr := e.DueDate
		if !e.IsVehicleFee && e.FeeTypeID != nil {
			dateStr = reminderDates[*e.FeeTypeID]
		}
		when := parseDate(dateStr)
		if when.IsZero() || when.After(today) {
			continue
		}
		due = append(due, e)
	}
	return due, nil
}
