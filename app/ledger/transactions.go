package ledger

import (
	"sort"
	"strconv"
	"time"

	"github.com/beelineschool-pixel/account/app/models"
)

// Transaction is one row of the unified income/expense report.
type Transaction struct {
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Method      string  `json:"method"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	InvBill     string  `json:"invBill"`
}

// Transaction types.
const (
	TransactionIncome  = "Income"
	TransactionExpense = "Expense"
)

// Transactions merges payments and expenses into one ledger sorted ascending
// by date, keeping insertion order within equal dates. Orphaned references
// (deleted students or fee types) degrade to placeholder values.
func (s *Service) Transactions() ([]Transaction, error) {
	payments, err := s.store.Payments()
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.Expenses()
	if err != nil {
		return nil, err
	}
	students, err := s.store.Students()
	if err != nil {
		return nil, err
	}
	feeTypes, err := s.store.FeeTypes()
	if err != nil {
		return nil, err
	}

	studentNames := make(map[int]string, len(students))
	for _, st := range students {
		studentNames[st.ID] = st.Name
	}
	feeTypeNames := make(map[int]string, len(feeTypes))
	for _, ft := range feeTypes {
		feeTypeNames[ft.ID] = ft.Name
	}

	transactions := make([]Transaction, 0, len(payments)+len(expenses))
	for _, p := range payments {
		category := "N/A"
		key, keyErr := models.ParseFeeEntryKey(p.FeeEntryID)
		switch {
		case keyErr == nil && key.Kind == models.KeyGroupedMaster:
			category = "Grouped Payment"
		case keyErr == nil && key.Kind == models.KeyVehicle:
			category = "Vehicle Fee - " + key.Month
		default:
			if p.FeeTypeID != nil {
				if name, ok := feeTypeNames[*p.FeeTypeID]; ok {
					category = name
				}
			}
		}

		description := "N/A"
		if name, ok := studentNames[p.StudentID]; ok {
			description = name
		} else if p.IsGroupedMaster() {
			description = "Grouped Payment"
		}

		transactions = append(transactions, Transaction{
			Date:        p.Date,
			Type:        TransactionIncome,
			Category:    category,
			Method:      p.Method,
			Description: description,
			Amount:      p.Amount,
			InvBill:     p.InvoiceID,
		})
	}

	for _, e := range expenses {
		transactions = append(transactions, Transaction{
			Date:        e.Date,
			Type:        TransactionExpense,
			Category:    e.Category,
			Method:      e.PayMode,
			Description: e.Description,
			Amount:      e.Amount,
			InvBill:     "BILL-" + strconv.Itoa(e.ID),
		})
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return parseDate(transactions[i].Date).Before(parseDate(transactions[j].Date))
	})
	return transactions, nil
}

// paymentCategory resolves the report category for one payment; used when a
// single invoice line has to be synthesized.
func (s *Service) paymentCategory(p models.Payment) string {
	key, err := models.ParseFeeEntryKey(p.FeeEntryID)
	if err == nil {
		switch key.Kind {
		case models.KeyGroupedMaster:
			return "Grouped Payment"
		case models.KeyVehicle:
			return "Vehicle Fee - " + key.Month
		}
	}
	if p.FeeTypeID != nil {
		if ft, ok, ftErr := s.store.FindFeeType(*p.FeeTypeID); ftErr == nil && ok {
			return ft.Name
		}
	}
	return "N/A"
}

// parseDate parses a stored YYYY-MM-DD date; unparseable dates sort first.
func parseDate(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}
	}
	return t
}
