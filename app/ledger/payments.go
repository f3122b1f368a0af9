package ledger

import (
	"sort"

	"github.com/beelineschool-pixel/account/app/models"
	"github.com/beelineschool-pixel/account/app/store"
)

// RecordSinglePayment validates and appends one payment against a derived
// fee entry. For vehicle entries the owning assignment's month "paid" field
// is recomputed as the sum of all payments for that entry key, so applying
// the recorder twice never double-counts the assignment side.
func (s *Service) RecordSinglePayment(feeEntryID string, amount float64, date, method, invoiceID string) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if invoiceID == "" {
		return models.Payment{}, validationf("invoice number is required")
	}
	if amount <= 0 {
		return models.Payment{}, validationf("payment amount must be positive")
	}
	entry, err := s.findEntryLocked(feeEntryID)
	if err != nil {
		return models.Payment{}, err
	}

	payments, err := s.store.Payments()
	if err != nil {
		return models.Payment{}, err
	}
	nextID, err := s.store.NextID(store.CollectionPayments)
	if err != nil {
		return models.Payment{}, err
	}

	payment := models.Payment{
		ID:         nextID,
		FeeEntryID: feeEntryID,
		StudentID:  entry.StudentID,
		FeeTypeID:  entry.FeeTypeID,
		Amount:     amount,
		Date:       date,
		Method:     method,
		InvoiceID:  invoiceID,
	}
	payments = append(payments, payment)
	if err := s.store.SavePayments(payments); err != nil {
		return models.Payment{}, err
	}

	if entry.IsVehicleFee {
		if err := s.syncAssignmentPaid(feeEntryID, payments); err != nil {
			return models.Payment{}, err
		}
	}

	s.invalidateLocked()
	return payment, nil
}

// RecordGroupedPayment pays the full remaining balance of each selected fee
// entry under one invoice. One payment record is written per entry (with the
// real entry key, keeping per-entry ledgers accurate) followed by a master
// record carrying the line items and summed amount under a "manual-" key.
// The master's amount always equals the sum of its sub-payments.
func (s *Service) RecordGroupedPayment(studentID int, feeEntryIDs []string, date, method, invoiceID string) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if invoiceID == "" {
		return models.Payment{}, validationf("invoice number is required")
	}
	if len(feeEntryIDs) == 0 {
		return models.Payment{}, validationf("select at least one fee to pay")
	}

	type pending struct {
		entry   models.FeeEntry
		balance float64
	}
	selected := make([]pending, 0, len(feeEntryIDs))
	seen := make(map[string]bool, len(feeEntryIDs))
	for _, id := range feeEntryIDs {
		if seen[id] {
			return models.Payment{}, validationf("fee entry %s selected more than once", id)
		}
		seen[id] = true
		entry, err := s.findEntryLocked(id)
		if err != nil {
			return models.Payment{}, err
		}
		if entry.Balance <= 0 {
			return models.Payment{}, validationf("fee entry %s has no outstanding balance", id)
		}
		selected = append(selected, pending{entry: entry, balance: entry.Balance})
	}

	payments, err := s.store.Payments()
	if err != nil {
		return models.Payment{}, err
	}
	nextID, err := s.store.NextID(store.CollectionPayments)
	if err != nil {
		return models.Payment{}, err
	}

	var lineItems []models.LineItem
	var total float64
	touchedVehicleKeys := []string{}
	for _, sel := range selected {
		payments = append(payments, models.Payment{
			ID:         nextID,
			FeeEntryID: sel.entry.ID,
			StudentID:  studentID,
			FeeTypeID:  sel.entry.FeeTypeID,
			Amount:     sel.balance,
			Date:       date,
			Method:     method,
			InvoiceID:  invoiceID,
		})
		lineItems = append(lineItems, models.LineItem{Desc: sel.entry.FeeTypeName, Amt: sel.balance})
		total += sel.balance
		if sel.entry.IsVehicleFee {
			touchedVehicleKeys = append(touchedVehicleKeys, sel.entry.ID)
		}
		nextID++
	}

	master := models.Payment{
		ID:         nextID,
		FeeEntryID: models.GroupedMasterKey(invoiceID).String(),
		StudentID:  studentID,
		Amount:     total,
		Date:       date,
		Method:     method,
		InvoiceID:  invoiceID,
		LineItems:  lineItems,
	}
	payments = append(payments, master)

	if err := s.store.SavePayments(payments); err != nil {
		return models.Payment{}, err
	}
	for _, key := range touchedVehicleKeys {
		if err := s.syncAssignmentPaid(key, payments); err != nil {
			return models.Payment{}, err
		}
	}

	s.invalidateLocked()
	return master, nil
}

// syncAssignmentPaid recomputes one vehicle assignment month's paid total
// from the payments collection and writes it back.
func (s *Service) syncAssignmentPaid(feeEntryID string, payments []models.Payment) error {
	key, err := models.ParseFeeEntryKey(feeEntryID)
	if err != nil || key.Kind != models.KeyVehicle {
		return err
	}

	var total float64
	for _, p := range payments {
		if p.FeeEntryID == feeEntryID {
			total += p.Amount
		}
	}

	assignments, err := s.store.VehicleAssignments()
	if err != nil {
		return err
	}
	for i, assignment := range assignments {
		if assignment.ID != key.AssignmentID {
			continue
		}
		monthData := assignment.MonthlyFees[key.Month]
		monthData.Paid = total
		if assignments[i].MonthlyFees == nil {
			assignments[i].MonthlyFees = map[string]models.MonthFee{}
		}
		assignments[i].MonthlyFees[key.Month] = monthData
		return s.store.SaveVehicleAssignments(assignments)
	}
	return notFoundf("vehicle assignment", key.AssignmentID)
}

// Invoice is the data needed to render one receipt: the payment, the school
// header, the student (nil when since deleted) and the line items. Masters
// carry their stored line items; single payments synthesize one line.
type Invoice struct {
	Payment models.Payment    `json:"payment"`
	School  models.SchoolInfo `json:"school"`
	Student *models.Student   `json:"student,omitempty"`
	Lines   []models.LineItem `json:"lines"`
}

// Invoice loads the invoice data for a payment id.
func (s *Service) Invoice(paymentID int) (Invoice, error) {
	payment, ok, err := s.store.FindPayment(paymentID)
	if err != nil {
		return Invoice{}, err
	}
	if !ok {
		return Invoice{}, notFoundf("payment", paymentID)
	}

	school, err := s.store.SchoolInfo()
	if err != nil {
		return Invoice{}, err
	}

	inv := Invoice{Payment: payment, School: school}
	if student, ok, err := s.store.FindStudent(payment.StudentID); err != nil {
		return Invoice{}, err
	} else if ok {
		inv.Student = &student
	}

	if len(payment.LineItems) > 0 {
		inv.Lines = payment.LineItems
	} else {
		inv.Lines = []models.LineItem{{Desc: s.paymentCategory(payment), Amt: payment.Amount}}
	}
	return inv, nil
}

// LatestPaymentForEntry returns the most recent payment recorded against a
// fee entry key, by payment date.
func (s *Service) LatestPaymentForEntry(feeEntryID string) (models.Payment, error) {
	payments, err := s.store.Payments()
	if err != nil {
		return models.Payment{}, err
	}
	relevant := []models.Payment{}
	for _, p := range payments {
		if p.FeeEntryID == feeEntryID {
			relevant = append(relevant, p)
		}
	}
	if len(relevant) == 0 {
		return models.Payment{}, notFoundf("payment for fee entry", feeEntryID)
	}
	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].Date < relevant[j].Date
	})
	return relevant[len(relevant)-1], nil
}
