package ledger

import (
	"github.com/beelineschool-pixel/account/app/models"
)

// derive recomputes the full fee entry list from the raw collections.
// Academic entries come first (students in stored order, fee types inner),
// then vehicle entries per assignment in month-cycle order. Grouped master
// payments carry "manual-" keys that match no entry, so they never
// contribute to per-entry totals.
func (s *Service) derive() ([]models.FeeEntry, error) {
	students, err := s.store.Students()
	if err != nil {
		return nil, err
	}
	feeTypes, err := s.store.FeeTypes()
	if err != nil {
		return nil, err
	}
	payments, err := s.store.Payments()
	if err != nil {
		return nil, err
	}
	assignments, err := s.store.VehicleAssignments()
	if err != nil {
		return nil, err
	}

	paidByEntry := make(map[string]float64, len(payments))
	for _, p := range payments {
		paidByEntry[p.FeeEntryID] += p.Amount
	}

	entries := []models.FeeEntry{}

	for _, student := range students {
		for _, feeType := range feeTypes {
			if !feeType.AppliesTo(student) {
				continue
			}
			key := models.AcademicFeeKey(student.ID, feeType.ID).String()
			feeTypeID := feeType.ID
			totalPaid := paidByEntry[key]
			entries = append(entries, models.FeeEntry{
				ID:                key,
				StudentID:         student.ID,
				StudentName:       student.Name,
				StudentClass:      student.Class,
				StudentParentName: student.ParentName,
				StudentWhatsApp:   student.WhatsApp,
				StudentAdmNo:      student.AdmNo,
				FeeTypeID:         &feeTypeID,
				FeeTypeName:       feeType.Name,
				DueDate:           feeType.DueDate,
				TotalDue:          feeType.Amount,
				TotalPaid:         totalPaid,
				Balance:           feeType.Amount - totalPaid,
				Status:            models.FeeStatus(feeType.Amount, totalPaid),
				IsVehicleFee:      false,
			})
		}
	}

	studentsByID := make(map[int]models.Student, len(students))
	for _, st := range students {
		studentsByID[st.ID] = st
	}

	for _, assignment := range assignments {
		student, ok := studentsByID[assignment.StudentID]
		if !ok {
			continue
		}
		for idx, month := range models.AcademicMonths {
			monthData := assignment.MonthlyFees[month]
			if monthData.Fee <= 0 {
				continue
			}
			key := models.VehicleFeeKey(assignment.ID, month).String()
			totalPaid := paidByEntry[key]
			entries = append(entries, models.FeeEntry{
				ID:                key,
				StudentID:         student.ID,
				StudentName:       student.Name,
				StudentClass:      student.Class,
				StudentParentName: student.ParentName,
				StudentWhatsApp:   student.WhatsApp,
				StudentAdmNo:      student.AdmNo,
				FeeTypeID:         nil,
				FeeTypeName:       "Vehicle Fee - " + month,
				DueDate:           s.calendar.VehicleDueDate(idx),
				TotalDue:          monthData.Fee,
				TotalPaid:         totalPaid,
				Balance:           monthData.Fee - totalPaid,
				Status:            models.FeeStatus(monthData.Fee, totalPaid),
				IsVehicleFee:      true,
			})
		}
	}

	return entries, nil
}
