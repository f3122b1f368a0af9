package store

import (
	"github.com/beelineschool-pixel/account/app/models"
)

// Students loads the students collection.
func (s *Store) Students() ([]models.Student, error) {
	return load[models.Student](s, CollectionStudents)
}

// SaveStudents replaces the students collection.
func (s *Store) SaveStudents(records []models.Student) error {
	return save(s, CollectionStudents, records)
}

// FindStudent looks a student up by id.
func (s *Store) FindStudent(id int) (models.Student, bool, error) {
	records, err := s.Students()
	if err != nil {
		return models.Student{}, false, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, true, nil
		}
	}
	return models.Student{}, false, nil
}

// FeeTypes loads the fee types collection.
func (s *Store) FeeTypes() ([]models.FeeType, error) {
	return load[models.FeeType](s, CollectionFeeTypes)
}

// SaveFeeTypes replaces the fee types collection.
func (s *Store) SaveFeeTypes(records []models.FeeType) error {
	return save(s, CollectionFeeTypes, records)
}

// FindFeeType looks a fee type up by id.
func (s *Store) FindFeeType(id int) (models.FeeType, bool, error) {
	records, err := s.FeeTypes()
	if err != nil {
		return models.FeeType{}, false, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, true, nil
		}
	}
	return models.FeeType{}, false, nil
}

// Payments loads the payments collection.
func (s *Store) Payments() ([]models.Payment, error) {
	return load[models.Payment](s, CollectionPayments)
}

// SavePayments replaces the payments collection.
func (s *Store) SavePayments(records []models.Payment) error {
	return save(s, CollectionPayments, records)
}

// FindPayment looks a payment up by id.
func (s *Store) FindPayment(id int) (models.Payment, bool, error) {
	records, err := s.Payments()
	if err != nil {
		return models.Payment{}, false, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, true, nil
		}
	}
	return models.Payment{}, false, nil
}

// Expenses loads the expenses collection.
func (s *Store) Expenses() ([]models.Expense, error) {
	return load[models.Expense](s, CollectionExpenses)
}

// SaveExpenses replaces the expenses collection.
func (s *Store) SaveExpenses(records []models.Expense) error {
	return save(s, CollectionExpenses, records)
}

// Routes loads the vehicle routes collection.
func (s *Store) Routes() ([]models.Route, error) {
	return load[models.Route](s, CollectionRoutes)
}

// SaveRoutes replaces the vehicle routes collection.
func (s *Store) SaveRoutes(records []models.Route) error {
	return save(s, CollectionRoutes, records)
}

// FindRoute looks a route up by id.
func (s *Store) FindRoute(id int) (models.Route, bool, error) {
	records, err := s.Routes()
	if err != nil {
		return models.Route{}, false, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, true, nil
		}
	}
	return models.Route{}, false, nil
}

// VehicleAssignments loads the vehicle assignments collection.
func (s *Store) VehicleAssignments() ([]models.VehicleAssignment, error) {
	return load[models.VehicleAssignment](s, CollectionVehicleAssignments)
}

// SaveVehicleAssignments replaces the vehicle assignments collection.
func (s *Store) SaveVehicleAssignments(records []models.VehicleAssignment) error {
	return save(s, CollectionVehicleAssignments, records)
}

// VehicleLedger loads the driver payout ledger collection.
func (s *Store) VehicleLedger() ([]models.VehicleLedgerEntry, error) {
	return load[models.VehicleLedgerEntry](s, CollectionVehicleLedger)
}

// SaveVehicleLedger replaces the driver payout ledger collection.
func (s *Store) SaveVehicleLedger(records []models.VehicleLedgerEntry) error {
	return save(s, CollectionVehicleLedger, records)
}

// SchoolInfo returns the singleton school info record, zero-valued when
// never configured.
func (s *Store) SchoolInfo() (models.SchoolInfo, error) {
	records, err := load[models.SchoolInfo](s, CollectionSchoolInfo)
	if err != nil {
		return models.SchoolInfo{}, err
	}
	if len(records) == 0 {
		return models.SchoolInfo{}, nil
	}
	return records[0], nil
}

// SetSchoolInfo replaces the singleton school info record.
func (s *Store) SetSchoolInfo(info models.SchoolInfo) error {
	return save(s, CollectionSchoolInfo, []models.SchoolInfo{info})
}

// Users loads the staff users collection.
func (s *Store) Users() ([]models.User, error) {
	return load[models.User](s, CollectionUsers)
}

// SaveUsers replaces the staff users collection.
func (s *Store) SaveUsers(records []models.User) error {
	return save(s, CollectionUsers, records)
}

// FindUserByUsername looks a user up by username.
func (s *Store) FindUserByUsername(username string) (models.User, bool, error) {
	records, err := s.Users()
	if err != nil {
		return models.User{}, false, err
	}
	for _, r := range records {
		if r.Username == username {
			return r, true, nil
		}
	}
	return models.User{}, false, nil
}
