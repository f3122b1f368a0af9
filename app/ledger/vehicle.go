package ledger

import (
	"github.com/beelineschool-pixel/account/app/models"
	"github.com/beelineschool-pixel/account/app/store"
)

// StudentMonth is one student's fee/paid cell in a route ledger. OnRoute is
// false for months the student rides a different route or none at all.
type StudentMonth struct {
	OnRoute bool    `json:"onRoute"`
	Fee     float64 `json:"fee"`
	Paid    float64 `json:"paid"`
}

// RouteStudent is one student's row in a route ledger.
type RouteStudent struct {
	StudentID    int                     `json:"studentId"`
	AssignmentID int                     `json:"assignmentId"`
	Name         string                  `json:"name"`
	Class        string                  `json:"class"`
	Months       map[string]StudentMonth `json:"months"`
	TotalPaid    float64                 `json:"totalPaid"`
}

// MonthTotal reconciles one route month: what students paid in against what
// went out to the driver. A negative balance (payout exceeding collection) is
// an operational fact, flagged via Overpaid and never rejected.
type MonthTotal struct {
	Month        string  `json:"month"`
	Collection   float64 `json:"collection"`
	PaidToDriver float64 `json:"paidToDriver"`
	Balance      float64 `json:"balance"`
	Overpaid     bool    `json:"overpaid"`
}

// RouteLedger is the full collection-versus-payout picture for one route
// across the academic cycle.
type RouteLedger struct {
	Route             models.Route   `json:"route"`
	Students          []RouteStudent `json:"students"`
	Months            []MonthTotal   `json:"months"`
	TotalCollection   float64        `json:"totalCollection"`
	TotalPaidToDriver float64        `json:"totalPaidToDriver"`
	TotalBalance      float64        `json:"totalBalance"`
}

// RouteLedger computes the ledger for one route.
func (s *Service) RouteLedger(routeID int) (RouteLedger, error) {
	route, ok, err := s.store.FindRoute(routeID)
	if err != nil {
		return RouteLedger{}, err
	}
	if !ok {
		return RouteLedger{}, notFoundf("route", routeID)
	}
	return s.buildRouteLedger(route)
}

// RouteLedgers computes the ledger for every route, in stored route order.
func (s *Service) RouteLedgers() ([]RouteLedger, error) {
	routes, err := s.store.Routes()
	if err != nil {
		return nil, err
	}
	ledgers := make([]RouteLedger, 0, len(routes))
	for _, route := range routes {
		ledger, err := s.buildRouteLedger(route)
		if err != nil {
			return nil, err
		}
		ledgers = append(ledgers, ledger)
	}
	return ledgers, nil
}

func (s *Service) buildRouteLedger(route models.Route) (RouteLedger, error) {
	students, err := s.store.Students()
	if err != nil {
		return RouteLedger{}, err
	}
	assignments, err := s.store.VehicleAssignments()
	if err != nil {
		return RouteLedger{}, err
	}
	payouts, err := s.store.VehicleLedger()
	if err != nil {
		return RouteLedger{}, err
	}

	studentsByID := make(map[int]models.Student, len(students))
	for _, st := range students {
		studentsByID[st.ID] = st
	}
	payoutByMonth := make(map[string]float64, len(payouts))
	for _, entry := range payouts {
		if entry.RouteID == route.ID {
			payoutByMonth[entry.Month] = entry.PaidToDriver
		}
	}

	ledger := RouteLedger{Route: route}
	collectionByMonth := make(map[string]float64, len(models.AcademicMonths))

	for _, assignment := range assignments {
		student, ok := studentsByID[assignment.StudentID]
		if !ok {
			continue
		}
		row := RouteStudent{
			StudentID:    student.ID,
			AssignmentID: assignment.ID,
			Name:         student.Name,
			Class:        student.Class,
			Months:       make(map[string]StudentMonth, len(models.AcademicMonths)),
		}
		onRoute := false
		for _, month := range models.AcademicMonths {
			monthData := assignment.MonthlyFees[month]
			if monthData.RouteID == nil || *monthData.RouteID != route.ID {
				row.Months[month] = StudentMonth{}
				continue
			}
			onRoute = true
			row.Months[month] = StudentMonth{OnRoute: true, Fee: monthData.Fee, Paid: monthData.Paid}
			row.TotalPaid += monthData.Paid
			collectionByMonth[month] += monthData.Paid
		}
		if onRoute {
			ledger.Students = append(ledger.Students, row)
		}
	}

	for _, month := range models.AcademicMonths {
		collection := collectionByMonth[month]
		paidToDriver := payoutByMonth[month]
		balance := collection - paidToDriver
		ledger.Months = append(ledger.Months, MonthTotal{
			Month:        month,
			Collection:   collection,
			PaidToDriver: paidToDriver,
			Balance:      balance,
			Overpaid:     balance < 0,
		})
		ledger.TotalCollection += collection
		ledger.TotalPaidToDriver += paidToDriver
		ledger.TotalBalance += balance
	}

	return ledger, nil
}

// CreateRoute adds a vehicle route.
func (s *Service) CreateRoute(route models.Route) (models.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if route.Name == "" {
		return models.Route{}, validationf("route name is required")
	}
	routes, err := s.store.Routes()
	if err != nil {
		return models.Route{}, err
	}
	id, err := s.store.NextID(store.CollectionRoutes)
	if err != nil {
		return models.Route{}, err
	}
	route.ID = id
	routes = append(routes, route)
	if err := s.store.SaveRoutes(routes); err != nil {
		return models.Route{}, err
	}
	s.invalidateLocked()
	return route, nil
}

// DeleteRoute removes a route and unassigns every assignment month that
// referenced it: routeId cleared, fee and paid reset to zero. Those months
// disappear from the derived entries on the next recomputation.
func (s *Service) DeleteRoute(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	routes, err := s.store.Routes()
	if err != nil {
		return err
	}
	kept := routes[:0]
	found := false
	for _, r := range routes {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return notFoundf("route", id)
	}
	if err := s.store.SaveRoutes(kept); err != nil {
		return err
	}

	assignments, err := s.store.VehicleAssignments()
	if err != nil {
		return err
	}
	for i := range assignments {
		for _, month := range models.AcademicMonths {
			monthData := assignments[i].MonthlyFees[month]
			if monthData.RouteID != nil && *monthData.RouteID == id {
				assignments[i].MonthlyFees[month] = models.MonthFee{}
			}
		}
	}
	if err := s.store.SaveVehicleAssignments(assignments); err != nil {
		return err
	}

	ledgerEntries, err := s.store.VehicleLedger()
	if err != nil {
		return err
	}
	keptEntries := ledgerEntries[:0]
	for _, entry := range ledgerEntries {
		if entry.RouteID != id {
			keptEntries = append(keptEntries, entry)
		}
	}
	if err := s.store.SaveVehicleLedger(keptEntries); err != nil {
		return err
	}

	s.invalidateLocked()
	return nil
}

// CreateAssignment enrols a student into the vehicle fee cycle with every
// month unassigned. A student can hold at most one assignment record.
func (s *Service) CreateAssignment(studentID int) (models.VehicleAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok, err := s.store.FindStudent(studentID); err != nil {
		return models.VehicleAssignment{}, err
	} else if !ok {
		return models.VehicleAssignment{}, notFoundf("student", studentID)
	}

	assignments, err := s.store.VehicleAssignments()
	if err != nil {
		return models.VehicleAssignment{}, err
	}
	for _, a := range assignments {
		if a.StudentID == studentID {
			return models.VehicleAssignment{}, validationf("student %d already has a vehicle assignment", studentID)
		}
	}

	id, err := s.store.NextID(store.CollectionVehicleAssignments)
	if err != nil {
		return models.VehicleAssignment{}, err
	}
	assignment := models.VehicleAssignment{
		ID:          id,
		StudentID:   studentID,
		MonthlyFees: make(map[string]models.MonthFee, len(models.AcademicMonths)),
	}
	for _, month := range models.AcademicMonths {
		assignment.MonthlyFees[month] = models.MonthFee{}
	}
	assignments = append(assignments, assignment)
	if err := s.store.SaveVehicleAssignments(assignments); err != nil {
		return models.VehicleAssignment{}, err
	}
	s.invalidateLocked()
	return assignment, nil
}

// UpdateAssignmentMonths applies a route and monthly fee to the selected
// months of an assignment, leaving other months untouched.
func (s *Service) UpdateAssignmentMonths(assignmentID int, months []string, routeID int, fee float64) (models.VehicleAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(months) == 0 {
		return models.VehicleAssignment{}, validationf("select at least one month to apply changes")
	}
	for _, month := range months {
		if models.MonthIndex(month) < 0 {
			return models.VehicleAssignment{}, validationf("unknown academic month %q", month)
		}
	}
	if _, ok, err := s.store.FindRoute(routeID); err != nil {
		return models.VehicleAssignment{}, err
	} else if !ok {
		return models.VehicleAssignment{}, notFoundf("route", routeID)
	}

	assignments, err := s.store.VehicleAssignments()
	if err != nil {
		return models.VehicleAssignment{}, err
	}
	for i := range assignments {
		if assignments[i].ID != assignmentID {
			continue
		}
		if assignments[i].MonthlyFees == nil {
			assignments[i].MonthlyFees = map[string]models.MonthFee{}
		}
		for _, month := range months {
			monthData := assignments[i].MonthlyFees[month]
			rid := routeID
			monthData.RouteID = &rid
			monthData.Fee = fee
			assignments[i].MonthlyFees[month] = monthData
		}
		if err := s.store.SaveVehicleAssignments(assignments); err != nil {
			return models.VehicleAssignment{}, err
		}
		s.invalidateLocked()
		return assignments[i], nil
	}
	return models.VehicleAssignment{}, notFoundf("vehicle assignment", assignmentID)
}

// SetDriverPayout upserts the manual payout recorded for a route month.
func (s *Service) SetDriverPayout(routeID int, month string, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if models.MonthIndex(month) < 0 {
		return validationf("unknown academic month %q", month)
	}
	if _, ok, err := s.store.FindRoute(routeID); err != nil {
		return err
	} else if !ok {
		return notFoundf("route", routeID)
	}

	entries, err := s.store.VehicleLedger()
	if err != nil {
		return err
	}
	updated := false
	for i := range entries {
		if entries[i].RouteID == routeID && entries[i].Month == month {
			entries[i].PaidToDriver = amount
			updated = true
			break
		}
	}
	if !updated {
		entries = append(entries, models.VehicleLedgerEntry{RouteID: routeID, Month: month, PaidToDriver: amount})
	}
	if err := s.store.SaveVehicleLedger(entries); err != nil {
		return err
	}
	s.invalidateLocked()
	return nil
}
