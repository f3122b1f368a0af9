package ledger

import (
	"github.com/beelineschool-pixel/account/app/models"
	"github.com/beelineschool-pixel/account/app/store"
)

// CreateStudent adds a student record.
func (s *Service) CreateStudent(student models.Student) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if student.Name == "" {
		return models.Student{}, validationf("student name is required")
	}
	if student.Class == "" {
		return models.Student{}, validationf("student class is required")
	}

	students, err := s.store.Students()
	if err != nil {
		return models.Student{}, err
	}
	id, err := s.store.NextID(store.CollectionStudents)
	if err != nil {
		return models.Student{}, err
	}
	student.ID = id
	students = append(students, student)
	if err := s.store.SaveStudents(students); err != nil {
		return models.Student{}, err
	}
	s.invalidateLocked()
	return student, nil
}

// UpdateStudent replaces a student record in place.
func (s *Service) UpdateStudent(student models.Student) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if student.Name == "" {
		return models.Student{}, validationf("student name is required")
	}
	students, err := s.store.Students()
	if err != nil {
		return models.Student{}, err
	}
	for i := range students {
		if students[i].ID == student.ID {
			students[i] = student
			if err := s.store.SaveStudents(students); err != nil {
				return models.Student{}, err
			}
			s.invalidateLocked()
			return student, nil
		}
	}
	return models.Student{}, notFoundf("student", student.ID)
}

// DeleteStudent removes a student and cascades to the student's payments and
// vehicle assignments. Historical payments of other students are untouched.
func (s *Service) DeleteStudent(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	students, err := s.store.Students()
	if err != nil {
		return err
	}
	kept := students[:0]
	found := false
	for _, st := range students {
		if st.ID == id {
			found = true
			continue
		}
		kept = append(kept, st)
	}
	if !found {
		return notFoundf("student", id)
	}
	if err := s.store.SaveStudents(kept); err != nil {
		return err
	}

	payments, err := s.store.Payments()
	if err != nil {
		return err
	}
	keptPayments := payments[:0]
	for _, p := range payments {
		if p.StudentID != id {
			keptPayments = append(keptPayments, p)
		}
	}
	if err := s.store.SavePayments(keptPayments); err != nil {
		return err
	}

	assignments, err := s.store.VehicleAssignments()
	if err != nil {
		return err
	}
	keptAssignments := assignments[:0]
	for _, a := range assignments {
		if a.StudentID != id {
			keptAssignments = append(keptAssignments, a)
		}
	}
	if err := s.store.SaveVehicleAssignments(keptAssignments); err != nil {
		return err
	}

	s.invalidateLocked()
	return nil
}
