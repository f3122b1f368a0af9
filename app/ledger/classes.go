package ledger

// AddClass adds a class name to the class list. Names are unique.
func (s *Service) AddClass(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return validationf("class name is required")
	}
	classes, err := s.store.ClassNames()
	if err != nil {
		return err
	}
	for _, c := range classes {
		if c == name {
			return validationf("class %q already exists", name)
		}
	}
	classes = append(classes, name)
	if err := s.store.SaveClassNames(classes); err != nil {
		return err
	}
	s.invalidateLocked()
	return nil
}

// DeleteClass removes a class name. Students keep their class string;
// fee types scoped to the removed class simply stop matching new students.
func (s *Service) DeleteClass(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	classes, err := s.store.ClassNames()
	if err != nil {
		return err
	}
	kept := classes[:0]
	found := false
	for _, c := range classes {
		if c == name {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return notFoundf("class", name)
	}
	if err := s.store.SaveClassNames(kept); err != nil {
		return err
	}
	s.invalidateLocked()
	return nil
}
