package ledger

import (
	"github.com/beelineschool-pixel/account/app/models"
	"github.com/beelineschool-pixel/account/app/store"
)

// CreateExpense appends an expense record.
func (s *Service) CreateExpense(expense models.Expense) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if expense.Category == "" {
		return models.Expense{}, validationf("expense category is required")
	}
	if expense.Amount <= 0 {
		return models.Expense{}, validationf("expense amount must be positive")
	}

	expenses, err := s.store.Expenses()
	if err != nil {
		return models.Expense{}, err
	}
	id, err := s.store.NextID(store.CollectionExpenses)
	if err != nil {
		return models.Expense{}, err
	}
	expense.ID = id
	expenses = append(expenses, expense)
	if err := s.store.SaveExpenses(expenses); err != nil {
		return models.Expense{}, err
	}
	s.invalidateLocked()
	return expense, nil
}

// UpdateExpense replaces an expense record in place.
func (s *Service) UpdateExpense(expense models.Expense) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.store.Expenses()
	if err != nil {
		return models.Expense{}, err
	}
	for i := range expenses {
		if expenses[i].ID == expense.ID {
			expenses[i] = expense
			if err := s.store.SaveExpenses(expenses); err != nil {
				return models.Expense{}, err
			}
			s.invalidateLocked()
			return expense, nil
		}
	}
	return models.Expense{}, notFoundf("expense", expense.ID)
}

// DeleteExpense removes an expense record.
func (s *Service) DeleteExpense(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.store.Expenses()
	if err != nil {
		return err
	}
	kept := expenses[:0]
	found := false
	for _, e := range expenses {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return notFoundf("expense", id)
	}
	if err := s.store.SaveExpenses(kept); err != nil {
		return err
	}
	s.invalidateLocked()
	return nil
}
