// Package ledger is the fee-ledger computation engine. It derives the
// unified fee entry list (academic and month-by-month vehicle fees) from the
// raw record collections, aggregates student summaries, route ledgers and
// transaction reports, and records single and grouped payments.
//
// Every mutation goes through the Service so that "write the store" and
// "invalidate the derived-entry cache" stay one atomic unit.
package ledger

import (
	"sync"

	"github.com/beelineschool-pixel/account/app/models"
	"github.com/beelineschool-pixel/account/app/store"
)

// Service owns the record store handle and the memoized fee entry
// derivation. Safe for concurrent use by HTTP handlers.
type Service struct {
	store    *store.Store
	calendar Calendar

	mu         sync.Mutex
	cache      []models.FeeEntry
	cacheValid bool
}

// New builds a Service over a record store.
func New(st *store.Store, cal Calendar) *Service {
	return &Service{store: st, calendar: cal}
}

// Store exposes the underlying record store for plain collection reads.
func (s *Service) Store() *store.Store {
	return s.store
}

// Calendar returns the academic calendar in effect.
func (s *Service) Calendar() Calendar {
	return s.calendar
}

// FeeEntries returns the derived fee entries, recomputing only when a
// mutation has invalidated the memoized result.
func (s *Service) FeeEntries() ([]models.FeeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feeEntriesLocked()
}

func (s *Service) feeEntriesLocked() ([]models.FeeEntry, error) {
	if !s.cacheValid {
		entries, err := s.derive()
		if err != nil {
			return nil, err
		}
		s.cache = entries
		s.cacheValid = true
	}
	return s.cache, nil
}

// Invalidate drops the memoized derivation. Callers that mutate the store
// outside the Service must invalidate themselves.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.invalidateLocked()
	s.mu.Unlock()
}

func (s *Service) invalidateLocked() {
	s.cache = nil
	s.cacheValid = false
}

// findEntryLocked resolves a fee entry key against the current derivation.
func (s *Service) findEntryLocked(feeEntryID string) (models.FeeEntry, error) {
	entries, err := s.feeEntriesLocked()
	if err != nil {
		return models.FeeEntry{}, err
	}
	for _, e := range entries {
		if e.ID == feeEntryID {
			return e, nil
		}
	}
	return models.FeeEntry{}, notFoundf("fee entry", feeEntryID)
}
