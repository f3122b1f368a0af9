package ledger

import (
	"github.com/beelineschool-pixel/account/app/models"
	"github.com/beelineschool-pixel/account/app/store"
)

// CreateFeeType adds a fee type; it immediately applies to every student in
// the matching section.
func (s *Service) CreateFeeType(feeType models.FeeType) (models.FeeType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if feeType.Name == "" {
		return models.FeeType{}, validationf("fee type name is required")
	}
	if feeType.Section == "" {
		return models.FeeType{}, validationf("fee type section is required")
	}
	if feeType.Amount <= 0 {
		return models.FeeType{}, validationf("fee type amount must be positive")
	}

	feeTypes, err := s.store.FeeTypes()
	if err != nil {
		return models.FeeType{}, err
	}
	id, err := s.store.NextID(store.CollectionFeeTypes)
	if err != nil {
		return models.FeeType{}, err
	}
	feeType.ID = id
	feeTypes = append(feeTypes, feeType)
	if err := s.store.SaveFeeTypes(feeTypes); err != nil {
		return models.FeeType{}, err
	}
	s.invalidateLocked()
	return feeType, nil
}

// UpdateFeeType replaces a fee type record in place.
func (s *Service) UpdateFeeType(feeType models.FeeType) (models.FeeType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if feeType.Name == "" {
		return models.FeeType{}, validationf("fee type name is required")
	}
	feeTypes, err := s.store.FeeTypes()
	if err != nil {
		return models.FeeType{}, err
	}
	for i := range feeTypes {
		if feeTypes[i].ID == feeType.ID {
			feeTypes[i] = feeType
			if err := s.store.SaveFeeTypes(feeTypes); err != nil {
				return models.FeeType{}, err
			}
			s.invalidateLocked()
			return feeType, nil
		}
	}
	return models.FeeType{}, notFoundf("fee type", feeType.ID)
}

// DeleteFeeType removes a fee type. Historical payments referencing it stay;
// reports fall back to an "N/A" category for them.
func (s *Service) DeleteFeeType(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	feeTypes, err := s.store.FeeTypes()
	if err != nil {
		return err
	}
	kept := feeTypes[:0]
	found := false
	for _, ft := range feeTypes {
		if ft.ID == id {
			found = true
			continue
		}
		kept = append(kept, ft)
	}
	if !found {
		return notFoundf("fee type", id)
	}
	if err := s.store.SaveFeeTypes(kept); err != nil {
		return err
	}
	s.invalidateLocked()
	return nil
}
