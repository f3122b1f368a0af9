// Package store implements the record store: whole-collection load/save of
// JSON-serializable records over a pluggable key-value backend. Collection
// contents keep the exact field names and key composition of the data the
// browser edition of this application wrote, so an imported dump loads as-is.
package store

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Collection names. These are the storage keys of the durable format.
const (
	CollectionStudents           = "students"
	CollectionFeeTypes           = "feeTypes"
	CollectionPayments           = "payments"
	CollectionExpenses           = "expenses"
	CollectionRoutes             = "routes"
	CollectionVehicleAssignments = "vehicleAssignments"
	CollectionVehicleLedger      = "vehicleLedger"
	CollectionClasses            = "classes"
	CollectionSchoolInfo         = "schoolInfo"
	CollectionUsers              = "users"
)

// DefaultClasses seeds the classes collection on first use.
var DefaultClasses = []string{"LKG", "UKG", "Class 1", "Class 2", "Class 3", "Class 4", "Class 5"}

// KV is the physical backend: one JSON document per collection name.
// Load returns nil data (and no error) for a collection never written.
type KV interface {
	Load(name string) ([]byte, error)
	Save(name string, data []byte) error
}

// Store exposes typed whole-collection access over a KV backend.
type Store struct {
	kv KV
}

// New wraps a KV backend.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

func load[T any](s *Store, name string) ([]T, error) {
	raw, err := s.kv.Load(name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return records, nil
}

func save[T any](s *Store, name string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := s.kv.Save(name, raw); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// NextID allocates the next record id for a collection: max existing id + 1,
// or 1 for an empty collection.
func (s *Store) NextID(name string) (int, error) {
	records, err := load[struct {
		ID int `json:"id"`
	}](s, name)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, r := range records {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1, nil
}

// ClassNames returns the class list, seeding the defaults on first use. The
// result is sorted by name.
func (s *Store) ClassNames() ([]string, error) {
	classes, err := load[string](s, CollectionClasses)
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		classes = append([]string{}, DefaultClasses...)
		if err := save(s, CollectionClasses, classes); err != nil {
			return nil, err
		}
	}
	sort.Strings(classes)
	return classes, nil
}

// SaveClassNames replaces the class list.
func (s *Store) SaveClassNames(classes []string) error {
	return save(s, CollectionClasses, classes)
}
