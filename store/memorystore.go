package store

import (
	"sync"

	"networth-ledger/shared"
)

// MemoryStore keeps the dataset in process memory. Load and Save exchange deep
// copies, so callers can never alias the stored snapshot. Used by tests and as
// a scratch backend.
type MemoryStore struct {
	sync.RWMutex
	data *Dataset
}

// NewMemoryStore creates a store seeded with initial, or with an empty dataset
// based on base when initial is nil.
func NewMemoryStore(initial *Dataset, base shared.Currency) *MemoryStore {
	if initial == nil {
		initial = NewDataset(base)
	}
	return &MemoryStore{data: initial.Clone()}
}

func (s *MemoryStore) Load() (*Dataset, error) {
	s.RLock()
	defer s.RUnlock()
	return s.data.Clone(), nil
}

func (s *MemoryStore) Save(ds *Dataset) error {
	if ds == nil {
		return nil
	}
	s.Lock()
	defer s.Unlock()
	s.data = ds.Clone()
	return nil
}
