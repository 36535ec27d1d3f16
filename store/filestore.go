package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"networth-ledger/shared"
)

// FileStore persists the dataset as a single JSON file. Writes go through a
// temp file and rename, so a crash mid-save leaves the previous snapshot
// intact. A missing file is not an error; it loads as an empty dataset for the
// configured base currency.
type FileStore struct {
	mu   sync.Mutex
	path string
	base shared.Currency
	log  *logrus.Logger
}

func NewFileStore(path string, base shared.Currency, log *logrus.Logger) *FileStore {
	if log == nil {
		log = logrus.New()
	}
	return &FileStore{path: path, base: base, log: log}
}

func (s *FileStore) Load() (*Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.WithField("path", s.path).Debug("data file not found, starting with an empty dataset")
		return NewDataset(s.base), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file %s: %w", s.path, err)
	}

	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", s.path, err)
	}
	if ds.BaseCurrency == "" {
		ds.BaseCurrency = s.base
	}
	if ds.Rates == nil {
		ds.Rates = NewDataset(ds.BaseCurrency).Rates
	}
	return &ds, nil
}

func (s *FileStore) Save(ds *Dataset) error {
	if ds == nil {
		return fmt.Errorf("cannot save nil dataset")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write data file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace data file %s: %w", s.path, err)
	}
	s.log.WithFields(logrus.Fields{
		"path":         s.path,
		"accounts":     len(ds.Accounts),
		"transactions": len(ds.Transactions),
		"holdings":     len(ds.Holdings),
	}).Debug("dataset saved")
	return nil
}
