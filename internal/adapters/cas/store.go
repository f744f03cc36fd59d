// Package cas implements the install ledger as a flat JSON file store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InstallLedger = (*Store)(nil)

// Store implements ports.InstallLedger using a JSON file holding a list of records.
type Store struct {
	path    string
	mu      sync.RWMutex
	records []domain.InstallRecord
}

// NewStore creates a new ledger backed by the file at the given path.
// A missing or empty file is an empty ledger.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: filepath.Clean(path),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read install ledger"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.records); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal install ledger"), "path", s.path)
	}

	return nil
}

// save must be called with s.mu held.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal install ledger")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for install ledger")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return zerr.Wrap(err, "failed to write install ledger")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Already renamed on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write install ledger")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to write install ledger")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.Wrap(err, "failed to write install ledger")
	}

	return nil
}

// Record appends rec and persists the ledger.
func (s *Store) Record(rec domain.InstallRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	if err := s.save(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return err
	}
	return nil
}

// List returns a copy of all records, oldest first.
func (s *Store) List() ([]domain.InstallRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.InstallRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}
