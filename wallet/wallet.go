// Package wallet persists the agent's wallet record between runs.
package wallet

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Record is the wallet state written to disk. The address comes from
// configuration; this package never generates or stores key material.
type Record struct {
	Address   string    `json:"address"`
	Network   string    `json:"network"`
	CreatedAt time.Time `json:"created_at"`
}

// Store reads and writes the wallet record file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted record. A missing file is not an error; it
// returns a nil record.
func (s *Store) Load() (*Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading wallet file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing wallet file: %w", err)
	}
	return &rec, nil
}

// Save writes the record to disk, readable only by the owner.
func (s *Store) Save(rec *Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding wallet record: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing wallet file: %w", err)
	}
	return nil
}

// LoadOrInit returns the persisted record, creating and saving one from the
// configured address on first run.
func (s *Store) LoadOrInit(address, network string) (*Record, error) {
	rec, err := s.Load()
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return rec, nil
	}

	if address == "" {
		return nil, errors.New("no wallet file and no wallet address configured")
	}

	rec = &Record{
		Address:   address,
		Network:   network,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}
