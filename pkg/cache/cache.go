// Package cache persists the scraped country table as a CSV file.
//
// The cache is binary present/absent: a present file is authoritative
// and skips the network entirely, an absent file triggers a full
// scrape. There is no staleness check and no partial merging.
package cache

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/dtnitsch/name-atlas/models"
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the cached table. ok is false when no cache file exists.
// A present but undecodable file is an error; the caller treats that
// as fatal.
func (s *Store) Load() ([]models.CountryRecord, bool, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to open cache: %w", err)
	}
	defer f.Close()

	var records []models.CountryRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, false, fmt.Errorf("failed to decode cache: %w", err)
	}
	return records, true, nil
}

// Save overwrites the cache file with the given records.
func (s *Store) Save(records []models.CountryRecord) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}

	if err := gocsv.MarshalFile(&records, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode cache: %w", err)
	}

	// Explicitly close to catch flush errors; the file is the sole
	// source of truth for every later run.
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close cache: %w", err)
	}
	return nil
}
