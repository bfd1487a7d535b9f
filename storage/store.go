package storage

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store persists tables on disk, one JSON file per table under a data
// directory. A table is the complete ordered list of its records; Load
// and Save always move the whole table, there is no partial update.
type Store struct {
	dataDir string
}

// NewStore creates a store rooted at dataDir, creating the directory
// if needed.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, errors.Wrap(err, "creating data directory")
	}
	return &Store{dataDir: dataDir}, nil
}

// tableFile returns the file path for a table's data
func (s *Store) tableFile(table string) string {
	return filepath.Join(s.dataDir, table+".json")
}

// Load reads all records of a table. A table that has never been
// saved loads as an empty table, not an error.
func (s *Store) Load(table string) ([]Record, error) {
	data, err := os.ReadFile(s.tableFile(table))
	if os.IsNotExist(err) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading table %q", table)
	}

	var rows []Record
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrapf(err, "decoding table %q", table)
	}
	if rows == nil {
		rows = []Record{}
	}
	return rows, nil
}

// Save replaces a table's contents. The rows go to a temporary file
// first and are renamed into place, so an interrupted save never
// truncates the existing table file.
func (s *Store) Save(table string, rows []Record) error {
	if rows == nil {
		rows = []Record{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encoding table %q", table)
	}

	tmp := s.tableFile(table) + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, "writing table %q", table)
	}
	if err := os.Rename(tmp, s.tableFile(table)); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "replacing table %q", table)
	}
	return nil
}
