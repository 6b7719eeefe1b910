package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikbrunner/drill/internal/importer"
	"github.com/nikbrunner/drill/internal/model"
)

// Storage defines the interface for reading a question deck.
type Storage interface {
	Load() (*model.Deck, error)
}

// CSVStorage implements Storage using a CSV file.
type CSVStorage struct {
	path string
}

// NewCSVStorage creates a new CSVStorage with the given file path.
func NewCSVStorage(path string) *CSVStorage {
	return &CSVStorage{path: path}
}

// Path returns the storage file path.
func (s *CSVStorage) Path() string {
	return s.path
}

// Load reads the deck from the CSV file.
func (s *CSVStorage) Load() (*model.Deck, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	questions, err := importer.ParseCSV(file)
	if err != nil {
		return nil, err
	}
	return model.NewDeck(questions), nil
}

// IsSQLitePath reports whether path names a SQLite deck database.
func IsSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// OpenStorage opens the storage backend matching the deck file extension
// for reading. The caller must close the returned closer when done.
func OpenStorage(path string) (Storage, func() error, error) {
	if IsSQLitePath(path) {
		s, err := OpenSQLiteReadOnly(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open deck database: %w", err)
		}
		return s, s.Close, nil
	}
	return NewCSVStorage(path), func() error { return nil }, nil
}

// DefaultDataDir returns the default data directory: ~/.config/drill
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "drill"), nil
}

// DefaultDeckPath returns the default deck path: ~/.config/drill/questions.csv
func DefaultDeckPath() (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "questions.csv"), nil
}
