package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/nikbrunner/drill/internal/importer"
	"github.com/nikbrunner/drill/internal/model"
)

const currentSchemaVersion = 1

// requiredColumns must exist on the questions table of a deck database.
var requiredColumns = []string{"id", "category", "question", "answer"}

// SQLiteStorage implements Storage using a SQLite database.
type SQLiteStorage struct {
	db   *sql.DB
	path string

	// unordered is set for databases without a position column;
	// rows then come back in insertion order.
	unordered bool
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// OpenSQLiteReadOnly opens an existing deck database for reading only.
// Nothing is created or migrated. A database without a questions table, or
// whose table lacks a required column, fails with importer.ErrMissingColumns.
func OpenSQLiteReadOnly(path string) (*SQLiteStorage, error) {
	dsn := "file:" + (&url.URL{Path: path}).EscapedPath() + "?mode=ro"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	columns, err := tableColumns(db, "questions")
	if err != nil {
		db.Close()
		return nil, err
	}

	var missing []string
	for _, name := range requiredColumns {
		if !columns[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		db.Close()
		return nil, fmt.Errorf("%w: questions table lacks %s", importer.ErrMissingColumns, strings.Join(missing, ", "))
	}

	return &SQLiteStorage{db: db, path: path, unordered: !columns["position"]}, nil
}

// tableColumns returns the lowercased column names of table.
// The map is empty when the table does not exist.
func tableColumns(db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.Query("SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns[strings.ToLower(name)] = true
	}
	return columns, rows.Err()
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// migrate runs database migrations.
func (s *SQLiteStorage) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < currentSchemaVersion {
		return s.migrateV1()
	}
	return nil
}

// migrateV1 creates the initial schema.
// position keeps the deck order of the source file.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY NOT NULL,
			category TEXT NOT NULL,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			position INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);
		CREATE INDEX IF NOT EXISTS idx_questions_position ON questions(position);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads the deck from the SQLite database in stored order.
func (s *SQLiteStorage) Load() (*model.Deck, error) {
	order := "position, id"
	if s.unordered {
		order = "rowid"
	}

	rows, err := s.db.Query(`
		SELECT id, category, question, answer
		FROM questions
		ORDER BY ` + order)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Category, &q.Question, &q.Answer); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return model.NewDeck(questions), nil
}

// Save replaces the stored deck with the given one.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(deck *model.Deck) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM questions"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO questions (id, category, question, answer, position)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, q := range deck.Questions {
		if _, err := stmt.Exec(q.ID, q.Category, q.Question, q.Answer, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DefaultSQLitePath returns the default SQLite database path: ~/.config/drill/deck.db
func DefaultSQLitePath() (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "deck.db"), nil
}
