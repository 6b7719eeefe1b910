package storage_test

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/drill/internal/importer"
	"github.com/nikbrunner/drill/internal/model"
	"github.com/nikbrunner/drill/internal/storage"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NilError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDemoDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.csv")

	result := storage.Load(path)

	assert.Assert(t, result.Demo)
	assert.Equal(t, result.Severity, storage.SeverityNone)
	assert.Equal(t, result.Message, "")
	assert.NilError(t, result.Err)
	assert.Equal(t, result.Deck.Len(), 5)
	assert.DeepEqual(t, result.Deck.Categories(), []string{"Basics", "Components", "Hooks", "System Design"})

	// The demo deck is not written back to disk
	_, err := os.Stat(path)
	assert.Assert(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_MissingSQLiteFileUsesDemoDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.db")

	result := storage.Load(path)

	assert.Assert(t, result.Demo)
	_, err := os.Stat(path)
	assert.Assert(t, errors.Is(err, os.ErrNotExist), "load must not create the database")
}

func TestLoad_ValidCSV(t *testing.T) {
	path := writeFile(t, "questions.csv", "ID,Category,Question,Answer\n10,Basics,Q1,A1\n11,Hooks,Q2,A2\n")

	result := storage.Load(path)

	assert.Assert(t, !result.Demo)
	assert.Equal(t, result.Severity, storage.SeverityNone)
	assert.Equal(t, result.Deck.Len(), 2)
	assert.Equal(t, result.Deck.Questions[0].ID, 10)
	assert.Equal(t, result.Deck.Questions[1].ID, 11)
}

func TestLoad_MissingColumnsWarnsWithEmptyDeck(t *testing.T) {
	path := writeFile(t, "questions.csv", "ID,Question\n1,What?\n")

	result := storage.Load(path)

	assert.Assert(t, !result.Demo)
	assert.Equal(t, result.Severity, storage.SeverityWarning)
	assert.Assert(t, is.Contains(result.Message, "missing required columns"))
	assert.Assert(t, errors.Is(result.Err, importer.ErrMissingColumns))
	assert.Assert(t, result.Deck != nil)
	assert.Equal(t, result.Deck.Len(), 0)
}

func TestLoad_MalformedRowsErrorWithEmptyDeck(t *testing.T) {
	path := writeFile(t, "questions.csv", "ID,Category,Question,Answer\nnope,Basics,Q,A\n")

	result := storage.Load(path)

	assert.Equal(t, result.Severity, storage.SeverityError)
	assert.Assert(t, is.Contains(result.Message, "Error loading data"))
	assert.Assert(t, errors.Is(result.Err, importer.ErrInvalidID))
	assert.Equal(t, result.Deck.Len(), 0)
}

func TestLoad_DirectoryIsAnError(t *testing.T) {
	result := storage.Load(t.TempDir())

	assert.Equal(t, result.Severity, storage.SeverityError)
	assert.Equal(t, result.Deck.Len(), 0)
}

func TestLoad_CorruptSQLiteIsAnError(t *testing.T) {
	path := writeFile(t, "deck.db", "this is not a database")

	result := storage.Load(path)

	assert.Equal(t, result.Severity, storage.SeverityError)
	assert.Assert(t, result.Err != nil)
	assert.Equal(t, result.Deck.Len(), 0)
}

func TestLoad_SQLiteDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.db")
	s, err := storage.NewSQLiteStorage(path)
	assert.NilError(t, err)
	assert.NilError(t, s.Save(model.NewDeck(storage.DemoQuestions())))
	assert.NilError(t, s.Close())

	result := storage.Load(path)

	assert.Equal(t, result.Severity, storage.SeverityNone)
	assert.Assert(t, !result.Demo)
	assert.Equal(t, result.Deck.Len(), 5)
}

// sqliteFile creates a database at a fresh path and runs stmts against it.
func sqliteFile(t *testing.T, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.db")
	db, err := sql.Open("sqlite", path)
	assert.NilError(t, err)
	defer db.Close()
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		assert.NilError(t, err)
	}
	return path
}

func tableNames(t *testing.T, path string) []string {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	assert.NilError(t, err)
	defer db.Close()

	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name")
	assert.NilError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		assert.NilError(t, rows.Scan(&name))
		names = append(names, name)
	}
	assert.NilError(t, rows.Err())
	return names
}

func TestLoad_SQLiteMissingColumnsWarns(t *testing.T) {
	path := sqliteFile(t, "CREATE TABLE questions (id, category, question)")

	result := storage.Load(path)

	assert.Equal(t, result.Severity, storage.SeverityWarning)
	assert.Assert(t, errors.Is(result.Err, importer.ErrMissingColumns))
	assert.Assert(t, is.Contains(result.Err.Error(), "answer"))
	assert.Equal(t, result.Deck.Len(), 0)
}

func TestLoad_ForeignSQLiteIsLeftUntouched(t *testing.T) {
	path := sqliteFile(t,
		"CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)",
		"INSERT INTO notes (body) VALUES ('keep me')",
	)

	result := storage.Load(path)

	assert.Equal(t, result.Severity, storage.SeverityWarning)
	assert.Assert(t, errors.Is(result.Err, importer.ErrMissingColumns))
	assert.DeepEqual(t, tableNames(t, path), []string{"notes"})

	_, err := os.Stat(path + "-wal")
	assert.Assert(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_SQLiteWithoutPositionKeepsInsertOrder(t *testing.T) {
	path := sqliteFile(t,
		"CREATE TABLE questions (ID INTEGER, Category TEXT, Question TEXT, Answer TEXT, notes TEXT)",
		"INSERT INTO questions VALUES (502, 'System Design', 'Chat app?', 'WebSockets.', '')",
		"INSERT INTO questions VALUES (1, 'Basics', 'What is React?', 'A library.', '')",
		"INSERT INTO questions VALUES (7, 'Hooks', 'useMemo?', 'Memoizes.', '')",
	)

	result := storage.Load(path)

	assert.Equal(t, result.Severity, storage.SeverityNone)
	assert.NilError(t, result.Err)
	var ids []int
	for _, q := range result.Deck.Questions {
		ids = append(ids, q.ID)
	}
	assert.DeepEqual(t, ids, []int{502, 1, 7})
	assert.DeepEqual(t, tableNames(t, path), []string{"questions"})
}

func TestCache_LoadsOnce(t *testing.T) {
	path := writeFile(t, "questions.csv", "ID,Category,Question,Answer\n1,Basics,Q,A\n")
	cache := storage.NewCache()

	first := cache.Load(path)
	assert.Equal(t, first.Deck.Len(), 1)

	// Changing the file after the first load has no effect
	assert.NilError(t, os.WriteFile(path, []byte("ID,Category,Question,Answer\n1,B,Q,A\n2,B,Q,A\n"), 0644))

	second := cache.Load(path)
	assert.Equal(t, second.Deck, first.Deck)
	assert.Equal(t, second.Deck.Len(), 1)
}

func TestIsSQLitePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"deck.db", true},
		{"deck.sqlite", true},
		{"DECK.SQLITE3", true},
		{"questions.csv", false},
		{"questions", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, storage.IsSQLitePath(tt.path), tt.want)
		})
	}
}
