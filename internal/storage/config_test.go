package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/nikbrunner/drill/internal/storage"
	"gotest.tools/v3/assert"
)

func TestLoadConfig_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drill", "config.toml")

	cfg, err := storage.LoadConfig(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.DefaultView, "browse")
	assert.Assert(t, cfg.ShowAnswersInBrowse)
	assert.Assert(t, strings.HasSuffix(cfg.DeckPath, "questions.csv"))

	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(string(data), "default_view"))
}

func TestLoadConfig_ReadsValuesAndFillsMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	deck := filepath.Join(dir, "react.csv")
	content := "deck_path = '" + deck + "'\ndefault_view = 'flashcard'\nshow_answers_in_browse = false\n"
	assert.NilError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := storage.LoadConfig(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.DeckPath, deck)
	assert.Equal(t, cfg.DefaultView, "flashcard")
	assert.Assert(t, !cfg.ShowAnswersInBrowse)
	assert.Assert(t, strings.HasSuffix(cfg.DatabasePath, "deck.db"))
}

func TestLoadConfig_InvalidView(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	assert.NilError(t, os.WriteFile(path, []byte("default_view = 'quiz'\n"), 0644))

	_, err := storage.LoadConfig(path)
	assert.ErrorContains(t, err, "default_view")

	var fieldErrs criterio.FieldErrors
	assert.Assert(t, errors.As(err, &fieldErrs))
	assert.Equal(t, fieldErrs[0].Field, "default_view")
}

func TestLoadConfig_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	assert.NilError(t, os.WriteFile(path, []byte("default_view = \n"), 0644))

	_, err := storage.LoadConfig(path)
	assert.ErrorContains(t, err, "parse")
}

func TestConfig_Validate_ExportDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	assert.NilError(t, os.WriteFile(file, nil, 0644))

	cfg := storage.DefaultConfig()
	cfg.ExportDir = file

	assert.ErrorContains(t, cfg.Validate(), "export_dir")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	assert.NilError(t, err)

	assert.Equal(t, storage.ExpandPath("~/decks/q.csv"), filepath.Join(home, "decks", "q.csv"))
	assert.Equal(t, storage.ExpandPath("/abs/q.csv"), "/abs/q.csv")
	assert.Equal(t, storage.ExpandPath("~other/q.csv"), "~other/q.csv")
}
