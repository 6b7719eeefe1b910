package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"
	toml "github.com/pelletier/go-toml/v2"
)

// Views lists the accepted values for Config.DefaultView.
var Views = []string{"browse", "flashcard", "bookmarks"}

// Config holds application configuration.
type Config struct {
	DeckPath            string `toml:"deck_path"`
	DatabasePath        string `toml:"database_path"`
	ExportDir           string `toml:"export_dir"`
	DefaultView         string `toml:"default_view"`
	ShowAnswersInBrowse bool   `toml:"show_answers_in_browse"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	dataDir, err := DefaultDataDir()
	if err != nil {
		dataDir = "."
	}
	exportDir := "."
	if home, err := os.UserHomeDir(); err == nil {
		exportDir = filepath.Join(home, "Downloads")
	}

	return Config{
		DeckPath:            filepath.Join(dataDir, "questions.csv"),
		DatabasePath:        filepath.Join(dataDir, "deck.db"),
		ExportDir:           exportDir,
		DefaultView:         "browse",
		ShowAnswersInBrowse: true,
	}
}

// LoadConfig reads config from the TOML file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, err
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// Apply defaults for fields explicitly set empty
	defaults := DefaultConfig()
	if config.DeckPath == "" {
		config.DeckPath = defaults.DeckPath
	}
	if config.DatabasePath == "" {
		config.DatabasePath = defaults.DatabasePath
	}
	if config.ExportDir == "" {
		config.ExportDir = defaults.ExportDir
	}
	if config.DefaultView == "" {
		config.DefaultView = defaults.DefaultView
	}

	config.DeckPath = ExpandPath(config.DeckPath)
	config.DatabasePath = ExpandPath(config.DatabasePath)
	config.ExportDir = ExpandPath(config.ExportDir)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &config, nil
}

// Validate checks field values that defaults cannot repair.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if !slices.Contains(Views, c.DefaultView) {
		errs = errs.Append("default_view", fmt.Errorf("unknown view %q (want one of %s)", c.DefaultView, strings.Join(Views, ", ")))
	}
	if info, err := os.Stat(c.ExportDir); err == nil && !info.IsDir() {
		errs = errs.Append("export_dir", fmt.Errorf("%s is a file, not a directory", c.ExportDir))
	}
	if info, err := os.Stat(c.DeckPath); err == nil && info.IsDir() {
		errs = errs.Append("deck_path", fmt.Errorf("%s is a directory, not a file", c.DeckPath))
	}

	return errs.ToError()
}

// SaveConfig writes config to the TOML file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/drill/config.toml
func DefaultConfigFilePath() (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
