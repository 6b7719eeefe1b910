package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/nikbrunner/drill/internal/storage"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DeckPath   string

	// Config is loaded in the Before hook and available to all commands
	Config *storage.Config

	// Decks memoizes deck loads for the life of the process
	Decks *storage.Cache
}

// DefaultConfigPath returns the default config file path, falling back to
// the working directory when the home directory is unknown.
func DefaultConfigPath() string {
	path, err := storage.DefaultConfigFilePath()
	if err != nil {
		return "config.toml"
	}
	return path
}

// DefaultLogFile returns the default log file path next to the config file.
func DefaultLogFile() string {
	return filepath.Join(filepath.Dir(DefaultConfigPath()), "drill.log")
}

// LoadDeck loads the configured deck through the cache. The result is
// fail-soft, see storage.Load.
func (f *Flags) LoadDeck() storage.LoadResult {
	if f.Decks == nil {
		f.Decks = storage.NewCache()
	}

	path := f.Config.DeckPath
	result := f.Decks.Load(path)

	event := log.Info()
	if result.Err != nil {
		event = log.Warn().Err(result.Err)
	}
	event.
		Str("path", path).
		Int("questions", result.Deck.Len()).
		Bool("demo", result.Demo).
		Msg("deck loaded")

	return result
}

// requireDeck loads the deck for non-interactive commands, where a broken
// deck file is reported instead of degraded.
func (f *Flags) requireDeck() (storage.LoadResult, error) {
	result := f.LoadDeck()
	if result.Err != nil {
		return result, fmt.Errorf("load deck %s: %w", f.Config.DeckPath, result.Err)
	}
	if result.Demo {
		fmt.Fprintf(os.Stderr, "No deck at %s, using the demo deck\n", f.Config.DeckPath)
	}
	return result, nil
}
