package storage

import (
	"errors"
	"os"
	"sync"

	"github.com/nikbrunner/drill/internal/importer"
	"github.com/nikbrunner/drill/internal/model"
)

// Severity classifies the message attached to a LoadResult.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityError
)

// LoadResult is the outcome of a fail-soft deck load.
// Deck is never nil.
type LoadResult struct {
	Deck     *model.Deck
	Demo     bool     // true when the built-in sample deck was substituted
	Severity Severity // how Message should be presented
	Message  string   // user-facing message, empty when Severity is SeverityNone
	Err      error    // underlying error, nil on success and for the demo fallback
}

// Load reads the deck at path and never fails.
//
// A missing file yields the demo deck. A file without the required columns
// yields an empty deck and a warning. Any other failure yields an empty deck
// and an error message.
func Load(path string) LoadResult {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return LoadResult{
			Deck: model.NewDeck(DemoQuestions()),
			Demo: true,
		}
	}

	s, closeFn, err := OpenStorage(path)
	if err != nil {
		return failed(err)
	}
	defer closeFn()

	deck, err := s.Load()
	if err != nil {
		return failed(err)
	}
	return LoadResult{Deck: deck}
}

func failed(err error) LoadResult {
	if errors.Is(err, importer.ErrMissingColumns) {
		return LoadResult{
			Deck:     model.NewDeck(nil),
			Severity: SeverityWarning,
			Message:  "Deck is missing required columns: ID, Category, Question, Answer",
			Err:      err,
		}
	}
	return LoadResult{
		Deck:     model.NewDeck(nil),
		Severity: SeverityError,
		Message:  "Error loading data: " + err.Error(),
		Err:      err,
	}
}

// Cache memoizes Load per path for the life of the process.
type Cache struct {
	mu      sync.Mutex
	results map[string]LoadResult
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{results: make(map[string]LoadResult)}
}

// Load returns the cached result for path, loading it on first use.
func (c *Cache) Load(path string) LoadResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	if result, ok := c.results[path]; ok {
		return result
	}
	result := Load(path)
	c.results[path] = result
	return result
}
