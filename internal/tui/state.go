package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nikbrunner/drill/internal/tui/layout"
)

// View identifies one of the three study views.
type View int

const (
	ViewBrowse View = iota
	ViewFlashcard
	ViewBookmarks
)

var viewNames = [...]string{"browse", "flashcard", "bookmarks"}

var viewTitles = [...]string{"Browse & Search", "Flashcards", "Bookmarks"}

// String returns the config name of the view.
func (v View) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return fmt.Sprintf("View(%d)", int(v))
	}
	return viewNames[v]
}

// Title returns the label shown in the tab bar.
func (v View) Title() string {
	return viewTitles[v]
}

// ParseView maps a config name to a View.
func ParseView(name string) (View, error) {
	for i, n := range viewNames {
		if n == name {
			return View(i), nil
		}
	}
	return ViewBrowse, fmt.Errorf("unknown view %q", name)
}

// Mode is the input mode layered over the current view.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeCategories
	ModeConfirmClear
	ModeHelp
)

// Severity classifies the message line.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Message is the single status line shown under the panes.
type Message struct {
	Text     string
	Severity Severity
}

// SearchState holds the free-text search input.
type SearchState struct {
	Input    textinput.Model
	Previous string // query to restore when the edit is cancelled
}

// NewSearchState creates a SearchState with an initialized input.
func NewSearchState(cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Placeholder = "Search questions and answers..."
	input.Prompt = "/ "
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.SearchWidth

	return SearchState{Input: input}
}

// CategoryState holds the category multi-select overlay.
type CategoryState struct {
	Names  []string // sorted unique categories of the deck
	Counts map[string]int
	Cursor int
}

// ListNav is a clamped, non-wrapping cursor for list panes.
type ListNav struct {
	Cursor int
}

// Move shifts the cursor by delta within [0, n).
func (l *ListNav) Move(delta, n int) {
	l.Cursor += delta
	l.Clamp(n)
}

// Clamp keeps the cursor within [0, n).
func (l *ListNav) Clamp(n int) {
	if l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}
