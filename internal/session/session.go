// Package session holds the mutable study state layered over an immutable deck:
// the active filter, the flashcard cursor, the reveal flag and the bookmarks.
//
// Every filter change recomputes the visible questions and clamps the cursor,
// so Current never indexes past the end of the view.
package session

import (
	"math/rand/v2"

	"github.com/nikbrunner/drill/internal/model"
	"github.com/nikbrunner/drill/internal/search"
)

// Session is the study state for one run of the application.
type Session struct {
	deck      *model.Deck
	criteria  search.Criteria
	visible   []model.Question
	cursor    Cursor
	reveal    Reveal
	bookmarks Bookmarks
	intn      func(int) int
}

// Option configures a Session.
type Option func(*Session)

// WithRandom replaces the source used by Random. intn must return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(s *Session) {
		s.intn = intn
	}
}

// New creates a Session over deck with no filter, cursor 0 and the answer hidden.
func New(deck *model.Deck, opts ...Option) *Session {
	if deck == nil {
		deck = model.NewDeck(nil)
	}
	s := &Session{
		deck:      deck,
		bookmarks: NewBookmarks(),
		intn:      rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.refilter()
	return s
}

// Deck returns the underlying question table.
func (s *Session) Deck() *model.Deck {
	return s.deck
}

// refilter recomputes the visible questions and clamps the cursor.
func (s *Session) refilter() {
	s.visible = search.Filter(s.deck, s.criteria)
	s.cursor.Clamp(len(s.visible))
}

// === Filtering ===

// Criteria returns the active filter.
func (s *Session) Criteria() search.Criteria {
	return search.Criteria{
		Categories: append([]string(nil), s.criteria.Categories...),
		Query:      s.criteria.Query,
	}
}

// SetQuery changes the free-text search.
func (s *Session) SetQuery(query string) {
	s.criteria.Query = query
	s.refilter()
}

// SetCategories replaces the category selection. Empty means all categories.
func (s *Session) SetCategories(categories []string) {
	s.criteria.Categories = append([]string(nil), categories...)
	s.refilter()
}

// ToggleCategory adds or removes a category from the selection.
func (s *Session) ToggleCategory(category string) {
	for i, c := range s.criteria.Categories {
		if c == category {
			s.criteria.Categories = append(s.criteria.Categories[:i:i], s.criteria.Categories[i+1:]...)
			s.refilter()
			return
		}
	}
	s.criteria.Categories = append(s.criteria.Categories, category)
	s.refilter()
}

// ClearFilters removes the category selection and the search query.
func (s *Session) ClearFilters() {
	s.criteria = search.Criteria{}
	s.refilter()
}

// Visible returns the filtered view in deck order.
func (s *Session) Visible() []model.Question {
	return s.visible
}

// === Flashcard navigation ===

// Index returns the cursor position within the visible questions.
func (s *Session) Index() int {
	return s.cursor.Index()
}

// Current returns the question under the cursor.
// Returns false when no question is visible.
func (s *Session) Current() (model.Question, bool) {
	if len(s.visible) == 0 {
		return model.Question{}, false
	}
	return s.visible[s.cursor.Index()], true
}

// Next moves to the following card and hides the answer.
func (s *Session) Next() {
	s.cursor.Next(len(s.visible))
	s.reveal.Hide()
}

// Previous moves to the preceding card and hides the answer.
func (s *Session) Previous() {
	s.cursor.Previous(len(s.visible))
	s.reveal.Hide()
}

// Random moves to a uniformly chosen card and hides the answer.
func (s *Session) Random() {
	s.cursor.Random(len(s.visible), s.intn)
	s.reveal.Hide()
}

// Jump moves to the card at index i of the visible questions and hides the answer.
// Out-of-range indexes are ignored.
func (s *Session) Jump(i int) {
	if i < 0 || i >= len(s.visible) {
		return
	}
	s.cursor.Set(i, len(s.visible))
	s.reveal.Hide()
}

// === Reveal ===

// ToggleReveal shows or hides the current answer.
func (s *Session) ToggleReveal() {
	s.reveal.Toggle()
}

// Revealed returns true if the current answer is visible.
func (s *Session) Revealed() bool {
	return s.reveal.Shown()
}

// === Bookmarks ===

// ToggleBookmark flips the mark on a question and reports whether it is now marked.
// The reveal flag is left untouched.
func (s *Session) ToggleBookmark(id int) bool {
	return s.bookmarks.Toggle(id)
}

// AddBookmark marks a question for review.
func (s *Session) AddBookmark(id int) {
	s.bookmarks.Add(id)
}

// RemoveBookmark unmarks a question.
func (s *Session) RemoveBookmark(id int) {
	s.bookmarks.Remove(id)
}

// IsBookmarked returns true if the question is marked.
func (s *Session) IsBookmarked(id int) bool {
	return s.bookmarks.Contains(id)
}

// ClearBookmarks unmarks every question.
func (s *Session) ClearBookmarks() {
	s.bookmarks.Clear()
}

// BookmarkCount returns the number of marked questions.
func (s *Session) BookmarkCount() int {
	return s.bookmarks.Count()
}

// Bookmarked returns the marked questions in deck order, ignoring the filter.
func (s *Session) Bookmarked() []model.Question {
	return s.bookmarks.Select(s.deck)
}
