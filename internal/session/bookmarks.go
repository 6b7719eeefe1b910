package session

import "github.com/nikbrunner/drill/internal/model"

// Bookmarks holds the question IDs marked for review during a session.
type Bookmarks struct {
	ids map[int]bool
}

// NewBookmarks creates an empty bookmark set.
func NewBookmarks() Bookmarks {
	return Bookmarks{ids: make(map[int]bool)}
}

// Add marks a question. Adding a marked question is a no-op.
func (b *Bookmarks) Add(id int) {
	if b.ids == nil {
		b.ids = make(map[int]bool)
	}
	b.ids[id] = true
}

// Remove unmarks a question. Removing an unmarked question is a no-op.
func (b *Bookmarks) Remove(id int) {
	delete(b.ids, id)
}

// Toggle flips a question's mark and reports whether it is now marked.
func (b *Bookmarks) Toggle(id int) bool {
	if b.Contains(id) {
		b.Remove(id)
		return false
	}
	b.Add(id)
	return true
}

// Contains returns true if the question is marked.
func (b *Bookmarks) Contains(id int) bool {
	return b.ids[id]
}

// Clear removes every mark.
func (b *Bookmarks) Clear() {
	b.ids = make(map[int]bool)
}

// Count returns the number of marked questions.
func (b *Bookmarks) Count() int {
	return len(b.ids)
}

// Select returns the marked questions of deck in deck order.
func (b *Bookmarks) Select(deck *model.Deck) []model.Question {
	result := []model.Question{}
	for _, q := range deck.Questions {
		if b.ids[q.ID] {
			result = append(result, q)
		}
	}
	return result
}
