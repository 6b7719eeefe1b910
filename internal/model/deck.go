package model

import "sort"

// Deck holds the ordered question table for a study session.
// Order defines the default browse order.
type Deck struct {
	Questions []Question `json:"questions"`
}

// NewDeck creates a Deck from the given questions.
// A nil slice becomes an empty table so callers never see a nil deck.
func NewDeck(questions []Question) *Deck {
	if questions == nil {
		questions = []Question{}
	}
	return &Deck{Questions: questions}
}

// Len returns the number of questions in the deck.
func (d *Deck) Len() int {
	return len(d.Questions)
}

// GetQuestionByID finds a question by ID, returns nil if not found.
func (d *Deck) GetQuestionByID(id int) *Question {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			return &d.Questions[i]
		}
	}
	return nil
}

// Categories returns the unique category names, sorted.
func (d *Deck) Categories() []string {
	seen := make(map[string]bool)
	var result []string
	for _, q := range d.Questions {
		if seen[q.Category] {
			continue
		}
		seen[q.Category] = true
		result = append(result, q.Category)
	}
	sort.Strings(result)
	return result
}

// CategoryCounts returns how many questions each category holds.
func (d *Deck) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, q := range d.Questions {
		counts[q.Category]++
	}
	return counts
}
