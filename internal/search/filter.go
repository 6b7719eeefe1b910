package search

import (
	"strings"

	"github.com/nikbrunner/drill/internal/model"
)

// Criteria selects the visible subset of a deck.
// An empty Categories slice means every category; an empty Query matches everything.
type Criteria struct {
	Categories []string
	Query      string
}

// IsEmpty returns true if the criteria filter nothing out.
func (c Criteria) IsEmpty() bool {
	return len(c.Categories) == 0 && c.Query == ""
}

// HasCategory returns true if category is explicitly selected.
func (c Criteria) HasCategory(category string) bool {
	for _, selected := range c.Categories {
		if selected == category {
			return true
		}
	}
	return false
}

// Filter returns the questions matching both the category and the text
// predicate, in deck order.
func Filter(deck *model.Deck, criteria Criteria) []model.Question {
	categories := make(map[string]bool, len(criteria.Categories))
	for _, c := range criteria.Categories {
		categories[c] = true
	}
	query := strings.ToLower(criteria.Query)

	result := []model.Question{}
	for _, q := range deck.Questions {
		if len(categories) > 0 && !categories[q.Category] {
			continue
		}
		if !matchesLower(q, query) {
			continue
		}
		result = append(result, q)
	}
	return result
}

// MatchesText returns true if query is a case-insensitive substring of the
// question or the answer. An empty query matches every question.
func MatchesText(q model.Question, query string) bool {
	return matchesLower(q, strings.ToLower(query))
}

func matchesLower(q model.Question, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(q.Question), lowerQuery) ||
		strings.Contains(strings.ToLower(q.Answer), lowerQuery)
}
