package search

import (
	"github.com/nikbrunner/drill/internal/model"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Question       *model.Question
	MatchedIndexes []int
	Score          int
}

// questionTexts implements fuzzy.Source for a question slice.
type questionTexts []*model.Question

func (qt questionTexts) String(i int) string {
	return qt[i].Question
}

func (qt questionTexts) Len() int {
	return len(qt)
}

// FuzzySearchQuestions searches all questions by question text using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchQuestions(deck *model.Deck, query string) []SearchResult {
	if query == "" {
		return nil
	}

	questions := make(questionTexts, len(deck.Questions))
	for i := range deck.Questions {
		questions[i] = &deck.Questions[i]
	}

	matches := fuzzy.FindFrom(query, questions)

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Question:       questions[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
