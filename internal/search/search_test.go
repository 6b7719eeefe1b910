package search

import (
	"testing"

	"github.com/nikbrunner/drill/internal/model"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func fuzzyDeck() *model.Deck {
	return model.NewDeck([]model.Question{
		{ID: 1, Category: "Hooks", Question: "What is useEffect?"},
		{ID: 2, Category: "Hooks", Question: "What is useState?"},
		{ID: 3, Category: "Basics", Question: "What is the virtual DOM?"},
	})
}

func TestFuzzySearchQuestions_EmptyQuery(t *testing.T) {
	assert.Assert(t, is.Len(FuzzySearchQuestions(fuzzyDeck(), ""), 0))
}

func TestFuzzySearchQuestions_ExactMatch(t *testing.T) {
	results := FuzzySearchQuestions(fuzzyDeck(), "useState")

	assert.Assert(t, len(results) >= 1)
	assert.Equal(t, results[0].Question.ID, 2)
}

func TestFuzzySearchQuestions_FuzzyMatch(t *testing.T) {
	// "vdom" should fuzzy match "What is the virtual DOM?"
	results := FuzzySearchQuestions(fuzzyDeck(), "vdom")

	assert.Assert(t, is.Len(results, 1))
	assert.Equal(t, results[0].Question.ID, 3)
}

func TestFuzzySearchQuestions_NoMatch(t *testing.T) {
	assert.Assert(t, is.Len(FuzzySearchQuestions(fuzzyDeck(), "xyz123"), 0))
}

func TestFuzzySearchQuestions_PointsIntoDeck(t *testing.T) {
	deck := fuzzyDeck()

	results := FuzzySearchQuestions(deck, "useEffect")

	assert.Assert(t, len(results) >= 1)
	assert.Equal(t, results[0].Question, &deck.Questions[0])
}
