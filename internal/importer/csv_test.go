package importer

import (
	"errors"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestParseCSV_Basic(t *testing.T) {
	input := `ID,Category,Question,Answer
1,Basics,What is React?,A JS library for building UIs.
2,Hooks,What is useEffect?,A hook for side effects.
`
	questions, err := ParseCSV(strings.NewReader(input))
	assert.NilError(t, err)
	assert.Assert(t, is.Len(questions, 2))

	assert.Equal(t, questions[0].ID, 1)
	assert.Equal(t, questions[0].Category, "Basics")
	assert.Equal(t, questions[0].Question, "What is React?")
	assert.Equal(t, questions[0].Answer, "A JS library for building UIs.")
	assert.Equal(t, questions[1].ID, 2)
}

func TestParseCSV_ColumnOrderAndExtras(t *testing.T) {
	input := `Answer,Difficulty,Question,ID,Category
"Use WebSockets, Optimistic UI, and IndexedDB.",hard,Architect a Real-Time Chat App.,502,System Design
`
	questions, err := ParseCSV(strings.NewReader(input))
	assert.NilError(t, err)
	assert.Assert(t, is.Len(questions, 1))

	q := questions[0]
	assert.Equal(t, q.ID, 502)
	assert.Equal(t, q.Category, "System Design")
	assert.Equal(t, q.Question, "Architect a Real-Time Chat App.")
	assert.Equal(t, q.Answer, "Use WebSockets, Optimistic UI, and IndexedDB.")
}

func TestParseCSV_BOMAndPaddedHeader(t *testing.T) {
	input := "\uFEFFID , Category,Question ,Answer\n7,Basics,Q,A\n"

	questions, err := ParseCSV(strings.NewReader(input))
	assert.NilError(t, err)
	assert.Assert(t, is.Len(questions, 1))
	assert.Equal(t, questions[0].ID, 7)
}

func TestParseCSV_MultilineAnswer(t *testing.T) {
	input := "ID,Category,Question,Answer\n3,Components,Class vs function?,\"Class uses this.state.\nFunc uses hooks.\"\n"

	questions, err := ParseCSV(strings.NewReader(input))
	assert.NilError(t, err)
	assert.Equal(t, questions[0].Answer, "Class uses this.state.\nFunc uses hooks.")
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	questions, err := ParseCSV(strings.NewReader("ID,Category,Question,Answer\n"))
	assert.NilError(t, err)
	assert.Assert(t, questions != nil)
	assert.Assert(t, is.Len(questions, 0))
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty file", "", ErrNoHeader},
		{"missing answer column", "ID,Category,Question\n1,Basics,What?\n", ErrMissingColumns},
		{"lowercase headers", "id,category,question,answer\n1,a,b,c\n", ErrMissingColumns},
		{"non-integer id", "ID,Category,Question,Answer\nabc,Basics,Q,A\n", ErrInvalidID},
		{"empty id", "ID,Category,Question,Answer\n,Basics,Q,A\n", ErrInvalidID},
		{"duplicate id", "ID,Category,Question,Answer\n1,Basics,Q,A\n1,Hooks,Q2,A2\n", ErrDuplicateID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))
			assert.Assert(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParseCSV_MissingColumnsNamesThem(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("ID,Question\n1,Q\n"))
	assert.ErrorContains(t, err, "Category, Answer")
}

func TestParseCSV_WrongFieldCount(t *testing.T) {
	input := "ID,Category,Question,Answer\n1,Basics,Q,A,extra\n"

	_, err := ParseCSV(strings.NewReader(input))
	assert.ErrorContains(t, err, "read row")
}
