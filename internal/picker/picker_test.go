package picker

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/drill/internal/tui/layout"
	"github.com/nikbrunner/drill/internal/model"
	"github.com/nikbrunner/drill/internal/search"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func results() []search.SearchResult {
	return []search.SearchResult{
		{Question: &model.Question{ID: 2, Category: "Hooks", Question: "What is useEffect?"}, MatchedIndexes: []int{8, 9, 10}},
		{Question: &model.Question{ID: 7, Category: "Hooks", Question: "What is useState?"}, MatchedIndexes: []int{8, 9, 10}},
	}
}

func press(t *testing.T, p Picker, msg tea.KeyMsg) (Picker, tea.Cmd) {
	t.Helper()
	m, cmd := p.Update(msg)
	return m.(Picker), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPicker_InitialState(t *testing.T) {
	p := New(results(), "use")

	assert.Equal(t, p.cursor, 0)
	assert.Equal(t, len(p.results), 2)
	assert.Assert(t, p.SelectedQuestion() == nil)
}

func TestPicker_Navigate(t *testing.T) {
	p := New(results(), "use")

	p, _ = press(t, p, runes("j"))
	assert.Equal(t, p.cursor, 1)

	p, _ = press(t, p, runes("j"))
	assert.Equal(t, p.cursor, 1, "stays on last result")

	p, _ = press(t, p, runes("k"))
	assert.Equal(t, p.cursor, 0)

	p, _ = press(t, p, runes("k"))
	assert.Equal(t, p.cursor, 0, "stays on first result")
}

func TestPicker_ArrowKeys(t *testing.T) {
	p := New(results(), "use")

	p, _ = press(t, p, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, p.cursor, 1)

	p, _ = press(t, p, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, p.cursor, 0)
}

func TestPicker_Select(t *testing.T) {
	rs := results()
	p := New(rs, "use")
	p, _ = press(t, p, runes("j"))

	p, cmd := press(t, p, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Assert(t, cmd != nil, "expected quit command")
	assert.Assert(t, p.SelectedQuestion() == rs[1].Question)
}

func TestPicker_SelectWithoutResultsCancels(t *testing.T) {
	p := New(nil, "zzz")

	p, cmd := press(t, p, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Assert(t, cmd != nil)
	assert.Assert(t, p.Cancelled())
	assert.Assert(t, p.SelectedQuestion() == nil)
}

func TestPicker_Cancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, runes("q"), {Type: tea.KeyCtrlC}} {
		p := New(results(), "use")

		p, cmd := press(t, p, msg)

		assert.Assert(t, cmd != nil)
		assert.Assert(t, p.Cancelled())
		assert.Assert(t, p.SelectedQuestion() == nil)
	}
}

func TestPicker_View(t *testing.T) {
	p := New(results(), "use")

	out := layout.StripANSI(p.View())

	assert.Check(t, is.Contains(out, "Search: use (2 results)"))
	assert.Check(t, is.Contains(out, "> What is useEffect?"))
	assert.Check(t, is.Contains(out, "#7 · Hooks"))
}

func TestPicker_ViewScrollsToCursor(t *testing.T) {
	var rs []search.SearchResult
	for i := range 20 {
		rs = append(rs, search.SearchResult{Question: &model.Question{ID: i, Category: "C", Question: "question"}})
	}
	p := New(rs, "q")
	m, _ := p.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	p = m.(Picker)
	p.cursor = 15

	out := layout.StripANSI(p.View())

	assert.Check(t, is.Contains(out, "#15 · C"))
	assert.Check(t, !containsLine(out, "#0 · C"))
}

func containsLine(out, s string) bool {
	return slices.Contains(strings.Split(out, "\n"), "   "+s)
}
