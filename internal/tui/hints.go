package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "space")
	Desc string // Short description (e.g., "move", "reveal")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "j/k:move b:bookmark"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals: "y confirm  n cancel"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (j/k, h/l, etc.)
	Action []Hint // Action hints (space, b, Enter, etc.)
	System []Hint // System hints (?, q, Esc)
}

// All returns all hints flattened in display order: Nav + Action + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.System...)
	return result
}

var systemHints = []Hint{
	{Key: "/", Desc: "search"},
	{Key: "f", Desc: "categories"},
	{Key: "?", Desc: "help"},
	{Key: "q", Desc: "quit"},
}

// getContextualHints returns the appropriate hints for the current mode and view.
func (a App) getContextualHints() HintSet {
	switch a.mode {
	case ModeSearch:
		return HintSet{
			Nav:    []Hint{{Key: "type", Desc: "search"}},
			Action: []Hint{{Key: "Enter", Desc: "apply"}},
			System: []Hint{{Key: "Esc", Desc: "cancel"}},
		}
	case ModeNormal:
		switch a.view {
		case ViewFlashcard:
			return a.getFlashcardHints()
		case ViewBookmarks:
			return a.getBookmarksHints()
		default:
			return a.getBrowseHints()
		}
	default:
		// Overlays show their own hints
		return HintSet{}
	}
}

func (a App) getBrowseHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "tab", Desc: "view"},
		},
		Action: []Hint{
			{Key: "Enter", Desc: "study"},
			{Key: "b", Desc: "bookmark"},
			{Key: "y", Desc: "copy"},
		},
		System: systemHints,
	}
}

func (a App) getFlashcardHints() HintSet {
	action := []Hint{
		{Key: "space", Desc: "reveal"},
		{Key: "b", Desc: "bookmark"},
	}
	if a.session.Revealed() {
		action = append(action, Hint{Key: "x/c/v", Desc: "rate"})
	}

	return HintSet{
		Nav: []Hint{
			{Key: "h/l", Desc: "prev/next"},
			{Key: "r", Desc: "random"},
			{Key: "tab", Desc: "view"},
		},
		Action: action,
		System: systemHints,
	}
}

func (a App) getBookmarksHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "tab", Desc: "view"},
		},
		Action: []Hint{
			{Key: "Enter", Desc: "study"},
			{Key: "b", Desc: "remove"},
			{Key: "C", Desc: "clear"},
			{Key: "E", Desc: "export"},
		},
		System: systemHints,
	}
}
