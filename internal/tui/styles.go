package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Pane         lipgloss.Style
	PaneActive   lipgloss.Style
	Title        lipgloss.Style
	Section      lipgloss.Style
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Marker       lipgloss.Style // Bookmark star
	CategoryTag  lipgloss.Style
	Question     lipgloss.Style
	Answer       lipgloss.Style
	Caption      lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
	Info         lipgloss.Style // Message line: neutral acknowledgement
	Warning      lipgloss.Style // Message line: degraded but usable
	Error        lipgloss.Style // Message line: failed action
	HintKey      lipgloss.Style // Key portion of hints (e.g., "space", "j/k")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "reveal", "move")
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // inactive borders
	warn := lipgloss.AdaptiveColor{Light: "#8A6A20", Dark: "#C8A050"}    // muted amber
	fail := lipgloss.AdaptiveColor{Light: "#8A3A3A", Dark: "#C06060"}    // muted red

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(1).
			PaddingRight(1),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(0, 1),

		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Tab: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Padding(0, 1),

		Item: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Marker: lipgloss.NewStyle().
			Foreground(accent),

		CategoryTag: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Question: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Answer: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(2),

		Caption: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),

		Help: lipgloss.NewStyle().
			Foreground(subtle),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		Info: lipgloss.NewStyle().
			Foreground(accent),

		Warning: lipgloss.NewStyle().
			Foreground(warn),

		Error: lipgloss.NewStyle().
			Foreground(fail).
			Bold(true),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),
	}
}
