package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Top            key.Binding
	Bottom         key.Binding
	Open           key.Binding
	Prev           key.Binding
	Next           key.Binding
	Random         key.Binding
	Reveal         key.Binding
	Bookmark       key.Binding
	Hard           key.Binding
	Okay           key.Binding
	Easy           key.Binding
	Search         key.Binding
	Categories     key.Binding
	ClearFilters   key.Binding
	ClearBookmarks key.Binding
	Yank           key.Binding
	Export         key.Binding
	ViewBrowse     key.Binding
	ViewFlashcard  key.Binding
	ViewBookmarks  key.Binding
	NextView       key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "study card"),
		),
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "previous card"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "next card"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random card"),
		),
		Reveal: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "reveal answer"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle bookmark"),
		),
		Hard: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "rate hard"),
		),
		Okay: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "rate okay"),
		),
		Easy: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "rate easy"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Categories: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter categories"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filters"),
		),
		ClearBookmarks: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear bookmarks"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy card"),
		),
		Export: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "export bookmarks"),
		),
		ViewBrowse: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "browse"),
		),
		ViewFlashcard: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "flashcards"),
		),
		ViewBookmarks: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "bookmarks"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
