package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane  PaneConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// PaneConfig holds dimensions of the sidebar and main pane.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + tab bar (1) + pane borders (2) + message line (1) + help bar (1) = 6
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// AppPadding is the horizontal padding around the whole app, per side.
	AppPadding int

	// BorderWidth is the horizontal space taken by a pane's border.
	BorderWidth int

	// SidebarWidth is the sidebar width including its padding.
	SidebarWidth int

	// MinMainWidth is the minimum width of the main pane.
	MinMainWidth int

	// ContentPadding is subtracted from pane width for row rendering.
	ContentPadding int
}

// ModalConfig holds overlay dialog configuration.
type ModalConfig struct {
	// WidthPercent is the modal width as percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// CategoryMaxVisible: max rows shown in the category picker.
	CategoryMaxVisible int

	// HelpKeyColumnWidth: width of the key column in the help overlay.
	HelpKeyColumnWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	SearchCharLimit int
	SearchWidth     int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction: 6,
			MinHeight:       5,
			AppPadding:      1,
			BorderWidth:     2,
			SidebarWidth:    30,
			MinMainWidth:    30,
			ContentPadding:  2,
		},
		Modal: ModalConfig{
			WidthPercent:       50,
			MinWidth:           40,
			MaxWidth:           70,
			CategoryMaxVisible: 10,
			HelpKeyColumnWidth: 14,
		},
		Input: InputConfig{
			SearchCharLimit: 100,
			SearchWidth:     40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
