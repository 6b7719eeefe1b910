package layout

// PaneLayout holds calculated pane widths. Both include padding, not borders.
type PaneLayout struct {
	SidebarWidth int
	MainWidth    int
}

// CalculatePaneHeight computes the content height for panes.
// Returns at least MinHeight.
func CalculatePaneHeight(terminalHeight int, cfg PaneConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculatePaneLayout splits the terminal width into sidebar and main pane.
// The sidebar keeps its configured width; the main pane takes the rest,
// but never less than MinMainWidth.
func CalculatePaneLayout(terminalWidth int, cfg PaneConfig) PaneLayout {
	used := 2*cfg.AppPadding + cfg.SidebarWidth + 2*cfg.BorderWidth
	main := terminalWidth - used
	if main < cfg.MinMainWidth {
		main = cfg.MinMainWidth
	}

	return PaneLayout{
		SidebarWidth: cfg.SidebarWidth,
		MainWidth:    main,
	}
}

// CalculateItemWidth computes the width available for row content.
func CalculateItemWidth(paneWidth int, cfg PaneConfig) int {
	width := paneWidth - cfg.ContentPadding
	if width < 1 {
		return 1
	}
	return width
}

// CalculateVisibleHeight computes the visible row count in a pane.
func CalculateVisibleHeight(paneHeight, headerLines int) int {
	height := paneHeight - headerLines
	if height < 1 {
		return 1
	}
	return height
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected row visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, clamped to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
