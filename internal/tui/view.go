package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/drill/internal/model"
	"github.com/nikbrunner/drill/internal/tui/layout"
)

const (
	markOn  = "★"
	markOff = "☆"
)

// renderView creates the complete sidebar + main pane view.
func (a App) renderView() string {
	switch a.mode {
	case ModeCategories, ModeConfirmClear, ModeHelp:
		return a.renderModal()
	}

	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	panes := layout.CalculatePaneLayout(a.width, a.layoutConfig.Pane)

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.renderSidebar(panes.SidebarWidth, paneHeight),
		a.renderMain(panes.MainWidth, paneHeight),
	)

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			a.renderTabs(),
			columns,
			a.renderMessage(),
			a.renderHelpBar(),
		),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderTabs renders the view selector above the panes.
func (a App) renderTabs() string {
	tabs := make([]string, 0, len(viewTitles))
	for i, title := range viewTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if View(i) == a.view {
			tabs = append(tabs, a.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, a.styles.Tab.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

// renderSidebar renders the title, filters and progress.
func (a App) renderSidebar(width, height int) string {
	var b strings.Builder
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	b.WriteString(a.styles.Title.Render("drill") + "\n")
	if a.demo {
		b.WriteString(a.styles.Caption.Render("demo deck") + "\n")
	} else {
		b.WriteString(a.styles.Caption.Render("interview prep") + "\n")
	}
	b.WriteString("\n")

	criteria := a.session.Criteria()
	b.WriteString(a.styles.Section.Render("Filters") + "\n")

	categories := "All categories"
	if len(criteria.Categories) > 0 {
		categories = strings.Join(criteria.Categories, ", ")
	}
	line, _ := layout.TruncateWithPrefixSuffix(categories, itemWidth-1, "Category: ", "", a.layoutConfig.Text)
	b.WriteString(a.styles.Item.Render(line) + "\n")

	query := "none"
	if criteria.Query != "" {
		query = fmt.Sprintf("%q", criteria.Query)
	}
	line, _ = layout.TruncateWithPrefixSuffix(query, itemWidth-1, "Search: ", "", a.layoutConfig.Text)
	b.WriteString(a.styles.Item.Render(line) + "\n\n")

	b.WriteString(a.styles.Section.Render("Progress") + "\n")
	b.WriteString(a.styles.Item.Render(fmt.Sprintf("Total questions: %d", a.session.Deck().Len())) + "\n")
	b.WriteString(a.styles.Item.Render(fmt.Sprintf("Bookmarked: %d", a.session.BookmarkCount())))

	content := layout.ClipLines(b.String(), height, a.layoutConfig.Text)
	return a.styles.Pane.Width(width).Height(height).Render(content)
}

// renderMain renders the pane of the current view.
func (a App) renderMain(width, height int) string {
	inner := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	var content string
	switch a.view {
	case ViewFlashcard:
		content = a.renderFlashcard(inner)
	case ViewBookmarks:
		content = a.renderBookmarks(inner, height)
	default:
		content = a.renderBrowse(inner, height)
	}

	content = layout.ClipLines(content, height, a.layoutConfig.Text)
	return a.styles.PaneActive.Width(width).Height(height).Render(content)
}

// === Browse ===

func (a App) renderBrowse(width, height int) string {
	var b strings.Builder
	visible := a.session.Visible()

	b.WriteString(a.styles.Title.Render("Explore the Questions") + "\n")
	b.WriteString(a.styles.Caption.Render(fmt.Sprintf("Displaying %d of %d total questions.", len(visible), a.session.Deck().Len())) + "\n")
	if a.mode == ModeSearch {
		b.WriteString(a.search.Input.View() + "\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	headerLines := 4

	if len(visible) == 0 {
		b.WriteString(a.styles.Empty.Render("No questions match the current filters."))
		return b.String()
	}

	rowHeight := 1
	if a.showAnswers {
		rowHeight = 2
	}
	capacity := layout.CalculateVisibleHeight(height, headerLines) / rowHeight
	if capacity < 1 {
		capacity = 1
	}

	cursor := a.browse.Cursor
	if cursor >= len(visible) {
		cursor = len(visible) - 1
	}
	offset := layout.CalculateViewportOffset(cursor, len(visible), capacity)

	for i := offset; i < len(visible) && i < offset+capacity; i++ {
		q := visible[i]
		b.WriteString(a.renderRow(q, i == cursor, width) + "\n")
		if a.showAnswers {
			answer, _ := layout.TruncateText(firstLine(q.Answer), width-4, a.layoutConfig.Text)
			b.WriteString("    " + a.styles.Caption.Render(answer) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderRow renders one list row: bookmark marker, id, question and category.
func (a App) renderRow(q model.Question, selected bool, width int) string {
	mark := markOff
	if a.session.IsBookmarked(q.ID) {
		mark = markOn
	}
	prefix := fmt.Sprintf("%s #%d ", mark, q.ID)
	suffix := fmt.Sprintf("  [%s]", q.Category)

	line, _ := layout.TruncateWithPrefixSuffix(q.Question, width-1, prefix, suffix, a.layoutConfig.Text)

	if selected {
		// Pad to fill width for selection highlight
		if pad := width - 1 - layout.VisibleLength(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		return a.styles.ItemSelected.Render(line)
	}
	return a.styles.Item.Render(line)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// === Flashcard ===

func (a App) renderFlashcard(width int) string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Active Recall Mode") + "\n")
	if a.mode == ModeSearch {
		b.WriteString(a.search.Input.View() + "\n")
	}

	q, ok := a.session.Current()
	if !ok {
		b.WriteString("\n")
		b.WriteString(a.styles.Warning.Render("No questions found with current filters."))
		return b.String()
	}

	b.WriteString(a.styles.Caption.Render(fmt.Sprintf("Card %d of %d", a.session.Index()+1, len(a.session.Visible()))) + "\n\n")

	b.WriteString(a.styles.CategoryTag.Render(strings.ToUpper(q.Category)) + "\n")
	b.WriteString(a.styles.Question.Width(width).Render(fmt.Sprintf("#%d: %s", q.ID, q.Question)) + "\n\n")

	if a.session.IsBookmarked(q.ID) {
		b.WriteString(a.styles.Marker.Render(markOn+" Bookmarked") + "\n\n")
	} else {
		b.WriteString(a.styles.Empty.Render(markOff+" Not bookmarked") + "\n\n")
	}

	if !a.session.Revealed() {
		b.WriteString(a.styles.Empty.Render("Press space to reveal the answer."))
		return b.String()
	}

	b.WriteString(a.styles.Section.Render("Answer") + "\n")
	b.WriteString(a.styles.Answer.Width(width).Render(q.Answer) + "\n\n")
	b.WriteString(a.styles.Caption.Render("How did you do?") + "  ")
	b.WriteString(a.renderHintsInline([]Hint{
		{Key: "x", Desc: "Hard"},
		{Key: "c", Desc: "Okay"},
		{Key: "v", Desc: "Easy"},
	}))

	return b.String()
}

// === Bookmarks ===

func (a App) renderBookmarks(width, height int) string {
	var b strings.Builder
	marked := a.session.Bookmarked()

	b.WriteString(a.styles.Title.Render("My Bookmarks") + "\n")

	if len(marked) == 0 {
		b.WriteString("\n")
		b.WriteString(a.styles.Empty.Width(width).Render("You haven't bookmarked any questions yet. Go to Browse or Flashcards to add some!"))
		return b.String()
	}

	noun := "questions"
	if len(marked) == 1 {
		noun = "question"
	}
	b.WriteString(a.styles.Caption.Render(fmt.Sprintf("You have %d %s marked for review.", len(marked), noun)) + "\n\n")
	headerLines := 3

	capacity := layout.CalculateVisibleHeight(height, headerLines) / 2
	if capacity < 1 {
		capacity = 1
	}

	cursor := a.marked.Cursor
	if cursor >= len(marked) {
		cursor = len(marked) - 1
	}
	offset := layout.CalculateViewportOffset(cursor, len(marked), capacity)

	for i := offset; i < len(marked) && i < offset+capacity; i++ {
		q := marked[i]
		b.WriteString(a.renderRow(q, i == cursor, width) + "\n")
		answer, _ := layout.TruncateText(firstLine(q.Answer), width-4, a.layoutConfig.Text)
		b.WriteString("    " + a.styles.Caption.Render(answer) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// === Status lines ===

// renderMessage renders the status line with severity styling.
func (a App) renderMessage() string {
	if a.message.Text == "" {
		return " "
	}

	text, _ := layout.TruncateText(a.message.Text, a.width-2, a.layoutConfig.Text)
	switch a.message.Severity {
	case SeverityWarning:
		return a.styles.Warning.Render(text)
	case SeverityError:
		return a.styles.Error.Render(text)
	default:
		return a.styles.Info.Render(text)
	}
}

// renderHelpBar renders contextual key hints.
func (a App) renderHelpBar() string {
	return layout.TruncateANSIAware(a.renderHints(a.getContextualHints()), a.width-2, a.layoutConfig.Text)
}

// === Modals ===

// renderModal renders the current overlay centered on screen.
func (a App) renderModal() string {
	var title, content strings.Builder

	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.WidthPercent, a.layoutConfig.Modal)
	modalStyle := a.styles.PaneActive.
		Padding(1, 2).
		Width(modalWidth)

	switch a.mode {
	case ModeCategories:
		title.WriteString("Filter by Category\n\n")
		content.WriteString(a.renderCategoryList(modalWidth - 4))
		content.WriteString("\n\n")
		content.WriteString(a.renderHintsInline([]Hint{
			{Key: "space", Desc: "toggle"},
			{Key: "a", Desc: "all"},
			{Key: "Enter", Desc: "done"},
		}))

	case ModeConfirmClear:
		title.WriteString("Clear Bookmarks\n\n")
		fmt.Fprintf(&content, "Remove all %d bookmarks?\n\n", a.session.BookmarkCount())
		content.WriteString(a.renderHintsInline([]Hint{
			{Key: "y", Desc: "confirm"},
			{Key: "n", Desc: "cancel"},
		}))

	case ModeHelp:
		title.WriteString("Keys\n\n")
		content.WriteString(a.renderHelpTable())
	}

	modal := modalStyle.Render(a.styles.Title.Render(title.String()) + content.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}

func (a App) renderCategoryList(width int) string {
	names := a.categories.Names
	if len(names) == 0 {
		return a.styles.Empty.Render("(no categories)")
	}

	selected := a.session.Criteria()
	start, end := layout.CalculateVisibleListItems(a.layoutConfig.Modal.CategoryMaxVisible, a.categories.Cursor, len(names))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		name := names[i]
		box := "[ ]"
		if selected.HasCategory(name) {
			box = "[x]"
		}
		line, _ := layout.TruncateWithPrefixSuffix(name, width-1, box+" ", fmt.Sprintf(" (%d)", a.categories.Counts[name]), a.layoutConfig.Text)
		if i == a.categories.Cursor {
			lines = append(lines, a.styles.ItemSelected.Render(line))
		} else {
			lines = append(lines, a.styles.Item.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

func (a App) renderHelpTable() string {
	groups := [][]struct {
		keys string
		desc string
	}{
		{
			{"1/2/3 tab", "switch view"},
			{"j/k gg G", "move in lists"},
			{"enter", "study selected card"},
		},
		{
			{"h/l", "previous/next card"},
			{"r", "random card"},
			{"space", "reveal answer"},
			{"x/c/v", "rate hard/okay/easy"},
		},
		{
			{"b", "toggle bookmark"},
			{"C", "clear bookmarks"},
			{"E", "export bookmarks"},
			{"y", "copy card"},
		},
		{
			{"/", "search"},
			{"f", "filter categories"},
			{"esc", "clear filters"},
			{"?", "help"},
			{"q", "quit"},
		},
	}

	keyCol := lipgloss.NewStyle().Width(a.layoutConfig.Modal.HelpKeyColumnWidth)
	var b strings.Builder
	for gi, group := range groups {
		if gi > 0 {
			b.WriteString("\n")
		}
		for _, row := range group {
			b.WriteString(keyCol.Render(a.styles.HintKey.Render(row.keys)) + a.styles.HintDesc.Render(row.desc) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
