package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/drill/internal/exporter"
	"github.com/nikbrunner/drill/internal/model"
	"github.com/nikbrunner/drill/internal/session"
	"github.com/nikbrunner/drill/internal/storage"
	"github.com/nikbrunner/drill/internal/tui/layout"
	"github.com/rs/zerolog"
)

// App is the main bubbletea model for the study tool.
type App struct {
	session      *session.Session
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	logger       zerolog.Logger
	clipboard    func(string) error
	exportDir    string
	now          func() time.Time
	showAnswers  bool
	demo         bool

	view       View
	mode       Mode
	browse     ListNav // selected row in the browse list
	marked     ListNav // selected row in the bookmarks list
	search     SearchState
	categories CategoryState
	message    Message

	// For gg command
	lastKeyWasG bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Session      *session.Session     // optional, built from Load.Deck if nil
	Load         storage.LoadResult   // deck load outcome, its message is shown on start
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	Logger       *zerolog.Logger      // optional, discards if nil
	Clipboard    func(string) error   // optional, uses the system clipboard if nil
	Now          func() time.Time     // optional, uses time.Now if nil
	ExportDir    string
	InitialView  View
	ShowAnswers  bool // show answers under each row in the browse list
}

// exportedMsg reports the outcome of a bookmark export.
type exportedMsg struct {
	path  string
	count int
	err   error
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutConfig := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	logger := zerolog.Nop()
	if params.Logger != nil {
		logger = *params.Logger
	}

	copyFn := params.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	now := params.Now
	if now == nil {
		now = time.Now
	}

	sess := params.Session
	if sess == nil {
		sess = session.New(params.Load.Deck)
	}

	app := App{
		session:      sess,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutConfig,
		logger:       logger,
		clipboard:    copyFn,
		exportDir:    params.ExportDir,
		now:          now,
		showAnswers:  params.ShowAnswers,
		demo:         params.Load.Demo,
		view:         params.InitialView,
		mode:         ModeNormal,
		search:       NewSearchState(layoutConfig),
		width:        80,
		height:       24,
	}

	switch params.Load.Severity {
	case storage.SeverityWarning:
		app.message = Message{Text: params.Load.Message, Severity: SeverityWarning}
	case storage.SeverityError:
		app.message = Message{Text: params.Load.Message, Severity: SeverityError}
	}

	return app
}

// WithDimensions returns a copy of the app sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Session returns the study session driven by the app.
func (a App) Session() *session.Session {
	return a.session
}

// CurrentView returns the selected study view.
func (a App) CurrentView() View {
	return a.view
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// Message returns the status line.
func (a App) Message() Message {
	return a.message
}

// BrowseCursor returns the selected row in the browse list.
func (a App) BrowseCursor() int {
	return a.browse.Cursor
}

// BookmarkCursor returns the selected row in the bookmarks list.
func (a App) BookmarkCursor() int {
	return a.marked.Cursor
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case exportedMsg:
		a.handleExported(msg)
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeSearch:
			cmd := a.updateSearch(msg)
			return a, cmd
		case ModeCategories:
			a.updateCategories(msg)
			return a, nil
		case ModeConfirmClear:
			a.updateConfirmClear(msg)
			return a, nil
		case ModeHelp:
			a.updateHelp(msg)
			return a, nil
		default:
			return a.updateNormal(msg)
		}
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.lastKeyWasG = false
			a.moveToTop()
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	// Messages last until the next key
	a.message = Message{}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp

	case key.Matches(msg, a.keys.ViewBrowse):
		a.view = ViewBrowse

	case key.Matches(msg, a.keys.ViewFlashcard):
		a.view = ViewFlashcard

	case key.Matches(msg, a.keys.ViewBookmarks):
		a.view = ViewBookmarks

	case key.Matches(msg, a.keys.NextView):
		a.view = (a.view + 1) % View(len(viewNames))

	case key.Matches(msg, a.keys.Search):
		// Bookmarks ignores filters, so searching moves to the list it narrows
		if a.view == ViewBookmarks {
			a.view = ViewBrowse
		}
		query := a.session.Criteria().Query
		a.search.Previous = query
		a.search.Input.SetValue(query)
		a.search.Input.CursorEnd()
		a.mode = ModeSearch
		cmd := a.search.Input.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Categories):
		a.openCategories()

	case key.Matches(msg, a.keys.ClearFilters):
		if !a.session.Criteria().IsEmpty() {
			a.session.ClearFilters()
			a.search.Input.Reset()
			a.browse.Cursor = 0
			a.setInfo("Filters cleared.")
		}

	case key.Matches(msg, a.keys.ClearBookmarks):
		if a.session.BookmarkCount() == 0 {
			a.setInfo("No bookmarks to clear.")
		} else {
			a.mode = ModeConfirmClear
		}

	case key.Matches(msg, a.keys.Export):
		cmd := a.exportBookmarks()
		return a, cmd

	default:
		switch a.view {
		case ViewBrowse:
			a.updateBrowse(msg)
		case ViewFlashcard:
			a.updateFlashcard(msg)
		case ViewBookmarks:
			a.updateBookmarks(msg)
		}
	}

	return a, nil
}

func (a *App) moveToTop() {
	switch a.view {
	case ViewBrowse:
		a.browse.Cursor = 0
	case ViewBookmarks:
		a.marked.Cursor = 0
	}
}

// selectedBrowse returns the question under the browse cursor.
func (a *App) selectedBrowse() (model.Question, bool) {
	visible := a.session.Visible()
	a.browse.Clamp(len(visible))
	if len(visible) == 0 {
		return model.Question{}, false
	}
	return visible[a.browse.Cursor], true
}

// selectedBookmark returns the question under the bookmarks cursor.
func (a *App) selectedBookmark() (model.Question, bool) {
	marked := a.session.Bookmarked()
	a.marked.Clamp(len(marked))
	if len(marked) == 0 {
		return model.Question{}, false
	}
	return marked[a.marked.Cursor], true
}

func (a *App) updateBrowse(msg tea.KeyMsg) {
	n := len(a.session.Visible())

	switch {
	case key.Matches(msg, a.keys.Down):
		a.browse.Move(1, n)

	case key.Matches(msg, a.keys.Up):
		a.browse.Move(-1, n)

	case key.Matches(msg, a.keys.Bottom):
		a.browse.Move(n, n)

	case key.Matches(msg, a.keys.Bookmark):
		if q, ok := a.selectedBrowse(); ok {
			a.toggleBookmark(q)
		}

	case key.Matches(msg, a.keys.Open):
		if _, ok := a.selectedBrowse(); ok {
			a.session.Jump(a.browse.Cursor)
			a.view = ViewFlashcard
		}

	case key.Matches(msg, a.keys.Yank):
		if q, ok := a.selectedBrowse(); ok {
			a.yank(q)
		}
	}
}

func (a *App) updateFlashcard(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, a.keys.Prev):
		a.session.Previous()

	case key.Matches(msg, a.keys.Next):
		a.session.Next()

	case key.Matches(msg, a.keys.Random):
		a.session.Random()

	case key.Matches(msg, a.keys.Reveal):
		a.session.ToggleReveal()

	case key.Matches(msg, a.keys.Bookmark):
		if q, ok := a.session.Current(); ok {
			a.toggleBookmark(q)
		}

	case key.Matches(msg, a.keys.Hard):
		a.rate("Hard")

	case key.Matches(msg, a.keys.Okay):
		a.rate("Okay")

	case key.Matches(msg, a.keys.Easy):
		a.rate("Easy")

	case key.Matches(msg, a.keys.Yank):
		if q, ok := a.session.Current(); ok {
			a.yank(q)
		}
	}
}

func (a *App) updateBookmarks(msg tea.KeyMsg) {
	n := a.session.BookmarkCount()

	switch {
	case key.Matches(msg, a.keys.Down):
		a.marked.Move(1, n)

	case key.Matches(msg, a.keys.Up):
		a.marked.Move(-1, n)

	case key.Matches(msg, a.keys.Bottom):
		a.marked.Move(n, n)

	case key.Matches(msg, a.keys.Bookmark):
		if q, ok := a.selectedBookmark(); ok {
			a.toggleBookmark(q)
		}

	case key.Matches(msg, a.keys.Open):
		if q, ok := a.selectedBookmark(); ok {
			a.study(q)
		}

	case key.Matches(msg, a.keys.Yank):
		if q, ok := a.selectedBookmark(); ok {
			a.yank(q)
		}
	}
}

// study opens q as a flashcard, clearing filters that hide it.
func (a *App) study(q model.Question) {
	idx := indexOf(a.session.Visible(), q.ID)
	if idx < 0 {
		a.session.ClearFilters()
		a.search.Input.Reset()
		a.browse.Cursor = 0
		idx = indexOf(a.session.Visible(), q.ID)
		a.setInfo(fmt.Sprintf("Filters cleared to show #%d.", q.ID))
	}
	a.session.Jump(idx)
	a.view = ViewFlashcard
}

func indexOf(questions []model.Question, id int) int {
	for i, q := range questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}

func (a *App) toggleBookmark(q model.Question) {
	if a.session.ToggleBookmark(q.ID) {
		a.setInfo(fmt.Sprintf("Bookmarked #%d.", q.ID))
	} else {
		a.setInfo(fmt.Sprintf("Removed bookmark #%d.", q.ID))
	}
	a.marked.Clamp(a.session.BookmarkCount())
	a.logger.Debug().Int("question", q.ID).Int("bookmarks", a.session.BookmarkCount()).Msg("bookmark toggled")
}

// rate acknowledges a self-assessment. Ratings are not recorded.
func (a *App) rate(label string) {
	if !a.session.Revealed() {
		return
	}
	q, ok := a.session.Current()
	if !ok {
		return
	}
	a.setInfo(fmt.Sprintf("Rated #%d as %s.", q.ID, label))
	a.logger.Debug().Int("question", q.ID).Str("rating", label).Msg("card rated")
}

func (a *App) yank(q model.Question) {
	if err := a.clipboard(cardText(q)); err != nil {
		a.logger.Warn().Err(err).Int("question", q.ID).Msg("clipboard write failed")
		a.setError("Copy failed: " + err.Error())
		return
	}
	a.setInfo(fmt.Sprintf("Copied #%d to clipboard.", q.ID))
}

// cardText formats a question for the clipboard.
func cardText(q model.Question) string {
	return fmt.Sprintf("#%d [%s] %s\n\n%s", q.ID, q.Category, q.Question, q.Answer)
}

func (a *App) exportBookmarks() tea.Cmd {
	questions := a.session.Bookmarked()
	if len(questions) == 0 {
		a.setInfo("No bookmarks to export.")
		return nil
	}

	path := exporter.DefaultExportPath(a.exportDir, a.now())
	a.setInfo("Exporting bookmarks...")
	return func() tea.Msg {
		err := exporter.ExportFile(path, "Bookmarked questions", questions)
		return exportedMsg{path: path, count: len(questions), err: err}
	}
}

func (a *App) handleExported(msg exportedMsg) {
	if msg.err != nil {
		a.logger.Error().Err(msg.err).Str("path", msg.path).Msg("export failed")
		a.setError("Export failed: " + msg.err.Error())
		return
	}
	a.logger.Info().Str("path", msg.path).Int("count", msg.count).Msg("bookmarks exported")
	a.setInfo(fmt.Sprintf("Exported %d bookmarks to %s", msg.count, msg.path))
}

// === Search ===

func (a *App) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		a.mode = ModeNormal
		a.search.Input.Blur()
		return nil

	case tea.KeyEsc:
		a.search.Input.SetValue(a.search.Previous)
		a.applyQuery(a.search.Previous)
		a.mode = ModeNormal
		a.search.Input.Blur()
		return nil
	}

	var cmd tea.Cmd
	a.search.Input, cmd = a.search.Input.Update(msg)
	a.applyQuery(a.search.Input.Value())
	return cmd
}

func (a *App) applyQuery(query string) {
	if query == a.session.Criteria().Query {
		return
	}
	a.session.SetQuery(query)
	a.browse.Cursor = 0
}

// === Categories ===

func (a *App) openCategories() {
	deck := a.session.Deck()
	a.categories.Names = deck.Categories()
	a.categories.Counts = deck.CategoryCounts()
	if a.categories.Cursor >= len(a.categories.Names) {
		a.categories.Cursor = 0
	}
	a.mode = ModeCategories
}

func (a *App) updateCategories(msg tea.KeyMsg) {
	n := len(a.categories.Names)

	switch msg.String() {
	case "j", "down":
		if a.categories.Cursor < n-1 {
			a.categories.Cursor++
		}
	case "k", "up":
		if a.categories.Cursor > 0 {
			a.categories.Cursor--
		}
	case " ", "x":
		if n > 0 {
			a.session.ToggleCategory(a.categories.Names[a.categories.Cursor])
			a.browse.Cursor = 0
		}
	case "a":
		a.session.SetCategories(nil)
		a.browse.Cursor = 0
	case "enter", "esc", "f", "q":
		a.mode = ModeNormal
	}
}

// === Confirm clear ===

func (a *App) updateConfirmClear(msg tea.KeyMsg) {
	switch msg.String() {
	case "y", "Y", "enter":
		n := a.session.BookmarkCount()
		a.session.ClearBookmarks()
		a.marked.Cursor = 0
		a.mode = ModeNormal
		a.setInfo(fmt.Sprintf("Cleared %d bookmarks.", n))
		a.logger.Info().Int("count", n).Msg("bookmarks cleared")
	case "n", "N", "esc", "q":
		a.mode = ModeNormal
	}
}

// === Help ===

func (a *App) updateHelp(msg tea.KeyMsg) {
	switch msg.String() {
	case "?", "q", "esc":
		a.mode = ModeNormal
	}
}

func (a *App) setInfo(text string) {
	a.message = Message{Text: text, Severity: SeverityInfo}
}

func (a *App) setError(text string) {
	a.message = Message{Text: text, Severity: SeverityError}
}
