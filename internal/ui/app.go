package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/JawandS/WbgNews/internal/api"
	"github.com/JawandS/WbgNews/internal/format"
	"github.com/JawandS/WbgNews/internal/prefs"
	"github.com/JawandS/WbgNews/internal/render"
	"github.com/JawandS/WbgNews/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewList View = iota
	ViewDetail
	ViewLogs
)

const (
	defaultPollTick   = time.Second
	notificationTTL   = 5000 * time.Millisecond
	searchDebounce    = 300 * time.Millisecond
	logTailLines      = 400
	maxCardWidth      = 96
	minCardWidth      = 40
	maxNotifications  = 3
	chromeLines       = 3 // header, command bar, status line
	defaultViewHeight = 10
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Fetcher api.MeetingFetcher
	Store   *state.Store
	// Refresh asks the poller for an immediate fetch. Nil disables retry.
	Refresh      func(ctx context.Context) error
	PollTick     time.Duration
	ThemeName    string
	PrefsPath    string
	LogPath      string
	ColorProfile termenv.Profile
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	fetcher   api.MeetingFetcher
	store     *state.Store
	refresh   func(ctx context.Context) error
	prefsPath string
	logPath   string
	pollTick  time.Duration
	profile   termenv.Profile
	keys      keyMap

	// UI state
	theme       Theme
	cards       *render.Terminal
	currentView View
	width       int
	height      int
	ready       bool
	spinner     spinner.Model

	// Data state
	snapshot   state.Snapshot
	views      []format.MeetingView
	refreshing bool

	// List state
	selected     int
	filter       listFilter
	listViewport viewport.Model
	cardOffsets  []int
	cardHeights  []int
	search       searchState

	// Detail state
	detail         detailState
	detailViewport viewport.Model

	// Log state
	logs        logState
	logViewport viewport.Model

	notifications []notification
	nextNoteID    int

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = defaultPollTick
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		ctx:            ctx,
		fetcher:        opts.Fetcher,
		store:          opts.Store,
		refresh:        opts.Refresh,
		prefsPath:      prefsPath,
		logPath:        opts.LogPath,
		pollTick:       pollTick,
		profile:        opts.ColorProfile,
		keys:           DefaultKeyMap(),
		theme:          GetTheme(themeName),
		currentView:    ViewList,
		spinner:        spin,
		search:         newSearchState(),
		listViewport:   viewport.New(0, defaultViewHeight),
		detailViewport: viewport.New(0, defaultViewHeight),
		logViewport:    viewport.New(0, defaultViewHeight),
	}
	m.rebuildCards()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		m.spinner.Tick,
		waitForSearchCmd(m.ctx, m.search.events),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		if m.currentView == ViewLogs {
			cmds = append(cmds, loadLogsCmd(m.logPath))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshDoneMsg:
		m.refreshing = false
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		if msg.err != nil {
			var cmd tea.Cmd
			m, cmd = m.notify("Refresh failed: "+errorMessage(msg.err), levelError)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case detailLoadedMsg:
		m.handleDetailLoaded(msg)
		return m, nil

	case searchAppliedMsg:
		// Late results from a closed search box are stale.
		if m.search.active {
			m.applySearch(string(msg))
		}
		return m, waitForSearchCmd(m.ctx, m.search.events)

	case logsLoadedMsg:
		m.handleLogsLoaded(msg)
		return m, nil

	case notificationExpiredMsg:
		m.dismiss(int(msg))
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return render.DefaultLoadingMessage
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// The search box owns the keyboard while open.
	if m.search.active {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.search.debouncer.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme()

	case key.Matches(msg, m.keys.ViewLogs):
		m.currentView = ViewLogs
		return m, loadLogsCmd(m.logPath)

	case key.Matches(msg, m.keys.Escape):
		if m.currentView != ViewList {
			m.currentView = ViewList
			return m, nil
		}
		if m.filter.active() {
			m.clearFilters()
		}
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewList:
		return m.handleListKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewLogs:
		return m.handleLogsKey(msg)
	}

	return m, nil
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.rebuildCards()
	m.refreshContent()
	if m.prefsPath == "" {
		return m, nil
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		slog.Warn("save theme preference failed", slog.String("theme", m.theme.Name), slog.Any("error", err))
		return m.notify("Could not save theme preference", levelWarn)
	}
	return m.notify("Theme: "+m.theme.Name, levelInfo)
}

// retry asks for an immediate refresh unless one is already running.
func (m Model) retry() (Model, tea.Cmd) {
	if m.refresh == nil || m.refreshing {
		return m, nil
	}
	m.refreshing = true
	refresh := m.refresh
	ctx := m.ctx
	return m, func() tea.Msg {
		return refreshDoneMsg{err: refresh(ctx)}
	}
}

func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.views = format.BuildViews(snap.Meetings)
	m.updateListViewport()
}

// resize recomputes viewport geometry after a terminal size change or
// when the search line appears or disappears.
func (m *Model) resize() {
	m.listViewport.Width = m.width
	m.listViewport.Height = m.bodyHeight(m.searchLineVisible())
	m.detailViewport.Width = m.width
	m.detailViewport.Height = m.bodyHeight(false)
	m.logViewport.Width = m.width
	m.logViewport.Height = m.bodyHeight(false)
	m.search.input.Width = maxInt(m.width-6, 10)
	m.rebuildCards()
	m.refreshContent()
}

// contentHeight is the height of the active view's content region.
func (m Model) contentHeight() int {
	return m.bodyHeight(m.currentView == ViewList && m.searchLineVisible())
}

func (m Model) bodyHeight(withSearch bool) int {
	h := m.height - chromeLines
	if withSearch {
		h--
	}
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) rebuildCards() {
	width := m.width - 4
	if width > maxCardWidth {
		width = maxCardWidth
	}
	if width < minCardWidth {
		width = minCardWidth
	}
	m.cards = render.NewTerminal(m.theme.Palette(),
		render.WithProfile(m.profile),
		render.WithWidth(width))
}

func (m *Model) refreshContent() {
	m.updateListViewport()
	m.updateDetailViewport()
	m.updateLogViewport()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type refreshDoneMsg struct{ err error }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	if opts.Context == nil {
		opts.Context = ctx
	}

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// Shutdown via context is not a UI failure.
		return nil
	}
	return err
}
