package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/skyline/internal/apod"
	"github.com/five82/skyline/internal/config"
	"github.com/five82/skyline/internal/logtail"
	"github.com/five82/skyline/internal/prefs"
	"github.com/five82/skyline/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewList View = iota
	ViewDetail
	ViewLogs
)

// Refresher runs one load cycle against the store. Refresh returns false
// when it did not start because another load is pending.
type Refresher interface {
	Refresh(ctx context.Context) bool
	WindowDays() int
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Refresher Refresher
	Config    *config.Config
	ThemeName string
	Compact   bool
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	refresher Refresher
	config    *config.Config
	prefsPath string

	// UI state
	theme       Theme
	keys        keyMap
	help        help.Model
	spinner     spinner.Model
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	compact     bool
	notice      string

	// Data state
	snapshot state.Snapshot
	pending  bool

	// List state
	selected int
	offset   int

	// Detail state; the record is a copy so a refresh never changes an open detail view.
	detail         apod.Record
	detailViewport viewport.Model

	// Log overlay
	logViewport viewport.Model
	logErr      error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}
	theme := GetTheme(themeName)

	m := Model{
		ctx:         ctx,
		store:       opts.Store,
		refresher:   opts.Refresher,
		config:      opts.Config,
		prefsPath:   opts.PrefsPath,
		theme:       theme,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		currentView: ViewList,
		compact:     opts.Compact,
		pending:     opts.Refresher != nil && opts.Store != nil,
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model. It starts the initial load.
func (m Model) Init() tea.Cmd {
	return m.startRefresh()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, m.contentHeight())
			m.logViewport = viewport.New(msg.Width, m.contentHeight())
		}
		m.ready = true
		m.resizeViewports()
		m.ensureVisible()
		return m, nil

	case refreshDoneMsg:
		m.pending = false
		if !msg.started {
			m.notice = "A refresh is already running"
		}
		m.applySnapshot(msg.snapshot)
		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case logLinesMsg:
		m.logErr = msg.err
		m.logViewport.SetContent(m.renderLogLines(msg.lines))
		m.logViewport.GotoBottom()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderContent() string {
	height := m.contentHeight()
	var body string
	switch m.currentView {
	case ViewDetail:
		body = m.detailViewport.View()
	case ViewLogs:
		body = m.logViewport.View()
	default:
		body = m.renderListView(height)
	}
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(body)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.savePrefs()
		if m.currentView == ViewDetail {
			m.detailViewport.SetContent(m.renderDetail(m.detail, m.detailViewport.Width))
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.pending {
			m.notice = "A refresh is already running"
			return m, nil
		}
		m.pending = true
		return m, m.startRefresh()

	case key.Matches(msg, m.keys.ToggleLogs):
		if m.currentView == ViewLogs {
			m.currentView = ViewList
			return m, nil
		}
		m.currentView = ViewLogs
		return m, m.readLogCmd()
	}

	switch m.currentView {
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewLogs:
		return m.handleLogsKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

// handleListKey processes keyboard input for the list view.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ToggleLayout) {
		m.compact = !m.compact
		m.savePrefs()
		m.ensureVisible()
		return m, nil
	}

	count := len(m.snapshot.Records)
	if count == 0 {
		return m, nil
	}
	page := maxInt(1, m.visibleRows())

	switch {
	case key.Matches(msg, m.keys.Down):
		m.selected++
	case key.Matches(msg, m.keys.Up):
		m.selected--
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	case key.Matches(msg, m.keys.PageDown):
		m.selected += page
	case key.Matches(msg, m.keys.PageUp):
		m.selected -= page
	case key.Matches(msg, m.keys.Open):
		m.openDetail(m.snapshot.Records[m.selected])
		return m, nil
	}
	m.selected = clamp(m.selected, 0, count-1)
	m.ensureVisible()
	return m, nil
}

// handleDetailKey scrolls the detail viewport or returns to the list.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.currentView = ViewList
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// handleLogsKey scrolls the log overlay or closes it.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.currentView = ViewList
		return m, nil
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

func (m *Model) openDetail(rec apod.Record) {
	m.detail = rec
	m.currentView = ViewDetail
	m.detailViewport.SetContent(m.renderDetail(rec, m.detailViewport.Width))
	m.detailViewport.GotoTop()
}

// applySnapshot installs a new snapshot and keeps the selection on the
// same record when it is still present.
func (m *Model) applySnapshot(snap state.Snapshot) {
	selectedID := ""
	if m.selected >= 0 && m.selected < len(m.snapshot.Records) {
		selectedID = m.snapshot.Records[m.selected].ID
	}
	m.snapshot = snap

	m.selected = 0
	for i, rec := range snap.Records {
		if rec.ID == selectedID {
			m.selected = i
			break
		}
	}
	m.ensureVisible()
}

// ensureVisible scrolls the list so the selected row is on screen.
func (m *Model) ensureVisible() {
	rows := m.visibleRows()
	if rows <= 0 {
		m.offset = 0
		return
	}
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+rows {
		m.offset = m.selected - rows + 1
	}
	m.offset = clamp(m.offset, 0, maxInt(0, len(m.snapshot.Records)-rows))
}

func (m *Model) resizeViewports() {
	h := m.contentHeight()
	m.detailViewport.Width = m.width
	m.detailViewport.Height = h
	m.logViewport.Width = m.width
	m.logViewport.Height = h
	if m.currentView == ViewDetail {
		m.detailViewport.SetContent(m.renderDetail(m.detail, m.width))
	}
}

func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.spinner.Style = styles.AccentText
	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.WarningText
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
}

func (m *Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Compact: m.compact}); err != nil {
		m.notice = fmt.Sprintf("Could not save preferences: %v", err)
	}
}

func (m Model) contentHeight() int {
	return maxInt(1, m.height-headerHeight-footerHeight)
}

func (m Model) windowDays() int {
	if m.refresher != nil {
		return m.refresher.WindowDays()
	}
	if m.config != nil {
		return m.config.WindowDays
	}
	return 0
}

// Messages

type refreshDoneMsg struct {
	started  bool
	snapshot state.Snapshot
}

type logLinesMsg struct {
	lines []string
	err   error
}

// Commands

// startRefresh runs a load cycle off the UI goroutine and starts the spinner.
func (m Model) startRefresh() tea.Cmd {
	if m.refresher == nil || m.store == nil {
		return nil
	}
	refresher, store, ctx := m.refresher, m.store, m.ctx
	load := func() tea.Msg {
		started := refresher.Refresh(ctx)
		return refreshDoneMsg{started: started, snapshot: store.Snapshot()}
	}
	return tea.Batch(load, m.spinner.Tick)
}

func (m Model) readLogCmd() tea.Cmd {
	if m.config == nil {
		return nil
	}
	path := m.config.LogFile
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	opts.Context = ctx

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
