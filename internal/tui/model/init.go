package model

import (
	"time"

	"fnctl/internal/functionapp"
	"fnctl/internal/store"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "navigate up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "navigate down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next option"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select/confirm"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		ToggleRow: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle details"),
		),
		ExpandAll: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand/collapse all"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy URL"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new function app"),
		),
		Publish: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "publish"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "row menu"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		DismissToast: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss notification"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "manage notifications"),
		),
		Upload: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "upload zip"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		CopyLogs: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy logs"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// InitializeModel constructs the initial model from cfg.
func InitializeModel(cfg TUIConfig) *Model {
	search := textinput.New()
	search.Placeholder = "Search function apps"
	search.Prompt = "/ "
	search.CharLimit = 64

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = functionapp.DefaultCatalog
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	delay := cfg.CopyDelay
	if delay <= 0 {
		delay = DefaultCopyDelay
	}
	clip := cfg.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}

	m := &Model{
		CurrentAppMode: ModeMain,
		DebugMode:      cfg.DebugMode,
		Runner:         cfg.Runner,
		Store:          cfg.Store,
		Shell:          cfg.Shell,
		Uploader:       cfg.Uploader,
		Clipboard:      clip,
		Project:        cfg.Project,
		Profile:        cfg.Profile,
		Catalog:        catalog,
		Location:       loc,
		CopyDelay:      delay,
		SearchInput:    search,
		Expanded:       map[string]bool{},
		Copied:         map[string]bool{},
		CopyGen:        map[string]int{},
		ActivityLog:    make([]string, 0),
		LogViewport:    viewport.New(0, 0),
		Spinner:        s,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		LogChannel:     cfg.LogChannel,
	}
	if m.Store != nil {
		m.StoreSub = m.Store.Subscribe()
		if m.ApplyState(m.Store.Snapshot()) {
			m.Store.Dispatch(store.CreateSuccessConsumed{})
		}
	}
	m.resetCreateForm()
	m.resetPublishForm()
	return m
}

// Init implements tea.Model. It starts the store and log listeners and the
// first fetch.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.Spinner.Tick,
		ListenForStoreCmd(m.StoreSub, m.Store),
		ListenForLogEntriesCmd(m.LogChannel),
	}
	if m.Runner != nil {
		cmds = append(cmds, FetchCmd(m.Runner, m.Project))
	}
	return tea.Batch(cmds...)
}
