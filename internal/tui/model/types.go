package model

import (
	"time"

	"fnctl/internal/functionapp"
	"fnctl/internal/operations"
	"fnctl/internal/shell"
	"fnctl/internal/store"
	"fnctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeSearch
	ModeDialog
	ModeContextMenu
	ModeHelpOverlay
	ModeLogOverlay
	ModeAccountSettings
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeSearch:
		return "Search"
	case ModeDialog:
		return "Dialog"
	case ModeContextMenu:
		return "ContextMenu"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeAccountSettings:
		return "AccountSettings"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// DialogKind identifies which dialog is shown.
type DialogKind int

const (
	DialogNone DialogKind = iota
	DialogCreate
	DialogPublish
	DialogDelete
)

// DialogPhase is the lifecycle of a dialog: closed -> open -> submitting,
// then closed on success or back to open with an inline error.
type DialogPhase int

const (
	PhaseClosed DialogPhase = iota
	PhaseOpen
	PhaseSubmitting
)

// Dialog is the state of the active dialog.
type Dialog struct {
	Kind   DialogKind
	Phase  DialogPhase
	Target string // app name for publish and delete
	Err    string
}

// Open reports whether a dialog is visible.
func (d Dialog) Open() bool { return d.Phase != PhaseClosed }

// Submitting reports whether the dialog awaits an operation.
func (d Dialog) Submitting() bool { return d.Phase == PhaseSubmitting }

// Create dialog fields.
const (
	FieldName = iota
	FieldStack
	FieldVersion
	createFieldCount
)

// CreateForm is the create dialog's input state.
type CreateForm struct {
	NameInput  textinput.Model
	StackKey   string
	VersionKey string
	Focus      int
}

// PublishForm is the publish dialog's input state.
type PublishForm struct {
	PathInput textinput.Model
	Uploaded  *functionapp.UploadedFile
	Uploading bool
}

// Context menu entries, in display order.
const (
	MenuEditDetails = iota
	MenuEditSettings
	MenuDelete
)

// MenuItems are the labels of the row context menu.
var MenuItems = []string{
	"Edit function app details",
	"Edit Function app settings",
	"Delete function app",
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	DefaultCopyDelay    = 2 * time.Second
	// URLDisplayWidth is the number of cells a SiteUrl may take in a row.
	URLDisplayWidth = 30
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Tab           key.Binding
	Enter         key.Binding
	Esc           key.Binding
	ToggleRow     key.Binding
	ExpandAll     key.Binding
	Search        key.Binding
	Copy          key.Binding
	New           key.Binding
	Publish       key.Binding
	Delete        key.Binding
	Menu          key.Binding
	Refresh       key.Binding
	DismissToast  key.Binding
	Notifications key.Binding
	Upload        key.Binding
	ToggleLog     key.Binding
	CopyLogs      key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Search, k.Copy, k.Menu, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleRow, k.ExpandAll, k.Search},
		{k.New, k.Publish, k.Delete, k.Menu, k.Refresh},
		{k.Copy, k.DismissToast, k.Notifications, k.Upload},
		{k.ToggleLog, k.CopyLogs, k.Help, k.Esc, k.Quit},
	}
}

// TUIConfig carries the collaborators and settings the TUI needs.
type TUIConfig struct {
	DebugMode bool
	Project   string
	Profile   functionapp.Profile
	Catalog   functionapp.Catalog
	Location  *time.Location
	CopyDelay time.Duration

	Runner   operations.Runner
	Store    *store.Store
	Shell    *shell.Store
	Uploader functionapp.Uploader

	// Clipboard writes text to the system clipboard. Defaults to atotto/clipboard.
	Clipboard func(string) error

	LogChannel <-chan logging.LogEntry
}

// Model represents the state of the TUI application
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	QuittingMessage string
	DebugMode       bool

	// Collaborators
	Runner    operations.Runner
	Store     *store.Store
	Shell     *shell.Store
	Uploader  functionapp.Uploader
	Clipboard func(string) error

	// Settings
	Project   string
	Profile   functionapp.Profile
	Catalog   functionapp.Catalog
	Location  *time.Location
	CopyDelay time.Duration

	// Mirror of the application store.
	State         store.State
	StoreSub      *store.Subscription
	FirstSyncDone bool

	// Local view state
	Cursor       int
	SearchInput  textinput.Model
	Expanded     map[string]bool
	AllExpanded  bool
	Copied       map[string]bool
	CopyGen      map[string]int
	ToastVisible bool
	Dialog       Dialog
	Create       CreateForm
	Publish      PublishForm
	MenuTarget   string
	MenuCursor   int

	// UI State & Output
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model

	// Logging
	LogChannel <-chan logging.LogEntry
}
