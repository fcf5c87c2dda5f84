package model

import (
	"strings"
	"time"

	"fnctl/internal/functionapp"
	"fnctl/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ApplyState mirrors a store snapshot into the model. It returns true when
// the store's one-shot CreateSuccess flag was seen and must be consumed. The
// first sync after start consumes the flag without showing the toast.
func (m *Model) ApplyState(s store.State) bool {
	m.State = s
	m.syncRows()
	m.clampCursor()

	if !m.FirstSyncDone {
		m.FirstSyncDone = true
		return s.CreateSuccess
	}
	if s.CreateSuccess {
		m.ToastVisible = true
		return true
	}
	return false
}

// syncRows gives new rows the expand-all state and forgets removed rows.
func (m *Model) syncRows() {
	present := make(map[string]bool, len(m.State.IDs))
	for _, id := range m.State.IDs {
		present[id] = true
		if _, ok := m.Expanded[id]; !ok {
			m.Expanded[id] = m.AllExpanded
		}
	}
	for name := range m.Expanded {
		if !present[name] {
			delete(m.Expanded, name)
		}
	}
	for name := range m.Copied {
		if !present[name] {
			delete(m.Copied, name)
		}
	}
}

// VisibleApps returns the apps matching the search query, sorted by name.
func (m *Model) VisibleApps() []functionapp.FunctionApp {
	return functionapp.Filter(m.State.All(), m.SearchInput.Value())
}

// SelectedApp returns the app under the cursor.
func (m *Model) SelectedApp() (functionapp.FunctionApp, bool) {
	apps := m.VisibleApps()
	if m.Cursor < 0 || m.Cursor >= len(apps) {
		return functionapp.FunctionApp{}, false
	}
	return apps[m.Cursor], true
}

// MoveCursor moves the row cursor by delta, clamped to the visible rows.
func (m *Model) MoveCursor(delta int) {
	m.Cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.VisibleApps())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// IsExpanded reports whether a row shows its details.
func (m *Model) IsExpanded(name string) bool {
	return m.Expanded[name]
}

// ToggleRow flips one row's details.
func (m *Model) ToggleRow(name string) {
	m.Expanded[name] = !m.Expanded[name]
}

// SetAllExpanded expands or collapses every row. Rows that appear later
// follow the same state.
func (m *Model) SetAllExpanded(v bool) {
	m.AllExpanded = v
	for name := range m.Expanded {
		m.Expanded[name] = v
	}
}

// MarkCopied shows the copied indicator on a row and returns the generation
// the expiry timer must present to clear it.
func (m *Model) MarkCopied(name string) int {
	m.CopyGen[name]++
	m.Copied[name] = true
	return m.CopyGen[name]
}

// ExpireCopied clears the indicator unless the row was copied again since gen.
func (m *Model) ExpireCopied(name string, gen int) bool {
	if m.CopyGen[name] != gen {
		return false
	}
	delete(m.Copied, name)
	return true
}

// OpenDialog shows a dialog. Starting an action dismisses the toast.
func (m *Model) OpenDialog(kind DialogKind, target string) {
	m.ToastVisible = false
	m.Dialog = Dialog{Kind: kind, Phase: PhaseOpen, Target: target}
	switch kind {
	case DialogCreate:
		m.resetCreateForm()
		m.Create.NameInput.Focus()
	case DialogPublish:
		m.resetPublishForm()
		m.Publish.PathInput.Focus()
	}
	m.CurrentAppMode = ModeDialog
}

// CloseDialog hides the dialog. An operation still in flight keeps running.
func (m *Model) CloseDialog() {
	m.Create.NameInput.Blur()
	m.Publish.PathInput.Blur()
	m.Dialog = Dialog{}
	m.CurrentAppMode = ModeMain
}

// BeginSubmit moves the dialog into the submitting phase.
func (m *Model) BeginSubmit() {
	m.Dialog.Phase = PhaseSubmitting
	m.Dialog.Err = ""
}

// FailSubmit returns the dialog to open with an inline error.
func (m *Model) FailSubmit(msg string) {
	m.Dialog.Phase = PhaseOpen
	m.Dialog.Err = msg
}

func (m *Model) resetCreateForm() {
	in := textinput.New()
	in.Placeholder = "my-function-app"
	in.Prompt = ""
	in.CharLimit = 60

	stack := m.Catalog.DefaultStack()
	m.Create = CreateForm{
		NameInput:  in,
		StackKey:   stack.Key,
		VersionKey: stack.Default().Key,
	}
}

// FocusCreateField moves focus within the create dialog by delta.
func (m *Model) FocusCreateField(delta int) {
	m.Create.Focus = ((m.Create.Focus+delta)%createFieldCount + createFieldCount) % createFieldCount
	if m.Create.Focus == FieldName {
		m.Create.NameInput.Focus()
	} else {
		m.Create.NameInput.Blur()
	}
}

// SelectStack switches to the next enabled stack in direction delta and
// resets the version to that stack's first option.
func (m *Model) SelectStack(delta int) {
	stack := m.Catalog.Next(m.Create.StackKey, delta)
	m.Create.StackKey = stack.Key
	m.Create.VersionKey = stack.Default().Key
}

// CycleVersion selects the next version of the current stack.
func (m *Model) CycleVersion(delta int) {
	stack, ok := m.Catalog.Stack(m.Create.StackKey)
	if !ok || len(stack.Versions) == 0 {
		return
	}
	idx := 0
	for i, v := range stack.Versions {
		if v.Key == m.Create.VersionKey {
			idx = i
			break
		}
	}
	n := len(stack.Versions)
	m.Create.VersionKey = stack.Versions[((idx+delta)%n+n)%n].Key
}

// CreateRequest builds the request for the create dialog's current values.
// The name is validated by the create operation.
func (m *Model) CreateRequest() (functionapp.CreateRequest, error) {
	opt, err := m.Catalog.Resolve(m.Create.StackKey, m.Create.VersionKey)
	if err != nil {
		return functionapp.CreateRequest{}, err
	}
	return functionapp.NewCreateRequest(m.Create.NameInput.Value(), opt), nil
}

func (m *Model) resetPublishForm() {
	in := textinput.New()
	in.Placeholder = "path/to/package.zip"
	in.Prompt = ""
	in.CharLimit = 512
	m.Publish = PublishForm{PathInput: in}
}

// UploadPath is the trimmed zip path typed into the publish dialog.
func (m *Model) UploadPath() string {
	return strings.TrimSpace(m.Publish.PathInput.Value())
}

// OpenMenu shows the context menu for a row.
func (m *Model) OpenMenu(target string) {
	m.MenuTarget = target
	m.MenuCursor = 0
	m.CurrentAppMode = ModeContextMenu
}

// MoveMenu moves the context menu cursor, wrapping around.
func (m *Model) MoveMenu(delta int) {
	n := len(MenuItems)
	m.MenuCursor = ((m.MenuCursor+delta)%n + n) % n
}

// SetStatusMessage updates the status bar message and clears it after clearAfter.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}
	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// AddRawLineToActivityLog adds a pre-formatted log entry to the model's activity log,
// ensuring it doesn't exceed MaxActivityLogLines and sets the dirty flag.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}
