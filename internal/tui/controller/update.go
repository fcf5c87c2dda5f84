package controller

import (
	"fmt"
	"time"

	"fnctl/internal/store"
	"fnctl/internal/tui/model"
	"fnctl/internal/tui/view"
	"fnctl/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const subsystem = "TUI"

const statusMessageDuration = 4 * time.Second

// Update is the central message routing function for the TUI. It updates the
// model and returns the commands to run next.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.LogViewport.Width = max(msg.Width-6, 0)
		m.LogViewport.Height = max(msg.Height-8, 0)
		m.ActivityLogDirty = true

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = handleKeyMsg(m, msg)
		cmds = append(cmds, cmd)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)

	case model.StoreChangedMsg:
		applyState(m, msg.State)
		cmds = append(cmds, model.ListenForStoreCmd(m.StoreSub, m.Store))

	case model.OperationDoneMsg:
		cmds = append(cmds, handleOperationDone(m, msg))

	case model.PublishDoneMsg:
		cmds = append(cmds, handlePublishDone(m, msg))

	case model.UploadDoneMsg:
		handleUploadDone(m, msg)

	case model.CopyExpiredMsg:
		m.ExpireCopied(msg.Name, msg.Gen)

	case model.NewLogEntryMsg:
		handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarClearCancel = nil

	default:
		var cmd tea.Cmd
		m, cmd = forwardToFocusedInput(m, msg)
		cmds = append(cmds, cmd)
	}

	if m.ActivityLogDirty {
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
		if m.CurrentAppMode != model.ModeLogOverlay || m.LogViewport.AtBottom() {
			m.LogViewport.GotoBottom()
		}
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

// applyState mirrors a store snapshot and consumes the one-shot create flag.
func applyState(m *model.Model, s store.State) {
	if m.ApplyState(s) && m.Store != nil {
		m.Store.Dispatch(store.CreateSuccessConsumed{})
	}
}

func syncFromStore(m *model.Model) {
	if m.Store != nil {
		applyState(m, m.Store.Snapshot())
	}
}

// dialogAwaits reports whether the open dialog is waiting for kind's result.
func dialogAwaits(m *model.Model, kind model.DialogKind, target string) bool {
	return m.Dialog.Kind == kind && m.Dialog.Submitting() && (target == "" || m.Dialog.Target == target)
}

func handleOperationDone(m *model.Model, msg model.OperationDoneMsg) tea.Cmd {
	syncFromStore(m)

	switch msg.Op {
	case model.OpFetch:
		if msg.Result.Err != nil {
			logging.Warn(subsystem, "refresh of %s failed: %v", msg.Target, msg.Result.Err)
		}
		return nil

	case model.OpCreate:
		if !dialogAwaits(m, model.DialogCreate, "") {
			return nil
		}
		if msg.Result.Err != nil {
			m.FailSubmit(msg.Result.Err.Error())
			return nil
		}
		m.CloseDialog()
		return nil

	case model.OpDelete:
		if msg.Result.Err != nil {
			if dialogAwaits(m, model.DialogDelete, msg.Target) {
				m.FailSubmit(msg.Result.Err.Error())
				return nil
			}
			return m.SetStatusMessage(fmt.Sprintf("Delete of %s failed: %v", msg.Target, msg.Result.Err), model.StatusBarError, statusMessageDuration)
		}
		if dialogAwaits(m, model.DialogDelete, msg.Target) {
			m.CloseDialog()
		}
		return m.SetStatusMessage(fmt.Sprintf("Deleted %s", msg.Target), model.StatusBarSuccess, statusMessageDuration)
	}
	return nil
}

func handlePublishDone(m *model.Model, msg model.PublishDoneMsg) tea.Cmd {
	syncFromStore(m)
	awaiting := dialogAwaits(m, model.DialogPublish, msg.Target)

	if msg.Result.Err != nil {
		if awaiting {
			m.FailSubmit(msg.Result.Err.Error())
			return nil
		}
		return m.SetStatusMessage(fmt.Sprintf("Publish to %s failed: %v", msg.Target, msg.Result.Err), model.StatusBarError, statusMessageDuration)
	}

	status := m.SetStatusMessage(fmt.Sprintf("Published to %s", msg.Target), model.StatusBarSuccess, statusMessageDuration)
	if !awaiting {
		return status
	}
	if msg.ProfileErr != nil {
		m.FailSubmit(msg.ProfileErr.Error())
		return status
	}
	m.CloseDialog()
	return status
}

func handleUploadDone(m *model.Model, msg model.UploadDoneMsg) {
	m.Publish.Uploading = false
	if m.Dialog.Kind != model.DialogPublish || !m.Dialog.Open() {
		return
	}
	if msg.Err != nil {
		m.Dialog.Err = msg.Err.Error()
		return
	}
	file := msg.File
	m.Publish.Uploaded = &file
	m.Dialog.Err = ""
	logging.Info(subsystem, "uploaded %s", file.Name)
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) {
	entry := msg.Entry
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, entry.String())
	}
}

// forwardToFocusedInput passes non-key messages such as cursor blinks to the
// focused text input.
func forwardToFocusedInput(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.CurrentAppMode == model.ModeSearch:
		m.SearchInput, cmd = m.SearchInput.Update(msg)
	case m.CurrentAppMode == model.ModeDialog && m.Dialog.Kind == model.DialogCreate:
		m.Create.NameInput, cmd = m.Create.NameInput.Update(msg)
	case m.CurrentAppMode == model.ModeDialog && m.Dialog.Kind == model.DialogPublish:
		m.Publish.PathInput, cmd = m.Publish.PathInput.Update(msg)
	case m.CurrentAppMode == model.ModeLogOverlay:
		m.LogViewport, cmd = m.LogViewport.Update(msg)
	}
	return m, cmd
}
