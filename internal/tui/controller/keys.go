package controller

import (
	"fmt"
	"strings"

	"fnctl/internal/tui/model"
	"fnctl/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func handleKeyMsg(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return quit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeSearch:
		return handleSearchKey(m, msg)
	case model.ModeDialog:
		return handleDialogKey(m, msg)
	case model.ModeContextMenu:
		return handleMenuKey(m, msg)
	case model.ModeHelpOverlay:
		if key.Matches(msg, m.Keys.Help, m.Keys.Esc) {
			m.CurrentAppMode = m.LastAppMode
		}
		return m, nil
	case model.ModeLogOverlay:
		return handleLogOverlayKey(m, msg)
	case model.ModeAccountSettings:
		if key.Matches(msg, m.Keys.Esc) {
			if m.Shell != nil {
				m.Shell.ToggleAccountSettings()
			}
			m.CurrentAppMode = model.ModeMain
		}
		return m, nil
	case model.ModeQuitting:
		return m, nil
	}
	return handleMainKey(m, msg)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Bye!"
	if m.Store != nil && m.StoreSub != nil {
		m.Store.Unsubscribe(m.StoreSub)
	}
	return m, tea.Quit
}

func handleMainKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	keys := m.Keys
	selected, hasSelection := m.SelectedApp()

	switch {
	case key.Matches(msg, keys.Quit):
		return quit(m)

	case key.Matches(msg, keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay

	case key.Matches(msg, keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()

	case key.Matches(msg, keys.CopyLogs):
		return m, copyLogs(m)

	case key.Matches(msg, keys.Up):
		m.MoveCursor(-1)

	case key.Matches(msg, keys.Down):
		m.MoveCursor(1)

	case key.Matches(msg, keys.ToggleRow):
		if hasSelection {
			m.ToggleRow(selected.Name)
		}

	case key.Matches(msg, keys.ExpandAll):
		m.SetAllExpanded(!m.AllExpanded)

	case key.Matches(msg, keys.Search):
		m.CurrentAppMode = model.ModeSearch
		return m, m.SearchInput.Focus()

	case key.Matches(msg, keys.Copy):
		if hasSelection {
			return m, copySiteURL(m, selected.Name, selected.SiteUrl)
		}

	case key.Matches(msg, keys.New):
		m.OpenDialog(model.DialogCreate, "")

	case key.Matches(msg, keys.Publish):
		if hasSelection {
			m.OpenDialog(model.DialogPublish, selected.Name)
		}

	case key.Matches(msg, keys.Delete):
		if hasSelection {
			m.OpenDialog(model.DialogDelete, selected.Name)
		}

	case key.Matches(msg, keys.Menu):
		if hasSelection {
			m.OpenMenu(selected.Name)
		}

	case key.Matches(msg, keys.Refresh):
		m.ToastVisible = false
		if m.Runner != nil {
			return m, model.FetchCmd(m.Runner, m.Project)
		}

	case key.Matches(msg, keys.DismissToast):
		m.ToastVisible = false

	case key.Matches(msg, keys.Notifications):
		if m.ToastVisible && m.Shell != nil {
			m.ToastVisible = false
			m.Shell.OpenNotificationSettings()
			m.CurrentAppMode = model.ModeAccountSettings
		}
	}
	return m, nil
}

func copySiteURL(m *model.Model, name, url string) tea.Cmd {
	if url == "" {
		return m.SetStatusMessage(fmt.Sprintf("%s has no URL yet", name), model.StatusBarInfo, statusMessageDuration)
	}
	if err := m.Clipboard(url); err != nil {
		logging.Error(subsystem, err, "copy of %s URL failed", name)
		return m.SetStatusMessage("Failed to copy URL: "+err.Error(), model.StatusBarError, statusMessageDuration)
	}
	gen := m.MarkCopied(name)
	return model.CopyExpiryCmd(name, gen, m.CopyDelay)
}

func copyLogs(m *model.Model) tea.Cmd {
	if err := m.Clipboard(strings.Join(m.ActivityLog, "\n")); err != nil {
		return m.SetStatusMessage("Failed to copy logs: "+err.Error(), model.StatusBarError, statusMessageDuration)
	}
	return m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, statusMessageDuration)
}

func handleSearchKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Esc):
		m.SearchInput.SetValue("")
		m.SearchInput.Blur()
		m.CurrentAppMode = model.ModeMain
		m.MoveCursor(0)
		return m, nil
	case msg.Type == tea.KeyEnter, msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
		m.SearchInput.Blur()
		m.CurrentAppMode = model.ModeMain
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	m.Cursor = 0
	m.MoveCursor(0)
	return m, cmd
}

func handleLogOverlayKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.ToggleLog, m.Keys.Esc):
		m.CurrentAppMode = m.LastAppMode
		return m, nil
	case key.Matches(msg, m.Keys.CopyLogs):
		return m, copyLogs(m)
	}
	var cmd tea.Cmd
	m.LogViewport, cmd = m.LogViewport.Update(msg)
	return m, cmd
}

func handleMenuKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Esc):
		m.CurrentAppMode = model.ModeMain
	case key.Matches(msg, m.Keys.Up):
		m.MoveMenu(-1)
	case key.Matches(msg, m.Keys.Down):
		m.MoveMenu(1)
	case key.Matches(msg, m.Keys.Enter):
		target := m.MenuTarget
		switch m.MenuCursor {
		case model.MenuEditDetails:
			m.OpenDialog(model.DialogPublish, target)
		case model.MenuEditSettings:
			logging.Info(subsystem, "settings requested for %s", target)
			m.CurrentAppMode = model.ModeMain
		case model.MenuDelete:
			m.OpenDialog(model.DialogDelete, target)
		}
	}
	return m, nil
}

func handleDialogKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if m.Dialog.Submitting() {
		if key.Matches(msg, m.Keys.Esc) {
			m.CloseDialog()
		}
		return m, nil
	}
	if key.Matches(msg, m.Keys.Esc) {
		m.CloseDialog()
		return m, nil
	}

	switch m.Dialog.Kind {
	case model.DialogCreate:
		return handleCreateKey(m, msg)
	case model.DialogPublish:
		return handlePublishKey(m, msg)
	case model.DialogDelete:
		return handleDeleteKey(m, msg)
	}
	return m, nil
}

func handleCreateKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab:
		m.FocusCreateField(1)
		return m, nil
	case tea.KeyShiftTab:
		m.FocusCreateField(-1)
		return m, nil
	case tea.KeyEnter:
		req, err := m.CreateRequest()
		if err != nil {
			m.FailSubmit(err.Error())
			return m, nil
		}
		if m.Runner == nil {
			m.FailSubmit("no backend configured")
			return m, nil
		}
		m.BeginSubmit()
		return m, model.CreateCmd(m.Runner, m.Project, req)
	case tea.KeyLeft, tea.KeyRight:
		delta := 1
		if msg.Type == tea.KeyLeft {
			delta = -1
		}
		switch m.Create.Focus {
		case model.FieldStack:
			m.SelectStack(delta)
			return m, nil
		case model.FieldVersion:
			m.CycleVersion(delta)
			return m, nil
		}
	}

	if m.Create.Focus != model.FieldName {
		return m, nil
	}
	var cmd tea.Cmd
	m.Create.NameInput, cmd = m.Create.NameInput.Update(msg)
	return m, cmd
}

func handlePublishKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Upload):
		path := m.UploadPath()
		switch {
		case m.Publish.Uploading:
			return m, nil
		case path == "":
			m.Dialog.Err = "Enter the path of a zip file to upload."
			return m, nil
		case m.Uploader == nil:
			m.Dialog.Err = "Uploads are not configured."
			return m, nil
		}
		m.Publish.Uploading = true
		m.Dialog.Err = ""
		return m, model.UploadCmd(m.Uploader, m.Project, path)

	case msg.Type == tea.KeyEnter:
		if m.Publish.Uploaded == nil {
			m.FailSubmit("Please upload a zip file before publishing.")
			return m, nil
		}
		if m.Runner == nil {
			m.FailSubmit("no backend configured")
			return m, nil
		}
		m.BeginSubmit()
		return m, model.PublishCmd(m.Runner, m.Project, m.Dialog.Target, *m.Publish.Uploaded, m.Profile)
	}

	before := m.Publish.PathInput.Value()
	var cmd tea.Cmd
	m.Publish.PathInput, cmd = m.Publish.PathInput.Update(msg)
	if m.Publish.PathInput.Value() != before {
		m.Publish.Uploaded = nil
	}
	return m, cmd
}

func handleDeleteKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		if m.Runner == nil {
			m.FailSubmit("no backend configured")
			return m, nil
		}
		m.BeginSubmit()
		return m, model.DeleteCmd(m.Runner, m.Project, m.Dialog.Target)
	case "n":
		m.CloseDialog()
	}
	return m, nil
}
