package view

import (
	"fmt"

	"fnctl/internal/color"
	"fnctl/internal/store"
	"fnctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return color.StatusStyle.Render(m.QuittingMessage)
	}

	contentWidth := m.Width - color.AppStyle.GetHorizontalFrameSize()
	if contentWidth <= 0 {
		contentWidth = 80
	}

	var body string
	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		body = renderHelpOverlay(m, contentWidth)
	case model.ModeLogOverlay:
		body = renderLogOverlay(m, contentWidth)
	case model.ModeAccountSettings:
		body = renderAccountSettings(m)
	default:
		body = renderPanel(m, contentWidth)
	}

	sections := []string{renderHeader(m), body}
	if bar := renderStatusBar(m); bar != "" {
		sections = append(sections, bar)
	}
	return color.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderHeader(m *model.Model) string {
	title := color.TitleStyle.Render("Function Apps")
	project := color.SubtleStyle.Render("project " + displayProject(m.Project))
	header := title + "  " + project
	if m.State.Busy() || m.State.Status == store.StatusLoading {
		header += "  " + m.Spinner.View() + color.SubtleStyle.Render(busyLabel(m.State))
	}
	return header
}

func displayProject(p string) string {
	if p == "" {
		return "(none)"
	}
	return p
}

func busyLabel(s store.State) string {
	switch {
	case s.Creating:
		return "creating"
	case s.Deleting:
		return "deleting"
	case s.Publishing:
		return "publishing"
	default:
		return "loading"
	}
}

// renderPanel renders the function app panel with whatever dialog, menu or
// toast sits on top of it.
func renderPanel(m *model.Model, width int) string {
	parts := []string{}
	switch {
	case m.State.Status == store.StatusError:
		parts = append(parts, renderErrorBanner(m.State.FetchError, width))
	case m.State.Status != store.StatusLoaded && m.State.Len() == 0:
		parts = append(parts, color.StatusStyle.Render(m.Spinner.View()+" Loading function apps..."))
	default:
		if m.ToastVisible {
			parts = append(parts, renderToast())
		}
		parts = append(parts, renderSearch(m), renderList(m, width))
	}

	// An open dialog or menu still owns the keys, so it stays visible over
	// the banner and the spinner.
	switch m.CurrentAppMode {
	case model.ModeDialog:
		parts = append(parts, renderDialog(m))
	case model.ModeContextMenu:
		parts = append(parts, renderContextMenu(m))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderErrorBanner(err error, width int) string {
	msg := "Failed to load function apps."
	if err != nil {
		msg += "\n" + err.Error()
	}
	msg += "\n\nPress r to retry."
	w := width - color.ErrorBannerStyle.GetHorizontalFrameSize()
	if w < 20 {
		w = 20
	}
	return color.ErrorBannerStyle.Width(w).Render(msg)
}

func renderToast() string {
	return color.ToastStyle.Render(
		color.SuccessStyle.Render("Function app created. ") +
			color.SubtleStyle.Render("We'll notify you when provisioning finishes.  Manage notifications (N)  •  dismiss (x)"),
	)
}

func renderSearch(m *model.Model) string {
	if m.CurrentAppMode == model.ModeSearch {
		return m.SearchInput.View()
	}
	if q := m.SearchInput.Value(); q != "" {
		return color.SubtleStyle.Render(fmt.Sprintf("filter: %q  (/ to edit, esc in search to clear)", q))
	}
	return ""
}

func renderStatusBar(m *model.Model) string {
	if m.StatusBarMessage != "" {
		switch m.StatusBarMessageType {
		case model.StatusBarError:
			return color.StatusBarErrorStyle.Render(m.StatusBarMessage)
		case model.StatusBarSuccess:
			return color.SuccessStyle.Render(m.StatusBarMessage)
		default:
			return color.StatusBarStyle.Render(m.StatusBarMessage)
		}
	}
	return color.StatusBarStyle.Render(m.Help.ShortHelpView(m.Keys.ShortHelp()))
}
