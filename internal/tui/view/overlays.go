package view

import (
	"strings"

	"fnctl/internal/color"
	"fnctl/internal/shell"
	"fnctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderHelpOverlay(m *model.Model, width int) string {
	h := m.Help
	h.ShowAll = true
	h.Width = width
	title := color.TitleStyle.Render("KEYBOARD SHORTCUTS")
	return color.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", h.View(m.Keys)))
}

func renderLogOverlay(m *model.Model, width int) string {
	title := color.TitleStyle.Render("Activity Log  (↑/↓ scroll  •  y copy  •  esc close)")
	return color.DialogStyle.
		Width(width - color.DialogStyle.GetHorizontalFrameSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View()))
}

func renderAccountSettings(m *model.Model) string {
	selected := shell.MenuProfile
	if m.Shell != nil {
		selected = m.Shell.Snapshot().SelectedMenu
	}

	pages := []struct{ key, label string }{
		{shell.MenuProfile, "Profile"},
		{shell.MenuNotifications, "Notifications"},
	}
	lines := []string{color.TitleStyle.Render("Account settings"), ""}
	for _, p := range pages {
		if p.key == selected {
			lines = append(lines, color.SelectedRowStyle.Render("> "+p.label))
			continue
		}
		lines = append(lines, "  "+p.label)
	}
	if selected == shell.MenuProfile && m.Profile.ID != "" {
		lines = append(lines, "", color.SubtleStyle.Render(strings.TrimSpace(m.Profile.Name+" "+m.Profile.Surname)+"  "+m.Profile.Email))
	}
	lines = append(lines, "", color.SubtleStyle.Render("esc close"))
	return color.DialogStyle.Render(strings.Join(lines, "\n"))
}
