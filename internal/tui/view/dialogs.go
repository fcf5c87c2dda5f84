package view

import (
	"fmt"
	"strings"

	"fnctl/internal/color"
	"fnctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderDialog(m *model.Model) string {
	var body string
	style := color.DialogStyle
	switch m.Dialog.Kind {
	case model.DialogCreate:
		body = renderCreateDialog(m)
	case model.DialogPublish:
		body = renderPublishDialog(m)
	case model.DialogDelete:
		body = renderDeleteDialog(m)
		style = color.DangerDialogStyle
	default:
		return ""
	}

	if m.Dialog.Err != "" {
		body += "\n\n" + color.ErrorStyle.Render(m.Dialog.Err)
	}
	if m.Dialog.Submitting() {
		body += "\n\n" + m.Spinner.View() + color.SubtleStyle.Render(" Working... (esc to close)")
	}
	return style.Render(body)
}

func field(label string, focused bool, value string) string {
	l := fmt.Sprintf("%-16s", label)
	if focused {
		return color.FocusedFieldStyle.Render("> "+l) + value
	}
	return "  " + l + value
}

func renderCreateDialog(m *model.Model) string {
	stack, _ := m.Catalog.Stack(m.Create.StackKey)
	version, _ := stack.Version(m.Create.VersionKey)

	lines := []string{
		color.TitleStyle.Render("Create function app"),
		"",
		field("Name", m.Create.Focus == model.FieldName, m.Create.NameInput.View()),
		field("Runtime stack", m.Create.Focus == model.FieldStack, "‹ "+stack.Text+" ›"),
		field("Version", m.Create.Focus == model.FieldVersion, "‹ "+version.Text+" ›"),
		"",
		color.SubtleStyle.Render("tab next field  •  ←/→ change option  •  enter create  •  esc cancel"),
	}
	return strings.Join(lines, "\n")
}

func renderPublishDialog(m *model.Model) string {
	upload := color.SubtleStyle.Render("no file uploaded")
	switch {
	case m.Publish.Uploading:
		upload = m.Spinner.View() + " uploading..."
	case m.Publish.Uploaded != nil:
		upload = color.SuccessStyle.Render("✓ " + m.Publish.Uploaded.Name)
	}

	lines := []string{
		color.TitleStyle.Render("Publish to " + m.Dialog.Target),
		"",
		field("Zip file", true, m.Publish.PathInput.View()),
		field("Upload", false, upload),
		"",
		color.SubtleStyle.Render("ctrl+u upload  •  enter publish  •  esc cancel"),
	}
	return strings.Join(lines, "\n")
}

func renderDeleteDialog(m *model.Model) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		color.ErrorStyle.Bold(true).Render("Delete function app"),
		"",
		fmt.Sprintf("Delete %s? This cannot be undone.", m.Dialog.Target),
		"",
		color.SubtleStyle.Render("y/enter delete  •  n/esc cancel"),
	)
}

func renderContextMenu(m *model.Model) string {
	lines := []string{color.TitleStyle.Render(m.MenuTarget), ""}
	for i, item := range model.MenuItems {
		if i == m.MenuCursor {
			lines = append(lines, color.SelectedRowStyle.Render("> "+item))
			continue
		}
		lines = append(lines, "  "+item)
	}
	return color.DialogStyle.Render(strings.Join(lines, "\n"))
}
