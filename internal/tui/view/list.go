package view

import (
	"fmt"
	"strings"

	"fnctl/internal/color"
	"fnctl/internal/functionapp"
	"fnctl/internal/tui/model"

	"github.com/mattn/go-runewidth"
)

const (
	emptyStateText = "No function apps yet. Press n to create one."
	noMatchesText  = "No matches"
	copiedText     = "✓ copied"
)

// TruncateURL shortens url to model.URLDisplayWidth display cells.
func TruncateURL(url string) string {
	return runewidth.Truncate(url, model.URLDisplayWidth, "...")
}

func renderList(m *model.Model, width int) string {
	if m.State.Len() == 0 {
		return color.SubtleStyle.Render(emptyStateText)
	}
	apps := m.VisibleApps()
	if len(apps) == 0 {
		return color.SubtleStyle.Render(noMatchesText)
	}

	header := color.HeaderStyle.Render(fmt.Sprintf("  %-24s %-22s %-12s %-18s %s", "NAME", "RUNTIME", "STATUS", "CREATED", "URL"))
	lines := []string{header}
	for i, app := range apps {
		lines = append(lines, renderRow(m, app, i == m.Cursor))
		if m.IsExpanded(app.Name) {
			lines = append(lines, renderDetails(m, app))
		}
	}
	return strings.Join(lines, "\n")
}

func renderRow(m *model.Model, app functionapp.FunctionApp, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	url := TruncateURL(app.SiteUrl)
	if m.Copied[app.Name] {
		url += " " + color.SuccessStyle.Render(copiedText)
	}
	row := fmt.Sprintf("%s%-24s %-22s %-12s %-18s %s",
		cursor,
		runewidth.Truncate(app.Name, 24, "..."),
		runtimeLabel(app),
		displayStatus(app.AzureAppStatus),
		functionapp.FormatCreated(app.Created, m.Location),
		url,
	)
	if selected {
		return color.SelectedRowStyle.Render(row)
	}
	return row
}

func runtimeLabel(app functionapp.FunctionApp) string {
	return strings.TrimSpace(app.RuntimeStack + " " + app.RuntimeVersion)
}

func displayStatus(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func renderDetails(m *model.Model, app functionapp.FunctionApp) string {
	lines := []string{
		"URL:      " + app.SiteUrl,
		fmt.Sprintf("Insights: %t", app.ApplicationInsights),
	}
	if len(app.Publishes) == 0 {
		lines = append(lines, "Deployments: none")
	} else {
		lines = append(lines, "Deployments:")
		for _, p := range app.Publishes {
			lines = append(lines, fmt.Sprintf("  %-18s %s", p.Name, displayStatus(p.AzureDeployStatus)))
		}
	}
	return color.DetailStyle.Render(strings.Join(lines, "\n"))
}
