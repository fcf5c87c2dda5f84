// Package output renders function apps and runtimes for the CLI commands.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"fnctl/internal/functionapp"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Format represents the output format for CLI commands
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Printer writes command results in one format.
type Printer struct {
	Format   Format
	Out      io.Writer
	Location *time.Location
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(format Format, out io.Writer, loc *time.Location) *Printer {
	if loc == nil {
		loc = time.Local
	}
	return &Printer{Format: format, Out: out, Location: loc}
}

// Apps prints a function app list.
func (p *Printer) Apps(apps []functionapp.FunctionApp) error {
	switch p.Format {
	case FormatJSON, FormatYAML:
		return p.structured(apps)
	}

	if len(apps) == 0 {
		fmt.Fprintln(p.Out, text.FgYellow.Sprint("No function apps found"))
		return nil
	}

	t := p.newTable()
	t.AppendHeader(header("Name", "Runtime", "Version", "Status", "Created", "Publishes", "URL"))
	for _, app := range apps {
		t.AppendRow(table.Row{
			app.Name,
			app.RuntimeStack,
			dash(app.RuntimeVersion),
			formatStatus(app.AzureAppStatus),
			functionapp.FormatCreated(app.Created, p.Location),
			len(app.Publishes),
			dash(app.SiteUrl),
		})
	}
	t.Render()
	fmt.Fprintf(p.Out, "\n%s %d\n", text.FgHiBlue.Sprint("Total:"), len(apps))
	return nil
}

// App prints one function app with its publish history.
func (p *Printer) App(app functionapp.FunctionApp) error {
	switch p.Format {
	case FormatJSON, FormatYAML:
		return p.structured(app)
	}

	t := p.newTable()
	t.AppendHeader(header("Property", "Value"))
	t.AppendRows([]table.Row{
		{"Name", app.Name},
		{"Project", dash(app.ProjectName)},
		{"URL", dash(app.SiteUrl)},
		{"Runtime", strings.TrimSpace(app.RuntimeStack + " " + app.RuntimeVersion)},
		{"Status", formatStatus(app.AzureAppStatus)},
		{"Created", functionapp.FormatCreated(app.Created, p.Location)},
	})
	t.Render()

	if len(app.Publishes) == 0 {
		return nil
	}
	fmt.Fprintln(p.Out)
	pt := p.newTable()
	pt.AppendHeader(header("Publish", "Status", "Zip"))
	for _, rec := range app.Publishes {
		pt.AppendRow(table.Row{rec.Name, formatStatus(rec.AzureDeployStatus), dash(rec.ZipFilename)})
	}
	pt.Render()
	return nil
}

// Runtimes prints the runtime catalog.
func (p *Printer) Runtimes(c functionapp.Catalog) error {
	switch p.Format {
	case FormatJSON, FormatYAML:
		return p.structured(c)
	}

	t := p.newTable()
	t.AppendHeader(header("Stack", "Version", "Description", "Backend"))
	for _, s := range c {
		for i, v := range s.Versions {
			stack := ""
			if i == 0 {
				stack = s.Text
				if s.Disabled {
					stack += text.FgHiBlack.Sprint(" (disabled)")
				}
			}
			t.AppendRow(table.Row{stack, s.Key + "/" + v.Key, v.Text, strings.TrimSpace(v.Stack + " " + v.Version)})
		}
		t.AppendSeparator()
	}
	t.Render()
	return nil
}

// Message prints a one-line success message. Structured formats get an
// object so scripts can parse every command's output.
func (p *Printer) Message(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	switch p.Format {
	case FormatJSON, FormatYAML:
		return p.structured(map[string]string{"message": msg})
	}
	_, err := fmt.Fprintln(p.Out, text.FgGreen.Sprint("✓ ")+msg)
	return err
}

func (p *Printer) structured(v interface{}) error {
	if p.Format == FormatYAML {
		enc := yaml.NewEncoder(p.Out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.SetStyle(table.StyleRounded)
	return t
}

func header(cols ...string) table.Row {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = text.FgHiCyan.Sprint(strings.ToUpper(c))
	}
	return row
}

// formatStatus adds color coding to app and deploy statuses.
func formatStatus(status string) string {
	switch strings.ToLower(status) {
	case "":
		return text.FgHiBlack.Sprint("-")
	case "running", "succeeded", "success", "deployed":
		return text.FgGreen.Sprint(status)
	case "failed", "error", "deleted":
		return text.FgRed.Sprint(status)
	case "new", "pending", "deploying", "provisioning":
		return text.FgYellow.Sprint(status)
	default:
		return status
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
