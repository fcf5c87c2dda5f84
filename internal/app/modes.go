package app

import (
	"context"

	"fnctl/internal/color"
	"fnctl/internal/mcptools"
	"fnctl/internal/tui/controller"
	"fnctl/internal/tui/model"
	"fnctl/pkg/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/mark3labs/mcp-go/server"
)

// RunTUI runs the interactive function app panel until the user quits.
func (a *Application) RunTUI(ctx context.Context) error {
	logging.Info("CLI", "Starting TUI mode...")

	color.Initialize(lipgloss.HasDarkBackground())

	// Switch logging to channel-based system for TUI integration
	logLevel := logging.LevelInfo
	if a.config.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	fc := a.config.FnctlConfig
	s := a.services
	p := controller.NewProgram(ctx, model.TUIConfig{
		DebugMode:  a.config.Debug,
		Project:    fc.Project,
		Profile:    fc.Profile,
		Catalog:    s.Catalog,
		Location:   s.Location,
		CopyDelay:  fc.Display.CopiedIndicator,
		Runner:     s.Operations,
		Store:      s.Store,
		Shell:      s.Shell,
		Uploader:   s.Uploader,
		LogChannel: logChan,
	})

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}

// NewMCPServer builds the MCP server exposing the function app tools.
func (a *Application) NewMCPServer(version string) *server.MCPServer {
	s := a.services
	tools := mcptools.NewFunctionAppTools(s.Operations, s.Store, s.Uploader, s.Catalog, a.config.FnctlConfig.Project)
	return mcptools.NewServer(version, tools)
}

// ServeMCP serves the function app tools over stdio until stdin closes.
func (a *Application) ServeMCP(version string) error {
	logging.Info("MCP", "Serving function app tools over stdio")
	return server.ServeStdio(a.NewMCPServer(version))
}
