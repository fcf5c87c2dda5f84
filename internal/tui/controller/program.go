package controller

import (
	"context"

	"fnctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the function app panel. The
// program stops when ctx is cancelled.
func NewProgram(ctx context.Context, cfg model.TUIConfig) *tea.Program {
	m := model.InitializeModel(cfg)
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen(), tea.WithContext(ctx))
}
