package color

import "github.com/charmbracelet/lipgloss"

// Initialize sets the background mode used to pick adaptive colors.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// Palette
var (
	Primary = lipgloss.AdaptiveColor{Light: "#0F6CBD", Dark: "#479EF5"}
	Success = lipgloss.AdaptiveColor{Light: "#05A167", Dark: "#05D176"}
	Error   = lipgloss.AdaptiveColor{Light: "#C4314B", Dark: "#F97171"}
	Warning = lipgloss.AdaptiveColor{Light: "#C17A00", Dark: "#F9C171"}
	Info    = lipgloss.AdaptiveColor{Light: "#5A9FE0", Dark: "#71B7F9"}
	Subtle  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	Border  = lipgloss.AdaptiveColor{Light: "#D1D1D1", Dark: "#3C3C3C"}
	Text    = lipgloss.AdaptiveColor{Light: "#242424", Dark: "#E6E6E6"}
)

// Styles
var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(Primary)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Border)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	SubtleStyle  = lipgloss.NewStyle().Foreground(Subtle)
	StatusStyle  = lipgloss.NewStyle().Foreground(Info).Padding(1, 2)

	SelectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	DetailStyle      = lipgloss.NewStyle().Foreground(Subtle).PaddingLeft(4)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	DangerDialogStyle = DialogStyle.BorderForeground(Error)
	FocusedFieldStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Success).
			Padding(0, 1)

	ErrorBannerStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(Error).
			Foreground(Error).
			Padding(1, 2)

	StatusBarStyle      = lipgloss.NewStyle().Foreground(Subtle)
	StatusBarErrorStyle = lipgloss.NewStyle().Foreground(Error).Bold(true)
)
