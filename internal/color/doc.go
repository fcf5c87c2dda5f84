// Package color provides the lipgloss palette and shared styles for the fnctl
// terminal UI.
//
// Colors are adaptive: lipgloss picks the light or dark variant based on the
// detected terminal background, and degrades to the terminal's color profile
// (TrueColor, 256, 16 or none). Initialize forces the background mode when the
// user chooses a theme explicitly.
//
// # Usage Example
//
//	color.Initialize(true)
//	fmt.Println(color.SuccessStyle.Render("✓ Published"))
//	fmt.Println(color.ErrorStyle.Render("✗ Create failed"))
//
// NO_COLOR is honored through lipgloss' terminal detection.
package color
