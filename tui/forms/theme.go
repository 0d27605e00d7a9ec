package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/vidtrim/tui/styles"
)

// Theme returns a huh theme built on the shared palette.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Violet).
		PaddingLeft(1)

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Sky).
		Bold(true)

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Slate)

	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Red).
		SetString(" *")

	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Red)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		SetString("> ").
		Foreground(styles.Sky)

	t.Focused.Option = lipgloss.NewStyle().
		Foreground(styles.Ink)

	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Sky)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Sky)

	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Slate)

	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Sky)

	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Ink)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Background(styles.Violet).
		Foreground(styles.Ink).
		Bold(true).
		Padding(0, 1)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(styles.Slate).
		Padding(0, 1)

	// Answered fields stay visible but dimmed
	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.
		BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Slate)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		SetString("  ")

	return t
}
