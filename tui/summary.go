package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/vidtrim/trim"
	"github.com/user/vidtrim/tui/styles"
)

// SummaryWidth is the outer width of the box printed after a batch.
const SummaryWidth = 40

// RenderSummary renders a bordered box with a progress bar and the trim counts.
func RenderSummary(sum trim.Summary, width int) string {
	if sum.Total == 0 || width < 12 {
		return ""
	}

	greenStyle := lipgloss.NewStyle().Foreground(styles.Green)
	redStyle := lipgloss.NewStyle().Foreground(styles.Red)
	textStyle := lipgloss.NewStyle().Foreground(styles.Ink)

	// Border (2) and padding (2)
	innerW := width - 4

	pct := sum.Succeeded * 100 / sum.Total

	// Bar leaves room for " XXX%"
	barWidth := innerW - 5
	filled := barWidth * sum.Succeeded / sum.Total
	bar := greenStyle.Render(strings.Repeat("█", filled)) +
		redStyle.Render(strings.Repeat("░", barWidth-filled))

	counter := fmt.Sprintf("%d/%d trimmed", sum.Succeeded, sum.Total)
	if sum.Failed > 0 {
		counter += "  " + redStyle.Render(fmt.Sprintf("%d failed", sum.Failed))
	}

	lines := []string{
		bar + textStyle.Render(fmt.Sprintf(" %3d%%", pct)),
		styles.SecondaryText.Render(counter),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Slate).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}
