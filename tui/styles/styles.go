// Package styles provides Lipgloss styles for prompts and status lines.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	// Slate is used for borders and dim text
	Slate = lipgloss.Color("#5C6370")
	// Ink is the primary text colour
	Ink = lipgloss.Color("#ABB2BF")
	// Sky is the accent for titles, cursors and the spinner
	Sky = lipgloss.Color("#61AFEF")
	// Violet highlights focused buttons
	Violet = lipgloss.Color("#C678DD")
	// Amber is used for paths
	Amber = lipgloss.Color("#E5C07B")
	// Red is used for failures and validation errors
	Red = lipgloss.Color("#E06C75")
	// Green is used for success marks
	Green = lipgloss.Color("#98C379")
)

// Spinner styles the spinner glyph.
var Spinner = lipgloss.NewStyle().
	Foreground(Sky)

// SuccessMark styles the ✔ in front of a finished step.
var SuccessMark = lipgloss.NewStyle().
	Foreground(Green).
	Bold(true)

// FailMark styles the ✖ in front of a failed step.
var FailMark = lipgloss.NewStyle().
	Foreground(Red).
	Bold(true)

// Path styles file and directory names inside messages.
var Path = lipgloss.NewStyle().
	Foreground(Amber).
	Italic(true)

// SecondaryText styles counters and other less prominent text.
var SecondaryText = lipgloss.NewStyle().
	Foreground(Slate)
