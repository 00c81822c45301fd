// Package output provides styled terminal rendering helpers for trackrecord.
package output

import "github.com/charmbracelet/lipgloss"

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for growth indicators and high scores.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for regressions and neglected areas.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for caution indicators.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleSuccess is used for positive values.
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleError is used for negative values.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleWarning is used for cautionary values.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().
			Bold(true)

	// StyleLabel is used for metric labels in the overview block.
	StyleLabel = lipgloss.NewStyle().
			Width(24)

	// StyleValue is used for metric values in the overview block.
	StyleValue = lipgloss.NewStyle().
			Bold(true).
			Width(12)
)

// LevelStyle maps a tier, momentum, or trend label to its display style.
// Green for high and upward labels, red for low and declining ones;
// middling labels render yellow.
func LevelStyle(level string) lipgloss.Style {
	switch level {
	case "high", "accelerating", "growing", "increasing", "improved":
		return StyleSuccess
	case "medium", "steady", "stable", "unchanged":
		return StyleWarning
	case "low", "declining", "decreasing", "needs-attention", "regressed":
		return StyleError
	default:
		return StyleMuted
	}
}

// PriorityStyle maps a suggestion priority to its display style. Unlike
// LevelStyle, a high priority is urgent rather than good.
func PriorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "high":
		return StyleError
	case "medium":
		return StyleWarning
	default:
		return StyleMuted
	}
}

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally. Disabling swaps the
// package-level styles for unstyled renderers; enabling restores them.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleSuccess = plain
		StyleError = plain
		StyleWarning = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(24)
		StyleValue = plain.Width(12)
		return
	}
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleLabel = lipgloss.NewStyle().Width(24)
	StyleValue = lipgloss.NewStyle().Bold(true).Width(12)
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}
