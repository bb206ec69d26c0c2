// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (deep ocean blue).
	PrimaryColor = lipgloss.Color("#3B82F6")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings or degraded results.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtitleStyle is used for secondary headings.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)
)

// Title renders a section title.
func Title(text string) string {
	return TitleStyle.Render(text)
}

// KeyValue renders an aligned "key: value" line.
func KeyValue(key string, value any) string {
	return fmt.Sprintf("%s %v", SubtleStyle.Render(key+":"), value)
}

// Rating renders a numeric rating with stars.
func Rating(rating float64) string {
	full := int(rating + 0.5)
	if full > 5 {
		full = 5
	}
	stars := strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
	return fmt.Sprintf("%s %.1f", WarningStyle.Render(stars), rating)
}

// FilterSummary renders the active-filter banner shown above result lists.
func FilterSummary(results, active int) string {
	if active == 0 {
		return SubtleStyle.Render(fmt.Sprintf("%d results, no filters", results))
	}
	return SubtleStyle.Render(fmt.Sprintf("%d results, %d active filters", results, active))
}
