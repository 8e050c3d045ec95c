package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	ChurnColor   = lipgloss.Color("#FF5555") // Red - churn label, errors
	RetainColor  = lipgloss.Color("#43BF6D") // Green - retained label, success
	MutedColor   = lipgloss.Color("#626262") // Gray - placeholders, secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	MinBarWidth      = 10
)

var (
	// SectionTitleStyle is for "Result", "Top Explanations"
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// PlaceholderStyle is for "No prediction yet" and similar
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true)

	// ErrorMessageStyle is for request failures
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ChurnColor)

	// ResultKeyStyle is for "Churn probability:", "Label:"
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(20)

	// ResultValueStyle is for result values
	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	// ChurnBadgeStyle marks a "Yes" label
	ChurnBadgeStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(ChurnColor).
			Bold(true).
			Padding(0, 1)

	// RetainBadgeStyle marks any other label
	RetainBadgeStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(RetainColor).
				Bold(true).
				Padding(0, 1)

	// FeatureStyle is for the feature name of an explanation entry
	FeatureStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// HeaderTitleStyle is for command banners
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for banner parameter keys (e.g., "Endpoint:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)
)

// Markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	BulletMarker  = "•"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// BoxStyle returns the bordered container used for command output
func BoxStyle(width int, color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(width-2).
		Padding(0, 1)
}

// BadgeStyle returns the style for a badge
func BadgeStyle(b Badge) lipgloss.Style {
	if b == BadgeChurn {
		return ChurnBadgeStyle
	}
	return RetainBadgeStyle
}

// BarColor returns the fill color of the probability bar for a badge
func BarColor(b Badge) lipgloss.Color {
	if b == BadgeChurn {
		return ChurnColor
	}
	return RetainColor
}
