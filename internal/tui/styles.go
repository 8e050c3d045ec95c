package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/churnlens/churnform/internal/ui"
	"github.com/churnlens/churnform/internal/version"
)

// Application branding constants
const (
	AppName    = "CHURNFORM"
	AppTagline = "customer churn prediction"
)

// Layout constants
const (
	DefaultWidth  = 80 // Used until the first WindowSizeMsg arrives
	DefaultHeight = 24

	// SplitWidth is the terminal width from which the result pane sits
	// beside the form instead of below it
	SplitWidth = 110

	LabelWidth = 18
	InputWidth = 40
)

// Colors come from the shared renderer palette
var (
	PrimaryColor   = ui.PrimaryColor
	HighlightColor = ui.RetainColor
	ErrorColor     = ui.ChurnColor
	SubtleColor    = ui.MutedColor
	TextColor      = ui.TextColor
	BorderColor    = ui.PrimaryColor
)

var (
	// SectionStyle is for "Personal Info", "Services", "Billing"
	SectionStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// LabelStyle is for unfocused field labels
	LabelStyle = lipgloss.NewStyle().
			Width(LabelWidth).
			Foreground(SubtleColor)

	// FocusedLabelStyle is for the field under the cursor
	FocusedLabelStyle = LabelStyle.
				Foreground(HighlightColor).
				Bold(true)

	// ValueStyle is for unfocused values
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// FocusedValueStyle is for the value under the cursor
	FocusedValueStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	// InvalidStyle marks text input that is not a number
	InvalidStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SpinnerStyle is for the in-flight spinner
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// PaneStyle frames the result pane
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
)

// BuildHeaderContent creates header content with app name and version
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + version.Version)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(AppTagline)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderApplicationContainer wraps screen content in the full-screen frame:
// header on top, help footer pinned to the bottom, outer border around both.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(0, 1)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(lipgloss.NewStyle().Foreground(SubtleColor).Render(footerText)),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}
