package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/churnlens/churnform/internal/predict"
)

// RenderResult renders the result pane for r at the given width
func RenderResult(r predict.Result, width int) string {
	return RenderView(Describe(r), width)
}

// RenderView renders a ResultView
func RenderView(v ResultView, width int) string {
	switch v.Kind {
	case ResultError:
		return ErrorMessageStyle.Render(FailureMarker + " " + v.Message)
	case ResultPrediction:
		return renderPrediction(v, width)
	default:
		return PlaceholderStyle.Render(v.Message)
	}
}

func renderPrediction(v ResultView, width int) string {
	var lines []string

	lines = append(lines,
		ResultKeyStyle.Render("Churn probability:")+" "+ResultValueStyle.Render(v.Probability))
	lines = append(lines, renderBar(v, width))
	lines = append(lines,
		ResultKeyStyle.Render("Label:")+" "+BadgeStyle(v.Badge).Render(v.Label))
	lines = append(lines, "")

	lines = append(lines, SectionTitleStyle.Render("Top Explanations"))
	if len(v.Explanation) == 0 {
		lines = append(lines, PlaceholderStyle.Render(NoExplanationText))
	} else {
		for _, line := range v.Explanation {
			lines = append(lines, renderExplanationLine(line))
		}
	}

	return strings.Join(lines, "\n")
}

// renderBar draws the probability bar followed by its percentage
func renderBar(v ResultView, width int) string {
	barWidth := width - 8 // room for " 100%"
	if barWidth < MinBarWidth {
		barWidth = MinBarWidth
	}

	bar := progress.New(
		progress.WithSolidFill(string(BarColor(v.Badge))),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)

	return bar.ViewAs(float64(v.BarPercent)/100) + fmt.Sprintf(" %d%%", v.BarPercent)
}

func renderExplanationLine(line string) string {
	feature, value, ok := strings.Cut(line, ": ")
	if !ok {
		return "  " + BulletMarker + " " + line
	}
	return "  " + BulletMarker + " " + FeatureStyle.Render(feature) + ": " + value
}
