package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/churnlens/churnform/internal/predict"
)

// Printer writes styled output for the one-shot commands
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	p.width = width
	return p
}

// Width returns the width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintHeader prints a command banner with its parameters
func (p *Printer) PrintHeader(title string, params map[string]string) {
	p.Println(RenderHeader(title, params, p.width))
}

// PrintResult prints a prediction result inside a box colored by outcome
func (p *Printer) PrintResult(r predict.Result) {
	v := Describe(r)

	color := MutedColor
	switch {
	case v.Kind == ResultError:
		color = ChurnColor
	case v.Kind == ResultPrediction:
		color = BarColor(v.Badge)
	}

	// Inner width excludes border and padding
	content := RenderView(v, p.width-6)
	p.Println(BoxStyle(p.width, color).Render(content))
}

// PrintSuccess prints a success line with optional details
func (p *Printer) PrintSuccess(title string, details map[string]string) {
	lines := []string{
		lipgloss.NewStyle().Foreground(RetainColor).Bold(true).Render(SuccessMarker + "  " + title),
	}
	lines = append(lines, renderDetails(details)...)
	p.Println(BoxStyle(p.width, RetainColor).Render(strings.Join(lines, "\n")))
}

// PrintError prints a failure box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	lines := []string{
		ErrorMessageStyle.Bold(true).Render(FailureMarker + "  " + title),
	}
	if err != nil {
		lines = append(lines, ErrorMessageStyle.Render("Error: "+err.Error()))
	}
	if len(troubleshooting) > 0 {
		lines = append(lines, "", PlaceholderStyle.Render("Troubleshooting:"))
		for _, tip := range troubleshooting {
			lines = append(lines, "  "+BulletMarker+" "+tip)
		}
	}
	p.Println(BoxStyle(p.width, ChurnColor).Render(strings.Join(lines, "\n")))
}

// RenderHeader renders a command banner
func RenderHeader(title string, params map[string]string, width int) string {
	lines := []string{HeaderTitleStyle.Render(strings.ToUpper(title))}
	lines = append(lines, renderDetails(params)...)
	return BoxStyle(width, PrimaryColor).Render(strings.Join(lines, "\n"))
}

// renderDetails renders key/value pairs sorted by key
func renderDetails(details map[string]string) []string {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, HeaderParamKeyStyle.Render(k+":")+" "+details[k])
	}
	return lines
}
