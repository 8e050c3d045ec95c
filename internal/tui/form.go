package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/churnlens/churnform/internal/predict"
	"github.com/churnlens/churnform/internal/profile"
	"github.com/churnlens/churnform/internal/session"
	"github.com/churnlens/churnform/internal/ui"
)

// predictionMsg carries the completion of one submission
type predictionMsg struct {
	ticket session.Ticket
	result predict.Result
}

// formKeyMap defines key bindings for the form screen
type formKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Submit key.Binding
	Help   key.Binding
	Quit   key.Binding
	Force  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Submit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Submit, k.Help, k.Quit, k.Force},
	}
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("↑/shift+tab", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓/tab", "down"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous option"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next option"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter", "predict"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Force: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// FormModel is the interactive churn form: one row per profile field plus
// the endpoint row, and the result pane.
type FormModel struct {
	store      *profile.Store
	controller *session.Controller

	fields []profile.Field
	// Cursor is the focused row: 0..len(fields)-1 are profile fields,
	// len(fields) is the endpoint
	Cursor int

	// inputs holds the text editors of unbounded fields and the endpoint,
	// indexed by row; other rows have a zero value
	inputs  []textinput.Model
	invalid []bool

	Spinner spinner.Model
	Help    help.Model
	Keys    formKeyMap

	Width  int
	Height int
}

// NewFormModel creates the form over store, submitting through controller
func NewFormModel(store *profile.Store, controller *session.Controller) FormModel {
	fields := profile.Fields()
	rows := len(fields) + 1

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	m := FormModel{
		store:      store,
		controller: controller,
		fields:     fields,
		inputs:     make([]textinput.Model, rows),
		invalid:    make([]bool, rows),
		Spinner:    s,
		Help:       help.New(),
		Keys:       newFormKeyMap(),
		Width:      DefaultWidth,
		Height:     DefaultHeight,
	}

	current := store.Profile()
	for i, f := range fields {
		if f.Kind != profile.KindUnbounded {
			continue
		}
		in := textinput.New()
		in.CharLimit = 32
		in.Width = InputWidth
		in.Prompt = ""
		if v, ok := current.Get(f.Name); ok {
			in.SetValue(f.Format(v))
		}
		m.inputs[i] = in
	}

	endpoint := textinput.New()
	endpoint.Placeholder = "http://localhost:8000"
	endpoint.CharLimit = 2048
	endpoint.Width = InputWidth
	endpoint.Prompt = ""
	endpoint.SetValue(store.Endpoint())
	m.inputs[m.endpointRow()] = endpoint

	return m
}

// Init initializes the form
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case predictionMsg:
		m.controller.Finish(msg.ticket, msg.result)
		return m, nil

	case spinner.TickMsg:
		if !m.controller.InFlight() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.isTextRow(m.Cursor) {
		return m.updateInput(msg)
	}
	return m, nil
}

// updateKeys routes key presses. Printable keys go to the focused text
// input, so q and ? only act on option rows.
func (m FormModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Force):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Submit):
		return m.submit()

	case key.Matches(msg, m.Keys.Up):
		return m.moveTo(m.Cursor - 1)

	case key.Matches(msg, m.Keys.Down):
		return m.moveTo(m.Cursor + 1)
	}

	if m.isTextRow(m.Cursor) {
		return m.updateInput(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll

	case key.Matches(msg, m.Keys.Next):
		m.stepField(1)

	case key.Matches(msg, m.Keys.Prev):
		m.stepField(-1)
	}

	return m, nil
}

// moveTo focuses row, wrapping around at both ends
func (m FormModel) moveTo(row int) (tea.Model, tea.Cmd) {
	rows := len(m.inputs)
	row = (row%rows + rows) % rows

	if m.isTextRow(m.Cursor) {
		m.inputs[m.Cursor].Blur()
	}
	m.Cursor = row

	var cmd tea.Cmd
	if m.isTextRow(row) {
		cmd = m.inputs[row].Focus()
	}
	return m, cmd
}

// stepField cycles the option or steps the value of the focused field
func (m *FormModel) stepField(delta int) {
	if m.Cursor >= len(m.fields) {
		return
	}
	f := m.fields[m.Cursor]
	current, _ := m.store.Profile().Get(f.Name)

	next := f.Next(current)
	if delta < 0 {
		next = f.Prev(current)
	}
	m.store.SetField(f.Name, next)
}

// updateInput forwards msg to the focused text input and stores the result
func (m FormModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	row := m.Cursor
	before := m.inputs[row].Value()

	var cmd tea.Cmd
	m.inputs[row], cmd = m.inputs[row].Update(msg)

	raw := m.inputs[row].Value()
	if raw == before {
		return m, cmd
	}

	if row == m.endpointRow() {
		m.store.SetEndpoint(raw)
		return m, cmd
	}

	f := m.fields[row]
	if strings.TrimSpace(raw) == "" {
		m.store.SetField(f.Name, 0.0)
		m.invalid[row] = false
		return m, cmd
	}

	v, err := f.Parse(strings.TrimSpace(raw))
	if fv, ok := v.(float64); ok && (math.IsNaN(fv) || math.IsInf(fv, 0)) {
		err = fmt.Errorf("%s is not a finite number", raw)
	}
	if err != nil {
		// Keep the last valid value until the input parses again
		m.invalid[row] = true
		return m, cmd
	}
	m.store.SetField(f.Name, v)
	m.invalid[row] = false
	return m, cmd
}

// submit starts a prediction for the current profile and endpoint.
// Submitting while a request is in flight starts another one; only the
// latest submission's result is kept.
func (m FormModel) submit() (tea.Model, tea.Cmd) {
	wasInFlight := m.controller.InFlight()
	ticket := m.controller.Begin()

	cmd := predictCmd(m.controller, ticket, m.store.Profile(), m.store.Endpoint())
	if wasInFlight {
		// Spinner is already ticking
		return m, cmd
	}
	return m, tea.Batch(m.Spinner.Tick, cmd)
}

// predictCmd runs the request for ticket off the update loop
func predictCmd(c *session.Controller, t session.Ticket, p profile.Profile, endpoint string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = predictionMsg{
					ticket: t,
					result: &predict.Failure{Message: fmt.Sprintf("submission aborted: %v", r)},
				}
			}
		}()
		return predictionMsg{ticket: t, result: c.Request(context.Background(), t, p, endpoint)}
	}
}

func (m FormModel) endpointRow() int {
	return len(m.fields)
}

func (m FormModel) isTextRow(row int) bool {
	if row == m.endpointRow() {
		return true
	}
	return row >= 0 && row < len(m.fields) && m.fields[row].Kind == profile.KindUnbounded
}

// View renders the form
func (m FormModel) View() string {
	width := m.Width
	if width < ui.MinTerminalWidth {
		width = ui.MinTerminalWidth
	}
	inner := width - 6

	form := m.renderForm()

	var content string
	if width >= SplitWidth {
		formWidth := lipgloss.Width(form) + 4
		pane := m.renderResultPane(inner - formWidth)
		content = lipgloss.JoinHorizontal(lipgloss.Top, form, "    ", pane)
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left, form, "", m.renderResultPane(inner))
	}

	return RenderApplicationContainer(content, m.Help.View(m.Keys), width, m.Height)
}

// renderForm renders the endpoint row and the field sections
func (m FormModel) renderForm() string {
	lines := []string{m.renderRow(m.endpointRow(), "Endpoint", m.inputs[m.endpointRow()].Value()), ""}

	current := m.store.Profile()
	for _, section := range profile.Sections() {
		lines = append(lines, SectionStyle.Render(string(section)))
		for i, f := range m.fields {
			if f.Section != section {
				continue
			}
			v, _ := current.Get(f.Name)
			value := f.Format(v)
			if m.isTextRow(i) {
				value = m.inputs[i].Value()
			}
			lines = append(lines, m.renderRow(i, f.Label, value))
		}
		lines = append(lines, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderRow renders one field line:
//
//	→ Label             value ◀▶
func (m FormModel) renderRow(row int, label, value string) string {
	focused := m.Cursor == row

	arrow := "  "
	labelStyle, valueStyle := LabelStyle, ValueStyle
	if focused {
		arrow = "→ "
		labelStyle, valueStyle = FocusedLabelStyle, FocusedValueStyle
	}

	rendered := valueStyle.Render(value)
	switch {
	case focused && m.isTextRow(row):
		rendered = m.inputs[row].View()
	case focused:
		rendered += valueStyle.Render(" ◀▶")
	}
	if m.invalid[row] {
		rendered += InvalidStyle.Render("  " + ui.FailureMarker + " not a number")
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, arrow, labelStyle.Render(label), rendered)
}

// renderResultPane renders the spinner while a request is in flight, the
// last result otherwise
func (m FormModel) renderResultPane(width int) string {
	if width < ui.MinBarWidth+10 {
		width = ui.MinBarWidth + 10
	}

	var body string
	if m.controller.InFlight() {
		body = m.Spinner.View() + " Predicting..."
	} else {
		body = ui.RenderResult(m.controller.Result(), width-4)
	}

	title := ui.SectionTitleStyle.Render("Result")
	return PaneStyle.Width(width - 2).Render(title + "\n\n" + body)
}
