// Package ui is the interactive front end: three input fields, per-field
// error labels, a plot action and the canvas. All validation outcomes come
// from the validate package as plain data; this package only decides how to
// render them.
package ui

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/funvibe/funplot/internal/canvas"
	"github.com/funvibe/funplot/internal/config"
	"github.com/funvibe/funplot/internal/mask"
	"github.com/funvibe/funplot/internal/pipeline"
	"github.com/funvibe/funplot/internal/validate"
)

// Focusable controls, in tab order.
const (
	focusFunction = iota
	focusMin
	focusMax
	focusButton
	focusCount
)

var errMasked = errors.New("character not allowed in a numeric bound")

type styles struct {
	label    lipgloss.Style
	fieldErr lipgloss.Style
	button   lipgloss.Style
	buttonOn lipgloss.Style
	toolbar  lipgloss.Style
	disabled lipgloss.Style
}

func newStyles(theme config.Theme) styles {
	return styles{
		label:    lipgloss.NewStyle().Bold(true),
		fieldErr: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorColor)),
		button:   lipgloss.NewStyle().Padding(0, 3).Border(lipgloss.RoundedBorder()),
		buttonOn: lipgloss.NewStyle().Padding(0, 3).Border(lipgloss.RoundedBorder()).
			Foreground(lipgloss.Color(theme.AccentColor)).Bold(true),
		toolbar:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.AccentColor)),
		disabled: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.LabelColor)),
	}
}

type Model struct {
	function textinput.Model
	minX     textinput.Model
	maxX     textinput.Model

	funcErr string
	minErr  string
	maxErr  string

	focus  int
	canvas *canvas.Canvas
	styles styles
	logger *slog.Logger
}

func NewModel(theme config.Theme, logger *slog.Logger) Model {
	function := textinput.New()
	function.Placeholder = "x^2+2"
	function.Width = 40
	function.Focus()

	boundValidate := func(s string) error {
		if !mask.Admissible(s) {
			return errMasked
		}
		return nil
	}

	minX := textinput.New()
	minX.Placeholder = "-10"
	minX.Width = 20
	minX.Validate = boundValidate

	maxX := textinput.New()
	maxX.Placeholder = "10"
	maxX.Width = 20
	maxX.Validate = boundValidate

	return Model{
		function: function,
		minX:     minX,
		maxX:     maxX,
		canvas:   canvas.New(theme),
		styles:   newStyles(theme),
		logger:   logger,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Pasting into a bound field filters character by character, the
		// same as typing: "1.2.3" degrades to "1.23" instead of the whole
		// paste being rejected by the field's validator.
		if msg.Paste && (m.focus == focusMin || m.focus == focusMax) {
			field := &m.minX
			if m.focus == focusMax {
				field = &m.maxX
			}
			field.SetValue(mask.Filter(field.Value(), string(msg.Runes)))
			field.CursorEnd()
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil
		case tea.KeyEnter:
			m.plot()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusFunction:
		m.function, cmd = m.function.Update(msg)
	case focusMin:
		m.minX, cmd = m.minX.Update(msg)
	case focusMax:
		m.maxX, cmd = m.maxX.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	for i, ti := range []*textinput.Model{&m.function, &m.minX, &m.maxX} {
		if i == focus {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
}

// plot runs one synchronous validate-and-plot cycle. The canvas is always
// cleared first, so a failed validation leaves it empty rather than showing
// the previous curve next to fresh error labels.
func (m *Model) plot() {
	m.canvas.Clear()

	ctx := pipeline.NewPlotContext(m.function.Value(), m.minX.Value(), m.maxX.Value())
	set, report := validate.Process(ctx)

	m.funcErr = report.Function
	m.minErr = report.Min
	m.maxErr = report.Max

	m.logger.Debug("plot request",
		"id", ctx.ID,
		"function", ctx.FunctionText,
		"min", ctx.MinText,
		"max", ctx.MaxText,
		"ok", report.OK(),
	)

	if set != nil {
		m.canvas.Draw(set.X, set.Y, set.Title())
	}
}

func (m Model) View() string {
	var b []string

	b = append(b,
		m.styles.label.Render("Function f(x):"),
		m.function.View(),
		m.styles.fieldErr.Render(m.funcErr),
		m.styles.label.Render("Minimum x value:"),
		m.minX.View(),
		m.styles.fieldErr.Render(m.minErr),
		m.styles.label.Render("Maximum x value:"),
		m.maxX.View(),
		m.styles.fieldErr.Render(m.maxErr),
	)

	if m.focus == focusButton {
		b = append(b, m.styles.buttonOn.Render("Plot"))
	} else {
		b = append(b, m.styles.button.Render("Plot"))
	}

	if view := m.canvas.View(); view != "" {
		b = append(b, "", view)
	}

	// The toolbar line is always present but stays dimmed until a curve
	// is on screen.
	toolbar := "enter plot · tab next field · esc quit"
	if m.canvas.HasPlot() {
		b = append(b, "", m.styles.toolbar.Render(toolbar))
	} else {
		b = append(b, "", m.styles.disabled.Render(toolbar))
	}

	return lipgloss.JoinVertical(lipgloss.Left, b...)
}
