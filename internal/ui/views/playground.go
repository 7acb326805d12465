package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/karthickk/tmplutil/internal/ui/components"
	"github.com/karthickk/tmplutil/pkg/extension"
)

// FilterResult is the output of one filter for the current input
type FilterResult struct {
	Filter string
	Output string
	Err    error
}

// PlaygroundModel applies every filter to the typed value as it changes
type PlaygroundModel struct {
	ext      *extension.Extension
	input    textinput.Model
	results  []FilterResult
	width    int
	quitting bool
}

// NewPlaygroundModel creates a playground for ext
func NewPlaygroundModel(ext *extension.Extension) *PlaygroundModel {
	input := textinput.New()
	input.Placeholder = "5551234567, 1234.5, yes, -3 hours ..."
	input.CharLimit = 256
	input.Width = 50
	input.Focus()

	m := &PlaygroundModel{
		ext:   ext,
		input: input,
		width: 80,
	}
	m.evaluate()
	return m
}

// Init initializes the model
func (m *PlaygroundModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles updates
func (m *PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+u":
			m.input.SetValue("")
			m.evaluate()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	previous := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != previous {
		m.evaluate()
	}
	return m, cmd
}

// View renders the view
func (m *PlaygroundModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(components.RenderTitle("Template Filter Playground", "Type a value to see every filter applied to it"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	rows := make([]string, 0, len(m.results))
	for _, r := range m.results {
		rows = append(rows, components.RenderResult(r.Filter, r.Output, r.Err))
	}

	box := components.BoxStyle
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}
	b.WriteString(box.Render(strings.Join(rows, "\n")))

	b.WriteString("\n")
	b.WriteString(components.HelpStyle.Render(strings.Join([]string{
		components.RenderKeyBinding("ctrl+u", "clear"),
		components.RenderKeyBinding("esc", "quit"),
	}, "  ")))

	return components.AppStyle.Render(b.String())
}

// Value returns the current input
func (m *PlaygroundModel) Value() string {
	return m.input.Value()
}

// Results returns the filter outputs for the current input
func (m *PlaygroundModel) Results() []FilterResult {
	return m.results
}

// evaluate reruns every filter. An empty input yields empty results.
func (m *PlaygroundModel) evaluate() {
	value := strings.TrimSpace(m.input.Value())
	m.results = m.results[:0]

	for _, f := range m.ext.Filters() {
		r := FilterResult{Filter: f.Name}
		if value != "" {
			r.Output, r.Err = m.apply(f.Name, value)
		}
		m.results = append(m.results, r)
	}
}

func (m *PlaygroundModel) apply(filter, value string) (string, error) {
	switch filter {
	case extension.FilterPhone:
		return m.ext.Phone(value)
	case extension.FilterPrice:
		return m.ext.Price(value)
	case extension.FilterBoolean:
		return m.ext.Boolean(value)
	case extension.FilterMD5:
		return m.ext.MD5(value)
	case extension.FilterTimeAgo:
		return m.ext.TimeAgo(value)
	default:
		return "", fmt.Errorf("unknown filter %s", filter)
	}
}

// ShowPlayground runs the playground until the user quits
func ShowPlayground(ext *extension.Extension) error {
	p := tea.NewProgram(NewPlaygroundModel(ext), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running playground: %w", err)
	}
	return nil
}
