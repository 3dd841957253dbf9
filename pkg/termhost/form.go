package termhost

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SubmitMsg is emitted when every field validated on submit.
type SubmitMsg struct {
	Values map[string]string
}

// Form is a bubbletea model stacking several fields with tab traversal.
// Enter on the last field validates every field; the first invalid one takes
// focus, otherwise the form emits a SubmitMsg and quits.
type Form struct {
	Title  string
	fields []*Field
	focus  int

	submitted bool
	canceled  bool
}

// NewForm creates a form over fields. The first field receives focus on Init.
func NewForm(title string, fields ...*Field) *Form {
	return &Form{Title: title, fields: fields}
}

// Fields returns the hosted fields in order.
func (m *Form) Fields() []*Field { return m.fields }

// FocusIndex returns the index of the field holding focus.
func (m *Form) FocusIndex() int { return m.focus }

// Submitted reports whether the form was submitted with valid values.
func (m *Form) Submitted() bool { return m.submitted }

// Canceled reports whether the user left without submitting.
func (m *Form) Canceled() bool { return m.canceled }

// Values returns each field's current text keyed by name.
func (m *Form) Values() map[string]string {
	values := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		values[f.Name] = f.Value()
	}
	return values
}

// Init implements tea.Model.
func (m *Form) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.fields)+1)
	for _, f := range m.fields {
		cmds = append(cmds, f.Init())
	}
	if len(m.fields) > 0 {
		cmds = append(cmds, m.fields[0].Focus())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			return m, m.move(1)
		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.move(-1)
		case tea.KeyEnter:
			if m.focus < len(m.fields)-1 {
				return m, m.move(1)
			}
			return m, m.submit()
		}
		if len(m.fields) == 0 {
			return m, nil
		}
		_, cmd := m.fields[m.focus].Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		for _, f := range m.fields {
			f.SetWidth(min(msg.Width, 60))
		}
		return m, nil
	}

	// Frame and layout messages carry a field ID; every field filters its own.
	cmds := make([]tea.Cmd, 0, len(m.fields))
	for _, f := range m.fields {
		_, cmd := f.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *Form) View() string {
	var b strings.Builder
	if m.Title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.Title))
		b.WriteString("\n\n")
	}
	for _, f := range m.fields {
		b.WriteString(f.View())
		b.WriteString("\n\n")
	}
	b.WriteString(lipgloss.NewStyle().Faint(true).Render("tab/shift+tab to move • enter to submit • esc to quit"))
	return b.String()
}

// Dispose releases every field.
func (m *Form) Dispose() {
	for _, f := range m.fields {
		f.Dispose()
	}
}

func (m *Form) move(delta int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	next := (m.focus + delta + len(m.fields)) % len(m.fields)
	return m.focusField(next)
}

func (m *Form) focusField(i int) tea.Cmd {
	if i == m.focus && m.fields[i].Focused() {
		return nil
	}
	blur := m.fields[m.focus].Blur()
	m.focus = i
	return tea.Batch(blur, m.fields[i].Focus())
}

func (m *Form) submit() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.fields)+1)
	firstInvalid := -1
	for i, f := range m.fields {
		ok, cmd := f.Check()
		cmds = append(cmds, cmd)
		if !ok && firstInvalid < 0 {
			firstInvalid = i
		}
	}
	if firstInvalid >= 0 {
		cmds = append(cmds, m.focusField(firstInvalid))
		return tea.Batch(cmds...)
	}
	m.submitted = true
	values := m.Values()
	cmds = append(cmds, func() tea.Msg { return SubmitMsg{Values: values} })
	return tea.Sequence(tea.Batch(cmds...), tea.Quit)
}
