package termhost

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/floatlabel/pkg/floatinput"
)

func required(v string) string {
	if v == "" {
		return "required"
	}
	return ""
}

func newTestForm(t *testing.T) *Form {
	t.Helper()
	name, _ := newTestField(t, "name", floatinput.Config{Placeholder: "Name"})
	name.Validate = required
	email, _ := newTestField(t, "email", floatinput.Config{Placeholder: "Email"})
	email.Validate = required
	form := NewForm("Sign up", name, email)
	require.NotNil(t, form.Init())
	return form
}

func TestFormInitFocusesFirstField(t *testing.T) {
	form := newTestForm(t)

	assert.Equal(t, 0, form.FocusIndex())
	assert.True(t, form.Fields()[0].Focused())
	assert.False(t, form.Fields()[1].Focused())
}

func TestFormTabTraversal(t *testing.T) {
	form := newTestForm(t)

	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, form.FocusIndex())
	assert.False(t, form.Fields()[0].Focused())
	assert.True(t, form.Fields()[1].Focused())

	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, form.FocusIndex(), "tab should wrap around")

	form.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, form.FocusIndex(), "shift+tab should wrap backwards")
}

func TestFormRoutesKeysToFocusedField(t *testing.T) {
	form := newTestForm(t)

	form.Update(keys("Ada"))
	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	form.Update(keys("ada@example.com"))

	assert.Equal(t, map[string]string{"name": "Ada", "email": "ada@example.com"}, form.Values())
}

func TestFormSubmitFocusesFirstInvalid(t *testing.T) {
	form := newTestForm(t)
	form.Update(keys("Ada"))
	form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, form.FocusIndex())

	form.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, form.Submitted())
	assert.Equal(t, 1, form.FocusIndex())
	assert.Equal(t, "required", form.Fields()[1].Input().Config().Error)
	assert.Empty(t, form.Fields()[0].Input().Config().Error)
}

func TestFormSubmit(t *testing.T) {
	form := newTestForm(t)
	form.Update(keys("Ada"))
	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	form.Update(keys("ada@example.com"))

	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.True(t, form.Submitted())
	assert.False(t, form.Canceled())
}

func TestFormEscCancels(t *testing.T) {
	form := newTestForm(t)
	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, form.Canceled())
}

func TestFormView(t *testing.T) {
	form := newTestForm(t)
	view := form.View()

	assert.Contains(t, view, "Sign up")
	assert.Contains(t, view, "Name")
	assert.Contains(t, view, "Email")
}
