package termhost

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/floatlabel/pkg/platform"
)

// Extra keys understood by TextInputAdapter in TextInputConfig.Extra.
const (
	// PropSecure masks the text when true.
	PropSecure = "secureTextEntry"
	// PropEchoCharacter replaces the mask rune when PropSecure is set.
	PropEchoCharacter = "echoCharacter"
)

// TextInputAdapter is a platform.TextInput backed by a bubbles text input.
//
// Focus changes are reported synchronously, and only when the focus actually
// changes. Commands produced by the underlying model (cursor blink) are kept
// until the host collects them with TakeCmd.
type TextInputAdapter struct {
	model   textinput.Model
	client  platform.TextInputClient
	config  platform.TextInputConfig
	pending []tea.Cmd
}

// NewTextInputAdapter creates a blurred, empty adapter.
func NewTextInputAdapter() *TextInputAdapter {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = ""
	return &TextInputAdapter{model: ti}
}

// Focus implements platform.TextInput.
func (a *TextInputAdapter) Focus() {
	if a.model.Focused() {
		return
	}
	a.pending = append(a.pending, a.model.Focus())
	a.model.CursorEnd()
	if a.client != nil {
		a.client.OnFocusChanged(true)
	}
}

// Blur implements platform.TextInput.
func (a *TextInputAdapter) Blur() {
	if !a.model.Focused() {
		return
	}
	a.model.Blur()
	if a.client != nil {
		a.client.OnFocusChanged(false)
	}
}

// IsFocused implements platform.TextInput.
func (a *TextInputAdapter) IsFocused() bool {
	return a.model.Focused()
}

// Clear implements platform.TextInput.
func (a *TextInputAdapter) Clear() {
	a.model.Reset()
}

// SetText implements platform.TextInput.
func (a *TextInputAdapter) SetText(text string) {
	a.model.SetValue(text)
	a.model.CursorEnd()
}

// Text implements platform.TextInput.
func (a *TextInputAdapter) Text() string {
	return a.model.Value()
}

// UpdateConfig implements platform.TextInput.
func (a *TextInputAdapter) UpdateConfig(config platform.TextInputConfig) {
	a.config = config
	a.model.CharLimit = config.MaxLength
	a.model.Placeholder = config.Placeholder
	a.model.TextStyle = lipgloss.NewStyle().Foreground(termColor(config.TextColor))
	a.model.Cursor.Style = lipgloss.NewStyle().Foreground(termColor(config.SelectionColor))

	a.model.EchoMode = textinput.EchoNormal
	if secure, _ := config.Extra[PropSecure].(bool); secure {
		a.model.EchoMode = textinput.EchoPassword
		if r, ok := config.Extra[PropEchoCharacter].(rune); ok {
			a.model.EchoCharacter = r
		}
	}
}

// Config returns the last applied configuration.
func (a *TextInputAdapter) Config() platform.TextInputConfig {
	return a.config
}

// SetClient implements platform.TextInput.
func (a *TextInputAdapter) SetClient(client platform.TextInputClient) {
	a.client = client
}

// SetWidth sets the number of cells the text occupies.
func (a *TextInputAdapter) SetWidth(cells int) {
	a.model.Width = max(cells, 1)
}

// HandleMsg forwards msg to the text input and reports an edit to the client
// when the text changed. Blurred adapters ignore key input.
func (a *TextInputAdapter) HandleMsg(msg tea.Msg) tea.Cmd {
	before := a.model.Value()
	var cmd tea.Cmd
	a.model, cmd = a.model.Update(msg)
	if after := a.model.Value(); after != before && a.client != nil {
		a.client.OnTextChanged(after)
	}
	return cmd
}

// TakeCmd returns and forgets the commands the text input produced outside of
// HandleMsg.
func (a *TextInputAdapter) TakeCmd() tea.Cmd {
	if len(a.pending) == 0 {
		return nil
	}
	cmd := tea.Batch(a.pending...)
	a.pending = nil
	return cmd
}

// View renders the editable text with its cursor.
func (a *TextInputAdapter) View() string {
	return a.model.View()
}

var _ platform.TextInput = (*TextInputAdapter)(nil)
