package platform

import (
	"maps"
	"sync"
	"unicode/utf8"
)

// MemoryTextInput is an in-process TextInput for headless hosts and tests.
//
// Focus changes are synchronous: Focus reports OnFocusChanged(true) before it
// returns, so IsFocused is true immediately afterwards. Type and Replace stand
// in for the user and enforce MaxLength the way a native field does.
type MemoryTextInput struct {
	mu      sync.RWMutex
	config  TextInputConfig
	client  TextInputClient
	text    string
	focused bool
	calls   []string
}

// NewMemoryTextInput creates a blurred, empty primitive.
func NewMemoryTextInput() *MemoryTextInput {
	return &MemoryTextInput{}
}

// Focus implements TextInput.
func (m *MemoryTextInput) Focus() {
	m.setFocused(true, "focus")
}

// Blur implements TextInput.
func (m *MemoryTextInput) Blur() {
	m.setFocused(false, "blur")
}

func (m *MemoryTextInput) setFocused(focused bool, call string) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	changed := m.focused != focused
	m.focused = focused
	client := m.client
	m.mu.Unlock()

	if changed && client != nil {
		client.OnFocusChanged(focused)
	}
}

// IsFocused implements TextInput.
func (m *MemoryTextInput) IsFocused() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.focused
}

// Clear implements TextInput.
func (m *MemoryTextInput) Clear() {
	m.mu.Lock()
	m.calls = append(m.calls, "clear")
	m.text = ""
	m.mu.Unlock()
}

// SetText implements TextInput.
func (m *MemoryTextInput) SetText(text string) {
	m.mu.Lock()
	m.calls = append(m.calls, "setText")
	m.text = text
	m.mu.Unlock()
}

// Text implements TextInput.
func (m *MemoryTextInput) Text() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text
}

// UpdateConfig implements TextInput.
func (m *MemoryTextInput) UpdateConfig(config TextInputConfig) {
	m.mu.Lock()
	config.Extra = maps.Clone(config.Extra)
	m.config = config
	m.mu.Unlock()
}

// Config returns the last applied configuration.
func (m *MemoryTextInput) Config() TextInputConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// SetClient implements TextInput.
func (m *MemoryTextInput) SetClient(client TextInputClient) {
	m.mu.Lock()
	m.client = client
	m.mu.Unlock()
}

// Calls returns the commands received so far, in order.
func (m *MemoryTextInput) Calls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.calls...)
}

// Type appends s as if the user typed it. Input past MaxLength is dropped.
func (m *MemoryTextInput) Type(s string) {
	m.Replace(m.Text() + s)
}

// Backspace deletes the last rune as if the user pressed backspace.
func (m *MemoryTextInput) Backspace() {
	text := m.Text()
	if text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(text)
	m.Replace(text[:len(text)-size])
}

// Replace sets the text as if the user pasted over the whole field, truncating
// at MaxLength, and reports the change when the text differs.
func (m *MemoryTextInput) Replace(text string) {
	m.mu.Lock()
	text = TruncateRunes(text, m.config.MaxLength)
	changed := text != m.text
	m.text = text
	client := m.client
	m.mu.Unlock()

	if changed && client != nil {
		client.OnTextChanged(text)
	}
}

// TruncateRunes cuts s to at most limit runes. A limit of zero or less means
// unlimited.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
