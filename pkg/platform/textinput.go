// Package platform defines the contract between a floating-label field and the
// native text-entry primitive that actually receives keystrokes.
//
// The field never edits text itself. It commands the primitive (focus, blur,
// clear, set text) and reacts to what the primitive reports through a
// [TextInputClient].
package platform

import "github.com/go-drift/floatlabel/pkg/graphics"

// TextInputConfig is the styling and behavior pushed to the native primitive.
type TextInputConfig struct {
	FontFamily     string
	FontSize       float64
	TextColor      graphics.Color
	SelectionColor graphics.Color

	// MaxLength bounds the text length in runes. Zero means unlimited.
	MaxLength int
	// Editable is false while the field is blurred so taps reach the field
	// container instead of the primitive.
	Editable bool

	// Placeholder is always empty: the field draws its own floating label.
	Placeholder string

	// Extra holds caller properties forwarded unmodified.
	Extra map[string]any
}

// TextInputClient receives callbacks from the native primitive.
type TextInputClient interface {
	// OnTextChanged is called when the user edits the text.
	OnTextChanged(text string)
	// OnFocusChanged is called when the primitive gains or loses focus.
	OnFocusChanged(focused bool)
}

// TextInput is the native text-entry primitive.
type TextInput interface {
	// Focus requests keyboard focus.
	Focus()
	// Blur dismisses the keyboard.
	Blur()
	// IsFocused reports the primitive's live focus state.
	IsFocused() bool
	// Clear empties the displayed text without reporting a change.
	Clear()
	// SetText replaces the displayed text without reporting a change.
	SetText(text string)
	// Text returns the displayed text.
	Text() string
	// UpdateConfig applies new styling and behavior.
	UpdateConfig(config TextInputConfig)
	// SetClient installs the callback receiver. Nil detaches it.
	SetClient(client TextInputClient)
}
