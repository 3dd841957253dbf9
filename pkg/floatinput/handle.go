package floatinput

// Imperative is the direct-control surface a screen holds for one field.
type Imperative interface {
	Focus()
	Blur()
	IsFocused() bool
	Clear()
}

// Handle is the field's imperative handle. It is built once per Input and
// refers to it without owning it: after [Input.Dispose] every method is a
// no-op and IsFocused reports false.
//
// All methods return immediately; the animations they start run on their own.
type Handle struct {
	in *Input
}

var _ Imperative = (*Handle)(nil)

// Focus runs the focus-acquired transition and moves keyboard focus to the
// native primitive.
func (h *Handle) Focus() {
	if h.in.disposed {
		return
	}
	h.in.focusAcquired()
	h.in.native.Focus()
}

// Blur runs the focus-lost transition and dismisses the keyboard.
func (h *Handle) Blur() {
	if h.in.disposed {
		return
	}
	h.in.focusLost()
	h.in.native.Blur()
}

// IsFocused queries the native primitive at call time.
func (h *Handle) IsFocused() bool {
	return h.in.Focused()
}

// Clear empties the value and the displayed text. The label and color
// channels are left alone, and OnChangeText is not called.
func (h *Handle) Clear() {
	h.in.clear()
}
