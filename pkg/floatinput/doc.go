// Package floatinput implements a single-line text field whose placeholder
// floats up into the border when the field is focused or filled.
//
// # Construction
//
// A field wraps a native text primitive ([platform.TextInput]) and a
// [Config]:
//
//	field := floatinput.New(native, floatinput.Config{
//	    Placeholder:    "Email",
//	    CharacterCount: 40,
//	    OnChangeText:   func(s string) { form.Email = s },
//	})
//	defer field.Dispose()
//
// The host forwards layout measurements of the label with
// [Input.OnLabelLayout] and replaces the configuration wholesale with
// [Input.Update]. Focus and text events arrive from the primitive through the
// [platform.TextInputClient] methods the field implements.
//
// # State
//
// The label is floated whenever the field is focused or holds text. The color
// channel rests at the error stop while Error is non-empty, otherwise at the
// active stop while focused and the inactive stop while blurred. An error
// toggle moves the color channel only; the label position never re-animates.
//
// Focus is never cached: [Input.Focused] and [Handle.IsFocused] ask the
// primitive.
//
// # Rendering
//
// Each frame the host samples the channels and composes a [Style]:
//
//	for field.Step() {
//	    draw(field.Style())
//	}
//
// [Compose] and [Geometry] are pure, so a host may also call them directly
// with a frame of its own. Until the first label measurement arrives the
// border keeps the inactive color.
package floatinput
