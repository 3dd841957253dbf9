package floatinput

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-drift/floatlabel/pkg/animation"
	"github.com/go-drift/floatlabel/pkg/graphics"
	"github.com/go-drift/floatlabel/pkg/theme"
)

// Variant selects the field chrome.
type Variant int

const (
	// VariantOutlined draws a full rounded border with a notch for the label.
	VariantOutlined Variant = iota
	// VariantStandard draws a bottom border only.
	VariantStandard
)

// String returns "outlined" or "standard".
func (v Variant) String() string {
	switch v {
	case VariantOutlined:
		return "outlined"
	case VariantStandard:
		return "standard"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant parses "outlined" or "standard". Empty means outlined.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "outlined":
		return VariantOutlined, nil
	case "standard":
		return VariantStandard, nil
	default:
		return VariantOutlined, fmt.Errorf("floatinput: unknown variant %q", s)
	}
}

// Platform adjusts metrics that differ between native text controls.
type Platform int

const (
	PlatformIOS Platform = iota
	// PlatformAndroid native inputs carry 8pt of intrinsic vertical padding,
	// which the input container subtracts.
	PlatformAndroid
)

// ColorTransition selects how the label and border colors move between the
// inactive, active and error stops.
type ColorTransition int

const (
	// ColorSmooth animates through RGB intermediates over the field's duration.
	ColorSmooth ColorTransition = iota
	// ColorDiscrete switches stops instantly.
	ColorDiscrete
)

// TextOverride replaces computed values of a helper text region. Nil fields
// keep the computed value.
type TextOverride struct {
	Color      *graphics.Color
	FontSize   *float64
	FontFamily *string
	Left       *float64
	Right      *float64
	Bottom     *float64
}

// ContainerOverride replaces computed values of the field container. Nil
// fields keep the computed value.
type ContainerOverride struct {
	BorderColor       *graphics.Color
	BackgroundColor   *graphics.Color
	BorderWidth       *float64
	BorderBottomWidth *float64
	BorderRadius      *float64
}

// Ptr returns a pointer to v, for filling overrides.
func Ptr[T any](v T) *T {
	return &v
}

// Config is the complete, immutable configuration of one field. A host
// replaces it wholesale with [Input.Update]; there are no partial updates.
//
// Zero-valued colors, sizes and paddings fall back to [theme.FieldTheme]
// through WithDefaults. BackgroundColor defaults to transparent. The zero
// Color is [graphics.ColorTransparent], so it always means unset; pass
// [graphics.ColorClear] (or another non-zero color with zero alpha) for a
// transparent override.
type Config struct {
	InactiveColor   graphics.Color
	ActiveColor     graphics.Color
	ErrorColor      graphics.Color
	BackgroundColor graphics.Color

	FontSize   float64
	FontColor  graphics.Color
	FontFamily string

	// Error is the externally computed validation message. Empty means no error.
	Error         string
	ErrorFontSize float64
	ErrorStyle    *TextOverride

	AssistiveText         string
	AssistiveTextFontSize float64
	AssistiveTextColor    graphics.Color
	AssistiveTextStyle    *TextOverride

	// CharacterCount limits the value length in runes and shows a counter.
	// Zero means unlimited with no counter.
	CharacterCount         int
	CharacterCountColor    graphics.Color
	CharacterCountFontSize float64
	CounterTextStyle       *TextOverride

	PaddingHorizontal float64
	PaddingVertical   float64

	// Style overrides the computed container style.
	Style *ContainerOverride

	// Placeholder is the floating label text.
	Placeholder string
	// TrailingIcon is an opaque decoration drawn at the trailing edge.
	TrailingIcon any
	// Value is the externally controlled value. A change resyncs the field.
	Value   string
	Variant Variant

	// OnChangeText receives every accepted (possibly truncated) edit.
	OnChangeText func(text string)

	// InputProps are forwarded unmodified to the native primitive.
	InputProps map[string]any

	Platform Platform
	// Duration of label and color transitions. Zero means 300ms; negative
	// disables animation.
	Duration time.Duration
	// Curve eases transitions. Nil means [animation.EaseInOutQuad].
	Curve           animation.Curve
	ColorTransition ColorTransition

	// Theme supplies defaults. Nil means the light field theme.
	Theme *theme.FieldTheme
}

// WithDefaults returns a copy with every unset field filled from the theme.
func (c Config) WithDefaults() Config {
	t := theme.DefaultFieldTheme(theme.LightPalette())
	if c.Theme != nil {
		t = *c.Theme
	}

	c.InactiveColor = orColor(c.InactiveColor, t.InactiveColor)
	c.ActiveColor = orColor(c.ActiveColor, t.ActiveColor)
	c.ErrorColor = orColor(c.ErrorColor, t.ErrorColor)
	c.BackgroundColor = orColor(c.BackgroundColor, t.BackgroundColor)
	c.FontColor = orColor(c.FontColor, t.FontColor)
	c.FontSize = orFloat(c.FontSize, t.FontSize)
	c.ErrorFontSize = orFloat(c.ErrorFontSize, t.ErrorFontSize)
	c.AssistiveTextFontSize = orFloat(c.AssistiveTextFontSize, t.AssistiveTextFontSize)
	c.AssistiveTextColor = orColor(c.AssistiveTextColor, c.InactiveColor)
	c.CharacterCountFontSize = orFloat(c.CharacterCountFontSize, t.CharacterCountFontSize)
	c.CharacterCountColor = orColor(c.CharacterCountColor, c.InactiveColor)
	c.PaddingHorizontal = orFloat(c.PaddingHorizontal, t.PaddingHorizontal)
	c.PaddingVertical = orFloat(c.PaddingVertical, t.PaddingVertical)
	if c.Placeholder == "" {
		c.Placeholder = t.Placeholder
	}
	if c.Curve == nil {
		c.Curve = animation.EaseInOutQuad
	}
	if c.Theme == nil {
		c.Theme = &t
	}
	return c
}

// ErrorActive reports whether an error message is present.
func (c Config) ErrorActive() bool {
	return c.Error != ""
}

// transitionDuration is the duration handed to channel SetTarget calls.
func (c Config) transitionDuration() time.Duration {
	switch {
	case c.Duration < 0:
		return 0
	case c.Duration == 0:
		return animation.DefaultDuration
	default:
		return c.Duration
	}
}

func (c Config) colorDuration() time.Duration {
	if c.ColorTransition == ColorDiscrete {
		return 0
	}
	return c.transitionDuration()
}

func orColor(v, fallback graphics.Color) graphics.Color {
	if v == 0 {
		return fallback
	}
	return v
}

func orFloat(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
