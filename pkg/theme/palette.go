// Package theme holds the default palette and sizing that text fields fall
// back to when a caller leaves a configuration field unset.
package theme

import (
	"fmt"
	"strings"

	"github.com/go-drift/floatlabel/pkg/graphics"
)

// Brightness selects a light or dark palette.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// String returns "light" or "dark".
func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ParseBrightness parses "light" or "dark" (case-insensitive). Empty means light.
func ParseBrightness(s string) (Brightness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light":
		return BrightnessLight, nil
	case "dark":
		return BrightnessDark, nil
	default:
		return BrightnessLight, fmt.Errorf("theme: unknown brightness %q", s)
	}
}

// Palette is the set of named colors used by field defaults.
type Palette struct {
	Grey        graphics.Color
	Primary     graphics.Color
	Red         graphics.Color
	Text        graphics.Color
	Surface     graphics.Color
	Transparent graphics.Color
}

// LightPalette returns the default light palette.
func LightPalette() Palette {
	return Palette{
		Grey:        graphics.RGB(0x80, 0x80, 0x80),
		Primary:     graphics.RGB(0x00, 0x7A, 0xFF),
		Red:         graphics.RGB(0xFF, 0x3B, 0x30),
		Text:        graphics.ColorBlack,
		Surface:     graphics.ColorWhite,
		Transparent: graphics.ColorTransparent,
	}
}

// DarkPalette returns the default dark palette.
func DarkPalette() Palette {
	return Palette{
		Grey:        graphics.RGB(0x8E, 0x8E, 0x93),
		Primary:     graphics.RGB(0x0A, 0x84, 0xFF),
		Red:         graphics.RGB(0xFF, 0x45, 0x3A),
		Text:        graphics.ColorWhite,
		Surface:     graphics.RGB(0x1C, 0x1C, 0x1E),
		Transparent: graphics.ColorTransparent,
	}
}

// PaletteFor returns the palette for b.
func PaletteFor(b Brightness) Palette {
	if b == BrightnessDark {
		return DarkPalette()
	}
	return LightPalette()
}
