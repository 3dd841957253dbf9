package theme

import (
	"math"
	"sync/atomic"

	"github.com/go-drift/floatlabel/pkg/graphics"
)

// FieldTheme is the default styling of a floating-label field.
type FieldTheme struct {
	InactiveColor          graphics.Color
	ActiveColor            graphics.Color
	ErrorColor             graphics.Color
	BackgroundColor        graphics.Color
	SpacerColor            graphics.Color
	FontColor              graphics.Color
	FontSize               float64
	ErrorFontSize          float64
	AssistiveTextFontSize  float64
	CharacterCountFontSize float64
	PaddingHorizontal      float64
	PaddingVertical        float64
	Placeholder            string
}

// DefaultFieldTheme derives field defaults from a palette.
func DefaultFieldTheme(p Palette) FieldTheme {
	return FieldTheme{
		InactiveColor:          p.Grey,
		ActiveColor:            p.Primary,
		ErrorColor:             p.Red,
		BackgroundColor:        p.Transparent,
		SpacerColor:            p.Surface,
		FontColor:              p.Text,
		FontSize:               TextScale(14),
		ErrorFontSize:          TextScale(10),
		AssistiveTextFontSize:  TextScale(10),
		CharacterCountFontSize: TextScale(10),
		PaddingHorizontal:      12,
		PaddingVertical:        12,
		Placeholder:            "Input",
	}
}

// textScale holds the float64 bits of the current scale factor; zero bits mean 1.
var textScale atomic.Uint64

// SetTextScale sets the factor TextScale multiplies by. Hosts set it once from
// the device's width class. Non-positive values restore 1.
func SetTextScale(factor float64) {
	if factor <= 0 {
		textScale.Store(0)
		return
	}
	textScale.Store(math.Float64bits(factor))
}

// TextScale scales a design font size to the current device.
func TextScale(size float64) float64 {
	bits := textScale.Load()
	if bits == 0 {
		return size
	}
	return size * math.Float64frombits(bits)
}
