package floatinput

import (
	"github.com/go-drift/floatlabel/pkg/animation"
	"github.com/go-drift/floatlabel/pkg/graphics"
)

var unitRange = animation.Range{From: 0, To: 1}

// LabelGeometry is the per-frame geometry derived from the channels.
type LabelGeometry struct {
	// TranslateY lifts the label toward the top border.
	TranslateY float64
	// Scale shrinks the label as it floats.
	Scale float64
	// TranslateX keeps the scaled label's leading edge anchored.
	TranslateX float64
	// SpacerWidth is the width of the notch cut into the border.
	SpacerWidth float64
	// LabelColor follows the color channel.
	LabelColor graphics.Color
	// BorderColor follows the color channel once the label has been measured,
	// and stays inactive before that.
	BorderColor graphics.Color
}

// Geometry computes label geometry from a configuration and a channel frame.
// It is pure and must be recomputed for every frame.
func Geometry(cfg Config, f animation.Frame) LabelGeometry {
	p := f.LabelProgress
	w := f.LabelWidth
	if w < 0 {
		w = 0
	}
	notch := w*0.7 + 7

	labelColor := graphics.InterpolateColor(f.ColorState, cfg.InactiveColor, cfg.ActiveColor, cfg.ErrorColor)
	borderColor := cfg.InactiveColor
	if w > 0 {
		borderColor = labelColor
	}

	return LabelGeometry{
		TranslateY:  animation.Interpolate(p, unitRange, animation.Range{From: 0, To: -(cfg.PaddingVertical + cfg.FontSize*0.7)}, animation.ExtrapolateExtend),
		Scale:       animation.Interpolate(p, unitRange, animation.Range{From: 1, To: 0.7}, animation.ExtrapolateExtend),
		TranslateX:  animation.Interpolate(p, unitRange, animation.Range{From: 0, To: -w * 0.2}, animation.ExtrapolateExtend),
		SpacerWidth: animation.Interpolate(p, unitRange, animation.Range{From: 0, To: notch}, animation.ExtrapolateClamp),
		LabelColor:  labelColor,
		BorderColor: borderColor,
	}
}
