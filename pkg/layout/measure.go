package layout

import (
	"github.com/go-drift/floatlabel/pkg/graphics"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Measurer reports the laid-out size of a run of text. Hosts without a real text
// layout engine use one to synthesize the label layout event.
type Measurer interface {
	MeasureText(text string, style graphics.TextStyle) (Size, error)
}

// defaultFaceSize is the pixel height basicfont.Face7x13 is drawn at.
const defaultFaceSize = 13

// FontMeasurer measures text with an x/image font face, scaling advances from
// the face's native size to the requested font size.
type FontMeasurer struct {
	// Face is the font face. Nil selects basicfont.Face7x13.
	Face font.Face
	// FaceSize is the pixel size Face renders at. Zero means 13.
	FaceSize float64
}

// MeasureText implements Measurer.
func (m FontMeasurer) MeasureText(text string, style graphics.TextStyle) (Size, error) {
	face := m.Face
	faceSize := m.FaceSize
	if face == nil {
		face = basicfont.Face7x13
		faceSize = defaultFaceSize
	}
	if faceSize <= 0 {
		faceSize = defaultFaceSize
	}
	scale := 1.0
	if style.FontSize > 0 {
		scale = style.FontSize / faceSize
	}

	advance := font.MeasureString(face, text)
	metrics := face.Metrics()
	return Size{
		Width:  fixedToFloat(advance) * scale,
		Height: fixedToFloat(metrics.Height) * scale,
	}, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
