package termhost

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/floatlabel/pkg/graphics"
	"github.com/go-drift/floatlabel/pkg/layout"
)

// CellMeasurer measures text in terminal cells. Font size is ignored: every
// glyph is one row high and as wide as its East Asian width.
type CellMeasurer struct{}

// MeasureText implements layout.Measurer.
func (CellMeasurer) MeasureText(text string, _ graphics.TextStyle) (layout.Size, error) {
	return layout.Size{
		Width:  float64(lipgloss.Width(text)),
		Height: float64(max(lipgloss.Height(text), 1)),
	}, nil
}

var _ layout.Measurer = CellMeasurer{}

// termColor converts a color to a terminal color. Transparent colors map to
// the terminal default.
func termColor(c graphics.Color) lipgloss.TerminalColor {
	if c.Alpha() == 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF))
}
