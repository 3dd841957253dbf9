package layout

import "math"

// EdgeInsets represents padding or margin on four sides.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// EdgeInsetsAll returns insets with the same value on every side.
func EdgeInsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// EdgeInsetsSymmetric returns insets with horizontal and vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() float64 { return e.Top + e.Bottom }

// Size is a width and height in logical pixels (or cells, for terminal hosts).
type Size struct {
	Width, Height float64
}

// LayoutEvent is what a host reports after laying out a region.
type LayoutEvent struct {
	Width  float64
	Height float64
}

// SanitizeWidth returns w when it is a usable width and 0 otherwise.
// NaN, infinities and negative values all degrade to 0.
func SanitizeWidth(w float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0
	}
	return w
}
