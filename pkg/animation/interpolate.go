package animation

import "math"

// Extrapolate controls how [Interpolate] treats inputs outside its input range.
type Extrapolate int

const (
	// ExtrapolateExtend continues the linear mapping past either end.
	ExtrapolateExtend Extrapolate = iota
	// ExtrapolateClamp pins the output to the output range.
	ExtrapolateClamp
)

// Range is a closed numeric interval, From may be greater than To.
type Range struct {
	From, To float64
}

// Interpolate maps x from in onto out linearly. A degenerate input range maps
// everything to out.From. NaN inputs map to out.From.
func Interpolate(x float64, in, out Range, mode Extrapolate) float64 {
	if math.IsNaN(x) || in.From == in.To {
		return out.From
	}
	t := (x - in.From) / (in.To - in.From)
	if mode == ExtrapolateClamp {
		t = clampUnit(t)
	}
	return LerpFloat64(out.From, out.To, t)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}
