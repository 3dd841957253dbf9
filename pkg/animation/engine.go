package animation

// Color channel stops.
const (
	ColorInactive = 0
	ColorActive   = 1
	ColorError    = 2
)

// Frame is a snapshot of the three field channels.
type Frame struct {
	// LabelProgress is 0 with the label resting inline and 1 when floated.
	LabelProgress float64
	// ColorState indexes the inactive/active/error color stops; fractional
	// during a transition.
	ColorState float64
	// LabelWidth mirrors the last measured label width.
	LabelWidth float64
}

// Engine owns the three channels of one text field.
type Engine struct {
	Label *Channel
	Color *Channel
	Width *Channel
}

// NewEngine creates an engine with the label and color channels resting at the
// given values and the width mirror at zero.
func NewEngine(clock Clock, label, color float64) *Engine {
	clock = clockOrDefault(clock)
	return &Engine{
		Label: NewChannel(label, clock),
		Color: NewChannel(color, clock),
		Width: NewChannel(0, clock),
	}
}

// SetCurve applies curve to the label and color channels. The width mirror
// always jumps and ignores curves.
func (e *Engine) SetCurve(curve Curve) {
	e.Label.SetCurve(curve)
	e.Color.SetCurve(curve)
}

// Snapshot samples every channel now.
func (e *Engine) Snapshot() Frame {
	return Frame{
		LabelProgress: e.Label.Value(),
		ColorState:    e.Color.Value(),
		LabelWidth:    e.Width.Value(),
	}
}

// Targets returns the value each channel is heading toward.
func (e *Engine) Targets() Frame {
	return Frame{
		LabelProgress: e.Label.Target(),
		ColorState:    e.Color.Target(),
		LabelWidth:    e.Width.Target(),
	}
}

// Step advances every channel's listeners and reports whether any transition
// is still running.
func (e *Engine) Step() bool {
	label := e.Label.Step()
	color := e.Color.Step()
	width := e.Width.Step()
	return label || color || width
}

// IsAnimating reports whether any channel is mid-transition.
func (e *Engine) IsAnimating() bool {
	return e.Label.IsAnimating() || e.Color.IsAnimating() || e.Width.IsAnimating()
}

// Dispose releases every channel.
func (e *Engine) Dispose() {
	e.Label.Dispose()
	e.Color.Dispose()
	e.Width.Dispose()
}
