package animation

import "time"

// DefaultDuration is the transition length a field uses when its
// configuration leaves the duration unset.
const DefaultDuration = 300 * time.Millisecond

// Channel is a single animatable scalar.
//
// Writes go through SetTarget, which starts a timed transition from whatever
// value the channel holds at that instant. A later SetTarget replaces the
// transition in flight; nothing is queued and there is no completion callback.
// Reads are poll-based: Value interpolates against the channel's clock when
// called, so derived geometry computed from it can never drift from the
// transition state.
//
// A Channel is owned by one control and is not safe for concurrent use.
type Channel struct {
	clock    Clock
	curve    Curve
	from     float64
	target   float64
	start    time.Time
	duration time.Duration

	listeners    map[int]func(float64)
	nextID       int
	lastNotified float64
	disposed     bool
}

// NewChannel creates a channel resting at initial.
func NewChannel(initial float64, clock Clock) *Channel {
	return &Channel{
		clock:        clockOrDefault(clock),
		curve:        EaseInOutQuad,
		from:         initial,
		target:       initial,
		lastNotified: initial,
		listeners:    make(map[int]func(float64)),
	}
}

// SetCurve replaces the easing curve used by subsequent transitions.
// A nil curve selects [LinearCurve].
func (c *Channel) SetCurve(curve Curve) {
	if curve == nil {
		curve = LinearCurve
	}
	c.curve = curve
}

// SetTarget starts a transition toward target lasting d. A d of zero or less
// jumps. Setting the target the channel is already
// heading to (or resting at) leaves the running transition untouched.
func (c *Channel) SetTarget(target float64, d time.Duration) {
	if c.disposed || target == c.target {
		return
	}
	now := c.clock.Now()
	current := c.valueAt(now)
	c.target = target
	c.start = now
	if d <= 0 {
		c.from = target
		c.duration = 0
		return
	}
	c.from = current
	c.duration = d
}

// Jump moves the channel to v immediately, cancelling any transition.
func (c *Channel) Jump(v float64) {
	if c.disposed {
		return
	}
	c.from = v
	c.target = v
	c.duration = 0
	c.notify(v)
}

// Value returns the instantaneous value.
func (c *Channel) Value() float64 {
	return c.valueAt(c.clock.Now())
}

// Target returns the value the channel is heading toward.
func (c *Channel) Target() float64 {
	return c.target
}

// IsAnimating reports whether a transition is still in flight.
func (c *Channel) IsAnimating() bool {
	if c.duration <= 0 || c.from == c.target {
		return false
	}
	return c.clock.Now().Sub(c.start) < c.duration
}

// AddListener registers fn to receive the channel value whenever Step observes
// a change. Returns an unsubscribe function.
func (c *Channel) AddListener(fn func(float64)) func() {
	if c.disposed {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// Step samples the channel, pushes the value to listeners when it changed since
// the previous notification, and reports whether the transition is still running.
// Hosts call it once per frame.
func (c *Channel) Step() bool {
	if c.disposed {
		return false
	}
	c.notify(c.Value())
	return c.IsAnimating()
}

// Dispose drops listeners and freezes the channel at its target.
func (c *Channel) Dispose() {
	c.from = c.target
	c.duration = 0
	c.listeners = nil
	c.disposed = true
}

func (c *Channel) valueAt(now time.Time) float64 {
	if c.duration <= 0 {
		return c.target
	}
	progress := float64(now.Sub(c.start)) / float64(c.duration)
	if progress >= 1 {
		return c.target
	}
	if progress <= 0 {
		return c.from
	}
	eased := progress
	if c.curve != nil {
		eased = c.curve(progress)
	}
	return c.from + (c.target-c.from)*eased
}

func (c *Channel) notify(v float64) {
	if v == c.lastNotified {
		return
	}
	c.lastNotified = v
	for _, listener := range c.listeners {
		listener(v)
	}
}
