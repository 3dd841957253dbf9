package animation

import "time"

// Clock provides time for animations. Channels read it at construction,
// on every SetTarget and on every Value read. Tests inject a fake clock to
// control animation timing deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads wall-clock time.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// clockOrDefault returns c, or SystemClock when c is nil.
func clockOrDefault(c Clock) Clock {
	if c == nil {
		return SystemClock{}
	}
	return c
}
