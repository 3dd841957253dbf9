package testing

import (
	"testing"
	"time"

	"github.com/go-drift/floatlabel/pkg/animation"
	"github.com/go-drift/floatlabel/pkg/floatinput"
	"github.com/go-drift/floatlabel/pkg/layout"
	"github.com/go-drift/floatlabel/pkg/platform"
)

// FrameInterval is the step Pump and PumpAndSettle advance the clock by.
const FrameInterval = 16 * time.Millisecond

// settleLimit bounds PumpAndSettle.
const settleLimit = 10 * time.Second

// FieldTester drives one floating-label field against an in-memory native
// primitive and a fake clock.
type FieldTester struct {
	t      testing.TB
	clock  *FakeClock
	native *platform.MemoryTextInput
	field  *floatinput.Input
	frames int
}

// NewFieldTester mounts a field with cfg. The field is disposed when t ends.
func NewFieldTester(t testing.TB, cfg floatinput.Config, opts ...floatinput.Option) *FieldTester {
	t.Helper()
	clock := NewFakeClock()
	native := platform.NewMemoryTextInput()
	opts = append([]floatinput.Option{floatinput.WithClock(clock), floatinput.WithID("test-field")}, opts...)
	ft := &FieldTester{
		t:      t,
		clock:  clock,
		native: native,
		field:  floatinput.New(native, cfg, opts...),
	}
	t.Cleanup(ft.field.Dispose)
	return ft
}

// Field returns the field under test.
func (ft *FieldTester) Field() *floatinput.Input { return ft.field }

// Native returns the in-memory primitive the field is mounted on.
func (ft *FieldTester) Native() *platform.MemoryTextInput { return ft.native }

// Clock returns the fake clock the field's channels read.
func (ft *FieldTester) Clock() *FakeClock { return ft.clock }

// Frames returns the number of frames pumped so far.
func (ft *FieldTester) Frames() int { return ft.frames }

// Pump advances time by d and steps the field once.
func (ft *FieldTester) Pump(d time.Duration) animation.Frame {
	ft.clock.Advance(d)
	ft.field.Step()
	ft.frames++
	return ft.field.Frame()
}

// PumpAndSettle pumps frames until no transition is running and returns the
// resting frame. It fails the test if the field never settles.
func (ft *FieldTester) PumpAndSettle() animation.Frame {
	ft.t.Helper()
	start := ft.clock.Elapsed()
	for ft.field.IsAnimating() {
		if ft.clock.Elapsed()-start > settleLimit {
			ft.t.Fatalf("PumpAndSettle: field still animating after %v", settleLimit)
		}
		ft.Pump(FrameInterval)
	}
	return ft.Pump(0)
}

// Tap focuses the field the way a user tap on the container does.
func (ft *FieldTester) Tap() {
	ft.native.Focus()
}

// Dismiss blurs the primitive as if the keyboard were dismissed.
func (ft *FieldTester) Dismiss() {
	ft.native.Blur()
}

// Type enters s at the end of the current text.
func (ft *FieldTester) Type(s string) {
	ft.native.Type(s)
}

// Paste replaces the whole text with s.
func (ft *FieldTester) Paste(s string) {
	ft.native.Replace(s)
}

// LayoutLabel reports a label measurement of width.
func (ft *FieldTester) LayoutLabel(width float64) {
	ft.field.OnLabelLayout(layout.LayoutEvent{Width: width, Height: ft.field.Config().FontSize})
}

// Style composes the current frame.
func (ft *FieldTester) Style() floatinput.Style {
	return ft.field.Style()
}
