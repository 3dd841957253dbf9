package floatinput

import (
	"fmt"
	"io"
	"maps"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/go-drift/floatlabel/pkg/animation"
	"github.com/go-drift/floatlabel/pkg/errors"
	"github.com/go-drift/floatlabel/pkg/layout"
	"github.com/go-drift/floatlabel/pkg/platform"
)

// Option customizes an Input at construction.
type Option func(*Input)

// WithClock sets the clock the field's channels read.
func WithClock(clock animation.Clock) Option {
	return func(in *Input) { in.clock = clock }
}

// WithLogger sets the logger that receives debug transition entries.
func WithLogger(logger *log.Logger) Option {
	return func(in *Input) { in.logger = logger }
}

// WithID sets the field's instance ID used in logs and error reports.
func WithID(id string) Option {
	return func(in *Input) { in.id = id }
}

// Input is one floating-label text field.
//
// It owns the current value, the three animation channels, and the imperative
// handle. Focus is never tracked independently: it is read from the native
// primitive on demand. All methods must be called from the host's single
// event-handling goroutine.
type Input struct {
	id     string
	native platform.TextInput
	cfg    Config
	engine *animation.Engine
	clock  animation.Clock
	logger *log.Logger
	handle *Handle

	value         string
	measuredWidth float64
	disposed      bool
}

// New mounts a field on native and installs itself as the primitive's client.
// A non-empty cfg.Value starts with the label floated, with no transition.
func New(native platform.TextInput, cfg Config, opts ...Option) *Input {
	in := &Input{native: native}
	for _, opt := range opts {
		opt(in)
	}
	if in.id == "" {
		in.id = uuid.NewString()
	}
	if in.logger == nil {
		in.logger = log.New(io.Discard)
	}
	in.logger = in.logger.With("field", in.id)

	in.cfg = cfg.WithDefaults()
	in.value = platform.TruncateRunes(in.cfg.Value, in.cfg.CharacterCount)

	label := 0.0
	if in.value != "" {
		label = 1
	}
	in.engine = animation.NewEngine(in.clock, label, in.colorTarget(native.IsFocused()))
	in.engine.SetCurve(in.cfg.Curve)
	in.handle = &Handle{in: in}

	native.SetClient(in)
	native.UpdateConfig(in.nativeConfig())
	native.SetText(in.value)
	return in
}

// ID returns the field's instance ID.
func (in *Input) ID() string { return in.id }

// Handle returns the imperative handle built at construction.
func (in *Input) Handle() *Handle { return in.handle }

// Config returns the current configuration with defaults applied.
func (in *Input) Config() Config { return in.cfg }

// Value returns the current text.
func (in *Input) Value() string { return in.value }

// Focused reports the native primitive's live focus state.
func (in *Input) Focused() bool {
	if in.disposed {
		return false
	}
	return in.native.IsFocused()
}

// ErrorActive reports whether an error message is configured.
func (in *Input) ErrorActive() bool { return in.cfg.ErrorActive() }

// MeasuredLabelWidth returns the last measured label width, 0 before the
// first layout event.
func (in *Input) MeasuredLabelWidth() float64 { return in.measuredWidth }

// Frame samples the channels now.
func (in *Input) Frame() animation.Frame { return in.engine.Snapshot() }

// Targets returns the channel targets.
func (in *Input) Targets() animation.Frame { return in.engine.Targets() }

// State returns the input state the composer reads.
func (in *Input) State() State {
	return State{Value: in.value, Focused: in.Focused(), ErrorActive: in.ErrorActive()}
}

// Style composes the visual description of the current frame.
func (in *Input) Style() Style {
	return Compose(in.cfg, in.Frame(), in.State())
}

// Step advances channel listeners and reports whether a transition is running.
func (in *Input) Step() bool { return in.engine.Step() }

// IsAnimating reports whether a transition is running.
func (in *Input) IsAnimating() bool { return in.engine.IsAnimating() }

// Engine exposes the channels, for hosts that subscribe to push updates.
func (in *Input) Engine() *animation.Engine { return in.engine }

// OnFocusChanged implements platform.TextInputClient.
func (in *Input) OnFocusChanged(focused bool) {
	if focused {
		in.focusAcquired()
	} else {
		in.focusLost()
	}
}

// OnTextChanged implements platform.TextInputClient. Text past CharacterCount
// is cut and the cut text is written back to the primitive.
func (in *Input) OnTextChanged(text string) {
	if in.disposed {
		return
	}
	accepted := platform.TruncateRunes(text, in.cfg.CharacterCount)
	if accepted != text {
		in.native.SetText(accepted)
	}
	in.value = accepted
	in.notifyChange(accepted)
}

// OnLabelLayout feeds a label measurement back into the width channel.
// Unusable widths are reported and ignored, keeping the previous width.
func (in *Input) OnLabelLayout(ev layout.LayoutEvent) {
	if in.disposed {
		return
	}
	w := layout.SanitizeWidth(ev.Width)
	if w != ev.Width {
		errors.Report(&errors.FieldError{
			Op:    "floatinput.OnLabelLayout",
			Kind:  errors.KindLayout,
			Field: in.id,
			Err:   fmt.Errorf("unusable label width %v", ev.Width),
		})
		return
	}
	if w == in.measuredWidth {
		return
	}
	in.measuredWidth = w
	in.engine.Width.Jump(w)
	in.logger.Debug("label measured", "width", w)
}

// Update replaces the configuration. A changed Value resyncs the text
// (outside writes win over local edits); a toggled error retargets the color
// channel only.
func (in *Input) Update(cfg Config) {
	if in.disposed {
		return
	}
	prev := in.cfg
	in.cfg = cfg.WithDefaults()
	in.engine.SetCurve(in.cfg.Curve)

	focused := in.native.IsFocused()
	if in.cfg.Value != prev.Value {
		in.value = platform.TruncateRunes(in.cfg.Value, in.cfg.CharacterCount)
		in.native.SetText(in.value)
		in.engine.Label.SetTarget(in.labelTarget(focused), in.cfg.transitionDuration())
	}
	if in.cfg.ErrorActive() != prev.ErrorActive() {
		in.engine.Color.SetTarget(in.colorTarget(focused), in.cfg.colorDuration())
		in.logger.Debug("error toggled", "active", in.cfg.ErrorActive())
	}
	if in.cfg.CharacterCount > 0 && in.cfg.CharacterCount != prev.CharacterCount {
		if cut := platform.TruncateRunes(in.value, in.cfg.CharacterCount); cut != in.value {
			in.value = cut
			in.native.SetText(cut)
		}
	}
	in.native.UpdateConfig(in.nativeConfig())
}

// Dispose detaches the field from its primitive and releases the channels.
// The handle and every event method become no-ops.
func (in *Input) Dispose() {
	if in.disposed {
		return
	}
	in.native.SetClient(nil)
	in.engine.Dispose()
	in.disposed = true
	in.native = nil
	in.cfg.OnChangeText = nil
}

func (in *Input) focusAcquired() {
	if in.disposed {
		return
	}
	in.engine.Label.SetTarget(1, in.cfg.transitionDuration())
	in.engine.Color.SetTarget(in.colorTarget(true), in.cfg.colorDuration())
	in.native.UpdateConfig(in.nativeConfigFocused(true))
	in.logger.Debug("focus acquired")
}

func (in *Input) focusLost() {
	if in.disposed {
		return
	}
	if in.value == "" {
		in.engine.Label.SetTarget(0, in.cfg.transitionDuration())
	}
	in.engine.Color.SetTarget(in.colorTarget(false), in.cfg.colorDuration())
	in.native.UpdateConfig(in.nativeConfigFocused(false))
	in.logger.Debug("focus lost", "empty", in.value == "")
}

func (in *Input) clear() {
	if in.disposed {
		return
	}
	in.native.Clear()
	in.value = ""
}

func (in *Input) notifyChange(text string) {
	cb := in.cfg.OnChangeText
	if cb == nil {
		return
	}
	defer errors.Recover("floatinput.OnChangeText", in.id)
	cb(text)
}

func (in *Input) labelTarget(focused bool) float64 {
	if focused || in.value != "" {
		return 1
	}
	return 0
}

func (in *Input) colorTarget(focused bool) float64 {
	switch {
	case in.cfg.ErrorActive():
		return animation.ColorError
	case focused:
		return animation.ColorActive
	default:
		return animation.ColorInactive
	}
}

func (in *Input) nativeConfig() platform.TextInputConfig {
	return in.nativeConfigFocused(in.native.IsFocused())
}

func (in *Input) nativeConfigFocused(focused bool) platform.TextInputConfig {
	selection := in.cfg.ActiveColor
	if in.cfg.ErrorActive() {
		selection = in.cfg.ErrorColor
	}
	return platform.TextInputConfig{
		FontFamily:     in.cfg.FontFamily,
		FontSize:       in.cfg.FontSize,
		TextColor:      in.cfg.FontColor,
		SelectionColor: selection,
		MaxLength:      in.cfg.CharacterCount,
		Editable:       focused,
		Extra:          maps.Clone(in.cfg.InputProps),
	}
}
