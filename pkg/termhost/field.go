package termhost

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/floatlabel/pkg/errors"
	"github.com/go-drift/floatlabel/pkg/floatinput"
	"github.com/go-drift/floatlabel/pkg/layout"
)

// FrameInterval is the delay between animation frames.
const FrameInterval = time.Second / 60

// DefaultWidth is the field width before a WindowSizeMsg arrives.
const DefaultWidth = 40

// frameMsg asks a field to sample its channels.
type frameMsg struct {
	id string
}

// labelLayoutMsg carries the label width measured after the first paint.
type labelLayoutMsg struct {
	id    string
	width float64
}

// Field is a bubbletea model hosting one floating-label field.
type Field struct {
	// Name identifies the field in a Form.
	Name string
	// Validate computes the error shown for a value. Empty means valid.
	Validate func(value string) string

	input    *floatinput.Input
	native   *TextInputAdapter
	measurer layout.Measurer
	width    int
	ticking  bool
}

// NewField mounts a field on a fresh TextInputAdapter. Options are passed to
// floatinput.New.
func NewField(name string, cfg floatinput.Config, opts ...floatinput.Option) *Field {
	native := NewTextInputAdapter()
	f := &Field{
		Name:     name,
		native:   native,
		measurer: CellMeasurer{},
		width:    DefaultWidth,
	}
	f.input = floatinput.New(native, cfg, opts...)
	f.resize()
	return f
}

// Input returns the hosted field.
func (f *Field) Input() *floatinput.Input { return f.input }

// Value returns the field's current text.
func (f *Field) Value() string { return f.input.Value() }

// Init implements tea.Model. The label is measured once the first frame has
// been painted.
func (f *Field) Init() tea.Cmd {
	return f.measureLabel()
}

// Update implements tea.Model.
func (f *Field) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.id != f.input.ID() {
			return f, nil
		}
		f.ticking = false
		if f.input.Step() {
			return f, f.tick()
		}
		return f, nil
	case labelLayoutMsg:
		if msg.id != f.input.ID() {
			return f, nil
		}
		f.input.OnLabelLayout(layout.LayoutEvent{Width: msg.width, Height: 1})
		return f, nil
	case tea.WindowSizeMsg:
		f.SetWidth(msg.Width)
		return f, nil
	}

	cmd := f.native.HandleMsg(msg)
	return f, tea.Batch(cmd, f.native.TakeCmd(), f.tick())
}

// View implements tea.Model.
func (f *Field) View() string {
	return Render(f.input.Style(), f.native.View(), f.width)
}

// Focus focuses the field through its imperative handle.
func (f *Field) Focus() tea.Cmd {
	f.input.Handle().Focus()
	return tea.Batch(f.native.TakeCmd(), f.tick())
}

// Blur blurs the field through its imperative handle.
func (f *Field) Blur() tea.Cmd {
	f.input.Handle().Blur()
	return f.tick()
}

// Clear empties the field through its imperative handle.
func (f *Field) Clear() {
	f.input.Handle().Clear()
}

// Focused reports the live focus state.
func (f *Field) Focused() bool {
	return f.input.Handle().IsFocused()
}

// SetConfig replaces the hosted field's configuration. The label is measured
// again when its text or font changes.
func (f *Field) SetConfig(cfg floatinput.Config) tea.Cmd {
	prev := f.input.Config()
	f.input.Update(cfg)
	next := f.input.Config()
	f.resize()

	var measure tea.Cmd
	if next.Placeholder != prev.Placeholder || next.FontSize != prev.FontSize || next.FontFamily != prev.FontFamily {
		measure = f.measureLabel()
	}
	return tea.Batch(measure, f.tick())
}

// SetError shows or clears a validation error.
func (f *Field) SetError(msg string) tea.Cmd {
	cfg := f.input.Config()
	if cfg.Error == msg {
		return nil
	}
	cfg.Error = msg
	return f.SetConfig(cfg)
}

// Check runs the field's validator, shows its result and reports whether
// the value is valid.
func (f *Field) Check() (bool, tea.Cmd) {
	if f.Validate == nil {
		return true, nil
	}
	msg := f.Validate(f.Value())
	return msg == "", f.SetError(msg)
}

// SetWidth sets the rendered width in cells.
func (f *Field) SetWidth(cells int) {
	f.width = max(cells, MinWidth)
	f.resize()
}

// Dispose releases the hosted field.
func (f *Field) Dispose() {
	f.input.Dispose()
}

func (f *Field) resize() {
	inner := f.width - 4
	if f.input.Config().Variant == floatinput.VariantStandard {
		inner = f.width - 1
	}
	if f.input.Config().TrailingIcon != nil {
		inner -= 2
	}
	// One cell stays free for the cursor at the end of the text.
	f.native.SetWidth(inner - 1)
}

// tick schedules one animation frame while a transition runs.
func (f *Field) tick() tea.Cmd {
	if f.ticking || !f.input.IsAnimating() {
		return nil
	}
	f.ticking = true
	id := f.input.ID()
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}

func (f *Field) measureLabel() tea.Cmd {
	id := f.input.ID()
	cfg := f.input.Config()
	text := cfg.Placeholder
	style := f.input.Style().Label.Style
	measurer := f.measurer
	return func() tea.Msg {
		size, err := measurer.MeasureText(text, style)
		if err != nil {
			errors.Report(errors.New("termhost.measureLabel", errors.KindLayout, err))
			return nil
		}
		return labelLayoutMsg{id: id, width: size.Width}
	}
}
