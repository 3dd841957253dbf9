package termhost

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/floatlabel/pkg/floatinput"
	fltest "github.com/go-drift/floatlabel/pkg/testing"
)

func newTestField(t *testing.T, name string, cfg floatinput.Config) (*Field, *fltest.FakeClock) {
	t.Helper()
	clock := fltest.NewFakeClock()
	f := NewField(name, cfg, floatinput.WithClock(clock), floatinput.WithID(name))
	t.Cleanup(f.Dispose)
	return f, clock
}

// settle runs frames until the field stops asking for them.
func settle(t *testing.T, f *Field, clock *fltest.FakeClock) {
	t.Helper()
	for range 100 {
		clock.Advance(FrameInterval)
		_, cmd := f.Update(frameMsg{id: f.Input().ID()})
		if cmd == nil {
			return
		}
	}
	t.Fatal("field never settled")
}

func TestFieldInitMeasuresLabel(t *testing.T) {
	f, _ := newTestField(t, "email", floatinput.Config{Placeholder: "Email"})

	cmd := f.Init()
	require.NotNil(t, cmd)
	msg := cmd()
	layoutMsg, ok := msg.(labelLayoutMsg)
	require.True(t, ok, "Init should produce a label layout message, got %T", msg)
	assert.Equal(t, float64(5), layoutMsg.width)

	f.Update(layoutMsg)
	assert.Equal(t, float64(5), f.Input().MeasuredLabelWidth())
}

func TestFieldIgnoresOtherFieldsMessages(t *testing.T) {
	f, _ := newTestField(t, "a", floatinput.Config{})

	f.Update(labelLayoutMsg{id: "b", width: 9})
	assert.Zero(t, f.Input().MeasuredLabelWidth())
}

func TestFieldFocusSchedulesFrames(t *testing.T) {
	f, clock := newTestField(t, "name", floatinput.Config{Placeholder: "Name"})

	cmd := f.Focus()
	require.NotNil(t, cmd, "focus should schedule an animation frame")
	assert.True(t, f.Focused())
	assert.True(t, f.Input().IsAnimating())

	settle(t, f, clock)
	assert.Equal(t, 1.0, f.Input().Frame().LabelProgress)
	assert.False(t, f.Input().IsAnimating())
}

func TestFieldTypingReachesCallback(t *testing.T) {
	var got string
	f, _ := newTestField(t, "name", floatinput.Config{OnChangeText: func(s string) { got = s }})

	f.Focus()
	f.Update(keys("ab"))

	assert.Equal(t, "ab", got)
	assert.Equal(t, "ab", f.Value())
}

func TestFieldViewOutlined(t *testing.T) {
	f, clock := newTestField(t, "email", floatinput.Config{Placeholder: "Email", AssistiveText: "work address"})
	f.SetWidth(30)

	view := f.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 4)
	assert.NotContains(t, lines[0], "Email", "resting label belongs inside the box")
	assert.Contains(t, lines[1], "Email")
	assert.Contains(t, lines[3], "work address")

	f.Update(f.Init()())
	f.Focus()
	settle(t, f, clock)

	lines = strings.Split(f.View(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "╭─ Email ─"), "floated label should sit in the top border: %q", lines[0])
	for _, line := range lines[:3] {
		assert.Equal(t, 30, len([]rune(line)), "line %q", line)
	}
}

func TestFieldViewStandard(t *testing.T) {
	f, clock := newTestField(t, "city", floatinput.Config{Placeholder: "City", Variant: floatinput.VariantStandard})
	f.SetWidth(20)
	f.Focus()
	settle(t, f, clock)

	lines := strings.Split(f.View(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "City", strings.TrimSpace(lines[0]))
	assert.Equal(t, strings.Repeat("─", 20), lines[2])
}

func TestFieldSetErrorAnimatesColorOnly(t *testing.T) {
	f, clock := newTestField(t, "email", floatinput.Config{Placeholder: "Email", CharacterCount: 10})
	f.Focus()
	settle(t, f, clock)

	cmd := f.SetError("required")
	require.NotNil(t, cmd)
	assert.False(t, f.Input().Engine().Label.IsAnimating())
	assert.True(t, f.Input().Engine().Color.IsAnimating())
	assert.Nil(t, f.SetError("required"), "same error should be a no-op")

	view := f.View()
	assert.Contains(t, view, "required")
	assert.Contains(t, view, "0 / 10")
}

// layoutMsgs runs cmd and collects the label layout messages it produces.
func layoutMsgs(cmd tea.Cmd) []labelLayoutMsg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case labelLayoutMsg:
		return []labelLayoutMsg{msg}
	case tea.BatchMsg:
		var out []labelLayoutMsg
		for _, c := range msg {
			out = append(out, layoutMsgs(c)...)
		}
		return out
	default:
		return nil
	}
}

func TestFieldSetConfigRemeasuresLabel(t *testing.T) {
	f, _ := newTestField(t, "email", floatinput.Config{Placeholder: "Email"})
	f.Update(layoutMsgs(f.Init())[0])
	require.Equal(t, float64(5), f.Input().MeasuredLabelWidth())

	cfg := f.Input().Config()
	cfg.Placeholder = "Email address"
	msgs := layoutMsgs(f.SetConfig(cfg))
	require.Len(t, msgs, 1)
	assert.Equal(t, float64(13), msgs[0].width)

	f.Update(msgs[0])
	assert.Equal(t, float64(13), f.Input().MeasuredLabelWidth())
}

func TestFieldSetConfigFontChangeRemeasures(t *testing.T) {
	f, _ := newTestField(t, "email", floatinput.Config{Placeholder: "Email"})

	cfg := f.Input().Config()
	cfg.FontSize = cfg.FontSize * 2
	assert.Len(t, layoutMsgs(f.SetConfig(cfg)), 1)
}

func TestFieldSetConfigKeepsMeasurementWhenLabelUnchanged(t *testing.T) {
	f, _ := newTestField(t, "email", floatinput.Config{Placeholder: "Email"})

	cfg := f.Input().Config()
	cfg.AssistiveText = "We never share it"
	assert.Empty(t, layoutMsgs(f.SetConfig(cfg)))
	assert.Nil(t, f.SetError(""), "clearing an absent error is a no-op")
}

func TestFieldCheck(t *testing.T) {
	f, _ := newTestField(t, "name", floatinput.Config{})
	f.Validate = func(v string) string {
		if v == "" {
			return "required"
		}
		return ""
	}

	ok, _ := f.Check()
	assert.False(t, ok)
	assert.Equal(t, "required", f.Input().Config().Error)

	f.Focus()
	f.Update(keys("Ada"))
	ok, _ = f.Check()
	assert.True(t, ok)
	assert.Empty(t, f.Input().Config().Error)
}

func TestFieldWindowSize(t *testing.T) {
	f, _ := newTestField(t, "name", floatinput.Config{})
	f.Update(tea.WindowSizeMsg{Width: 3, Height: 10})

	lines := strings.Split(f.View(), "\n")
	assert.Equal(t, MinWidth, len([]rune(lines[0])))
}

func TestFrameIntervalIsPositive(t *testing.T) {
	assert.Greater(t, FrameInterval, time.Duration(0))
}
