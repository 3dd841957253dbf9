package testing

import (
	"testing"
	"time"

	"github.com/go-drift/floatlabel/pkg/errors"
	"github.com/go-drift/floatlabel/pkg/floatinput"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	clk.Advance(-time.Second)

	if elapsed := clk.Now().Sub(start); elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
	if clk.Elapsed() != 100*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 100ms", clk.Elapsed())
	}
	if !start.Equal(Epoch) {
		t.Errorf("clock should start at Epoch, got %v", start)
	}
}

func TestFieldTester_PumpAndSettle(t *testing.T) {
	ft := NewFieldTester(t, floatinput.Config{Placeholder: "Name"})

	ft.Tap()
	mid := ft.Pump(150 * time.Millisecond)
	if mid.LabelProgress <= 0 || mid.LabelProgress >= 1 {
		t.Errorf("mid-transition LabelProgress = %v, want strictly between 0 and 1", mid.LabelProgress)
	}

	final := ft.PumpAndSettle()
	if final.LabelProgress != 1 {
		t.Errorf("settled LabelProgress = %v, want 1", final.LabelProgress)
	}
	if final.ColorState != 1 {
		t.Errorf("settled ColorState = %v, want 1", final.ColorState)
	}
	if ft.Frames() < 2 {
		t.Errorf("Frames() = %d, want at least 2", ft.Frames())
	}
}

func TestFieldTester_TypeReachesField(t *testing.T) {
	var got []string
	ft := NewFieldTester(t, floatinput.Config{OnChangeText: func(s string) { got = append(got, s) }})

	ft.Tap()
	ft.Type("a")
	ft.Type("b")
	ft.Paste("xyz")

	if ft.Field().Value() != "xyz" {
		t.Errorf("Value() = %q, want %q", ft.Field().Value(), "xyz")
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "ab" || got[2] != "xyz" {
		t.Errorf("callbacks = %q", got)
	}
}

func TestRecordErrors(t *testing.T) {
	rec := RecordErrors(t)
	ft := NewFieldTester(t, floatinput.Config{})

	ft.LayoutLabel(-4)

	if n := len(rec.ErrorsOfKind(errors.KindLayout)); n != 1 {
		t.Fatalf("layout errors = %d, want 1", n)
	}
	if rec.Errors()[0].Field != "test-field" {
		t.Errorf("Field = %q, want %q", rec.Errors()[0].Field, "test-field")
	}
	if len(rec.Panics()) != 0 {
		t.Errorf("unexpected panics: %v", rec.Panics())
	}
}
