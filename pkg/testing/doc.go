// Package testing provides a harness for floating-label field tests.
//
// # Quick Start
//
//	func TestEmailField(t *testing.T) {
//	    ft := fltest.NewFieldTester(t, floatinput.Config{Placeholder: "Email"})
//	    ft.LayoutLabel(40)
//
//	    ft.Tap()
//	    ft.PumpAndSettle()
//
//	    if got := ft.Field().Frame().LabelProgress; got != 1 {
//	        t.Errorf("LabelProgress = %v, want 1", got)
//	    }
//	}
//
// # Animation Testing
//
// Fields built by the tester read a [FakeClock], so transitions advance only
// when the test says so:
//
//	ft.Pump(150 * time.Millisecond) // halfway through the default transition
//
// # Error Reporting
//
// [RecordErrors] swaps the global error handler for the duration of a test
// and keeps every reported error and recovered panic.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import fltest "github.com/go-drift/floatlabel/pkg/testing"
package testing
