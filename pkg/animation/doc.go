// Package animation provides the timed, interpolatable channels that drive a
// floating-label text field.
//
// # Core Components
//
//   - [Channel]: one animatable scalar. SetTarget starts a transition from the
//     instantaneous value; a later SetTarget overrides it (last write wins).
//     Value is computed on demand from the channel's [Clock].
//
//   - [Engine]: the three channels owned by a single field: label progress,
//     color state, and the label width mirror.
//
//   - [Curve]: easing functions, including [CubicBezier] and the
//     harmonica-backed [SpringCurve].
//
// # Basic Usage
//
//	engine := animation.NewEngine(animation.SystemClock{}, 0, animation.ColorInactive)
//	engine.Label.SetTarget(1, animation.DefaultDuration)
//
//	// Each frame
//	running := engine.Step()
//	frame := engine.Snapshot()
//
// There is no global ticker registry; a host decides when to sample. Engines
// are not safe for concurrent use.
package animation
