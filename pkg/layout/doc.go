// Package layout carries the geometry types and the label measurement feedback
// used by the text field.
//
// A label's rendered width is unknown until the host lays it out. Hosts report
// it with a [LayoutEvent]; hosts without a text engine synthesize one with a
// [Measurer] such as [FontMeasurer].
package layout
