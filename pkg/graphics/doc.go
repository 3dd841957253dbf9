// Package graphics provides the color and text style primitives shared by the
// animation engine and the style composer.
//
// Colors are packed ARGB values. [InterpolateColor] blends across an ordered
// list of stops with a fractional index, which is how the field's label and
// border colors follow the color channel through a transition.
package graphics
