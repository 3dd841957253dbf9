// Package termhost hosts floating-label fields in a terminal with bubbletea.
//
// [TextInputAdapter] plays the native text primitive on top of a bubbles text
// input. [Field] wraps one field as a tea.Model: it forwards key input,
// schedules animation frames with tea.Tick while a transition runs, measures
// the label after the first paint and renders the composed style with
// lipgloss. [Form] stacks fields with tab and shift+tab traversal.
//
// Terminal geometry is coarse, so the renderer switches on Style.Label.Floated
// rather than drawing fractional transforms. Colors still blend smoothly.
package termhost
