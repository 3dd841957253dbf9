package graphics

// TextStyle describes how a run of text should be rendered.
type TextStyle struct {
	Color      Color
	FontFamily string
	FontSize   float64
}

