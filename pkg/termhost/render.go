package termhost

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/go-drift/floatlabel/pkg/floatinput"
	"github.com/go-drift/floatlabel/pkg/graphics"
)

// MinWidth is the narrowest field the renderer lays out.
const MinWidth = 12

// Render draws a composed field style into width cells. input is the rendered
// text input (text and cursor). Outlined fields splice the floated label into
// the top border; standard fields put it on its own row above an underline.
func Render(s floatinput.Style, input string, width int) string {
	width = max(width, MinWidth)
	var rows []string
	if s.Variant == floatinput.VariantStandard {
		rows = renderStandard(s, input, width)
	} else {
		rows = renderOutlined(s, input, width)
	}
	if helper := renderHelpers(s, width); helper != "" {
		rows = append(rows, helper)
	}
	return strings.Join(rows, "\n")
}

func renderOutlined(s floatinput.Style, input string, width int) []string {
	b := lipgloss.RoundedBorder()
	border := fg(s.Container.BorderColor)
	inner := width - 4

	top := border.Render(b.TopLeft + b.Top)
	used := 1
	if s.Label.Floated && s.Spacer.Visible {
		label := fit(s.Label.Text, inner-2)
		top += " " + fg(s.Label.Style.Color).Render(label) + " "
		used += lipgloss.Width(label) + 2
	}
	top += border.Render(strings.Repeat(b.Top, max(width-2-used, 0)) + b.TopRight)

	body := border.Render(b.Left) + " " + cell(bodyContent(s, input, inner), inner) + " " + border.Render(b.Right)
	if s.TrailingIcon != nil {
		body = border.Render(b.Left) + " " + cell(bodyContent(s, input, inner-2), inner-2) + " " + iconText(s.TrailingIcon) + " " + border.Render(b.Right)
	}

	bottom := border.Render(b.BottomLeft + strings.Repeat(b.Bottom, width-2) + b.BottomRight)
	return []string{top, body, bottom}
}

func renderStandard(s floatinput.Style, input string, width int) []string {
	b := lipgloss.NormalBorder()
	label := ""
	if s.Label.Floated {
		label = fg(s.Label.Style.Color).Render(fit(s.Label.Text, width))
	}
	inner := width - 1
	body := cell(bodyContent(s, input, inner), inner)
	if s.TrailingIcon != nil {
		body = cell(bodyContent(s, input, inner-2), inner-2) + " " + iconText(s.TrailingIcon)
	}
	underline := fg(s.Container.BorderColor).Render(strings.Repeat(b.Bottom, width))
	return []string{cell(label, width), body, underline}
}

// bodyContent is the inline label while it rests in the input, otherwise the
// text input itself.
func bodyContent(s floatinput.Style, input string, width int) string {
	if !s.Label.Floated {
		return fg(s.Label.Style.Color).Render(fit(s.Label.Text, width))
	}
	return input
}

func renderHelpers(s floatinput.Style, width int) string {
	var left, right string
	var leftWidth, rightWidth int
	switch {
	case s.Error != nil:
		left = fg(s.Error.Style.Color).Render(fit(s.Error.Text, width))
	case s.Assistive != nil:
		left = fg(s.Assistive.Style.Color).Render(fit(s.Assistive.Text, width))
	}
	if s.Counter != nil {
		right = fg(s.Counter.Style.Color).Render(s.Counter.Text)
	}
	if left == "" && right == "" {
		return ""
	}
	indent := 1
	if s.Variant == floatinput.VariantStandard {
		indent = 0
	}
	leftWidth = lipgloss.Width(left) + indent
	rightWidth = lipgloss.Width(right) + 1
	gap := max(width-leftWidth-rightWidth, 1)
	return strings.Repeat(" ", indent) + left + strings.Repeat(" ", gap) + right
}

func iconText(icon *floatinput.IconStyle) string {
	if text, ok := icon.Icon.(string); ok {
		return cell(text, 1)
	}
	return "•"
}

// cell pads or truncates s to exactly width cells.
func cell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	return s + strings.Repeat(" ", max(width-ansi.StringWidth(s), 0))
}

// fit truncates plain text to width cells, marking the cut with an ellipsis.
func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "…")
}

func fg(c graphics.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(termColor(c))
}
