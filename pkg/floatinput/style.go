package floatinput

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-drift/floatlabel/pkg/animation"
	"github.com/go-drift/floatlabel/pkg/graphics"
	"github.com/go-drift/floatlabel/pkg/layout"
)

// helperGap separates helper texts from the container's bottom edge.
const helperGap = 7

// State is the part of the field's input state the composer reads.
type State struct {
	Value       string
	Focused     bool
	ErrorActive bool
}

// ContainerStyle describes the field's outer box.
type ContainerStyle struct {
	BorderColor       graphics.Color
	BackgroundColor   graphics.Color
	BorderWidth       float64
	BorderBottomWidth float64
	BorderRadius      float64
}

// InputStyle is the styling handed to the native primitive's region.
type InputStyle struct {
	Padding        layout.EdgeInsets
	Text           graphics.TextStyle
	SelectionColor graphics.Color
	// Editable is true only while focused; taps on a blurred field land on the
	// container, which focuses it.
	Editable  bool
	MaxLength int
}

// Transform is the label's animated transform, applied in order
// translateY, scale, translateX.
type Transform struct {
	TranslateY float64
	Scale      float64
	TranslateX float64
}

// LabelStyle positions the floating label.
type LabelStyle struct {
	Text      string
	Left      float64
	Top       float64
	Transform Transform
	Style     graphics.TextStyle
	// Floated is true once the label is at least halfway to the up position.
	// Hosts that cannot draw fractional transforms switch on it.
	Floated bool
}

// SpacerStyle is the background-colored notch behind the floated label.
type SpacerStyle struct {
	Left    float64
	Top     float64
	Width   float64
	Height  float64
	Color   graphics.Color
	Visible bool
}

// IconStyle positions the trailing decoration.
type IconStyle struct {
	Icon  any
	Right float64
}

// TextRegion is a helper text below the container (error, assistive, or
// counter). Bottom is negative: the region hangs below the container.
type TextRegion struct {
	Text        string
	Style       graphics.TextStyle
	Left        float64
	Right       float64
	AnchorRight bool
	Bottom      float64
}

// Style is the finished visual description of one frame.
type Style struct {
	Variant       Variant
	Container     ContainerStyle
	Input         InputStyle
	Label         LabelStyle
	Spacer        SpacerStyle
	TrailingIcon  *IconStyle
	Counter       *TextRegion
	Error         *TextRegion
	Assistive     *TextRegion
	LabelGeometry LabelGeometry
	ChannelFrame  animation.Frame
}

// Compose builds the visual description for one frame. It is a pure function of
// its inputs; caller overrides are applied last and win over computed values.
func Compose(cfg Config, f animation.Frame, st State) Style {
	g := Geometry(cfg, f)
	standard := cfg.Variant == VariantStandard

	s := Style{
		Variant:       cfg.Variant,
		LabelGeometry: g,
		ChannelFrame:  f,
	}

	s.Container = ContainerStyle{
		BorderColor:     g.BorderColor,
		BackgroundColor: cfg.BackgroundColor,
	}
	if standard {
		s.Container.BorderBottomWidth = 1
	} else {
		s.Container.BorderWidth = 1
		s.Container.BorderRadius = 5
	}

	vertical := cfg.PaddingVertical
	if cfg.Platform == PlatformAndroid {
		vertical = max(vertical-8, 0)
	}
	padding := layout.EdgeInsets{Top: vertical, Bottom: vertical, Right: cfg.PaddingHorizontal}
	if !standard {
		padding.Left = cfg.PaddingHorizontal
	}

	selection := cfg.ActiveColor
	if st.ErrorActive {
		selection = cfg.ErrorColor
	}
	s.Input = InputStyle{
		Padding: padding,
		Text: graphics.TextStyle{
			Color:      cfg.FontColor,
			FontFamily: cfg.FontFamily,
			FontSize:   cfg.FontSize,
		},
		SelectionColor: selection,
		Editable:       st.Focused,
		MaxLength:      cfg.CharacterCount,
	}

	anchor := cfg.PaddingHorizontal
	if standard {
		anchor = 0
	}
	s.Label = LabelStyle{
		Text: cfg.Placeholder,
		Left: anchor,
		Top:  cfg.PaddingVertical,
		Transform: Transform{
			TranslateY: g.TranslateY,
			Scale:      g.Scale,
			TranslateX: g.TranslateX,
		},
		Style: graphics.TextStyle{
			Color:      g.LabelColor,
			FontFamily: cfg.FontFamily,
			FontSize:   cfg.FontSize,
		},
		Floated: f.LabelProgress >= 0.5,
	}

	spacerColor := graphics.ColorWhite
	if cfg.Theme != nil {
		spacerColor = cfg.Theme.SpacerColor
	}
	s.Spacer = SpacerStyle{
		Left:    cfg.PaddingHorizontal - 3,
		Top:     -1,
		Width:   g.SpacerWidth,
		Height:  1,
		Color:   spacerColor,
		Visible: !standard,
	}

	if cfg.TrailingIcon != nil {
		s.TrailingIcon = &IconStyle{Icon: cfg.TrailingIcon, Right: cfg.PaddingHorizontal}
	}

	if cfg.CharacterCount > 0 {
		color := cfg.CharacterCountColor
		if st.ErrorActive {
			color = cfg.ErrorColor
		}
		s.Counter = &TextRegion{
			Text:        fmt.Sprintf("%d / %d", utf8.RuneCountInString(st.Value), cfg.CharacterCount),
			Style:       graphics.TextStyle{Color: color, FontSize: cfg.CharacterCountFontSize, FontFamily: cfg.FontFamily},
			Right:       cfg.PaddingHorizontal,
			AnchorRight: true,
			Bottom:      -cfg.CharacterCountFontSize - helperGap,
		}
		applyText(s.Counter, cfg.CounterTextStyle)
	}

	switch {
	case st.ErrorActive:
		s.Error = &TextRegion{
			Text:   cfg.Error,
			Style:  graphics.TextStyle{Color: cfg.ErrorColor, FontSize: cfg.ErrorFontSize, FontFamily: cfg.FontFamily},
			Left:   anchor,
			Bottom: -cfg.ErrorFontSize - helperGap,
		}
		applyText(s.Error, cfg.ErrorStyle)
	case cfg.AssistiveText != "":
		s.Assistive = &TextRegion{
			Text:   cfg.AssistiveText,
			Style:  graphics.TextStyle{Color: cfg.AssistiveTextColor, FontSize: cfg.AssistiveTextFontSize, FontFamily: cfg.FontFamily},
			Left:   cfg.PaddingHorizontal,
			Bottom: -cfg.AssistiveTextFontSize - helperGap,
		}
		applyText(s.Assistive, cfg.AssistiveTextStyle)
	}

	applyContainer(&s.Container, cfg.Style)
	return s
}

func applyText(r *TextRegion, o *TextOverride) {
	if o == nil {
		return
	}
	if o.Color != nil {
		r.Style.Color = *o.Color
	}
	if o.FontSize != nil {
		r.Style.FontSize = *o.FontSize
	}
	if o.FontFamily != nil {
		r.Style.FontFamily = *o.FontFamily
	}
	if o.Left != nil {
		r.Left = *o.Left
		r.AnchorRight = false
	}
	if o.Right != nil {
		r.Right = *o.Right
		r.AnchorRight = true
	}
	if o.Bottom != nil {
		r.Bottom = *o.Bottom
	}
}

func applyContainer(c *ContainerStyle, o *ContainerOverride) {
	if o == nil {
		return
	}
	if o.BorderColor != nil {
		c.BorderColor = *o.BorderColor
	}
	if o.BackgroundColor != nil {
		c.BackgroundColor = *o.BackgroundColor
	}
	if o.BorderWidth != nil {
		c.BorderWidth = *o.BorderWidth
	}
	if o.BorderBottomWidth != nil {
		c.BorderBottomWidth = *o.BorderBottomWidth
	}
	if o.BorderRadius != nil {
		c.BorderRadius = *o.BorderRadius
	}
}
