package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/floatlabel/pkg/floatinput"
	"github.com/go-drift/floatlabel/pkg/layout"
	"github.com/go-drift/floatlabel/pkg/platform"
)

type describeFlags struct {
	field    string
	focused  bool
	value    string
	hasValue bool
	err      string
	progress float64
	variant  string
}

// styleDoc is the YAML shape printed by describe.
type styleDoc struct {
	Field     string     `yaml:"field"`
	Variant   string     `yaml:"variant"`
	State     stateDoc   `yaml:"state"`
	Channels  channelDoc `yaml:"channels"`
	Container borderDoc  `yaml:"container"`
	Label     labelDoc   `yaml:"label"`
	Spacer    *spacerDoc `yaml:"spacer,omitempty"`
	Counter   *helperDoc `yaml:"counter,omitempty"`
	Error     *helperDoc `yaml:"error,omitempty"`
	Assistive *helperDoc `yaml:"assistive,omitempty"`
	Input     inputDoc   `yaml:"input"`
}

type stateDoc struct {
	Value   string `yaml:"value"`
	Focused bool   `yaml:"focused"`
	Error   bool   `yaml:"error"`
}

type channelDoc struct {
	LabelProgress float64 `yaml:"label_progress"`
	ColorState    float64 `yaml:"color_state"`
	LabelWidth    float64 `yaml:"label_width"`
}

type borderDoc struct {
	BorderColor       string  `yaml:"border_color"`
	BackgroundColor   string  `yaml:"background_color"`
	BorderWidth       float64 `yaml:"border_width"`
	BorderBottomWidth float64 `yaml:"border_bottom_width"`
	BorderRadius      float64 `yaml:"border_radius"`
}

type labelDoc struct {
	Text       string  `yaml:"text"`
	Color      string  `yaml:"color"`
	Floated    bool    `yaml:"floated"`
	TranslateY float64 `yaml:"translate_y"`
	Scale      float64 `yaml:"scale"`
	TranslateX float64 `yaml:"translate_x"`
}

type spacerDoc struct {
	Left  float64 `yaml:"left"`
	Width float64 `yaml:"width"`
	Color string  `yaml:"color"`
}

type helperDoc struct {
	Text   string  `yaml:"text"`
	Color  string  `yaml:"color"`
	Bottom float64 `yaml:"bottom"`
}

type inputDoc struct {
	Editable       bool    `yaml:"editable"`
	MaxLength      int     `yaml:"max_length,omitempty"`
	SelectionColor string  `yaml:"selection_color"`
	PaddingTop     float64 `yaml:"padding_top"`
	PaddingLeft    float64 `yaml:"padding_left"`
}

func newDescribeCmd(a *app) *cobra.Command {
	flags := &describeFlags{progress: -1}

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the computed style of a field as YAML",
		Long: `Describe mounts one field of the form headlessly, applies the requested
state and prints the style the field would render with once its
transitions have settled. --progress pins the label position instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.hasValue = cmd.Flags().Changed("value")
			doc, err := a.describe(flags)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encode style: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringVarP(&flags.field, "field", "f", "", "Field name (default: the first field)")
	cmd.Flags().BoolVar(&flags.focused, "focused", false, "Describe the field while focused")
	cmd.Flags().StringVar(&flags.value, "value", "", "Replace the field value")
	cmd.Flags().StringVar(&flags.err, "error", "", "Show this validation error")
	cmd.Flags().Float64Var(&flags.progress, "progress", -1, "Pin the label progress between 0 and 1")
	cmd.Flags().StringVar(&flags.variant, "variant", "", "Override the variant (outlined or standard)")
	return cmd
}

func (a *app) describe(flags *describeFlags) (*styleDoc, error) {
	cfg, err := a.loadForm()
	if err != nil {
		return nil, err
	}
	if flags.variant != "" {
		if _, err := floatinput.ParseVariant(flags.variant); err != nil {
			return nil, err
		}
		cfg.Variant = flags.variant
	}
	ft, err := a.fieldTheme(cfg)
	if err != nil {
		return nil, err
	}
	configs, err := cfg.FieldConfigs(ft)
	if err != nil {
		return nil, err
	}

	index := 0
	if flags.field != "" {
		index = -1
		for i, f := range cfg.Fields {
			if f.Name == flags.field {
				index = i
				break
			}
		}
		if index < 0 {
			return nil, fmt.Errorf("no field named %q", flags.field)
		}
	}
	if flags.progress > 1 {
		return nil, fmt.Errorf("progress %v is outside [0, 1]", flags.progress)
	}

	fc := configs[index]
	if flags.hasValue {
		fc.Value = flags.value
	}
	fc.Error = flags.err

	native := platform.NewMemoryTextInput()
	in := floatinput.New(native, fc,
		floatinput.WithID(cfg.Fields[index].Name),
		floatinput.WithLogger(a.logger),
	)
	defer in.Dispose()

	if flags.focused {
		in.Handle().Focus()
	}
	size, err := layout.FontMeasurer{}.MeasureText(fc.Placeholder, in.Style().Label.Style)
	if err != nil {
		return nil, err
	}
	in.OnLabelLayout(layout.LayoutEvent{Width: size.Width, Height: size.Height})

	frame := in.Targets()
	if flags.progress >= 0 {
		frame.LabelProgress = flags.progress
	}
	style := floatinput.Compose(in.Config(), frame, in.State())
	return newStyleDoc(in.ID(), style, in.State()), nil
}

func newStyleDoc(name string, s floatinput.Style, st floatinput.State) *styleDoc {
	doc := &styleDoc{
		Field:   name,
		Variant: s.Variant.String(),
		State:   stateDoc{Value: st.Value, Focused: st.Focused, Error: st.ErrorActive},
		Channels: channelDoc{
			LabelProgress: s.ChannelFrame.LabelProgress,
			ColorState:    s.ChannelFrame.ColorState,
			LabelWidth:    s.ChannelFrame.LabelWidth,
		},
		Container: borderDoc{
			BorderColor:       s.Container.BorderColor.Hex(),
			BackgroundColor:   s.Container.BackgroundColor.Hex(),
			BorderWidth:       s.Container.BorderWidth,
			BorderBottomWidth: s.Container.BorderBottomWidth,
			BorderRadius:      s.Container.BorderRadius,
		},
		Label: labelDoc{
			Text:       s.Label.Text,
			Color:      s.Label.Style.Color.Hex(),
			Floated:    s.Label.Floated,
			TranslateY: s.Label.Transform.TranslateY,
			Scale:      s.Label.Transform.Scale,
			TranslateX: s.Label.Transform.TranslateX,
		},
		Counter:   helper(s.Counter),
		Error:     helper(s.Error),
		Assistive: helper(s.Assistive),
		Input: inputDoc{
			Editable:       s.Input.Editable,
			MaxLength:      s.Input.MaxLength,
			SelectionColor: s.Input.SelectionColor.Hex(),
			PaddingTop:     s.Input.Padding.Top,
			PaddingLeft:    s.Input.Padding.Left,
		},
	}
	if s.Spacer.Visible {
		doc.Spacer = &spacerDoc{Left: s.Spacer.Left, Width: s.Spacer.Width, Color: s.Spacer.Color.Hex()}
	}
	return doc
}

func helper(r *floatinput.TextRegion) *helperDoc {
	if r == nil {
		return nil
	}
	return &helperDoc{Text: r.Text, Color: r.Style.Color.Hex(), Bottom: r.Bottom}
}
