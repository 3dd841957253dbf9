// Package config loads the floatdemo form description.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/floatlabel/pkg/animation"
	"github.com/go-drift/floatlabel/pkg/errors"
	"github.com/go-drift/floatlabel/pkg/floatinput"
	"github.com/go-drift/floatlabel/pkg/graphics"
	"github.com/go-drift/floatlabel/pkg/termhost"
	"github.com/go-drift/floatlabel/pkg/theme"
)

// File names searched by Resolve, in order.
const (
	YAMLFile = "floatdemo.yaml"
	TOMLFile = "floatdemo.toml"
	EnvFile  = ".env"
)

// Config is a form description.
type Config struct {
	Title    string  `yaml:"title,omitempty" toml:"title,omitempty"`
	Theme    string  `yaml:"theme,omitempty" toml:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	Variant  string  `yaml:"variant,omitempty" toml:"variant,omitempty" validate:"omitempty,oneof=outlined standard"`
	Platform string  `yaml:"platform,omitempty" toml:"platform,omitempty" validate:"omitempty,oneof=ios android"`
	Duration string  `yaml:"duration,omitempty" toml:"duration,omitempty" validate:"omitempty,duration"`
	Colors   string  `yaml:"colors,omitempty" toml:"colors,omitempty" validate:"omitempty,oneof=smooth discrete"`
	Curve    string  `yaml:"curve,omitempty" toml:"curve,omitempty" validate:"omitempty,oneof=linear ease ease-in ease-out ease-in-out spring"`
	Fields   []Field `yaml:"fields" toml:"fields" validate:"required,min=1,unique=Name,dive"`
}

// Field describes one form field.
type Field struct {
	Name           string `yaml:"name" toml:"name" validate:"required,field_name"`
	Placeholder    string `yaml:"placeholder,omitempty" toml:"placeholder,omitempty"`
	Value          string `yaml:"value,omitempty" toml:"value,omitempty"`
	AssistiveText  string `yaml:"assistive_text,omitempty" toml:"assistive_text,omitempty"`
	CharacterCount int    `yaml:"character_count,omitempty" toml:"character_count,omitempty" validate:"gte=0"`
	Secure         bool   `yaml:"secure,omitempty" toml:"secure,omitempty"`
	Icon           string `yaml:"icon,omitempty" toml:"icon,omitempty"`
	// Rules is a validator tag string checked against the value on submit,
	// e.g. "required,email".
	Rules string `yaml:"rules,omitempty" toml:"rules,omitempty" validate:"omitempty,rules"`

	ActiveColor   string `yaml:"active_color,omitempty" toml:"active_color,omitempty" validate:"omitempty,hexcolor"`
	InactiveColor string `yaml:"inactive_color,omitempty" toml:"inactive_color,omitempty" validate:"omitempty,hexcolor"`
	ErrorColor    string `yaml:"error_color,omitempty" toml:"error_color,omitempty" validate:"omitempty,hexcolor"`
}

// Env holds settings read from the environment and .env.
type Env struct {
	LogLevel string
	Theme    string
}

// Default is the form used when no file is present.
func Default() *Config {
	return &Config{
		Title: "Sign up",
		Fields: []Field{
			{Name: "name", Placeholder: "Full name", Rules: "required", CharacterCount: 40},
			{Name: "email", Placeholder: "Email", Rules: "required,email", AssistiveText: "We never share it"},
			{Name: "password", Placeholder: "Password", Rules: "required,min=8", Secure: true, Icon: "*"},
		},
	}
}

// Load reads a YAML or TOML form description, chosen by file extension, and
// validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("config.Load", errors.KindConfig, fmt.Errorf("read %s: %w", path, err))
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, errors.New("config.Load", errors.KindConfig, fmt.Errorf("parse %s: %w", path, err))
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve loads the form description in dir, falling back to Default when
// there is none. An empty title defaults to the last element of the module
// path in dir's go.mod, then to the directory name.
func Resolve(dir string) (*Config, error) {
	cfg, err := find(dir)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Title) == "" {
		cfg.Title = defaultTitle(dir)
	}
	return cfg, nil
}

func find(dir string) (*Config, error) {
	for _, name := range []string{YAMLFile, TOMLFile} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		} else if !stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.New("config.Resolve", errors.KindConfig, err)
		}
	}
	return Default(), nil
}

func defaultTitle(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err == nil {
		if path := modfile.ModulePath(data); path != "" {
			prefix, _, ok := module.SplitPathVersion(path)
			if ok {
				parts := strings.Split(prefix, "/")
				return parts[len(parts)-1]
			}
		}
	}
	if base := filepath.Base(dir); base != "." && base != string(filepath.Separator) {
		return base
	}
	return "floatdemo"
}

// Spring parameters for curve: spring. The damping ratio below 1 gives the
// label a small overshoot as it floats.
const (
	springFrequency = 12
	springDamping   = 0.6
)

// CurveFor maps a curve name to its easing function. Empty or unknown names
// return nil, which leaves the field on its default curve.
func CurveFor(name string) animation.Curve {
	switch name {
	case "linear":
		return animation.LinearCurve
	case "ease":
		return animation.Ease
	case "ease-in":
		return animation.EaseIn
	case "ease-out":
		return animation.EaseOut
	case "ease-in-out":
		return animation.EaseInOut
	case "spring":
		return animation.SpringCurve(springFrequency, springDamping)
	default:
		return nil
	}
}

// FieldConfigs converts the description into field configurations.
func (c *Config) FieldConfigs(t theme.FieldTheme) ([]floatinput.Config, error) {
	variant, err := floatinput.ParseVariant(c.Variant)
	if err != nil {
		return nil, errors.New("config.FieldConfigs", errors.KindConfig, err)
	}
	var duration time.Duration
	if c.Duration != "" {
		duration, err = time.ParseDuration(c.Duration)
		if err != nil {
			return nil, errors.New("config.FieldConfigs", errors.KindConfig, err)
		}
		if duration == 0 {
			duration = -1
		}
	}
	platform := floatinput.PlatformIOS
	if c.Platform == "android" {
		platform = floatinput.PlatformAndroid
	}
	colors := floatinput.ColorSmooth
	if c.Colors == "discrete" {
		colors = floatinput.ColorDiscrete
	}
	curve := CurveFor(c.Curve)

	out := make([]floatinput.Config, 0, len(c.Fields))
	for _, f := range c.Fields {
		fc := floatinput.Config{
			Placeholder:     f.Placeholder,
			Value:           f.Value,
			AssistiveText:   f.AssistiveText,
			CharacterCount:  f.CharacterCount,
			Variant:         variant,
			Platform:        platform,
			Duration:        duration,
			ColorTransition: colors,
			Curve:           curve,
			Theme:           &t,
		}
		if f.Icon != "" {
			fc.TrailingIcon = f.Icon
		}
		if f.Secure {
			fc.InputProps = map[string]any{termhost.PropSecure: true}
		}
		for _, color := range []struct {
			hex string
			dst *graphics.Color
		}{
			{f.ActiveColor, &fc.ActiveColor},
			{f.InactiveColor, &fc.InactiveColor},
			{f.ErrorColor, &fc.ErrorColor},
		} {
			if color.hex == "" {
				continue
			}
			col, err := graphics.ParseHex(color.hex)
			if err != nil {
				return nil, errors.New("config.FieldConfigs", errors.KindConfig, fmt.Errorf("field %s: %w", f.Name, err))
			}
			if col.Alpha() == 0 {
				col = graphics.ColorClear
			}
			*color.dst = col
		}
		out = append(out, fc)
	}
	return out, nil
}
