package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/floatlabel/pkg/animation"
	"github.com/go-drift/floatlabel/pkg/errors"
	"github.com/go-drift/floatlabel/pkg/floatinput"
	"github.com/go-drift/floatlabel/pkg/graphics"
	"github.com/go-drift/floatlabel/pkg/theme"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleYAML = `
title: Checkout
variant: standard
duration: 150ms
colors: discrete
fields:
  - name: card
    placeholder: Card number
    character_count: 16
    rules: required,numeric
    active_color: "#00AA00"
  - name: cvc
    placeholder: CVC
    secure: true
    icon: "?"
`

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), YAMLFile, sampleYAML)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Checkout", cfg.Title)
	require.Len(t, cfg.Fields, 2)
	assert.Equal(t, 16, cfg.Fields[0].CharacterCount)
	assert.True(t, cfg.Fields[1].Secure)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), TOMLFile, `
title = "Login"
theme = "dark"

[[fields]]
name = "user"
placeholder = "Username"

[[fields]]
name = "pass"
placeholder = "Password"
secure = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	require.Len(t, cfg.Fields, 2)
	assert.Equal(t, "Username", cfg.Fields[0].Placeholder)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no fields", "title: x\n"},
		{"bad variant", "variant: filled\nfields:\n  - name: a\n"},
		{"negative count", "fields:\n  - name: a\n    character_count: -1\n"},
		{"bad color", "fields:\n  - name: a\n    error_color: red\n"},
		{"bad name", "fields:\n  - name: Has Space\n"},
		{"duplicate names", "fields:\n  - name: a\n  - name: a\n"},
		{"unknown rule", "fields:\n  - name: a\n    rules: required,nonsense\n"},
		{"bad duration", "duration: soon\nfields:\n  - name: a\n"},
		{"bad curve", "curve: bouncy\nfields:\n  - name: a\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), YAMLFile, tt.content)
			_, err := Load(path)
			require.Error(t, err)

			var fe *errors.FieldError
			require.True(t, stderrors.As(err, &fe))
			assert.Equal(t, errors.KindConfig, fe.Kind)
		})
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "form.json", "{}")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/onboarding/v2\n\ngo 1.24\n")

	cfg, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, Default().Fields, cfg.Fields)
	assert.Equal(t, "Sign up", cfg.Title)
}

func TestResolveTitleFromModule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/onboarding/v2\n\ngo 1.24\n")
	writeFile(t, dir, YAMLFile, "fields:\n  - name: a\n")

	cfg, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "onboarding", cfg.Title)
}

func TestResolveTitleFromDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "payments")
	require.NoError(t, os.Mkdir(dir, 0o755))
	writeFile(t, dir, TOMLFile, "[[fields]]\nname = \"a\"\n")

	cfg, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "payments", cfg.Title)
}

func TestFieldConfigs(t *testing.T) {
	path := writeFile(t, t.TempDir(), YAMLFile, sampleYAML)
	cfg, err := Load(path)
	require.NoError(t, err)

	fields, err := cfg.FieldConfigs(theme.DefaultFieldTheme(theme.LightPalette()))
	require.NoError(t, err)
	require.Len(t, fields, 2)

	card := fields[0]
	assert.Equal(t, floatinput.VariantStandard, card.Variant)
	assert.Equal(t, 150*time.Millisecond, card.Duration)
	assert.Equal(t, floatinput.ColorDiscrete, card.ColorTransition)
	assert.Equal(t, graphics.RGB(0, 0xAA, 0), card.ActiveColor)
	assert.Equal(t, 16, card.CharacterCount)

	cvc := fields[1]
	assert.Equal(t, "?", cvc.TrailingIcon)
	assert.Equal(t, true, cvc.InputProps["secureTextEntry"])
}

func TestFieldConfigsZeroDurationDisablesAnimation(t *testing.T) {
	cfg := &Config{Duration: "0s", Fields: []Field{{Name: "a"}}}
	fields, err := cfg.FieldConfigs(theme.DefaultFieldTheme(theme.LightPalette()))
	require.NoError(t, err)
	assert.Less(t, fields[0].Duration, time.Duration(0))
}

func TestFieldConfigsTransparentColorSurvivesDefaults(t *testing.T) {
	cfg := &Config{Fields: []Field{{Name: "a", InactiveColor: "#00000000"}}}
	fields, err := cfg.FieldConfigs(theme.DefaultFieldTheme(theme.LightPalette()))
	require.NoError(t, err)

	got := fields[0].WithDefaults().InactiveColor
	assert.Equal(t, graphics.ColorClear, got)
	assert.Zero(t, got.Alpha())
}

func TestFieldConfigsCurve(t *testing.T) {
	ft := theme.DefaultFieldTheme(theme.LightPalette())
	tests := []struct {
		name string
		want animation.Curve
	}{
		{"linear", animation.LinearCurve},
		{"ease", animation.Ease},
		{"ease-in", animation.EaseIn},
		{"ease-out", animation.EaseOut},
		{"ease-in-out", animation.EaseInOut},
		{"spring", animation.SpringCurve(springFrequency, springDamping)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), YAMLFile, "curve: "+tt.name+"\nfields:\n  - name: a\n")
			cfg, err := Load(path)
			require.NoError(t, err)

			fields, err := cfg.FieldConfigs(ft)
			require.NoError(t, err)
			require.NotNil(t, fields[0].Curve)
			for _, p := range []float64{0, 0.1, 0.3, 0.5, 0.8, 1} {
				assert.InDelta(t, tt.want(p), fields[0].Curve(p), 1e-9, "progress %v", p)
			}
		})
	}
}

func TestFieldConfigsSpringOvershoots(t *testing.T) {
	cfg := &Config{Curve: "spring", Fields: []Field{{Name: "a"}}}
	fields, err := cfg.FieldConfigs(theme.DefaultFieldTheme(theme.LightPalette()))
	require.NoError(t, err)

	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = max(peak, fields[0].Curve(float64(i)/100))
	}
	assert.Greater(t, peak, 1.0)
}

func TestFieldConfigsDefaultCurve(t *testing.T) {
	cfg := &Config{Fields: []Field{{Name: "a"}}}
	fields, err := cfg.FieldConfigs(theme.DefaultFieldTheme(theme.LightPalette()))
	require.NoError(t, err)
	assert.Nil(t, fields[0].Curve)
	assert.Nil(t, CurveFor("bouncy"))
}

func TestValidatorMessages(t *testing.T) {
	email := Validator("required,email")
	assert.Equal(t, "This field is required", email(""))
	assert.Equal(t, "Enter a valid email address", email("nope"))
	assert.Empty(t, email("ada@example.com"))

	pin := Validator("min=4")
	assert.Equal(t, "Use at least 4 characters", pin("12"))

	assert.Nil(t, Validator(""))
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, EnvFile, "FLOATDEMO_LOG_LEVEL=debug\nFLOATDEMO_THEME=dark\n")
	t.Setenv(EnvTheme, "light")
	t.Setenv(EnvLogLevel, "")
	require.NoError(t, os.Unsetenv(EnvLogLevel))

	env, err := LoadEnv(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", env.LogLevel)
	assert.Equal(t, "light", env.Theme, "process environment should win over .env")
}

func TestLoadEnvMissingFile(t *testing.T) {
	env, err := LoadEnv(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Env{LogLevel: os.Getenv(EnvLogLevel), Theme: os.Getenv(EnvTheme)}, env)
}
