// Package cmd implements the floatdemo CLI commands.
//
// The root command carries the flags shared by every subcommand (run,
// describe, version) and prepares logging before a subcommand runs.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-drift/floatlabel/cmd/floatdemo/internal/config"
	"github.com/go-drift/floatlabel/pkg/errors"
	"github.com/go-drift/floatlabel/pkg/theme"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	Commit    = "none"
	BuildTime = "unknown"
)

type rootFlags struct {
	dir       string
	config    string
	logFile   string
	logLevel  string
	theme     string
	textScale float64
}

// app is the state every subcommand works from, built in PersistentPreRunE.
type app struct {
	flags   *rootFlags
	env     config.Env
	logger  *log.Logger
	closers []io.Closer
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	a := &app{flags: flags}

	cmd := &cobra.Command{
		Use:   "floatdemo",
		Short: "floatdemo - floating-label text fields in the terminal",
		Long: `floatdemo hosts floating-label text fields in a terminal form.

The form is read from floatdemo.yaml or floatdemo.toml in the working
directory (or --config). Settings in .env are applied when present.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.dir, "dir", "C", ".", "Directory to read floatdemo config and .env from")
	cmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Form description file (yaml or toml)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write debug logs to this file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+config.EnvLogLevel)
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Color theme (light or dark); overrides "+config.EnvTheme)
	cmd.PersistentFlags().Float64Var(&flags.textScale, "text-scale", 1, "Scale every field font size by this factor")

	cmd.AddCommand(newRunCmd(a))
	cmd.AddCommand(newDescribeCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup() error {
	env, err := config.LoadEnv(a.flags.dir)
	if err != nil {
		return err
	}
	a.env = env

	if a.flags.textScale <= 0 {
		return fmt.Errorf("text scale must be positive, got %v", a.flags.textScale)
	}
	theme.SetTextScale(a.flags.textScale)

	level := log.InfoLevel
	if name := firstNonEmpty(a.flags.logLevel, env.LogLevel); name != "" {
		level, err = log.ParseLevel(strings.ToLower(name))
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
	}

	// The terminal belongs to the form; logs only go to a file.
	var w io.Writer = io.Discard
	if a.flags.logFile != "" {
		f, err := os.OpenFile(a.flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		w = f
	}
	a.logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "floatdemo",
		ReportTimestamp: true,
	})
	errors.SetHandler(&errors.LogHandler{Logger: a.logger, Verbose: level == log.DebugLevel})
	return nil
}

func (a *app) close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

// loadForm resolves the form description from --config or the directory.
func (a *app) loadForm() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if a.flags.config != "" {
		cfg, err = config.Load(a.flags.config)
	} else {
		cfg, err = config.Resolve(a.flags.dir)
	}
	if err != nil {
		return nil, err
	}
	a.logger.Debug("form loaded", "title", cfg.Title, "fields", len(cfg.Fields))
	return cfg, nil
}

// fieldTheme picks the palette: flag, then environment, then the file.
func (a *app) fieldTheme(cfg *config.Config) (theme.FieldTheme, error) {
	b, err := theme.ParseBrightness(firstNonEmpty(a.flags.theme, a.env.Theme, cfg.Theme))
	if err != nil {
		return theme.FieldTheme{}, err
	}
	return theme.DefaultFieldTheme(theme.PaletteFor(b)), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
