package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/go-drift/floatlabel/cmd/floatdemo/internal/config"
	"github.com/go-drift/floatlabel/pkg/floatinput"
	"github.com/go-drift/floatlabel/pkg/termhost"
)

// errNotTerminal is returned when run is started without a terminal.
var errNotTerminal = stderrors.New("run needs an interactive terminal; use describe for scripted output")

func newRunCmd(a *app) *cobra.Command {
	var printValues bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fill in the form interactively",
		Long: `Run opens the form in the terminal.

Tab and the arrow keys move between fields, Enter advances or submits,
and Esc cancels. On submit the field values are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				return errNotTerminal
			}
			form, err := a.buildForm()
			if err != nil {
				return err
			}
			defer form.Dispose()

			final, err := tea.NewProgram(form,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(out),
			).Run()
			if err != nil {
				return fmt.Errorf("run form: %w", err)
			}
			result, ok := final.(*termhost.Form)
			if !ok || !result.Submitted() {
				a.logger.Info("form canceled")
				return nil
			}
			a.logger.Info("form submitted", "fields", len(result.Fields()))
			if printValues {
				writeValues(out, result.Values())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&printValues, "print", true, "Print field values on submit")
	return cmd
}

// buildForm turns the form description into a bubbletea model.
func (a *app) buildForm() (*termhost.Form, error) {
	cfg, err := a.loadForm()
	if err != nil {
		return nil, err
	}
	ft, err := a.fieldTheme(cfg)
	if err != nil {
		return nil, err
	}
	configs, err := cfg.FieldConfigs(ft)
	if err != nil {
		return nil, err
	}

	fields := make([]*termhost.Field, 0, len(configs))
	for i, fc := range configs {
		desc := cfg.Fields[i]
		f := termhost.NewField(desc.Name, fc,
			floatinput.WithID(desc.Name),
			floatinput.WithLogger(a.logger),
		)
		f.Validate = config.Validator(desc.Rules)
		fields = append(fields, f)
	}
	return termhost.NewForm(cfg.Title, fields...), nil
}

func writeValues(w io.Writer, values map[string]string) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s=%s\n", name, values[name])
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
