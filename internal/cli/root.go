package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Makepad-fr/tally/internal/config"
	"github.com/Makepad-fr/tally/internal/screen"
	"github.com/Makepad-fr/tally/internal/store"
	"github.com/Makepad-fr/tally/internal/ui"
)

// App holds what the commands need from the outside world.
type App struct {
	Config config.Config

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// IsInteractive reports whether the TUI can take over the terminal.
	IsInteractive func() bool
	// RunTUI runs the interactive screen until the user quits.
	RunTUI func(*screen.State) error

	observers []store.Observer
	logFile   *os.File
}

// ExitError carries a non-zero exit code out of a command.
type ExitError struct{ Code int }

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// Close releases the log file, if one was opened.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

type rootFlags struct {
	theme    string
	noColor  bool
	logFile  string
	idScheme string
}

func (f *rootFlags) bind(fs *pflag.FlagSet, cfg config.Config) {
	fs.StringVar(&f.theme, "theme", cfg.Theme, "color theme: classic, neon or mono")
	fs.BoolVar(&f.noColor, "no-color", cfg.NoColor, "disable colored output")
	fs.StringVar(&f.logFile, "log-file", cfg.LogFile, "append store change logs to this file")
	fs.StringVar(&f.idScheme, "id-scheme", cfg.IDScheme.String(), "item id scheme: sequential or positional")
}

// apply copies flag values into app.Config and sets up output and logging.
func (f *rootFlags) apply(app *App) error {
	scheme, err := store.ParseIDScheme(f.idScheme)
	if err != nil {
		return err
	}
	app.Config.Theme = strings.ToLower(f.theme)
	app.Config.NoColor = f.noColor
	app.Config.LogFile = f.logFile
	app.Config.IDScheme = scheme
	if err := app.Config.Validate(); err != nil {
		return err
	}

	ui.SetTheme(app.Config.Theme)
	if app.Config.NoColor {
		ui.SetColorForcing(false, true)
	}

	if app.Config.LogFile != "" {
		fh, err := os.OpenFile(app.Config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		app.logFile = fh
		app.observers = append(app.observers, store.NewLogObserver(fh, "session", uuid.NewString()))
	}
	return nil
}

// NewRootCmd creates the top-level "tally" command.
func NewRootCmd(app *App) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "tally",
		Short: "Keep a list of named items with quantities",
		Long: `tally keeps an in-memory list of items, each with a quantity.

On a terminal it opens an interactive screen. Otherwise it reads a script
from stdin (see "tally script --help").`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.apply(app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() && app.RunTUI != nil {
				st := screen.New(store.New(app.Config.IDScheme, app.observers...), nil)
				return app.RunTUI(st)
			}
			return runScript(app, app.Stdin, false)
		},
	}
	flags.bind(root.PersistentFlags(), app.Config)

	root.AddCommand(newScriptCmd(app))
	return root
}

func newScriptCmd(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "script [file]",
		Short: "Run a list script from a file or stdin",
		Long:  ScriptHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "-" {
				return runScript(app, app.Stdin, asJSON)
			}
			fh, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer fh.Close()
			return runScript(app, fh, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the final list as JSON")
	return cmd
}

func runScript(app *App, r io.Reader, asJSON bool) error {
	code := Run(r, Options{
		JSON:      asJSON,
		IDScheme:  app.Config.IDScheme,
		Observers: app.observers,
		Stdout:    app.Stdout,
		Stderr:    app.Stderr,
	})
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
