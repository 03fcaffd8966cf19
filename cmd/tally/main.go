package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/Makepad-fr/tally/internal/cli"
	"github.com/Makepad-fr/tally/internal/config"
	"github.com/Makepad-fr/tally/internal/tui"
)

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	app := &cli.App{
		Config: cfg,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		IsInteractive: func() bool {
			return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
		},
		RunTUI: tui.Run,
	}
	defer app.Close()

	// Hand the args to cobra; script failures carry their own exit code.
	if err := cli.NewRootCmd(app).Execute(); err != nil {
		var exit *cli.ExitError
		if errors.As(err, &exit) {
			return exit.Code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
