package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Makepad-fr/tally/internal/config"
	"github.com/Makepad-fr/tally/internal/screen"
	"github.com/Makepad-fr/tally/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(stdin string) (*App, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &App{
		Config: config.Default(),
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Stderr: &errOut,
	}, &out, &errOut
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		_ = app.Close()
		ui.SetColorForcing(false, false)
		ui.SetTheme("classic")
	})
	if args == nil {
		args = []string{}
	}
	root := NewRootCmd(app)
	root.SetArgs(args)
	root.SetOut(app.Stdout)
	root.SetErr(app.Stderr)
	return root.Execute()
}

func TestRoot_NonInteractiveRunsScript(t *testing.T) {
	app, out, _ := newTestApp("add Bread 2\n")
	require.NoError(t, execute(t, app, "--no-color"))
	assert.Contains(t, out.String(), "Bread")
}

func TestRoot_InteractiveRunsTUI(t *testing.T) {
	app, _, _ := newTestApp("")
	var got *screen.State
	app.IsInteractive = func() bool { return true }
	app.RunTUI = func(st *screen.State) error { got = st; return nil }

	require.NoError(t, execute(t, app))
	require.NotNil(t, got)
	assert.Empty(t, got.Items())
}

func TestScriptCmd_FileAndJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("add Bread 2\nadd Eggs x\nrm 1\n"), 0o644))

	app, out, _ := newTestApp("")
	require.NoError(t, execute(t, app, "script", "--json", path))
	assert.Contains(t, out.String(), `"count": 1`)
	assert.Contains(t, out.String(), `"id": 2`)
}

func TestScriptCmd_UsageExitCode(t *testing.T) {
	app, _, _ := newTestApp("bogus\n")
	err := execute(t, app, "script")

	var exit *ExitError
	require.True(t, errors.As(err, &exit))
	assert.Equal(t, 2, exit.Code)
}

func TestRoot_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "tally.log")
	app, _, _ := newTestApp("add Bread 2\nrm 1\n")
	require.NoError(t, execute(t, app, "--log-file", logPath, "script"))
	require.NoError(t, app.Close())

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(b), "msg=store_change"))
	assert.Contains(t, string(b), "session=")
}

func TestRoot_ThemeFlagIgnoresCase(t *testing.T) {
	app, _, _ := newTestApp("")
	require.NoError(t, execute(t, app, "--theme", "Neon", "script"))
	assert.Equal(t, "neon", app.Config.Theme)
}

func TestRoot_BadFlags(t *testing.T) {
	app, _, _ := newTestApp("")
	assert.Error(t, execute(t, app, "--theme", "sepia", "script"))

	app, _, _ = newTestApp("")
	assert.Error(t, execute(t, app, "--id-scheme", "random", "script"))
}
