package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/tally/internal/model"
	"github.com/Makepad-fr/tally/internal/screen"
	"github.com/Makepad-fr/tally/internal/store"
	"github.com/Makepad-fr/tally/internal/store/jsonstore"
	"github.com/Makepad-fr/tally/internal/ui"
)

// Options tune the script runner.
type Options struct {
	JSON      bool // print the final list as JSON instead of a panel
	IDScheme  store.IDScheme
	Observers []store.Observer
	Stdout    io.Writer
	Stderr    io.Writer
}

// ScriptHelp documents the script language.
const ScriptHelp = `Script lines (one event per line, # starts a comment):
  open                        Open the add dialog
  name <text>                 Type the item name into the add dialog
  qty <text>                  Type the quantity into the add dialog
  confirm                     Confirm the add dialog
  cancel-add                  Close the add dialog and clear it
  add <name> <quantity>       Open the add dialog and confirm it
  edit <id>                   Start editing an item
  save <id> <name> <quantity> Save an item being edited
  cancel <id>                 Stop editing an item, dropping changes
  rm <id> | delete <id>       Remove an item
  ls                          Print the current list

Quote arguments with spaces or empty values: add "Whole milk" ""`

// Run executes the script read from r and returns an exit code (0 ok, 1 error, 2 usage).
func Run(r io.Reader, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = io.Discard
	}
	if opt.Stderr == nil {
		opt.Stderr = io.Discard
	}
	st := screen.New(store.New(opt.IDScheme, opt.Observers...), screen.NotifierFunc(func(msg string) {
		ui.Fail(opt.Stderr, msg)
	}))

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := splitArgs(line)
		if err != nil {
			ui.Fail(opt.Stderr, fmt.Sprintf("line %d: %v", lineNo, err))
			return 2
		}
		if err := step(st, args, opt.Stdout); err != nil {
			ui.Fail(opt.Stderr, fmt.Sprintf("line %d: %v", lineNo, err))
			return 2
		}
	}
	if err := sc.Err(); err != nil {
		ui.Fail(opt.Stderr, "read script: "+err.Error())
		return 1
	}

	if opt.JSON {
		if err := jsonstore.Write(opt.Stdout, st.Items()); err != nil {
			ui.Fail(opt.Stderr, err.Error())
			return 1
		}
		return 0
	}
	printList(opt.Stdout, st)
	return 0
}

// usageError marks a malformed script line.
type usageError string

func (e usageError) Error() string { return "usage: " + string(e) }

func step(st *screen.State, args []string, out io.Writer) error {
	cmd, a := args[0], args[1:]

	switch cmd {
	case "open":
		if len(a) != 0 {
			return usageError("open")
		}
		st.OpenAddDialog()

	case "name", "qty":
		if len(a) > 1 {
			return usageError(cmd + " <text>")
		}
		if !st.Draft().Visible {
			return errors.New(cmd + ": add dialog is not open")
		}
		v := ""
		if len(a) == 1 {
			v = a[0]
		}
		if cmd == "name" {
			st.SetDraftName(v)
		} else {
			st.SetDraftQuantity(v)
		}

	case "confirm":
		d := st.Draft()
		if !d.Visible {
			return errors.New("confirm: add dialog is not open")
		}
		confirm(st, d.Name, d.Quantity)

	case "cancel-add":
		st.CancelAddDialog()

	case "add":
		if len(a) != 2 {
			return usageError("add <name> <quantity>")
		}
		st.OpenAddDialog()
		confirm(st, a[0], a[1])

	case "edit", "cancel", "rm", "delete":
		if len(a) != 1 {
			return usageError(cmd + " <id>")
		}
		id, err := parseID(cmd, a[0])
		if err != nil {
			return err
		}
		switch cmd {
		case "edit":
			st.BeginEdit(id)
		case "cancel":
			st.CancelEdit(id)
		default:
			st.Delete(id)
		}

	case "save":
		if len(a) != 3 {
			return usageError("save <id> <name> <quantity>")
		}
		id, err := parseID(cmd, a[0])
		if err != nil {
			return err
		}
		st.SaveEdit(id, a[1], a[2])

	case "ls":
		printList(out, st)

	default:
		return errors.New("unknown command: " + cmd)
	}
	return nil
}

// confirm submits the draft. Validation failures were already reported
// through the notifier and do not stop the script.
func confirm(st *screen.State, name, qty string) {
	_, _ = st.ConfirmAdd(name, qty)
}

func parseID(cmd, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number: %s", cmd, s)
	}
	return n, nil
}

// -------------- rendering helpers --------------

// maxTitleWidth is measured in terminal columns, tail included.
const maxTitleWidth = 60

func printList(w io.Writer, st *screen.State) {
	items := st.Items()
	t := ui.Current()
	header := fmt.Sprintf("%s  %s %d  %s %d",
		ui.C(t.Title, "Items"),
		ui.C(t.Accent, "Total"), len(items),
		ui.C(t.Editing, t.SymEditing), editingCount(items),
	)
	lines := []string{header, ""}
	lines = append(lines, itemLines(st, items)...)
	ui.Panel(w, lines)
}

func editingCount(items []model.Item) (n int) {
	for _, it := range items {
		if it.IsEditing {
			n++
		}
	}
	return
}

func itemLines(st *screen.State, items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		id := ui.Dim(fmt.Sprintf("#%-2d", it.ID))
		title := ansi.Truncate(it.Title, maxTitleWidth, "...")
		sym := ui.C(t.Muted, t.SymItem)
		if it.IsEditing {
			sym = ui.C(t.Editing, t.SymEditing)
		}
		line := fmt.Sprintf("%s %s %s  %s", id, sym, title, ui.C(t.Accent, fmt.Sprintf("Qty: %d", it.Quantity)))
		if it.IsEditing {
			if b, ok := st.Buffer(it.ID); ok {
				line += ui.C(t.Muted, fmt.Sprintf("  (editing %q x %q)", b.Title, b.Quantity))
			}
		}
		out = append(out, line)
	}
	return out
}

// splitArgs splits a script line on spaces. Double quotes group words and
// may be empty; \" and \\ escape inside quotes.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		started bool
	)
	rs := []rune(line)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case inQuote && r == '\\' && i+1 < len(rs) && (rs[i+1] == '"' || rs[i+1] == '\\'):
			i++
			cur.WriteRune(rs[i])
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (r == ' ' || r == '\t'):
			if started {
				args = append(args, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, errors.New("unterminated quote")
	}
	if started {
		args = append(args, cur.String())
	}
	return args, nil
}
