package store

import "fmt"

// Command is one of the closed set of list transitions:
// Add, BeginEdit, CommitEdit, CancelEdit and Delete.
type Command interface {
	// Name is a short stable label, used in logs.
	Name() string
	command()
}

// Add appends an item built from raw form input.
type Add struct {
	Title    string
	Quantity string
}

// BeginEdit opens the inline editor of an item.
type BeginEdit struct{ ID int }

// CommitEdit saves already parsed values into an item and closes its editor.
type CommitEdit struct {
	ID       int
	Title    string
	Quantity int
}

// CancelEdit closes the editor of an item, discarding unsaved input.
type CancelEdit struct{ ID int }

// Delete removes an item.
type Delete struct{ ID int }

func (Add) Name() string        { return "add" }
func (BeginEdit) Name() string  { return "begin_edit" }
func (CommitEdit) Name() string { return "commit_edit" }
func (CancelEdit) Name() string { return "cancel_edit" }
func (Delete) Name() string     { return "delete" }

func (Add) command()        {}
func (BeginEdit) command()  {}
func (CommitEdit) command() {}
func (CancelEdit) command() {}
func (Delete) command()     {}

// Apply runs cmd against l and returns the resulting list. On error the
// returned list is l.
func Apply(l List, cmd Command) (List, error) {
	switch c := cmd.(type) {
	case Add:
		next, _, err := l.Add(c.Title, c.Quantity)
		return next, err
	case BeginEdit:
		return l.BeginEdit(c.ID), nil
	case CommitEdit:
		return l.CommitEdit(c.ID, c.Title, c.Quantity), nil
	case CancelEdit:
		return l.CancelEdit(c.ID), nil
	case Delete:
		return l.Delete(c.ID), nil
	}
	return l, fmt.Errorf("unsupported command %T", cmd)
}
