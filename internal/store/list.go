package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Makepad-fr/tally/internal/model"
)

// IDScheme decides how Add picks the id of a new item.
type IDScheme int

const (
	// Sequential hands out lastID+1 from a counter that never goes back,
	// so ids stay unique after deletions.
	Sequential IDScheme = iota
	// Positional hands out len+1. Ids may repeat once items were deleted.
	Positional
)

func (s IDScheme) String() string {
	switch s {
	case Positional:
		return "positional"
	default:
		return "sequential"
	}
}

// ParseIDScheme maps a config value to an IDScheme. Empty means Sequential.
func ParseIDScheme(s string) (IDScheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sequential":
		return Sequential, nil
	case "positional":
		return Positional, nil
	}
	return Sequential, fmt.Errorf("unknown id scheme %q (want sequential or positional)", s)
}

// List is an immutable ordered sequence of items. Every transition returns a
// new List and leaves the receiver untouched, so a List handed to an observer
// stays valid forever.
type List struct {
	items  []model.Item
	lastID int
	scheme IDScheme
}

// NewList returns an empty list using the given id scheme.
func NewList(scheme IDScheme) List {
	return List{scheme: scheme}
}

// Items returns a copy of the items in insertion order.
func (l List) Items() []model.Item { return slices.Clone(l.items) }

func (l List) Len() int { return len(l.items) }

// Scheme returns the id scheme the list was created with.
func (l List) Scheme() IDScheme { return l.scheme }

// Find returns the first item with the given id.
func (l List) Find(id int) (model.Item, bool) {
	i := l.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return l.items[i], true
}

// Equal reports whether both lists hold the same items in the same order.
func (l List) Equal(o List) bool { return slices.Equal(l.items, o.items) }

func (l List) index(id int) int {
	return slices.IndexFunc(l.items, func(it model.Item) bool { return it.ID == id })
}

func (l List) nextID() int {
	if l.scheme == Positional {
		return len(l.items) + 1
	}
	return l.lastID + 1
}

// Add appends a new item. Empty title or empty quantity text is rejected with
// a *ValidationError and the receiver is returned as is. Quantity text that
// does not parse becomes DefaultQuantity. Duplicate titles are allowed.
func (l List) Add(title, quantityText string) (List, model.Item, error) {
	if title == "" || quantityText == "" {
		return l, model.Item{}, &ValidationError{Message: MsgMissingFields}
	}
	it := model.Item{
		ID:       l.nextID(),
		Title:    title,
		Quantity: ParseQuantity(quantityText),
	}
	out := make([]model.Item, 0, len(l.items)+1)
	out = append(out, l.items...)
	out = append(out, it)

	next := l
	next.items = out
	next.lastID = max(l.lastID, it.ID)
	return next, it, nil
}

// BeginEdit opens the editor of the item with the given id. Other items keep
// their flag, so several items may be in edit mode at once.
func (l List) BeginEdit(id int) List {
	return l.update(id, func(it model.Item) model.Item {
		it.IsEditing = true
		return it
	})
}

// CommitEdit writes title and quantity to the item and closes its editor.
// The quantity is expected to be parsed already.
func (l List) CommitEdit(id int, title string, quantity int) List {
	return l.update(id, func(it model.Item) model.Item {
		it.Title = title
		it.Quantity = quantity
		it.IsEditing = false
		return it
	})
}

// CancelEdit closes the editor of the item without touching its values.
func (l List) CancelEdit(id int) List {
	return l.update(id, func(it model.Item) model.Item {
		it.IsEditing = false
		return it
	})
}

// Delete removes the item with the given id. Remaining items keep their ids
// and relative order. Unknown ids are ignored.
func (l List) Delete(id int) List {
	if l.index(id) < 0 {
		return l
	}
	next := l
	next.items = slices.DeleteFunc(slices.Clone(l.items), func(it model.Item) bool { return it.ID == id })
	return next
}

// update applies fn to every item matching id. Only Positional lists can
// hold more than one. Unknown ids return the receiver.
func (l List) update(id int, fn func(model.Item) model.Item) List {
	if l.index(id) < 0 {
		return l
	}
	out := make([]model.Item, len(l.items))
	for i, it := range l.items {
		if it.ID == id {
			it = fn(it)
		}
		out[i] = it
	}
	next := l
	next.items = out
	return next
}
