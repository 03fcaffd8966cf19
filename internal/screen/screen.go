// Package screen is the single state object behind the list screen: the item
// store, the add dialog draft and one edit buffer per row being edited.
// Every user event is a method; renderers read the state back and draw it.
package screen

import (
	"strconv"

	"github.com/Makepad-fr/tally/internal/model"
	"github.com/Makepad-fr/tally/internal/store"
)

// Draft backs the "add item" dialog. Fields hold raw user text.
type Draft struct {
	Name     string
	Quantity string
	Visible  bool
}

// EditBuffer holds unsaved inline edits of one row. Its contents only reach
// the item on save.
type EditBuffer struct {
	ID       int
	Title    string
	Quantity string
}

// Notifier receives transient user-facing messages. Fire and forget.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(string)

func (f NotifierFunc) Notify(message string) { f(message) }

// State is owned by the top-level component and is not safe for concurrent use.
type State struct {
	store    *store.Store
	draft    Draft
	buffers  map[int]*EditBuffer
	notifier Notifier
}

// New wraps st. A nil notifier drops messages.
func New(st *store.Store, n Notifier) *State {
	if n == nil {
		n = NotifierFunc(func(string) {})
	}
	return &State{store: st, buffers: map[int]*EditBuffer{}, notifier: n}
}

func (s *State) Store() *store.Store { return s.store }

// Items returns the current items in order.
func (s *State) Items() []model.Item { return s.store.Items() }

// Draft returns a copy of the add dialog state.
func (s *State) Draft() Draft { return s.draft }

// SetDraftName and SetDraftQuantity record typing in the add dialog.
func (s *State) SetDraftName(v string)     { s.draft.Name = v }
func (s *State) SetDraftQuantity(v string) { s.draft.Quantity = v }

// OpenAddDialog shows the add dialog. Field values are kept.
func (s *State) OpenAddDialog() { s.draft.Visible = true }

// CancelAddDialog hides the add dialog and clears its fields.
func (s *State) CancelAddDialog() { s.draft = Draft{} }

// ConfirmAdd submits the add dialog with the given values. When either is
// empty the user is notified, the dialog stays open with the values in place
// and the returned error is a *store.ValidationError. On success the dialog is
// reset and closed.
func (s *State) ConfirmAdd(name, quantityText string) (model.Item, error) {
	s.draft.Name, s.draft.Quantity = name, quantityText
	it, err := s.store.Add(name, quantityText)
	if err != nil {
		if store.IsValidation(err) {
			s.draft.Visible = true
			s.notifier.Notify(err.Error())
		}
		return model.Item{}, err
	}
	s.draft = Draft{}
	return it, nil
}

// BeginEdit puts the row in edit mode. A row entering edit mode gets a fresh
// buffer seeded from the item. A row already in edit mode keeps its buffer.
// Unknown ids are ignored.
func (s *State) BeginEdit(id int) {
	it, ok := s.store.List().Find(id)
	if !ok {
		return
	}
	if _, open := s.buffers[id]; !open || !it.IsEditing {
		s.buffers[id] = &EditBuffer{ID: id, Title: it.Title, Quantity: strconv.Itoa(it.Quantity)}
	}
	s.store.BeginEdit(id)
}

// Buffer returns the edit buffer of a row in edit mode. Callers may change
// its fields directly.
func (s *State) Buffer(id int) (*EditBuffer, bool) {
	b, ok := s.buffers[id]
	return b, ok
}

// SaveEdit parses quantityText, commits both values to the item and drops the
// row's buffer.
func (s *State) SaveEdit(id int, name, quantityText string) {
	s.store.CommitEdit(id, name, store.ParseQuantity(quantityText))
	delete(s.buffers, id)
}

// SaveBuffer saves the row using its current buffer contents.
func (s *State) SaveBuffer(id int) {
	b, ok := s.buffers[id]
	if !ok {
		return
	}
	s.SaveEdit(id, b.Title, b.Quantity)
}

// CancelEdit closes the row editor and discards its buffer.
func (s *State) CancelEdit(id int) {
	s.store.CancelEdit(id)
	delete(s.buffers, id)
}

// Delete removes the row and any buffer it had.
func (s *State) Delete(id int) {
	s.store.Delete(id)
	delete(s.buffers, id)
}
