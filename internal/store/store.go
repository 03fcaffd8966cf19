// Package store owns the canonical ordered item list and the rules for
// changing it.
package store

import "github.com/Makepad-fr/tally/internal/model"

// Store holds the current List and replaces it wholesale on every command.
// It is meant for a single event loop and does no locking.
type Store struct {
	list      List
	observers []Observer
}

// New returns an empty store. Observers are told about every applied command.
func New(scheme IDScheme, observers ...Observer) *Store {
	return &Store{list: NewList(scheme), observers: observers}
}

// Subscribe adds an observer.
func (s *Store) Subscribe(o Observer) {
	if o != nil {
		s.observers = append(s.observers, o)
	}
}

// List returns the current snapshot.
func (s *Store) List() List { return s.list }

// Items returns a copy of the current items.
func (s *Store) Items() []model.Item { return s.list.Items() }

// Dispatch applies cmd. Rejected commands leave the list as it was and
// nobody is notified.
func (s *Store) Dispatch(cmd Command) error {
	before := s.list
	after, err := Apply(before, cmd)
	if err != nil {
		return err
	}
	s.list = after
	ch := Change{Command: cmd, Before: before, After: after}
	for _, o := range s.observers {
		o.OnChange(ch)
	}
	return nil
}

// Add is Dispatch(Add{...}) that also returns the new item.
func (s *Store) Add(title, quantityText string) (model.Item, error) {
	if err := s.Dispatch(Add{Title: title, Quantity: quantityText}); err != nil {
		return model.Item{}, err
	}
	items := s.list.items
	return items[len(items)-1], nil
}

func (s *Store) BeginEdit(id int) { _ = s.Dispatch(BeginEdit{ID: id}) }

func (s *Store) CommitEdit(id int, title string, quantity int) {
	_ = s.Dispatch(CommitEdit{ID: id, Title: title, Quantity: quantity})
}

func (s *Store) CancelEdit(id int) { _ = s.Dispatch(CancelEdit{ID: id}) }

func (s *Store) Delete(id int) { _ = s.Dispatch(Delete{ID: id}) }
