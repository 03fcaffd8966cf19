package store

import (
	"io"
	"log/slog"
)

// Change describes one applied command.
type Change struct {
	Command Command
	Before  List
	After   List
}

// ID returns the id the command targeted. For Add it is the new item's id.
func (c Change) ID() int {
	switch cmd := c.Command.(type) {
	case Add:
		if n := c.After.Len(); n > 0 {
			return c.After.items[n-1].ID
		}
	case BeginEdit:
		return cmd.ID
	case CommitEdit:
		return cmd.ID
	case CancelEdit:
		return cmd.ID
	case Delete:
		return cmd.ID
	}
	return 0
}

// Changed reports whether the command altered the list.
func (c Change) Changed() bool { return !c.Before.Equal(c.After) }

// Observer receives store changes.
type Observer interface {
	OnChange(Change)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Change)

func (f ObserverFunc) OnChange(c Change) { f(c) }

// NoopObserver ignores all changes.
type NoopObserver struct{}

func (NoopObserver) OnChange(Change) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes one store_change record per change to w.
// A nil writer yields a NoopObserver.
func NewLogObserver(w io.Writer, attrs ...any) Observer {
	if w == nil {
		return NoopObserver{}
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return &logObserver{logger: logger.With(attrs...)}
}

func (o *logObserver) OnChange(c Change) {
	o.logger.Info("store_change",
		"command", c.Command.Name(),
		"id", c.ID(),
		"changed", c.Changed(),
		"items", c.After.Len(),
	)
}
