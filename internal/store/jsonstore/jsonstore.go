package jsonstore

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Makepad-fr/tally/internal/model"
)

// JSON export of a list snapshot. Human-readable, one document per call.
// Nothing is read back; the list lives in memory only.

// Snapshot is the exported document.
type Snapshot struct {
	Count int          `json:"count"`
	Items []model.Item `json:"items"`
}

// Write encodes items to w as an indented Snapshot.
func Write(w io.Writer, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(Snapshot{Count: len(items), Items: items}, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
