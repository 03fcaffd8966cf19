package store

import (
	"testing"

	"github.com/Makepad-fr/tally/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAdd(t *testing.T, l List, title, qty string) List {
	t.Helper()
	next, _, err := l.Add(title, qty)
	require.NoError(t, err)
	return next
}

func TestAdd_AppendsAtEnd(t *testing.T) {
	l := mustAdd(t, NewList(Sequential), "Bread", "2")
	next, it, err := l.Add("Eggs", "6")
	require.NoError(t, err)

	assert.Equal(t, l.Len()+1, next.Len())
	assert.Equal(t, it, next.Items()[next.Len()-1])
	assert.Equal(t, "Eggs", it.Title)
	assert.Equal(t, 6, it.Quantity)
	assert.False(t, it.IsEditing)
}

func TestAdd_RejectsEmptyFields(t *testing.T) {
	l := mustAdd(t, NewList(Sequential), "Bread", "2")

	for _, tc := range []struct{ name, title, qty string }{
		{"empty title", "", "2"},
		{"empty quantity", "Milk", ""},
		{"both empty", "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			next, _, err := l.Add(tc.title, tc.qty)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Equal(t, MsgMissingFields, err.Error())
			assert.Equal(t, l.Items(), next.Items())
		})
	}
}

func TestAdd_WhitespaceTitleAccepted(t *testing.T) {
	_, it, err := NewList(Sequential).Add("  ", "1")
	require.NoError(t, err)
	assert.Equal(t, "  ", it.Title)
}

func TestAdd_UnparseableQuantityDefaultsToOne(t *testing.T) {
	for _, qty := range []string{"abc", "x", "-3", " 4", "1.5", "99999999999999999999"} {
		_, it, err := NewList(Sequential).Add("Milk", qty)
		require.NoError(t, err)
		assert.Equal(t, 1, it.Quantity, "quantity %q", qty)
	}
}

func TestAdd_DoesNotMutateReceiver(t *testing.T) {
	l := mustAdd(t, NewList(Sequential), "Bread", "2")
	snapshot := l.Items()

	_ = mustAdd(t, l, "Eggs", "1")
	_ = l.BeginEdit(1)
	_ = l.Delete(1)

	assert.Equal(t, snapshot, l.Items())
}

func TestScenario_AddThenDelete(t *testing.T) {
	l := NewList(Sequential)
	l = mustAdd(t, l, "Bread", "2")
	l = mustAdd(t, l, "Eggs", "x")

	assert.Equal(t, []model.Item{
		{ID: 1, Title: "Bread", Quantity: 2},
		{ID: 2, Title: "Eggs", Quantity: 1},
	}, l.Items())

	l = l.Delete(1)
	assert.Equal(t, []model.Item{{ID: 2, Title: "Eggs", Quantity: 1}}, l.Items())
}

func TestSequentialIDs_NotReusedAfterDelete(t *testing.T) {
	l := NewList(Sequential)
	l = mustAdd(t, l, "a", "1")
	l = mustAdd(t, l, "b", "1")
	l = l.Delete(2)
	l = mustAdd(t, l, "c", "1")

	ids := []int{}
	for _, it := range l.Items() {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []int{1, 3}, ids)
}

func TestPositionalIDs_CollideAfterDelete(t *testing.T) {
	l := NewList(Positional)
	l = mustAdd(t, l, "a", "1")
	l = mustAdd(t, l, "b", "1")
	l = l.Delete(1)
	l = mustAdd(t, l, "c", "1")

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
}

func TestBeginEdit_LeavesOtherFlags(t *testing.T) {
	l := NewList(Sequential)
	l = mustAdd(t, l, "a", "1")
	l = mustAdd(t, l, "b", "1")
	l = l.BeginEdit(1).BeginEdit(2)

	for _, it := range l.Items() {
		assert.True(t, it.IsEditing, "item %d", it.ID)
	}
}

func TestBeginEdit_UnknownIDIsNoop(t *testing.T) {
	l := mustAdd(t, NewList(Sequential), "a", "1")
	assert.Equal(t, l.Items(), l.BeginEdit(42).Items())
}

func TestBeginThenCancel_KeepsValues(t *testing.T) {
	l := mustAdd(t, NewList(Sequential), "Bread", "2")
	l = l.BeginEdit(1).CancelEdit(1)

	it, ok := l.Find(1)
	require.True(t, ok)
	assert.Equal(t, model.Item{ID: 1, Title: "Bread", Quantity: 2}, it)
}

func TestBeginThenCommit_UpdatesOnlyTarget(t *testing.T) {
	l := NewList(Sequential)
	l = mustAdd(t, l, "Bread", "2")
	l = mustAdd(t, l, "Eggs", "6")
	l = l.BeginEdit(2).BeginEdit(1).CommitEdit(1, "Milk", 3)

	assert.Equal(t, []model.Item{
		{ID: 1, Title: "Milk", Quantity: 3},
		{ID: 2, Title: "Eggs", Quantity: 6, IsEditing: true},
	}, l.Items())
}

func TestDelete_KeepsOrder(t *testing.T) {
	l := NewList(Sequential)
	for _, title := range []string{"a", "b", "c", "d"} {
		l = mustAdd(t, l, title, "1")
	}
	l = l.Delete(2)

	var titles []string
	for _, it := range l.Items() {
		titles = append(titles, it.Title)
	}
	assert.Equal(t, []string{"a", "c", "d"}, titles)
}

func TestDelete_UnknownIDIsNoop(t *testing.T) {
	l := mustAdd(t, NewList(Sequential), "a", "1")
	assert.Equal(t, l.Items(), l.Delete(7).Items())
}

func TestParseIDScheme(t *testing.T) {
	s, err := ParseIDScheme("")
	require.NoError(t, err)
	assert.Equal(t, Sequential, s)

	s, err = ParseIDScheme("Positional")
	require.NoError(t, err)
	assert.Equal(t, Positional, s)
	assert.Equal(t, "positional", s.String())

	_, err = ParseIDScheme("random")
	assert.Error(t, err)
}
