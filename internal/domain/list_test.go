package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label struct{ name string }

func newLabel() *label { return &label{} }

func listOf(names ...string) *List[*label] {
	l := NewList(newLabel)
	for _, n := range names {
		l.Push(&label{name: n})
	}
	return l
}

func names(l *List[*label]) []string {
	var out []string
	for _, item := range l.Items() {
		out = append(out, item.name)
	}
	return out
}

func TestList_EmptyHasNoCurrent(t *testing.T) {
	l := NewList(NewTask)

	_, err := l.Current()
	assert.ErrorIs(t, err, ErrNoCurrentItem)
	assert.Equal(t, -1, l.CurrentIndex())

	added := l.PushDefault()
	current, err := l.Current()
	require.NoError(t, err)
	assert.Same(t, added, current)
}

func TestList_PushDefaultKeepsPointer(t *testing.T) {
	l := listOf("A", "B")
	require.NoError(t, l.SetCurrent(1))

	l.PushDefault()

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 1, l.CurrentIndex())
}

func TestList_Remove(t *testing.T) {
	tests := []struct {
		name        string
		items       []string
		current     int
		remove      int
		wantItems   []string
		wantCurrent string
		wantIndex   int
	}{
		{
			name:        "before current follows element",
			items:       []string{"A", "B", "C"},
			current:     2,
			remove:      0,
			wantItems:   []string{"B", "C"},
			wantCurrent: "C",
			wantIndex:   1,
		},
		{
			name:        "after current leaves pointer",
			items:       []string{"A", "B", "C"},
			current:     0,
			remove:      2,
			wantItems:   []string{"A", "B"},
			wantCurrent: "A",
			wantIndex:   0,
		},
		{
			name:        "current selects next",
			items:       []string{"A", "B", "C"},
			current:     1,
			remove:      1,
			wantItems:   []string{"A", "C"},
			wantCurrent: "C",
			wantIndex:   1,
		},
		{
			name:        "current last selects previous",
			items:       []string{"A", "B", "C"},
			current:     2,
			remove:      2,
			wantItems:   []string{"A", "B"},
			wantCurrent: "B",
			wantIndex:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := listOf(tt.items...)
			require.NoError(t, l.SetCurrent(tt.current))

			require.NoError(t, l.Remove(tt.remove))

			assert.Equal(t, tt.wantItems, names(l))
			assert.Equal(t, tt.wantIndex, l.CurrentIndex())
			current, err := l.Current()
			require.NoError(t, err)
			assert.Equal(t, tt.wantCurrent, current.name)
		})
	}
}

func TestList_RemoveLastElement(t *testing.T) {
	l := listOf("A")

	require.NoError(t, l.Remove(0))

	assert.Equal(t, 0, l.Len())
	_, err := l.Current()
	assert.ErrorIs(t, err, ErrNoCurrentItem)
}

func TestList_RemoveOutOfRange(t *testing.T) {
	l := listOf("A", "B")

	for _, idx := range []int{-1, 2, 10} {
		err := l.Remove(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
	assert.Equal(t, []string{"A", "B"}, names(l))
}

func TestList_SetCurrent(t *testing.T) {
	l := listOf("A", "B", "C")

	require.NoError(t, l.SetCurrent(2))
	assert.Equal(t, 2, l.CurrentIndex())

	assert.ErrorIs(t, l.SetCurrent(3), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.SetCurrent(-1), ErrIndexOutOfRange)
	assert.Equal(t, 2, l.CurrentIndex(), "rejected set must not move the pointer")
}

func TestList_Update(t *testing.T) {
	l := listOf("A", "B")

	require.NoError(t, l.Update(1, func(item *label) { item.name = "Z" }))
	assert.Equal(t, []string{"A", "Z"}, names(l))

	called := false
	err := l.Update(5, func(*label) { called = true })
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.False(t, called)
}

func TestList_ItemsIsACopy(t *testing.T) {
	l := listOf("A", "B")

	items := l.Items()
	items[0] = &label{name: "X"}

	assert.Equal(t, []string{"A", "B"}, names(l))
}

func TestList_Find(t *testing.T) {
	l := listOf("A", "B", "B")

	assert.Equal(t, 1, l.Find(func(item *label) bool { return item.name == "B" }))
	assert.Equal(t, -1, l.Find(func(item *label) bool { return item.name == "Q" }))
}

func TestList_ChooseRandomDistinct(t *testing.T) {
	l := listOf("A", "B")

	idx, err := l.ChooseRandomDistinct(DefaultRand())
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 1, l.CurrentIndex())

	idx, err = l.ChooseRandomDistinct(DefaultRand())
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestList_ChooseRandomDistinctNoop(t *testing.T) {
	single := listOf("A")
	idx, err := single.ChooseRandomDistinct(DefaultRand())
	assert.ErrorIs(t, err, ErrSelectionNoop)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, single.CurrentIndex())

	empty := listOf()
	idx, err = empty.ChooseRandomDistinct(DefaultRand())
	assert.ErrorIs(t, err, ErrNoCurrentItem)
	assert.Equal(t, -1, idx)
}

func TestRestoreList(t *testing.T) {
	items := []*label{{name: "A"}, {name: "B"}}

	l := RestoreList(newLabel, items, 1)
	assert.Equal(t, 1, l.CurrentIndex())

	stale := RestoreList(newLabel, items, 7)
	assert.Equal(t, 0, stale.CurrentIndex())

	items[0] = &label{name: "X"}
	assert.Equal(t, []string{"A", "B"}, names(l))
}
