package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(scale float64) Transform {
	return Transform{Scale: scale}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory()

	_, ok := h.Current()
	assert.False(t, ok)
	_, ok = h.Undo()
	assert.False(t, ok)
	_, ok = h.Redo()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistory_UndoRedo(t *testing.T) {
	h := NewHistory()
	t1, t2 := snapshot(1), snapshot(2)

	h.Add(t1)
	h.Add(t2)

	got, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, t1, got)

	current, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, t1, current)

	got, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, t2, got)

	// no wraparound at the newest snapshot
	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestHistory_AddDiscardsRedoBranch(t *testing.T) {
	h := NewHistory()
	t1, t2, t3 := snapshot(1), snapshot(2), snapshot(3)

	h.Add(t1)
	h.Add(t2)

	got, ok := h.Undo()
	require.True(t, ok)
	require.Equal(t, t1, got)

	h.Add(t3)

	// the branch holding t2 was discarded by the new write
	_, ok = h.Redo()
	assert.False(t, ok)
	assert.Equal(t, 2, h.Len())

	got, ok = h.Undo()
	require.True(t, ok)
	assert.Equal(t, t1, got)
}

func TestHistory_UndoStopsAtOldestSnapshot(t *testing.T) {
	h := NewHistory()
	t1 := snapshot(1)
	h.Add(t1)

	_, ok := h.Undo()
	assert.False(t, ok)

	current, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, t1, current)
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory()
	h.Add(snapshot(1))
	h.Add(snapshot(2))

	h.Clear()

	assert.Equal(t, 0, h.Len())
	_, ok := h.Current()
	assert.False(t, ok)

	// reusable after clearing
	h.Add(snapshot(3))
	current, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, snapshot(3), current)
}
