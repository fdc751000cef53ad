package transform

// History is a linear undo/redo buffer of transform snapshots: an
// append-only slice plus a cursor, truncated on new writes. Branching
// history is not supported. A History belongs to exactly one editing
// session and is not safe for concurrent use.
type History struct {
	snapshots []Transform
	cursor    int
}

// NewHistory returns an empty history with the cursor before the first
// snapshot.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Add records a snapshot. Any redo branch beyond the cursor is discarded
// before the snapshot is appended and the cursor advanced.
func (h *History) Add(t Transform) {
	h.snapshots = append(h.snapshots[:h.cursor+1], t)
	h.cursor = len(h.snapshots) - 1
}

// Undo steps the cursor back one snapshot and returns the transform now at
// the cursor. It reports ok=false without moving when there is nothing
// earlier to return.
func (h *History) Undo() (Transform, bool) {
	if h.cursor <= 0 {
		return Transform{}, false
	}
	h.cursor--
	return h.snapshots[h.cursor], true
}

// Redo steps the cursor forward one snapshot and returns the transform now
// at the cursor. It reports ok=false without moving at the newest snapshot.
func (h *History) Redo() (Transform, bool) {
	if h.cursor >= len(h.snapshots)-1 {
		return Transform{}, false
	}
	h.cursor++
	return h.snapshots[h.cursor], true
}

// Current returns the snapshot at the cursor, or ok=false when the history
// is empty or fully undone.
func (h *History) Current() (Transform, bool) {
	if h.cursor < 0 || h.cursor >= len(h.snapshots) {
		return Transform{}, false
	}
	return h.snapshots[h.cursor], true
}

// Clear resets the history to the empty state.
func (h *History) Clear() {
	h.snapshots = nil
	h.cursor = -1
}

// Len returns the number of recorded snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.snapshots)-1
}
