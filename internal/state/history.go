package state

// History is a linear undo log of snapshots. Index always points at the
// visible snapshot; snapshots after it form the redo branch until the next
// discrete commit discards them.
type History struct {
	snapshots []Snapshot
	index     int
}

// NewHistory starts a log holding only initial.
func NewHistory(initial Snapshot) *History {
	return &History{snapshots: []Snapshot{initial}}
}

// Current returns the visible snapshot.
func (h *History) Current() Snapshot {
	return h.snapshots[h.index]
}

// Commit records s. A discrete commit drops the redo branch, appends s and
// moves the index onto it. An overwrite commit replaces the visible
// snapshot in place, so any number of them add no undo step.
func (h *History) Commit(s Snapshot, overwrite bool) {
	if overwrite {
		h.snapshots[h.index] = s
		return
	}
	h.snapshots = append(h.snapshots[:h.index+1:h.index+1], s)
	h.index++
}

// Undo steps back one snapshot. It reports whether the index moved.
func (h *History) Undo() bool {
	if h.index == 0 {
		return false
	}
	h.index--
	return true
}

// Redo steps forward one snapshot. It reports whether the index moved.
func (h *History) Redo() bool {
	if h.index >= len(h.snapshots)-1 {
		return false
	}
	h.index++
	return true
}

// CanUndo reports whether Undo would move.
func (h *History) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether Redo would move.
func (h *History) CanRedo() bool { return h.index < len(h.snapshots)-1 }

// Len returns the number of recorded snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// Index returns the position of the visible snapshot.
func (h *History) Index() int { return h.index }
