package state

import (
	"fmt"
	"iter"
	"slices"
)

// Snapshot is the whole surface at one history step: an arena of elements
// where an element's id is its slot. Elements are copied on the way in and
// on the way out and never modified in place, so derived snapshots share
// the slots they leave untouched.
type Snapshot struct {
	slots []Element
}

// NewSnapshot copies elems into a fresh snapshot.
func NewSnapshot(elems ...Element) Snapshot {
	s := Snapshot{slots: make([]Element, len(elems))}
	for i, e := range elems {
		s.slots[i] = e.Clone()
	}
	return s
}

// Len returns the number of slots.
func (s Snapshot) Len() int { return len(s.slots) }

// At returns a copy of the element in slot id.
func (s Snapshot) At(id int) Element {
	return s.slots[id].Clone()
}

// All yields every element in slot order. The yielded elements belong to
// the snapshot and must not be modified.
func (s Snapshot) All() iter.Seq2[int, Element] {
	return func(yield func(int, Element) bool) {
		for i, e := range s.slots {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Append returns a copy of s with e in a new last slot. e must already carry
// that slot as its id.
func (s Snapshot) Append(e Element) Snapshot {
	if e.ID() != len(s.slots) {
		panic(fmt.Sprintf("state: appending element %d to snapshot of length %d", e.ID(), len(s.slots)))
	}
	slots := make([]Element, len(s.slots), len(s.slots)+1)
	copy(slots, s.slots)
	return Snapshot{slots: append(slots, e.Clone())}
}

// Replace returns a copy of s with slot id holding e.
func (s Snapshot) Replace(id int, e Element) Snapshot {
	if id < 0 || id >= len(s.slots) || e.ID() != id {
		panic(fmt.Sprintf("state: replacing slot %d with element %d in snapshot of length %d", id, e.ID(), len(s.slots)))
	}
	slots := slices.Clone(s.slots)
	slots[id] = e.Clone()
	return Snapshot{slots: slots}
}
