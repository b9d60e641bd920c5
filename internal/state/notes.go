package state

import (
	"slices"

	"github.com/google/uuid"
)

// Note is a sticky note. Notes are kept apart from the surface elements and
// are not undoable.
type Note struct {
	ID   string
	Text string
}

// NewNote returns a note with a fresh random id.
func NewNote(text string) Note {
	return Note{ID: uuid.NewString(), Text: text}
}

// NoteActionType names a note reducer action.
type NoteActionType string

const (
	AddNote    NoteActionType = "add_note"
	DeleteNote NoteActionType = "delete_note"
)

// NoteAction is dispatched to ReduceNotes.
type NoteAction struct {
	Type NoteActionType
	Note Note
}

// NotesState is the whole note collection.
type NotesState struct {
	Notes []Note
}

// ReduceNotes returns the collection after applying a. The previous state is
// left untouched.
func ReduceNotes(prev NotesState, a NoteAction) (NotesState, error) {
	switch a.Type {
	case AddNote:
		notes := slices.Clone(prev.Notes)
		return NotesState{Notes: append(notes, a.Note)}, nil
	case DeleteNote:
		notes := slices.DeleteFunc(slices.Clone(prev.Notes), func(n Note) bool {
			return n.ID == a.Note.ID
		})
		return NotesState{Notes: notes}, nil
	}
	return prev, &ModelError{Op: "reduce notes", Value: a.Type}
}

// NoteStore owns a NotesState and applies actions to it.
type NoteStore struct {
	state    NotesState
	OnChange func(NotesState)
}

// Dispatch applies a and notifies OnChange.
func (s *NoteStore) Dispatch(a NoteAction) error {
	next, err := ReduceNotes(s.state, a)
	if err != nil {
		return err
	}
	s.state = next
	if s.OnChange != nil {
		s.OnChange(next)
	}
	return nil
}

// State returns the current collection.
func (s *NoteStore) State() NotesState {
	return s.state
}
