package state

import (
	"github.com/kwadjo-wusu-ansah/notes/internal/note"
)

// AppState is the mutable application state. The controller is its only
// writer; the route resolver revalidates ActiveNoteID on every derivation.
type AppState struct {
	Notes        []note.Note
	ActiveNoteID string
	CurrentPage  string
	SearchQuery  string
}

// NewAppState starts on all-notes with the first note selected.
func NewAppState(notes []note.Note) *AppState {
	s := &AppState{
		Notes:       notes,
		CurrentPage: "all-notes",
	}
	if s.Notes == nil {
		s.Notes = []note.Note{}
	}
	if len(s.Notes) > 0 {
		s.ActiveNoteID = s.Notes[0].ID
	}
	return s
}

// ActiveNote returns the note ActiveNoteID points at, if it still exists.
func (s *AppState) ActiveNote() (note.Note, bool) {
	if s.ActiveNoteID == "" {
		return note.Note{}, false
	}
	return note.Find(s.Notes, s.ActiveNoteID)
}
