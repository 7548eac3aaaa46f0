// Package views resolves route keys and derives everything a renderer needs
// to paint a page from the application state.
package views

import (
	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
)

// MenuMode selects the actions offered beside the open note.
type MenuMode string

const (
	MenuCreate   MenuMode = "create"
	MenuEmpty    MenuMode = "empty"
	MenuArchived MenuMode = "archived"
	MenuDefault  MenuMode = "default"
)

// EmptyState selects the card shown in place of an empty note list.
type EmptyState string

const (
	EmptyNone     EmptyState = ""
	EmptyAll      EmptyState = "all"
	EmptyArchived EmptyState = "archived"
	EmptySearch   EmptyState = "search"
)

// Text is the message on the empty card. The archived and search cards
// end with a link to the create-note route.
func (e EmptyState) Text() string {
	switch e {
	case EmptyAll:
		return "You don't have any notes yet. Start a new note to capture your thoughts and ideas."
	case EmptyArchived:
		return "No notes have been archived yet. Move notes here for safekeeping, or create a new note."
	case EmptySearch:
		return "No notes match your search. Try a different keyword or create a new note."
	}
	return ""
}

// LinksToCreate reports whether the card offers a create-note link.
func (e EmptyState) LinksToCreate() bool {
	return e == EmptyArchived || e == EmptySearch
}

// Header is either a plain Title or a MutedPrefix followed by a Highlight.
type Header struct {
	Title       string
	MutedPrefix string
	Highlight   string
}

// SidebarInfo is the helper line above the note list. Highlight sits between
// Prefix and Suffix. The zero value means no helper line.
type SidebarInfo struct {
	Prefix    string
	Highlight string
	Suffix    string
}

func (i SidebarInfo) Empty() bool {
	return i == SidebarInfo{}
}

func (i SidebarInfo) String() string {
	return i.Prefix + i.Highlight + i.Suffix
}

// CreatePlaceholderTitle labels the placeholder entry shown while creating.
const CreatePlaceholderTitle = "Untitled Note"

// ViewState describes one rendered page. It holds copies and carries no
// behaviour.
type ViewState struct {
	Route        Route
	Notes        []note.Note
	ActiveNoteID string
	// ActiveNote is nil in create mode and when no note is visible.
	ActiveNote *note.Note

	IsCreateMode   bool
	IsArchivedMode bool
	IsSearchMode   bool
	HasNotes       bool

	MenuMode   MenuMode
	EmptyState EmptyState
	Header     Header
	Info       SidebarInfo

	// Tags indexes the whole collection, not just the visible notes.
	Tags        []string
	SearchQuery string

	// NavRoute is the sidebar navigation entry to highlight.
	NavRoute          string
	ShowTopDivider    bool
	CreatePlaceholder bool
}

// Options adjust a single derivation. A non-nil Query replaces the stored
// search query.
type Options struct {
	Query *string
}

// Derive resolves requested against s and returns the page to render. It
// writes the resolved route, the search query and the repaired active note
// id back into s. Calling it twice with the same inputs yields the same
// ViewState.
func Derive(s *state.AppState, requested string, opts Options) ViewState {
	route := ResolveRoute(requested)
	key := route.Key()
	if route.Kind == Tag {
		// Keep the key as given so an undecodable suffix survives.
		key = requested
	}
	s.CurrentPage = key

	query := s.SearchQuery
	if opts.Query != nil {
		query = *opts.Query
	}
	if route.Kind == Search {
		query = NormalizeSearchQuery(query)
	} else {
		query = ""
	}
	s.SearchQuery = query

	visible := notesForRoute(s.Notes, route, query)

	vs := ViewState{
		Route:          route,
		Notes:          visible,
		IsCreateMode:   route.Kind == CreateNote,
		IsArchivedMode: route.Kind == ArchivedNotes,
		IsSearchMode:   route.Kind == Search,
		HasNotes:       len(visible) > 0,
		Tags:           note.AllTags(s.Notes),
		SearchQuery:    query,
		NavRoute:       key,
	}

	if vs.IsCreateMode {
		vs.ActiveNoteID = s.ActiveNoteID
		vs.NavRoute = KeyAllNotes
		vs.CreatePlaceholder = true
	} else {
		s.ActiveNoteID = resolveActiveID(visible, s.ActiveNoteID)
		vs.ActiveNoteID = s.ActiveNoteID
		if n, ok := note.Find(visible, vs.ActiveNoteID); ok {
			n = n.Clone()
			vs.ActiveNote = &n
		}
	}

	switch {
	case vs.IsCreateMode:
		vs.MenuMode = MenuCreate
	case !vs.HasNotes:
		vs.MenuMode = MenuEmpty
	case vs.IsArchivedMode || (vs.ActiveNote != nil && vs.ActiveNote.Archived):
		vs.MenuMode = MenuArchived
	default:
		vs.MenuMode = MenuDefault
	}

	if !vs.HasNotes && !vs.IsCreateMode {
		switch route.Kind {
		case ArchivedNotes:
			vs.EmptyState = EmptyArchived
		case Search:
			vs.EmptyState = EmptySearch
		case AllNotes:
			vs.EmptyState = EmptyAll
		}
	}

	vs.ShowTopDivider = vs.IsArchivedMode && vs.HasNotes
	vs.Header, vs.Info = headerFor(route, query)

	return vs
}

func notesForRoute(notes []note.Note, route Route, query string) []note.Note {
	out := []note.Note{}
	switch route.Kind {
	case AllNotes:
		for _, n := range notes {
			if !n.Archived {
				out = append(out, n.Clone())
			}
		}
	case ArchivedNotes:
		for _, n := range notes {
			if n.Archived {
				out = append(out, n.Clone())
			}
		}
	case Tag:
		for _, n := range note.FilterByTag(notes, route.TagName) {
			out = append(out, n.Clone())
		}
	case Search:
		for _, n := range note.Search(notes, query) {
			out = append(out, n.Clone())
		}
	}
	return out
}

func resolveActiveID(visible []note.Note, current string) string {
	if len(visible) == 0 {
		return ""
	}
	if current != "" && note.Contains(visible, current) {
		return current
	}
	return visible[0].ID
}

func headerFor(route Route, query string) (Header, SidebarInfo) {
	switch route.Kind {
	case Tag:
		return Header{MutedPrefix: "Notes Tagged:", Highlight: route.TagName},
			SidebarInfo{Prefix: `All notes with the "`, Highlight: route.TagName, Suffix: `" tag are shown here.`}
	case Search:
		return Header{MutedPrefix: "Showing results for:", Highlight: query},
			SidebarInfo{Prefix: `All notes matching "`, Highlight: query, Suffix: `" are displayed below.`}
	case ArchivedNotes:
		return Header{Title: "Archived Notes"},
			SidebarInfo{Prefix: "All your archived notes are stored here. You can restore or delete them anytime."}
	}
	return Header{Title: "All Notes"}, SidebarInfo{}
}
