// Package note defines the note record and the pure operations over a note
// collection. Nothing in this package mutates its inputs.
package note

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DateLayout is the day-granularity format used for created and lastEdited.
const DateLayout = "02 Jan 2006"

// Note is a single user note.
type Note struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	Archived   bool     `json:"archived"`
	Created    string   `json:"created"`
	LastEdited string   `json:"lastEdited"`
}

// Fields holds a partial update. Nil pointers and a nil Tags slice leave the
// corresponding field untouched.
type Fields struct {
	Title    *string
	Content  *string
	Tags     []string
	Archived *bool
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current day in DateLayout.
func Today() string {
	return FormatDate(time.Now())
}

// NewID returns a time-ordered unique id: a millisecond timestamp followed by
// random bits.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// New builds a fresh note with a generated id and both dates set to today.
func New(title, content string, tags []string) Note {
	today := Today()
	return Note{
		ID:         NewID(),
		Title:      strings.TrimSpace(title),
		Content:    content,
		Tags:       DedupeTags(NormalizeTags(tags)),
		Archived:   false,
		Created:    today,
		LastEdited: today,
	}
}

// Clone returns a deep copy of n.
func (n Note) Clone() Note {
	n.Tags = slices.Clone(n.Tags)
	return n
}

// Equal reports whether n and o hold the same values.
func (n Note) Equal(o Note) bool {
	return n.ID == o.ID &&
		n.Title == o.Title &&
		n.Content == o.Content &&
		n.Archived == o.Archived &&
		n.Created == o.Created &&
		n.LastEdited == o.LastEdited &&
		slices.Equal(n.Tags, o.Tags)
}

// HasTag reports whether n carries tag, ignoring case.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Find returns the note with the given id.
func Find(notes []Note, id string) (Note, bool) {
	for _, n := range notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Contains reports whether a note with id is present in notes.
func Contains(notes []Note, id string) bool {
	_, ok := Find(notes, id)
	return ok
}

// Update returns a copy of notes where the note matching id has f merged in
// and its lastEdited refreshed. An unknown id changes nothing.
func Update(notes []Note, id string, f Fields) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		if n.ID != id {
			out[i] = n
			continue
		}
		if f.Title != nil {
			n.Title = *f.Title
		}
		if f.Content != nil {
			n.Content = *f.Content
		}
		if f.Tags != nil {
			n.Tags = slices.Clone(f.Tags)
		}
		if f.Archived != nil {
			n.Archived = *f.Archived
		}
		n.LastEdited = Today()
		out[i] = n
	}
	return out
}

// Delete returns notes without the note matching id.
func Delete(notes []Note, id string) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// ToggleArchive flips the archived flag of the note matching id.
func ToggleArchive(notes []Note, id string) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		if n.ID == id {
			n.Archived = !n.Archived
			n.LastEdited = Today()
		}
		out[i] = n
	}
	return out
}

// Search keeps the notes whose title, content or space-joined tags contain
// query, ignoring case. A blank query returns notes as given.
func Search(notes []Note, query string) []Note {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return notes
	}

	out := []Note{}
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) ||
			strings.Contains(strings.ToLower(strings.Join(n.Tags, " ")), q) {
			out = append(out, n)
		}
	}
	return out
}

// FilterByTag keeps the notes tagged with tag, ignoring case. A blank tag
// returns notes as given.
func FilterByTag(notes []Note, tag string) []Note {
	t := strings.TrimSpace(tag)
	if t == "" {
		return notes
	}

	out := []Note{}
	for _, n := range notes {
		if n.HasTag(t) {
			out = append(out, n)
		}
	}
	return out
}

// AllTags returns every distinct tag in notes, sorted for display. Tags that
// differ only in case are listed separately.
func AllTags(notes []Note) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, n := range notes {
		for _, t := range n.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}

	c := collate.New(language.English)
	slices.SortStableFunc(tags, func(a, b string) int {
		return c.CompareString(a, b)
	})
	return tags
}
