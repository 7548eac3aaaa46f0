package views

import (
	"net/url"
	"strings"
)

type Kind int

const (
	AllNotes Kind = iota
	ArchivedNotes
	CreateNote
	Search
	Tag
)

const (
	KeyAllNotes      = "all-notes"
	KeyArchivedNotes = "archived-notes"
	KeyCreateNote    = "create-note"
	KeySearch        = "search"
	tagPrefix        = "tag-"
)

// Route identifies the current view. TagName is only set for Tag routes and
// holds the decoded tag.
type Route struct {
	Kind    Kind
	TagName string
}

// ResolveRoute parses a route key. Unknown keys resolve to all-notes.
func ResolveRoute(key string) Route {
	switch key {
	case KeyAllNotes:
		return Route{Kind: AllNotes}
	case KeyArchivedNotes:
		return Route{Kind: ArchivedNotes}
	case KeyCreateNote:
		return Route{Kind: CreateNote}
	case KeySearch:
		return Route{Kind: Search}
	}
	if IsTagRoute(key) {
		return Route{Kind: Tag, TagName: TagFromRoute(key)}
	}
	return Route{Kind: AllNotes}
}

// Key renders r back into its route key.
func (r Route) Key() string {
	switch r.Kind {
	case ArchivedNotes:
		return KeyArchivedNotes
	case CreateNote:
		return KeyCreateNote
	case Search:
		return KeySearch
	case Tag:
		return TagRoute(r.TagName)
	}
	return KeyAllNotes
}

func (r Route) String() string { return r.Key() }

// TagRoute builds the route key for tag.
func TagRoute(tag string) string {
	return tagPrefix + url.PathEscape(tag)
}

// IsTagRoute reports whether key names a tag view.
func IsTagRoute(key string) bool {
	return strings.HasPrefix(key, tagPrefix)
}

// TagFromRoute decodes the tag name in key. A suffix that fails to decode
// is returned as is.
func TagFromRoute(key string) string {
	raw := strings.TrimPrefix(key, tagPrefix)
	tag, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return tag
}

// NormalizeSearchQuery trims surrounding whitespace.
func NormalizeSearchQuery(q string) string {
	return strings.TrimSpace(q)
}
