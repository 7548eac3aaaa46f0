package notes

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/render"
	"github.com/kwadjo-wusu-ansah/notes/internal/views"
)

const sidebarTitleWidth = 28

type ListItem struct {
	id          string
	title       string
	tags        []string
	lastEdited  string
	archived    bool
	placeholder bool
}

func newListItem(n note.Note) ListItem {
	return ListItem{
		id:         n.ID,
		title:      n.Title,
		tags:       n.Tags,
		lastEdited: n.LastEdited,
		archived:   n.Archived,
	}
}

func (i ListItem) ID() string { return i.id }

func (i ListItem) Title() string {
	if i.placeholder {
		return views.CreatePlaceholderTitle
	}
	return render.Title(i.title, sidebarTitleWidth)
}

func (i ListItem) Description() string {
	if i.placeholder {
		return "Unsaved"
	}

	description := ""
	if len(i.tags) == 0 {
		description += "No tags"
	} else {
		description += strings.Join(i.tags, ", ")
	}
	if i.lastEdited != "" {
		description += " · " + i.lastEdited
	}
	return description
}

func (i ListItem) FilterValue() string {
	return i.title + " [" + strings.Join(i.tags, " ") + "]"
}

// castToListItems builds the sidebar rows for vs, with the unsaved
// placeholder on top while creating.
func castToListItems(vs views.ViewState) []list.Item {
	items := make([]list.Item, 0, len(vs.Notes)+1)
	if vs.CreatePlaceholder {
		items = append(items, ListItem{placeholder: true})
	}
	for _, n := range vs.Notes {
		items = append(items, newListItem(n))
	}
	return items
}
