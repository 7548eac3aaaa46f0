package notes

import (
	"testing"

	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/views"
)

func TestListItemDescription(t *testing.T) {
	item := newListItem(note.Note{ID: "1", Title: "Plan", Tags: []string{"Work", "q3"}, LastEdited: "01 Jan 2024"})

	if got := item.Description(); got != "Work, q3 · 01 Jan 2024" {
		t.Fatalf("unexpected description: %q", got)
	}
	if got := (ListItem{}).Description(); got != "No tags" {
		t.Fatalf("unexpected description without tags: %q", got)
	}
}

func TestCastToListItemsAddsPlaceholder(t *testing.T) {
	vs := views.ViewState{
		Notes:             []note.Note{{ID: "1", Title: "One"}},
		CreatePlaceholder: true,
	}

	items := castToListItems(vs)
	if len(items) != 2 {
		t.Fatalf("expected placeholder plus one note, got %d items", len(items))
	}

	first := items[0].(ListItem)
	if first.Title() != views.CreatePlaceholderTitle || first.ID() != "" {
		t.Fatalf("unexpected placeholder item: %#v", first)
	}
	if items[1].(ListItem).ID() != "1" {
		t.Fatalf("unexpected second item: %#v", items[1])
	}
}
