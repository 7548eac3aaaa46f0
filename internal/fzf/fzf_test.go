package fzf

import (
	"errors"
	"strings"
	"testing"

	"github.com/kwadjo-wusu-ansah/notes/internal/note"
)

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		note note.Note
		want string
	}{
		{"no tags", note.Note{Title: "Groceries"}, "Groceries [No tags] "},
		{"tags", note.Note{Title: "Plan", Tags: []string{"Work", "q3"}}, "Plan [Tags: Work, q3] "},
		{"untitled", note.Note{Title: " "}, "Untitled Note [No tags] "},
		{"archived", note.Note{Title: "Old", Archived: true}, "Old (archived) [No tags] "},
	}

	for _, tt := range tests {
		if got := Label(tt.note); got != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRunWithoutNotes(t *testing.T) {
	t.Parallel()

	_, err := NewFuzzyFinder(nil, "Notes").Run("")
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()

	f := NewFuzzyFinder([]note.Note{{Title: "Preview", Content: "some distinctive words"}}, "")

	if got := f.preview(-1, 40, 10); got != "" {
		t.Fatalf("expected empty preview for no selection, got %q", got)
	}
	got := f.preview(0, 60, 10)
	if strings.TrimSpace(got) == "" || strings.Contains(got, "Error rendering") {
		t.Fatalf("unexpected preview: %q", got)
	}
}
