package fzf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/render"
	"github.com/kwadjo-wusu-ansah/notes/internal/theme"
)

// ErrNoSelection is returned when the finder is closed without a pick.
var ErrNoSelection = errors.New("no note selected")

// FuzzyFinder picks a note by title and tags, previewing its content.
type FuzzyFinder struct {
	Header string
	Theme  theme.Theme
	notes  []note.Note
	labels []string
}

func NewFuzzyFinder(notes []note.Note, header string) *FuzzyFinder {
	f := &FuzzyFinder{Header: header, Theme: theme.Dark, notes: notes}
	for _, n := range notes {
		f.labels = append(f.labels, Label(n))
	}
	return f
}

// Run opens the finder, optionally prefilled with query.
func (f *FuzzyFinder) Run(query string) (note.Note, error) {
	if len(f.notes) == 0 {
		return note.Note{}, ErrNoSelection
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.preview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(f.notes, func(i int) string {
		return f.labels[i]
	}, options...)
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return note.Note{}, ErrNoSelection
	}
	if err != nil {
		return note.Note{}, fmt.Errorf("error selecting note: %w", err)
	}
	return f.notes[idx], nil
}

func (f *FuzzyFinder) preview(i, w, _ int) string {
	if i < 0 || i >= len(f.notes) {
		return ""
	}
	n := f.notes[i]
	return render.Markdown(render.Document(n.Title, n.Content), w, f.Theme)
}

// Label is the line shown for n in the finder.
func Label(n note.Note) string {
	title := strings.TrimSpace(n.Title)
	if title == "" {
		title = "Untitled Note"
	}
	if n.Archived {
		title += " (archived)"
	}
	if len(n.Tags) == 0 {
		return fmt.Sprintf("%s [No tags] ", title)
	}
	return fmt.Sprintf("%s [Tags: %s] ", title, strings.Join(n.Tags, ", "))
}
