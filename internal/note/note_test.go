package note

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []Note {
	return []Note{
		{ID: "1", Title: "Groceries", Content: "milk and eggs", Tags: []string{"Home"}, Created: "01 Jan 2024", LastEdited: "01 Jan 2024"},
		{ID: "2", Title: "Standup", Content: "sync with team", Tags: []string{"Work", "daily"}, Created: "02 Jan 2024", LastEdited: "02 Jan 2024"},
		{ID: "3", Title: "Old plan", Content: "retired", Tags: []string{"work"}, Archived: true, Created: "03 Jan 2024", LastEdited: "03 Jan 2024"},
	}
}

func TestNewTrimsTitleAndCleansTags(t *testing.T) {
	t.Parallel()

	n := New("  Trip  ", "  keep spacing ", []string{" travel ", "", "Travel", "  "})

	assert.Equal(t, "Trip", n.Title)
	assert.Equal(t, "  keep spacing ", n.Content)
	assert.Equal(t, []string{"travel"}, n.Tags)
	assert.False(t, n.Archived)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, Today(), n.Created)
	assert.Equal(t, n.Created, n.LastEdited)
}

func TestNewGeneratesDistinctIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		id := New("t", "", nil).ID
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestDeleteRemovesOnlyMatchingNote(t *testing.T) {
	t.Parallel()

	notes := sample()
	cases := []struct {
		id      string
		wantLen int
	}{
		{"2", 2},
		{"missing", 3},
		{"", 3},
	}

	for _, tc := range cases {
		got := Delete(notes, tc.id)
		assert.Len(t, got, tc.wantLen, "id %q", tc.id)
		assert.False(t, Contains(got, tc.id) && tc.id != "", "id %q still present", tc.id)
	}
	assert.Len(t, notes, 3, "input must not change")
}

func TestUpdateMergesFieldsAndRefreshesLastEdited(t *testing.T) {
	t.Parallel()

	notes := sample()
	title := "Standup notes"
	got := Update(notes, "2", Fields{Title: &title})

	updated, ok := Find(got, "2")
	require.True(t, ok)
	assert.Equal(t, "Standup notes", updated.Title)
	assert.Equal(t, Today(), updated.LastEdited)
	assert.Equal(t, notes[1].Content, updated.Content)
	assert.Equal(t, notes[1].Tags, updated.Tags)
	assert.Equal(t, notes[1].Created, updated.Created)
	assert.Equal(t, notes[1].Archived, updated.Archived)

	assert.Equal(t, notes[0], got[0])
	assert.Equal(t, notes[2], got[2])
	assert.Equal(t, "Standup", notes[1].Title, "input must not change")
}

func TestUpdateUnknownIDChangesNothing(t *testing.T) {
	t.Parallel()

	notes := sample()
	title := "x"
	assert.Equal(t, notes, Update(notes, "nope", Fields{Title: &title}))
}

func TestToggleArchive(t *testing.T) {
	t.Parallel()

	notes := sample()
	got := ToggleArchive(notes, "3")

	n, _ := Find(got, "3")
	assert.False(t, n.Archived)
	assert.Equal(t, Today(), n.LastEdited)
	assert.True(t, notes[2].Archived)

	again, _ := Find(ToggleArchive(got, "3"), "3")
	assert.True(t, again.Archived)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	notes := sample()

	assert.Equal(t, notes, Search(notes, ""))
	assert.Equal(t, notes, Search(notes, "   "))

	ids := func(ns []Note) []string {
		out := []string{}
		for _, n := range ns {
			out = append(out, n.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1"}, ids(Search(notes, "MILK")))
	assert.Equal(t, []string{"2", "3"}, ids(Search(notes, "work")))
	assert.Equal(t, []string{"2"}, ids(Search(notes, "work daily")))
	assert.Empty(t, Search(notes, "zebra"))
}

func TestFilterByTagIgnoresCase(t *testing.T) {
	t.Parallel()

	notes := sample()

	upper := FilterByTag(notes, "Work")
	lower := FilterByTag(notes, "work")
	assert.Equal(t, upper, lower)
	assert.Len(t, upper, 2)
	assert.Equal(t, notes, FilterByTag(notes, ""))
	assert.Empty(t, FilterByTag(notes, "wor"))
}

func TestAllTags(t *testing.T) {
	t.Parallel()

	got := AllTags([]Note{{Tags: []string{"b"}}, {Tags: []string{"a", "b"}}})
	assert.Equal(t, []string{"a", "b"}, got)

	mixed := AllTags(sample())
	assert.Equal(t, []string{"daily", "Home", "work", "Work"}, mixed)

	assert.Empty(t, AllTags(nil))
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	d := time.Date(2024, time.October, 29, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "29 Oct 2024", FormatDate(d))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := Note{ID: "1", Title: "A", Tags: []string{"x"}}
	b := a.Clone()
	assert.True(t, a.Equal(b))

	b.Tags[0] = "y"
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(Note{ID: "1", Title: "A", Tags: []string{"x"}, Archived: true}))
}
