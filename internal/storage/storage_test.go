package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/theme"
)

func TestLoadNotesMissingKey(t *testing.T) {
	s := NewStore(NewMemory(), nil)

	raws, err := s.LoadNotes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, raws)
	assert.Empty(t, raws)
}

func TestLoadNotesUnreadable(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	require.NoError(t, mem.Put(ctx, KeyNotes, []byte("{not json")))

	raws, err := NewStore(mem, nil).LoadNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, raws)
}

func TestSaveThenLoadNotes(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemory(), nil)

	n := note.Note{ID: "1", Title: "Groceries", Tags: []string{"home"}, Created: "01 Jan 2024", LastEdited: "01 Jan 2024"}
	require.NoError(t, s.SaveNotes(ctx, []note.Note{n}))

	raws, err := s.LoadNotes(ctx)
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, n, note.Normalize(raws[0]))
}

func TestSaveNotesQuota(t *testing.T) {
	mem := NewMemory()
	mem.FailWith(fmt.Errorf("write: %w", ErrQuotaExceeded))

	err := NewStore(mem, nil).SaveNotes(context.Background(), []note.Note{{ID: "1"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.Equal(t, "Storage is full. Delete some notes to free space.", Message(err))
}

func TestMessageGeneric(t *testing.T) {
	assert.Equal(t, "Could not save notes.", Message(errors.New("disk on fire")))
}

func TestPreferences(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemory(), nil)

	prefs, err := s.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Defaults(), prefs)

	require.NoError(t, s.SavePreferences(ctx, theme.Preferences{Theme: theme.Light}))
	prefs, err = s.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Preferences{Theme: theme.Light, Font: theme.Sans}, prefs)
}

func TestSeedOnce(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	s := NewStore(mem, nil)
	starter := []note.Raw{{"id": "s1", "title": "Welcome"}}

	seeded, err := s.SeedOnce(ctx, starter)
	require.NoError(t, err)
	assert.True(t, seeded)

	raws, err := s.LoadNotes(ctx)
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "Welcome", raws[0]["title"])

	// Emptying the collection afterwards must not bring the starter back.
	require.NoError(t, s.SaveNotes(ctx, nil))
	seeded, err = s.SeedOnce(ctx, starter)
	require.NoError(t, err)
	assert.False(t, seeded)

	raws, err = s.LoadNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, raws)
}

func TestSeedOnceKeepsExistingNotes(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	s := NewStore(mem, nil)
	require.NoError(t, s.SaveNotes(ctx, []note.Note{{ID: "mine", Title: "Mine"}}))

	seeded, err := s.SeedOnce(ctx, []note.Raw{{"id": "s1"}})
	require.NoError(t, err)
	assert.False(t, seeded)

	flag, err := mem.Get(ctx, KeySeeded)
	require.NoError(t, err)
	assert.Equal(t, "true", string(flag))

	raws, err := s.LoadNotes(ctx)
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "mine", raws[0]["id"])
}

func TestSeedOnceWriteFailure(t *testing.T) {
	mem := NewMemory()
	mem.FailWith(ErrQuotaExceeded)

	seeded, err := NewStore(mem, nil).SeedOnce(context.Background(), []note.Raw{{"id": "s1"}})
	assert.False(t, seeded)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}
