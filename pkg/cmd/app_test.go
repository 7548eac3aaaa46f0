package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwadjo-wusu-ansah/notes/internal/confirm"
	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/toast"
)

func TestFindNote(t *testing.T) {
	notes := []note.Note{
		{ID: "abc-123", Title: "Groceries"},
		{ID: "abd-456", Title: "Trip plans"},
		{ID: "xyz-789", Title: "trip plans"},
	}

	n, err := FindNote(notes, "abd-456")
	require.NoError(t, err)
	assert.Equal(t, "abd-456", n.ID)

	n, err = FindNote(notes, "groceries")
	require.NoError(t, err)
	assert.Equal(t, "abc-123", n.ID)

	n, err = FindNote(notes, "xyz")
	require.NoError(t, err)
	assert.Equal(t, "xyz-789", n.ID)

	_, err = FindNote(notes, "Trip Plans")
	assert.ErrorContains(t, err, "matches 2 notes")

	_, err = FindNote(notes, "ab")
	assert.Error(t, err)

	_, err = FindNote(notes, "nothing")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = FindNote(notes, "  ")
	assert.Error(t, err)
}

func TestPrintNotifier(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrintNotifier(&buf)

	p.Notify(toast.NoteSaved, toast.Options{})
	p.Notify(toast.Failure, toast.Options{Message: "Could not save notes."})

	assert.Contains(t, buf.String(), "Note saved successfully!")
	assert.Contains(t, buf.String(), "Could not save notes.")
}

func TestPrompterNeedsTerminalOrYes(t *testing.T) {
	ctx := context.Background()

	ok, err := Prompter{Yes: true}.Prompt(ctx, confirm.DeleteRequest)
	require.NoError(t, err)
	assert.True(t, ok)

	p := Prompter{Interactive: func() bool { return false }}
	ok, err = p.Prompt(ctx, confirm.DeleteRequest)
	assert.False(t, ok)
	assert.ErrorContains(t, err, "delete note needs confirmation")
}
