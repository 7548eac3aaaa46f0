package notes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwadjo-wusu-ansah/notes/internal/tui/notes"
	"github.com/kwadjo-wusu-ansah/notes/internal/views"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/cmdtest"
)

func captureBrowser(t *testing.T) *notes.Options {
	t.Helper()

	var got notes.Options
	original := runBrowser
	runBrowser = func(_ context.Context, opts notes.Options) error {
		got = opts
		return nil
	}
	t.Cleanup(func() { runBrowser = original })
	return &got
}

func TestNotesPassesRouteAndNote(t *testing.T) {
	got := captureBrowser(t)
	s, _ := cmdtest.State(t, cmdtest.Starter())

	_, err := cmdtest.Execute(t, NewCmdNotes(s), "--route", views.KeyArchivedNotes, "--note", "2")
	require.NoError(t, err)

	assert.Equal(t, views.KeyArchivedNotes, got.Route)
	assert.Equal(t, "2", got.NoteID)
	require.NotNil(t, got.Controller)
	require.NotNil(t, got.Tray)
	assert.Len(t, got.Controller.State().Notes, 3)
}

func TestNotesDefaultsToAllNotes(t *testing.T) {
	got := captureBrowser(t)
	s, _ := cmdtest.State(t, cmdtest.Starter())

	_, err := cmdtest.Execute(t, NewCmdNotes(s))
	require.NoError(t, err)

	assert.Equal(t, views.KeyAllNotes, got.Route)
	assert.Empty(t, got.NoteID)
}
