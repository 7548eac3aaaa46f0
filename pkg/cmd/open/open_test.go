package open

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwadjo-wusu-ansah/notes/internal/fzf"
	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/tui/notes"
	"github.com/kwadjo-wusu-ansah/notes/internal/views"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/cmdtest"
)

type picked struct {
	opts    notes.Options
	started bool
	query   string
}

// stub answers the finder with pick, or with no selection when err is set,
// and records what reaches the browser.
func stub(t *testing.T, pick note.Note, err error) *picked {
	t.Helper()

	p := &picked{}
	origRun, origPick := runBrowser, pickNote
	runBrowser = func(_ context.Context, opts notes.Options) error {
		p.opts = opts
		p.started = true
		return nil
	}
	pickNote = func(_ *fzf.FuzzyFinder, query string) (note.Note, error) {
		p.query = query
		return pick, err
	}
	t.Cleanup(func() { runBrowser, pickNote = origRun, origPick })
	return p
}

func TestOpenActiveNote(t *testing.T) {
	p := stub(t, note.Note{ID: "3", Title: "Gamma"}, nil)
	s, _ := cmdtest.State(t, cmdtest.Starter())

	_, err := cmdtest.Execute(t, NewCmdOpen(s), "gam")
	require.NoError(t, err)

	require.True(t, p.started)
	assert.Equal(t, "gam", p.query)
	assert.Equal(t, views.KeyAllNotes, p.opts.Route)
	assert.Equal(t, "3", p.opts.NoteID)
	assert.NotNil(t, p.opts.Controller)
}

func TestOpenArchivedNote(t *testing.T) {
	p := stub(t, note.Note{ID: "2", Title: "Beta", Archived: true}, nil)
	s, _ := cmdtest.State(t, cmdtest.Starter())

	_, err := cmdtest.Execute(t, NewCmdOpen(s))
	require.NoError(t, err)

	assert.Equal(t, views.KeyArchivedNotes, p.opts.Route)
	assert.Equal(t, "2", p.opts.NoteID)
}

func TestOpenPrintID(t *testing.T) {
	p := stub(t, note.Note{ID: "1", Title: "Alpha"}, nil)
	s, _ := cmdtest.State(t, cmdtest.Starter())

	out, err := cmdtest.Execute(t, NewCmdOpen(s), "--print")
	require.NoError(t, err)

	assert.Equal(t, "1\n", out)
	assert.False(t, p.started)
}

func TestOpenNoSelection(t *testing.T) {
	p := stub(t, note.Note{}, fzf.ErrNoSelection)
	s, _ := cmdtest.State(t, cmdtest.Starter())

	out, err := cmdtest.Execute(t, NewCmdOpen(s))
	require.NoError(t, err)

	assert.Empty(t, out)
	assert.False(t, p.started)
}
