// Package cmdtest builds command state over an in-memory store for tests.
package cmdtest

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"

	"github.com/kwadjo-wusu-ansah/notes/internal/config"
	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	"github.com/kwadjo-wusu-ansah/notes/internal/storage"
)

// Starter is a small collection covering active, archived and tagged notes.
func Starter() []note.Raw {
	return []note.Raw{
		{"id": "1", "title": "Alpha", "content": "first body", "tags": []any{"Work"}, "lastEdited": "01 Jan 2024"},
		{"id": "2", "title": "Beta", "content": "second body", "tags": []any{"home"}, "isArchived": true, "lastEdited": "02 Jan 2024"},
		{"id": "3", "title": "Gamma", "content": "third body", "lastEdited": "03 Jan 2024"},
	}
}

// State returns an opened state backed by memory. The backend is returned
// so tests can inspect writes or inject failures.
func State(t *testing.T, starter []note.Raw) (*state.State, *storage.Memory) {
	t.Helper()

	home := t.TempDir()
	mem := storage.NewMemory()
	return &state.State{
		Config:  config.Default(home),
		Store:   storage.NewStore(mem, nil),
		Starter: starter,
		Home:    home,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, mem
}

// Execute runs cmd with args and returns everything it printed.
func Execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SilenceUsage = true
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
