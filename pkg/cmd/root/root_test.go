package root

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwadjo-wusu-ansah/notes/internal/config"
	"github.com/kwadjo-wusu-ansah/notes/internal/constants"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	"github.com/kwadjo-wusu-ansah/notes/internal/storage"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/cmdtest"
)

func newState(t *testing.T) *state.State {
	t.Helper()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	s := &state.State{
		Config: config.Default(home),
		Home:   home,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRootDataDirFlagOpensFileBackend(t *testing.T) {
	s := newState(t)
	dir := filepath.Join(t.TempDir(), "data")

	cmd, err := NewCmdRoot(s)
	require.NoError(t, err)

	out, err := cmdtest.Execute(t, cmd, "--data-dir", dir, "list")
	require.NoError(t, err)

	assert.Equal(t, dir, s.Config.Storage.Dir)
	assert.Contains(t, out, "All Notes")
	assert.FileExists(t, filepath.Join(dir, storage.KeyNotes+".json"))
}

func TestRootRejectsUnknownBackend(t *testing.T) {
	s := newState(t)

	cmd, err := NewCmdRoot(s)
	require.NoError(t, err)

	_, err = cmdtest.Execute(t, cmd, "--backend", "floppy", "list")
	require.Error(t, err)
	assert.Nil(t, s.Store)
}

func TestRootInitSkipsOpen(t *testing.T) {
	s := newState(t)

	cmd, err := NewCmdRoot(s)
	require.NoError(t, err)

	_, err = cmdtest.Execute(t, cmd, "init", "--defaults")
	require.NoError(t, err)
	assert.Nil(t, s.Store)
}

func TestRootVersion(t *testing.T) {
	s := newState(t)

	cmd, err := NewCmdRoot(s)
	require.NoError(t, err)

	out, err := cmdtest.Execute(t, cmd, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, constants.Version)
}

func TestRootCommands(t *testing.T) {
	cmd, err := NewCmdRoot(newState(t))
	require.NoError(t, err)

	for _, name := range []string{"tui", "new", "list", "show", "search", "tags", "archive", "delete", "restore", "open", "copy", "import", "settings", "init"} {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.True(t, found != cmd, name)
	}

	assert.NotNil(t, cmd.Flags().Lookup("route"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("data-dir"))
}
