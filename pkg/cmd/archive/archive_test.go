package archive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/cmdtest"
)

func archived(t *testing.T, s *state.State, id string) bool {
	t.Helper()
	raws, err := s.Store.LoadNotes(context.Background())
	require.NoError(t, err)
	for _, r := range raws {
		if r["id"] == id {
			return r["archived"] == true
		}
	}
	t.Fatalf("note %s not stored", id)
	return false
}

func TestArchiveCommandRequiresArgument(t *testing.T) {
	s, _ := cmdtest.State(t, cmdtest.Starter())

	_, err := cmdtest.Execute(t, NewCmdArchive(s))
	assert.Error(t, err)
}

func TestArchiveWithYes(t *testing.T) {
	s, _ := cmdtest.State(t, cmdtest.Starter())

	out, err := cmdtest.Execute(t, NewCmdArchive(s), "Alpha", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Note archived.")
	assert.True(t, archived(t, s, "1"))
}

func TestArchiveAlreadyArchived(t *testing.T) {
	s, _ := cmdtest.State(t, cmdtest.Starter())

	_, err := cmdtest.Execute(t, NewCmdArchive(s), "2", "--yes")
	assert.ErrorContains(t, err, "already archived")
}
