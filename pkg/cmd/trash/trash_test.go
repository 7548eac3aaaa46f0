package trash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/cmdtest"
)

func TestDeleteWithYes(t *testing.T) {
	s, _ := cmdtest.State(t, cmdtest.Starter())

	out, err := cmdtest.Execute(t, NewCmdDelete(s), "Beta", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Note permanently deleted.")

	raws, err := s.Store.LoadNotes(context.Background())
	require.NoError(t, err)
	require.Len(t, raws, 2)
	for _, r := range raws {
		assert.NotEqual(t, "2", r["id"])
	}
}

func TestDeleteUnknownNote(t *testing.T) {
	s, _ := cmdtest.State(t, cmdtest.Starter())

	_, err := cmdtest.Execute(t, NewCmdDelete(s), "nope", "--yes")
	assert.ErrorContains(t, err, "note not found")
}
