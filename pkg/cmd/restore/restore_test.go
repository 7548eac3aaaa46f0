package restore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/cmdtest"
)

func TestRestoreCommandRequiresArgument(t *testing.T) {
	s, _ := cmdtest.State(t, cmdtest.Starter())

	_, err := cmdtest.Execute(t, NewCmdRestore(s))
	assert.Error(t, err)
}

func TestRestoreArchivedNote(t *testing.T) {
	s, _ := cmdtest.State(t, cmdtest.Starter())

	out, err := cmdtest.Execute(t, NewCmdRestore(s), "Beta")
	require.NoError(t, err)
	assert.Contains(t, out, "Note restored to active notes.")
}

func TestRestoreActiveNote(t *testing.T) {
	s, _ := cmdtest.State(t, cmdtest.Starter())

	_, err := cmdtest.Execute(t, NewCmdRestore(s), "Alpha")
	assert.ErrorContains(t, err, "is not archived")
}
