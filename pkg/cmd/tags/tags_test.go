package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/cmdtest"
)

func TestCountsKeepCase(t *testing.T) {
	counts := Counts([]note.Note{
		{Tags: []string{"work", "home"}},
		{Tags: []string{"Work"}},
		{Tags: []string{"work"}},
	})

	assert.Equal(t, map[string]int{"work": 2, "Work": 1, "home": 1}, counts)
}

func TestTagsCommand(t *testing.T) {
	s, _ := cmdtest.State(t, cmdtest.Starter())

	out, err := cmdtest.Execute(t, NewCmdTags(s))
	require.NoError(t, err)
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "home")
}

func TestTagsCommandWithoutTags(t *testing.T) {
	s, _ := cmdtest.State(t, nil)

	out, err := cmdtest.Execute(t, NewCmdTags(s))
	require.NoError(t, err)
	assert.Contains(t, out, "No tags yet")
}
