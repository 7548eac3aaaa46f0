package show

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/cmdtest"
)

func TestShowRaw(t *testing.T) {
	s, _ := cmdtest.State(t, cmdtest.Starter())

	out, err := cmdtest.Execute(t, NewCmdShow(s), "beta", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "# Beta\n\nsecond body")
	assert.Contains(t, out, "Tags: home")
	assert.Contains(t, out, "Last edited: 02 Jan 2024")
	assert.Contains(t, out, "Archived")
}

func TestShowRendered(t *testing.T) {
	s, _ := cmdtest.State(t, cmdtest.Starter())

	out, err := cmdtest.Execute(t, NewCmdShow(s), "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Tags: Work")
	assert.NotContains(t, out, "Error rendering markdown")
}

func TestShowUnknownNote(t *testing.T) {
	s, _ := cmdtest.State(t, cmdtest.Starter())

	_, err := cmdtest.Execute(t, NewCmdShow(s), "missing")
	assert.ErrorContains(t, err, "note not found")
}
