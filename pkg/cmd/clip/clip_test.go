package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/cmdtest"
)

func captureClipboard(t *testing.T) *string {
	t.Helper()

	var copied string
	original := clipboardWrite
	clipboardWrite = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWrite = original })
	return &copied
}

func TestCopyContent(t *testing.T) {
	copied := captureClipboard(t)
	s, _ := cmdtest.State(t, cmdtest.Starter())

	out, err := cmdtest.Execute(t, NewCmdCopy(s), "Gamma")
	require.NoError(t, err)
	assert.Equal(t, "third body", *copied)
	assert.Contains(t, out, `Copied "Gamma"`)
}

func TestCopyDocument(t *testing.T) {
	copied := captureClipboard(t)
	s, _ := cmdtest.State(t, cmdtest.Starter())

	_, err := cmdtest.Execute(t, NewCmdCopy(s), "1", "--document")
	require.NoError(t, err)
	assert.Equal(t, "# Alpha\n\nfirst body", *copied)
}
