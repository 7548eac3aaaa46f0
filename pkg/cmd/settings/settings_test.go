package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwadjo-wusu-ansah/notes/internal/theme"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/cmdtest"
)

func TestSetThemeDirectly(t *testing.T) {
	s, _ := cmdtest.State(t, nil)

	out, err := cmdtest.Execute(t, NewCmdSettings(s), "theme", "Light Mode")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings updated successfully!")

	prefs, err := s.Store.LoadPreferences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, theme.Light, prefs.Theme)
}

func TestSetFontDirectly(t *testing.T) {
	s, _ := cmdtest.State(t, nil)

	_, err := cmdtest.Execute(t, NewCmdSettings(s), "font", "mono")
	require.NoError(t, err)

	prefs, err := s.Store.LoadPreferences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, theme.Mono, prefs.Font)
}

func TestSettingsRejectsBadInput(t *testing.T) {
	s, _ := cmdtest.State(t, nil)

	_, err := cmdtest.Execute(t, NewCmdSettings(s), "color", "blue")
	assert.ErrorContains(t, err, "unknown setting")

	_, err = cmdtest.Execute(t, NewCmdSettings(s), "theme")
	assert.ErrorContains(t, err, "a value is required")

	_, err = cmdtest.Execute(t, NewCmdSettings(s), "theme", "sepia")
	assert.ErrorContains(t, err, "invalid theme")
}
