package initialize

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwadjo-wusu-ansah/notes/internal/config"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/cmdtest"
)

func TestInitWithDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)
	s, _ := cmdtest.State(t, nil)

	out, err := cmdtest.Execute(t, NewCmdInit(s), "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration written to")

	_, err = os.Stat(config.GetConfigPath(s.Home))
	require.NoError(t, err)
	assert.Equal(t, config.BackendFile, s.Config.Storage.Backend)
}
