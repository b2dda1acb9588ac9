package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/statewindow/internal/config"
	"github.com/thruflo/statewindow/internal/logging"
	"github.com/thruflo/statewindow/internal/testutil"
)

func TestLoadSettings(t *testing.T) {
	path := testutil.WriteConfig(t, "windows:\n  long: 6\n  short: 3\nmode: ratio\nlog_level: info\n")

	configPath, logLevel = path, ""
	t.Cleanup(func() {
		configPath, logLevel, loadedConfig = "", "", nil
		logging.SetLevel(logging.LevelWarn)
	})

	require.NoError(t, loadSettings(rootCmd, nil))

	cfg := currentConfig()
	assert.Equal(t, config.Windows{Long: 6, Short: 3}, cfg.Windows)
	assert.Equal(t, config.ModeRatio, cfg.Mode)
	assert.Equal(t, logging.LevelInfo, logging.Default().Level())
}

func TestLoadSettings_FlagOverridesLevel(t *testing.T) {
	configPath, logLevel = "", "debug"
	t.Cleanup(func() {
		configPath, logLevel, loadedConfig = "", "", nil
		logging.SetLevel(logging.LevelWarn)
	})

	require.NoError(t, loadSettings(rootCmd, nil))
	assert.Equal(t, logging.LevelDebug, logging.Default().Level())
	assert.Equal(t, "debug", currentConfig().LogLevel)
}

func TestLoadSettings_BadLevel(t *testing.T) {
	configPath, logLevel = "", "loud"
	t.Cleanup(func() {
		configPath, logLevel, loadedConfig = "", "", nil
	})

	err := loadSettings(rootCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
}

func TestCurrentConfig_Default(t *testing.T) {
	loadedConfig = nil
	assert.Equal(t, config.DefaultConfig(), currentConfig())
}
