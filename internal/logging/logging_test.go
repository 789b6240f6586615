package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/jask/skincare/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "skincare.log")
	logger, err := New(config.LogConfig{Path: path, Level: "info"}, false)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("routine saved")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "routine saved")
	require.NotContains(t, string(data), "hidden")
}

func TestVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skincare.log")
	logger, err := New(config.LogConfig{Path: path, Level: "warn"}, true)
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Path: "stderr", Level: "chatty"}, false)
	require.Error(t, err)
}
