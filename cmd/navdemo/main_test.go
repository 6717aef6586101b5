package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_KeepsCellMetrics(t *testing.T) {
	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, terminalConfig(), cfg)

	path := filepath.Join(t.TempDir(), "demo.toml")
	require.NoError(t, os.WriteFile(path, []byte("windowing_list_delay = 0.5\n"), 0o644))
	cfg, err = loadConfig([]string{path})
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), cfg.WindowingListDelay)
	assert.Equal(t, float32(1), cfg.FontSize)
	assert.Equal(t, float32(1), cfg.CharWidth)
	assert.Equal(t, float32(20), cfg.WindowingMoveSpeed)

	_, err = loadConfig([]string{filepath.Join(t.TempDir(), "missing.toml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
