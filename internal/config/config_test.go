package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaultsForUnsetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "netconfd.toml")
	require.NoError(t, os.WriteFile(path, []byte(`NetconfSocket = "/tmp/custom.sock"`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.sock", cfg.NetconfSocket)
	assert.Equal(t, Default().ActivityCheckInterval, cfg.ActivityCheckInterval)
	assert.Equal(t, Default().ActivityTimeout, cfg.ActivityTimeout)
	assert.Equal(t, Default().NotificationQueueCapacity, cfg.NotificationQueueCapacity)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
