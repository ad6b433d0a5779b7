package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Defaults(t *testing.T) {
	cfg, err := Setup(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, StorageMemory, cfg.StateStorage)
	assert.Equal(t, "chess-analysis-tool", cfg.StateKey)
	assert.Equal(t, 5*time.Second, cfg.StorageTimeout)
	assert.False(t, cfg.IsLocalCors)
}

func TestSetup_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STATE_STORAGE", StorageRedis)
	t.Setenv("LOCAL_CORS", "true")
	t.Setenv("STORAGE_TIMEOUT", "2s")

	cfg, err := Setup("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, StorageRedis, cfg.StateStorage)
	assert.True(t, cfg.IsLocalCors)
	assert.Equal(t, 2*time.Second, cfg.StorageTimeout)
}

func TestSetup_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STATE_KEY=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("STATE_KEY") })

	cfg, err := Setup(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.StateKey)
}

func TestSetup_UnknownStorage(t *testing.T) {
	t.Setenv("STATE_STORAGE", "sqlite")

	_, err := Setup("")
	assert.Error(t, err)
}
