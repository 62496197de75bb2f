package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocal(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("WINDOW_TITLE", "")

	cfg, err := Load("local")
	require.NoError(t, err)

	assert.Equal(t, "bee sandbox", cfg.GetWindowTitle())
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Equal(t, 256, cfg.GetMaxParticles())
	assert.Equal(t, 0.75, cfg.GetRestitution())
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("WINDOW_WIDTH", "")
	t.Setenv("SPAWN_INTERVAL_MS", "")

	cfg, err := Load("does-not-exist")
	require.NoError(t, err)

	assert.Equal(t, 1200, cfg.GetWindowWidth())
	assert.Equal(t, 250, cfg.GetSpawnInterval())
	assert.Equal(t, "bee_snapshot.json", cfg.GetSnapshotFilename())
}

func TestEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WINDOW_WIDTH", "640")
	t.Setenv("GRAVITY", "9.5")
	t.Setenv("LAUNCH_SCALE", "0.5")
	t.Setenv("DATA_DIR", dir)
	t.Setenv("SNAPSHOT_FILENAME", "particles.cbor")

	cfg, err := Load("does-not-exist")
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.GetWindowWidth())
	assert.Equal(t, 9.5, cfg.GetGravity())
	assert.Equal(t, 0.5, cfg.GetLaunchScale())
	assert.Equal(t, filepath.Join(dir, "particles.cbor"), cfg.GetSnapshotPath())
}

func TestEnvSelectsConfigFile(t *testing.T) {
	t.Setenv("ENV", "local")
	t.Setenv("FADE", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.GetFade())
}
