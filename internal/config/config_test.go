package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 1780, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.Game.TurnTimeoutDuration())
	assert.Equal(t, 2500*time.Millisecond, cfg.Game.TrickPauseDuration())
	assert.Equal(t, 5*time.Minute, cfg.Game.TableInactivityDuration())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  port: 9000
game:
  turn_timeout: 45
  trick_pause: 1000
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Game.TurnTimeoutDuration())
	assert.Equal(t, time.Second, cfg.Game.TrickPauseDuration())

	// Missing keys fall back to defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5500*time.Millisecond, cfg.Game.RoundPauseDuration())
}

func TestLoad_DisabledTimers(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  turn_timeout: -1\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Negative(t, cfg.Game.TurnTimeoutDuration())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
