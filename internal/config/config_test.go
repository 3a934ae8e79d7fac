package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesQuizSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
redis:
  addr: localhost:6379
  ttl: 5m
quiz:
  id: football
  questionSeconds: 30
  tickInterval: 500ms
  revealDelay: 2s
log:
  level: debug
  format: text
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "football", cfg.Quiz.ID)
	assert.Equal(t, "debug", cfg.Log.Level)

	timing := cfg.Timing()
	assert.Equal(t, 30, timing.QuestionSeconds)
	assert.Equal(t, 500*time.Millisecond, timing.TickInterval)
	assert.Equal(t, 2*time.Second, timing.RevealDelay)
}

func TestTimingDefaults(t *testing.T) {
	timing := Config{}.Timing()
	assert.Equal(t, 20, timing.QuestionSeconds)
	assert.Equal(t, time.Second, timing.TickInterval)
	assert.Equal(t, 1500*time.Millisecond, timing.RevealDelay)
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Server.Port)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestTTLDurationFallback(t *testing.T) {
	assert.Equal(t, time.Minute, TTLDuration("", time.Minute))
	assert.Equal(t, time.Minute, TTLDuration("soon", time.Minute))
	assert.Equal(t, 3*time.Second, TTLDuration("3s", time.Minute))
}
