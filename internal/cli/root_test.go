package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"football-quiz/internal/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRegistersCommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"start", "play", "migrate"} {
		assert.True(t, names[want], "missing %s command", want)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("port"))
}

func TestRootFlagDefaultsFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CONFIG_PATH", "/tmp/quiz.yaml")

	cmd := newRootCmd()
	assert.Equal(t, "9090", cmd.PersistentFlags().Lookup("port").DefValue)
	assert.Equal(t, "/tmp/quiz.yaml", cmd.PersistentFlags().Lookup("config").DefValue)
}

func TestMigrationsRequirePostgres(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"8080\"\n"), 0o600))

	err := runMigrations(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres url not configured")
}

func TestInvalidateQuizCacheDropsCachedContent(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("quiz:football:content", `{"id":"football"}`))

	var cfg config.Config
	cfg.Redis.Addr = mr.Addr()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, invalidateQuizCache(context.Background(), cfg, logger))
	assert.False(t, mr.Exists("quiz:football:content"))
}

func TestInvalidateQuizCacheSkipsWithoutRedis(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.NoError(t, invalidateQuizCache(context.Background(), config.Config{}, logger))
}
