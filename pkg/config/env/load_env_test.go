package env

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	t.Run("loads default path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("RUNPLOT_TEST_VALUE=from-file\n"), 0644))
		t.Setenv("ENV_PATH", "")
		t.Setenv("RUNPLOT_TEST_VALUE", "")
		require.NoError(t, os.Unsetenv("RUNPLOT_TEST_VALUE"))

		require.NoError(t, LoadDotEnv(path))
		assert.Equal(t, "from-file", os.Getenv("RUNPLOT_TEST_VALUE"))
	})

	t.Run("missing file is fine outside local", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		t.Setenv("APP_ENV", "production")
		assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
	})

	t.Run("missing file fails in local", func(t *testing.T) {
		t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "nope.env"))
		t.Setenv("APP_ENV", "local")
		assert.Error(t, LoadDotEnv("ignored.env"))
	})
}

func TestSetupLogging(t *testing.T) {
	defer slog.SetLogLoggerLevel(slog.LevelInfo)

	t.Setenv("LOG_LEVEL", "DEBUG")
	assert.Equal(t, slog.LevelDebug, SetupLogging())

	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, slog.LevelWarn, SetupLogging())

	t.Setenv("LOG_LEVEL", "chatty")
	assert.Equal(t, slog.LevelInfo, SetupLogging())
}
