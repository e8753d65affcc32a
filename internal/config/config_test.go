package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the config file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\ndebug: true\nrender:\n  no-color: true\nai:\n  seed: 42\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: every value is taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.True(t, conf.Debug)
		assert.True(t, conf.Render.NoColor)
		assert.Equal(t, int64(42), conf.AI.Seed)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.False(t, conf.Debug)
		assert.False(t, conf.Render.NoColor)
		assert.Equal(t, int64(0), conf.AI.Seed)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("AI_SEED", "7")
		t.Setenv("DEBUG", "true")

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, int64(7), conf.AI.Seed)
		assert.True(t, conf.Debug)
	})

	t.Run("Reports a malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("ai: [unclosed"), 0o600))

		_, err := Load(path)

		assert.Error(t, err)
	})
}

func TestMustLoad_Panics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("ai: [unclosed"), 0o600))

	assert.Panics(t, func() { MustLoad(path) })
}
