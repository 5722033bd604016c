package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "markdown_conversations", cfg.Convert.OutputDir)
	assert.False(t, cfg.Convert.Overwrite)
	assert.Equal(t, 100, cfg.Convert.MaxNameLength)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfig(t, `
convert:
  output_dir: exported
  max_name_length: 50
logging:
  level: debug
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "exported", cfg.Convert.OutputDir)
		assert.Equal(t, 50, cfg.Convert.MaxNameLength)
		assert.Equal(t, "debug", cfg.Logging.Level)
		// Untouched keys keep their defaults.
		assert.Equal(t, "console", cfg.Logging.Format)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, `
convert:
  output_dir: from-file
`)
		t.Setenv("CONVOCTL_CONVERT_OUTPUT_DIR", "from-env")
		t.Setenv("CONVOCTL_CONVERT_OVERWRITE", "true")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Convert.OutputDir)
		assert.True(t, cfg.Convert.Overwrite)
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid YAML is an error", func(t *testing.T) {
		path := writeConfig(t, "convert: [unclosed")
		_, err := Load(path)
		assert.Error(t, err)
	})
}
