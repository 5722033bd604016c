package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/fyrsmithlabs/convoctl/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("builds logger at configured level", func(t *testing.T) {
		logger, err := New(config.LoggingConfig{Level: "warn", Format: "console"})
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("json format", func(t *testing.T) {
		logger, err := New(config.LoggingConfig{Level: "info", Format: "json"})
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("invalid level is an error", func(t *testing.T) {
		_, err := New(config.LoggingConfig{Level: "shouty", Format: "console"})
		assert.Error(t, err)
	})
}
