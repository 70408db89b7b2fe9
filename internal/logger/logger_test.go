package logger

import (
	"testing"

	"autoquiz/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestGet_BeforeInitializeIsUsable(t *testing.T) {
	assert.NotPanics(t, func() {
		Get().Info("logged before initialize")
	})
}

func TestInitialize(t *testing.T) {
	t.Cleanup(func() {
		_ = Initialize(config.LoggerConfig{})
	})

	assert.NoError(t, Initialize(config.LoggerConfig{Level: "debug", Env: config.EnvDevelopment}))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))

	assert.NoError(t, Initialize(config.LoggerConfig{Level: "warn", Env: config.EnvProduction}))
	assert.False(t, Get().Core().Enabled(zapcore.InfoLevel))

	assert.Error(t, Initialize(config.LoggerConfig{Level: "chatty"}))
}
