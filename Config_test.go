package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATABASE_FILEPATH", "")
		t.Setenv("LISTEN_ADDRESS", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_ENVIRONMENT", "")
		t.Setenv("RECALCULATION_MODE", "")

		config := NewAppConfigFromEnv()

		assert.Empty(t, config.DatabasePath)
		assert.Equal(t, DefaultListenAddress, config.ListenAddress)
		assert.Equal(t, DefaultLogLevel, config.LogLevel)
		assert.Equal(t, DefaultLogEnvironment, config.LogEnvironment)
		assert.Equal(t, SinglePassRecalculation, config.RecalculationMode)
		assert.Equal(t, DefaultMaxRecalculationPasses, config.MaxRecalculationPasses)
	})

	t.Run("from env", func(t *testing.T) {
		t.Setenv("DATABASE_FILEPATH", "/tmp/sheets.db")
		t.Setenv("LISTEN_ADDRESS", ":9090")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_ENVIRONMENT", "GOOGLE")
		t.Setenv("RECALCULATION_MODE", "fixed-point")

		config := NewAppConfigFromEnv()

		assert.Equal(t, "/tmp/sheets.db", config.DatabasePath)
		assert.Equal(t, ":9090", config.ListenAddress)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "GOOGLE", config.LogEnvironment)
		assert.Equal(t, FixedPointRecalculation, config.RecalculationMode)
	})
}

func TestConfigureLogging(t *testing.T) {
	defer ConfigureLogging(AppConfig{LogLevel: DefaultLogLevel, LogEnvironment: DefaultLogEnvironment})

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ConfigureLogging(AppConfig{LogLevel: "warning", LogEnvironment: "local"}))
		assert.NoError(t, ConfigureLogging(AppConfig{LogLevel: "DEBUG", LogEnvironment: "GOOGLE"}))
	})

	t.Run("unknown level", func(t *testing.T) {
		err := ConfigureLogging(AppConfig{LogLevel: "verbose", LogEnvironment: "LOCAL"})
		assert.ErrorContains(t, err, "verbose")
	})

	t.Run("unknown environment", func(t *testing.T) {
		err := ConfigureLogging(AppConfig{LogLevel: "INFO", LogEnvironment: "aws"})
		assert.ErrorContains(t, err, "aws")
	})
}
