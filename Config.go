package main

import (
	"fmt"
	"os"
	"strings"

	"go.alis.build/alog"
)

const DefaultListenAddress = ":8080"

const DefaultLogLevel = "INFO"

const DefaultLogEnvironment = "LOCAL"

type AppConfig struct {
	DatabasePath           string
	ListenAddress          string
	LogLevel               string
	LogEnvironment         string
	RecalculationMode      RecalculationMode
	MaxRecalculationPasses int
}

var logLevels = map[string]alog.LogLevel{
	"DEBUG":     alog.LevelDebug,
	"INFO":      alog.LevelInfo,
	"NOTICE":    alog.LevelNotice,
	"WARNING":   alog.LevelWarning,
	"ERROR":     alog.LevelError,
	"CRITICAL":  alog.LevelCritical,
	"ALERT":     alog.LevelAlert,
	"EMERGENCY": alog.LevelEmergency,
}

// NewAppConfigFromEnv reads defaults that command line flags may override
func NewAppConfigFromEnv() AppConfig {
	return AppConfig{
		DatabasePath:           os.Getenv("DATABASE_FILEPATH"),
		ListenAddress:          getEnv("LISTEN_ADDRESS", DefaultListenAddress),
		LogLevel:               getEnv("LOG_LEVEL", DefaultLogLevel),
		LogEnvironment:         getEnv("LOG_ENVIRONMENT", DefaultLogEnvironment),
		RecalculationMode:      RecalculationMode(getEnv("RECALCULATION_MODE", string(SinglePassRecalculation))),
		MaxRecalculationPasses: DefaultMaxRecalculationPasses,
	}
}

func ConfigureLogging(config AppConfig) error {
	level, ok := logLevels[strings.ToUpper(config.LogLevel)]
	if !ok {
		return fmt.Errorf("unknown log level `%s`", config.LogLevel)
	}

	environment := strings.ToUpper(config.LogEnvironment)
	if environment != "LOCAL" && environment != "GOOGLE" {
		return fmt.Errorf("unknown log environment `%s`", config.LogEnvironment)
	}

	alog.SetLevel(level)
	alog.SetLoggingEnvironment(alog.LoggingEnvironment(environment))
	return nil
}

func getEnv(name string, fallback string) string {
	if value, ok := os.LookupEnv(name); ok && value != "" {
		return value
	}
	return fallback
}
