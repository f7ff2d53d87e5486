package config

import "go.uber.org/zap/zapcore"

// LogEncoder defines a log encoder kind.
type LogEncoder = string

const (
	defaultLoggingLevel = zapcore.InfoLevel
	// ConsoleLogEncoder represents logging with plain text.
	ConsoleLogEncoder LogEncoder = "console"
	// JSONLogEncoder represents logging with JSON.
	JSONLogEncoder LogEncoder = "json"
)

// LoggerConfig holds the logging level for each module.
type LoggerConfig struct {
	Encoder               LogEncoder `mapstructure:"log-encoder"`
	AppLoggerLevel        string     `mapstructure:"app"`
	CheckpointLoggerLevel string     `mapstructure:"checkpoint"`
	SyncLoggerLevel       string     `mapstructure:"sync"`
	MetricsLoggerLevel    string     `mapstructure:"metrics"`
}

func defaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder:               ConsoleLogEncoder,
		AppLoggerLevel:        defaultLoggingLevel.String(),
		CheckpointLoggerLevel: defaultLoggingLevel.String(),
		SyncLoggerLevel:       defaultLoggingLevel.String(),
		MetricsLoggerLevel:    zapcore.WarnLevel.String(),
	}
}
