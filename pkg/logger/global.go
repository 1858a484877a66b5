package logger

import (
	"os"
	"sync"
)

var (
	globalLogger *Logger
	mu           sync.Mutex
)

// DefaultConfig derives the CLI logger configuration from the environment.
// DEBUG=true wins over LOG_LEVEL; LOG_FORMAT=json switches off the console writer.
func DefaultConfig() Config {
	level := "info"
	if os.Getenv("DEBUG") == "true" {
		level = "debug"
	} else if v := os.Getenv("LOG_LEVEL"); v != "" {
		level = v
	}

	format := "console"
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		format = v
	}

	return Config{
		Level:  level,
		Format: format,
		Output: os.Getenv("LOG_OUTPUT"),
	}
}

// GetLogger returns the global logger instance
func GetLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		globalLogger = New(DefaultConfig())
	}
	return globalLogger
}

// SetLogger sets the global logger instance
func SetLogger(logger *Logger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
	securityLoggerInstance = nil
}

// WithField adds a field to the logger
func WithField(key string, value interface{}) *Logger {
	return GetLogger().WithField(key, value)
}
