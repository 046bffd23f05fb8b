// Package logger provides centralized slog configuration for the application
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration
type Config struct {
	// Level sets the minimum log level (debug, info, warn, error)
	Level string
	// Format sets the output format (text or json)
	Format string
	// AddSource adds source file information to log entries
	AddSource bool
	// Output receives log entries; nil means stderr.
	// Standard output is reserved for check results.
	Output io.Writer
}

// DefaultConfig returns the default logger configuration, using fallbackFormat
// when LOG_FORMAT is not set
func DefaultConfig(fallbackFormat string) Config {
	return Config{
		Level:     getEnvOrDefault("LOG_LEVEL", "info"),
		Format:    getEnvOrDefault("LOG_FORMAT", fallbackFormat),
		AddSource: getEnvOrDefault("LOG_ADD_SOURCE", "false") == "true",
	}
}

// ParseLevel converts a level name to a slog.Level, defaulting to info
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a new slog.Logger with the given configuration
func NewLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	return slog.New(handler)
}

// NewDefaultLogger creates a JSON logger configured from the environment
func NewDefaultLogger() *slog.Logger {
	return NewLogger(DefaultConfig("json"))
}

// SetDefault sets the default slog logger
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

// WithLambda adds AWS Lambda context fields to a logger
func WithLambda(logger *slog.Logger, functionName, functionVersion, requestID string) *slog.Logger {
	return logger.With(
		slog.Group("lambda",
			slog.String("function_name", functionName),
			slog.String("function_version", functionVersion),
			slog.String("request_id", requestID),
		),
	)
}

// WithService adds service context to a logger
func WithService(logger *slog.Logger, serviceName string) *slog.Logger {
	return logger.With(slog.String("service", serviceName))
}

// WithExecutable adds executable name to a logger for filtering by program
func WithExecutable(logger *slog.Logger, executableName string) *slog.Logger {
	return logger.With(slog.String("executable", executableName))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
