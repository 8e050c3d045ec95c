package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "CHURNFORM_LOG_LEVEL"

// Options configures the global logger
type Options struct {
	// Level is debug, info, warn or error. Empty falls back to
	// CHURNFORM_LOG_LEVEL; if that is empty too, logging is silent.
	Level string

	// OutputPath is a file path, "stdout" or "stderr". The interactive form
	// owns the terminal, so it logs to a file.
	OutputPath string
}

// Initialize creates the global logger.
func Initialize(opts Options) error {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// No level anywhere: silent mode
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := opts.OutputPath
	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if output == "stdout" || output == "stderr" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built
	return nil
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info when explicitly set to something
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger (tests use zaptest/observer cores)
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Not initialized: stay silent
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogPredictRequest logs an outgoing prediction request
func LogPredictRequest(requestID, url string, bodySize int) {
	Info("Prediction request sent",
		zap.String("request_id", requestID),
		zap.String("url", url),
		zap.Int("body_size", bodySize),
	)
}

// LogPredictResponse logs the response to a prediction request
func LogPredictResponse(requestID string, statusCode, bodySize int, elapsed time.Duration) {
	Info("Prediction response received",
		zap.String("request_id", requestID),
		zap.Int("status_code", statusCode),
		zap.Int("body_size", bodySize),
		zap.Duration("elapsed", elapsed),
	)
}

// LogSubmission logs a form submission and the ticket it was issued
func LogSubmission(ticket uint64, endpoint string) {
	Debug("Form submitted",
		zap.Uint64("ticket", ticket),
		zap.String("endpoint", endpoint),
	)
}

// LogStaleResult logs a completion that was discarded because a newer
// submission is pending
func LogStaleResult(ticket, latest uint64) {
	Debug("Discarding stale prediction result",
		zap.Uint64("ticket", ticket),
		zap.Uint64("latest", latest),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
