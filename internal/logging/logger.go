package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "MAINVIEWS_LOG_LEVEL"

// LogFileEnvVar redirects log output to a file. The terminal simulator
// owns stdout, so logs default to stderr.
const LogFileEnvVar = "MAINVIEWS_LOG_FILE"

// Initialize creates a new logger with the specified level writing to output.
// If level is empty, it checks MAINVIEWS_LOG_LEVEL; if output is empty, it
// checks MAINVIEWS_LOG_FILE and falls back to stderr.
// If no level is set anywhere, logging is disabled (silent mode).
func Initialize(level, output string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if output == "" {
		output = os.Getenv(LogFileEnvVar)
	}
	if output == "" {
		output = "stderr"
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := parseLevel(level)
	if err != nil {
		return err
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if output == "stderr" || output == "stdout" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from MAINVIEWS_LOG_LEVEL and
// MAINVIEWS_LOG_FILE only.
func InitializeFromEnv() error {
	return Initialize("", "")
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
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

// LogMenu logs a menu page receiving an event
func LogMenu(page string, event string) {
	Debug("Menu event",
		zap.String("page", page),
		zap.String("event", event),
	)
}

// LogDirty logs a persistence dirty signal
func LogDirty(scope string, reason string) {
	Debug("Configuration changed",
		zap.String("scope", scope),
		zap.String("reason", reason),
	)
}

// LogScreenChange logs a screen lifecycle operation
func LogScreenChange(action string, slot int, layout string) {
	Info("Screen changed",
		zap.String("action", action),
		zap.Int("slot", slot),
		zap.String("layout", layout),
	)
}

// LogFactoryMissing logs a persisted factory name that is no longer registered
func LogFactoryMissing(kind string, name string, fallback string) {
	Warn("Factory not registered",
		zap.String("kind", kind),
		zap.String("name", name),
		zap.String("fallback", fallback),
	)
}

// LogPreviewClient logs a preview client connection event
func LogPreviewClient(remoteAddr string, event string) {
	Info("Preview client event",
		zap.String("remote_addr", remoteAddr),
		zap.String("event", event),
	)
}

// LogPreviewMessage logs a WebSocket message exchanged with a preview client
func LogPreviewMessage(remoteAddr string, direction string, messageType int, data []byte) {
	fields := []zap.Field{
		zap.String("remote_addr", remoteAddr),
		zap.String("direction", direction),
		zap.String("message_type", wsMessageTypeName(messageType)),
		zap.Int("length", len(data)),
	}

	if messageType == 1 && len(data) <= 256 {
		fields = append(fields, zap.String("content", string(data)))
	}

	Debug("WebSocket message", fields...)
}

func wsMessageTypeName(msgType int) string {
	switch msgType {
	case 1:
		return "text"
	case 2:
		return "binary"
	case 8:
		return "close"
	case 9:
		return "ping"
	case 10:
		return "pong"
	default:
		return fmt.Sprintf("unknown(%d)", msgType)
	}
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
