// Package log implements the levelled application log over a zap console logger.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
var logger = newLogger()

func newLogger() *zap.Logger {
	encoder := zap.NewDevelopmentEncoderConfig()
	encoder.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder.StacktraceKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoder),
		zapcore.Lock(os.Stderr),
		level)

	return zap.New(core)
}

// SetDebug enables or disables DEBUG level messages.
func SetDebug(enabled bool) {
	if enabled {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
}

// Logger returns the underlying zap logger, for components that log structured fields.
func Logger() *zap.Logger {
	return logger
}

func Sync() {
	_ = logger.Sync()
}

func Debugf(format string, args ...any) {
	logger.Sugar().Debugf(format, args...)
}

func Infof(format string, args ...any) {
	logger.Sugar().Infof(format, args...)
}

func Warnf(format string, args ...any) {
	logger.Sugar().Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	logger.Sugar().Errorf(format, args...)
}
