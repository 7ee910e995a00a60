package core

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides a structured logging interface for the application.
type Logger interface {
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)
	Debug(msg string, fields ...any)
	Sync() error
}

// zapLogger wraps a zap.SugaredLogger; fields are alternating keys and values.
type zapLogger struct {
	logger *zap.SugaredLogger
}

// NewLoggerWithWriter creates a JSON logger writing to w.
func NewLoggerWithWriter(level string, w io.Writer) Logger {
	zc := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		parseLevel(level),
	)
	return &zapLogger{logger: zap.New(zc).Sugar()}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() Logger {
	return &zapLogger{logger: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *zapLogger) Info(msg string, fields ...any) {
	l.logger.Infow(msg, fields...)
}

func (l *zapLogger) Warn(msg string, fields ...any) {
	l.logger.Warnw(msg, fields...)
}

func (l *zapLogger) Error(msg string, fields ...any) {
	l.logger.Errorw(msg, fields...)
}

func (l *zapLogger) Debug(msg string, fields ...any) {
	l.logger.Debugw(msg, fields...)
}

func (l *zapLogger) Sync() error {
	return l.logger.Sync()
}
