package zap

import (
	"go.uber.org/zap"

	"github.com/nmoriya/gostay/pkg/gostay"
)

// Logger implements gostay.Logger using zap.
type Logger struct {
	logger *zap.Logger
}

// NewLogger creates a new zap logger adapter.
func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{logger: logger}
}

func (l *Logger) Debug(msg string, fields ...gostay.Field) {
	l.logger.Debug(msg, convert(fields)...)
}

func (l *Logger) Info(msg string, fields ...gostay.Field) {
	l.logger.Info(msg, convert(fields)...)
}

func (l *Logger) Warn(msg string, fields ...gostay.Field) {
	l.logger.Warn(msg, convert(fields)...)
}

func (l *Logger) Error(msg string, fields ...gostay.Field) {
	l.logger.Error(msg, convert(fields)...)
}

func convert(fields []gostay.Field) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		zf = append(zf, zap.Any(f.Key, f.Value))
	}
	return zf
}
