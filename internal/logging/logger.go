package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.Logger
}

func NewLogger(level string) (*Logger, error) {
	config := zap.NewProductionConfig()

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	// Diagnostics belong on stderr; stdout carries the change notices.
	config.OutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{logger}, nil
}

// WithRunID tags every entry with a fresh identifier for this run, so
// logs from concurrent invocations watching different files can be
// told apart.
func (l *Logger) WithRunID() *zap.Logger {
	return l.With(zap.String("run_id", uuid.NewString()))
}
