package observability

import (
	"log"

	"go.uber.org/zap"
)

// Logger is the narrow logging surface handed to services. The underlying
// zap logger is also installed globally for the HTTP middleware.
type Logger struct {
	zl *zap.Logger
}

func NewLogger() *Logger {
	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	zap.ReplaceGlobals(zl)
	return &Logger{zl: zl}
}

func (l *Logger) Info(msg string) {
	l.zl.Info(msg)
}

func (l *Logger) Error(msg string) {
	l.zl.Error(msg)
}

func (l *Logger) Sync() {
	_ = l.zl.Sync()
}
