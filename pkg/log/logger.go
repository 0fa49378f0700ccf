package log

import (
	"context"
	"fmt"
)

type Logger interface {
	Info(ctx context.Context, format string, args ...interface{})
	Error(ctx context.Context, format string, args ...interface{})
	Warn(ctx context.Context, format string, args ...interface{})
	Debug(ctx context.Context, format string, args ...interface{})
	Notice(ctx context.Context, format string, args ...interface{})
	Critical(ctx context.Context, format string, args ...interface{})
}

// NewLogger builds a logger backend by driver name.
func NewLogger(driver string, level string) (Logger, error) {
	switch driver {
	case "", "console":
		return NewCslLogger()
	case "logrus":
		return NewLogrusLogger(level)
	default:
		return nil, fmt.Errorf("unsupported log driver: %s", driver)
	}
}
