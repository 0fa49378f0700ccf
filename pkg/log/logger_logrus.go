package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogrusLogger writes structured entries through a dedicated logrus instance.
type LogrusLogger struct {
	entry *logrus.Entry
}

func NewLogrusLogger(level string) (*LogrusLogger, error) {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	return &LogrusLogger{
		entry: l.WithField("app", "portfolio"),
	}, nil
}

func (l *LogrusLogger) Info(ctx context.Context, format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *LogrusLogger) Error(ctx context.Context, format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *LogrusLogger) Warn(ctx context.Context, format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *LogrusLogger) Debug(ctx context.Context, format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *LogrusLogger) Notice(ctx context.Context, format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *LogrusLogger) Critical(ctx context.Context, format string, args ...interface{}) {
	l.entry.WithField("critical", true).Errorf(format, args...)
}
