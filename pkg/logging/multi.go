package logging

import (
	"context"
	"errors"
)

// MultiLogger fans every entry out to several loggers
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger combines loggers; nil entries are ignored
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

func (m *MultiLogger) Debug(ctx context.Context, msg string, fields Fields) {
	for _, l := range m.loggers {
		l.Debug(ctx, msg, fields)
	}
}

func (m *MultiLogger) Info(ctx context.Context, msg string, fields Fields) {
	for _, l := range m.loggers {
		l.Info(ctx, msg, fields)
	}
}

func (m *MultiLogger) Warn(ctx context.Context, msg string, fields Fields) {
	for _, l := range m.loggers {
		l.Warn(ctx, msg, fields)
	}
}

func (m *MultiLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	for _, l := range m.loggers {
		l.Error(ctx, msg, err, fields)
	}
}

// WithFields returns a MultiLogger whose members all carry fields
func (m *MultiLogger) WithFields(fields Fields) Logger {
	next := &MultiLogger{loggers: make([]Logger, len(m.loggers))}
	for i, l := range m.loggers {
		next.loggers[i] = l.WithFields(fields)
	}
	return next
}

// Close closes every member and joins their errors
func (m *MultiLogger) Close() error {
	var errs []error
	for _, l := range m.loggers {
		if err := l.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
