package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ConsoleLogger writes human-oriented log lines prefixed with [HH:MM:SS].
// Levels are coloured when the writer is a terminal.
type ConsoleLogger struct {
	out    *consoleOut
	level  Level
	fields Fields
}

type consoleOut struct {
	mu     sync.Mutex
	writer io.Writer
	color  bool
}

// NewConsoleLogger creates a ConsoleLogger writing to w.
// A nil writer discards everything.
func NewConsoleLogger(w io.Writer, level Level) *ConsoleLogger {
	return &ConsoleLogger{
		out:   &consoleOut{writer: w, color: IsTerminal(w)},
		level: level,
	}
}

// SetColor forces coloured output on or off
func (l *ConsoleLogger) SetColor(enabled bool) {
	l.out.mu.Lock()
	l.out.color = enabled
	l.out.mu.Unlock()
}

// IsTerminal reports whether w is a terminal that accepts colours.
// NO_COLOR in the environment disables colours everywhere.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil || color.NoColor {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (l *ConsoleLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.log(DebugLevel, msg, nil, fields)
}

func (l *ConsoleLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.log(InfoLevel, msg, nil, fields)
}

func (l *ConsoleLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.log(WarnLevel, msg, nil, fields)
}

func (l *ConsoleLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	l.log(ErrorLevel, msg, err, fields)
}

// WithFields returns a logger with additional fields sharing the same writer
func (l *ConsoleLogger) WithFields(fields Fields) Logger {
	return &ConsoleLogger{out: l.out, level: l.level, fields: mergeFields(l.fields, fields)}
}

// Close does nothing; the writer belongs to the caller
func (l *ConsoleLogger) Close() error {
	return nil
}

func (l *ConsoleLogger) log(level Level, msg string, err error, fields Fields) {
	if level < l.level || l.out.writer == nil {
		return
	}

	var b strings.Builder
	b.WriteString(msg)
	if err != nil {
		fmt.Fprintf(&b, ": %v", err)
	}
	writeFields(&b, mergeFields(l.fields, fields))

	l.out.mu.Lock()
	defer l.out.mu.Unlock()

	stamp := "[" + time.Now().Format("15:04:05") + "] "
	tag := levelTag(level)
	if l.out.color {
		c := levelColor(level)
		c.EnableColor()
		tag = c.Sprint(tag)
	}
	fmt.Fprintf(l.out.writer, "%s%s %s\n", stamp, tag, b.String())
}

func levelTag(level Level) string {
	return fmt.Sprintf("%-5s", levelString(level))
}

func levelColor(level Level) *color.Color {
	switch level {
	case DebugLevel:
		return color.New(color.FgHiBlack)
	case WarnLevel:
		return color.New(color.FgYellow)
	case ErrorLevel:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
