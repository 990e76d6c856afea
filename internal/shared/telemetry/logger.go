package telemetry

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stdout)
)

func init() {
	zerolog.TimestampFieldName = "ts"
	zerolog.MessageFieldName = "msg"
	zerolog.LevelFieldName = "level"
	zerolog.TimeFieldFormat = time.RFC3339
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// SetOutput redirects log lines to w. Tests use it to capture output.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	mu.Lock()
	logger = newLogger(w)
	mu.Unlock()
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	write(zerolog.InfoLevel, msg, fields)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	write(zerolog.WarnLevel, msg, fields)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	write(zerolog.ErrorLevel, msg, fields)
}

func write(level zerolog.Level, msg string, fields map[string]any) {
	mu.RLock()
	l := logger
	mu.RUnlock()

	ev := l.WithLevel(level)
	if len(fields) > 0 {
		ev = ev.Fields(fields)
	}
	ev.Msg(msg)
}
