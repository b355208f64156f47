package logging

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var (
	debugEnabled atomic.Bool

	mu     sync.RWMutex
	logger = newLogger(os.Stderr)
)

func newLogger(w io.Writer) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	return zerolog.New(consoleWriter).With().Timestamp().Logger()
}

// Init points the process logger at w. Debug output is enabled when debug is true.
func Init(w io.Writer, debug bool) {
	if w == nil {
		w = os.Stderr
	}
	mu.Lock()
	logger = newLogger(w)
	mu.Unlock()

	debugEnabled.Store(false)
	if debug {
		EnableDebug()
	}
}

// EnableDebug turns on verbose debug logging for the application lifecycle.
func EnableDebug() {
	debugEnabled.Store(true)
	current().Debug().Msg("debug logging enabled")
}

// DebugEnabled reports whether debug logging is active.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

func current() *zerolog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	return &l
}

// Debugf emits a formatted debug log message when debugging is enabled.
func Debugf(format string, args ...any) {
	if !DebugEnabled() {
		return
	}
	current().Debug().Msgf(format, args...)
}

func Infof(format string, args ...any) {
	current().Info().Msgf(format, args...)
}

func Warnf(format string, args ...any) {
	current().Warn().Msgf(format, args...)
}

func Errorf(format string, args ...any) {
	current().Error().Msgf(format, args...)
}
