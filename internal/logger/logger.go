// Package logger wraps zerolog with the service defaults: one process-wide root
// logger, console or JSON output, and named child loggers per component.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the root logger.
type Options struct {
	Level   string
	Format  string // console|json
	Service string
	Writer  io.Writer
}

var (
	mu   sync.RWMutex
	root *zerolog.Logger
)

// Init builds the root logger. Later calls replace it.
func Init(opt Options) *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if strings.ToLower(opt.Format) != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: opt.Writer != nil}
	}

	ctx := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	if opt.Service != "" {
		ctx = ctx.Str("service", opt.Service)
	}
	l := ctx.Logger()

	mu.Lock()
	root = &l
	mu.Unlock()
	return &l
}

// Get returns the root logger, initializing an info-level console logger on first use.
func Get() *zerolog.Logger {
	mu.RLock()
	l := root
	mu.RUnlock()
	if l != nil {
		return l
	}
	return Init(Options{Level: "info"})
}

// Named returns a child of the root logger tagged with a component name.
func Named(component string) zerolog.Logger {
	return Get().With().Str("component", component).Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}
