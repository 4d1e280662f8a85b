package slog

import (
	"log/slog"
	"time"

	"github.com/radkit/radreport"
)

// Ensure LoggingEngine implements radreport.Engine.
var _ radreport.Engine = (*LoggingEngine)(nil)

// LoggingEngine wraps an Engine with debug logging for pattern compilation.
type LoggingEngine struct {
	next   radreport.Engine
	logger *slog.Logger
}

// NewLoggingEngine creates a new LoggingEngine.
func NewLoggingEngine(next radreport.Engine, logger *slog.Logger) *LoggingEngine {
	return &LoggingEngine{next: next, logger: logger}
}

// Compile delegates to the wrapped engine and logs the outcome.
func (e *LoggingEngine) Compile(fragments []string, opts radreport.CompileOptions) (radreport.Matcher, error) {
	begin := time.Now()
	m, err := e.next.Compile(fragments, opts)
	e.logger.Debug("compile marker pattern",
		"fragments", len(fragments),
		"wordBoundary", opts.WordBoundary,
		"duration", time.Since(begin),
		"error", err,
	)
	return m, err
}
