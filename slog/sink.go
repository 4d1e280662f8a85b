package slog

import (
	"log/slog"

	"github.com/radkit/radreport"
)

// Ensure Sink implements radreport.DiagnosticSink.
var _ radreport.DiagnosticSink = (*Sink)(nil)

// Sink logs duplicate-marker diagnostics through a slog.Logger. slog
// handlers are safe for concurrent use, so a single Sink can back many
// extractors.
type Sink struct {
	logger *slog.Logger
}

// NewSink creates a new Sink.
func NewSink(logger *slog.Logger) *Sink {
	return &Sink{logger: logger}
}

// Emit logs the diagnostic at warn level.
func (s *Sink) Emit(d radreport.Diagnostic) {
	s.logger.Warn("start marker matched multiple times, only the first match is used",
		"fragment", d.Fragment,
		"count", d.Count,
	)
}
