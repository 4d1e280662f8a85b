package mock

import (
	"sync"

	"github.com/radkit/radreport"
)

var _ radreport.DiagnosticSink = (*Sink)(nil)

// Sink is a recording implementation of radreport.DiagnosticSink for tests.
// It is safe for concurrent use.
type Sink struct {
	mu          sync.Mutex
	diagnostics []radreport.Diagnostic
}

// Emit records the diagnostic.
func (s *Sink) Emit(d radreport.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diagnostics = append(s.diagnostics, d)
}

// Diagnostics returns a copy of everything emitted so far.
func (s *Sink) Diagnostics() []radreport.Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]radreport.Diagnostic, len(s.diagnostics))
	copy(out, s.diagnostics)
	return out
}
