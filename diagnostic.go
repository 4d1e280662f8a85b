package radreport

// Diagnostic is an advisory message emitted during start-marker resolution
// when a single marker fragment matches more than once in a text. It never
// alters the extraction result; it exists for report-quality auditing.
type Diagnostic struct {
	// Fragment is the marker pattern fragment that matched repeatedly.
	Fragment string

	// Count is the number of times the fragment matched.
	Count int
}

// DiagnosticSink receives advisory diagnostics. Implementations must be
// safe for concurrent use; no ordering is guaranteed across goroutines.
type DiagnosticSink interface {
	Emit(Diagnostic)
}

// DiagnosticFunc adapts a function to the DiagnosticSink interface.
type DiagnosticFunc func(Diagnostic)

// Emit calls f(d).
func (f DiagnosticFunc) Emit(d Diagnostic) { f(d) }

// NopSink is a DiagnosticSink that discards everything.
type NopSink struct{}

// Emit discards the diagnostic.
func (NopSink) Emit(Diagnostic) {}
