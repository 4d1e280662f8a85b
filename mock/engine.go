package mock

import "github.com/radkit/radreport"

var _ radreport.Engine = (*Engine)(nil)

// Engine is a mock implementation of radreport.Engine.
type Engine struct {
	CompileFn func(fragments []string, opts radreport.CompileOptions) (radreport.Matcher, error)
}

func (e *Engine) Compile(fragments []string, opts radreport.CompileOptions) (radreport.Matcher, error) {
	return e.CompileFn(fragments, opts)
}

var _ radreport.Matcher = (*Matcher)(nil)

// Matcher is a mock implementation of radreport.Matcher.
type Matcher struct {
	FindFirstFn func(text string) (radreport.Span, bool)
	FindAllFn   func(text string) []radreport.Span
}

func (m *Matcher) FindFirst(text string) (radreport.Span, bool) {
	return m.FindFirstFn(text)
}

func (m *Matcher) FindAll(text string) []radreport.Span {
	return m.FindAllFn(text)
}
