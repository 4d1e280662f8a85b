// Package re2 implements the radreport pattern engine on top of
// wasilibs/go-re2, which guarantees linear-time matching. Useful when
// marker lists come from untrusted configuration or texts are large.
package re2

import (
	"github.com/wasilibs/go-re2"

	"github.com/radkit/radreport"
	"github.com/radkit/radreport/regexp"
)

// Ensure Engine implements radreport.Engine at compile time.
var _ radreport.Engine = (*Engine)(nil)

// Engine compiles marker patterns with the RE2 engine.
type Engine struct{}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Compile builds a case-insensitive alternation over the fragments.
func (e *Engine) Compile(fragments []string, opts radreport.CompileOptions) (radreport.Matcher, error) {
	expr, err := regexp.Expr(fragments, opts)
	if err != nil {
		return nil, err
	}
	re, err := re2.Compile(expr)
	if err != nil {
		return nil, radreport.Errorf(radreport.EINVALID, "invalid marker pattern: %s", err)
	}
	return &matcher{re: re}, nil
}

type matcher struct {
	re *re2.Regexp
}

func (m *matcher) FindFirst(text string) (radreport.Span, bool) {
	loc := m.re.FindStringIndex(text)
	if loc == nil {
		return radreport.NoMatch, false
	}
	return radreport.Span{Start: loc[0], End: loc[1]}, true
}

func (m *matcher) FindAll(text string) []radreport.Span {
	locs := m.re.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}
	spans := make([]radreport.Span, len(locs))
	for i, loc := range locs {
		spans[i] = radreport.Span{Start: loc[0], End: loc[1]}
	}
	return spans
}
