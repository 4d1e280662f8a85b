// Package regexp implements the radreport pattern engine on top of the
// standard library regexp package.
package regexp

import (
	"regexp"
	"strings"

	"github.com/radkit/radreport"
)

// Ensure Engine implements radreport.Engine at compile time.
var _ radreport.Engine = (*Engine)(nil)

// Engine compiles marker patterns with the standard library regexp engine.
type Engine struct{}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Compile builds a case-insensitive alternation over the fragments.
func (e *Engine) Compile(fragments []string, opts radreport.CompileOptions) (radreport.Matcher, error) {
	expr, err := Expr(fragments, opts)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, radreport.Errorf(radreport.EINVALID, "invalid marker pattern: %s", err)
	}
	return &matcher{re: re}, nil
}

// Expr returns the alternation expression for the fragments, shared by the
// regexp and re2 engines since both accept RE2 syntax.
func Expr(fragments []string, opts radreport.CompileOptions) (string, error) {
	if len(fragments) == 0 {
		return "", radreport.Errorf(radreport.EINVALID, "marker list must contain at least one fragment")
	}

	var sb strings.Builder
	if opts.DotAll {
		sb.WriteString("(?is)")
	} else {
		sb.WriteString("(?i)")
	}
	if opts.WordBoundary {
		sb.WriteString(`\b(?:` + strings.Join(fragments, "|") + `)\b`)
	} else {
		sb.WriteString("(?:" + strings.Join(fragments, "|") + ")")
	}
	return sb.String(), nil
}

type matcher struct {
	re *regexp.Regexp
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
