package radreport

// Span is a half-open [Start, End) range of byte offsets into a text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NoMatch is the sentinel span returned when no marker matches.
var NoMatch = Span{Start: -1, End: -1}

// CompileOptions controls how marker fragments are compiled into a matcher.
// Matching is always case-insensitive.
type CompileOptions struct {
	// WordBoundary anchors each match so it begins and ends on a word
	// boundary. This prevents a fragment like "history" from matching
	// inside "clinicalhistory".
	WordBoundary bool

	// DotAll makes "." match any character including newline. Used
	// internally for first-keyword lookup across line breaks.
	DotAll bool
}

// Matcher finds occurrences of a compiled marker pattern in a text.
type Matcher interface {
	// FindFirst returns the span of the leftmost match. The second return
	// value reports whether a match was found.
	FindFirst(text string) (Span, bool)

	// FindAll returns the spans of all non-overlapping matches, scanned
	// left to right. Returns nil if there are no matches.
	FindAll(text string) []Span
}

// Engine compiles an ordered list of marker fragments into a single
// case-insensitive alternation matcher. Fragments are interpreted as
// patterns, not literals.
//
// Compile returns an EINVALID error if fragments is empty or any fragment
// is not a valid pattern.
type Engine interface {
	Compile(fragments []string, opts CompileOptions) (Matcher, error)
}
