package radreport

// Finder locates section start and end positions in a text using a
// pattern Engine. It holds no per-call state and is safe for concurrent
// use as long as its sink is.
type Finder struct {
	engine Engine
	sink   DiagnosticSink
}

// NewFinder returns a Finder bound to the given engine. A nil sink
// discards diagnostics.
func NewFinder(engine Engine, sink DiagnosticSink) *Finder {
	if sink == nil {
		sink = NopSink{}
	}
	return &Finder{engine: engine, sink: sink}
}

// FindFirstStart returns the span of the first position in text matching
// any marker. Nil markers mean the section starts at the beginning of the
// text, so Span{0, 0} is returned. If no marker matches, NoMatch is
// returned.
//
// As a side effect, a Diagnostic is emitted for each individual marker
// fragment that independently matches two or more times anywhere in the
// text. The first overall match is still used; diagnostics never change
// the result.
func (f *Finder) FindFirstStart(text string, markers []string, wordBoundary bool) (Span, error) {
	if markers == nil {
		return Span{0, 0}, nil
	}

	// Count per-fragment occurrences for the duplicate-marker advisory.
	// Counting uses the dot-all mode so fragments that span line breaks
	// are still counted.
	for _, fragment := range markers {
		m, err := f.engine.Compile([]string{fragment}, CompileOptions{DotAll: true})
		if err != nil {
			return NoMatch, err
		}
		if n := len(m.FindAll(text)); n >= 2 {
			f.sink.Emit(Diagnostic{Fragment: fragment, Count: n})
		}
	}

	m, err := f.engine.Compile(markers, CompileOptions{WordBoundary: wordBoundary})
	if err != nil {
		return NoMatch, err
	}
	span, ok := m.FindFirst(text)
	if !ok {
		return NoMatch, nil
	}
	return span, nil
}

// FindAllStarts returns the spans of every non-overlapping position in
// text matching any marker, scanned left to right. Nil markers yield the
// single sentinel span {0, 0}; no matches yield an empty result.
func (f *Finder) FindAllStarts(text string, markers []string, wordBoundary bool) ([]Span, error) {
	if markers == nil {
		return []Span{{0, 0}}, nil
	}
	m, err := f.engine.Compile(markers, CompileOptions{WordBoundary: wordBoundary})
	if err != nil {
		return nil, err
	}
	return m.FindAll(text), nil
}

// FindEndGreedy returns the offset of the earliest occurrence, at or after
// from, of any end marker. All markers compete together; whichever match
// starts first wins regardless of list order. Returns len(text) if markers
// is nil or none match.
func (f *Finder) FindEndGreedy(text string, markers []string, from int, wordBoundary bool) (int, error) {
	if markers == nil {
		return len(text), nil
	}
	m, err := f.engine.Compile(markers, CompileOptions{WordBoundary: wordBoundary})
	if err != nil {
		return 0, err
	}
	span, ok := m.FindFirst(text[from:])
	if !ok {
		return len(text), nil
	}
	return from + span.Start, nil
}

// FindEndSequential tries end markers in their given list order: the first
// marker that matches anywhere at or after from sets the boundary, and
// later markers are never considered even if they would have matched
// earlier in the text. Returns len(text) if markers is nil or no marker
// matches.
func (f *Finder) FindEndSequential(text string, markers []string, from int, wordBoundary bool) (int, error) {
	if markers == nil {
		return len(text), nil
	}
	rest := text[from:]
	for _, fragment := range markers {
		m, err := f.engine.Compile([]string{fragment}, CompileOptions{WordBoundary: wordBoundary})
		if err != nil {
			return 0, err
		}
		if span, ok := m.FindFirst(rest); ok {
			return from + span.Start, nil
		}
	}
	return len(text), nil
}
