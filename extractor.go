package radreport

import "strings"

// MatchStrategy selects how end markers terminate a section.
type MatchStrategy string

// Recognized match strategies.
const (
	// MatchGreedy terminates at the earliest textual occurrence of any
	// end marker.
	MatchGreedy MatchStrategy = "greedy"

	// MatchSequential tries end markers in list order and terminates at
	// the first one that matches anywhere in the remaining text,
	// regardless of where lower-priority markers occur.
	MatchSequential MatchStrategy = "sequential"
)

// ExtractorConfig configures a section Extractor.
type ExtractorConfig struct {
	// StartMarkers are the pattern fragments that open the section. Nil
	// means the section starts at the beginning of the text.
	StartMarkers []string

	// EndMarkers are the pattern fragments that close the section. Nil
	// means the section extends to the end of the text.
	EndMarkers []string

	// IncludeStartMarker keeps the matched start marker in the output.
	IncludeStartMarker bool

	// WordBoundary anchors marker matches to word edges.
	WordBoundary bool

	// MatchStrategy selects the end-matching strategy. Empty defaults to
	// MatchGreedy.
	MatchStrategy MatchStrategy

	// Sink receives duplicate-marker diagnostics. Nil discards them.
	Sink DiagnosticSink
}

// Extractor extracts one labeled section from free text, bounded by start
// and end marker patterns. It is immutable after construction and safe for
// concurrent use as long as its diagnostic sink is.
type Extractor struct {
	startMarkers []string
	endMarkers   []string
	includeStart bool
	wordBoundary bool
	strategy     MatchStrategy
	finder       *Finder
}

// NewExtractor returns an Extractor using the given pattern engine.
//
// Configuration is validated eagerly: an unrecognized match strategy or a
// non-nil empty or invalid marker list returns an EINVALID error here, not
// at extraction time.
func NewExtractor(engine Engine, cfg ExtractorConfig) (*Extractor, error) {
	strategy := cfg.MatchStrategy
	if strategy == "" {
		strategy = MatchGreedy
	}
	if strategy != MatchGreedy && strategy != MatchSequential {
		return nil, Errorf(EINVALID, "unrecognized match strategy %q", cfg.MatchStrategy)
	}

	opts := CompileOptions{WordBoundary: cfg.WordBoundary}
	if cfg.StartMarkers != nil {
		if _, err := engine.Compile(cfg.StartMarkers, opts); err != nil {
			return nil, err
		}
	}
	if cfg.EndMarkers != nil {
		if _, err := engine.Compile(cfg.EndMarkers, opts); err != nil {
			return nil, err
		}
	}

	return &Extractor{
		startMarkers: cfg.StartMarkers,
		endMarkers:   cfg.EndMarkers,
		includeStart: cfg.IncludeStartMarker,
		wordBoundary: cfg.WordBoundary,
		strategy:     strategy,
		finder:       NewFinder(engine, cfg.Sink),
	}, nil
}

// Extract returns the section's text, trimmed of surrounding whitespace.
// Returns an empty string if no start marker matches.
func (e *Extractor) Extract(text string) (string, error) {
	start, err := e.finder.FindFirstStart(text, e.startMarkers, e.wordBoundary)
	if err != nil {
		return "", err
	}
	if start == NoMatch {
		return "", nil
	}
	return e.slice(text, start)
}

// ExtractAll returns every occurrence of the section in document order.
// Each occurrence resolves its own end boundary independently, starting
// from that occurrence's own start offset, so overlapping spans are
// possible. Occurrences that trim to an empty string are dropped.
func (e *Extractor) ExtractAll(text string) ([]string, error) {
	starts, err := e.finder.FindAllStarts(text, e.startMarkers, e.wordBoundary)
	if err != nil {
		return nil, err
	}

	sections := make([]string, 0, len(starts))
	for _, start := range starts {
		section, err := e.slice(text, start)
		if err != nil {
			return nil, err
		}
		if section != "" {
			sections = append(sections, section)
		}
	}
	return sections, nil
}

// slice resolves the end boundary for a start span and returns the trimmed
// section text.
func (e *Extractor) slice(text string, start Span) (string, error) {
	var end int
	var err error
	switch e.strategy {
	case MatchSequential:
		end, err = e.finder.FindEndSequential(text, e.endMarkers, start.Start, e.wordBoundary)
	default:
		end, err = e.finder.FindEndGreedy(text, e.endMarkers, start.Start, e.wordBoundary)
	}
	if err != nil {
		return "", err
	}

	from := start.Start
	if !e.includeStart {
		from = start.End
	}
	// The start marker itself can satisfy an end marker, leaving the
	// boundary before the marker's end.
	if from > end {
		return "", nil
	}
	return strings.TrimSpace(text[from:end]), nil
}
