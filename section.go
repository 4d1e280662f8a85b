package radreport

// Section names a canonical report section.
type Section string

// Canonical report sections, in typical document order.
const (
	SectionTitle      Section = "title"
	SectionHistory    Section = "history"
	SectionTechnique  Section = "technique"
	SectionComparison Section = "comparison"
	SectionFindings   Section = "findings"
	SectionImpression Section = "impression"
)

// SectionNames lists the canonical sections in typical document order.
var SectionNames = []Section{
	SectionTitle,
	SectionHistory,
	SectionTechnique,
	SectionComparison,
	SectionFindings,
	SectionImpression,
}

// ReportConfig configures a ReportExtractor. Nil marker lists fall back to
// the package defaults.
type ReportConfig struct {
	HistoryMarkers    []string
	TechniqueMarkers  []string
	ComparisonMarkers []string
	FindingsMarkers   []string
	ImpressionMarkers []string
	FooterMarkers     []string

	// IncludeStartMarker keeps the matched section heading in the output.
	IncludeStartMarker bool

	// WordBoundary anchors marker matches to word edges.
	WordBoundary bool

	// MatchStrategy selects the end-matching strategy for every section.
	// Empty defaults to MatchGreedy.
	MatchStrategy MatchStrategy

	// Sink receives duplicate-marker diagnostics. Nil discards them.
	Sink DiagnosticSink
}

// DefaultReportConfig returns the configuration matching typical report
// layout: headings are kept in the output and markers match anywhere, not
// just at word edges.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		IncludeStartMarker: true,
		MatchStrategy:      MatchGreedy,
	}
}

// ReportExtractor extracts the canonical sections of a report. It composes
// one Extractor per section: each section starts at its own markers and
// ends where the next plausible section begins. The title is special: it
// starts at the beginning of the text and ends at whichever canonical
// section appears first.
//
// A ReportExtractor is immutable after construction and safe for
// concurrent use as long as its diagnostic sink is.
type ReportExtractor struct {
	extractors map[Section]*Extractor
}

// NewReportExtractor returns a ReportExtractor using the given pattern
// engine. Configuration errors (bad strategy, invalid marker patterns)
// surface here, never during extraction.
func NewReportExtractor(engine Engine, cfg ReportConfig) (*ReportExtractor, error) {
	history := markersOrDefault(cfg.HistoryMarkers, DefaultHistoryMarkers)
	technique := markersOrDefault(cfg.TechniqueMarkers, DefaultTechniqueMarkers)
	comparison := markersOrDefault(cfg.ComparisonMarkers, DefaultComparisonMarkers)
	findings := markersOrDefault(cfg.FindingsMarkers, DefaultFindingsMarkers)
	impression := markersOrDefault(cfg.ImpressionMarkers, DefaultImpressionMarkers)
	footer := markersOrDefault(cfg.FooterMarkers, DefaultFooterMarkers)

	boundaries := map[Section]struct {
		start []string
		end   []string
	}{
		SectionTitle: {
			start: nil,
			end:   concat(history, technique, comparison, findings, impression),
		},
		SectionHistory: {
			start: history,
			end:   concat(technique, comparison, findings, impression),
		},
		SectionTechnique: {
			start: technique,
			end:   concat(comparison, findings, impression),
		},
		SectionComparison: {
			start: comparison,
			end:   concat(technique, findings, impression),
		},
		SectionFindings: {
			start: findings,
			end:   concat(impression, footer),
		},
		SectionImpression: {
			start: impression,
			end:   footer,
		},
	}

	extractors := make(map[Section]*Extractor, len(boundaries))
	for name, b := range boundaries {
		extractor, err := NewExtractor(engine, ExtractorConfig{
			StartMarkers:       b.start,
			EndMarkers:         b.end,
			IncludeStartMarker: cfg.IncludeStartMarker,
			WordBoundary:       cfg.WordBoundary,
			MatchStrategy:      cfg.MatchStrategy,
			Sink:               cfg.Sink,
		})
		if err != nil {
			return nil, err
		}
		extractors[name] = extractor
	}

	return &ReportExtractor{extractors: extractors}, nil
}

// ExtractSection extracts a single canonical section by name. Returns an
// EINVALID error for a non-canonical name.
func (x *ReportExtractor) ExtractSection(text string, name Section) (string, error) {
	extractor, ok := x.extractors[name]
	if !ok {
		return "", Errorf(EINVALID, "unknown section %q", name)
	}
	return extractor.Extract(text)
}

// ExtractTitle extracts the title section, from the start of the text to
// the first canonical section heading.
func (x *ReportExtractor) ExtractTitle(text string) (string, error) {
	return x.ExtractSection(text, SectionTitle)
}

// ExtractHistory extracts the history/clinical indication section.
func (x *ReportExtractor) ExtractHistory(text string) (string, error) {
	return x.ExtractSection(text, SectionHistory)
}

// ExtractTechnique extracts the technique/procedure section.
func (x *ReportExtractor) ExtractTechnique(text string) (string, error) {
	return x.ExtractSection(text, SectionTechnique)
}

// ExtractComparison extracts the comparison with prior studies section.
func (x *ReportExtractor) ExtractComparison(text string) (string, error) {
	return x.ExtractSection(text, SectionComparison)
}

// ExtractFindings extracts the findings/description section.
func (x *ReportExtractor) ExtractFindings(text string) (string, error) {
	return x.ExtractSection(text, SectionFindings)
}

// ExtractImpression extracts the impression/conclusion section.
func (x *ReportExtractor) ExtractImpression(text string) (string, error) {
	return x.ExtractSection(text, SectionImpression)
}

// Extract runs every canonical section's extractor against the text and
// assembles the results into a Report. A section that does not match, or
// that matches but trims to nothing, is recorded as absent.
func (x *ReportExtractor) Extract(text string) (Report, error) {
	var report Report
	for _, name := range SectionNames {
		section, err := x.extractors[name].Extract(text)
		if err != nil {
			return Report{}, err
		}
		if section == "" {
			continue
		}
		report.setSection(name, &section)
	}
	return report, nil
}

func markersOrDefault(markers, fallback []string) []string {
	if markers == nil {
		return fallback
	}
	return markers
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
