package radreport

// Default marker fragments for the canonical report sections.
//
// Each fragment is a pattern, not a literal. The [^\w\n]* wrappers consume
// decoration around a heading (colons, asterisks, dashes) without crossing
// a line break, and (s?) accepts both singular and plural headings.
var (
	DefaultHistoryMarkers = []string{
		`[^\w\n]*History[^\w\n]*`,
		`[^\w\n]*Indication(s?)[^\w\n]*`,
		`[^\w\n]*clinical\s+history[^\w\n]*`,
		`[^\w\n]*clinical\s+indication(s?)[^\w\n]*`,
	}
	DefaultTechniqueMarkers = []string{
		`[^\w\n]*Technique(s?)[^\w\n]*`,
	}
	DefaultComparisonMarkers = []string{
		`[^\w\n]*Comparison(s?)[^\w\n]*`,
	}
	DefaultFindingsMarkers = []string{
		`[^\w\n]*Finding(s?)[^\w\n]*`,
	}
	DefaultImpressionMarkers = []string{
		`[^\w\n]*Impression(s?)[^\w\n]*`,
	}
	DefaultFooterMarkers = []string{
		`[^\w\n]*Report Severity[^\w\n]*`,
		`[^\w\n]*Finalized Datetime[^\w\n]*`,
		`[^\w\n]*Preliminary Datetime[^\w\n]*`,
	}
)
