package radreport

import "encoding/json"

// Report holds the extracted canonical sections of a report. A nil field
// means the section was absent from the input text.
type Report struct {
	Title      *string `json:"title"`
	History    *string `json:"history"`
	Technique  *string `json:"technique"`
	Comparison *string `json:"comparison"`
	Findings   *string `json:"findings"`
	Impression *string `json:"impression"`
}

// omitReport mirrors Report with omitempty tags so absent sections are
// dropped from the JSON output.
type omitReport struct {
	Title      *string `json:"title,omitempty"`
	History    *string `json:"history,omitempty"`
	Technique  *string `json:"technique,omitempty"`
	Comparison *string `json:"comparison,omitempty"`
	Findings   *string `json:"findings,omitempty"`
	Impression *string `json:"impression,omitempty"`
}

// Map returns the report as a map keyed by canonical section name. Absent
// sections map to nil, or are left out when omitAbsent is true.
func (r *Report) Map(omitAbsent bool) map[string]any {
	m := make(map[string]any, len(SectionNames))
	for _, name := range SectionNames {
		value := r.Section(name)
		if value == nil {
			if omitAbsent {
				continue
			}
			m[string(name)] = nil
			continue
		}
		m[string(name)] = *value
	}
	return m
}

// JSON returns the report as a JSON object. Absent sections are encoded as
// null, or left out entirely when omitAbsent is true.
func (r *Report) JSON(omitAbsent bool) ([]byte, error) {
	if omitAbsent {
		return json.Marshal(omitReport(*r))
	}
	return json.Marshal(r)
}

// Section returns the value of the named section, or nil if the section is
// absent or the name is not canonical.
func (r *Report) Section(name Section) *string {
	switch name {
	case SectionTitle:
		return r.Title
	case SectionHistory:
		return r.History
	case SectionTechnique:
		return r.Technique
	case SectionComparison:
		return r.Comparison
	case SectionFindings:
		return r.Findings
	case SectionImpression:
		return r.Impression
	}
	return nil
}

// setSection assigns the named section. Unknown names are ignored.
func (r *Report) setSection(name Section, value *string) {
	switch name {
	case SectionTitle:
		r.Title = value
	case SectionHistory:
		r.History = value
	case SectionTechnique:
		r.Technique = value
	case SectionComparison:
		r.Comparison = value
	case SectionFindings:
		r.Findings = value
	case SectionImpression:
		r.Impression = value
	}
}
