package radreport_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radkit/radreport"
	"github.com/radkit/radreport/regexp"
)

const minimalReport = `EMERGENCY CT BRAIN

HISTORY: 25F, dizziness and LOC

TECHNIQUE: CT brain without contrast

FINDINGS: Normal study
- No hemorrhage
- No mass

IMPRESSION: No acute abnormality`

func TestNewExtractor(t *testing.T) {
	t.Parallel()

	engine := regexp.NewEngine()

	t.Run("rejects unrecognized match strategy", func(t *testing.T) {
		t.Parallel()

		_, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers:  []string{"START:"},
			EndMarkers:    []string{"END:"},
			MatchStrategy: "invalid",
		})
		require.Error(t, err)
		assert.Equal(t, radreport.EINVALID, radreport.ErrorCode(err))
	})

	t.Run("rejects empty non-nil marker list at construction", func(t *testing.T) {
		t.Parallel()

		_, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers: []string{},
		})
		require.Error(t, err)
		assert.Equal(t, radreport.EINVALID, radreport.ErrorCode(err))
	})

	t.Run("rejects invalid marker pattern at construction", func(t *testing.T) {
		t.Parallel()

		_, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers: []string{"HISTORY:"},
			EndMarkers:   []string{"(unclosed"},
		})
		require.Error(t, err)
		assert.Equal(t, radreport.EINVALID, radreport.ErrorCode(err))
	})

	t.Run("empty strategy defaults to greedy", func(t *testing.T) {
		t.Parallel()

		_, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers: []string{"HISTORY:"},
		})
		assert.NoError(t, err)
	})
}

func TestExtract(t *testing.T) {
	t.Parallel()

	engine := regexp.NewEngine()

	t.Run("extracts section between start and end markers", func(t *testing.T) {
		t.Parallel()

		extractor, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers:       []string{"HISTORY:"},
			EndMarkers:         []string{"TECHNIQUE:"},
			IncludeStartMarker: true,
		})
		require.NoError(t, err)

		section, err := extractor.Extract(minimalReport)
		require.NoError(t, err)
		assert.Equal(t, "HISTORY: 25F, dizziness and LOC", section)
	})

	t.Run("multiline section content is preserved", func(t *testing.T) {
		t.Parallel()

		extractor, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers:       []string{"FINDINGS:"},
			EndMarkers:         []string{"IMPRESSION:"},
			IncludeStartMarker: true,
		})
		require.NoError(t, err)

		section, err := extractor.Extract(minimalReport)
		require.NoError(t, err)
		assert.Contains(t, section, "FINDINGS: Normal study")
		assert.Contains(t, section, "- No hemorrhage")
		assert.Contains(t, section, "- No mass")
		assert.NotContains(t, section, "IMPRESSION:")
	})

	t.Run("nil start markers begin the section at offset zero", func(t *testing.T) {
		t.Parallel()

		extractor, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers: nil,
			EndMarkers:   []string{"HISTORY:"},
		})
		require.NoError(t, err)

		section, err := extractor.Extract(minimalReport)
		require.NoError(t, err)
		assert.Equal(t, "EMERGENCY CT BRAIN", section)
	})

	t.Run("nil end markers extend the section to end of text", func(t *testing.T) {
		t.Parallel()

		extractor, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers:       []string{"IMPRESSION:"},
			EndMarkers:         nil,
			IncludeStartMarker: true,
		})
		require.NoError(t, err)

		section, err := extractor.Extract(minimalReport)
		require.NoError(t, err)
		assert.Equal(t, "IMPRESSION: No acute abnormality", section)
	})

	t.Run("no start match returns empty string", func(t *testing.T) {
		t.Parallel()

		extractor, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers: []string{"COMPARISON:"},
			EndMarkers:   []string{"FINDINGS:"},
		})
		require.NoError(t, err)

		section, err := extractor.Extract(minimalReport)
		require.NoError(t, err)
		assert.Equal(t, "", section)

		section, err = extractor.Extract("")
		require.NoError(t, err)
		assert.Equal(t, "", section)
	})

	t.Run("greedy and sequential strategies diverge on out-of-order text", func(t *testing.T) {
		t.Parallel()

		text := "HISTORY: a\nIMPRESSION: b\nFINDINGS: c"

		greedy, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers:       []string{"HISTORY"},
			EndMarkers:         []string{"FINDINGS", "IMPRESSION"},
			IncludeStartMarker: true,
			MatchStrategy:      radreport.MatchGreedy,
		})
		require.NoError(t, err)

		sequential, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers:       []string{"HISTORY"},
			EndMarkers:         []string{"FINDINGS", "IMPRESSION"},
			IncludeStartMarker: true,
			MatchStrategy:      radreport.MatchSequential,
		})
		require.NoError(t, err)

		// Greedy stops at the earliest end marker in the text.
		section, err := greedy.Extract(text)
		require.NoError(t, err)
		assert.Equal(t, "HISTORY: a", section)

		// Sequential prefers FINDINGS because it is listed first, even
		// though IMPRESSION occurs earlier in the text.
		section, err = sequential.Extract(text)
		require.NoError(t, err)
		assert.Equal(t, "HISTORY: a\nIMPRESSION: b", section)
	})

	t.Run("excluding the start marker strips it and re-trims", func(t *testing.T) {
		t.Parallel()

		withMarker, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers:       []string{"HISTORY:"},
			EndMarkers:         []string{"TECHNIQUE:"},
			IncludeStartMarker: true,
		})
		require.NoError(t, err)

		withoutMarker, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers:       []string{"HISTORY:"},
			EndMarkers:         []string{"TECHNIQUE:"},
			IncludeStartMarker: false,
		})
		require.NoError(t, err)

		included, err := withMarker.Extract(minimalReport)
		require.NoError(t, err)
		excluded, err := withoutMarker.Extract(minimalReport)
		require.NoError(t, err)

		assert.Equal(t, strings.TrimSpace(strings.TrimPrefix(included, "HISTORY:")), excluded)
	})

	t.Run("word boundary distinguishes similar headings", func(t *testing.T) {
		t.Parallel()

		text := "FINDING: No S\nFINDINGS_EXTRA: with Extra\nFINDINGS: With S\n"

		unanchored, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers: []string{"FINDINGS"},
		})
		require.NoError(t, err)

		anchored, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers: []string{"FINDINGS"},
			WordBoundary: true,
		})
		require.NoError(t, err)

		section, err := unanchored.Extract(text)
		require.NoError(t, err)
		assert.Contains(t, section, "with Extra")

		section, err = anchored.Extract(text)
		require.NoError(t, err)
		assert.Contains(t, section, "With S")
		assert.NotContains(t, section, "with Extra")
	})
}

func TestExtractAll(t *testing.T) {
	t.Parallel()

	engine := regexp.NewEngine()

	t.Run("each occurrence resolves its own end boundary", func(t *testing.T) {
		t.Parallel()

		text := "Human: Hi\nAI: Hello\nHuman: Bye\nAI: See ya"

		extractor, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers: []string{"Human"},
			EndMarkers:   []string{"AI"},
		})
		require.NoError(t, err)

		sections, err := extractor.ExtractAll(text)
		require.NoError(t, err)
		assert.Equal(t, []string{": Hi", ": Bye"}, sections)
	})

	t.Run("marker fragment consuming trailing punctuation yields bare content", func(t *testing.T) {
		t.Parallel()

		text := "Human: Hi\nAI: Hello\nHuman: Bye\nAI: See ya"

		extractor, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers: []string{`Human[^\w\n]*`},
			EndMarkers:   []string{"AI"},
		})
		require.NoError(t, err)

		sections, err := extractor.ExtractAll(text)
		require.NoError(t, err)
		assert.Equal(t, []string{"Hi", "Bye"}, sections)
	})

	t.Run("no start match returns empty result", func(t *testing.T) {
		t.Parallel()

		extractor, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers: []string{"COMPARISON:"},
		})
		require.NoError(t, err)

		sections, err := extractor.ExtractAll(minimalReport)
		require.NoError(t, err)
		assert.Empty(t, sections)
	})

	t.Run("occurrences trimming to empty are dropped", func(t *testing.T) {
		t.Parallel()

		text := "FINDINGS: \nIMPRESSION: x\nFINDINGS: real\nIMPRESSION: y"

		extractor, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers: []string{"FINDINGS:"},
			EndMarkers:   []string{"IMPRESSION:"},
		})
		require.NoError(t, err)

		sections, err := extractor.ExtractAll(text)
		require.NoError(t, err)
		assert.Equal(t, []string{"real"}, sections)
	})

	t.Run("nil start markers yield the whole text once", func(t *testing.T) {
		t.Parallel()

		extractor, err := radreport.NewExtractor(engine, radreport.ExtractorConfig{
			StartMarkers: nil,
		})
		require.NoError(t, err)

		sections, err := extractor.ExtractAll("just text")
		require.NoError(t, err)
		assert.Equal(t, []string{"just text"}, sections)
	})
}
