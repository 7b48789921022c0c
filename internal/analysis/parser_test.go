package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSentimentJSON = `{
  "tone": "negative",
  "emotions": {"joy": 0.1, "trust": 0.2, "fear": 0.6, "anger": 0.5, "sadness": 0.3, "anticipation": 0.4, "disgust": 0.2, "surprise": 0.1},
  "rhetoric": {"analytical": 0.7, "supportive": 0.1, "persuasive": 0.5, "alarmist": 0.4, "dismissive": 0.2, "sarcastic": 0.1},
  "loaded_language": 0.6,
  "certainty": {"certainty": 0.8, "speculation": 0.3}
}`

func TestParseSentimentProfileValid(t *testing.T) {
	profile, err := ParseSentimentProfile(validSentimentJSON)
	require.NoError(t, err)

	assert.Equal(t, "negative", profile.Tone)
	assert.Equal(t, 0.6, profile.Emotions.Fear)
	assert.Equal(t, 0.7, profile.Rhetoric.Analytical)
	assert.Equal(t, 0.6, profile.LoadedLanguage)
	assert.Equal(t, 0.3, profile.Certainty.Speculation)
}

func TestParseSentimentProfileSurroundedByProse(t *testing.T) {
	text := "Sure! Here is the analysis you asked for:\n\n" + validSentimentJSON + "\n\nLet me know if you need anything else."
	profile, err := ParseSentimentProfile(text)
	require.NoError(t, err)
	assert.Equal(t, "negative", profile.Tone)
}

func TestParseSentimentProfileFailures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(string) string
		wantKind ParseErrorKind
	}{
		{
			name:     "no structured block",
			mutate:   func(string) string { return "the article is fairly negative overall" },
			wantKind: ParseErrNoPayload,
		},
		{
			name:     "block not well-formed",
			mutate:   func(string) string { return `{"tone": "negative", }` },
			wantKind: ParseErrMalformedPayload,
		},
		{
			name:     "missing top-level field",
			mutate:   func(s string) string { return strings.Replace(s, `"loaded_language": 0.6,`, "", 1) },
			wantKind: ParseErrMissingField,
		},
		{
			name:     "missing emotion key",
			mutate:   func(s string) string { return strings.Replace(s, `"joy": 0.1, `, "", 1) },
			wantKind: ParseErrMissingField,
		},
		{
			name:     "numeric field out of range",
			mutate:   func(s string) string { return strings.Replace(s, `"loaded_language": 0.6`, `"loaded_language": 1.5`, 1) },
			wantKind: ParseErrOutOfRange,
		},
		{
			name:     "numeric field negative",
			mutate:   func(s string) string { return strings.Replace(s, `"fear": 0.6`, `"fear": -0.2`, 1) },
			wantKind: ParseErrOutOfRange,
		},
		{
			name:     "numeric field not numeric",
			mutate:   func(s string) string { return strings.Replace(s, `"certainty": 0.8`, `"certainty": "high"`, 1) },
			wantKind: ParseErrOutOfRange,
		},
		{
			name:     "unrecognized tone category",
			mutate:   func(s string) string { return strings.Replace(s, `"tone": "negative"`, `"tone": "mixed"`, 1) },
			wantKind: ParseErrBadTone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSentimentProfile(tt.mutate(validSentimentJSON))
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantKind, perr.Kind)
		})
	}
}

func TestParseSentimentProfileToneNormalized(t *testing.T) {
	text := strings.Replace(validSentimentJSON, `"tone": "negative"`, `"tone": " Negative "`, 1)
	profile, err := ParseSentimentProfile(text)
	require.NoError(t, err)
	assert.Equal(t, "negative", profile.Tone)
}

func TestParseRhetoricReport(t *testing.T) {
	text := `Here you go: {"overall_tone": "alarmist", "devices": [{"device": "loaded language", "example": "rigged"}], "bias_indicators": ["one-sided sourcing"], "extra": 42}`

	report, err := ParseRhetoricReport(text)
	require.NoError(t, err)

	// payload is passed through as-is, extra keys included
	assert.Equal(t, "alarmist", report["overall_tone"])
	assert.Equal(t, float64(42), report["extra"])

	_, err = ParseRhetoricReport(`{"overall_tone": "neutral", "devices": []}`)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ParseErrMissingField, perr.Kind)
	assert.Equal(t, "bias_indicators", perr.Field)
}

func TestParseComparisonReport(t *testing.T) {
	text := `{"framing_differences": "a vs b", "tone_comparison": "similar", "source_selection": "left cites experts", "key_differences": "funding detail", "assessment": "article 1 more balanced"}`

	report, err := ParseComparisonReport(text)
	require.NoError(t, err)
	assert.Equal(t, "article 1 more balanced", report["assessment"])

	_, err = ParseComparisonReport(`{"framing_differences": "a vs b"}`)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ParseErrMissingField, perr.Kind)
}

func TestExtractFirstJSONSkipsBrokenBlocks(t *testing.T) {
	// a brace in prose before the real payload must not derail extraction
	text := `the set {1,2} is irrelevant {"framing_differences": "x", "source_selection": "y", "assessment": "z"}`
	report, err := ParseComparisonReport(text)
	require.NoError(t, err)
	assert.Equal(t, "x", report["framing_differences"])
}
