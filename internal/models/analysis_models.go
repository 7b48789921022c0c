package models

// AnalysisPurpose selects which kind of analysis a request is for. The set is
// closed; anything else is a caller bug.
type AnalysisPurpose string

const (
	PurposeSentiment  AnalysisPurpose = "sentiment"
	PurposeRhetoric   AnalysisPurpose = "rhetoric"
	PurposeComparison AnalysisPurpose = "comparison"
)

func (p AnalysisPurpose) Valid() bool {
	switch p {
	case PurposeSentiment, PurposeRhetoric, PurposeComparison:
		return true
	}
	return false
}

// RawCompletion is the unprocessed text returned by the completion endpoint
// for a single request, before any sanitization.
type RawCompletion struct {
	Text       string `json:"text"`
	Model      string `json:"model"`
	TokensUsed int    `json:"tokens_used"`
}

// RhetoricReport and ComparisonReport are validated only for their required
// top-level keys and otherwise passed through to the caller untouched.
type RhetoricReport map[string]any

type ComparisonReport map[string]any

// DeepAnalysis bundles the per-article rhetoric report with a comparison
// against a reference article.
type DeepAnalysis struct {
	Rhetoric   RhetoricReport   `json:"rhetoric"`
	Comparison ComparisonReport `json:"comparison"`
}
