package analysis

import (
	"os"

	"newsinsight/internal/models"
)

// Built-in model defaults per purpose. Sentiment and rhetoric ride the fast
// instant model; comparison reads two articles at once and gets the heavier
// one.
const (
	DEFAULT_SENTIMENT_MODEL  = "llama-3.1-8b-instant"
	DEFAULT_RHETORIC_MODEL   = "llama-3.1-8b-instant"
	DEFAULT_COMPARISON_MODEL = "llama-3.3-70b-versatile"
)

// ModelConfig maps each analysis purpose to a model identifier. Built once at
// process start and never mutated after, so concurrent analyses share it
// without synchronization.
type ModelConfig struct {
	Sentiment  string
	Rhetoric   string
	Comparison string
}

// NewModelConfigFromEnv applies GROQ_*_MODEL overrides on top of the
// built-in defaults. Changing models never requires a code change.
func NewModelConfigFromEnv() ModelConfig {
	return ModelConfig{
		Sentiment:  envOrDefault("GROQ_SENTIMENT_MODEL", DEFAULT_SENTIMENT_MODEL),
		Rhetoric:   envOrDefault("GROQ_RHETORIC_MODEL", DEFAULT_RHETORIC_MODEL),
		Comparison: envOrDefault("GROQ_COMPARISON_MODEL", DEFAULT_COMPARISON_MODEL),
	}
}

// Resolve returns the model identifier for a purpose. An unrecognized purpose
// is a programming error in the caller, not runtime data, so it fails fast.
func (c ModelConfig) Resolve(purpose models.AnalysisPurpose) string {
	switch purpose {
	case models.PurposeSentiment:
		return c.Sentiment
	case models.PurposeRhetoric:
		return c.Rhetoric
	case models.PurposeComparison:
		return c.Comparison
	}
	panic("analysis: unrecognized purpose " + string(purpose))
}

func envOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
