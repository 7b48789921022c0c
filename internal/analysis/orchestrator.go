package analysis

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"newsinsight/internal/models"
)

// CompletionClient is the single upstream seam: one request in, one
// text-or-transport-fault out. clients.GroqClient satisfies it in production.
type CompletionClient interface {
	Complete(ctx context.Context, model string, systemPrompt string, userContent string) (models.RawCompletion, error)
}

// Orchestrator is the one entry point for analyses: it resolves the model for
// a purpose, calls the completion endpoint, sanitizes and parses the output,
// and for sentiment reduces the parsed profile. It never substitutes a
// synthetic default for a failed call or a failed parse.
type Orchestrator struct {
	cfg    ModelConfig
	client CompletionClient
}

func NewOrchestrator(cfg ModelConfig, client CompletionClient) *Orchestrator {
	return &Orchestrator{cfg: cfg, client: client}
}

// Result is the discriminated success payload of the generic Analyze entry
// point; exactly one field besides Purpose is set.
type Result struct {
	Purpose   models.AnalysisPurpose  `json:"purpose"`
	Sentiment *models.SentimentResult `json:"sentiment,omitempty"`
	Rhetoric  models.RhetoricReport   `json:"rhetoric,omitempty"`
}

// Analyze runs a single-article analysis for a user-supplied purpose.
// Comparison needs two texts and goes through Compare instead.
func (o *Orchestrator) Analyze(ctx context.Context, purpose models.AnalysisPurpose, articleText string) (Result, error) {
	switch purpose {
	case models.PurposeSentiment:
		sentiment, err := o.AnalyzeSentiment(ctx, articleText)
		if err != nil {
			return Result{}, err
		}
		return Result{Purpose: purpose, Sentiment: &sentiment}, nil
	case models.PurposeRhetoric:
		rhetoric, err := o.AnalyzeRhetoric(ctx, articleText)
		if err != nil {
			return Result{}, err
		}
		return Result{Purpose: purpose, Rhetoric: rhetoric}, nil
	case models.PurposeComparison:
		return Result{}, &AnalysisError{Kind: AnalysisErrBadRequest,
			Message: "comparison requires two article texts, use Compare"}
	default:
		return Result{}, &AnalysisError{Kind: AnalysisErrBadRequest,
			Message: "unrecognized analysis purpose: " + string(purpose)}
	}
}

// AnalyzeSentiment classifies one article into the emotional/rhetorical
// profile and reduces it to a single bounded score.
func (o *Orchestrator) AnalyzeSentiment(ctx context.Context, articleText string) (models.SentimentResult, error) {
	if strings.TrimSpace(articleText) == "" {
		return models.SentimentResult{}, &AnalysisError{Kind: AnalysisErrBadRequest, Message: "no content provided"}
	}

	model := o.cfg.Resolve(models.PurposeSentiment)
	raw, err := o.complete(ctx, model, buildSentimentPrompt(articleText))
	if err != nil {
		return models.SentimentResult{}, err
	}

	profile, err := ParseSentimentProfile(SanitizeCompletion(raw.Text))
	if err != nil {
		return models.SentimentResult{}, malformedOutput(model, raw.Text, err)
	}

	result := ReduceSentiment(profile)
	result.Model = model

	slog.Info("[Orchestrator] Sentiment analysis complete",
		slog.String("model", model),
		slog.Float64("score", result.Score),
		slog.String("label", result.Label))
	return result, nil
}

// AnalyzeRhetoric reports tone, rhetorical devices, and bias indicators for
// one article.
func (o *Orchestrator) AnalyzeRhetoric(ctx context.Context, articleText string) (models.RhetoricReport, error) {
	if strings.TrimSpace(articleText) == "" {
		return nil, &AnalysisError{Kind: AnalysisErrBadRequest, Message: "no content provided"}
	}

	model := o.cfg.Resolve(models.PurposeRhetoric)
	raw, err := o.complete(ctx, model, buildRhetoricPrompt(articleText))
	if err != nil {
		return nil, err
	}

	report, err := ParseRhetoricReport(SanitizeCompletion(raw.Text))
	if err != nil {
		return nil, malformedOutput(model, raw.Text, err)
	}
	return report, nil
}

// Compare reports framing, sourcing, and balance differences between two
// articles covering the same story.
func (o *Orchestrator) Compare(ctx context.Context, primaryText string, referenceText string) (models.ComparisonReport, error) {
	if strings.TrimSpace(primaryText) == "" || strings.TrimSpace(referenceText) == "" {
		return nil, &AnalysisError{Kind: AnalysisErrBadRequest, Message: "one of the articles was empty"}
	}

	model := o.cfg.Resolve(models.PurposeComparison)
	raw, err := o.complete(ctx, model, buildComparisonPrompt(primaryText, referenceText))
	if err != nil {
		return nil, err
	}

	report, err := ParseComparisonReport(SanitizeCompletion(raw.Text))
	if err != nil {
		return nil, malformedOutput(model, raw.Text, err)
	}
	return report, nil
}

// DeepAnalysis issues the rhetoric and comparison analyses concurrently; the
// two calls are independent prompt/response pairs, but both must succeed or
// the whole analysis fails. No partial result is ever returned.
func (o *Orchestrator) DeepAnalysis(ctx context.Context, articleText string, referenceText string) (models.DeepAnalysis, error) {
	var (
		wg         sync.WaitGroup
		rhetoric   models.RhetoricReport
		comparison models.ComparisonReport
		rhErr      error
		cmpErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		rhetoric, rhErr = o.AnalyzeRhetoric(ctx, articleText)
	}()
	go func() {
		defer wg.Done()
		comparison, cmpErr = o.Compare(ctx, articleText, referenceText)
	}()
	wg.Wait()

	if rhErr != nil {
		return models.DeepAnalysis{}, rhErr
	}
	if cmpErr != nil {
		return models.DeepAnalysis{}, cmpErr
	}

	return models.DeepAnalysis{Rhetoric: rhetoric, Comparison: comparison}, nil
}

func (o *Orchestrator) complete(ctx context.Context, model string, userContent string) (models.RawCompletion, error) {
	raw, err := o.client.Complete(ctx, model, systemPrompt, userContent)
	if err != nil {
		return models.RawCompletion{}, &AnalysisError{
			Kind:    AnalysisErrUpstream,
			Message: "completion request failed for model " + model,
			Err:     err,
		}
	}
	return raw, nil
}

func malformedOutput(model string, rawText string, err error) *AnalysisError {
	slog.Error("[Orchestrator] Model output failed to parse",
		slog.String("model", model),
		slog.String("error", err.Error()))
	return &AnalysisError{
		Kind:    AnalysisErrMalformedOutput,
		Message: "model output failed to parse for model " + model,
		Raw:     rawText,
		Err:     err,
	}
}
