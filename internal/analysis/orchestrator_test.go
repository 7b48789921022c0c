package analysis

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsinsight/internal/clients"
	"newsinsight/internal/models"
)

// fakeCompleter scripts one completion response per model identifier and
// records what it was asked for. DeepAnalysis calls it from two goroutines,
// hence the lock.
type fakeCompleter struct {
	mu        sync.Mutex
	responses map[string]string
	err       error
	calls     []string
}

func (f *fakeCompleter) Complete(_ context.Context, model string, _ string, _ string) (models.RawCompletion, error) {
	f.mu.Lock()
	f.calls = append(f.calls, model)
	f.mu.Unlock()
	if f.err != nil {
		return models.RawCompletion{}, f.err
	}
	return models.RawCompletion{Text: f.responses[model], Model: model}, nil
}

func testConfig() ModelConfig {
	return ModelConfig{
		Sentiment:  "sentiment-model",
		Rhetoric:   "rhetoric-model",
		Comparison: "comparison-model",
	}
}

const rhetoricJSON = `{"overall_tone": "neutral", "devices": [], "bias_indicators": []}`

const comparisonJSON = `{"framing_differences": "x", "source_selection": "y", "assessment": "z"}`

func TestAnalyzeSentimentHappyPath(t *testing.T) {
	completer := &fakeCompleter{responses: map[string]string{
		"sentiment-model": "<think>let me work through the tone</think>\n" + validSentimentJSON,
	}}
	o := NewOrchestrator(testConfig(), completer)

	result, err := o.AnalyzeSentiment(context.Background(), "some article text")
	require.NoError(t, err)

	assert.Equal(t, []string{"sentiment-model"}, completer.calls)
	assert.Equal(t, "sentiment-model", result.Model)
	assert.Equal(t, models.SentimentLabelNegative, result.Label)
	assert.GreaterOrEqual(t, result.Score, -1.0)
	assert.LessOrEqual(t, result.Score, 1.0)
}

func TestAnalyzeTransportErrorSurfacesAsUpstream(t *testing.T) {
	transportErr := &clients.TransportError{StatusCode: 503, Err: errors.New("service unavailable")}
	o := NewOrchestrator(testConfig(), &fakeCompleter{err: transportErr})

	_, err := o.AnalyzeSentiment(context.Background(), "some article text")
	require.Error(t, err)

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, AnalysisErrUpstream, analysisErr.Kind)

	// never converted into a default/neutral result; the transport detail
	// stays reachable for retry decisions upstream
	var unwrapped *clients.TransportError
	require.ErrorAs(t, err, &unwrapped)
	assert.True(t, unwrapped.Retryable())
}

func TestAnalyzeMalformedOutputKeepsRawText(t *testing.T) {
	raw := "I could not produce JSON today, sorry."
	o := NewOrchestrator(testConfig(), &fakeCompleter{responses: map[string]string{
		"sentiment-model": raw,
	}})

	_, err := o.AnalyzeSentiment(context.Background(), "some article text")
	require.Error(t, err)

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, AnalysisErrMalformedOutput, analysisErr.Kind)
	assert.Equal(t, raw, analysisErr.Raw)

	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestAnalyzeRhetoric(t *testing.T) {
	o := NewOrchestrator(testConfig(), &fakeCompleter{responses: map[string]string{
		"rhetoric-model": "leading prose " + rhetoricJSON,
	}})

	report, err := o.AnalyzeRhetoric(context.Background(), "some article text")
	require.NoError(t, err)
	assert.Equal(t, "neutral", report["overall_tone"])
}

func TestAnalyzeEmptyTextIsBadRequest(t *testing.T) {
	completer := &fakeCompleter{}
	o := NewOrchestrator(testConfig(), completer)

	_, err := o.AnalyzeSentiment(context.Background(), "   \n ")
	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, AnalysisErrBadRequest, analysisErr.Kind)
	assert.Empty(t, completer.calls, "no upstream call for empty input")
}

func TestCompareEmptyReferenceIsBadRequest(t *testing.T) {
	o := NewOrchestrator(testConfig(), &fakeCompleter{})

	_, err := o.Compare(context.Background(), "primary text", "")
	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, AnalysisErrBadRequest, analysisErr.Kind)
}

func TestGenericAnalyzeDispatch(t *testing.T) {
	o := NewOrchestrator(testConfig(), &fakeCompleter{responses: map[string]string{
		"sentiment-model": validSentimentJSON,
		"rhetoric-model":  rhetoricJSON,
	}})

	result, err := o.Analyze(context.Background(), models.PurposeSentiment, "text")
	require.NoError(t, err)
	assert.Equal(t, models.PurposeSentiment, result.Purpose)
	require.NotNil(t, result.Sentiment)
	assert.Nil(t, result.Rhetoric)

	result, err = o.Analyze(context.Background(), models.PurposeRhetoric, "text")
	require.NoError(t, err)
	assert.NotNil(t, result.Rhetoric)
	assert.Nil(t, result.Sentiment)
}

func TestGenericAnalyzeRejectsComparisonAndUnknown(t *testing.T) {
	o := NewOrchestrator(testConfig(), &fakeCompleter{})

	for _, purpose := range []models.AnalysisPurpose{models.PurposeComparison, "summarize"} {
		_, err := o.Analyze(context.Background(), purpose, "text")
		var analysisErr *AnalysisError
		require.ErrorAs(t, err, &analysisErr)
		assert.Equal(t, AnalysisErrBadRequest, analysisErr.Kind)
	}
}

func TestDeepAnalysisBothSucceed(t *testing.T) {
	o := NewOrchestrator(testConfig(), &fakeCompleter{responses: map[string]string{
		"rhetoric-model":   rhetoricJSON,
		"comparison-model": comparisonJSON,
	}})

	deep, err := o.DeepAnalysis(context.Background(), "article a", "article b")
	require.NoError(t, err)
	assert.Equal(t, "neutral", deep.Rhetoric["overall_tone"])
	assert.Equal(t, "z", deep.Comparison["assessment"])
}

func TestDeepAnalysisFailsWholeOnOneFailure(t *testing.T) {
	// comparison model returns junk: no partial result may survive
	o := NewOrchestrator(testConfig(), &fakeCompleter{responses: map[string]string{
		"rhetoric-model":   rhetoricJSON,
		"comparison-model": "not json at all",
	}})

	deep, err := o.DeepAnalysis(context.Background(), "article a", "article b")
	require.Error(t, err)
	assert.Nil(t, deep.Rhetoric)
	assert.Nil(t, deep.Comparison)

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, AnalysisErrMalformedOutput, analysisErr.Kind)
}
