package clients

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"newsinsight/internal/models"
)

const (
	GROQ_BASE_URL       = "https://api.groq.com/openai/v1"
	groqRequestTimeout  = 60 * time.Second // Timeout for individual Groq API requests
	completionMaxTokens = 600
	completionTemp      = 0.3
)

var (
	groqClientInstance *GroqClient
	groqOnce           sync.Once
)

// GroqClient issues single chat-completion round-trips against Groq's
// OpenAI-compatible endpoint. One request in, one text-or-TransportError out;
// retry policy belongs to callers.
type GroqClient struct {
	Client *openai.Client
}

func GetGroqClient() *GroqClient {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		slog.Error("[GroqClient] Missing GROQ_API_KEY in environment variables")
		panic("[GroqClient] Missing GROQ_API_KEY in environment variables")
	}
	groqOnce.Do(func() {
		config := openai.DefaultConfig(apiKey)
		config.BaseURL = GROQ_BASE_URL
		config.HTTPClient = &http.Client{
			Timeout: groqRequestTimeout,
		}

		groqClientInstance = &GroqClient{
			Client: openai.NewClientWithConfig(config),
		}
		slog.Info("[GroqClient] Groq client initialized with custom HTTP timeout",
			slog.Duration("timeout", groqRequestTimeout))
	})
	return groqClientInstance
}

// Complete sends one system+user exchange to the given model and returns the
// raw completion text. Every non-success outcome comes back as a
// *TransportError so callers can tell retryable from non-retryable failures.
func (g *GroqClient) Complete(ctx context.Context, model string, systemPrompt string, userContent string) (models.RawCompletion, error) {
	start := time.Now()

	resp, err := g.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userContent},
		},
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemp,
	})
	if err != nil {
		terr := asTransportError(err)
		slog.Error("[GroqClient] Completion request failed",
			slog.String("model", model),
			slog.Int("status", terr.StatusCode),
			slog.Bool("retryable", terr.Retryable()),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return models.RawCompletion{}, terr
	}

	if len(resp.Choices) == 0 {
		slog.Error("[GroqClient] Completion response contained no choices",
			slog.String("model", model))
		return models.RawCompletion{}, &TransportError{
			StatusCode: http.StatusOK,
			Err:        errors.New("completion response contained no choices"),
		}
	}

	slog.Info("[GroqClient] Completion request successful",
		slog.String("model", model),
		slog.Int("tokens_used", resp.Usage.TotalTokens),
		slog.Duration("elapsed", time.Since(start)))

	return models.RawCompletion{
		Text:       resp.Choices[0].Message.Content,
		Model:      model,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}

// Ping hits the models listing as a cheap liveness probe for healthchecks.
func (g *GroqClient) Ping(ctx context.Context) error {
	if _, err := g.Client.ListModels(ctx); err != nil {
		return asTransportError(err)
	}
	return nil
}

func asTransportError(err error) *TransportError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &TransportError{StatusCode: apiErr.HTTPStatusCode, Err: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &TransportError{StatusCode: reqErr.HTTPStatusCode, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TransportError{Timeout: true, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Timeout: true, Err: err}
	}

	return &TransportError{Err: err}
}
