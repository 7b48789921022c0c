package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"newsinsight/internal/analysis"
	"newsinsight/internal/articles"
	"newsinsight/internal/models"
)

// Analyzer is the slice of the orchestrator the HTTP layer needs.
type Analyzer interface {
	Analyze(ctx context.Context, purpose models.AnalysisPurpose, articleText string) (analysis.Result, error)
	AnalyzeSentiment(ctx context.Context, articleText string) (models.SentimentResult, error)
	Compare(ctx context.Context, primaryText string, referenceText string) (models.ComparisonReport, error)
	DeepAnalysis(ctx context.Context, articleText string, referenceText string) (models.DeepAnalysis, error)
}

// NewsSearcher is the slice of the NewsAPI client the HTTP layer needs.
type NewsSearcher interface {
	SearchNews(query string, bucket string) ([]models.NewsAPIArticle, error)
}

type Handler struct {
	Analyzer Analyzer
	News     NewsSearcher
	Healthy  *atomic.Bool
}

func NewHandler(analyzer Analyzer, news NewsSearcher, healthy *atomic.Bool) *Handler {
	return &Handler{Analyzer: analyzer, News: news, Healthy: healthy}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/news", h.handleListNews)
	mux.HandleFunc("GET /api/news/{id}", h.handleGetArticle)
	mux.HandleFunc("GET /api/news/{id}/analysis", h.handleArticleAnalysis)
	mux.HandleFunc("GET /api/search", h.handleSearch)
	mux.HandleFunc("POST /api/analyze", h.handleAnalyze)
	mux.HandleFunc("POST /api/compare", h.handleCompare)
	mux.HandleFunc("GET /healthz", h.handleHealthz)
}

func (h *Handler) handleListNews(w http.ResponseWriter, r *http.Request) {
	all := articles.All()
	serialized := make([]models.SerializedArticle, 0, len(all))
	for _, article := range all {
		serialized = append(serialized, articles.Serialize(article))
	}
	writeJSON(w, http.StatusOK, serialized)
}

func (h *Handler) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	article, ok := h.articleFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, articles.Serialize(article))
}

func (h *Handler) handleArticleAnalysis(w http.ResponseWriter, r *http.Request) {
	article, ok := h.articleFromPath(w, r)
	if !ok {
		return
	}

	sentimentResult, err := h.Analyzer.AnalyzeSentiment(r.Context(), article.Content)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}

	response := struct {
		Article    models.SerializedArticle `json:"article"`
		Sentiment  models.SentimentResult   `json:"sentiment"`
		Rhetoric   models.RhetoricReport    `json:"rhetoric,omitempty"`
		Comparison models.ComparisonReport  `json:"comparison,omitempty"`
		Reference  *struct {
			ID    int    `json:"id"`
			Title string `json:"title"`
		} `json:"reference,omitempty"`
	}{
		Article:   articles.Serialize(article),
		Sentiment: sentimentResult,
	}

	reference, hasReference := articles.Reference(article.ID)
	if hasReference {
		deep, err := h.Analyzer.DeepAnalysis(r.Context(), article.Content, reference.Content)
		if err != nil {
			writeAnalysisError(w, err)
			return
		}
		response.Rhetoric = deep.Rhetoric
		response.Comparison = deep.Comparison
		response.Reference = &struct {
			ID    int    `json:"id"`
			Title string `json:"title"`
		}{ID: reference.ID, Title: reference.Title}
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Error(w, "missing query parameter q", http.StatusBadRequest)
		return
	}

	response := struct {
		Query string              `json:"query"`
		Left  models.SearchBucket `json:"left"`
		Right models.SearchBucket `json:"right"`
	}{Query: query}

	response.Left = h.fetchBucket(query, "left")
	response.Right = h.fetchBucket(query, "right")

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) fetchBucket(query string, bucket string) models.SearchBucket {
	raw, err := h.News.SearchNews(query, bucket)
	if err != nil {
		slog.Warn("[Server] Bucket search failed",
			slog.String("bucket", bucket),
			slog.String("error", err.Error()))
		return models.SearchBucket{Error: err.Error()}
	}

	serialized := make([]models.SerializedArticle, 0, len(raw))
	for _, article := range raw {
		serialized = append(serialized, articles.FromSearchResult(article))
	}
	return models.SearchBucket{Articles: serialized}
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Purpose string `json:"purpose"`
		Text    string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	purpose := models.AnalysisPurpose(req.Purpose)
	if !purpose.Valid() {
		http.Error(w, "unknown analysis purpose", http.StatusBadRequest)
		return
	}

	result, err := h.Analyzer.Analyze(r.Context(), purpose, req.Text)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Primary   string `json:"primary"`
		Reference string `json:"reference"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	report, err := h.Analyzer.Compare(r.Context(), req.Primary, req.Reference)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if h.Healthy != nil && !h.Healthy.Load() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) articleFromPath(w http.ResponseWriter, r *http.Request) (models.Article, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid article id", http.StatusBadRequest)
		return models.Article{}, false
	}
	article, ok := articles.ByID(id)
	if !ok {
		http.Error(w, "article not found", http.StatusNotFound)
		return models.Article{}, false
	}
	return article, true
}

// writeAnalysisError maps the orchestrator's typed failure onto an HTTP
// status: caller misuse is a 400, everything upstream-shaped is a 502.
func writeAnalysisError(w http.ResponseWriter, err error) {
	var analysisErr *analysis.AnalysisError
	if errors.As(err, &analysisErr) {
		status := http.StatusBadGateway
		if analysisErr.Kind == analysis.AnalysisErrBadRequest {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{
			"error": analysisErr.Message,
			"kind":  string(analysisErr.Kind),
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("[Server] Failed to encode response", slog.String("error", err.Error()))
	}
}
