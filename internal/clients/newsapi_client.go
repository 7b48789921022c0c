package clients

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"newsinsight/internal/models"
)

const (
	NEWS_API_ENDPOINT = "https://newsapi.org/v2/everything"
	NEWS_API_PAGESIZE = "5"
)

// Source domains per political-lean bucket. Search results are fetched per
// bucket so the two sides of a story can be laid out next to each other.
var sourceBuckets = map[string]string{
	"left":  "cnn.com,msnbc.com,theguardian.com,huffpost.com,vox.com",
	"right": "foxnews.com,breitbart.com,nypost.com,washingtontimes.com,dailywire.com",
}

var (
	newsAPIInstance *NewsAPIClient
	newsAPIOnce     sync.Once
)

type NewsAPIClient struct {
	Client *http.Client
	APIKey string
}

func GetNewsAPIClient() *NewsAPIClient {
	newsAPIOnce.Do(func() {
		newsAPIInstance = &NewsAPIClient{
			Client: &http.Client{},
			APIKey: os.Getenv("NEWS_API_KEY"),
		}
	})
	return newsAPIInstance
}

// SearchNews runs an everything-search for query restricted to the named
// source bucket ("left" or "right"). Retries on rate limits and 5xx with a
// doubling backoff.
func (n *NewsAPIClient) SearchNews(query string, bucket string) ([]models.NewsAPIArticle, error) {
	if n.APIKey == "" {
		slog.Error("[NewsAPIClient] API key is missing")
		return nil, errors.New("[NewsAPIClient] API key is missing")
	}
	domains, ok := sourceBuckets[bucket]
	if !ok {
		return nil, errors.New("[NewsAPIClient] unknown source bucket: " + bucket)
	}

	if cached, found := lookupCachedSearch(bucket, query); found {
		return cached, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("domains", domains)
	params.Set("pageSize", NEWS_API_PAGESIZE)
	params.Set("language", "en")
	params.Set("sortBy", "relevancy")
	params.Set("apiKey", n.APIKey)
	endpoint := NEWS_API_ENDPOINT + "?" + params.Encode()

	var lastErr error
	backoff := INITIAL_BACKOFF

	for attempt := 1; attempt <= MAX_RETRIES; attempt++ {
		slog.Info("[NewsAPIClient] Searching news",
			slog.String("bucket", bucket),
			slog.Int("attempt", attempt))

		req, err := http.NewRequest(http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", USER_AGENT)

		res, err := n.Client.Do(req)
		if err != nil {
			slog.Error("[NewsAPIClient] Request failed", slog.String("error", err.Error()))
			lastErr = err
		} else {
			articles, retry, err := n.handleResponse(res, backoff, attempt)
			if err == nil && !retry {
				storeCachedSearch(bucket, query, articles)
				return articles, nil
			}
			if !retry {
				return nil, err
			}
			lastErr = err
			backoff *= 2
			if backoff > MAX_BACKOFF {
				backoff = MAX_BACKOFF
			}
		}

		if attempt == MAX_RETRIES {
			slog.Error("[NewsAPIClient] Failed after max retries")
			return nil, errors.New("[NewsAPIClient] failed after max retries")
		}
	}
	return nil, lastErr
}

// handleResponse maps one HTTP response to (articles, retry, err).
func (n *NewsAPIClient) handleResponse(res *http.Response, backoff time.Duration, attempt int) ([]models.NewsAPIArticle, bool, error) {
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(res.Body)
		if err != nil {
			slog.Error("[NewsAPIClient] Failed to read response body", slog.String("error", err.Error()))
			return nil, false, err
		}
		var response models.NewsAPISearchResponse
		if err := json.Unmarshal(body, &response); err != nil {
			slog.Error("[NewsAPIClient] Failed to parse JSON response", slog.String("error", err.Error()))
			return nil, false, err
		}
		slog.Info("[NewsAPIClient] Search successful", slog.Int("results", response.TotalResults))
		return response.Articles, false, nil
	case http.StatusBadRequest:
		slog.Warn("[NewsAPIClient] Bad request: check query parameters")
		return nil, false, errors.New("[NewsAPIClient] Bad request: check query parameters")
	case http.StatusUnauthorized:
		slog.Error("[NewsAPIClient] Invalid API Key, check credentials")
		return nil, false, errors.New("[NewsAPIClient] Invalid API Key, check credentials")
	case http.StatusTooManyRequests:
		slog.Warn("[NewsAPIClient] Rate limit exceeded, retrying...",
			slog.Duration("backoff", backoff), slog.Int("attempt", attempt))
		io.Copy(io.Discard, res.Body)
		time.Sleep(backoff)
		return nil, true, errors.New("[NewsAPIClient] rate limited")
	case http.StatusForbidden:
		slog.Error("[NewsAPIClient] Access forbidden, check API key permissions")
		return nil, false, errors.New("[NewsAPIClient] API key lacks required permissions")
	default:
		if res.StatusCode >= 500 {
			slog.Warn("[NewsAPIClient] Server error", slog.Int("statusCode", res.StatusCode),
				slog.Duration("backoff", backoff), slog.Int("attempt", attempt))
			time.Sleep(backoff)
			return nil, true, errors.New("[NewsAPIClient] server error")
		}
		slog.Warn("[NewsAPIClient] Unexpected response", slog.Int("statusCode", res.StatusCode))
		return nil, false, errors.New("[NewsAPIClient] unexpected status code")
	}
}

// SourceBuckets lists the configured bucket names, left first.
func SourceBuckets() []string {
	return []string{"left", "right"}
}
