package clients

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"

	"newsinsight/internal/models"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

const (
	VALKEY_SEARCH_KEY_PREFIX = "news:search"
	searchCacheTTLSeconds    = 600
	valkeyOpTimeout          = 3 * time.Second
)

// ValkeyClient fronts a short-TTL cache for news search responses. Analyses
// are never cached here; the cache only saves repeat NewsAPI round-trips.
type ValkeyClient struct {
	Client valkey.Client
}

// InitValkey connects using VALKEY_INIT_ADDRESS. Callers skip it entirely
// when no address is configured; the cache helpers then become no-ops.
func InitValkey() *ValkeyClient {
	valkeyOnce.Do(func() {
		valkeyAddr := os.Getenv("VALKEY_INIT_ADDRESS")
		valkeyPassword := os.Getenv("VALKEY_PASSWORD")
		useTLS := os.Getenv("VALKEY_TLS") == "true"

		opts := valkey.ClientOption{
			InitAddress:      []string{valkeyAddr},
			Password:         valkeyPassword,
			ConnWriteTimeout: 5 * time.Second,
			SelectDB:         0,
		}

		if useTLS {
			opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
		}

		client, err := valkey.NewClient(opts)
		if err != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to create Valkey client: %w", err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), valkeyOpTimeout)
		defer cancel()

		if res := client.Do(ctx, client.B().Ping().Build()); res.Error() != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", res.Error()))
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey")
		valkeyInstance = &ValkeyClient{Client: client}
	})
	return valkeyInstance
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

func searchCacheKey(bucket string, query string) string {
	return fmt.Sprintf("%s:%s:%s", VALKEY_SEARCH_KEY_PREFIX, bucket, strings.ToLower(strings.TrimSpace(query)))
}

func lookupCachedSearch(bucket string, query string) ([]models.NewsAPIArticle, bool) {
	if valkeyInstance == nil {
		return nil, false
	}
	vc := valkeyInstance

	ctx, cancel := context.WithTimeout(context.Background(), valkeyOpTimeout)
	defer cancel()

	key := searchCacheKey(bucket, query)
	res := vc.Client.Do(ctx, vc.Client.B().Get().Key(key).Build())
	if res.Error() != nil {
		return nil, false
	}

	raw, err := res.AsBytes()
	if err != nil {
		return nil, false
	}

	var articles []models.NewsAPIArticle
	if err := json.Unmarshal(raw, &articles); err != nil {
		slog.Warn("[ValkeyClient] Dropping unreadable cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, false
	}

	slog.Info("[ValkeyClient] Search cache hit", slog.String("key", key))
	return articles, true
}

func storeCachedSearch(bucket string, query string, articles []models.NewsAPIArticle) {
	if valkeyInstance == nil {
		return
	}
	vc := valkeyInstance

	raw, err := json.Marshal(articles)
	if err != nil {
		slog.Warn("[ValkeyClient] Failed to marshal search results for caching",
			slog.String("error", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), valkeyOpTimeout)
	defer cancel()

	key := searchCacheKey(bucket, query)
	res := vc.Client.Do(ctx, vc.Client.B().Set().Key(key).Value(string(raw)).
		ExSeconds(searchCacheTTLSeconds).Build())
	if res.Error() != nil {
		slog.Warn("[ValkeyClient] Failed to cache search results",
			slog.String("key", key),
			slog.String("error", res.Error().Error()))
		return
	}

	slog.Info("[ValkeyClient] Cached search results",
		slog.String("key", key),
		slog.Int("articles", len(articles)))
}
