package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"newsinsight/internal/clients"
)

const HEALTHCHECK_TIMER = 15

// MonitorCompletionHealth periodically probes the completion endpoint and
// records the outcome in healthy for the /healthz handler to read.
func MonitorCompletionHealth(ctx context.Context, healthy *atomic.Bool) {
	ticker := time.NewTicker(time.Second * HEALTHCHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := clients.GetGroqClient().Ping(ctx)
			healthy.Store(err == nil)
			if err != nil {
				slog.Warn("[HealthCheck] Completion endpoint is unhealthy",
					slog.String("error", err.Error()))
			}
		}
	}
}
