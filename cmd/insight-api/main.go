package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"newsinsight/config"
	"newsinsight/internal/analysis"
	"newsinsight/internal/clients"
	"newsinsight/internal/logging"
	"newsinsight/internal/monitoring"
	"newsinsight/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	groq := clients.GetGroqClient()

	if os.Getenv("VALKEY_INIT_ADDRESS") != "" {
		clients.InitValkey()
		defer clients.CloseValkey()
	}

	cfg := analysis.NewModelConfigFromEnv()
	slog.Info("[Main] Model configuration loaded",
		slog.String("sentiment", cfg.Sentiment),
		slog.String("rhetoric", cfg.Rhetoric),
		slog.String("comparison", cfg.Comparison))

	orchestrator := analysis.NewOrchestrator(cfg, groq)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var healthy atomic.Bool
	healthy.Store(true)
	go monitoring.MonitorCompletionHealth(ctx, &healthy)

	mux := http.NewServeMux()
	handler := server.NewHandler(orchestrator, clients.GetNewsAPIClient(), &healthy)
	handler.RegisterRoutes(mux)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		slog.Info("[Main] Listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server failed", slog.String("error", err.Error()))
			cancel()
		}
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stopChan:
	case <-ctx.Done():
	}

	slog.Info("Shutting down insight-api gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Shutdown failed", slog.String("error", err.Error()))
	}
}
