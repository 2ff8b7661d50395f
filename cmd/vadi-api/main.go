// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"vadi/internal/ai"
	"vadi/internal/config"
	httptransport "vadi/internal/http"
	"vadi/internal/infra"
	"vadi/internal/logger"
	"vadi/internal/maps"
	"vadi/internal/modules/compare"
	"vadi/internal/modules/notify"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{Timeout: cfg.HTTP.Timeout}

	memory := notify.NewMemorySink()
	sinks := notify.Fanout{memory}
	redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr)
	if err != nil {
		zl.Fatal("redis init", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
		sinks = append(sinks, notify.NewRedisSink(redisClient, cfg.Redis.Channel))
	}

	models := make([]compare.ModelDescriptor, 0, len(cfg.Models))
	for _, m := range cfg.Models {
		models = append(models, compare.ModelDescriptor{ID: m.ID, Name: m.Name, Endpoint: m.Endpoint, Color: m.Color})
	}
	if len(models) == 0 {
		zl.Warn("no model endpoints configured; /api/compare will reject every selection")
	}
	compareSvc := compare.NewService(httpClient, sinks, compare.WithLogger(zl.Named("compare")))

	staticMap, err := maps.NewStaticService(cfg.Maps.APIKey, httpClient)
	if err != nil {
		zl.Fatal("maps init", zap.Error(err))
	}

	providers := map[string]ai.LLMProvider{}
	if cfg.AI.OpenAIKey != "" {
		providers["openai"] = ai.NewOpenAIProvider(cfg.AI.OpenAIKey, cfg.AI.OpenAIModel, httpClient)
	}
	if cfg.AI.ClaudeKey != "" {
		providers["claude"] = ai.NewClaudeProvider(cfg.AI.ClaudeKey, cfg.AI.ClaudeModel, httpClient)
	}
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiModel)
		if err != nil {
			zl.Warn("gemini provider disabled", zap.Error(err))
		} else {
			defer gemini.Close()
			providers["gemini"] = gemini
		}
	}

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Compare:       compareSvc,
		Registry:      compare.NewRegistry(models...),
		Notifications: memory,
		StaticMap:     staticMap,
		Providers:     providers,
		CORSOrigins:   cfg.HTTP.CORSOrigins,
		Log:           zl,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes(), ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	zl.Info("listening", zap.String("addr", cfg.HTTP.Addr), zap.Int("models", len(models)), zap.Int("providers", len(providers)))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Fatal("server", zap.Error(err))
	}
}
