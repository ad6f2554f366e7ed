package main

import (
	"context"
	"fmt"
	"os"

	"healthcare-assistant/config"
	"healthcare-assistant/internal/model"
	"healthcare-assistant/internal/router"
	"healthcare-assistant/pkg/embedding"
	"healthcare-assistant/pkg/log"
)

// Warms the utterance embedding cache and verifies the embedding provider is
// reachable before the API takes traffic. Each configured route is probed with
// its own first utterance, which must route back to itself.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	encoder, err := embedding.New(embedding.Config{
		Provider: cfg.Embedding.Provider,
		APIKey:   cfg.Embedding.APIKey,
		BaseURL:  cfg.Embedding.BaseURL,
		Model:    cfg.Embedding.Model,
		Timeout:  cfg.Embedding.Timeout,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize embedding provider: %v", err)
	}

	registry := router.NewRegistry()
	for _, rc := range cfg.Routes {
		if err := registry.Register(model.Route{Name: rc.Name, Utterances: rc.Utterances}); err != nil {
			logger.Fatalf(ctx, "Failed to register route %s: %v", rc.Name, err)
		}
	}

	semanticRouter, err := router.New(encoder, registry, cfg.Router.Threshold, cfg.Router.CacheSize, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize semantic router: %v", err)
	}

	logger.Infof(ctx, "Warming embeddings for %d routes with model %s...", registry.Len(), encoder.Model())

	successCount := 0
	for _, route := range registry.Routes() {
		decision, err := semanticRouter.Classify(ctx, route.Utterances[0])
		if err != nil {
			logger.Errorf(ctx, "Probe failed for route %s: %v", route.Name, err)
			continue
		}
		if decision.Route != route.Name {
			logger.Warnf(ctx, "Probe for route %s matched %q (score %.3f), check threshold %.2f",
				route.Name, decision.Route, decision.Score, cfg.Router.Threshold)
			continue
		}
		logger.Infof(ctx, "Route %s warm, probe score %.3f", route.Name, decision.Score)
		successCount++
	}

	logger.Infof(ctx, "Warm-up complete: %d/%d routes verified.", successCount, registry.Len())
	if successCount != registry.Len() {
		os.Exit(1)
	}
}
