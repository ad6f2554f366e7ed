package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"healthcare-assistant/config"
	_ "healthcare-assistant/docs" // Swagger docs
	chatHTTP "healthcare-assistant/internal/chat/delivery/http"
	chatUC "healthcare-assistant/internal/chat/usecase"
	"healthcare-assistant/internal/httpserver"
	"healthcare-assistant/internal/middleware"
	"healthcare-assistant/internal/model"
	"healthcare-assistant/internal/router"
	workflowHTTP "healthcare-assistant/internal/workflow/delivery/http"
	workflowUC "healthcare-assistant/internal/workflow/usecase"
	"healthcare-assistant/pkg/embedding"
	"healthcare-assistant/pkg/log"
)

// @title       Healthcare Management API
// @description Conversational healthcare assistant: semantic intent routing with prior authorization and appointment scheduling workflows.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Healthcare Management API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Embedding provider: %s", cfg.Embedding.Provider)

	// 3. Embedding provider
	encoder, err := embedding.New(embedding.Config{
		Provider: cfg.Embedding.Provider,
		APIKey:   cfg.Embedding.APIKey,
		BaseURL:  cfg.Embedding.BaseURL,
		Model:    cfg.Embedding.Model,
		Timeout:  cfg.Embedding.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize embedding provider: ", err)
		return
	}
	logger.Infof(ctx, "Embedding model: %s", encoder.Model())

	// 4. Intent routes
	registry := router.NewRegistry()
	for _, rc := range cfg.Routes {
		if regErr := registry.Register(model.Route{Name: rc.Name, Utterances: rc.Utterances}); regErr != nil {
			logger.Error(ctx, "Failed to register route: ", regErr)
			return
		}
		logger.Infof(ctx, "Route registered: %s (%d utterances)", rc.Name, len(rc.Utterances))
	}

	// 5. Semantic router
	semanticRouter, err := router.New(encoder, registry, cfg.Router.Threshold, cfg.Router.CacheSize, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize semantic router: ", err)
		return
	}

	// 6. Domains
	chatHandler := chatHTTP.New(logger, chatUC.New(logger, semanticRouter, nil))
	workflowHandler := workflowHTTP.New(logger, workflowUC.New(logger, cfg.Clinic.Location, nil))

	// 7. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit.ChatPerMin)

	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		ChatHandler:     chatHandler,
		WorkflowHandler: workflowHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
