package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "healthcare-assistant/internal/chat/delivery/http"
	"healthcare-assistant/internal/model"
	workflowHTTP "healthcare-assistant/internal/workflow/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	root := srv.gin.Group("")

	// Chat classification. Rate limited: each request costs an embedding call.
	chatHTTP.RegisterRoutes(root, srv.chatHandler, srv.mw.RateLimit())
	srv.l.Infof(ctx, "Chat route registered at POST /chat")

	// Workflow stubs
	workflowHTTP.RegisterRoutes(root, srv.workflowHandler)
	srv.l.Infof(ctx, "Workflow routes registered at POST /authorization, POST /appointment")

	return nil
}
