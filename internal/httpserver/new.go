package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "healthcare-assistant/internal/chat/delivery/http"
	"healthcare-assistant/internal/middleware"
	workflowHTTP "healthcare-assistant/internal/workflow/delivery/http"
	"healthcare-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	chatHandler     chatHTTP.Handler
	workflowHandler workflowHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	ChatHandler     chatHTTP.Handler
	WorkflowHandler workflowHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               cfg.Logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		chatHandler:     cfg.ChatHandler,
		workflowHandler: cfg.WorkflowHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	if srv.workflowHandler == nil {
		return errors.New("workflow handler is required")
	}
	return nil
}
