package http

import (
	"github.com/gin-gonic/gin"

	"healthcare-assistant/internal/workflow"
	pkgLog "healthcare-assistant/pkg/log"
)

// Handler is the public interface for the workflow HTTP delivery layer.
type Handler interface {
	Authorize(c *gin.Context)
	Schedule(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc workflow.UseCase
}

// New creates a new HTTP handler for the workflow domain.
func New(l pkgLog.Logger, uc workflow.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
