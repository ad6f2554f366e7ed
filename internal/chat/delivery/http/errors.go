package http

import (
	"errors"
	"net/http"

	"healthcare-assistant/internal/chat"
	"healthcare-assistant/internal/router"
	pkgErrors "healthcare-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "message is required")
	case errors.Is(err, router.ErrEmbeddingUnavailable):
		// Never downgrade a provider outage to an "unknown" classification.
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "message classification is currently unavailable")
	case errors.Is(err, chat.ErrUnconfiguredIntent):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "intent is not configured")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
