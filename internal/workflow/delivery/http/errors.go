package http

import (
	"errors"
	"net/http"

	"healthcare-assistant/internal/workflow"
	pkgErrors "healthcare-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, workflow.ErrMissingField):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "required field is empty")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
