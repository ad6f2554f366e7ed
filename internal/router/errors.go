package router

import "errors"

// Domain-specific errors for the router package.
var (
	ErrInvalidRoute  = errors.New("route needs a name and at least one utterance")
	ErrDuplicateName = errors.New("route name already registered")
	ErrRouteNotFound = errors.New("route not found")

	// ErrEmbeddingUnavailable covers provider failures, timeouts and malformed
	// vectors. It always propagates: silently classifying as "unknown" when
	// the provider is down would misroute every message without anyone noticing.
	ErrEmbeddingUnavailable = errors.New("embedding provider unavailable")
)
