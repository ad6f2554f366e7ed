package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage = errors.New("message is empty")

	// ErrUnconfiguredIntent means the router matched an intent the dispatch
	// layer has no field list for. This is config drift between the route
	// registry and the field table and must surface loudly, not degrade to
	// an "unknown" reply.
	ErrUnconfiguredIntent = errors.New("intent matched but not configured for dispatch")
)
