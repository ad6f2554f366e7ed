package workflow

import "errors"

// Domain-specific errors for the workflow package.
var (
	// ErrMissingField guards the caller-asserted contract. The delivery layer
	// already rejects empty required fields; this catches misuse by other
	// in-process callers.
	ErrMissingField = errors.New("required field is empty")
)
