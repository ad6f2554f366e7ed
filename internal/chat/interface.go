package chat

import (
	"context"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Classify routes a free-text message to an intent and reports which
	// structured fields the caller still needs to supply.
	Classify(ctx context.Context, input ChatInput) (ChatOutput, error)
}
