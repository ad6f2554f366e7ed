package openai

import (
	"context"
)

// IOpenAI defines the interface for OpenAI embeddings.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
