package embedding

import "context"

// Provider defines the interface for text embedding providers.
// It is the only thing the router knows about the outside world: an opaque
// function from texts to fixed-dimension vectors.
type Provider interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Model returns the model being used.
	Model() string
}
