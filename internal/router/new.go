package router

import (
	"context"

	"healthcare-assistant/pkg/embedding"
	"healthcare-assistant/pkg/log"
)

// Router is the interface for semantic routing
type Router interface {
	Classify(ctx context.Context, message string) (Decision, error)
}

// SemanticRouter classifies user intent by cosine similarity between the
// query embedding and each route's example-utterance embeddings.
type SemanticRouter struct {
	encoder   embedding.Provider
	registry  *Registry
	threshold float64
	cache     *vectorCache
	l         log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(encoder embedding.Provider, registry *Registry, threshold float64, cacheSize int, l log.Logger) (*SemanticRouter, error) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	cache, err := newVectorCache(cacheSize)
	if err != nil {
		return nil, err
	}

	return &SemanticRouter{
		encoder:   encoder,
		registry:  registry,
		threshold: threshold,
		cache:     cache,
		l:         l,
	}, nil
}
