package router

import (
	"context"
	"fmt"
	"math"

	"healthcare-assistant/internal/model"
)

// Classify determines user intent from message.
// Convention: Method accepts context.Context as first parameter
//
// The query is embedded once. Each route is scored with the maximum cosine
// similarity across its example utterances. Examples are deliberately not
// averaged: one route's utterances can be semantically heterogeneous and a
// centroid would wash out the closest match. The best-scoring route wins;
// ties go to the route registered first. A best score below the threshold
// yields an unmatched Decision.
func (r *SemanticRouter) Classify(ctx context.Context, message string) (Decision, error) {
	routes := r.registry.Routes()
	if len(routes) == 0 {
		return Decision{}, nil
	}

	queryVecs, err := r.encoder.Embed(ctx, []string{message})
	if err != nil {
		return Decision{}, fmt.Errorf("%s: %w: %v", LogPrefixClassify, ErrEmbeddingUnavailable, err)
	}
	if len(queryVecs) != 1 {
		return Decision{}, fmt.Errorf("%s: %w: expected 1 query vector, got %d", LogPrefixClassify, ErrEmbeddingUnavailable, len(queryVecs))
	}

	query := queryVecs[0]
	if err := validateVector(query, len(query)); err != nil {
		return Decision{}, fmt.Errorf("%s: %w: query vector: %v", LogPrefixClassify, ErrEmbeddingUnavailable, err)
	}

	best := Decision{Score: math.Inf(-1)}
	for _, route := range routes {
		vectors, err := r.utteranceVectors(ctx, route, len(query))
		if err != nil {
			return Decision{}, err
		}

		score := math.Inf(-1)
		for _, vec := range vectors {
			if s := cosineSimilarity(query, vec); s > score {
				score = s
			}
		}

		// Strictly greater: on a tie the earlier-registered route stands.
		if score > best.Score {
			best = Decision{Route: route.Name, Score: score}
		}
	}

	if best.Score < r.threshold {
		r.l.Infof(ctx, "%s: no route above threshold %.2f (best %q scored %.4f)", LogPrefixClassify, r.threshold, best.Route, best.Score)
		return Decision{Score: best.Score}, nil
	}

	r.l.Infof(ctx, "%s: classified as %s (score: %.4f)", LogPrefixClassify, best.Route, best.Score)
	return best, nil
}

// utteranceVectors returns one embedding per example utterance, consulting the
// cache first and embedding only the misses in a single provider call.
func (r *SemanticRouter) utteranceVectors(ctx context.Context, route model.Route, wantDim int) ([][]float32, error) {
	unlock := r.cache.lock(route.Name)
	defer unlock()

	vectors := make([][]float32, len(route.Utterances))
	var missing []string
	var missingIdx []int

	for i, u := range route.Utterances {
		if vec, ok := r.cache.get(u); ok {
			vectors[i] = vec
			continue
		}
		missing = append(missing, u)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) > 0 {
		embedded, err := r.encoder.Embed(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: route %q: %v", LogPrefixClassify, ErrEmbeddingUnavailable, route.Name, err)
		}
		if len(embedded) != len(missing) {
			return nil, fmt.Errorf("%s: %w: route %q: expected %d vectors, got %d", LogPrefixClassify, ErrEmbeddingUnavailable, route.Name, len(missing), len(embedded))
		}

		for j, vec := range embedded {
			if err := validateVector(vec, wantDim); err != nil {
				return nil, fmt.Errorf("%s: %w: route %q utterance %q: %v", LogPrefixClassify, ErrEmbeddingUnavailable, route.Name, missing[j], err)
			}
			r.cache.add(missing[j], vec)
			vectors[missingIdx[j]] = vec
		}
	}

	// Cached vectors can predate the current query's dimension only if the
	// provider changed mid-flight; treat that as a provider fault.
	for i, vec := range vectors {
		if len(vec) != wantDim {
			return nil, fmt.Errorf("%s: %w: route %q utterance %q: dimension %d, want %d", LogPrefixClassify, ErrEmbeddingUnavailable, route.Name, route.Utterances[i], len(vec), wantDim)
		}
	}

	return vectors, nil
}

// validateVector rejects empty, wrong-dimension and non-finite vectors.
func validateVector(vec []float32, wantDim int) error {
	if len(vec) == 0 {
		return fmt.Errorf("empty vector")
	}
	if len(vec) != wantDim {
		return fmt.Errorf("dimension %d, want %d", len(vec), wantDim)
	}
	for _, v := range vec {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("non-finite component")
		}
	}
	return nil
}

// cosineSimilarity returns the normalized dot product of two equal-length vectors.
func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		fa, fb := float64(a[i]), float64(b[i])
		dot += fa * fb
		normA += fa * fa
		normB += fb * fb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
