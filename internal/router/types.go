package router

// Decision is the outcome of classifying one utterance.
// An empty Route means no intent cleared the similarity threshold.
type Decision struct {
	Route string  `json:"route,omitempty"`
	Score float64 `json:"score"`
}

// Matched reports whether any route cleared the threshold.
func (d Decision) Matched() bool {
	return d.Route != ""
}
