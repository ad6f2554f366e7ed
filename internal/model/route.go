package model

// Route bundles an intent name with the example utterances that define it.
// Routes are configuration: built once at startup, never mutated afterwards.
type Route struct {
	Name       string   // Unique intent name, e.g. "Pre_Auth"
	Utterances []string // Canonical example sentences for this intent
}
