package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router configuration
const (
	// DefaultThreshold is the minimum cosine similarity the best route must
	// reach before the router commits to a match. 0.75 works well on
	// normalized embedding models (voyage-3, text-embedding-3-*); below it,
	// queries like small talk start matching healthcare intents.
	DefaultThreshold = 0.75

	// DefaultCacheSize bounds the utterance-vector LRU. Route example sets
	// are small, so this comfortably holds every configured utterance.
	DefaultCacheSize = 512
)
