package middleware

import (
	"healthcare-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. rateLimitPerMin of 0 disables rate limiting.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	var rl *rateLimiter
	if rateLimitPerMin > 0 {
		rl = newRateLimiter(rateLimitPerMin)
	}
	return Middleware{
		l:       l,
		limiter: rl,
	}
}
