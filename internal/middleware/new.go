package middleware

import (
	"meeting-conflict-resolver/config"
	"meeting-conflict-resolver/pkg/log"
)

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
	config      *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	var limiter *rateLimiter
	if cfg != nil && cfg.RateLimit.Enabled {
		limiter = newRateLimiter(cfg.RateLimit)
	}
	return Middleware{
		l:           l,
		rateLimiter: limiter,
		config:      cfg,
	}
}
