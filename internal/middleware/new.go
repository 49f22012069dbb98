package middleware

import (
	"voice-task-management/config"
	"voice-task-management/pkg/log"
)

type Middleware struct {
	l       log.Logger
	config  *config.Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	var limiter *rateLimiter
	if cfg.RateLimit.Enabled {
		limiter = newRateLimiter(cfg.RateLimit.PerMin)
	}
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: limiter,
	}
}
