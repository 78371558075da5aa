package middleware

import (
	"quicksched/internal/model"
	"quicksched/pkg/log"
)

// Config carries the middleware tunables.
type Config struct {
	RequestsPerMinute int
	Environment       model.Environment
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	limiter *clientLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 60
	}
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newClientLimiter(cfg.RequestsPerMinute),
	}
}
