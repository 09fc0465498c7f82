package ratelimiting

import (
	"context"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/logging"
	ratelimiter "inventory/internal/core/domain/rate_limiter"
	"inventory/internal/core/services"
)

type hasRateLimitKey interface {
	GetRateLimitKey() string
}

type limited[T hasRateLimitKey, S any] struct {
	log     logging.Logger
	limiter ratelimiter.RateLimiter
	limit   ratelimiter.Limit
	inner   services.Service[T, S]
}

// WithRateLimiting rejects calls with ratelimiter.ErrRateLimitExceeded
// once more than limit calls share the same rate limit key within
// one window.
func WithRateLimiting[T hasRateLimitKey, S any](
	log logging.Logger,
	rateLimiter ratelimiter.RateLimiter,
	limit ratelimiter.Limit,
	inner services.Service[T, S],
) services.Service[T, S] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if rateLimiter == nil {
		panic(e.NewNilArgumentError("rateLimiter"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &limited[T, S]{log: log, limiter: rateLimiter, limit: limit, inner: inner}
}

func (s *limited[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	key := input.GetRateLimitKey()
	if !s.limiter.CheckLimit(ctx, key, s.limit).IsAllowed {
		s.log.Warning(
			ctx,
			"Call rejected by rate limiter.",
			logging.Entry("key", key),
			logging.Entry("limit", s.limit.String()),
		)
		return result, ratelimiter.ErrRateLimitExceeded
	}
	return s.inner.Run(ctx, input)
}
