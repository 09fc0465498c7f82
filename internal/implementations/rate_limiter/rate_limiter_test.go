package ratelimiter

import (
	"context"
	"inventory/internal/core/domain/logging"
	ratelimiter "inventory/internal/core/domain/rate_limiter"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisPanicsOnNilArguments(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()
	log := logging.NewFakeLogger()

	assert.Panics(t, func() { NewRedis(nil, log, time.Now) })
	assert.Panics(t, func() { NewRedis(client, nil, time.Now) })
	assert.Panics(t, func() { NewRedis(client, log, nil) })
}

func TestCheckLimitFailsOpenWhenRedisIsUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()
	log := logging.NewFakeLogger()
	limiter := NewRedis(client, log, time.Now)

	result := limiter.CheckLimit(context.Background(), "key", ratelimiter.Limit{Value: 1, Interval: ratelimiter.Minute})

	require.True(t, result.IsAllowed)
	require.Equal(t, 1, log.CountByLevel(logging.ERROR))
}

func TestCheckLimitDeniesCanceledRequests(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()
	log := logging.NewFakeLogger()
	limiter := NewRedis(client, log, time.Now)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := limiter.CheckLimit(ctx, "key", ratelimiter.Limit{Value: 1, Interval: ratelimiter.Minute})

	require.False(t, result.IsAllowed)
	require.Equal(t, 0, log.CountByLevel(logging.ERROR))
}
