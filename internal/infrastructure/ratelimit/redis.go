package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// NewRedisClient cria e testa um cliente Redis a partir de uma URL (redis://...)
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close() //nolint:errcheck
		return nil, err
	}
	return rdb, nil
}

// RedisLimiter compartilha a contagem entre instâncias via INCR + PEXPIRE
type RedisLimiter struct {
	rdb    *redis.Client
	max    int
	window time.Duration
}

func NewRedisLimiter(rdb *redis.Client, max int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, max: max, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	k := keyPrefix + key

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		ttl = pipe.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("rate limit incr: %w", err)
	}

	remaining := ttl.Val()
	if remaining <= 0 {
		// primeira requisição da janela (ou chave sem expiração)
		if err := l.rdb.PExpire(ctx, k, l.window).Err(); err != nil {
			return Result{}, fmt.Errorf("rate limit expire: %w", err)
		}
		remaining = l.window
	}

	return newResult(int(incr.Val()), l.max, time.Now().Add(remaining)), nil
}
