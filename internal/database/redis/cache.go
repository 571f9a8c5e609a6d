package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go

const keyPrefix = "image:"

// ResultCache maps a cache key to previously computed output bytes.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
}

type CacheRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ResultCache = (*CacheRepository)(nil)

func NewCacheRepository(client *redis.Client, ttl time.Duration) *CacheRepository {
	return &CacheRepository{
		client: client,
		ttl:    ttl,
	}
}

// Get reports false without an error when the key is absent or expired.
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (r *CacheRepository) Set(ctx context.Context, key string, data []byte) error {
	return r.client.Set(ctx, keyPrefix+key, data, r.ttl).Err()
}
