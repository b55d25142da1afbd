package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Chatrawit/Meeting2/internal/logger"
)

// ErrCacheMiss is returned by DashboardCacheRepository.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

const dashboardKeyPrefix = "dashboard:"

// DashboardCacheRepository stores rendered dashboard responses in Redis.
type DashboardCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached responses
}

// NewDashboardCacheRepository creates a new repository instance with the given TTL
func NewDashboardCacheRepository(client *redis.Client, expiration time.Duration) *DashboardCacheRepository {
	return &DashboardCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached payload for key.
func (r *DashboardCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	key = dashboardKeyPrefix + key

	val, err := r.client.Get(ctx, key).Bytes()

	logger.Log.Debugw("dashboard cache",
		"key", key,
		"size", len(val),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set caches payload under key for the repository TTL.
func (r *DashboardCacheRepository) Set(ctx context.Context, key string, payload []byte) error {
	key = dashboardKeyPrefix + key

	err := r.client.Set(ctx, key, payload, r.exp).Err()

	logger.Log.Debugw("dashboard cache",
		"key", key,
		"size", len(payload),
		"ttl", r.exp,
		"error", err,
	)

	return err
}
