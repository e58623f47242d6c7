package trackers

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/pathtracker/internal/domain/tracker"
	trackererr "github.com/KirkDiggler/pathtracker/internal/errors"
	"github.com/KirkDiggler/pathtracker/internal/repositories"
	"github.com/redis/go-redis/v9"
)

const (
	// Key pattern
	trackerKeyPrefix = "tracker:"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	// TTL expires saves that are not touched again. Zero keeps them forever.
	TTL time.Duration
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed tracker repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}
}

// NewRedis creates a Redis-backed repository whose saves never expire
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func (r *redisRepository) key(key string) string {
	return trackerKeyPrefix + key
}

// Save stores the JSON document under tracker:<key>
func (r *redisRepository) Save(ctx context.Context, key string, state *tracker.State) error {
	if err := validateKey(key); err != nil {
		return err
	}
	data, err := encode(state)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key(key), string(data), r.ttl).Err(); err != nil {
		return trackererr.Wrapf(err, "failed to save tracker %s", key)
	}
	return nil
}

// Load reads tracker:<key>
func (r *redisRepository) Load(ctx context.Context, key string) (*tracker.State, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repositories.NewRecordNotFoundError(key)
		}
		return nil, trackererr.Wrapf(err, "failed to load tracker %s", key)
	}
	return decode(key, data)
}
