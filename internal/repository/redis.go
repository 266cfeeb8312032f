package repository

import (
	"context"
	"encoding/json"
	"time"

	"lark/internal/config"
	"lark/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	LinkKeyPrefix = "link:"
	// LinkCacheTTL bounds staleness of the redirect hot-path cache.
	// Admin disables and owner edits invalidate explicitly.
	LinkCacheTTL = 10 * time.Minute
)

// RedisRepository handles Redis operations
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// CacheLink stores the full link record under its slug for the
// redirect hot path. The whole record is cached, not just the
// destination, so redirectability is still evaluated on every hit.
func (r *RedisRepository) CacheLink(ctx context.Context, link *model.Link, ttl time.Duration) error {
	data, err := json.Marshal(link)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.linkKey(link.Slug), data, ttl).Err()
}

// GetCachedLink retrieves a cached link by slug
func (r *RedisRepository) GetCachedLink(ctx context.Context, slug string) (*model.Link, error) {
	data, err := r.client.Get(ctx, r.linkKey(slug)).Bytes()
	if err != nil {
		return nil, err
	}

	var link model.Link
	if err := json.Unmarshal(data, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// InvalidateLink drops a cached link after an edit or admin action
func (r *RedisRepository) InvalidateLink(ctx context.Context, slug string) error {
	return r.client.Del(ctx, r.linkKey(slug)).Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) linkKey(slug string) string {
	return LinkKeyPrefix + slug
}
