package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lark/internal/config"
	"lark/internal/model"
)

func newTestRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	return &RedisRepository{
		client: client,
		cfg: &config.RedisConfig{
			Addr:     s.Addr(),
			Password: "",
			DB:       0,
		},
	}, s
}

func TestNewRedisRepository(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	cfg := &config.RedisConfig{
		Addr:     s.Addr(),
		Password: "",
		DB:       0,
	}

	repo := NewRedisRepository(cfg)

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.client)
	assert.Equal(t, cfg, repo.cfg)

	// Close connection after test
	repo.Close()
}

func TestRedisRepository_CacheLink(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	link := &model.Link{
		ID:            "id-1",
		Slug:          "promo",
		OriginalURL:   "https://example.com",
		OwnerID:       "owner-1",
		IsActive:      true,
		IsPublicStats: true,
	}

	err := repo.CacheLink(ctx, link, LinkCacheTTL)
	require.NoError(t, err)

	// The full record round-trips, not just the destination
	got, err := repo.GetCachedLink(ctx, "promo")
	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, "https://example.com", got.OriginalURL)
	assert.True(t, got.IsActive)
	assert.True(t, got.IsPublicStats)
}

func TestRedisRepository_GetCachedLink(t *testing.T) {
	repo, s := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	t.Run("cache miss", func(t *testing.T) {
		link, err := repo.GetCachedLink(ctx, "missing")
		assert.Error(t, err)
		assert.Nil(t, link)
		assert.Equal(t, redis.Nil, err)
	})

	t.Run("expired entry", func(t *testing.T) {
		link := &model.Link{ID: "id-1", Slug: "promo", OriginalURL: "https://example.com"}
		require.NoError(t, repo.CacheLink(ctx, link, time.Minute))

		s.FastForward(2 * time.Minute)

		got, err := repo.GetCachedLink(ctx, "promo")
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupt entry", func(t *testing.T) {
		require.NoError(t, s.Set(LinkKeyPrefix+"bad", "not json"))

		got, err := repo.GetCachedLink(ctx, "bad")
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("slug lookup is case sensitive", func(t *testing.T) {
		link := &model.Link{ID: "id-2", Slug: "Promo", OriginalURL: "https://example.com"}
		require.NoError(t, repo.CacheLink(ctx, link, time.Minute))

		got, err := repo.GetCachedLink(ctx, "Promo")
		assert.NoError(t, err)
		assert.Equal(t, "id-2", got.ID)
	})
}

func TestRedisRepository_InvalidateLink(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	link := &model.Link{ID: "id-1", Slug: "promo", OriginalURL: "https://example.com"}
	require.NoError(t, repo.CacheLink(ctx, link, LinkCacheTTL))

	err := repo.InvalidateLink(ctx, "promo")
	assert.NoError(t, err)

	got, err := repo.GetCachedLink(ctx, "promo")
	assert.Error(t, err)
	assert.Nil(t, got)

	// Deleting an absent key is not an error
	assert.NoError(t, repo.InvalidateLink(ctx, "promo"))
}
