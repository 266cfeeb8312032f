package repository

import (
	"context"
	"time"

	"lark/internal/model"
)

// SQLRepositoryInterface defines the interface for relational store operations
type SQLRepositoryInterface interface {
	GetDB() interface{}
	SaveLink(ctx context.Context, link *model.Link) error
	UpdateLink(ctx context.Context, link *model.Link) error
	GetLinkBySlug(ctx context.Context, slug string) (*model.Link, error)
	GetLinkByID(ctx context.Context, id string) (*model.Link, error)
	GetLinksByOwner(ctx context.Context, ownerID string) ([]model.Link, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	IncrementClickCount(ctx context.Context, linkID string) error
	SaveClickEvent(ctx context.Context, ev *model.ClickEvent) error
	GetClickEvents(ctx context.Context, linkIDs []string, start, end *time.Time) ([]model.ClickEvent, error)
	GetRecentClickEvents(ctx context.Context, linkID string, limit int) ([]model.ClickEvent, error)
	DeactivateExpiredLinks(ctx context.Context) (int64, error)
	Close() error
}

// RedisRepositoryInterface defines the interface for Redis operations
type RedisRepositoryInterface interface {
	GetClient() interface{}
	CacheLink(ctx context.Context, link *model.Link, ttl time.Duration) error
	GetCachedLink(ctx context.Context, slug string) (*model.Link, error)
	InvalidateLink(ctx context.Context, slug string) error
	Close() error
}
