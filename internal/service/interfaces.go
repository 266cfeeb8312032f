package service

import (
	"context"
	"time"

	"lark/internal/model"

	"github.com/redis/go-redis/v9"
)

// SQLRepositoryInterface defines the interface for relational store operations (for testing)
type SQLRepositoryInterface interface {
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
}

// RedisRepositoryInterface defines the interface for Redis operations (for testing)
type RedisRepositoryInterface interface {
	GetClient() *redis.Client
	CacheLink(ctx context.Context, link *model.Link, ttl time.Duration) error
	GetCachedLink(ctx context.Context, slug string) (*model.Link, error)
	InvalidateLink(ctx context.Context, slug string) error
}

// BloomServiceInterface defines the interface for Bloom Filter operations (for testing)
type BloomServiceInterface interface {
	Add(ctx context.Context, slug string) error
	Exists(ctx context.Context, slug string) (bool, error)
	GetCapacity() int64
	IsAvailable(ctx context.Context) bool
	Reset(ctx context.Context) error
}

// GeoLookupInterface resolves a client IP to geo dimensions. Lookups
// are best effort; implementations return "unknown" fields on failure.
type GeoLookupInterface interface {
	Lookup(ip string) (country, region, city string)
}

// DirectoryServiceInterface defines the interface for link directory operations
type DirectoryServiceInterface interface {
	Resolve(ctx context.Context, slug string) (*model.Link, error)
	Redirectability(link *model.Link, now time.Time) model.RedirectDecision
	IncrementClickCount(ctx context.Context, linkID string) error
	CreateLink(ctx context.Context, in *CreateLinkInput) (*model.Link, error)
	UpdateLink(ctx context.Context, linkID, ownerID string, in *UpdateLinkInput) (*model.Link, error)
	AdminDisable(ctx context.Context, linkID, reason string) error
	AdminEnable(ctx context.Context, linkID string) error
}

// RecorderInterface defines the interface for click event recording
type RecorderInterface interface {
	Record(v model.Visit)
	PersistEvent(ctx context.Context, ev *model.ClickEvent) error
}

// ResolverServiceInterface defines the interface for the redirect hot path
type ResolverServiceInterface interface {
	Resolve(ctx context.Context, slug string) (*Resolution, error)
	RecordVisit(link *model.Link, v model.Visit)
}

// StatsServiceInterface defines the interface for aggregation operations
type StatsServiceInterface interface {
	ComputeStats(ctx context.Context, q *model.StatsQuery) (*model.LinkStats, error)
	LinkStats(ctx context.Context, ownerID, linkID string, start, end *time.Time) (*model.LinkStats, error)
	GlobalStats(ctx context.Context, ownerID string, start, end *time.Time) (*model.LinkStats, error)
	ExportEvents(ctx context.Context, ownerID, linkID string, limit int) ([]model.ClickEvent, error)
}

// PublicGateInterface defines the interface for the public stats gate
type PublicGateInterface interface {
	AuthorizePublicView(ctx context.Context, linkID string) (*model.Link, error)
	PublicStats(ctx context.Context, linkID string, start, end *time.Time) (*model.LinkStats, error)
}
