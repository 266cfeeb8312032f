package service

import (
	"context"
	"errors"
	"time"

	"lark/internal/model"
)

// ErrStatsPrivate is returned when a link exists but its stats are not public
var ErrStatsPrivate = errors.New("stats are private")

// PublicGate enforces the visibility policy in front of the
// aggregation engine for unauthenticated consumers. It distinguishes
// exactly two denials: private (the link exists and says so) and not
// found. Expired and admin-disabled links deliberately collapse into
// not found so outsiders cannot probe link lifecycle.
type PublicGate struct {
	store SQLRepositoryInterface
	stats StatsServiceInterface
}

// NewPublicGate creates a new Public Gate
func NewPublicGate(store SQLRepositoryInterface, stats StatsServiceInterface) *PublicGate {
	return &PublicGate{
		store: store,
		stats: stats,
	}
}

// AuthorizePublicView checks whether a link's stats may be shown to an
// unauthenticated caller.
func (g *PublicGate) AuthorizePublicView(ctx context.Context, linkID string) (*model.Link, error) {
	link, err := g.store.GetLinkByID(ctx, linkID)
	if err != nil {
		return nil, ErrLinkNotFound
	}

	if link.IsDisabledByAdmin || link.IsExpired(time.Now()) {
		return nil, ErrLinkNotFound
	}

	if !link.IsPublicStats {
		return nil, ErrStatsPrivate
	}

	return link, nil
}

// PublicStats authorizes and aggregates a single link. The gate never
// permits multi-link public queries.
func (g *PublicGate) PublicStats(ctx context.Context, linkID string, start, end *time.Time) (*model.LinkStats, error) {
	link, err := g.AuthorizePublicView(ctx, linkID)
	if err != nil {
		return nil, err
	}

	return g.stats.ComputeStats(ctx, &model.StatsQuery{
		LinkIDs: []string{link.ID},
		Start:   start,
		End:     end,
	})
}
