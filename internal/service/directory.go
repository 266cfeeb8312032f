package service

import (
	"context"
	"errors"
	"time"

	"lark/internal/encoder"
	"lark/internal/model"
	"lark/internal/repository"
	"lark/pkg/util"

	"github.com/rs/zerolog/log"
)

var (
	// ErrLinkNotFound is returned when no matching link exists
	ErrLinkNotFound = errors.New("link not found")
	// ErrSlugTaken is returned when the requested slug already exists
	ErrSlugTaken = errors.New("slug already taken")
	// ErrSlugInvalid is returned when a slug violates the charset or length rules
	ErrSlugInvalid = errors.New("invalid slug")
	// ErrInvalidExpiry is returned when a temporary link has no future deadline
	ErrInvalidExpiry = errors.New("temporary link requires a future expiry")
	// ErrMaxCapacityReached is returned when slug generation runs out of candidates
	ErrMaxCapacityReached = errors.New("maximum slug capacity reached")
)

// CreateLinkInput carries a pre-validated link record from the
// creation flow. Slug may be empty, in which case one is generated.
type CreateLinkInput struct {
	Slug          string     `json:"slug"`
	OriginalURL   string     `json:"original_url" binding:"required,url"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	OwnerID       string     `json:"-"`
	IsPublicStats bool       `json:"is_public_stats"`
	IsTemporary   bool       `json:"is_temporary"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

// UpdateLinkInput carries owner edits. Nil fields are left unchanged.
type UpdateLinkInput struct {
	OriginalURL   *string    `json:"original_url"`
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	IsActive      *bool      `json:"is_active"`
	IsPublicStats *bool      `json:"is_public_stats"`
	IsTemporary   *bool      `json:"is_temporary"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

// DirectoryService is the durable slug directory: it resolves slugs,
// evaluates redirectability and owns the click counter.
type DirectoryService struct {
	encoder  *encoder.SlugEncoder
	sqlRepo  SQLRepositoryInterface
	redis    RedisRepositoryInterface
	bloomSvc BloomServiceInterface
}

// NewDirectoryService creates a new Directory Service
func NewDirectoryService(
	sqlRepo SQLRepositoryInterface,
	redis RedisRepositoryInterface,
	bloomSvc BloomServiceInterface,
) *DirectoryService {
	return &DirectoryService{
		encoder:  encoder.NewSlugEncoder(),
		sqlRepo:  sqlRepo,
		redis:    redis,
		bloomSvc: bloomSvc,
	}
}

// Resolve finds the link for a slug. Redis is consulted first on the
// hot path; misses fall through to the database and repopulate the
// cache. Matching is exact and case sensitive.
func (s *DirectoryService) Resolve(ctx context.Context, slug string) (*model.Link, error) {
	if link, err := s.redis.GetCachedLink(ctx, slug); err == nil && link != nil {
		return link, nil
	}

	link, err := s.sqlRepo.GetLinkBySlug(ctx, slug)
	if err != nil {
		return nil, ErrLinkNotFound
	}

	if err := s.redis.CacheLink(ctx, link, repository.LinkCacheTTL); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Failed to cache link")
	}

	return link, nil
}

// Redirectability evaluates whether the link may be visited at the
// given instant. See model.Link.Redirectability for the precedence.
func (s *DirectoryService) Redirectability(link *model.Link, now time.Time) model.RedirectDecision {
	return link.Redirectability(now)
}

// IncrementClickCount bumps the counter for a link. The increment is a
// single atomic UPDATE in the store; failures are returned so callers
// on the async path can log and count them, never to block a redirect.
func (s *DirectoryService) IncrementClickCount(ctx context.Context, linkID string) error {
	return s.sqlRepo.IncrementClickCount(ctx, linkID)
}

// CreateLink persists a link supplied by the creation flow. When the
// input carries no slug one is generated from the destination URL with
// collision handling.
func (s *DirectoryService) CreateLink(ctx context.Context, in *CreateLinkInput) (*model.Link, error) {
	if in.IsTemporary && (in.ExpiresAt == nil || !in.ExpiresAt.After(time.Now())) {
		return nil, ErrInvalidExpiry
	}

	slug := in.Slug
	if slug == "" {
		generated, err := s.generateSlug(ctx, in.OriginalURL)
		if err != nil {
			return nil, err
		}
		slug = generated
	} else {
		if !encoder.IsValidSlug(slug) {
			return nil, ErrSlugInvalid
		}
		taken, err := s.sqlRepo.SlugExists(ctx, slug)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
	}

	link := &model.Link{
		ID:            util.GenerateUUID(),
		Slug:          slug,
		OriginalURL:   in.OriginalURL,
		Title:         in.Title,
		Description:   in.Description,
		OwnerID:       in.OwnerID,
		IsActive:      true,
		IsPublicStats: in.IsPublicStats,
		IsTemporary:   in.IsTemporary,
		ExpiresAt:     in.ExpiresAt,
	}

	if err := s.sqlRepo.SaveLink(ctx, link); err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to save link")
		return nil, err
	}

	if err := s.bloomSvc.Add(ctx, slug); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Failed to add slug to Bloom Filter")
	}
	if err := s.redis.CacheLink(ctx, link, repository.LinkCacheTTL); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Failed to cache link")
	}

	return link, nil
}

// UpdateLink applies owner edits and invalidates the cache entry.
func (s *DirectoryService) UpdateLink(ctx context.Context, linkID, ownerID string, in *UpdateLinkInput) (*model.Link, error) {
	link, err := s.sqlRepo.GetLinkByID(ctx, linkID)
	if err != nil || link.OwnerID != ownerID {
		return nil, ErrLinkNotFound
	}

	if in.OriginalURL != nil {
		link.OriginalURL = *in.OriginalURL
	}
	if in.Title != nil {
		link.Title = *in.Title
	}
	if in.Description != nil {
		link.Description = *in.Description
	}
	if in.IsActive != nil {
		link.IsActive = *in.IsActive
	}
	if in.IsPublicStats != nil {
		link.IsPublicStats = *in.IsPublicStats
	}
	if in.IsTemporary != nil {
		link.IsTemporary = *in.IsTemporary
	}
	if in.ExpiresAt != nil {
		link.ExpiresAt = in.ExpiresAt
	}
	if link.IsTemporary && (link.ExpiresAt == nil || !link.ExpiresAt.After(time.Now())) {
		return nil, ErrInvalidExpiry
	}

	if err := s.sqlRepo.UpdateLink(ctx, link); err != nil {
		return nil, err
	}

	if err := s.redis.InvalidateLink(ctx, link.Slug); err != nil {
		log.Warn().Err(err).Str("slug", link.Slug).Msg("Failed to invalidate cached link")
	}

	return link, nil
}

// AdminDisable blocks a link for moderation reasons. Independent of
// the owner's active flag and evaluated ahead of it on redirects.
func (s *DirectoryService) AdminDisable(ctx context.Context, linkID, reason string) error {
	return s.setAdminDisabled(ctx, linkID, true, reason)
}

// AdminEnable lifts a moderation block
func (s *DirectoryService) AdminEnable(ctx context.Context, linkID string) error {
	return s.setAdminDisabled(ctx, linkID, false, "")
}

func (s *DirectoryService) setAdminDisabled(ctx context.Context, linkID string, disabled bool, reason string) error {
	link, err := s.sqlRepo.GetLinkByID(ctx, linkID)
	if err != nil {
		return ErrLinkNotFound
	}

	link.IsDisabledByAdmin = disabled
	link.DisabledReason = reason

	if err := s.sqlRepo.UpdateLink(ctx, link); err != nil {
		return err
	}

	if err := s.redis.InvalidateLink(ctx, link.Slug); err != nil {
		log.Warn().Err(err).Str("slug", link.Slug).Msg("Failed to invalidate cached link")
	}

	return nil
}

// StartExpirySweep periodically deactivates temporary links past their
// deadline. Blocks until the context is cancelled.
func (s *DirectoryService) StartExpirySweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info().Dur("interval", interval).Msg("Expiry sweep started")

	for {
		select {
		case <-ticker.C:
			count, err := s.sqlRepo.DeactivateExpiredLinks(ctx)
			if err != nil {
				log.Error().Err(err).Msg("Expiry sweep failed")
				continue
			}
			if count > 0 {
				log.Info().Int64("count", count).Msg("Deactivated expired links")
			}
		case <-ctx.Done():
			log.Info().Msg("Expiry sweep stopped")
			return
		}
	}
}

// generateSlug derives a slug from the destination URL with collision
// handling: the Bloom Filter rules out most free candidates cheaply,
// the database confirms before a candidate is accepted.
func (s *DirectoryService) generateSlug(ctx context.Context, url string) (string, error) {
	for length := encoder.MinLength; length <= encoder.MaxLength; length++ {
		hash := util.HashString(url)

		for i := 0; i < 1000; i++ {
			candidate := s.encoder.Encode(hash+uint64(i), length)

			exists, err := s.bloomSvc.Exists(ctx, candidate)
			if err != nil || !exists {
				// Bloom Filter says probably free, confirm against the store.
				// An unconfirmed candidate is skipped, never assumed free.
				taken, err := s.sqlRepo.SlugExists(ctx, candidate)
				if err != nil {
					log.Warn().Err(err).Str("slug", candidate).Msg("Failed to confirm slug availability")
					continue
				}
				if !taken {
					return candidate, nil
				}
			}
		}
	}

	return "", ErrMaxCapacityReached
}
