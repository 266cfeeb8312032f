package repository

import (
	"context"
	"strings"
	"time"

	"lark/internal/config"
	"lark/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLRepository handles relational store operations for links and
// click events. The dialector is chosen from the DSN so local setups
// can run on an embedded sqlite file while production uses MySQL.
type SQLRepository struct {
	db *gorm.DB
}

// NewSQLRepository creates a new SQL repository
func NewSQLRepository(cfg *config.SQLConfig) *SQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(cfg.DSN, "sqlite://") {
		dialector = sqlite.Open(strings.TrimPrefix(cfg.DSN, "sqlite://"))
	} else {
		dialector = mysql.Open(cfg.DSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.Link{}, &model.ClickEvent{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	// Slug matching must be case sensitive. sqlite compares TEXT
	// byte-wise already; MySQL needs a binary collation on the column.
	if db.Dialector.Name() == "mysql" {
		if err := db.Exec("ALTER TABLE links MODIFY slug varchar(50) COLLATE utf8mb4_bin NOT NULL").Error; err != nil {
			log.Fatal().Err(err).Msg("Failed to apply slug collation")
		}
	}

	log.Info().Msg("Database connected successfully")

	return &SQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *SQLRepository) GetDB() *gorm.DB {
	return r.db
}

// SaveLink persists a new link
func (r *SQLRepository) SaveLink(ctx context.Context, link *model.Link) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// UpdateLink persists edits to an existing link. The update is field
// selected rather than a full-row save: click_count is only ever
// written by IncrementClickCount, so an edit snapshot taken before
// concurrent redirects cannot roll the counter back.
func (r *SQLRepository) UpdateLink(ctx context.Context, link *model.Link) error {
	return r.db.WithContext(ctx).
		Model(link).
		Select("*").
		Omit("id", "click_count", "created_at", "deleted_at").
		Updates(link).Error
}

// GetLinkBySlug retrieves a link by its slug. Soft-deleted links are
// excluded; slug comparison is case sensitive on both dialects.
func (r *SQLRepository) GetLinkBySlug(ctx context.Context, slug string) (*model.Link, error) {
	var link model.Link
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetLinkByID retrieves a link by its ID
func (r *SQLRepository) GetLinkByID(ctx context.Context, id string) (*model.Link, error) {
	var link model.Link
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetLinksByOwner retrieves all links belonging to an owner
func (r *SQLRepository) GetLinksByOwner(ctx context.Context, ownerID string) ([]model.Link, error) {
	var links []model.Link
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&links).Error
	return links, err
}

// SlugExists checks whether a slug is already taken
func (r *SQLRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

// IncrementClickCount bumps the click counter by one in a single
// UPDATE so concurrent redirects on the same slug never lose counts.
func (r *SQLRepository) IncrementClickCount(ctx context.Context, linkID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("id = ?", linkID).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1)).Error
}

// SaveClickEvent persists one immutable click event
func (r *SQLRepository) SaveClickEvent(ctx context.Context, ev *model.ClickEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

// GetClickEvents retrieves events for a set of links within an
// inclusive time window. Nil bounds mean unbounded on that side.
// Ordering is fixed so aggregation output is reproducible.
func (r *SQLRepository) GetClickEvents(ctx context.Context, linkIDs []string, start, end *time.Time) ([]model.ClickEvent, error) {
	var events []model.ClickEvent
	query := r.db.WithContext(ctx).
		Where("link_id IN ?", linkIDs)

	if start != nil {
		query = query.Where("timestamp >= ?", *start)
	}
	if end != nil {
		query = query.Where("timestamp <= ?", *end)
	}

	err := query.Order("timestamp ASC, id ASC").Find(&events).Error
	return events, err
}

// GetRecentClickEvents retrieves the most recent events for a link,
// newest first, for the raw export surface.
func (r *SQLRepository) GetRecentClickEvents(ctx context.Context, linkID string, limit int) ([]model.ClickEvent, error) {
	var events []model.ClickEvent
	query := r.db.WithContext(ctx).
		Where("link_id = ?", linkID).
		Order("timestamp DESC, id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&events).Error
	return events, err
}

// DeactivateExpiredLinks flips the active flag on temporary links past
// their deadline. Redirects deny expired links dynamically regardless,
// this keeps dashboards and listings in line.
func (r *SQLRepository) DeactivateExpiredLinks(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("is_temporary = ? AND is_active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, true, time.Now().UTC()).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
