package model

import (
	"time"

	"gorm.io/gorm"
)

// RedirectDecision is the outcome of evaluating whether a link may be
// visited right now.
type RedirectDecision int

const (
	DecisionAllow RedirectDecision = iota
	DecisionDeniedAdmin
	DecisionDeniedExpired
	DecisionDeniedInactive
)

func (d RedirectDecision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionDeniedAdmin:
		return "denied_admin"
	case DecisionDeniedExpired:
		return "denied_expired"
	case DecisionDeniedInactive:
		return "denied_inactive"
	default:
		return "unknown"
	}
}

// Link represents a short link entity
type Link struct {
	ID                string         `json:"id" gorm:"type:varchar(36);primaryKey"`
	Slug              string         `json:"slug" gorm:"type:varchar(50);uniqueIndex;not null"`
	OriginalURL       string         `json:"original_url" gorm:"type:varchar(2048);not null"`
	Title             string         `json:"title,omitempty" gorm:"type:varchar(255)"`
	Description       string         `json:"description,omitempty" gorm:"type:varchar(1024)"`
	OwnerID           string         `json:"owner_id" gorm:"type:varchar(36);index;not null"`
	IsActive          bool           `json:"is_active" gorm:"default:true"`
	IsPublicStats     bool           `json:"is_public_stats" gorm:"default:false"`
	IsDisabledByAdmin bool           `json:"is_disabled_by_admin" gorm:"default:false"`
	DisabledReason    string         `json:"disabled_reason,omitempty" gorm:"type:varchar(512)"`
	IsTemporary       bool           `json:"is_temporary" gorm:"default:false"`
	ExpiresAt         *time.Time     `json:"expires_at,omitempty" gorm:"index"`
	ClickCount        int64          `json:"click_count" gorm:"default:0"`
	CreatedAt         time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// Redirectability evaluates whether the link may be visited at the given
// instant. Admin disable wins over everything, then expiry, then the
// owner's active flag. Expiry is evaluated against now rather than a
// stored flag, so a temporary link denies as soon as its deadline passes.
func (l *Link) Redirectability(now time.Time) RedirectDecision {
	if l.IsDisabledByAdmin {
		return DecisionDeniedAdmin
	}
	if l.IsTemporary && l.ExpiresAt != nil && !now.Before(*l.ExpiresAt) {
		return DecisionDeniedExpired
	}
	if !l.IsActive {
		return DecisionDeniedInactive
	}
	return DecisionAllow
}

// IsExpired reports whether a temporary link is past its deadline.
func (l *Link) IsExpired(now time.Time) bool {
	return l.IsTemporary && l.ExpiresAt != nil && !now.Before(*l.ExpiresAt)
}
