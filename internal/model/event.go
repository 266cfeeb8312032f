package model

import (
	"time"
)

// Device classes derived from the user-agent string.
const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
)

// ClickEvent is one recorded visit with its derived dimensions. Events
// are immutable once written; corrections happen by writing new events.
// The client IP is hashed before the event is built, the raw address is
// never persisted.
type ClickEvent struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	LinkID    string    `json:"link_id" gorm:"type:varchar(36);index;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"index;not null"`
	IPHash    string    `json:"ip_hash" gorm:"type:varchar(64)"`
	Country   string    `json:"country" gorm:"type:varchar(100)"`
	Region    string    `json:"region" gorm:"type:varchar(100)"`
	City      string    `json:"city" gorm:"type:varchar(100)"`
	Language  string    `json:"language" gorm:"type:varchar(35)"`
	Device    string    `json:"device" gorm:"type:varchar(16)"`
	OS        string    `json:"os" gorm:"type:varchar(64)"`
	Browser   string    `json:"browser" gorm:"type:varchar(64)"`
	Referrer  string    `json:"referrer,omitempty" gorm:"type:varchar(512)"`
}

// TableName returns the table name for ClickEvent
func (ClickEvent) TableName() string {
	return "click_events"
}

// Visit carries the raw request metadata captured on the redirect hot
// path. Enrichment into a ClickEvent happens off the request goroutine.
type Visit struct {
	LinkID    string    `json:"link_id"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	Referrer  string    `json:"referrer"`
	Language  string    `json:"language"`
	Time      time.Time `json:"time"`
}
