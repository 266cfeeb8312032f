package mq

import (
	"time"

	"lark/internal/model"
)

// ClickMessage carries one enriched click through the queue. It is
// built from a ClickEvent after enrichment, so the broker's commit log
// only ever holds the hashed IP and derived dimensions, never the raw
// client address.
type ClickMessage struct {
	EventID   string    `json:"event_id"`
	LinkID    string    `json:"link_id"`
	IPHash    string    `json:"ip_hash"`
	Country   string    `json:"country"`
	Region    string    `json:"region"`
	City      string    `json:"city"`
	Language  string    `json:"language"`
	Device    string    `json:"device"`
	OS        string    `json:"os"`
	Browser   string    `json:"browser"`
	Referrer  string    `json:"referrer,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// FromEvent wraps an enriched event for publishing.
func FromEvent(ev *model.ClickEvent) *ClickMessage {
	return &ClickMessage{
		EventID:   ev.ID,
		LinkID:    ev.LinkID,
		IPHash:    ev.IPHash,
		Country:   ev.Country,
		Region:    ev.Region,
		City:      ev.City,
		Language:  ev.Language,
		Device:    ev.Device,
		OS:        ev.OS,
		Browser:   ev.Browser,
		Referrer:  ev.Referrer,
		Timestamp: ev.Timestamp,
	}
}

// Event rebuilds the click event on the consumer side. The event ID is
// carried through the queue, so a redelivered message rebuilds the
// same identity.
func (m *ClickMessage) Event() *model.ClickEvent {
	return &model.ClickEvent{
		ID:        m.EventID,
		LinkID:    m.LinkID,
		Timestamp: m.Timestamp,
		IPHash:    m.IPHash,
		Country:   m.Country,
		Region:    m.Region,
		City:      m.City,
		Language:  m.Language,
		Device:    m.Device,
		OS:        m.OS,
		Browser:   m.Browser,
		Referrer:  m.Referrer,
	}
}
