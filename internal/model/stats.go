package model

import (
	"time"
)

// StatsQuery defines the scope and window of an aggregation. A nil
// Start or End means unbounded on that side; both bounds are inclusive.
type StatsQuery struct {
	LinkIDs []string
	Start   *time.Time
	End     *time.Time
}

// KeyCount is one row of a per-dimension breakdown.
type KeyCount struct {
	Key    string `json:"key"`
	Clicks int64  `json:"clicks"`
}

// DayCount is one row of the per-day series. Day is a UTC calendar day
// formatted as 2006-01-02.
type DayCount struct {
	Day    string `json:"day"`
	Clicks int64  `json:"clicks"`
}

// LinkStats is the aggregated view of a set of click events. It is
// recomputed per query, never persisted. Breakdown slices are sorted
// descending by clicks with first-seen order breaking ties; ClicksByDay
// is ascending by day and sparse (days without events are absent).
type LinkStats struct {
	TotalClicks      int64      `json:"total_clicks"`
	UniqueClicks     int64      `json:"unique_clicks"`
	ClicksByDay      []DayCount `json:"clicks_by_day"`
	ClicksByCountry  []KeyCount `json:"clicks_by_country"`
	ClicksByDevice   []KeyCount `json:"clicks_by_device"`
	ClicksByBrowser  []KeyCount `json:"clicks_by_browser"`
	ClicksByOS       []KeyCount `json:"clicks_by_os"`
	ClicksByReferrer []KeyCount `json:"clicks_by_referrer"`
	PeakHours        [24]int64  `json:"peak_hours"`
}

// EmptyStats returns a structurally valid zero-valued LinkStats. A
// query matching no links or no events aggregates to this, never to an
// error.
func EmptyStats() *LinkStats {
	return &LinkStats{
		ClicksByDay:      []DayCount{},
		ClicksByCountry:  []KeyCount{},
		ClicksByDevice:   []KeyCount{},
		ClicksByBrowser:  []KeyCount{},
		ClicksByOS:       []KeyCount{},
		ClicksByReferrer: []KeyCount{},
	}
}
