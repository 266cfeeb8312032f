package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"lark/internal/model"
)

var (
	// ErrInvalidWindow is returned when the window end precedes its start
	ErrInvalidWindow = errors.New("window end precedes start")
	// ErrAggregationTimeout is returned when a stats query exceeds its deadline
	ErrAggregationTimeout = errors.New("aggregation timed out")
)

// Referrer display keys for events with no usable referrer.
const (
	ReferrerDirect  = "direct"
	ReferrerUnknown = "unknown"
)

// ctxCheckInterval is how many events are folded between context
// deadline checks.
const ctxCheckInterval = 1024

// StatsService is the aggregation engine. Each query fetches the
// matching events and folds them into a fresh LinkStats, so concurrent
// queries never share accumulator state. Reads are not synchronized
// against concurrent recording; dashboards tolerate read-committed
// staleness.
type StatsService struct {
	store         SQLRepositoryInterface
	maxExportRows int
}

// NewStatsService creates a new Stats Service
func NewStatsService(store SQLRepositoryInterface, maxExportRows int) *StatsService {
	if maxExportRows <= 0 {
		maxExportRows = 10000
	}
	return &StatsService{
		store:         store,
		maxExportRows: maxExportRows,
	}
}

// ComputeStats aggregates the events of the queried links over the
// inclusive window. Multiple link IDs merge into one summary: each
// breakdown row sums over every link, never per (link, dimension)
// pair. Zero links or zero events yield a valid zero-valued LinkStats.
// A context deadline surfaces as ErrAggregationTimeout, never as
// silently partial stats.
func (s *StatsService) ComputeStats(ctx context.Context, q *model.StatsQuery) (*model.LinkStats, error) {
	if q.Start != nil && q.End != nil && q.End.Before(*q.Start) {
		return nil, ErrInvalidWindow
	}

	if len(q.LinkIDs) == 0 {
		return model.EmptyStats(), nil
	}

	events, err := s.store.GetClickEvents(ctx, q.LinkIDs, q.Start, q.End)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return nil, ErrAggregationTimeout
		}
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	return foldEvents(ctx, events)
}

// LinkStats aggregates a single link scoped to its owner
func (s *StatsService) LinkStats(ctx context.Context, ownerID, linkID string, start, end *time.Time) (*model.LinkStats, error) {
	link, err := s.store.GetLinkByID(ctx, linkID)
	if err != nil || link.OwnerID != ownerID {
		return nil, ErrLinkNotFound
	}

	return s.ComputeStats(ctx, &model.StatsQuery{
		LinkIDs: []string{link.ID},
		Start:   start,
		End:     end,
	})
}

// GlobalStats aggregates across every link the owner has. An owner
// with no links gets zero stats, not an error.
func (s *StatsService) GlobalStats(ctx context.Context, ownerID string, start, end *time.Time) (*model.LinkStats, error) {
	links, err := s.store.GetLinksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ID)
	}

	return s.ComputeStats(ctx, &model.StatsQuery{
		LinkIDs: ids,
		Start:   start,
		End:     end,
	})
}

// ExportEvents returns the most recent raw events of an owner's link,
// bounded by the configured row cap. Detailed export bypasses
// aggregation on purpose.
func (s *StatsService) ExportEvents(ctx context.Context, ownerID, linkID string, limit int) ([]model.ClickEvent, error) {
	link, err := s.store.GetLinkByID(ctx, linkID)
	if err != nil || link.OwnerID != ownerID {
		return nil, ErrLinkNotFound
	}

	if limit <= 0 || limit > s.maxExportRows {
		limit = s.maxExportRows
	}

	return s.store.GetRecentClickEvents(ctx, link.ID, limit)
}

// foldEvents reduces an event stream into a LinkStats. Pure over its
// input: a fresh accumulator per call, deterministic output for the
// same event slice.
func foldEvents(ctx context.Context, events []model.ClickEvent) (*model.LinkStats, error) {
	stats := model.EmptyStats()

	days := make(map[string]int64)
	uniques := make(map[string]struct{})
	country := newBreakdown()
	device := newBreakdown()
	browser := newBreakdown()
	osNames := newBreakdown()
	referrer := newBreakdown()

	for i, ev := range events {
		if i%ctxCheckInterval == 0 && ctx.Err() != nil {
			return nil, ErrAggregationTimeout
		}

		ts := ev.Timestamp.UTC()

		stats.TotalClicks++
		if ev.IPHash != "" {
			uniques[ev.IPHash] = struct{}{}
		}
		days[ts.Format("2006-01-02")]++
		stats.PeakHours[ts.Hour()]++

		country.add(ev.Country)
		device.add(ev.Device)
		browser.add(ev.Browser)
		osNames.add(ev.OS)
		referrer.add(referrerKey(ev.Referrer))
	}

	stats.UniqueClicks = int64(len(uniques))

	dayKeys := make([]string, 0, len(days))
	for day := range days {
		dayKeys = append(dayKeys, day)
	}
	sort.Strings(dayKeys)
	for _, day := range dayKeys {
		stats.ClicksByDay = append(stats.ClicksByDay, model.DayCount{Day: day, Clicks: days[day]})
	}

	stats.ClicksByCountry = country.sorted()
	stats.ClicksByDevice = device.sorted()
	stats.ClicksByBrowser = browser.sorted()
	stats.ClicksByOS = osNames.sorted()
	stats.ClicksByReferrer = referrer.sorted()

	return stats, nil
}

// breakdown accumulates grouped counts while remembering first-seen
// key order, which breaks ties in the sorted output.
type breakdown struct {
	order  []string
	counts map[string]int64
}

func newBreakdown() *breakdown {
	return &breakdown{counts: make(map[string]int64)}
}

func (b *breakdown) add(key string) {
	if _, seen := b.counts[key]; !seen {
		b.order = append(b.order, key)
	}
	b.counts[key]++
}

func (b *breakdown) sorted() []model.KeyCount {
	rows := make([]model.KeyCount, 0, len(b.order))
	for _, key := range b.order {
		rows = append(rows, model.KeyCount{Key: key, Clicks: b.counts[key]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Clicks > rows[j].Clicks
	})
	return rows
}

// referrerKey shapes a raw stored referrer for display: absent becomes
// "direct", an unparsable or host-less value becomes "unknown", and a
// well-formed URL reduces to its hostname with a leading www. removed.
func referrerKey(raw string) string {
	if raw == "" {
		return ReferrerDirect
	}

	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ReferrerUnknown
	}

	return strings.TrimPrefix(u.Hostname(), "www.")
}
