package service

import (
	"context"
	"sync/atomic"

	"lark/internal/model"
	"lark/internal/mq"

	"github.com/rs/zerolog/log"
)

// ClickPublisherInterface publishes visits to the durable MQ pipeline
type ClickPublisherInterface interface {
	SendClick(ctx context.Context, msg *mq.ClickMessage) error
}

// Recorder turns visits into stored click events off the request path.
// Record hands the visit to a buffered channel and returns immediately;
// a background worker enriches and persists. Best effort by contract:
// a full queue drops the visit (counted and logged), and a click-count
// increment may succeed while the event write fails or vice versa. The
// redirect response never waits on any of this.
type Recorder struct {
	store     SQLRepositoryInterface
	enricher  *Enricher
	publisher ClickPublisherInterface
	queue     chan model.Visit

	recorded atomic.Int64
	dropped  atomic.Int64
	failed   atomic.Int64
}

// NewRecorder creates a new Recorder. publisher may be nil, in which
// case visits are persisted by the in-process worker.
func NewRecorder(store SQLRepositoryInterface, enricher *Enricher, publisher ClickPublisherInterface, queueSize int) *Recorder {
	if queueSize <= 0 {
		queueSize = 1000
	}
	return &Recorder{
		store:     store,
		enricher:  enricher,
		publisher: publisher,
		queue:     make(chan model.Visit, queueSize),
	}
}

// Record enqueues a visit without blocking. Exactly one call per
// allowed redirect yields at most one stored event.
func (r *Recorder) Record(v model.Visit) {
	select {
	case r.queue <- v:
	default:
		r.dropped.Add(1)
		log.Warn().Str("link_id", v.LinkID).Msg("Recorder queue full, dropping visit")
	}
}

// Start runs the worker loop until the context is cancelled
func (r *Recorder) Start(ctx context.Context) {
	log.Info().Int("queue_size", cap(r.queue)).Msg("Click recorder started")

	for {
		select {
		case v := <-r.queue:
			r.process(ctx, v)
		case <-ctx.Done():
			log.Info().Msg("Click recorder stopped")
			return
		}
	}
}

// process enriches the visit first, so the raw client IP dies here
// regardless of the sink: the MQ message and the stored event both
// carry only the hashed form.
func (r *Recorder) process(ctx context.Context, v model.Visit) {
	ev := r.enricher.Enrich(v)

	if r.publisher != nil {
		if err := r.publisher.SendClick(ctx, mq.FromEvent(&ev)); err == nil {
			return
		} else {
			log.Warn().Err(err).Str("link_id", v.LinkID).Msg("MQ publish failed, persisting locally")
		}
	}

	if err := r.PersistEvent(ctx, &ev); err != nil {
		log.Error().Err(err).Str("link_id", v.LinkID).Msg("Failed to record click")
	}
}

// PersistEvent writes one immutable event plus the click-count
// increment. The two store writes are independent; losing one but not
// the other is accepted bounded drift between a link's click_count and
// its event count.
func (r *Recorder) PersistEvent(ctx context.Context, ev *model.ClickEvent) error {
	if err := r.store.SaveClickEvent(ctx, ev); err != nil {
		r.failed.Add(1)
		return err
	}

	if err := r.store.IncrementClickCount(ctx, ev.LinkID); err != nil {
		// Event is durable, only the counter drifted
		log.Error().Err(err).Str("link_id", ev.LinkID).Msg("Failed to increment click count")
	}

	r.recorded.Add(1)
	return nil
}

// Recorded returns the number of events persisted
func (r *Recorder) Recorded() int64 {
	return r.recorded.Load()
}

// Dropped returns the number of visits dropped on a full queue
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// Failed returns the number of event writes that failed
func (r *Recorder) Failed() int64 {
	return r.failed.Load()
}
