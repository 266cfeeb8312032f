package service

import (
	"context"
	"time"

	"lark/internal/model"
)

// Resolution is the terminal outcome of a slug visit. Target is only
// set when Decision is DecisionAllow.
type Resolution struct {
	Decision model.RedirectDecision
	Link     *model.Link
	Target   string
}

// ResolverService drives the redirect hot path: resolve the slug,
// decide allow or deny, and hand the visit to the recorder after the
// response has been issued.
type ResolverService struct {
	directory DirectoryServiceInterface
	recorder  RecorderInterface
}

// NewResolverService creates a new Resolver Service
func NewResolverService(directory DirectoryServiceInterface, recorder RecorderInterface) *ResolverService {
	return &ResolverService{
		directory: directory,
		recorder:  recorder,
	}
}

// Resolve decides the outcome for a slug visit. ErrLinkNotFound is the
// only error; policy denials come back as a Resolution so the handler
// can pick the right page per reason. No side effects happen here.
func (s *ResolverService) Resolve(ctx context.Context, slug string) (*Resolution, error) {
	link, err := s.directory.Resolve(ctx, slug)
	if err != nil {
		return nil, err
	}

	decision := s.directory.Redirectability(link, time.Now())

	res := &Resolution{
		Decision: decision,
		Link:     link,
	}
	if decision == model.DecisionAllow {
		res.Target = link.OriginalURL
	}

	return res, nil
}

// RecordVisit hands the visit to the recorder. Called by the handler
// after the redirect response is written; the enqueue is non-blocking
// so redirect latency never includes recording.
func (s *ResolverService) RecordVisit(link *model.Link, v model.Visit) {
	v.LinkID = link.ID
	if v.Time.IsZero() {
		v.Time = time.Now().UTC()
	}
	s.recorder.Record(v)
}
