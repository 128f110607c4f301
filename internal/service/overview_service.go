package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"marsad/backend/internal/cache"
	"marsad/backend/internal/repository"
)

type overviewPayload struct {
	Cases          int `json:"cases"`
	Stories        int `json:"stories"`
	Testimonies    int `json:"testimonies"`
	Organizations  int `json:"organizations"`
	TimelineEvents int `json:"timeline_events"`
}

// OverviewService serves the data-overview feed: active row counts per
// entity type, counted concurrently within the request.
type OverviewService interface {
	GetOverview(ctx context.Context) ([]byte, error)
}

type overviewService struct {
	cases         repository.CaseRepository
	stories       repository.StoryRepository
	testimonies   repository.TestimonyRepository
	organizations repository.OrganizationRepository
	timeline      repository.TimelineRepository
	cache         cache.Cache
	ttl           time.Duration
}

func NewOverviewService(
	cases repository.CaseRepository,
	stories repository.StoryRepository,
	testimonies repository.TestimonyRepository,
	organizations repository.OrganizationRepository,
	timeline repository.TimelineRepository,
	c cache.Cache,
	ttl time.Duration,
) OverviewService {
	return &overviewService{
		cases:         cases,
		stories:       stories,
		testimonies:   testimonies,
		organizations: organizations,
		timeline:      timeline,
		cache:         c,
		ttl:           ttl,
	}
}

func (s *overviewService) GetOverview(ctx context.Context) ([]byte, error) {
	key := cache.Key("data-overview")
	return cachedPayload(s.cache, key, s.ttl, func() (any, error) {
		return s.compose(ctx)
	})
}

func (s *overviewService) compose(ctx context.Context) (overviewPayload, error) {
	var payload overviewPayload

	g, ctx := errgroup.WithContext(ctx)
	count := func(dst *int, fn func(context.Context) (int, error)) {
		g.Go(func() error {
			n, err := fn(ctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(&payload.Cases, s.cases.Count)
	count(&payload.Stories, s.stories.Count)
	count(&payload.Testimonies, s.testimonies.Count)
	count(&payload.Organizations, s.organizations.Count)
	count(&payload.TimelineEvents, s.timeline.Count)

	if err := g.Wait(); err != nil {
		return overviewPayload{}, err
	}

	return payload, nil
}
