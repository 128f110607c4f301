package service

import (
	"context"
	"strconv"
	"time"

	"marsad/backend/internal/cache"
	"marsad/backend/internal/repository"
)

type HomeService interface {
	GetHome(ctx context.Context) ([]byte, error)
}

type homePayload struct {
	Sections []ComposedSection `json:"sections"`
}

type homeService struct {
	sections    repository.HomeSectionRepository
	cases       repository.CaseRepository
	stories     repository.StoryRepository
	testimonies repository.TestimonyRepository
	timeline    repository.TimelineRepository
	normalizer  *Normalizer
	cache       cache.Cache
	ttl         time.Duration
	fallback    string
}

func NewHomeService(
	sections repository.HomeSectionRepository,
	cases repository.CaseRepository,
	stories repository.StoryRepository,
	testimonies repository.TestimonyRepository,
	timeline repository.TimelineRepository,
	normalizer *Normalizer,
	c cache.Cache,
	ttl time.Duration,
	fallback string,
) HomeService {
	return &homeService{
		sections:    sections,
		cases:       cases,
		stories:     stories,
		testimonies: testimonies,
		timeline:    timeline,
		normalizer:  normalizer,
		cache:       c,
		ttl:         ttl,
		fallback:    fallback,
	}
}

func (s *homeService) GetHome(ctx context.Context) ([]byte, error) {
	key := cache.Key("home")
	return cachedPayload(s.cache, key, s.ttl, func() (any, error) {
		return s.compose(ctx)
	})
}

func (s *homeService) compose(ctx context.Context) (homePayload, error) {
	var sections []Section

	// Curated sections carry their stored sort order.
	curated, err := s.sections.ListActive(ctx)
	if err != nil {
		return homePayload{}, err
	}
	curatedViews, err := s.normalizer.NormalizeHomeSections(ctx, curated)
	if err != nil {
		return homePayload{}, err
	}
	for i, v := range curatedViews {
		view := v
		applyFallback(view.Title, s.fallback)
		sections = append(sections, Section{
			ID:        view.ID,
			Type:      view.Type,
			SortOrder: curated[i].SortOrder,
			Content:   view,
		})
	}

	// Generated groups sit in fixed bands. Empty groups emit no section.
	featured, err := s.cases.ListFeatured(ctx, 6)
	if err != nil {
		return homePayload{}, err
	}
	if len(featured) > 0 {
		views, err := s.normalizer.NormalizeCases(ctx, featured)
		if err != nil {
			return homePayload{}, err
		}
		sections = append(sections, Section{
			ID:        "featured-cases",
			Type:      "featured_cases",
			SortOrder: bandFeaturedCases,
			Content:   SectionList{Items: views},
		})
	}

	stories, err := s.stories.ListFeatured(ctx, 4)
	if err != nil {
		return homePayload{}, err
	}
	if len(stories) > 0 {
		views, err := s.normalizer.NormalizeStories(ctx, stories)
		if err != nil {
			return homePayload{}, err
		}
		sections = append(sections, Section{
			ID:        "featured-stories",
			Type:      "featured_stories",
			SortOrder: bandFeaturedStories,
			Content:   SectionList{Items: views},
		})
	}

	latest, err := s.testimonies.ListLatest(ctx, 3)
	if err != nil {
		return homePayload{}, err
	}
	if len(latest) > 0 {
		views, err := s.normalizer.NormalizeTestimonies(ctx, latest)
		if err != nil {
			return homePayload{}, err
		}
		sections = append(sections, Section{
			ID:        "latest-testimonies",
			Type:      "latest_testimonies",
			SortOrder: bandLatestTestimonies,
			Content:   SectionList{Items: views},
		})
	}

	events, err := s.timeline.ListActive(ctx)
	if err != nil {
		return homePayload{}, err
	}
	if len(events) > 0 {
		views, err := s.normalizer.NormalizeTimelineEvents(ctx, events)
		if err != nil {
			return homePayload{}, err
		}
		for i, v := range views {
			sections = append(sections, Section{
				ID:        "timeline-" + strconv.Itoa(i),
				Type:      "timeline_event",
				SortOrder: bandTimelineBase + i,
				Content:   v,
			})
		}
	}

	return homePayload{Sections: Compose(sections)}, nil
}
