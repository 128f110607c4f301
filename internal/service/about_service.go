package service

import (
	"context"
	"time"

	"marsad/backend/internal/cache"
	"marsad/backend/internal/repository"
)

// Translation keys for the about page, scoped to their own group.
const aboutGroup = "about_page"

var aboutKeys = []string{
	"about_title",
	"about_subtitle",
	"mission_title",
	"mission_body",
	"vision_title",
	"vision_body",
}

type AboutService interface {
	GetAbout(ctx context.Context) ([]byte, error)
}

type aboutBlock struct {
	Title LocalizedText `json:"title"`
	Body  LocalizedText `json:"body"`
}

type aboutPayload struct {
	Title    *LocalizedText  `json:"title"`
	Subtitle LocalizedText   `json:"subtitle"`
	Mission  aboutBlock      `json:"mission"`
	Vision   aboutBlock      `json:"vision"`
	Timeline []BilingualView `json:"timeline"`
}

type aboutService struct {
	translations TranslationStore
	timeline     repository.TimelineRepository
	normalizer   *Normalizer
	cache        cache.Cache
	ttl          time.Duration
	fallback     string
}

func NewAboutService(
	translations TranslationStore,
	timeline repository.TimelineRepository,
	normalizer *Normalizer,
	c cache.Cache,
	ttl time.Duration,
	fallback string,
) AboutService {
	return &aboutService{
		translations: translations,
		timeline:     timeline,
		normalizer:   normalizer,
		cache:        c,
		ttl:          ttl,
		fallback:     fallback,
	}
}

func (s *aboutService) GetAbout(ctx context.Context) ([]byte, error) {
	key := cache.Key("about")
	return cachedPayload(s.cache, key, s.ttl, func() (any, error) {
		return s.compose(ctx)
	})
}

func (s *aboutService) compose(ctx context.Context) (aboutPayload, error) {
	group := aboutGroup
	resolved, err := s.translations.ResolveBatch(ctx, aboutKeys, languages, &group)
	if err != nil {
		return aboutPayload{}, err
	}

	l := lookup(resolved)
	title := l.text("about_title")
	applyFallback(title, s.fallback)

	events, err := s.timeline.ListActive(ctx)
	if err != nil {
		return aboutPayload{}, err
	}
	timeline, err := s.normalizer.NormalizeTimelineEvents(ctx, events)
	if err != nil {
		return aboutPayload{}, err
	}
	if timeline == nil {
		timeline = []BilingualView{}
	}

	return aboutPayload{
		Title:    title,
		Subtitle: *l.text("about_subtitle"),
		Mission: aboutBlock{
			Title: *l.text("mission_title"),
			Body:  *l.text("mission_body"),
		},
		Vision: aboutBlock{
			Title: *l.text("vision_title"),
			Body:  *l.text("vision_body"),
		},
		Timeline: timeline,
	}, nil
}
