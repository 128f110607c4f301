package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"marsad/backend/internal/cache"
	"marsad/backend/internal/model"
	"marsad/backend/internal/repository"
)

const (
	defaultPerPage = 10
	maxPerPage     = 50
	relatedLimit   = 5

	// Every testimony shares one type tag; related matching between
	// testimonies degrades to type-only, which is intended.
	testimonyType = "testimonies"
)

type TestimonyListParams struct {
	Page    int
	PerPage int
}

type Pagination struct {
	CurrentPage int  `json:"current_page"`
	LastPage    int  `json:"last_page"`
	PerPage     int  `json:"per_page"`
	Total       int  `json:"total"`
	HasMore     bool `json:"has_more"`
}

type testimonyListPayload struct {
	Data       []BilingualView `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

type testimonyDetailPayload struct {
	Testimony BilingualView   `json:"testimony"`
	Related   []BilingualView `json:"related"`
}

type TestimonyService interface {
	List(ctx context.Context, params TestimonyListParams) ([]byte, error)
	GetDetail(ctx context.Context, slug string) ([]byte, error)
}

type testimonyService struct {
	testimonies repository.TestimonyRepository
	normalizer  *Normalizer
	cache       cache.Cache
	ttl         time.Duration
	fallback    string
}

func NewTestimonyService(
	testimonies repository.TestimonyRepository,
	normalizer *Normalizer,
	c cache.Cache,
	ttl time.Duration,
	fallback string,
) TestimonyService {
	return &testimonyService{
		testimonies: testimonies,
		normalizer:  normalizer,
		cache:       c,
		ttl:         ttl,
		fallback:    fallback,
	}
}

func (s *testimonyService) List(ctx context.Context, params TestimonyListParams) ([]byte, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	perPage := params.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	key := cache.Key("testimonials", "page="+strconv.Itoa(page), "per="+strconv.Itoa(perPage))
	return cachedPayload(s.cache, key, s.ttl, func() (any, error) {
		return s.composeList(ctx, page, perPage)
	})
}

func (s *testimonyService) composeList(ctx context.Context, page, perPage int) (testimonyListPayload, error) {
	total, err := s.testimonies.Count(ctx)
	if err != nil {
		return testimonyListPayload{}, err
	}

	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	items, err := s.testimonies.List(ctx, repository.TestimonyListFilter{
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	})
	if err != nil {
		return testimonyListPayload{}, err
	}

	views, err := s.normalizer.NormalizeTestimonies(ctx, items)
	if err != nil {
		return testimonyListPayload{}, err
	}
	if views == nil {
		views = []BilingualView{}
	}
	for i := range views {
		applyFallback(views[i].Title, s.fallback)
	}

	return testimonyListPayload{
		Data: views,
		Pagination: Pagination{
			CurrentPage: page,
			LastPage:    lastPage,
			PerPage:     perPage,
			Total:       total,
			HasMore:     page < lastPage,
		},
	}, nil
}

func (s *testimonyService) GetDetail(ctx context.Context, slug string) ([]byte, error) {
	key := cache.Key("testimony-detail", "slug="+slug)
	return cachedPayload(s.cache, key, s.ttl, func() (any, error) {
		return s.composeDetail(ctx, slug)
	})
}

func (s *testimonyService) composeDetail(ctx context.Context, slug string) (testimonyDetailPayload, error) {
	focal, err := s.testimonies.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return testimonyDetailPayload{}, ErrNotFound
		}
		return testimonyDetailPayload{}, err
	}

	pool, err := s.testimonies.List(ctx, repository.TestimonyListFilter{})
	if err != nil {
		return testimonyDetailPayload{}, err
	}

	related := RelatedTo(testimonyCandidate(focal), testimonyCandidates(pool), relatedLimit)
	relatedModels := make([]model.Testimony, 0, len(related))
	byID := make(map[int64]model.Testimony, len(pool))
	for _, t := range pool {
		byID[t.ID] = t
	}
	for _, r := range related {
		relatedModels = append(relatedModels, byID[r.ID])
	}

	view, err := s.normalizer.NormalizeTestimony(ctx, focal)
	if err != nil {
		return testimonyDetailPayload{}, err
	}
	applyFallback(view.Title, s.fallback)

	relatedViews, err := s.normalizer.NormalizeTestimonies(ctx, relatedModels)
	if err != nil {
		return testimonyDetailPayload{}, err
	}
	if relatedViews == nil {
		relatedViews = []BilingualView{}
	}

	return testimonyDetailPayload{
		Testimony: view,
		Related:   relatedViews,
	}, nil
}

func testimonyCandidate(t model.Testimony) RelatedCandidate {
	return RelatedCandidate{
		ID:         t.ID,
		Type:       testimonyType,
		IsFeatured: t.IsFeatured,
		SortOrder:  t.SortOrder,
	}
}

func testimonyCandidates(pool []model.Testimony) []RelatedCandidate {
	candidates := make([]RelatedCandidate, len(pool))
	for i, t := range pool {
		candidates[i] = testimonyCandidate(t)
	}
	return candidates
}
