package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"marsad/backend/internal/cache"
	"marsad/backend/internal/model"
	"marsad/backend/internal/repository"
)

type organizationDetailPayload struct {
	Organization BilingualView   `json:"organization"`
	Related      []BilingualView `json:"related"`
}

type OrganizationService interface {
	GetDetail(ctx context.Context, slug string) ([]byte, error)
}

type organizationService struct {
	organizations repository.OrganizationRepository
	categories    repository.CategoryRepository
	normalizer    *Normalizer
	cache         cache.Cache
	ttl           time.Duration
	fallback      string
}

func NewOrganizationService(
	organizations repository.OrganizationRepository,
	categories repository.CategoryRepository,
	normalizer *Normalizer,
	c cache.Cache,
	ttl time.Duration,
	fallback string,
) OrganizationService {
	return &organizationService{
		organizations: organizations,
		categories:    categories,
		normalizer:    normalizer,
		cache:         c,
		ttl:           ttl,
		fallback:      fallback,
	}
}

func (s *organizationService) GetDetail(ctx context.Context, slug string) ([]byte, error) {
	key := cache.Key("organization-detail", "slug="+slug)
	return cachedPayload(s.cache, key, s.ttl, func() (any, error) {
		return s.composeDetail(ctx, slug)
	})
}

func (s *organizationService) composeDetail(ctx context.Context, slug string) (organizationDetailPayload, error) {
	focal, err := s.organizations.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return organizationDetailPayload{}, ErrNotFound
		}
		return organizationDetailPayload{}, err
	}

	pool, err := s.organizations.ListActive(ctx)
	if err != nil {
		return organizationDetailPayload{}, err
	}

	related := RelatedTo(organizationCandidate(focal), organizationCandidates(pool), relatedLimit)
	byID := make(map[int64]model.AidOrganization, len(pool))
	for _, o := range pool {
		byID[o.ID] = o
	}
	relatedModels := make([]model.AidOrganization, 0, len(related))
	for _, r := range related {
		relatedModels = append(relatedModels, byID[r.ID])
	}

	categories, err := loadCategoryIndex(ctx, s.categories)
	if err != nil {
		return organizationDetailPayload{}, err
	}

	view, err := s.normalizer.NormalizeOrganization(ctx, focal, categories)
	if err != nil {
		return organizationDetailPayload{}, err
	}
	applyFallback(view.Title, s.fallback)

	relatedViews, err := s.normalizer.NormalizeOrganizations(ctx, relatedModels, categories)
	if err != nil {
		return organizationDetailPayload{}, err
	}
	if relatedViews == nil {
		relatedViews = []BilingualView{}
	}

	return organizationDetailPayload{
		Organization: view,
		Related:      relatedViews,
	}, nil
}

func organizationCandidate(o model.AidOrganization) RelatedCandidate {
	return RelatedCandidate{
		ID:         o.ID,
		Type:       o.Type,
		Categories: o.CategoryIDs,
		IsFeatured: o.IsFeatured,
		SortOrder:  o.SortOrder,
	}
}

func organizationCandidates(pool []model.AidOrganization) []RelatedCandidate {
	candidates := make([]RelatedCandidate, len(pool))
	for i, o := range pool {
		candidates[i] = organizationCandidate(o)
	}
	return candidates
}
