package service

import (
	"context"
	"time"

	"marsad/backend/internal/cache"
	"marsad/backend/internal/model"
	"marsad/backend/internal/repository"
)

type AidService interface {
	GetAidEfforts(ctx context.Context) ([]byte, error)
}

type aidPayload struct {
	Organizations []BilingualView `json:"organizations"`
	Initiatives   []BilingualView `json:"initiatives"`
}

type aidService struct {
	organizations repository.OrganizationRepository
	categories    repository.CategoryRepository
	normalizer    *Normalizer
	cache         cache.Cache
	ttl           time.Duration
	fallback      string
}

func NewAidService(
	organizations repository.OrganizationRepository,
	categories repository.CategoryRepository,
	normalizer *Normalizer,
	c cache.Cache,
	ttl time.Duration,
	fallback string,
) AidService {
	return &aidService{
		organizations: organizations,
		categories:    categories,
		normalizer:    normalizer,
		cache:         c,
		ttl:           ttl,
		fallback:      fallback,
	}
}

func (s *aidService) GetAidEfforts(ctx context.Context) ([]byte, error) {
	key := cache.Key("aid-efforts")
	return cachedPayload(s.cache, key, s.ttl, func() (any, error) {
		return s.compose(ctx)
	})
}

func (s *aidService) compose(ctx context.Context) (aidPayload, error) {
	orgs, err := s.organizations.ListActive(ctx)
	if err != nil {
		return aidPayload{}, err
	}

	categories, err := loadCategoryIndex(ctx, s.categories)
	if err != nil {
		return aidPayload{}, err
	}

	views, err := s.normalizer.NormalizeOrganizations(ctx, orgs, categories)
	if err != nil {
		return aidPayload{}, err
	}

	payload := aidPayload{
		Organizations: []BilingualView{},
		Initiatives:   []BilingualView{},
	}
	for i := range views {
		applyFallback(views[i].Title, s.fallback)
		switch views[i].Type {
		case model.OrgTypeInitiative:
			payload.Initiatives = append(payload.Initiatives, views[i])
		default:
			payload.Organizations = append(payload.Organizations, views[i])
		}
	}

	return payload, nil
}

func loadCategoryIndex(ctx context.Context, repo repository.CategoryRepository) (map[int64]model.Category, error) {
	categories, err := repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[int64]model.Category, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}
	return index, nil
}
