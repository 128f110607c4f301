package service

import (
	"context"

	"marsad/backend/internal/repository"
)

// TranslationStore resolves translation keys into language-specific
// strings. Missing or inactive entries resolve to the empty string;
// errors are only storage failures, never missing content.
type TranslationStore interface {
	Resolve(ctx context.Context, key, language string) (string, error)
	// ResolveBatch resolves all (language, key) pairs in one bulk read,
	// grouped language then key. Pairs with no active row are absent
	// from the result.
	ResolveBatch(ctx context.Context, keys []string, languages []string, group *string) (map[string]map[string]string, error)
}

type translationStore struct {
	repo repository.TranslationRepository
}

func NewTranslationStore(repo repository.TranslationRepository) TranslationStore {
	return &translationStore{repo: repo}
}

func (s *translationStore) Resolve(ctx context.Context, key, language string) (string, error) {
	resolved, err := s.ResolveBatch(ctx, []string{key}, []string{language}, nil)
	if err != nil {
		return "", err
	}
	return resolved[language][key], nil
}

func (s *translationStore) ResolveBatch(ctx context.Context, keys []string, languages []string, group *string) (map[string]map[string]string, error) {
	result := make(map[string]map[string]string, len(languages))
	for _, lang := range languages {
		result[lang] = make(map[string]string, len(keys))
	}
	if len(keys) == 0 {
		return result, nil
	}

	rows, err := s.repo.ResolveBatch(ctx, keys, languages, group)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		byKey, ok := result[row.Language]
		if !ok {
			continue
		}
		byKey[row.Key] = row.Value
	}

	return result, nil
}
