package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"marsad/backend/internal/model"
	"marsad/backend/internal/repository/mock"
	"marsad/backend/internal/service"
)

func stringPtr(s string) *string { return &s }

func TestTranslationStore_ResolveBatch_GroupsByLanguageThenKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockTranslationRepository(ctrl)
	store := service.NewTranslationStore(repo)
	ctx := context.Background()

	repo.EXPECT().
		ResolveBatch(ctx, []string{"home_title", "home_subtitle"}, []string{"en", "ar"}, nil).
		Return([]model.Translation{
			{Language: "en", Key: "home_title", Value: "Archive", IsActive: true},
			{Language: "ar", Key: "home_title", Value: "الأرشيف", IsActive: true},
			{Language: "en", Key: "home_subtitle", Value: "Documenting", IsActive: true},
		}, nil)

	resolved, err := store.ResolveBatch(ctx, []string{"home_title", "home_subtitle"}, []string{"en", "ar"}, nil)
	require.NoError(t, err)
	require.Equal(t, "Archive", resolved["en"]["home_title"])
	require.Equal(t, "الأرشيف", resolved["ar"]["home_title"])
	require.Equal(t, "Documenting", resolved["en"]["home_subtitle"])

	// No ar row for home_subtitle: the pair is absent, and reads as "".
	_, ok := resolved["ar"]["home_subtitle"]
	require.False(t, ok)
	require.Empty(t, resolved["ar"]["home_subtitle"])
}

func TestTranslationStore_ResolveBatch_EmptyKeysSkipsQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockTranslationRepository(ctrl)
	store := service.NewTranslationStore(repo)

	resolved, err := store.ResolveBatch(context.Background(), nil, []string{"en", "ar"}, nil)
	require.NoError(t, err)
	require.NotNil(t, resolved["en"])
	require.NotNil(t, resolved["ar"])
	require.Empty(t, resolved["en"])
}

func TestTranslationStore_Resolve_MissingIsEmptyString(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockTranslationRepository(ctrl)
	store := service.NewTranslationStore(repo)
	ctx := context.Background()

	repo.EXPECT().
		ResolveBatch(ctx, []string{"missing_key"}, []string{"en"}, nil).
		Return(nil, nil)

	value, err := store.Resolve(ctx, "missing_key", "en")
	require.NoError(t, err)
	require.Equal(t, "", value)
}

func TestTranslationStore_Resolve_PropagatesStorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockTranslationRepository(ctrl)
	store := service.NewTranslationStore(repo)
	ctx := context.Background()

	repo.EXPECT().
		ResolveBatch(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db gone"))

	_, err := store.Resolve(ctx, "home_title", "en")
	require.Error(t, err)
}

func TestTranslationStore_ResolveBatch_PassesGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockTranslationRepository(ctrl)
	store := service.NewTranslationStore(repo)
	ctx := context.Background()
	group := "about_page"

	repo.EXPECT().
		ResolveBatch(ctx, []string{"mission_title"}, []string{"en", "ar"}, &group).
		Return([]model.Translation{
			{Language: "en", Group: &group, Key: "mission_title", Value: "Our Mission", IsActive: true},
		}, nil)

	resolved, err := store.ResolveBatch(ctx, []string{"mission_title"}, []string{"en", "ar"}, &group)
	require.NoError(t, err)
	require.Equal(t, "Our Mission", resolved["en"]["mission_title"])
}
