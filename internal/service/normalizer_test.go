package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"marsad/backend/internal/media"
	"marsad/backend/internal/model"
	"marsad/backend/internal/repository/mock"
	"marsad/backend/internal/service"
)

func newNormalizer(t *testing.T) (*service.Normalizer, *mock.MockTranslationRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock.NewMockTranslationRepository(ctrl)
	store := service.NewTranslationStore(repo)
	return service.NewNormalizer(store, media.NewResolver("https://archive.example")), repo
}

func TestNormalizer_HomeSections_EnglishOnlyTranslation(t *testing.T) {
	normalizer, repo := newNormalizer(t)
	ctx := context.Background()

	// home_title exists in en only: ar resolves to "".
	repo.EXPECT().
		ResolveBatch(ctx, []string{"home_title"}, []string{"en", "ar"}, nil).
		Return([]model.Translation{
			{Language: "en", Key: "home_title", Value: "Archive", IsActive: true},
		}, nil)

	sections := []model.HomeSection{
		{ID: 1, SectionType: "hero", TitleKey: stringPtr("home_title")},
	}

	views, err := normalizer.NormalizeHomeSections(ctx, sections)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Title)
	require.Equal(t, "Archive", views[0].Title.En)
	require.Equal(t, "", views[0].Title.Ar)

	// No subtitle key on the entity: the field is omitted, not defaulted.
	require.Nil(t, views[0].Subtitle)
	require.Nil(t, views[0].ButtonText)
}

func TestNormalizer_Cases_BatchesKeysAcrossCollection(t *testing.T) {
	normalizer, repo := newNormalizer(t)
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	// One bulk resolve for the whole slice, not one per entity.
	repo.EXPECT().
		ResolveBatch(ctx, []string{"case_a_title", "case_a_desc", "case_b_title"}, []string{"en", "ar"}, nil).
		Return([]model.Translation{
			{Language: "en", Key: "case_a_title", Value: "Case A", IsActive: true},
			{Language: "ar", Key: "case_a_title", Value: "قضية أ", IsActive: true},
			{Language: "en", Key: "case_a_desc", Value: "<p>Details</p><script>x()</script>", IsActive: true},
			{Language: "en", Key: "case_b_title", Value: "Case B", IsActive: true},
		}, nil)

	cases := []model.Case{
		{ID: 10, Slug: "case-a", TitleKey: "case_a_title", DescriptionKey: stringPtr("case_a_desc"), Date: &date},
		{ID: 11, Slug: "case-b", TitleKey: "case_b_title"},
	}

	views, err := normalizer.NormalizeCases(ctx, cases)
	require.NoError(t, err)
	require.Len(t, views, 2)

	require.Equal(t, "case-a", views[0].Slug)
	require.Equal(t, "/cases/case-a", views[0].URL)
	require.Equal(t, "Case A", views[0].Title.En)
	require.Equal(t, "قضية أ", views[0].Title.Ar)
	require.Equal(t, "2024-03-15", views[0].Date)

	// Rich text is sanitized per language.
	require.Equal(t, "<p>Details</p>", views[0].Description.En)

	require.Equal(t, "Case B", views[1].Title.En)
	require.Nil(t, views[1].Description)
	require.Empty(t, views[1].Date)
}

func TestNormalizer_Testimonies_MissingTranslationsDegradeToEmpty(t *testing.T) {
	normalizer, repo := newNormalizer(t)
	ctx := context.Background()

	repo.EXPECT().
		ResolveBatch(ctx, gomock.Any(), []string{"en", "ar"}, nil).
		Return(nil, nil)

	views, err := normalizer.NormalizeTestimonies(ctx, []model.Testimony{
		{ID: 5, Slug: "t-1", TitleKey: "t1_title", ContentKey: "t1_content"},
	})
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, "", views[0].Title.En)
	require.Equal(t, "", views[0].Title.Ar)
	require.Equal(t, "", views[0].Content.En)
}

func TestNormalizer_Organizations_ResolvesCategoryNames(t *testing.T) {
	normalizer, repo := newNormalizer(t)
	ctx := context.Background()

	repo.EXPECT().
		ResolveBatch(ctx, []string{"org_a_name", "cat_medical"}, []string{"en", "ar"}, nil).
		Return([]model.Translation{
			{Language: "en", Key: "org_a_name", Value: "Relief Org", IsActive: true},
			{Language: "en", Key: "cat_medical", Value: "Medical", IsActive: true},
			{Language: "ar", Key: "cat_medical", Value: "طبي", IsActive: true},
		}, nil)

	orgs := []model.AidOrganization{
		{
			ID:          1,
			Slug:        "relief-org",
			Type:        model.OrgTypeOrganization,
			NameKey:     "org_a_name",
			WebsiteURL:  stringPtr("https://relief.example"),
			CategoryIDs: []int64{7},
		},
	}
	categories := map[int64]model.Category{
		7: {ID: 7, Slug: "medical", NameKey: "cat_medical"},
	}

	views, err := normalizer.NormalizeOrganizations(ctx, orgs, categories)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, "Relief Org", views[0].Title.En)
	require.Equal(t, "https://relief.example", views[0].WebsiteURL)
	require.Len(t, views[0].Categories, 1)
	require.Equal(t, "medical", views[0].Categories[0].Slug)
	require.Equal(t, "طبي", views[0].Categories[0].Name.Ar)
}

func TestNormalizer_AttachesResolvedMediaURLs(t *testing.T) {
	normalizer, repo := newNormalizer(t)
	ctx := context.Background()

	repo.EXPECT().
		ResolveBatch(ctx, gomock.Any(), gomock.Any(), nil).
		Return(nil, nil)

	cases := []model.Case{
		{
			ID:       1,
			Slug:     "with-media",
			TitleKey: "k",
			Media: []model.Media{
				{Provider: model.MediaProviderDrive, Reference: "abc123", IsActive: true},
			},
		},
	}

	views, err := normalizer.NormalizeCases(ctx, cases)
	require.NoError(t, err)
	require.Equal(t, "https://lh3.googleusercontent.com/d/abc123", views[0].Image)
	require.Equal(t, "https://lh3.googleusercontent.com/d/abc123=w400", views[0].Thumbnail)
}
