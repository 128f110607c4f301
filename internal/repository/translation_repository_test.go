package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"marsad/backend/internal/model"
	"marsad/backend/internal/repository"
	"marsad/backend/internal/repository/testutil"
)

func stringPtr(s string) *string { return &s }

func TestTranslationRepository_ResolveBatch(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(conn)
	ctx := context.Background()

	testutil.SeedTranslation(t, conn, model.Translation{Language: "en", Key: "home_title", Value: "Archive", IsActive: true})
	testutil.SeedTranslation(t, conn, model.Translation{Language: "ar", Key: "home_title", Value: "الأرشيف", IsActive: true})
	testutil.SeedTranslation(t, conn, model.Translation{Language: "en", Key: "home_subtitle", Value: "Voices", IsActive: true})

	got, err := repo.ResolveBatch(ctx, []string{"home_title", "home_subtitle"}, []string{"en", "ar"}, nil)
	require.NoError(t, err)
	require.Len(t, got, 3)

	byPair := make(map[string]string, len(got))
	for _, tr := range got {
		byPair[tr.Language+"/"+tr.Key] = tr.Value
	}
	require.Equal(t, "Archive", byPair["en/home_title"])
	require.Equal(t, "الأرشيف", byPair["ar/home_title"])
	require.Equal(t, "Voices", byPair["en/home_subtitle"])
}

func TestTranslationRepository_InactiveRowsExcluded(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(conn)
	ctx := context.Background()

	testutil.SeedTranslation(t, conn, model.Translation{Language: "en", Key: "draft_title", Value: "Draft", IsActive: false})
	testutil.SeedTranslation(t, conn, model.Translation{Language: "ar", Key: "draft_title", Value: "مسودة", IsActive: true})

	got, err := repo.ResolveBatch(ctx, []string{"draft_title"}, []string{"en", "ar"}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "ar", got[0].Language)
}

func TestTranslationRepository_GroupBucketsAreDistinct(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(conn)
	ctx := context.Background()

	// Same key in the ungrouped bucket and in a named group.
	testutil.SeedTranslation(t, conn, model.Translation{Language: "en", Key: "mission_title", Value: "Ungrouped", IsActive: true})
	testutil.SeedTranslation(t, conn, model.Translation{Language: "en", Group: stringPtr("about_page"), Key: "mission_title", Value: "Grouped", IsActive: true})

	ungrouped, err := repo.ResolveBatch(ctx, []string{"mission_title"}, []string{"en"}, nil)
	require.NoError(t, err)
	require.Len(t, ungrouped, 1)
	require.Equal(t, "Ungrouped", ungrouped[0].Value)

	grouped, err := repo.ResolveBatch(ctx, []string{"mission_title"}, []string{"en"}, stringPtr("about_page"))
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	require.Equal(t, "Grouped", grouped[0].Value)

	other, err := repo.ResolveBatch(ctx, []string{"mission_title"}, []string{"en"}, stringPtr("footer"))
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestTranslationRepository_EmptyKeysReturnNothing(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(conn)

	got, err := repo.ResolveBatch(context.Background(), nil, []string{"en"}, nil)
	require.NoError(t, err)
	require.Empty(t, got)
}
