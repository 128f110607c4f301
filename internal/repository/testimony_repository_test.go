package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marsad/backend/internal/model"
	"marsad/backend/internal/repository"
	"marsad/backend/internal/repository/testutil"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &v
}

func TestTestimonyRepository_ListOrdering(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTestimonyRepository(conn)
	ctx := context.Background()

	older := testutil.SeedTestimony(t, conn, model.Testimony{
		Slug: "older", TitleKey: "t1", ContentKey: "c1",
		Date: datePtr(2024, 1, 1), IsActive: true, SortOrder: 2,
	})
	newer := testutil.SeedTestimony(t, conn, model.Testimony{
		Slug: "newer", TitleKey: "t2", ContentKey: "c2",
		Date: datePtr(2024, 6, 1), IsActive: true, SortOrder: 2,
	})
	featured := testutil.SeedTestimony(t, conn, model.Testimony{
		Slug: "featured", TitleKey: "t3", ContentKey: "c3",
		Date: datePtr(2023, 1, 1), IsActive: true, IsFeatured: true, SortOrder: 9,
	})
	testutil.SeedTestimony(t, conn, model.Testimony{
		Slug: "hidden", TitleKey: "t4", ContentKey: "c4", IsActive: false,
	})

	got, err := repo.List(ctx, repository.TestimonyListFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Featured leads even with the worst sort order; peers fall back to
	// newest date first.
	require.Equal(t, featured, got[0].ID)
	require.Equal(t, newer, got[1].ID)
	require.Equal(t, older, got[2].ID)
}

func TestTestimonyRepository_ListPagination(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTestimonyRepository(conn)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		testutil.SeedTestimony(t, conn, model.Testimony{
			Slug: "t-" + string(rune('a'+i)), TitleKey: "t", ContentKey: "c",
			IsActive: true, SortOrder: i,
		})
	}

	first, err := repo.List(ctx, repository.TestimonyListFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := repo.List(ctx, repository.TestimonyListFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, second, 2)
	require.NotEqual(t, first[0].ID, second[0].ID)

	last, err := repo.List(ctx, repository.TestimonyListFilter{Limit: 2, Offset: 4})
	require.NoError(t, err)
	require.Len(t, last, 1)
}

func TestTestimonyRepository_GetBySlugWithMedia(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTestimonyRepository(conn)
	ctx := context.Background()

	id := testutil.SeedTestimony(t, conn, model.Testimony{
		Slug: "voice-1", TitleKey: "t", ContentKey: "c",
		WitnessNameKey: stringPtr("w"), IsActive: true,
	})
	testutil.SeedMedia(t, conn, model.Media{
		OwnerType: "testimony", OwnerID: id,
		Provider: model.MediaProviderDrive, Reference: "1AbC", SortOrder: 1, IsActive: true,
	})
	testutil.SeedMedia(t, conn, model.Media{
		OwnerType: "testimony", OwnerID: id,
		Provider: model.MediaProviderUpload, Reference: "a.jpg", SortOrder: 0, IsActive: true,
	})

	got, err := repo.GetBySlug(ctx, "voice-1")
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.NotNil(t, got.WitnessNameKey)

	// Media ordered by sort_order.
	require.Len(t, got.Media, 2)
	require.Equal(t, "a.jpg", got.Media[0].Reference)
	require.Equal(t, "1AbC", got.Media[1].Reference)

	_, err = repo.GetBySlug(ctx, "voice-2")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTestimonyRepository_Count(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTestimonyRepository(conn)

	testutil.SeedTestimony(t, conn, model.Testimony{Slug: "a", TitleKey: "t", ContentKey: "c", IsActive: true})
	testutil.SeedTestimony(t, conn, model.Testimony{Slug: "b", TitleKey: "t", ContentKey: "c", IsActive: false})

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
