package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"marsad/backend/internal/model"
	"marsad/backend/internal/repository"
	"marsad/backend/internal/repository/testutil"
)

func TestOrganizationRepository_ListActiveOrderAndRelations(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewOrganizationRepository(conn)
	ctx := context.Background()

	catMedical := testutil.SeedCategory(t, conn, model.Category{Slug: "medical", NameKey: "cat_medical"})
	catFood := testutil.SeedCategory(t, conn, model.Category{Slug: "food", NameKey: "cat_food"})

	plain := testutil.SeedOrganization(t, conn, model.AidOrganization{
		Slug: "plain", Type: model.OrgTypeOrganization, NameKey: "org_plain",
		IsActive: true, SortOrder: 1,
	})
	featured := testutil.SeedOrganization(t, conn, model.AidOrganization{
		Slug: "featured", Type: model.OrgTypeOrganization, NameKey: "org_featured",
		IsActive: true, IsFeatured: true, SortOrder: 5,
		CategoryIDs: []int64{catMedical, catFood},
	})
	testutil.SeedOrganization(t, conn, model.AidOrganization{
		Slug: "hidden", Type: model.OrgTypeInitiative, NameKey: "org_hidden",
		IsActive: false,
	})

	testutil.SeedMedia(t, conn, model.Media{
		OwnerType: "organization", OwnerID: featured,
		Provider: model.MediaProviderUpload, Reference: "logos/featured.png",
		IsActive: true,
	})

	got, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Featured first despite higher sort order.
	require.Equal(t, featured, got[0].ID)
	require.Equal(t, plain, got[1].ID)

	require.ElementsMatch(t, []int64{catMedical, catFood}, got[0].CategoryIDs)
	require.Len(t, got[0].Media, 1)
	require.Equal(t, "logos/featured.png", got[0].Media[0].Reference)

	require.Empty(t, got[1].CategoryIDs)
	require.Empty(t, got[1].Media)
}

func TestOrganizationRepository_GetBySlug(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewOrganizationRepository(conn)
	ctx := context.Background()

	cat := testutil.SeedCategory(t, conn, model.Category{Slug: "legal", NameKey: "cat_legal"})
	id := testutil.SeedOrganization(t, conn, model.AidOrganization{
		Slug: "relief-now", Type: model.OrgTypeInitiative, NameKey: "org_relief",
		WebsiteURL: stringPtr("https://relief.example"),
		IsActive:   true, CategoryIDs: []int64{cat},
	})

	got, err := repo.GetBySlug(ctx, "relief-now")
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, model.OrgTypeInitiative, got.Type)
	require.Equal(t, []int64{cat}, got.CategoryIDs)
	require.NotNil(t, got.WebsiteURL)
	require.Equal(t, "https://relief.example", *got.WebsiteURL)
}

func TestOrganizationRepository_GetBySlugMissing(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewOrganizationRepository(conn)

	_, err := repo.GetBySlug(context.Background(), "nope")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestOrganizationRepository_GetBySlugInactive(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewOrganizationRepository(conn)

	testutil.SeedOrganization(t, conn, model.AidOrganization{
		Slug: "retired", Type: model.OrgTypeOrganization, NameKey: "org_retired",
		IsActive: false,
	})

	_, err := repo.GetBySlug(context.Background(), "retired")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestOrganizationRepository_Count(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewOrganizationRepository(conn)

	testutil.SeedOrganization(t, conn, model.AidOrganization{Slug: "a", Type: model.OrgTypeOrganization, NameKey: "k", IsActive: true})
	testutil.SeedOrganization(t, conn, model.AidOrganization{Slug: "b", Type: model.OrgTypeOrganization, NameKey: "k", IsActive: false})

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
