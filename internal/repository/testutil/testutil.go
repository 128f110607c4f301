// Package testutil provides an in-memory database and seed helpers for
// repository tests.
package testutil

import (
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marsad/backend/internal/db"
	"marsad/backend/internal/model"
	"marsad/backend/internal/snowflake"
)

var initOnce sync.Once

// NewTestDB opens a fresh in-memory sqlite database with the full schema
// applied. The connection is closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	initOnce.Do(func() {
		if err := snowflake.Init(1); err != nil {
			t.Fatalf("init snowflake: %v", err)
		}
	})

	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, db.Migrate(conn))
	return conn
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SeedTranslation inserts one translation row and returns its ID.
func SeedTranslation(t *testing.T, conn *sql.DB, tr model.Translation) int64 {
	t.Helper()

	id := snowflake.NextID()
	_, err := conn.Exec(
		`INSERT INTO translations (id, language, group_name, key, value, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, tr.Language, tr.Group, tr.Key, tr.Value, boolInt(tr.IsActive), now(), now(),
	)
	require.NoError(t, err)
	return id
}

func SeedCase(t *testing.T, conn *sql.DB, c model.Case) int64 {
	t.Helper()

	id := snowflake.NextID()
	var date *string
	if c.Date != nil {
		d := c.Date.UTC().Format(time.RFC3339)
		date = &d
	}
	_, err := conn.Exec(
		`INSERT INTO cases (id, slug, title_key, description_key, date, is_active, is_featured, sort_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, c.Slug, c.TitleKey, c.DescriptionKey, date, boolInt(c.IsActive), boolInt(c.IsFeatured), c.SortOrder, now(), now(),
	)
	require.NoError(t, err)
	return id
}

func SeedTestimony(t *testing.T, conn *sql.DB, ty model.Testimony) int64 {
	t.Helper()

	id := snowflake.NextID()
	var date *string
	if ty.Date != nil {
		d := ty.Date.UTC().Format(time.RFC3339)
		date = &d
	}
	_, err := conn.Exec(
		`INSERT INTO testimonies (id, slug, title_key, content_key, witness_name_key, location_key, date, is_active, is_featured, sort_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, ty.Slug, ty.TitleKey, ty.ContentKey, ty.WitnessNameKey, ty.LocationKey, date, boolInt(ty.IsActive), boolInt(ty.IsFeatured), ty.SortOrder, now(), now(),
	)
	require.NoError(t, err)
	return id
}

func SeedOrganization(t *testing.T, conn *sql.DB, o model.AidOrganization) int64 {
	t.Helper()

	id := snowflake.NextID()
	_, err := conn.Exec(
		`INSERT INTO aid_organizations (id, slug, type, name_key, description_key, website_url, donation_url, is_active, is_featured, sort_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, o.Slug, o.Type, o.NameKey, o.DescriptionKey, o.WebsiteURL, o.DonationURL, boolInt(o.IsActive), boolInt(o.IsFeatured), o.SortOrder, now(), now(),
	)
	require.NoError(t, err)

	for _, catID := range o.CategoryIDs {
		_, err := conn.Exec(
			`INSERT INTO organization_categories (organization_id, category_id) VALUES (?, ?)`,
			id, catID,
		)
		require.NoError(t, err)
	}

	return id
}

func SeedCategory(t *testing.T, conn *sql.DB, c model.Category) int64 {
	t.Helper()

	id := snowflake.NextID()
	_, err := conn.Exec(
		`INSERT INTO categories (id, slug, name_key) VALUES (?, ?, ?)`,
		id, c.Slug, c.NameKey,
	)
	require.NoError(t, err)
	return id
}

func SeedHomeSection(t *testing.T, conn *sql.DB, s model.HomeSection) int64 {
	t.Helper()

	id := snowflake.NextID()
	_, err := conn.Exec(
		`INSERT INTO home_sections (id, section_type, title_key, subtitle_key, button_text_key, button_url, sort_order, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, s.SectionType, s.TitleKey, s.SubtitleKey, s.ButtonTextKey, s.ButtonURL, s.SortOrder, boolInt(s.IsActive), now(), now(),
	)
	require.NoError(t, err)
	return id
}

func SeedTimelineEvent(t *testing.T, conn *sql.DB, e model.TimelineEvent) int64 {
	t.Helper()

	id := snowflake.NextID()
	_, err := conn.Exec(
		`INSERT INTO timeline_events (id, title_key, description_key, date, sort_order, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, e.TitleKey, e.DescriptionKey, e.Date.UTC().Format(time.RFC3339), e.SortOrder, boolInt(e.IsActive), now(), now(),
	)
	require.NoError(t, err)
	return id
}

func SeedMedia(t *testing.T, conn *sql.DB, m model.Media) int64 {
	t.Helper()

	id := snowflake.NextID()
	_, err := conn.Exec(
		`INSERT INTO media (id, owner_type, owner_id, provider, reference, alt_key, sort_order, is_active, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, m.OwnerType, m.OwnerID, m.Provider, m.Reference, m.AltKey, m.SortOrder, boolInt(m.IsActive), now(),
	)
	require.NoError(t, err)
	return id
}
