package repository

import (
	"context"

	"marsad/backend/internal/model"
)

const organizationOwnerType = "organization"

type OrganizationRepository interface {
	// ListActive returns all active organizations with category IDs and
	// media eager-loaded, ordered featured-first then by sort order.
	ListActive(ctx context.Context) ([]model.AidOrganization, error)
	GetBySlug(ctx context.Context, slug string) (model.AidOrganization, error)
	Count(ctx context.Context) (int, error)
}

type organizationRepository struct {
	db dbtx
}

func NewOrganizationRepository(db dbtx) OrganizationRepository {
	return &organizationRepository{db: db}
}

const organizationColumns = `id, slug, type, name_key, description_key, website_url, donation_url, is_active, is_featured, sort_order, created_at, updated_at`

func (r *organizationRepository) ListActive(ctx context.Context) ([]model.AidOrganization, error) {
	query := `SELECT ` + organizationColumns + `
		 FROM aid_organizations
		 WHERE is_active = 1
		 ORDER BY is_featured DESC, sort_order ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []model.AidOrganization
	for rows.Next() {
		o, err := scanOrganizationRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachRelations(ctx, orgs); err != nil {
		return nil, err
	}

	return orgs, nil
}

func (r *organizationRepository) GetBySlug(ctx context.Context, slug string) (model.AidOrganization, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+organizationColumns+` FROM aid_organizations WHERE is_active = 1 AND slug = ?`,
		slug,
	)

	o, err := scanOrganizationRow(row.Scan)
	if err != nil {
		return model.AidOrganization{}, err
	}

	orgs := []model.AidOrganization{o}
	if err := r.attachRelations(ctx, orgs); err != nil {
		return model.AidOrganization{}, err
	}

	return orgs[0], nil
}

func (r *organizationRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM aid_organizations WHERE is_active = 1`).Scan(&count)
	return count, err
}

func (r *organizationRepository) attachRelations(ctx context.Context, orgs []model.AidOrganization) error {
	if len(orgs) == 0 {
		return nil
	}

	ids := make([]int64, len(orgs))
	for i, o := range orgs {
		ids[i] = o.ID
	}

	query := `SELECT organization_id, category_id FROM organization_categories
		 WHERE organization_id IN (` + placeholders(len(ids)) + `)
		 ORDER BY category_id ASC`

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	categories := make(map[int64][]int64)
	for rows.Next() {
		var orgID, catID int64
		if err := rows.Scan(&orgID, &catID); err != nil {
			return err
		}
		categories[orgID] = append(categories[orgID], catID)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	media, err := loadMediaForOwners(ctx, r.db, organizationOwnerType, ids)
	if err != nil {
		return err
	}

	for i := range orgs {
		orgs[i].CategoryIDs = categories[orgs[i].ID]
		orgs[i].Media = media[orgs[i].ID]
	}

	return nil
}

func scanOrganizationRow(scan func(dest ...any) error) (model.AidOrganization, error) {
	var o model.AidOrganization
	var isActive, isFeatured int
	var createdAt, updatedAt string

	err := scan(&o.ID, &o.Slug, &o.Type, &o.NameKey, &o.DescriptionKey, &o.WebsiteURL, &o.DonationURL, &isActive, &isFeatured, &o.SortOrder, &createdAt, &updatedAt)
	if err != nil {
		return model.AidOrganization{}, err
	}

	o.IsActive = isActive == 1
	o.IsFeatured = isFeatured == 1
	o.CreatedAt, _ = parseTime(createdAt)
	o.UpdatedAt, _ = parseTime(updatedAt)

	return o, nil
}
