package model

import "time"

// AidOrganization type tags.
const (
	OrgTypeOrganization = "organizations"
	OrgTypeInitiative   = "initiatives"
)

type AidOrganization struct {
	ID             int64
	Slug           string
	Type           string
	NameKey        string
	DescriptionKey *string
	WebsiteURL     *string
	DonationURL    *string
	IsActive       bool
	IsFeatured     bool
	SortOrder      int
	CategoryIDs    []int64
	Media          []Media
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Category struct {
	ID      int64
	Slug    string
	NameKey string
}
