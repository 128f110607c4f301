package model

import "time"

// Media provider kinds. Reference is interpreted per provider: a storage
// path for uploads, a full URL for external links, a file ID for drive.
const (
	MediaProviderUpload   = "upload"
	MediaProviderExternal = "external"
	MediaProviderDrive    = "drive"
)

type Media struct {
	ID        int64
	OwnerType string
	OwnerID   int64
	Provider  string
	Reference string
	AltKey    *string
	SortOrder int
	IsActive  bool
	CreatedAt time.Time
}
