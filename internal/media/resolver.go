// Package media maps stored media references to direct URLs per provider
// kind: uploaded files, external links, and drive-hosted files by ID.
package media

import (
	"strings"

	"marsad/backend/internal/model"
)

const driveImageBase = "https://lh3.googleusercontent.com/d/"

// Resolver turns a stored media reference into a direct URL. Uploads are
// served under BaseURL/storage; drive references use the googleusercontent
// image host, which serves raw bytes without the interstitial viewer page.
type Resolver struct {
	BaseURL string
}

func NewResolver(baseURL string) *Resolver {
	return &Resolver{BaseURL: strings.TrimSuffix(baseURL, "/")}
}

func (r *Resolver) URL(m model.Media) string {
	switch m.Provider {
	case model.MediaProviderUpload:
		return r.BaseURL + "/storage/" + strings.TrimPrefix(m.Reference, "/")
	case model.MediaProviderExternal:
		return m.Reference
	case model.MediaProviderDrive:
		return driveImageBase + driveFileID(m.Reference)
	default:
		return ""
	}
}

// Thumbnail returns a reduced-size URL where the provider supports it,
// falling back to the full URL otherwise.
func (r *Resolver) Thumbnail(m model.Media) string {
	if m.Provider == model.MediaProviderDrive {
		return driveImageBase + driveFileID(m.Reference) + "=w400"
	}
	return r.URL(m)
}

// driveFileID accepts either a bare file ID or a full drive URL of the
// form .../file/d/{id}/view or ...?id={id}.
func driveFileID(reference string) string {
	if !strings.Contains(reference, "/") && !strings.Contains(reference, "=") {
		return reference
	}
	if i := strings.Index(reference, "/d/"); i >= 0 {
		rest := reference[i+len("/d/"):]
		if j := strings.IndexAny(rest, "/?"); j >= 0 {
			return rest[:j]
		}
		return rest
	}
	if i := strings.Index(reference, "id="); i >= 0 {
		rest := reference[i+len("id="):]
		if j := strings.IndexAny(rest, "&#"); j >= 0 {
			return rest[:j]
		}
		return rest
	}
	return reference
}
