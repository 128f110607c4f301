package service

import "sort"

// Sort-order bands for generated section groups, chosen so curated home
// sections (which carry their own stored sort order) interleave with
// generated groups deterministically.
const (
	bandFeaturedCases     = 100
	bandFeaturedStories   = 150
	bandLatestTestimonies = 200
	bandTimelineBase      = 300
)

// Section is one unit of a composed feed. SortOrder positions it and is
// stripped before the section reaches callers.
type Section struct {
	ID        string
	Type      string
	SortOrder int
	Content   any
}

// ComposedSection is the caller-facing shape: same as Section minus the
// ordering key.
type ComposedSection struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Content any    `json:"content"`
}

// Compose stable-sorts sections ascending by sort order (insertion order
// breaks ties) and strips the ordering key. A section with nil content —
// a source type no shaping rule recognized — passes through with an empty
// content object so the omission stays visible downstream.
func Compose(sections []Section) []ComposedSection {
	ordered := make([]Section, len(sections))
	copy(ordered, sections)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SortOrder < ordered[j].SortOrder
	})

	out := make([]ComposedSection, len(ordered))
	for i, s := range ordered {
		content := s.Content
		if content == nil {
			content = struct{}{}
		}
		out[i] = ComposedSection{
			ID:      s.ID,
			Type:    s.Type,
			Content: content,
		}
	}

	return out
}

// SectionList wraps multi-item generated groups (galleries, bands) so
// their content shape is distinct from single-item sections.
type SectionList struct {
	Items []BilingualView `json:"items"`
}
