package service

import "sort"

// RelatedCandidate is the matching view of an entity: its type tag,
// category set, and ranking fields. Services map entities in and out by
// ID.
type RelatedCandidate struct {
	ID         int64
	Type       string
	Categories []int64
	IsFeatured bool
	SortOrder  int
}

// RelatedTo selects up to limit candidates related to focal: same type,
// or at least one shared category. The focal entity is always excluded.
// A focal entity with no categories degrades to type-only matching.
// Ranking is featured first, then sort order ascending; order beyond
// that follows the input.
func RelatedTo(focal RelatedCandidate, pool []RelatedCandidate, limit int) []RelatedCandidate {
	focalCategories := make(map[int64]struct{}, len(focal.Categories))
	for _, c := range focal.Categories {
		focalCategories[c] = struct{}{}
	}

	var matches []RelatedCandidate
	for _, candidate := range pool {
		if candidate.ID == focal.ID {
			continue
		}
		if candidate.Type == focal.Type || sharesCategory(focalCategories, candidate.Categories) {
			matches = append(matches, candidate)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].IsFeatured != matches[j].IsFeatured {
			return matches[i].IsFeatured
		}
		return matches[i].SortOrder < matches[j].SortOrder
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches
}

func sharesCategory(focal map[int64]struct{}, categories []int64) bool {
	for _, c := range categories {
		if _, ok := focal[c]; ok {
			return true
		}
	}
	return false
}
