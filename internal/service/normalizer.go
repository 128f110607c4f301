package service

import (
	"context"
	"strconv"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"marsad/backend/internal/media"
	"marsad/backend/internal/model"
)

// Languages served by the archive. Every localized field resolves for all
// of them in one batch.
var languages = []string{"en", "ar"}

const dateLayout = "2006-01-02"

// Normalizer turns content entities into BilingualViews: it batches the
// entity's *_key fields through the TranslationStore, attaches resolved
// media URLs, and formats pass-through scalars. A key with no active
// translation yields empty strings, never an error.
type Normalizer struct {
	translations TranslationStore
	media        *media.Resolver
	richText     *bluemonday.Policy
}

func NewNormalizer(translations TranslationStore, resolver *media.Resolver) *Normalizer {
	return &Normalizer{
		translations: translations,
		media:        resolver,
		richText:     bluemonday.UGCPolicy(),
	}
}

// lookup is the client-side grouping of one ResolveBatch call:
// language -> key -> value.
type lookup map[string]map[string]string

func (n *Normalizer) resolve(ctx context.Context, keys []string) (lookup, error) {
	resolved, err := n.translations.ResolveBatch(ctx, dedupe(keys), languages, nil)
	if err != nil {
		return nil, err
	}
	return lookup(resolved), nil
}

func (l lookup) text(key string) *LocalizedText {
	return &LocalizedText{
		En: l["en"][key],
		Ar: l["ar"][key],
	}
}

// textPtr omits the field entirely when the entity has no key for it.
func (l lookup) textPtr(key *string) *LocalizedText {
	if key == nil {
		return nil
	}
	return l.text(*key)
}

func (n *Normalizer) sanitize(t *LocalizedText) *LocalizedText {
	if t == nil {
		return nil
	}
	return &LocalizedText{
		En: n.richText.Sanitize(t.En),
		Ar: n.richText.Sanitize(t.Ar),
	}
}

func (n *Normalizer) NormalizeCases(ctx context.Context, cases []model.Case) ([]BilingualView, error) {
	var keys []string
	for _, c := range cases {
		keys = appendKeys(keys, &c.TitleKey, c.DescriptionKey)
	}

	resolved, err := n.resolve(ctx, keys)
	if err != nil {
		return nil, err
	}

	views := make([]BilingualView, len(cases))
	for i, c := range cases {
		v := BilingualView{
			ID:          strconv.FormatInt(c.ID, 10),
			Slug:        c.Slug,
			URL:         "/cases/" + c.Slug,
			Title:       resolved.text(c.TitleKey),
			Description: n.sanitize(resolved.textPtr(c.DescriptionKey)),
			Date:        formatDate(c.Date),
			IsFeatured:  c.IsFeatured,
		}
		n.attachMedia(&v, c.Media)
		views[i] = v
	}

	return views, nil
}

func (n *Normalizer) NormalizeStories(ctx context.Context, stories []model.Story) ([]BilingualView, error) {
	var keys []string
	for _, s := range stories {
		keys = appendKeys(keys, &s.TitleKey, s.ExcerptKey, s.BodyKey)
	}

	resolved, err := n.resolve(ctx, keys)
	if err != nil {
		return nil, err
	}

	views := make([]BilingualView, len(stories))
	for i, s := range stories {
		v := BilingualView{
			ID:         strconv.FormatInt(s.ID, 10),
			Slug:       s.Slug,
			URL:        "/stories/" + s.Slug,
			Title:      resolved.text(s.TitleKey),
			Excerpt:    n.sanitize(resolved.textPtr(s.ExcerptKey)),
			Content:    n.sanitize(resolved.textPtr(s.BodyKey)),
			Date:       formatDate(s.Date),
			IsFeatured: s.IsFeatured,
		}
		n.attachMedia(&v, s.Media)
		views[i] = v
	}

	return views, nil
}

func (n *Normalizer) NormalizeTestimonies(ctx context.Context, testimonies []model.Testimony) ([]BilingualView, error) {
	var keys []string
	for _, t := range testimonies {
		keys = appendKeys(keys, &t.TitleKey, &t.ContentKey, t.WitnessNameKey, t.LocationKey)
	}

	resolved, err := n.resolve(ctx, keys)
	if err != nil {
		return nil, err
	}

	views := make([]BilingualView, len(testimonies))
	for i, t := range testimonies {
		v := BilingualView{
			ID:          strconv.FormatInt(t.ID, 10),
			Slug:        t.Slug,
			URL:         "/testimonies/" + t.Slug,
			Title:       resolved.text(t.TitleKey),
			Content:     n.sanitize(resolved.text(t.ContentKey)),
			WitnessName: resolved.textPtr(t.WitnessNameKey),
			Location:    resolved.textPtr(t.LocationKey),
			Date:        formatDate(t.Date),
			IsFeatured:  t.IsFeatured,
		}
		n.attachMedia(&v, t.Media)
		views[i] = v
	}

	return views, nil
}

func (n *Normalizer) NormalizeTestimony(ctx context.Context, t model.Testimony) (BilingualView, error) {
	views, err := n.NormalizeTestimonies(ctx, []model.Testimony{t})
	if err != nil {
		return BilingualView{}, err
	}
	return views[0], nil
}

// NormalizeOrganizations resolves org keys and the name keys of every
// referenced category in the same batch.
func (n *Normalizer) NormalizeOrganizations(ctx context.Context, orgs []model.AidOrganization, categories map[int64]model.Category) ([]BilingualView, error) {
	var keys []string
	for _, o := range orgs {
		keys = appendKeys(keys, &o.NameKey, o.DescriptionKey)
		for _, catID := range o.CategoryIDs {
			if cat, ok := categories[catID]; ok {
				keys = append(keys, cat.NameKey)
			}
		}
	}

	resolved, err := n.resolve(ctx, keys)
	if err != nil {
		return nil, err
	}

	views := make([]BilingualView, len(orgs))
	for i, o := range orgs {
		v := BilingualView{
			ID:          strconv.FormatInt(o.ID, 10),
			Slug:        o.Slug,
			Type:        o.Type,
			URL:         "/aid/" + o.Slug,
			Title:       resolved.text(o.NameKey),
			Description: n.sanitize(resolved.textPtr(o.DescriptionKey)),
			IsFeatured:  o.IsFeatured,
		}
		if o.WebsiteURL != nil {
			v.WebsiteURL = *o.WebsiteURL
		}
		if o.DonationURL != nil {
			v.DonationURL = *o.DonationURL
		}
		for _, catID := range o.CategoryIDs {
			cat, ok := categories[catID]
			if !ok {
				continue
			}
			v.Categories = append(v.Categories, CategoryView{
				Slug: cat.Slug,
				Name: *resolved.text(cat.NameKey),
			})
		}
		n.attachMedia(&v, o.Media)
		views[i] = v
	}

	return views, nil
}

func (n *Normalizer) NormalizeOrganization(ctx context.Context, o model.AidOrganization, categories map[int64]model.Category) (BilingualView, error) {
	views, err := n.NormalizeOrganizations(ctx, []model.AidOrganization{o}, categories)
	if err != nil {
		return BilingualView{}, err
	}
	return views[0], nil
}

func (n *Normalizer) NormalizeTimelineEvents(ctx context.Context, events []model.TimelineEvent) ([]BilingualView, error) {
	var keys []string
	for _, e := range events {
		keys = appendKeys(keys, &e.TitleKey, e.DescriptionKey)
	}

	resolved, err := n.resolve(ctx, keys)
	if err != nil {
		return nil, err
	}

	views := make([]BilingualView, len(events))
	for i, e := range events {
		date := e.Date
		views[i] = BilingualView{
			ID:          strconv.FormatInt(e.ID, 10),
			Title:       resolved.text(e.TitleKey),
			Description: n.sanitize(resolved.textPtr(e.DescriptionKey)),
			Date:        formatDate(&date),
		}
	}

	return views, nil
}

func (n *Normalizer) NormalizeHomeSections(ctx context.Context, sections []model.HomeSection) ([]BilingualView, error) {
	var keys []string
	for _, s := range sections {
		keys = appendKeys(keys, nil, s.TitleKey, s.SubtitleKey, s.ButtonTextKey)
	}

	resolved, err := n.resolve(ctx, keys)
	if err != nil {
		return nil, err
	}

	views := make([]BilingualView, len(sections))
	for i, s := range sections {
		v := BilingualView{
			ID:         strconv.FormatInt(s.ID, 10),
			Type:       s.SectionType,
			Title:      resolved.textPtr(s.TitleKey),
			Subtitle:   resolved.textPtr(s.SubtitleKey),
			ButtonText: resolved.textPtr(s.ButtonTextKey),
		}
		if s.ButtonURL != nil {
			v.ButtonURL = *s.ButtonURL
		}
		views[i] = v
	}

	return views, nil
}

func (n *Normalizer) attachMedia(v *BilingualView, items []model.Media) {
	if len(items) == 0 {
		return
	}
	v.Image = n.media.URL(items[0])
	v.Thumbnail = n.media.Thumbnail(items[0])
}

// appendKeys collects one required key plus optional keys, skipping nils.
func appendKeys(keys []string, required *string, optional ...*string) []string {
	if required != nil {
		keys = append(keys, *required)
	}
	for _, k := range optional {
		if k != nil {
			keys = append(keys, *k)
		}
	}
	return keys
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := keys[:0:0]
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
