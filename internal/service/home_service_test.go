package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"marsad/backend/internal/cache"
	"marsad/backend/internal/media"
	"marsad/backend/internal/model"
	"marsad/backend/internal/repository/mock"
	"marsad/backend/internal/service"
)

type homeFixture struct {
	sections    *mock.MockHomeSectionRepository
	cases       *mock.MockCaseRepository
	stories     *mock.MockStoryRepository
	testimonies *mock.MockTestimonyRepository
	timeline    *mock.MockTimelineRepository
	cache       *cache.Memory
	service     service.HomeService
}

func newHomeFixture(t *testing.T) homeFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	translationRepo := mock.NewMockTranslationRepository(ctrl)
	translationRepo.EXPECT().
		ResolveBatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	f := homeFixture{
		sections:    mock.NewMockHomeSectionRepository(ctrl),
		cases:       mock.NewMockCaseRepository(ctrl),
		stories:     mock.NewMockStoryRepository(ctrl),
		testimonies: mock.NewMockTestimonyRepository(ctrl),
		timeline:    mock.NewMockTimelineRepository(ctrl),
		cache:       cache.NewMemory(),
	}

	store := service.NewTranslationStore(translationRepo)
	normalizer := service.NewNormalizer(store, media.NewResolver("https://archive.example"))
	f.service = service.NewHomeService(f.sections, f.cases, f.stories, f.testimonies, f.timeline, normalizer, f.cache, 15*time.Minute, "Marsad Archive")
	return f
}

type homeSectionsOut struct {
	Sections []struct {
		ID      string          `json:"id"`
		Type    string          `json:"type"`
		Content json.RawMessage `json:"content"`
	} `json:"sections"`
}

func TestHomeService_SectionsSortedRegardlessOfQueryOrder(t *testing.T) {
	f := newHomeFixture(t)
	ctx := context.Background()

	// Stored order 300, 100, 200 must come out 100, 200, 300.
	f.sections.EXPECT().ListActive(ctx).Return([]model.HomeSection{
		{ID: 3, SectionType: "cta", SortOrder: 300},
		{ID: 1, SectionType: "hero", SortOrder: 100},
		{ID: 2, SectionType: "stats", SortOrder: 200},
	}, nil)
	f.cases.EXPECT().ListFeatured(ctx, 6).Return(nil, nil)
	f.stories.EXPECT().ListFeatured(ctx, 4).Return(nil, nil)
	f.testimonies.EXPECT().ListLatest(ctx, 3).Return(nil, nil)
	f.timeline.EXPECT().ListActive(ctx).Return(nil, nil)

	b, err := f.service.GetHome(ctx)
	require.NoError(t, err)

	var out homeSectionsOut
	require.NoError(t, json.Unmarshal(b, &out))
	require.Len(t, out.Sections, 3)
	require.Equal(t, "hero", out.Sections[0].Type)
	require.Equal(t, "stats", out.Sections[1].Type)
	require.Equal(t, "cta", out.Sections[2].Type)

	require.NotContains(t, string(b), "sort_order")
}

func TestHomeService_GeneratedBandsInterleaveWithCurated(t *testing.T) {
	f := newHomeFixture(t)
	ctx := context.Background()

	f.sections.EXPECT().ListActive(ctx).Return([]model.HomeSection{
		{ID: 1, SectionType: "hero", SortOrder: 10},
		{ID: 2, SectionType: "cta", SortOrder: 120},
	}, nil)
	f.cases.EXPECT().ListFeatured(ctx, 6).Return([]model.Case{
		{ID: 20, Slug: "case-x", TitleKey: "k1", IsFeatured: true},
	}, nil)
	f.stories.EXPECT().ListFeatured(ctx, 4).Return([]model.Story{
		{ID: 25, Slug: "story-x", TitleKey: "k5", IsFeatured: true},
	}, nil)
	f.testimonies.EXPECT().ListLatest(ctx, 3).Return([]model.Testimony{
		{ID: 30, Slug: "t-x", TitleKey: "k2", ContentKey: "k3"},
	}, nil)
	f.timeline.EXPECT().ListActive(ctx).Return([]model.TimelineEvent{
		{ID: 40, TitleKey: "k4", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	b, err := f.service.GetHome(ctx)
	require.NoError(t, err)

	var out homeSectionsOut
	require.NoError(t, json.Unmarshal(b, &out))

	types := make([]string, len(out.Sections))
	for i, s := range out.Sections {
		types[i] = s.Type
	}

	// hero(10) < featured_cases(100) < cta(120) < featured_stories(150)
	// < latest_testimonies(200) < timeline_event(300).
	require.Equal(t, []string{"hero", "featured_cases", "cta", "featured_stories", "latest_testimonies", "timeline_event"}, types)
}

func TestHomeService_EmptyGroupsEmitNoSections(t *testing.T) {
	f := newHomeFixture(t)
	ctx := context.Background()

	f.sections.EXPECT().ListActive(ctx).Return(nil, nil)
	f.cases.EXPECT().ListFeatured(ctx, 6).Return(nil, nil)
	f.stories.EXPECT().ListFeatured(ctx, 4).Return(nil, nil)
	f.testimonies.EXPECT().ListLatest(ctx, 3).Return(nil, nil)
	f.timeline.EXPECT().ListActive(ctx).Return(nil, nil)

	b, err := f.service.GetHome(ctx)
	require.NoError(t, err)

	var out homeSectionsOut
	require.NoError(t, json.Unmarshal(b, &out))
	require.Empty(t, out.Sections)
}

func TestHomeService_SecondCallServedFromCache(t *testing.T) {
	f := newHomeFixture(t)
	ctx := context.Background()

	// Each repository is queried exactly once; the second GetHome must
	// return the identical payload without recomputing.
	f.sections.EXPECT().ListActive(ctx).Return([]model.HomeSection{
		{ID: 1, SectionType: "hero", SortOrder: 100},
	}, nil).Times(1)
	f.cases.EXPECT().ListFeatured(ctx, 6).Return(nil, nil).Times(1)
	f.stories.EXPECT().ListFeatured(ctx, 4).Return(nil, nil).Times(1)
	f.testimonies.EXPECT().ListLatest(ctx, 3).Return(nil, nil).Times(1)
	f.timeline.EXPECT().ListActive(ctx).Return(nil, nil).Times(1)

	first, err := f.service.GetHome(ctx)
	require.NoError(t, err)

	second, err := f.service.GetHome(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
