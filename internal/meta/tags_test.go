package meta

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itqan-dev/quran-apps-edge/internal/catalog"
	"github.com/itqan-dev/quran-apps-edge/internal/routing"
)

func newTestSynthesizer() *Synthesizer {
	return NewSynthesizer(Config{
		BaseURL:      "https://quran-apps.itqan.dev",
		SiteName:     "Quran Apps Directory",
		DefaultImage: "https://quran-apps.itqan.dev/assets/social-banner.png",
	})
}

func TestSynthesize_AppWithEntity(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	route := routing.RouteInfo{Type: routing.RouteApp, Lang: "ar", Slug: "wahy"}
	entity := &catalog.Entity{
		Slug:               "wahy",
		NameAr:             "وحي",
		ShortDescriptionAr: "تطبيق وحي للقرآن الكريم",
		ApplicationIcon:    "https://x/icon.png",
	}

	tags := s.Synthesize(route, entity)
	require.Equal(t, "وحي", tags.Title)
	require.Equal(t, "تطبيق وحي للقرآن الكريم", tags.Description)
	require.Equal(t, "https://x/icon.png", tags.Image)
	require.Equal(t, 512, tags.ImageWidth)
	require.Equal(t, 512, tags.ImageHeight)
	require.Equal(t, "ar_SA", tags.Locale)
	require.Equal(t, "https://quran-apps.itqan.dev/ar/app/wahy", tags.URL)
	require.Equal(t, "website", tags.Type)
}

func TestSynthesize_AppWithoutIconUsesBanner(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	route := routing.RouteInfo{Type: routing.RouteApp, Lang: "en", Slug: "wahy"}
	entity := &catalog.Entity{NameEn: "Wahy", ShortDescriptionEn: "Quran app"}

	tags := s.Synthesize(route, entity)
	require.Equal(t, "Wahy", tags.Title)
	require.Equal(t, "https://quran-apps.itqan.dev/assets/social-banner.png", tags.Image)
	require.Equal(t, 1200, tags.ImageWidth)
	require.Equal(t, 630, tags.ImageHeight)
}

func TestSynthesize_AppFallsBackAcrossLanguages(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	route := routing.RouteInfo{Type: routing.RouteApp, Lang: "ar", Slug: "wahy"}
	entity := &catalog.Entity{NameEn: "Wahy", DescriptionEn: "Long description"}

	tags := s.Synthesize(route, entity)
	require.Equal(t, "Wahy", tags.Title)
	require.Equal(t, "Long description", tags.Description)
}

func TestSynthesize_Developer(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	route := routing.RouteInfo{Type: routing.RouteDeveloper, Lang: "en", Slug: "tafsir-center"}
	entity := &catalog.Entity{NameEn: "Tafsir Center", Logo: "https://x/logo.png"}

	tags := s.Synthesize(route, entity)
	require.Equal(t, "Apps by Tafsir Center", tags.Title)
	require.Equal(t, "Discover Quran apps by Tafsir Center.", tags.Description)
	require.Equal(t, "https://x/logo.png", tags.Image)
	require.Equal(t, 512, tags.ImageWidth)
	require.Equal(t, "https://quran-apps.itqan.dev/en/developer/tafsir-center", tags.URL)
}

func TestSynthesize_Category(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	route := routing.RouteInfo{Type: routing.RouteCategory, Lang: "en", Slug: "mushaf"}
	entity := &catalog.Entity{NameEn: "Mushaf"}

	tags := s.Synthesize(route, entity)
	require.Equal(t, "Mushaf", tags.Title)
	require.Equal(t, "Explore Mushaf apps in the Quran Apps Directory.", tags.Description)
	require.Equal(t, 1200, tags.ImageWidth)
	require.Equal(t, 630, tags.ImageHeight)
	require.Equal(t, "https://quran-apps.itqan.dev/en/mushaf", tags.URL)
}

func TestSynthesize_NilEntityFallsBackToHome(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	route := routing.RouteInfo{Type: routing.RouteApp, Lang: "ar", Slug: "missing"}

	tags := s.Synthesize(route, nil)
	home := s.Synthesize(routing.RouteInfo{Type: routing.RouteHome, Lang: "ar"}, nil)
	require.Equal(t, home, tags)
	require.NotEmpty(t, tags.Title)
	require.NotEmpty(t, tags.Description)
	require.Equal(t, "ar_SA", tags.Locale)
	require.Equal(t, "https://quran-apps.itqan.dev/ar", tags.URL)
}

func TestSynthesize_LocaleInvariant(t *testing.T) {
	t.Parallel()

	s := newTestSynthesizer()
	for _, lang := range []string{"en", "ar"} {
		tags := s.Synthesize(routing.RouteInfo{Type: routing.RouteHome, Lang: lang}, nil)
		require.Contains(t, []string{"en_US", "ar_SA"}, tags.Locale)
	}
}
