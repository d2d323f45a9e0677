// Package meta synthesizes social-preview metadata and rewrites HTML meta
// blocks for crawler responses.
package meta

import (
	"fmt"
	"strings"

	"github.com/itqan-dev/quran-apps-edge/internal/catalog"
	"github.com/itqan-dev/quran-apps-edge/internal/routing"
)

// OGTags is a fully-resolved set of Open Graph / Twitter Card values for a
// single response. Immutable once built.
type OGTags struct {
	Title       string
	Description string
	Image       string
	ImageWidth  int
	ImageHeight int
	URL         string
	Type        string
	Locale      string
	SiteName    string
}

// Icons in the catalog are square; the default banner is a wide social card.
const (
	iconWidth    = 512
	iconHeight   = 512
	bannerWidth  = 1200
	bannerHeight = 630
)

var homeTitles = map[string]string{
	"en": "Quran Apps Directory",
	"ar": "دليل التطبيقات القرآنية",
}

var homeDescriptions = map[string]string{
	"en": "Discover the best Quranic mobile applications, organized by category.",
	"ar": "اكتشف أفضل التطبيقات القرآنية المصنفة حسب الفئة.",
}

var developerTitleTemplates = map[string]string{
	"en": "Apps by %s",
	"ar": "تطبيقات %s",
}

var developerDescriptionTemplates = map[string]string{
	"en": "Discover Quran apps by %s.",
	"ar": "اكتشف تطبيقات %s.",
}

var categoryDescriptionTemplates = map[string]string{
	"en": "Explore %s apps in the Quran Apps Directory.",
	"ar": "استكشف تطبيقات %s في دليل التطبيقات القرآنية.",
}

// Config controls Synthesizer output.
type Config struct {
	BaseURL      string
	SiteName     string
	DefaultImage string
}

// Synthesizer builds OGTags from a classified route and an optional entity.
type Synthesizer struct {
	cfg Config
}

// NewSynthesizer builds a Synthesizer.
func NewSynthesizer(cfg Config) *Synthesizer {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Synthesizer{cfg: cfg}
}

// Synthesize dispatches on the route type. A nil entity, or an entity with
// no usable name, always degrades to the localized home defaults: a crawler
// must receive some valid preview rather than an empty one.
func (s *Synthesizer) Synthesize(route routing.RouteInfo, entity *catalog.Entity) OGTags {
	lang := route.Lang

	if entity != nil && entity.Name(lang) != "" {
		switch route.Type {
		case routing.RouteApp:
			return s.appTags(route, entity)
		case routing.RouteDeveloper:
			return s.developerTags(route, entity)
		case routing.RouteCategory:
			return s.categoryTags(route, entity)
		}
	}
	return s.homeTags(lang)
}

func (s *Synthesizer) appTags(route routing.RouteInfo, entity *catalog.Entity) OGTags {
	lang := route.Lang
	tags := s.base(lang)
	tags.Title = entity.Name(lang)
	if desc := entity.Description(lang); desc != "" {
		tags.Description = desc
	}
	tags.URL = fmt.Sprintf("%s/%s/app/%s", s.cfg.BaseURL, lang, route.Slug)
	s.applyImage(&tags, entity.Image())
	return tags
}

func (s *Synthesizer) developerTags(route routing.RouteInfo, entity *catalog.Entity) OGTags {
	lang := route.Lang
	name := entity.Name(lang)
	tags := s.base(lang)
	tags.Title = fmt.Sprintf(developerTitleTemplates[lang], name)
	tags.Description = fmt.Sprintf(developerDescriptionTemplates[lang], name)
	tags.URL = fmt.Sprintf("%s/%s/developer/%s", s.cfg.BaseURL, lang, route.Slug)
	s.applyImage(&tags, entity.Image())
	return tags
}

func (s *Synthesizer) categoryTags(route routing.RouteInfo, entity *catalog.Entity) OGTags {
	lang := route.Lang
	name := entity.Name(lang)
	tags := s.base(lang)
	tags.Title = name
	tags.Description = fmt.Sprintf(categoryDescriptionTemplates[lang], name)
	tags.URL = fmt.Sprintf("%s/%s/%s", s.cfg.BaseURL, lang, route.Slug)
	return tags
}

func (s *Synthesizer) homeTags(lang string) OGTags {
	tags := s.base(lang)
	tags.URL = fmt.Sprintf("%s/%s", s.cfg.BaseURL, lang)
	return tags
}

// base returns home-default tags with the wide banner image.
func (s *Synthesizer) base(lang string) OGTags {
	locale := "en_US"
	if lang == "ar" {
		locale = "ar_SA"
	}
	return OGTags{
		Title:       homeTitles[lang],
		Description: homeDescriptions[lang],
		Image:       s.cfg.DefaultImage,
		ImageWidth:  bannerWidth,
		ImageHeight: bannerHeight,
		Type:        "website",
		Locale:      locale,
		SiteName:    s.cfg.SiteName,
	}
}

func (s *Synthesizer) applyImage(tags *OGTags, image string) {
	if image == "" {
		return
	}
	tags.Image = image
	tags.ImageWidth = iconWidth
	tags.ImageHeight = iconHeight
}
