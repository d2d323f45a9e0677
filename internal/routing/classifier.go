// Package routing classifies request paths into the directory's logical routes.
package routing

import "strings"

// RouteType identifies the logical page a path resolves to.
type RouteType string

const (
	RouteHome      RouteType = "home"
	RouteApp       RouteType = "app"
	RouteDeveloper RouteType = "developer"
	RouteCategory  RouteType = "category"
	RouteOther     RouteType = "other"
)

// RouteInfo is the per-request classification of a path. Lang is always
// exactly "en" or "ar"; Slug is set only for app, developer, and category
// routes.
type RouteInfo struct {
	Type RouteType
	Lang string
	Slug string
}

// Classify derives a RouteInfo from a URL path. Empty segments from leading,
// trailing, or duplicate slashes are discarded before matching. The first
// segment selects the language; "en" is the fallback for anything that is
// not exactly "ar".
func Classify(path string) RouteInfo {
	segments := splitPath(path)

	lang := "en"
	if len(segments) > 0 && segments[0] == "ar" {
		lang = "ar"
	}

	switch {
	case len(segments) <= 1:
		return RouteInfo{Type: RouteHome, Lang: lang}
	case segments[1] == "app" && len(segments) > 2:
		return RouteInfo{Type: RouteApp, Lang: lang, Slug: segments[2]}
	case segments[1] == "developer" && len(segments) > 2:
		return RouteInfo{Type: RouteDeveloper, Lang: lang, Slug: segments[2]}
	case len(segments) == 2:
		return RouteInfo{Type: RouteCategory, Lang: lang, Slug: segments[1]}
	default:
		return RouteInfo{Type: RouteOther, Lang: lang}
	}
}

func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
