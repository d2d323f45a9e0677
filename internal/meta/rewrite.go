package meta

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// MetaBlockRewriter replaces a document's social-preview meta block. The
// regex implementation below is intentionally behind this interface so a
// DOM-based rewrite can replace it without touching callers.
type MetaBlockRewriter interface {
	Inject(doc string, tags OGTags) string
}

// RegexRewriter rewrites the meta block with a bounded non-greedy match.
type RegexRewriter struct{}

// metaBlockRE spans the first og:type meta through the first
// twitter:image:alt meta, inclusive. The generated block satisfies the same
// bounds, which makes injection idempotent.
var metaBlockRE = regexp.MustCompile(`(?s)<meta property="og:type".*?<meta property="twitter:image:alt"[^>]*>`)

var headCloseRE = regexp.MustCompile(`(?i)</head>`)

// Inject replaces the existing meta block with one built from tags. When the
// document has no recognizable block, the new block is inserted before the
// closing </head> tag; a document without a head gets the block appended.
// Injection never silently fails.
func (RegexRewriter) Inject(doc string, tags OGTags) string {
	block := buildBlock(tags)

	if loc := metaBlockRE.FindStringIndex(doc); loc != nil {
		return doc[:loc[0]] + block + doc[loc[1]:]
	}
	if loc := headCloseRE.FindStringIndex(doc); loc != nil {
		return doc[:loc[0]] + block + "\n" + doc[loc[0]:]
	}
	return doc + "\n" + block
}

// buildBlock renders the meta tags. Titles and descriptions are
// user-derived and HTML-escaped; URLs are inserted verbatim (the synthesizer
// guarantees they are well-formed).
func buildBlock(tags OGTags) string {
	title := html.EscapeString(tags.Title)
	description := html.EscapeString(tags.Description)

	var b strings.Builder
	writeTag(&b, "og:type", tags.Type)
	writeTag(&b, "og:url", tags.URL)
	writeTag(&b, "og:title", title)
	writeTag(&b, "og:description", description)
	writeTag(&b, "og:image", tags.Image)
	writeTag(&b, "og:image:alt", title)
	if tags.ImageWidth > 0 && tags.ImageHeight > 0 {
		writeTag(&b, "og:image:width", fmt.Sprintf("%d", tags.ImageWidth))
		writeTag(&b, "og:image:height", fmt.Sprintf("%d", tags.ImageHeight))
	}
	writeTag(&b, "og:locale", tags.Locale)
	writeTag(&b, "og:site_name", html.EscapeString(tags.SiteName))
	writeTag(&b, "twitter:card", "summary_large_image")
	writeTag(&b, "twitter:url", tags.URL)
	writeTag(&b, "twitter:title", title)
	writeTag(&b, "twitter:description", description)
	writeTag(&b, "twitter:image", tags.Image)
	b.WriteString(fmt.Sprintf(`<meta property="twitter:image:alt" content="%s">`, title))
	return b.String()
}

func writeTag(b *strings.Builder, property, content string) {
	fmt.Fprintf(b, "<meta property=\"%s\" content=\"%s\">\n", property, content)
}
