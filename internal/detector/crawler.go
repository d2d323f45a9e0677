// Package detector identifies preview crawlers from the User-Agent header.
package detector

import "strings"

// DefaultCrawlerAgents lists the bot and unfurler identifiers recognized out
// of the box. Matching is case-insensitive substring.
var DefaultCrawlerAgents = []string{
	"whatsapp",
	"facebookexternalhit",
	"twitterbot",
	"linkedinbot",
	"telegrambot",
	"slackbot",
	"discordbot",
	"pinterest",
	"googlebot",
	"bingbot",
}

// Crawler reports whether a request comes from a known preview crawler.
type Crawler struct {
	agents []string
}

// NewCrawler builds a Crawler from an identifier list; an empty list falls
// back to DefaultCrawlerAgents.
func NewCrawler(agents []string) *Crawler {
	if len(agents) == 0 {
		agents = DefaultCrawlerAgents
	}
	lowered := make([]string, len(agents))
	for i, a := range agents {
		lowered[i] = strings.ToLower(a)
	}
	return &Crawler{agents: lowered}
}

// IsCrawler matches userAgent against the identifier list.
func (c *Crawler) IsCrawler(userAgent string) bool {
	if userAgent == "" {
		return false
	}
	ua := strings.ToLower(userAgent)
	for _, agent := range c.agents {
		if strings.Contains(ua, agent) {
			return true
		}
	}
	return false
}
