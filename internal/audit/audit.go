// Package audit crawls site pages and reports missing social-preview
// metadata.
package audit

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// Config controls the audit crawl.
type Config struct {
	StartURLs   []string
	UserAgent   string
	MaxPages    int
	FollowLinks bool
	Timeout     time.Duration
}

// Finding records a page whose head lacks one or more required meta tags.
type Finding struct {
	URL     string
	Missing []string
}

// Report summarizes a completed audit run.
type Report struct {
	PagesVisited int
	Findings     []Finding
}

// Clean reports whether every visited page carried the required tags.
func (r Report) Clean() bool {
	return len(r.Findings) == 0
}

// requiredTags maps a human label to the CSS selector that must match inside
// <head> with a non-empty content attribute.
var requiredTags = []struct {
	label    string
	selector string
}{
	{"og:title", `meta[property="og:title"]`},
	{"og:description", `meta[property="og:description"]`},
	{"og:image", `meta[property="og:image"]`},
	{"twitter:card", `meta[property="twitter:card"], meta[name="twitter:card"]`},
}

// Auditor crawls pages with colly and inspects each document head.
type Auditor struct {
	cfg    Config
	logger *zap.Logger
}

// New builds an Auditor.
func New(cfg Config, logger *zap.Logger) *Auditor {
	if cfg.MaxPages == 0 {
		cfg.MaxPages = 50
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Auditor{cfg: cfg, logger: logger}
}

// Run visits the start URLs (and, when FollowLinks is set, same-host links
// found on them) up to MaxPages, and returns a report of pages with missing
// or empty preview tags.
func (a *Auditor) Run(ctx context.Context) (Report, error) {
	domains, err := hostsOf(a.cfg.StartURLs)
	if err != nil {
		return Report{}, err
	}

	collector := colly.NewCollector(
		colly.Async(false),
		colly.AllowedDomains(domains...),
	)
	if a.cfg.UserAgent != "" {
		collector.UserAgent = a.cfg.UserAgent
	}
	collector.SetRequestTimeout(a.cfg.Timeout)

	var report Report

	collector.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil || report.PagesVisited >= a.cfg.MaxPages {
			r.Abort()
		}
	})

	collector.OnHTML("html", func(e *colly.HTMLElement) {
		report.PagesVisited++
		var missing []string
		for _, tag := range requiredTags {
			if e.ChildAttr(tag.selector, "content") == "" {
				missing = append(missing, tag.label)
			}
		}
		if len(missing) > 0 {
			report.Findings = append(report.Findings, Finding{URL: e.Request.URL.String(), Missing: missing})
			a.logger.Warn("page missing preview tags",
				zap.String("url", e.Request.URL.String()),
				zap.Strings("missing", missing),
			)
		}
	})

	if a.cfg.FollowLinks {
		collector.OnHTML("a[href]", func(e *colly.HTMLElement) {
			_ = e.Request.Visit(e.Attr("href"))
		})
	}

	collector.OnError(func(r *colly.Response, visitErr error) {
		a.logger.Warn("audit fetch failed",
			zap.String("url", r.Request.URL.String()),
			zap.Error(visitErr),
		)
	})

	for _, start := range a.cfg.StartURLs {
		if ctx.Err() != nil {
			return report, fmt.Errorf("audit canceled: %w", ctx.Err())
		}
		if err := collector.Visit(start); err != nil {
			a.logger.Warn("audit visit failed", zap.String("url", start), zap.Error(err))
		}
	}
	collector.Wait()

	return report, nil
}

func hostsOf(startURLs []string) ([]string, error) {
	if len(startURLs) == 0 {
		return nil, fmt.Errorf("at least one start URL required")
	}
	seen := make(map[string]struct{}, len(startURLs))
	hosts := make([]string, 0, len(startURLs))
	for _, raw := range startURLs {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			return nil, fmt.Errorf("invalid start URL %q", raw)
		}
		if _, ok := seen[u.Host]; !ok {
			seen[u.Host] = struct{}{}
			hosts = append(hosts, u.Host, u.Hostname())
		}
	}
	return hosts, nil
}
