// Package catalog looks up apps, developers, and categories from the
// directory's backend API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/itqan-dev/quran-apps-edge/internal/telemetry"
)

// Config controls Client behavior.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client issues single-shot entity lookups against the catalog API. A lookup
// that fails for any reason (non-2xx, network error, malformed JSON,
// timeout) resolves to a nil entity: absence is an expected outcome here and
// must never prevent a page from rendering, it only withholds rich metadata.
type Client struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
}

// New builds a Client.
func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// FetchApp looks up an app by slug.
func (c *Client) FetchApp(ctx context.Context, slug string) *Entity {
	return c.fetch(ctx, "apps", slug)
}

// FetchDeveloper looks up a developer by slug.
func (c *Client) FetchDeveloper(ctx context.Context, slug string) *Entity {
	return c.fetch(ctx, "developers", slug)
}

// FetchCategory looks up a category by slug.
func (c *Client) FetchCategory(ctx context.Context, slug string) *Entity {
	return c.fetch(ctx, "categories", slug)
}

func (c *Client) fetch(ctx context.Context, kind, slug string) *Entity {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/%s/%s", strings.TrimRight(c.cfg.BaseURL, "/"), kind, url.PathEscape(slug))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.observeFailure(kind, slug, "build request", err)
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.observeFailure(kind, slug, "request", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.observeFailure(kind, slug, "status", fmt.Errorf("unexpected status %d", resp.StatusCode))
		return nil
	}

	var entity Entity
	if err := json.NewDecoder(resp.Body).Decode(&entity); err != nil {
		c.observeFailure(kind, slug, "decode", err)
		return nil
	}

	telemetry.ObserveEntityFetch(kind, "ok")
	return &entity
}

func (c *Client) observeFailure(kind, slug, stage string, err error) {
	telemetry.ObserveEntityFetch(kind, "failed")
	c.logger.Warn("entity fetch failed",
		zap.String("kind", kind),
		zap.String("slug", slug),
		zap.String("stage", stage),
		zap.Error(err),
	)
}
