// Package gateway dispatches edge requests: it guards static assets against
// HTML fallback responses and rewrites preview metadata for crawlers, passing
// everything else through to the origin untouched.
package gateway

import (
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/itqan-dev/quran-apps-edge/internal/catalog"
	"github.com/itqan-dev/quran-apps-edge/internal/detector"
	"github.com/itqan-dev/quran-apps-edge/internal/meta"
	"github.com/itqan-dev/quran-apps-edge/internal/routing"
	"github.com/itqan-dev/quran-apps-edge/internal/telemetry"
)

// DefaultStaticExtensions lists the file extensions guarded against HTML
// fallback responses.
var DefaultStaticExtensions = []string{
	".js", ".css", ".map",
	".woff", ".woff2", ".ttf", ".eot",
	".ico", ".png", ".jpg", ".jpeg", ".webp", ".svg", ".gif",
}

// Gateway is the top-level request dispatcher. It holds no mutable state
// across requests; every field is fixed at construction.
type Gateway struct {
	origin     *OriginClient
	catalog    *catalog.Client
	detector   *detector.Crawler
	synth      *meta.Synthesizer
	rewriter   meta.MetaBlockRewriter
	extensions map[string]struct{}
	logger     *zap.Logger
}

// New constructs a Gateway. An empty extension list falls back to
// DefaultStaticExtensions.
func New(
	origin *OriginClient,
	catalogClient *catalog.Client,
	crawlerDetector *detector.Crawler,
	synth *meta.Synthesizer,
	rewriter meta.MetaBlockRewriter,
	extensions []string,
	logger *zap.Logger,
) *Gateway {
	if len(extensions) == 0 {
		extensions = DefaultStaticExtensions
	}
	extSet := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		extSet[strings.ToLower(ext)] = struct{}{}
	}
	return &Gateway{
		origin:     origin,
		catalog:    catalogClient,
		detector:   crawlerDetector,
		synth:      synth,
		rewriter:   rewriter,
		extensions: extSet,
		logger:     logger,
	}
}

// ServeHTTP runs the dispatch sequence: static-asset guard first, crawler
// flow second, plain pass-through for everything else.
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case g.isStaticAsset(r.URL.Path):
		g.serveAsset(w, r)
	case g.detector.IsCrawler(r.UserAgent()):
		g.serveCrawler(w, r)
	default:
		g.passThrough(w, r)
	}
}

func (g *Gateway) isStaticAsset(urlPath string) bool {
	ext := strings.ToLower(path.Ext(urlPath))
	_, ok := g.extensions[ext]
	return ok
}

// serveAsset proxies a static-asset request. An origin answering with HTML
// means the SPA shell was served in place of a missing asset; a browser
// would choke trying to parse it, so the gateway converts it to a clean 404.
func (g *Gateway) serveAsset(w http.ResponseWriter, r *http.Request) {
	resp, err := g.origin.Fetch(r)
	if err != nil {
		g.originError(w, r, "asset", err)
		return
	}
	defer resp.Body.Close()

	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		telemetry.ObserveAssetBlock()
		g.logger.Info("blocked HTML fallback for static asset", zap.String("path", r.URL.Path))
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "Not found")
		return
	}

	relayResponse(w, resp)
}

// serveCrawler runs the crawler flow: classify, fetch the entity, synthesize
// tags, fetch the origin HTML, rewrite its meta block. Entity lookup
// failures degrade to home-default tags and never abort the request.
func (g *Gateway) serveCrawler(w http.ResponseWriter, r *http.Request) {
	route := routing.Classify(r.URL.Path)
	entity := g.fetchEntity(r, route)
	tags := g.synth.Synthesize(route, entity)

	// The rewrite needs plaintext HTML. Dropping the crawler's
	// Accept-Encoding lets the transport negotiate gzip itself and
	// decompress transparently before the body reaches the rewriter.
	originReq := r.Clone(r.Context())
	originReq.Header.Del("Accept-Encoding")

	resp, err := g.origin.Fetch(originReq)
	if err != nil {
		g.originError(w, r, "crawler", err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		g.originError(w, r, "crawler", err)
		return
	}

	rewritten := g.rewriter.Inject(string(body), tags)
	telemetry.ObserveCrawlerRewrite(string(route.Type))
	g.logger.Info("rewrote crawler metadata",
		zap.String("path", r.URL.Path),
		zap.String("route", string(route.Type)),
		zap.String("lang", route.Lang),
		zap.Bool("entity_found", entity != nil),
	)

	copyResponseHeaders(w.Header(), resp.Header)
	// The rewritten body is plaintext regardless of what the origin sent.
	w.Header().Del("Content-Encoding")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(rewritten)))
	w.WriteHeader(resp.StatusCode)
	_, _ = io.WriteString(w, rewritten)
}

func (g *Gateway) fetchEntity(r *http.Request, route routing.RouteInfo) *catalog.Entity {
	ctx := r.Context()
	switch route.Type {
	case routing.RouteApp:
		return g.catalog.FetchApp(ctx, route.Slug)
	case routing.RouteDeveloper:
		return g.catalog.FetchDeveloper(ctx, route.Slug)
	case routing.RouteCategory:
		return g.catalog.FetchCategory(ctx, route.Slug)
	default:
		return nil
	}
}

func (g *Gateway) passThrough(w http.ResponseWriter, r *http.Request) {
	resp, err := g.origin.Fetch(r)
	if err != nil {
		g.originError(w, r, "passthrough", err)
		return
	}
	defer resp.Body.Close()

	relayResponse(w, resp)
}

func (g *Gateway) originError(w http.ResponseWriter, r *http.Request, flow string, err error) {
	telemetry.ObserveOriginError(flow)
	g.logger.Error("origin fetch failed",
		zap.String("path", r.URL.Path),
		zap.String("flow", flow),
		zap.Error(err),
	)
	http.Error(w, "Bad gateway", http.StatusBadGateway)
}

func relayResponse(w http.ResponseWriter, resp *http.Response) {
	copyResponseHeaders(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
}

func copyResponseHeaders(dst, src http.Header) {
	for key, values := range src {
		if key == "Content-Length" {
			continue
		}
		for _, value := range values {
			dst.Add(key, value)
		}
	}
}
