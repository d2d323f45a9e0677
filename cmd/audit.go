package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/itqan-dev/quran-apps-edge/internal/audit"
	"github.com/itqan-dev/quran-apps-edge/internal/config"
	"github.com/itqan-dev/quran-apps-edge/internal/logging"
)

func newAuditCmd() *cobra.Command {
	var (
		followLinks bool
		maxPages    int
		userAgent   string
	)

	cmd := &cobra.Command{
		Use:   "audit [url...]",
		Short: "Crawl site pages and report missing preview metadata.",
		Long: `audit visits the given URLs (default: the configured site's English and
Arabic home pages) and reports pages whose head lacks og:title,
og:description, og:image, or a twitter card tag.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := logging.New(cfg.Logging.Development)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			startURLs := args
			if len(startURLs) == 0 {
				startURLs = []string{
					cfg.Site.BaseURL + "/en",
					cfg.Site.BaseURL + "/ar",
				}
			}

			auditor := audit.New(audit.Config{
				StartURLs:   startURLs,
				UserAgent:   userAgent,
				MaxPages:    maxPages,
				FollowLinks: followLinks,
			}, logger)

			report, err := auditor.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("audit: %w", err)
			}

			logger.Info("audit finished",
				zap.Int("pages_visited", report.PagesVisited),
				zap.Int("pages_with_findings", len(report.Findings)),
			)
			for _, finding := range report.Findings {
				logger.Warn("missing preview tags",
					zap.String("url", finding.URL),
					zap.Strings("missing", finding.Missing),
				)
			}
			if !report.Clean() {
				return fmt.Errorf("%d of %d pages are missing preview tags", len(report.Findings), report.PagesVisited)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&followLinks, "follow-links", false, "follow same-host links found on visited pages")
	cmd.Flags().IntVar(&maxPages, "max-pages", 50, "maximum number of pages to visit")
	cmd.Flags().StringVar(&userAgent, "user-agent", "quran-apps-edge-audit/1.0", "User-Agent for audit requests")

	return cmd
}
