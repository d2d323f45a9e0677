package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/itqan-dev/quran-apps-edge/internal/api"
	"github.com/itqan-dev/quran-apps-edge/internal/catalog"
	"github.com/itqan-dev/quran-apps-edge/internal/config"
	"github.com/itqan-dev/quran-apps-edge/internal/detector"
	"github.com/itqan-dev/quran-apps-edge/internal/gateway"
	"github.com/itqan-dev/quran-apps-edge/internal/logging"
	"github.com/itqan-dev/quran-apps-edge/internal/meta"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the edge gateway HTTP server.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := logging.New(cfg.Logging.Development)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			gw := buildGateway(cfg, logger)
			server := api.NewServer(gw, logger)

			httpServer := &http.Server{
				Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
				Handler:      server.Handler(),
				ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
				WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("edge gateway listening",
					zap.Int("port", cfg.Server.Port),
					zap.String("origin", cfg.Origin.URL),
					zap.String("api", cfg.API.BaseURL),
				)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serve: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(
				context.Background(),
				time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second,
			)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}
}

func buildGateway(cfg config.Config, logger *zap.Logger) *gateway.Gateway {
	catalogClient := catalog.New(catalog.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.APITimeout(),
	}, logger)

	synth := meta.NewSynthesizer(meta.Config{
		BaseURL:      cfg.Site.BaseURL,
		SiteName:     cfg.Site.Name,
		DefaultImage: cfg.Site.DefaultImage,
	})

	return gateway.New(
		gateway.NewOriginClient(cfg.Origin.URL, cfg.OriginTimeout()),
		catalogClient,
		detector.NewCrawler(cfg.Crawlers.UserAgents),
		synth,
		meta.RegexRewriter{},
		cfg.Assets.Extensions,
		logger,
	)
}
