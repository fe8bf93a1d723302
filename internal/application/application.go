package application

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"pacp_coder/internal/config"
	"pacp_coder/internal/domain/service/report"
	"pacp_coder/internal/domain/value"
	"pacp_coder/internal/infrastructure/reportstore"
	"pacp_coder/internal/server"
	"pacp_coder/internal/worker"
	"pacp_coder/pkg/application/modules"
	"pacp_coder/pkg/logx"
	"pacp_coder/pkg/middlewarex"
)

const httpServerReadHeaderTimeout = 5 * time.Second

func Run(ctx context.Context) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	// 2. Report pipeline
	store := reportstore.New(cfg.Report.TTL)

	reportService := report.NewService().
		WithBaseOverlay(
			value.ParseCodeList(cfg.Report.ExcludeAdd),
			value.ParseCodeList(cfg.Report.ExcludeRemove),
		)

	// 3. HTTP surface
	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.HTTP.LogFieldMaxLen),
	)

	server.NewServer(
		server.NewReportServer(reportService, store, cfg.HTTP.MaxUploadBytes),
		server.NewExclusionServer(),
	).RegisterRoutes(router)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	// 4. Runtime modules
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.Metrics.ListenAddress}.Run(ctx, g)

	statsReporter := worker.NewStatsReporter(store, cfg.Report.StatsInterval)

	g.Go(func() error {
		if err := statsReporter.Run(ctx); err != nil {
			return fmt.Errorf("statsReporter.Run: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
