package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bft-labs/concordlog/internal/adapters/fs"
	"github.com/bft-labs/concordlog/internal/adapters/metrics"
	"github.com/bft-labs/concordlog/internal/domain"
	"github.com/bft-labs/concordlog/pkg/analytics"
	"github.com/bft-labs/concordlog/pkg/log"
)

func newShipCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ship",
		Short: "Follow a JSON-lines events file and send its events in batches",
		Long: `Follow a JSON-lines file of events, one {"type","name",...} object per line.

In batch mode events are flushed every flush interval, on SIGHUP, and on
shutdown (SIGINT or SIGTERM). With --batch=false every line is sent as soon
as it is read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShip(cmd.Context())
		},
	}

	cfg := &a.cfg
	cmd.Flags().StringVar(&cfg.EventsFile, "events-file", cfg.EventsFile, "JSON-lines file to follow")
	cmd.Flags().BoolVar(&cfg.FromStart, "from-start", cfg.FromStart, "send events already in the file before following")
	cmd.Flags().BoolVar(&cfg.BatchMode, "batch", cfg.BatchMode, "batch events instead of sending each one immediately")
	cmd.Flags().DurationVar(&cfg.FlushInterval, "flush-interval", cfg.FlushInterval, "batch flush interval, clamped to [1s, 60s]")
	cmd.Flags().StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address (e.g. :9090)")

	return cmd
}

func (a *app) runShip(parent context.Context) error {
	if a.cfg.EventsFile == "" {
		return fmt.Errorf("%w: --events-file is required", domain.ErrInvalidConfig)
	}
	if parent == nil {
		parent = context.Background()
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pm := metrics.NewPrometheusMetrics("")
	client, err := a.newClient(
		analytics.WithExitContext(ctx),
		analytics.WithFlushObserver(pm),
		analytics.WithSendObserver(pm),
	)
	if err != nil {
		return err
	}

	var srv *http.Server
	if a.cfg.MetricsAddr != "" {
		srv = a.serveMetrics(pm)
	}

	if a.cfg.BatchMode {
		client.EnableBatchMode(a.cfg.FlushInterval)
		client.StartBatching()
	}

	a.logger.Info("shipping events",
		log.String("file", a.cfg.EventsFile),
		log.String("mode", client.Mode().String()),
		log.Duration("flush_interval", client.FlushInterval()),
	)

	follower := fs.NewFollower(fs.FollowerConfig{
		Path:      a.cfg.EventsFile,
		FromStart: a.cfg.FromStart,
	}, a.logger)

	runErr := follower.Run(ctx, func(ev domain.CloudEvent) {
		a.fillEvent(&ev)
		client.LogEvent(ev)
	})

	a.logger.Info("stopping", log.Int("pending", client.Pending()))
	a.closeClient(client)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("metrics server shutdown", log.Err(err))
		}
	}

	return runErr
}

func (a *app) serveMetrics(pm *metrics.PrometheusMetrics) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", pm.Handler())

	srv := &http.Server{
		Addr:              a.cfg.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server", log.Err(err))
		}
	}()
	a.logger.Info("serving metrics", log.String("addr", a.cfg.MetricsAddr))
	return srv
}
