package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"regionchart/internal/api"
	"regionchart/internal/chart"
	"regionchart/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chart state over HTTP",
	Long: `Starts the HTTP API immediately and loads the export in the background.
Until the load finishes the chart endpoints answer 503; a failed load is
reported by every chart endpoint with status 500.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	h := api.NewHandler(nil, logger)
	e := api.NewServer(h, logger, m)

	g, gctx := errgroup.WithContext(ctx)

	// Load in the background; the API is live meanwhile.
	g.Go(func() error {
		t0 := time.Now()
		ds, err := loadDataset(gctx, m)
		if err != nil {
			logger.Error("dataset load failed", zap.Error(err))
			h.SetLoadError(err)
			return nil
		}
		h.SetController(chart.New(ds, cfg.Chart.DefaultYear,
			chart.WithLogger(logger.Named("chart")),
			chart.WithMetrics(m),
		))
		logger.Info("API is fully ready", zap.Duration("elapsed", time.Since(t0)))
		return nil
	})

	g.Go(func() error {
		addr := cfg.Server.Addr()
		logger.Info("server ready, data loading in background", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		return api.Shutdown(e, cfg.Server.ShutdownTimeout)
	})

	return g.Wait()
}
