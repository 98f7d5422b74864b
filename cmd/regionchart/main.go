package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regionchart/internal/config"
	"regionchart/internal/engine"
	"regionchart/internal/logging"
	"regionchart/internal/metrics"
	"regionchart/internal/source"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	envFile    string
	sourceKey  string
	driverFlag string
	baseYear   int
)

var rootCmd = &cobra.Command{
	Use:   "regionchart",
	Short: "Regional employment chart: clean, parse and serve yearly statistics",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadDotEnv(envFile); err != nil {
			return err
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		applyFlags(cmd)
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded", zap.Stringer("config", cfg))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().StringVar(&sourceKey, "source", "", "path or object key of the export (overrides CHART_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "", "source driver: fs, s3 or memory (overrides CHART_SOURCE_DRIVER)")
	rootCmd.PersistentFlags().IntVar(&baseYear, "base-year", 0, "year of the first value pair (overrides CHART_BASE_YEAR)")

	rootCmd.AddCommand(serveCmd, renderCmd, cleanCmd)
}

// applyFlags lets explicitly set flags win over the environment.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source.Key = sourceKey
	}
	if flags.Changed("driver") {
		cfg.Source.Driver = driverFlag
	}
	if flags.Changed("base-year") {
		cfg.Chart.BaseYear = baseYear
		if cfg.Chart.DefaultYear < baseYear {
			cfg.Chart.DefaultYear = baseYear
		}
	}
}

func openSource(ctx context.Context) (source.Source, error) {
	return source.Open(ctx, source.Config{
		Driver:            source.Driver(strings.ToLower(cfg.Source.Driver)),
		FSRoot:            cfg.Source.FSRoot,
		S3Bucket:          cfg.Source.S3Bucket,
		S3Region:          cfg.Source.S3Region,
		S3Endpoint:        cfg.Source.S3Endpoint,
		S3PathStyle:       cfg.Source.S3PathStyle,
		S3AccessKeyID:     cfg.Source.S3AccessKeyID,
		S3SecretAccessKey: cfg.Source.S3SecretAccessKey,
	})
}

func loadDataset(ctx context.Context, m *metrics.Metrics) (*engine.Dataset, error) {
	src, err := openSource(ctx)
	if err != nil {
		return nil, &engine.InputLoadError{Source: cfg.Source.Key, Err: err}
	}
	return engine.Load(ctx, src, cfg.Source.Key, engine.LoadOptions{
		BaseYear: cfg.Chart.BaseYear,
		Clean: engine.CleanOptions{
			StartMarker:  cfg.Chart.StartMarker,
			FooterMarker: cfg.Chart.FooterMarker,
		},
		Logger:  logger,
		Metrics: m,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
