package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"codeberg.org/mutker/barstatus/internal/bar"
	"codeberg.org/mutker/barstatus/internal/battery"
	"codeberg.org/mutker/barstatus/internal/clock"
	"codeberg.org/mutker/barstatus/internal/config"
	"codeberg.org/mutker/barstatus/internal/errors"
	"codeberg.org/mutker/barstatus/internal/logger"
	"codeberg.org/mutker/barstatus/internal/metric"
	"codeberg.org/mutker/barstatus/internal/scheduler"
	"codeberg.org/mutker/barstatus/internal/wireless"
)

var (
	cfg           *config.Config
	batteries     *battery.Provider
	wifi          *wireless.Provider
	zones         *clock.Provider
	metricCell    metric.Cell
	metricRefresh *metric.Refresher
)

func init() {
	var err error
	cfg, err = config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.LogLevel.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger.Init(level, logger.IsService())
	logger.Debug().Str("file", cfg.File).Msg("Config loaded")

	errFactory := errors.New()

	if zones, err = clock.New(cfg.Zones); err != nil {
		logger.FatalWithCode(errFactory.Wrap(errors.ErrInitApp, err)).Msg("failed to resolve time zones")
	}

	if batteries, err = battery.New(); err != nil {
		logger.FatalWithCode(errFactory.Wrap(errors.ErrInitApp, err)).Msg("failed to initialize battery telemetry")
	}

	if wifi, err = wireless.New(cfg.Wireless.Interface); err != nil {
		logger.FatalWithCode(errFactory.Wrap(errors.ErrInitApp, err)).Msg("failed to initialize wireless telemetry")
	}

	if mc := cfg.MetricConfig(); mc.Enabled() {
		if metricRefresh, err = metric.NewRefresher(mc, &metricCell); err != nil {
			logger.FatalWithCode(errFactory.Wrap(errors.ErrInitApp, err)).Msg("failed to initialize metric refresher")
		}
	} else {
		logger.Warn().Msg("No metric URL configured, metric block stays unknown")
	}
}

func main() {
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if metricRefresh != nil {
		go metricRefresh.Run(ctx)
	}

	s := scheduler.New(batteries, wifi, zones, &metricCell, bar.NewWriter(os.Stdout))

	logger.Info().
		Str("interface", wifi.Interface()).
		Int("zones", zones.Len()).
		Bool("metric", metricRefresh != nil).
		Msg("Status bar started")

	if err := s.Run(ctx); err != nil {
		var appErr errors.Error
		if errors.As(err, &appErr) {
			logger.ErrorWithCode(appErr).Msg("error in main loop")
		} else {
			logger.Error().Err(err).Msg("error in main loop")
		}
		cleanup()
		os.Exit(1)
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func cleanup() {
	if err := wifi.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close wireless socket")
	}
	logger.Info().Msg("Exiting...")
}
