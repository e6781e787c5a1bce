// Package metric keeps the latest remote metric reading fresh in the
// background, independent of the display loop.
package metric

import (
	"context"
	"time"

	"codeberg.org/mutker/barstatus/internal/errors"
	"codeberg.org/mutker/barstatus/internal/logger"
	"codeberg.org/mutker/barstatus/internal/telemetry"
	"github.com/dustin/go-humanize"
)

type fetcher interface {
	Fetch(ctx context.Context) (telemetry.MetricReading, error)
}

// Refresher periodically fetches the remote metric into a Cell. Failures
// leave the cell untouched; stale data is preferred over no data.
type Refresher struct {
	cell     *Cell
	fetcher  fetcher
	interval time.Duration
}

func NewRefresher(cfg Config, cell *Cell) (*Refresher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.New().Wrap(ErrInvalidConfig, err)
	}
	return &Refresher{
		cell:     cell,
		fetcher:  NewFetcher(cfg, nil),
		interval: cfg.Interval,
	}, nil
}

// Refresh runs one fetch cycle and reports whether the cell was updated.
func (r *Refresher) Refresh(ctx context.Context) bool {
	reading, err := r.fetcher.Fetch(ctx)
	if err != nil {
		var appErr errors.Error
		if errors.As(err, &appErr) {
			logger.Warn().Str("error_code", string(appErr.Code())).Err(err).Msg("Metric refresh failed")
		} else {
			logger.Warn().Err(err).Msg("Metric refresh failed")
		}
		return false
	}

	r.cell.Store(reading)

	logger.Debug().
		Float64("value", reading.Value).
		Str("trend", string(reading.Trend)).
		Str("observed", humanize.Time(reading.Observed())).
		Msg("Metric refreshed")

	return true
}

// Run refreshes immediately and then after every interval until ctx is
// cancelled. There is no backoff; the display marks stale data instead.
func (r *Refresher) Run(ctx context.Context) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			r.Refresh(ctx)
			timer.Reset(r.interval)
		}
	}
}
