// Package scheduler drives the display: every tick it reads the cheap
// sources, classifies them together with the latest remote metric and
// writes one frame.
package scheduler

import (
	"context"
	"time"

	"codeberg.org/mutker/barstatus/internal/bar"
	"codeberg.org/mutker/barstatus/internal/classify"
	"codeberg.org/mutker/barstatus/internal/errors"
	"codeberg.org/mutker/barstatus/internal/logger"
)

// TickInterval is the pause between frames.
const TickInterval = 5 * time.Second

type Scheduler struct {
	battery  BatterySource
	wireless WirelessSource
	clock    ClockSource
	metric   MetricSource
	out      FrameWriter

	interval time.Duration
	now      func() time.Time
}

type Option func(*Scheduler)

// WithInterval overrides the tick interval.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		s.interval = d
	}
}

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

func New(
	battery BatterySource, wireless WirelessSource, clock ClockSource, metric MetricSource,
	out FrameWriter, opts ...Option,
) *Scheduler {
	s := &Scheduler{
		battery:  battery,
		wireless: wireless,
		clock:    clock,
		metric:   metric,
		out:      out,
		interval: TickInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Frame builds the frame for the given instant: metric, one block per
// zone, wireless, then the battery blocks.
func (s *Scheduler) Frame(now time.Time) bar.Frame {
	times := s.clock.Read(now)
	frame := make(bar.Frame, 0, len(times)+4)

	reading, ok := s.metric.Load()
	frame = append(frame, classify.Metric(reading, ok, now))

	for _, t := range times {
		frame = append(frame, classify.Time(t))
	}

	wifi := s.wireless.Read()
	if wifi.Err != nil {
		logger.Debug().Err(wifi.Err).Msg("Wireless query failed")
	}
	frame = append(frame, classify.Wireless(wifi))

	power := s.battery.Read()
	if power.Err != nil {
		logger.Debug().Err(power.Err).Msg("Battery read failed")
	}
	frame = append(frame, classify.Battery(power)...)

	return frame
}

// Tick writes one frame. Only an output failure is returned.
func (s *Scheduler) Tick() error {
	if err := s.out.WriteFrame(s.Frame(s.now())); err != nil {
		return errors.New().Wrap(errors.ErrOutput, err)
	}
	return nil
}

// Run writes the protocol header and then one frame per interval until
// ctx is cancelled. The interval is measured from the end of each tick.
func (s *Scheduler) Run(ctx context.Context) error {
	errFactory := errors.New()

	if s.interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, s.interval.String())
	}

	if err := s.out.WriteHeader(); err != nil {
		return errFactory.Wrap(errors.ErrInitBar, err)
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			if err := s.Tick(); err != nil {
				return err
			}
			timer.Reset(s.interval)
		}
	}
}
