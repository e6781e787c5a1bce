// Package battery reads aggregate charge telemetry from the OS power
// supply subsystem.
package battery

import (
	"math"

	"codeberg.org/mutker/barstatus/internal/errors"
	"codeberg.org/mutker/barstatus/internal/logger"
	"codeberg.org/mutker/barstatus/internal/telemetry"
	"github.com/distatus/battery"
)

type lister func() ([]*battery.Battery, error)

// Provider sums every battery unit into a single reading.
type Provider struct {
	list lister
}

// New probes the power supply subsystem once. Failing to enumerate it at
// all is fatal: there is nothing meaningful to display.
func New() (*Provider, error) {
	return newProvider(battery.GetAll)
}

func newProvider(list lister) (*Provider, error) {
	bats, err := list()
	if isFatal(err) {
		return nil, errors.New().Wrap(ErrInitFailed, err)
	}

	logger.Debug().Int("batteries", len(bats)).Msg("Battery provider initialized")

	return &Provider{list: list}, nil
}

// Read takes one reading. Failures are reported on the reading, never
// returned.
func (p *Provider) Read() telemetry.BatteryReading {
	errFactory := errors.New()

	bats, err := p.list()
	if isFatal(err) {
		return telemetry.BatteryReading{Err: errFactory.Wrap(ErrReadFailed, err)}
	}

	var (
		current, full, design float64
		state                 = telemetry.StateUnknown
		counted               int
	)

	for i, b := range bats {
		if b == nil {
			continue
		}
		energyOK, stateOK := usable(indexErr(err, i))

		if energyOK {
			current += b.Current
			full += b.Full
			design += b.Design
			counted++
		}
		if stateOK {
			if s := mapState(b.State.Raw); s != telemetry.StateUnknown {
				state = s
			}
		}
	}

	if counted == 0 {
		return telemetry.BatteryReading{Err: errFactory.New(ErrNoBattery)}
	}
	if full <= 0 {
		return telemetry.BatteryReading{Err: errFactory.WithData(ErrNoFullEnergy, counted)}
	}

	r := telemetry.BatteryReading{
		CurrentRatio: current / full,
		State:        state,
	}
	if design > 0 {
		r.DesignRatio = full / design
	} else {
		r.DesignRatio = math.NaN()
	}

	return r
}

func mapState(s battery.AgnosticState) telemetry.ChargeState {
	switch s {
	case battery.Charging:
		return telemetry.StateCharging
	case battery.Full:
		return telemetry.StateFull
	case battery.Discharging, battery.Empty:
		return telemetry.StateDischarging
	default:
		return telemetry.StateUnknown
	}
}

// isFatal reports whether err means no battery data could be read at all,
// as opposed to per-battery errors.
func isFatal(err error) bool {
	if err == nil {
		return false
	}
	var errs battery.Errors
	return !errors.As(err, &errs)
}

func indexErr(err error, i int) error {
	var errs battery.Errors
	if errors.As(err, &errs) && i < len(errs) {
		return errs[i]
	}
	return nil
}

// usable reports which parts of a battery can be trusted given its
// individual error.
func usable(err error) (energy, state bool) {
	if err == nil {
		return true, true
	}
	var partial battery.ErrPartial
	if errors.As(err, &partial) {
		return partial.Current == nil && partial.Full == nil && partial.Design == nil, partial.State == nil
	}
	return false, false
}
