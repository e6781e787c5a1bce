// Package clock renders wall-clock readings for a fixed list of zones.
package clock

import (
	"time"

	"codeberg.org/mutker/barstatus/internal/errors"
	"codeberg.org/mutker/barstatus/internal/telemetry"
)

// Zone is a labelled IANA time zone.
type Zone struct {
	Label string `mapstructure:"label"`
	Name  string `mapstructure:"zone"`
}

type zone struct {
	label string
	loc   *time.Location
}

// Provider holds the resolved zones in display order.
type Provider struct {
	zones []zone
}

// New resolves every zone up front. An unknown zone id is a configuration
// error.
func New(zones []Zone) (*Provider, error) {
	errFactory := errors.New()

	p := &Provider{zones: make([]zone, 0, len(zones))}
	for _, z := range zones {
		loc, err := time.LoadLocation(z.Name)
		if err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidZone, err).WithData(z.Name)
		}
		p.zones = append(p.zones, zone{label: z.Label, loc: loc})
	}

	return p, nil
}

// Read returns one reading per zone for the given instant.
func (p *Provider) Read(now time.Time) []telemetry.TimeReading {
	readings := make([]telemetry.TimeReading, 0, len(p.zones))
	for _, z := range p.zones {
		readings = append(readings, telemetry.TimeReading{
			Instant:  now,
			Label:    z.label,
			Location: z.loc,
		})
	}
	return readings
}

// Len returns the number of configured zones.
func (p *Provider) Len() int {
	return len(p.zones)
}
