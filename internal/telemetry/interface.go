// Package telemetry holds the raw readings produced by the status bar's
// sources before classification.
package telemetry

import "time"

// ChargeState is the aggregate charge state of all batteries.
type ChargeState int

const (
	StateUnknown ChargeState = iota
	StateCharging
	StateDischarging
	StateFull
)

func (s ChargeState) String() string {
	switch s {
	case StateCharging:
		return "charging"
	case StateDischarging:
		return "discharging"
	case StateFull:
		return "full"
	default:
		return "unknown"
	}
}

// BatteryReading is the summed state of every battery unit. Ratios are
// fractions, not percentages. Err marks a reading that could not be taken.
type BatteryReading struct {
	CurrentRatio float64
	DesignRatio  float64
	State        ChargeState
	Err          error
}

// WirelessReading describes the association of one wireless interface.
type WirelessReading struct {
	SSID       string
	Associated bool
	Err        error
}

// TimeReading is an instant to be rendered in a labelled zone.
type TimeReading struct {
	Instant  time.Time
	Label    string
	Location *time.Location
}

// Trend is the direction code reported with a metric value.
type Trend string

const (
	TrendDoubleUp      Trend = "DoubleUp"
	TrendSingleUp      Trend = "SingleUp"
	TrendFortyFiveUp   Trend = "FortyFiveUp"
	TrendFlat          Trend = "Flat"
	TrendFortyFiveDown Trend = "FortyFiveDown"
	TrendSingleDown    Trend = "SingleDown"
	TrendDoubleDown    Trend = "DoubleDown"
)

// MetricReading is one successfully parsed remote metric entry.
type MetricReading struct {
	Type       string
	DateString string
	ObservedAt int64 // epoch millis
	Value      float64
	Trend      Trend
	Noise      float64
	Filtered   float64
	Unfiltered float64
	RSSI       float64
}

// Observed returns ObservedAt as a time.
func (r MetricReading) Observed() time.Time {
	return time.UnixMilli(r.ObservedAt)
}
