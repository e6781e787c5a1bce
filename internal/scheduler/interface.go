package scheduler

import (
	"time"

	"codeberg.org/mutker/barstatus/internal/bar"
	"codeberg.org/mutker/barstatus/internal/telemetry"
)

// BatterySource reads aggregate battery telemetry.
type BatterySource interface {
	Read() telemetry.BatteryReading
}

// WirelessSource reads the wireless association.
type WirelessSource interface {
	Read() telemetry.WirelessReading
}

// ClockSource produces one reading per configured zone.
type ClockSource interface {
	Read(now time.Time) []telemetry.TimeReading
}

// MetricSource exposes the latest remote metric reading.
type MetricSource interface {
	Load() (telemetry.MetricReading, bool)
}

// FrameWriter delivers frames to the bar.
type FrameWriter interface {
	WriteHeader() error
	WriteFrame(frame bar.Frame) error
}
