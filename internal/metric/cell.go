package metric

import (
	"sync/atomic"

	"codeberg.org/mutker/barstatus/internal/telemetry"
)

// Cell holds the latest successfully fetched reading. Stored readings are
// immutable snapshots swapped in atomically, so readers see either the old
// or the new reading and never wait on the writer.
type Cell struct {
	p atomic.Pointer[telemetry.MetricReading]
}

// Load returns the latest reading, or false if none has been stored yet.
func (c *Cell) Load() (telemetry.MetricReading, bool) {
	r := c.p.Load()
	if r == nil {
		return telemetry.MetricReading{}, false
	}
	return *r, true
}

// Store replaces the latest reading.
func (c *Cell) Store(r telemetry.MetricReading) {
	c.p.Store(&r)
}
