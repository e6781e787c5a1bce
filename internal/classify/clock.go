package classify

import (
	"time"

	"codeberg.org/mutker/barstatus/internal/bar"
	"codeberg.org/mutker/barstatus/internal/telemetry"
)

// Time renders "LABEL HH:MM" in the reading's zone. Time blocks are never
// colored.
func Time(r telemetry.TimeReading) bar.Block {
	loc := r.Location
	if loc == nil {
		loc = time.UTC
	}
	text := r.Instant.In(loc).Format("15:04")
	if r.Label != "" {
		text = r.Label + " " + text
	}
	return bar.NewBlock(text, bar.TierNone)
}
