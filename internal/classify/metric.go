package classify

import (
	"fmt"
	"strconv"
	"time"

	"codeberg.org/mutker/barstatus/internal/bar"
	"codeberg.org/mutker/barstatus/internal/telemetry"
)

const (
	MetricUnknownText = "metric unknown"

	// StaleAfter is the age in minutes beyond which a reading is Bad
	// regardless of its value.
	StaleAfter = 10
	// MetricLow and MetricHigh bound the Good range, both inclusive.
	MetricLow  = 70.0
	MetricHigh = 160.0
)

var trendGlyphs = map[telemetry.Trend]string{
	telemetry.TrendDoubleUp:      "⇈",
	telemetry.TrendSingleUp:      "↑",
	telemetry.TrendFortyFiveUp:   "➚",
	telemetry.TrendFlat:          "→",
	telemetry.TrendFortyFiveDown: "➘",
	telemetry.TrendSingleDown:    "↓",
	telemetry.TrendDoubleDown:    "⇊",
}

type metricInput struct {
	value      float64
	ageMinutes int64
}

// MetricRules decides the tier of the remote metric block. Staleness is
// checked before the value. A value that compares false everywhere (NaN)
// falls through to Unknown.
var MetricRules = Rules[metricInput]{
	Rules: []Rule[metricInput]{
		{"stale", func(in metricInput) bool { return in.ageMinutes > StaleAfter }, bar.Bad},
		{"low", func(in metricInput) bool { return in.value < MetricLow }, bar.Bad},
		{"in-range", func(in metricInput) bool { return in.value <= MetricHigh }, bar.Good},
		{"high", func(in metricInput) bool { return in.value > MetricHigh }, bar.Bad},
	},
	Default: bar.Unknown,
}

// TrendGlyph returns the arrow for a trend code, or "" for unknown codes.
func TrendGlyph(t telemetry.Trend) string {
	return trendGlyphs[t]
}

// AgeMinutes is the whole number of minutes between the reading and now.
// Readings stamped in the future have age zero.
func AgeMinutes(r telemetry.MetricReading, now time.Time) int64 {
	age := now.UnixMilli() - r.ObservedAt
	if age < 0 {
		return 0
	}
	return age / time.Minute.Milliseconds()
}

// Metric renders the latest remote reading. ok is false when no reading
// has ever been received.
func Metric(r telemetry.MetricReading, ok bool, now time.Time) bar.Block {
	if !ok {
		return bar.NewBlock(MetricUnknownText, bar.Unknown)
	}

	age := AgeMinutes(r, now)
	tier, _ := MetricRules.Eval(metricInput{value: r.Value, ageMinutes: age})

	text := fmt.Sprintf("%s%s (%dm)",
		strconv.FormatFloat(r.Value, 'f', -1, 64), TrendGlyph(r.Trend), age)

	return bar.NewBlock(text, tier)
}
