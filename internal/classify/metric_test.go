package classify_test

import (
	"math"
	"testing"
	"time"

	"codeberg.org/mutker/barstatus/internal/bar"
	"codeberg.org/mutker/barstatus/internal/classify"
	"codeberg.org/mutker/barstatus/internal/telemetry"
	"github.com/stretchr/testify/assert"
)

var metricNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func reading(value float64, trend telemetry.Trend, age time.Duration) telemetry.MetricReading {
	return telemetry.MetricReading{
		Value:      value,
		Trend:      trend,
		ObservedAt: metricNow.Add(-age).UnixMilli(),
	}
}

func TestMetricAbsent(t *testing.T) {
	for _, now := range []time.Time{metricNow, time.Unix(0, 0), metricNow.Add(1000 * time.Hour)} {
		b := classify.Metric(telemetry.MetricReading{}, false, now)
		assert.Equal(t, "metric unknown", b.FullText)
		assert.Equal(t, bar.Unknown, b.Tier())
	}
}

func TestMetricTiers(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		age   time.Duration
		tier  bar.Tier
	}{
		{"low", 69.9, 3 * time.Minute, bar.Bad},
		{"lower bound", 70, 3 * time.Minute, bar.Good},
		{"in range", 110, 3 * time.Minute, bar.Good},
		{"upper bound", 160, 3 * time.Minute, bar.Good},
		{"just above", 160.01, 3 * time.Minute, bar.Bad},
		{"high", 250, 0, bar.Bad},
		{"ten minutes is fresh", 110, 10*time.Minute + 59*time.Second, bar.Good},
		{"stale overrides in range", 110, 11 * time.Minute, bar.Bad},
		{"stale overrides bound", 70, 45 * time.Minute, bar.Bad},
		{"nan", math.NaN(), 3 * time.Minute, bar.Unknown},
		{"stale nan", math.NaN(), 30 * time.Minute, bar.Bad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := classify.Metric(reading(tt.value, telemetry.TrendFlat, tt.age), true, metricNow)
			assert.Equal(t, tt.tier, b.Tier())
		})
	}
}

func TestMetricText(t *testing.T) {
	tests := []struct {
		trend telemetry.Trend
		value float64
		age   time.Duration
		text  string
	}{
		{telemetry.TrendDoubleUp, 180, 0, "180⇈ (0m)"},
		{telemetry.TrendSingleUp, 150, time.Minute, "150↑ (1m)"},
		{telemetry.TrendFortyFiveUp, 140, 2 * time.Minute, "140➚ (2m)"},
		{telemetry.TrendFlat, 110, 3 * time.Minute, "110→ (3m)"},
		{telemetry.TrendFortyFiveDown, 100, 4*time.Minute + 59*time.Second, "100➘ (4m)"},
		{telemetry.TrendSingleDown, 90.5, 5 * time.Minute, "90.5↓ (5m)"},
		{telemetry.TrendDoubleDown, 60, 6 * time.Minute, "60⇊ (6m)"},
		{telemetry.Trend("NOT COMPUTABLE"), 110, 0, "110 (0m)"},
		{telemetry.Trend(""), 110, 0, "110 (0m)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.trend), func(t *testing.T) {
			b := classify.Metric(reading(tt.value, tt.trend, tt.age), true, metricNow)
			assert.Equal(t, tt.text, b.FullText)
		})
	}
}

func TestMetricFutureTimestamp(t *testing.T) {
	b := classify.Metric(reading(110, telemetry.TrendFlat, -5*time.Minute), true, metricNow)
	assert.Equal(t, "110→ (0m)", b.FullText)
	assert.Equal(t, bar.Good, b.Tier())
}

func TestMetricRulesOrder(t *testing.T) {
	names := make([]string, 0, len(classify.MetricRules.Rules))
	for _, r := range classify.MetricRules.Rules {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"stale", "low", "in-range", "high"}, names)
	assert.Equal(t, bar.Unknown, classify.MetricRules.Default)
}
