package classify_test

import (
	stderrors "errors"
	"testing"

	"codeberg.org/mutker/barstatus/internal/bar"
	"codeberg.org/mutker/barstatus/internal/classify"
	"codeberg.org/mutker/barstatus/internal/telemetry"
	"github.com/stretchr/testify/assert"
)

func TestWireless(t *testing.T) {
	tests := []struct {
		name    string
		reading telemetry.WirelessReading
		text    string
		tier    bar.Tier
	}{
		{"associated", telemetry.WirelessReading{SSID: "home-net", Associated: true}, "home-net", bar.Good},
		{"not associated", telemetry.WirelessReading{}, "no wifi", bar.Unknown},
		{"associated without ssid", telemetry.WirelessReading{Associated: true}, "no wifi", bar.Unknown},
		{"query failure", telemetry.WirelessReading{Err: stderrors.New("netlink")}, "wifi error", bar.Bad},
		{"failure wins over stale ssid", telemetry.WirelessReading{SSID: "x", Associated: true, Err: stderrors.New("netlink")}, "wifi error", bar.Bad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := classify.Wireless(tt.reading)
			assert.Equal(t, tt.text, b.FullText)
			assert.Equal(t, tt.tier, b.Tier())
		})
	}
}

func TestWirelessOutcomesAreDistinct(t *testing.T) {
	ok := classify.Wireless(telemetry.WirelessReading{SSID: "home-net", Associated: true})
	none := classify.Wireless(telemetry.WirelessReading{})
	failed := classify.Wireless(telemetry.WirelessReading{Err: stderrors.New("x")})

	assert.NotEqual(t, ok.Tier(), none.Tier())
	assert.NotEqual(t, none.Tier(), failed.Tier())
	assert.NotEqual(t, ok.Tier(), failed.Tier())
	assert.NotEqual(t, none.FullText, failed.FullText)
}
