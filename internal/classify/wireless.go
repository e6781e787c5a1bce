package classify

import (
	"codeberg.org/mutker/barstatus/internal/bar"
	"codeberg.org/mutker/barstatus/internal/telemetry"
)

const (
	NoWifiText    = "no wifi"
	WifiErrorText = "wifi error"
)

// Wireless renders the associated network, if any.
func Wireless(r telemetry.WirelessReading) bar.Block {
	switch {
	case r.Err != nil:
		return bar.NewBlock(WifiErrorText, bar.Bad)
	case r.Associated && r.SSID != "":
		return bar.NewBlock(r.SSID, bar.Good)
	default:
		return bar.NewBlock(NoWifiText, bar.Unknown)
	}
}
