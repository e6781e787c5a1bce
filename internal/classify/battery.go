package classify

import (
	"fmt"
	"math"

	"codeberg.org/mutker/barstatus/internal/bar"
	"codeberg.org/mutker/barstatus/internal/telemetry"
)

const (
	// LowBattery is the percentage below which a non-charging battery is Bad.
	LowBattery = 15.0

	chargingGlyph = "⚡"
	unknownGlyph  = "?"
)

type batteryInput struct {
	state   telemetry.ChargeState
	percent float64
}

// BatteryRules decides the tier of the primary battery block. Charging
// wins over the low-battery warning. A discharging battery above the
// threshold stays Unknown; nothing but Full is ever Good.
var BatteryRules = Rules[batteryInput]{
	Rules: []Rule[batteryInput]{
		{"charging", func(in batteryInput) bool { return in.state == telemetry.StateCharging }, bar.Charging},
		{"full", func(in batteryInput) bool { return in.state == telemetry.StateFull }, bar.Good},
		{"low", func(in batteryInput) bool { return in.percent < LowBattery }, bar.Bad},
	},
	Default: bar.Unknown,
}

// Battery renders the charge level and the full-versus-design capacity.
func Battery(r telemetry.BatteryReading) []bar.Block {
	percent := r.CurrentRatio * 100
	design := r.DesignRatio * 100

	if r.Err != nil || !finite(percent) {
		return []bar.Block{
			bar.NewBlock("battery error", bar.Bad),
			bar.NewBlock("(?%)", bar.TierNone),
		}
	}

	tier, _ := BatteryRules.Eval(batteryInput{state: r.State, percent: percent})

	secondary := "(?%)"
	if finite(design) {
		secondary = fmt.Sprintf("(%.0f%%)", design)
	}

	return []bar.Block{
		bar.NewBlock(fmt.Sprintf("%s%.1f%%", stateGlyph(r.State), percent), tier),
		bar.NewBlock(secondary, bar.TierNone),
	}
}

func stateGlyph(s telemetry.ChargeState) string {
	switch s {
	case telemetry.StateCharging:
		return chargingGlyph
	case telemetry.StateUnknown:
		return unknownGlyph
	default:
		return ""
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
