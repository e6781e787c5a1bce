// Package classify maps raw telemetry readings onto display blocks. Every
// classifier is total over its input, including error readings.
package classify

import "codeberg.org/mutker/barstatus/internal/bar"

// Rule is one entry of a precedence table. Rules are evaluated in order
// and the first match decides the tier.
type Rule[T any] struct {
	Name  string
	Match func(T) bool
	Tier  bar.Tier
}

// Rules is an ordered precedence table with a fallback tier.
type Rules[T any] struct {
	Rules   []Rule[T]
	Default bar.Tier
}

// Eval returns the tier of the first matching rule and its name, or the
// default tier and "default".
func (rs Rules[T]) Eval(v T) (bar.Tier, string) {
	for _, r := range rs.Rules {
		if r.Match(v) {
			return r.Tier, r.Name
		}
	}
	return rs.Default, "default"
}
