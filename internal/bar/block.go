// Package bar implements the i3bar JSON protocol: blocks, frames and the
// stream writer that feeds them to the bar on stdout.
package bar

// Tier is the semantic color class of a block, independent of the
// concrete color it is painted with.
type Tier int

const (
	TierNone Tier = iota
	Good
	Bad
	Unknown
	Charging
)

func (t Tier) String() string {
	switch t {
	case Good:
		return "good"
	case Bad:
		return "bad"
	case Unknown:
		return "unknown"
	case Charging:
		return "charging"
	default:
		return "none"
	}
}

// Palette maps tiers to display colors.
var palette = map[Tier]string{
	Good:     "#8fc029",
	Bad:      "#dc2566",
	Unknown:  "#9358fe",
	Charging: "#e7db75",
}

// Color returns the display color for t, or false for TierNone.
func (t Tier) Color() (string, bool) {
	c, ok := palette[t]
	return c, ok
}

// Block is one segment of the status line.
type Block struct {
	FullText  string  `json:"full_text"`
	Color     *string `json:"color"`
	Separator bool    `json:"separator"`

	tier Tier
}

// NewBlock returns a block painted with the color of tier.
func NewBlock(text string, tier Tier) Block {
	b := Block{FullText: text, tier: tier}
	if c, ok := tier.Color(); ok {
		b.Color = &c
	}
	return b
}

// Tier returns the tier the block was created with.
func (b Block) Tier() Tier {
	return b.tier
}

// Frame is the ordered set of blocks emitted for one tick.
type Frame []Block
