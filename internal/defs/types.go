package defs

import "image/color"

// Visuals holds presentation hints carried alongside a definition. The
// simulation never reads them.
type Visuals struct {
	Color color.RGBA `json:"color" jsonschema:"description=Tint used by presentation bindings"`
	Scale float64    `json:"scale" jsonschema:"description=Sprite scale relative to the default body size"`
}

// msToSeconds converts authored millisecond values into simulation seconds.
func msToSeconds(ms int) float64 {
	return float64(ms) / 1000
}
