package component

import "image/color"

// Renderable is the presentation hint copied from a definition on spawn.
type Renderable struct {
	Color  color.RGBA
	Radius float32 // cells
}
