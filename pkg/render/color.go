package render

import (
	"image/color"

	"spoon-defense/internal/utils"
)

// MapColors holds the colors of the static board.
type MapColors struct {
	BackgroundColor color.RGBA
	GrassColor      color.RGBA
	GrassAltColor   color.RGBA
	RoadColor       color.RGBA
	RoadTurnColor   color.RGBA
	StrokeColor     color.RGBA
	TextDarkColor   color.RGBA
	StrokeWidth     float32
}

// DarkenColor halves the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor multiplies each channel by k, saturating at 255.
func ScaleColor(c color.RGBA, k float64) color.RGBA {
	scale := func(v uint8) uint8 {
		f := float64(v) * k
		if f > 255 {
			return 255
		}
		if f < 0 {
			return 0
		}
		return uint8(f)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// MixColor blends a toward b by t in [0,1].
func MixColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(utils.Lerp(float64(x), float64(y), t)) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// WithAlpha replaces the alpha channel scaled by a in [0,1].
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	c.A = uint8(float64(c.A) * a)
	return c
}
