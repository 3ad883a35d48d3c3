package types

import "image/color"

var (
	ColorBackground = color.RGBA{44, 62, 80, 255}
	ColorText       = color.RGBA{236, 240, 241, 255}
	ColorHighlight  = color.RGBA{236, 240, 241, 255}
	ColorOutline    = color.RGBA{236, 240, 241, 255}
	ColorError      = color.RGBA{231, 76, 60, 255}
	ColorLeaf       = color.RGBA{34, 139, 34, 255}
	ColorOverlay    = color.RGBA{20, 28, 36, 180}
)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
