package types

import "image/color"

var (
	ColorBackground    = color.RGBA{30, 30, 30, 255}
	ColorFieldBg       = color.RGBA{40, 40, 45, 255}
	ColorGrid          = color.RGBA{60, 60, 65, 255}
	ColorWall          = color.RGBA{120, 120, 130, 255}
	ColorSnakeHead     = color.RGBA{0, 255, 0, 255}
	ColorSnakeBody     = color.RGBA{0, 200, 0, 255}
	ColorFood          = color.RGBA{255, 80, 80, 255}
	ColorText          = color.RGBA{255, 255, 255, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{255, 255, 100, 255}
	ColorGameOver      = color.RGBA{255, 60, 60, 255}
	ColorOverlay       = color.RGBA{0, 0, 0, 140}
)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, float64(c.R)*factor)),
		G: uint8(min(255, float64(c.G)*factor)),
		B: uint8(min(255, float64(c.B)*factor)),
		A: c.A,
	}
}
