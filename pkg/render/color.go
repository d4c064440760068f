// pkg/render/color.go
package render

import "image/color"

// DarkenColor затемняет цвет вдвое.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha возвращает цвет с заменённой альфой.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
