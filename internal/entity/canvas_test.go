package entity

import (
	"fmt"
	"image"
	"image/color"
)

// fakeCanvas записывает вызовы вместо отрисовки.
type fakeCanvas struct {
	w, h   float64
	calls  []string
	alphas []float64 // прозрачность в момент каждого DrawImage
	alpha  float64
	depth  int
}

func newFakeCanvas(w, h float64) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, alpha: 1}
}

func (c *fakeCanvas) DrawImage(_ image.Image, x, y, w, h float64) {
	c.calls = append(c.calls, fmt.Sprintf("draw %.1f %.1f %.1f %.1f", x, y, w, h))
	c.alphas = append(c.alphas, c.alpha)
}

func (c *fakeCanvas) Save() {
	c.depth++
	c.calls = append(c.calls, "save")
}

func (c *fakeCanvas) Translate(x, y float64) {
	c.calls = append(c.calls, fmt.Sprintf("translate %.1f %.1f", x, y))
}

func (c *fakeCanvas) Rotate(theta float64) {
	c.calls = append(c.calls, fmt.Sprintf("rotate %.4f", theta))
}

func (c *fakeCanvas) Restore() {
	c.depth--
	c.calls = append(c.calls, "restore")
}

func (c *fakeCanvas) SetAlpha(a float64) { c.alpha = a }

func (c *fakeCanvas) FillRect(x, y, w, h float64, _ color.Color) {
	c.calls = append(c.calls, fmt.Sprintf("fill %.1f %.1f %.1f %.1f", x, y, w, h))
}

func (c *fakeCanvas) Size() (float64, float64) { return c.w, c.h }

func (c *fakeCanvas) draws() int {
	n := 0
	for _, call := range c.calls {
		if len(call) > 4 && call[:4] == "draw" {
			n++
		}
	}
	return n
}
