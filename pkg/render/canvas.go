package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas реализует entity.Canvas поверх ebiten. Преобразования копятся
// в GeoM так же, как в 2D-контексте: последнее Translate/Rotate применяется
// к точкам первым.
type Canvas struct {
	screen  *ebiten.Image
	geo     ebiten.GeoM
	stack   []ebiten.GeoM
	alpha   float32
	sprites map[image.Image]*ebiten.Image
}

func NewCanvas() *Canvas {
	return &Canvas{
		alpha:   1,
		sprites: make(map[image.Image]*ebiten.Image),
	}
}

// Begin привязывает канву к экрану кадра и сбрасывает состояние.
func (c *Canvas) Begin(screen *ebiten.Image) {
	c.screen = screen
	c.geo.Reset()
	c.stack = c.stack[:0]
	c.alpha = 1
}

// Transform — текущее преобразование координат.
func (c *Canvas) Transform() ebiten.GeoM {
	return c.geo
}

// Alpha — текущая глобальная прозрачность.
func (c *Canvas) Alpha() float64 {
	return float64(c.alpha)
}

func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	if c.screen == nil || img == nil {
		return
	}
	src := c.sprite(img)
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.geo)
	op.ColorScale.ScaleAlpha(c.alpha)
	op.Filter = ebiten.FilterLinear
	c.screen.DrawImage(src, op)
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.geo)
}

func (c *Canvas) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	m.Concat(c.geo)
	c.geo = m
}

func (c *Canvas) Rotate(theta float64) {
	var m ebiten.GeoM
	m.Rotate(theta)
	m.Concat(c.geo)
	c.geo = m
}

// Restore возвращает последнее сохранённое состояние; без Save ничего не делает.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.geo = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) SetAlpha(alpha float64) {
	c.alpha = float32(alpha)
}

// FillRect заливает прямоугольник в экранных координатах.
func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	if c.screen == nil {
		return
	}
	vector.DrawFilledRect(c.screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *Canvas) Size() (float64, float64) {
	if c.screen == nil {
		return 0, 0
	}
	b := c.screen.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// sprite переводит image.Image в текстуру ebiten один раз.
func (c *Canvas) sprite(img image.Image) *ebiten.Image {
	if ei, ok := img.(*ebiten.Image); ok {
		return ei
	}
	if ei, ok := c.sprites[img]; ok {
		return ei
	}
	ei := ebiten.NewImageFromImage(img)
	c.sprites[img] = ei
	return ei
}
