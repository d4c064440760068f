package entity

import (
	"image"
	"math"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/utils"
)

// rotationBase — угол, при котором спрайт рисуется без поворота (нос вверх).
const rotationBase = math.Pi * 1.5

// Entity — общее состояние всех объектов на поле.
// Life <= 0 означает «мертва»: слот пула свободен, Update и Draw ничего не делают.
type Entity struct {
	Position  component.Vector2
	Width     float64
	Height    float64
	Angle     float64
	Direction component.Vector2
	Life      int
	ImagePath string

	sprite image.Image
	ready  bool
}

func newEntity(x, y, w, h float64, life int, imagePath string) Entity {
	return Entity{
		Position:  component.NewVector2(x, y),
		Width:     w,
		Height:    h,
		Angle:     config.AngleUp,
		Direction: component.NewVector2(0, -1),
		Life:      life,
		ImagePath: imagePath,
	}
}

// Alive — занимает ли сущность свой слот.
func (e *Entity) Alive() bool {
	return e.Life > 0
}

// Kill освобождает слот.
func (e *Entity) Kill() {
	e.Life = 0
}

// SetDirection перезаписывает обе компоненты направления.
func (e *Entity) SetDirection(x, y float64) {
	e.Direction.Set(x, y)
}

// SetDirectionFromAngle задаёт угол и пересчитывает направление (cos, sin).
func (e *Entity) SetDirectionFromAngle(angle float64) {
	e.Angle = angle
	e.Direction.Set(math.Cos(angle), math.Sin(angle))
}

// Ready — загружен ли спрайт.
func (e *Entity) Ready() bool {
	return e.ready
}

// MarkReady прикрепляет загруженный спрайт. Действует только первый вызов.
func (e *Entity) MarkReady(img image.Image) {
	if e.ready {
		return
	}
	e.sprite = img
	e.ready = true
}

// Sprite возвращает загруженное изображение (nil до готовности).
func (e *Entity) Sprite() image.Image {
	return e.sprite
}

// DrawAxisAligned рисует спрайт без поворота, центр — в Position.
func (e *Entity) DrawAxisAligned(c Canvas) {
	offsetX := e.Width / 2
	offsetY := e.Height / 2
	c.DrawImage(e.sprite, e.Position.X-offsetX, e.Position.Y-offsetY, e.Width, e.Height)
}

// DrawRotated поворачивает систему координат вокруг центра сущности на
// Angle - 3π/2 и рисует спрайт. Состояние канвы восстанавливается всегда.
func (e *Entity) DrawRotated(c Canvas) {
	c.Save()
	defer c.Restore()

	c.Translate(e.Position.X, e.Position.Y)
	c.Rotate(utils.NormalizeAngle(e.Angle - rotationBase))
	c.DrawImage(e.sprite, -e.Width/2, -e.Height/2, e.Width, e.Height)
}

// move сдвигает позицию на Direction * speed.
func (e *Entity) move(speed float64) {
	step := e.Direction.Scaled(speed)
	e.Position.Add(step.X, step.Y)
}
