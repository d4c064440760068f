package entity

import (
	"time"

	"go-arcade-shooter/internal/config"
)

// Projectile летит по своему направлению и умирает, уйдя за верхний край.
type Projectile struct {
	Entity
	Speed float64
}

// NewProjectile создаёт мёртвый снаряд для пула.
func NewProjectile(w, h, speed float64, imagePath string) *Projectile {
	return &Projectile{
		Entity: newEntity(0, 0, w, h, 0, imagePath),
		Speed:  speed,
	}
}

// NewShot — снаряд с размерами и скоростью по умолчанию.
func NewShot(imagePath string) *Projectile {
	return NewProjectile(config.ShotWidth, config.ShotHeight, config.ShotSpeed, imagePath)
}

// Set ставит снаряд в (x, y) и оживляет его. Life присваивается последним.
func (p *Projectile) Set(x, y float64) {
	p.Position.Set(x, y)
	p.Life = 1
}

// Update сдвигает снаряд. Ушедший за верхний край помечается мёртвым,
// но в этом кадре ещё сдвигается: проверка идёт по позиции до сдвига.
func (p *Projectile) Update(f Frame) {
	if p.Life <= 0 {
		return
	}
	if p.Position.Y+p.Height < 0 {
		p.Life = 0
	}
	p.move(p.Speed)
}

// Draw рисует снаряд повёрнутым по углу выстрела.
func (p *Projectile) Draw(c Canvas, _ time.Time) {
	if p.Life <= 0 {
		return
	}
	p.DrawRotated(c)
}
