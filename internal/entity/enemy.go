package entity

import (
	"time"

	"go-arcade-shooter/internal/config"
)

// DefaultEnemyLife — жизнь врага, если не задана явно
const DefaultEnemyLife = config.EnemyLife

// Enemy летит по своему направлению и умирает, уйдя за нижний край.
type Enemy struct {
	Entity
	Speed float64
}

// NewEnemy создаёт мёртвого врага для пула.
func NewEnemy(w, h, speed float64, imagePath string) *Enemy {
	return &Enemy{
		Entity: newEntity(0, 0, w, h, 0, imagePath),
		Speed:  speed,
	}
}

// Set ставит врага в (x, y) с заданной жизнью. Life присваивается последним.
func (e *Enemy) Set(x, y float64, life int) {
	e.Position.Set(x, y)
	e.Life = life
}

// Update сдвигает врага; за нижним краем он умирает, сдвигаясь в последний раз.
func (e *Enemy) Update(f Frame) {
	if e.Life <= 0 {
		return
	}
	if e.Position.Y-e.Height > f.Height {
		e.Life = 0
	}
	e.move(e.Speed)
}

// Draw рисует врага без поворота.
func (e *Enemy) Draw(c Canvas, _ time.Time) {
	if e.Life <= 0 {
		return
	}
	e.DrawAxisAligned(c)
}
