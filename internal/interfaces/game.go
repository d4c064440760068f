package interfaces

import (
	"time"

	"go-arcade-shooter/internal/entity"
	"go-arcade-shooter/internal/input"
	"go-arcade-shooter/pkg/render"
)

// Game — то, что состояниям игры нужно от app.Game во время игры и паузы.
type Game interface {
	Update(now time.Time, in input.State)
	Draw(c entity.Canvas, now time.Time)
	Status(now time.Time) render.Status
	QueueSpawn()
	Reset(now time.Time)
	Resume(paused time.Duration)
}
