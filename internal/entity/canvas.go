package entity

import (
	"image"
	"image/color"
	"time"

	"go-arcade-shooter/internal/input"
)

// Canvas — минимальный контракт отрисовки, которым пользуются сущности.
// Преобразования накапливаются как в 2D-контексте: Translate и Rotate
// применяются к системе координат, Save/Restore сохраняют и возвращают её.
type Canvas interface {
	DrawImage(img image.Image, x, y, w, h float64)
	Save()
	Translate(x, y float64)
	Rotate(theta float64)
	Restore()
	SetAlpha(alpha float64)
	FillRect(x, y, w, h float64, clr color.Color)
	Size() (w, h float64)
}

// Frame — всё, что сущность получает на один шаг обновления.
type Frame struct {
	Now    time.Time
	Input  input.State
	Width  float64
	Height float64
	Index  uint64 // номер кадра с начала игры
}

// Updater продвигает сущность на один кадр.
type Updater interface {
	Update(f Frame)
}

// Drawer рисует сущность. Мёртвые сущности ничего не рисуют.
type Drawer interface {
	Draw(c Canvas, now time.Time)
}
