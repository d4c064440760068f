package entity

import (
	"time"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/internal/input"
	"go-arcade-shooter/internal/utils"
)

// Phase — фаза игрока
type Phase int

const (
	PhaseActive Phase = iota
	PhaseEntering
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseActive:
		return "active"
	}
	return "unknown"
}

// Player — корабль игрока. Пока идёт вылет (PhaseEntering), ввод
// игнорируется; после — управление стрелками и стрельба из двух пулов.
type Player struct {
	Entity
	Speed        float64
	FireInterval int     // кадров между выстрелами
	EntranceRate float64 // пикселей в секунду во время вылета

	phase             Phase
	entranceStartedAt time.Time
	entranceStart     *component.Vector2
	entranceEnd       *component.Vector2

	primary *Pool[*Projectile]
	split   *Pool[*Projectile]

	// Отрицательный, пока идёт перезарядка; стрелять можно при >= 0
	fireCooldown int

	events event.Publisher
}

// NewPlayer создаёт живого игрока в активной фазе.
func NewPlayer(x, y, w, h float64, imagePath string) *Player {
	return &Player{
		Entity:       newEntity(x, y, w, h, 1, imagePath),
		Speed:        config.PlayerSpeed,
		FireInterval: config.PlayerFireInterval,
		EntranceRate: config.EntranceRate,
		phase:        PhaseActive,
	}
}

// SetWeapons передаёт игроку пулы снарядов. Игрок ими не владеет.
func (p *Player) SetWeapons(primary, split *Pool[*Projectile]) {
	p.primary = primary
	p.split = split
}

// SetEvents подключает получателя событий (может быть nil).
func (p *Player) SetEvents(pub event.Publisher) {
	p.events = pub
}

// SetComing запускает вылет из (startX, startY) в (endX, endY).
// Перезарядка сбрасывается: после вылета можно стрелять сразу.
func (p *Player) SetComing(now time.Time, startX, startY, endX, endY float64) {
	p.phase = PhaseEntering
	p.fireCooldown = 0
	p.entranceStartedAt = now
	p.Position.Set(startX, startY)
	p.entranceStart = &component.Vector2{X: startX, Y: startY}
	p.entranceEnd = &component.Vector2{X: endX, Y: endY}
}

// DelayEntrance сдвигает начало вылета на d, например после паузы.
func (p *Player) DelayEntrance(d time.Duration) {
	if p.phase == PhaseEntering {
		p.entranceStartedAt = p.entranceStartedAt.Add(d)
	}
}

func (p *Player) Phase() Phase {
	return p.phase
}

// Entering — идёт ли ещё вылет.
func (p *Player) Entering() bool {
	return p.phase == PhaseEntering
}

func (p *Player) FireCooldown() int {
	return p.fireCooldown
}

func (p *Player) Update(f Frame) {
	if p.Life <= 0 {
		return
	}
	if p.phase == PhaseEntering {
		p.updateEntrance(f)
		return
	}
	p.updateActive(f)
}

// updateEntrance двигает корабль вверх с постоянной скоростью по времени,
// а не по кадрам.
func (p *Player) updateEntrance(f Frame) {
	elapsed := f.Now.Sub(p.entranceStartedAt).Seconds()
	y := p.entranceStart.Y - elapsed*p.EntranceRate
	if y <= p.entranceEnd.Y {
		y = p.entranceEnd.Y
		p.phase = PhaseActive
		p.Position.SetY(y)
		p.publish(event.EntranceFinished, event.SpawnData{Slot: -1, X: p.Position.X, Y: y, Frame: f.Index})
		return
	}
	p.Position.SetY(y)
}

func (p *Player) updateActive(f Frame) {
	in := f.Input
	if in.Pressed(input.KeyLeft) {
		p.Position.X -= p.Speed
	}
	if in.Pressed(input.KeyRight) {
		p.Position.X += p.Speed
	}
	if in.Pressed(input.KeyUp) {
		p.Position.Y -= p.Speed
	}
	if in.Pressed(input.KeyDown) {
		p.Position.Y += p.Speed
	}

	// Ограничиваем центр полем; спрайт может частично выходить за край
	p.Position.Set(utils.Clamp(p.Position.X, 0, f.Width), utils.Clamp(p.Position.Y, 0, f.Height))

	if in.Pressed(input.KeyFire) && p.fireCooldown >= 0 {
		p.firePrimary(f)
		p.fireSplit(f)
		p.fireCooldown = -p.FireInterval
	}

	p.fireCooldown++
}

// firePrimary — один снаряд прямо по направлению корабля.
func (p *Player) firePrimary(f Frame) {
	if p.primary == nil {
		return
	}
	i, shot, ok := p.primary.Acquire()
	if !ok {
		p.publish(event.SpawnDropped, event.SpawnData{Pool: event.WeaponPrimary, Slot: -1, X: p.Position.X, Y: p.Position.Y, Frame: f.Index})
		return
	}
	shot.Angle = p.Angle
	shot.SetDirection(p.Direction.X, p.Direction.Y)
	shot.Set(p.Position.X, p.Position.Y)
	p.publish(event.ShotFired, event.SpawnData{Pool: event.WeaponPrimary, Slot: i, X: p.Position.X, Y: p.Position.Y, Frame: f.Index})
}

// fireSplit — пара снарядов под 280° и 260°, т.е. ±10° от вертикали.
func (p *Player) fireSplit(f Frame) {
	if p.split == nil {
		return
	}
	i, right, left, ok := p.split.AcquirePair()
	if !ok {
		p.publish(event.SpawnDropped, event.SpawnData{Pool: event.WeaponSplit, Slot: -1, X: p.Position.X, Y: p.Position.Y, Frame: f.Index})
		return
	}
	right.SetDirectionFromAngle(config.SplitAngleCW)
	right.Set(p.Position.X, p.Position.Y)
	left.SetDirectionFromAngle(config.SplitAngleCCW)
	left.Set(p.Position.X, p.Position.Y)
	p.publish(event.ShotFired, event.SpawnData{Pool: event.WeaponSplit, Slot: i, X: p.Position.X, Y: p.Position.Y, Frame: f.Index})
}

// Draw рисует корабль; во время вылета он мигает полупрозрачностью.
// Прозрачность всегда возвращается в 1.0.
func (p *Player) Draw(c Canvas, now time.Time) {
	if p.Life <= 0 {
		return
	}
	defer c.SetAlpha(1.0)
	if p.phase == PhaseEntering && now.UnixMilli()%config.BlinkPeriodMs < config.BlinkOnMs {
		c.SetAlpha(config.BlinkAlpha)
	}
	p.DrawAxisAligned(c)
}

func (p *Player) publish(t event.EventType, data event.SpawnData) {
	if p.events == nil {
		return
	}
	p.events.Dispatch(event.Event{Type: t, Data: data})
}
