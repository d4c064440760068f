package entity

import (
	"math"
	"testing"
	"time"

	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/internal/input"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArmedPlayer(shots int) (*Player, *Pool[*Projectile], *Pool[*Projectile]) {
	p := NewPlayer(320, 240, 65, 65, "viper.png")
	primary := newShotPool(shots)
	split := newSplitPool(shots)
	p.SetWeapons(primary, split)
	return p, primary, split
}

func activeFrame(i uint64, in input.State) Frame {
	return Frame{Now: epoch, Input: in, Width: 640, Height: 480, Index: i}
}

var fire = input.State{input.KeyFire: true}

func TestEntranceIsTimeBased(t *testing.T) {
	p := NewPlayer(0, 0, 65, 65, "")
	p.SetComing(epoch, 100, 500, 100, 300)

	assert.Equal(t, PhaseEntering, p.Phase())
	assert.Equal(t, 100.0, p.Position.X)
	assert.Equal(t, 500.0, p.Position.Y)

	want := []float64{500, 450, 400, 350, 300}
	for sec, y := range want {
		p.Update(Frame{Now: epoch.Add(time.Duration(sec) * time.Second), Width: 640, Height: 480})
		assert.Equal(t, y, p.Position.Y, "t=%d", sec)
		assert.Equal(t, 100.0, p.Position.X)
		if sec < 4 {
			assert.True(t, p.Entering(), "still entering at t=%d", sec)
		}
	}
	assert.Equal(t, PhaseActive, p.Phase())
}

func TestEntranceClampsOvershoot(t *testing.T) {
	p := NewPlayer(0, 0, 65, 65, "")
	p.SetComing(epoch, 100, 500, 100, 300)

	p.Update(Frame{Now: epoch.Add(10 * time.Second), Width: 640, Height: 480})
	assert.Equal(t, 300.0, p.Position.Y)
	assert.False(t, p.Entering())
}

func TestEntranceIgnoresInput(t *testing.T) {
	p, primary, _ := newArmedPlayer(10)
	p.SetComing(epoch, 100, 500, 100, 300)

	in := input.State{input.KeyLeft: true, input.KeyFire: true}
	p.Update(Frame{Now: epoch.Add(time.Second), Input: in, Width: 640, Height: 480})

	assert.Equal(t, 100.0, p.Position.X)
	assert.Equal(t, 0, primary.Live())
	assert.Equal(t, 0, p.FireCooldown())
}

func TestEntrancePublishesFinish(t *testing.T) {
	d := event.NewDispatcher()
	var got []event.Event
	d.Subscribe(event.ListenerFunc(func(e event.Event) { got = append(got, e) }), event.EntranceFinished)

	p := NewPlayer(0, 0, 65, 65, "")
	p.SetEvents(d)
	p.SetComing(epoch, 100, 500, 100, 300)
	p.Update(Frame{Now: epoch.Add(2 * time.Second)})
	require.Empty(t, got)
	p.Update(Frame{Now: epoch.Add(4 * time.Second)})
	require.Len(t, got, 1)
}

func TestBoundaryClamp(t *testing.T) {
	p := NewPlayer(0, 0, 65, 65, "")
	p.Position.Set(-50, 900)

	p.Update(activeFrame(0, nil))

	assert.Equal(t, 0.0, p.Position.X)
	assert.Equal(t, 480.0, p.Position.Y)
}

func TestDiagonalMovementIsNotNormalised(t *testing.T) {
	p := NewPlayer(100, 100, 65, 65, "")
	p.Update(activeFrame(0, input.State{input.KeyRight: true, input.KeyDown: true}))
	assert.Equal(t, 103.0, p.Position.X)
	assert.Equal(t, 103.0, p.Position.Y)

	p.Update(activeFrame(1, input.State{input.KeyLeft: true, input.KeyUp: true}))
	assert.Equal(t, 100.0, p.Position.X)
	assert.Equal(t, 100.0, p.Position.Y)
}

func TestFireCadence(t *testing.T) {
	p, primary, split := newArmedPlayer(10)

	p.Update(activeFrame(0, fire))
	require.Equal(t, 1, primary.Live())
	require.Equal(t, 2, split.Live())

	for i := uint64(1); i < 9; i++ {
		p.Update(activeFrame(i, nil))
	}
	p.Update(activeFrame(9, fire))
	assert.Equal(t, 1, primary.Live(), "cooldown still negative at frame 9")
	assert.Equal(t, 2, split.Live())

	p.Update(activeFrame(10, fire))
	assert.Equal(t, 2, primary.Live())
	assert.Equal(t, 4, split.Live())
}

func TestCooldownAdvancesEveryActiveFrame(t *testing.T) {
	p, _, _ := newArmedPlayer(10)
	p.Update(activeFrame(0, fire))
	assert.Equal(t, -9, p.FireCooldown())
	p.Update(activeFrame(1, nil))
	assert.Equal(t, -8, p.FireCooldown())
}

func TestFireAttemptResetsCooldownEvenWhenSaturated(t *testing.T) {
	p, primary, split := newArmedPlayer(1)
	p.FireInterval = 1

	d := event.NewDispatcher()
	var dropped []string
	d.Subscribe(event.ListenerFunc(func(e event.Event) {
		dropped = append(dropped, e.Data.(event.SpawnData).Pool)
	}), event.SpawnDropped)
	p.SetEvents(d)

	p.Update(activeFrame(0, fire))
	p.Update(activeFrame(1, fire))

	assert.Equal(t, 1, primary.Live())
	assert.Equal(t, 2, split.Live())
	// -1 после попытки, затем +1; без сброса было бы 1
	assert.Equal(t, 0, p.FireCooldown())
	assert.Equal(t, []string{event.WeaponPrimary, event.WeaponSplit}, dropped)
}

func TestPrimaryShotInheritsPlayerDirection(t *testing.T) {
	p, primary, _ := newArmedPlayer(2)
	p.Position.Set(200, 300)

	p.Update(activeFrame(0, fire))

	shot := primary.At(0)
	assert.Equal(t, 200.0, shot.Position.X)
	assert.Equal(t, 300.0, shot.Position.Y)
	assert.Equal(t, 0.0, shot.Direction.X)
	assert.Equal(t, -1.0, shot.Direction.Y)
	assert.Equal(t, p.Angle, shot.Angle)
}

func TestSplitShotAngles(t *testing.T) {
	p, _, split := newArmedPlayer(2)
	p.Position.Set(150, 250)

	p.Update(activeFrame(0, fire))

	cw, ccw := split.At(0), split.At(1)
	rad280 := 280 * math.Pi / 180
	rad260 := 260 * math.Pi / 180
	assert.InDelta(t, math.Cos(rad280), cw.Direction.X, 1e-12)
	assert.InDelta(t, math.Sin(rad280), cw.Direction.Y, 1e-12)
	assert.InDelta(t, math.Cos(rad260), ccw.Direction.X, 1e-12)
	assert.InDelta(t, math.Sin(rad260), ccw.Direction.Y, 1e-12)
	for _, s := range []*Projectile{cw, ccw} {
		assert.Equal(t, 150.0, s.Position.X)
		assert.Equal(t, 250.0, s.Position.Y)
		assert.True(t, s.Alive())
	}
}

func TestShotSpawnedThisFrameMovesNextFrame(t *testing.T) {
	p, primary, _ := newArmedPlayer(2)
	p.Position.Set(100, 200)

	f := activeFrame(0, fire)
	p.Update(f)
	assert.Equal(t, 200.0, primary.At(0).Position.Y)

	primary.Update(activeFrame(1, nil))
	assert.Equal(t, 193.0, primary.At(0).Position.Y)
}

func TestPlayerBlinksWhileEntering(t *testing.T) {
	p := NewPlayer(0, 0, 65, 65, "")
	p.SetComing(epoch, 100, 500, 100, 300)
	c := newFakeCanvas(640, 480)

	p.Draw(c, frameTime(20))  // 20 % 100 < 50
	p.Draw(c, frameTime(170)) // 70 ≥ 50

	require.Len(t, c.alphas, 2)
	assert.Equal(t, 0.5, c.alphas[0])
	assert.Equal(t, 1.0, c.alphas[1])
	assert.Equal(t, 1.0, c.alpha, "alpha must be reset after drawing")
}

func TestActivePlayerDrawsOpaque(t *testing.T) {
	p := NewPlayer(100, 100, 64, 64, "")
	c := newFakeCanvas(640, 480)

	p.Draw(c, frameTime(10))

	assert.Equal(t, []string{"draw 68.0 68.0 64.0 64.0"}, c.calls)
	assert.Equal(t, []float64{1.0}, c.alphas)
}

func TestDeadPlayerIsInert(t *testing.T) {
	p, primary, _ := newArmedPlayer(2)
	p.Kill()
	c := newFakeCanvas(640, 480)

	p.Update(activeFrame(0, input.State{input.KeyFire: true, input.KeyLeft: true}))
	p.Draw(c, epoch)

	assert.Equal(t, 320.0, p.Position.X)
	assert.Equal(t, 0, primary.Live())
	assert.Empty(t, c.calls)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "entering", PhaseEntering.String())
	assert.Equal(t, "active", PhaseActive.String())
}

func TestDelayEntranceAfterPause(t *testing.T) {
	p := NewPlayer(0, 0, 65, 65, "")
	p.SetComing(epoch, 100, 500, 100, 300)
	p.DelayEntrance(2 * time.Second)

	p.Update(Frame{Now: epoch.Add(3 * time.Second)})
	assert.Equal(t, 450.0, p.Position.Y)
}

func TestShotFiredReportsAcquiredSlot(t *testing.T) {
	d := event.NewDispatcher()
	var fired []event.SpawnData
	d.Subscribe(event.ListenerFunc(func(e event.Event) { fired = append(fired, e.Data.(event.SpawnData)) }), event.ShotFired)

	p, primary, split := newArmedPlayer(3)
	p.SetEvents(d)
	primary.At(0).Set(0, 0)
	split.At(1).Set(0, 0) // первая пара наполовину занята

	p.Update(activeFrame(7, fire))

	require.Len(t, fired, 2)
	assert.Equal(t, event.WeaponPrimary, fired[0].Pool)
	assert.Equal(t, 1, fired[0].Slot)
	assert.True(t, primary.At(1).Alive())
	assert.Equal(t, event.WeaponSplit, fired[1].Pool)
	assert.Equal(t, 2, fired[1].Slot)
	assert.True(t, split.At(2).Alive())
	assert.True(t, split.At(3).Alive())
	assert.False(t, split.At(0).Alive())
	assert.Equal(t, uint64(7), fired[1].Frame)
}

func TestSetComingClearsCooldown(t *testing.T) {
	p, _, _ := newArmedPlayer(10)
	p.Update(activeFrame(0, fire))
	require.Negative(t, p.FireCooldown())

	p.SetComing(epoch, 100, 500, 100, 300)
	assert.Equal(t, 0, p.FireCooldown())

	// первый кадр после вылета уже может стрелять
	p.Update(Frame{Now: epoch.Add(10 * time.Second), Width: 640, Height: 480})
	require.False(t, p.Entering())
	p.Update(Frame{Now: epoch.Add(10 * time.Second), Input: fire, Width: 640, Height: 480})
	assert.Equal(t, -p.FireInterval+1, p.FireCooldown())
}
