// internal/state/pause_state.go
package state

import (
	"image/color"
	"time"

	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/interfaces"
	"go-arcade-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру; время паузы не засчитывается вылету.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	game          interfaces.Game
	pausedAt      time.Time
}

func NewPauseState(sm *StateMachine, prevState State, game interfaces.Game, now time.Time) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		game:          game,
		pausedAt:      now,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(now time.Time) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.resume(now)
	}
}

func (s *PauseState) resume(now time.Time) {
	s.game.Resume(now.Sub(s.pausedAt))
	s.stateMachine.SetState(s.previousState)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), pauseOverlay(), false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", b.Dx()/2-18, b.Dy()/2-8)
}

func (s *PauseState) Exit() {}

// pauseOverlay — затемнённый полупрозрачный цвет текста поверх кадра
func pauseOverlay() color.RGBA {
	return render.WithAlpha(render.DarkenColor(config.TextDarkColor), 128)
}
