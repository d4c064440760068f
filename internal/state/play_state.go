package state

import (
	"time"

	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/input"
	"go-arcade-shooter/internal/interfaces"
	"go-arcade-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// PlayState — основное состояние: ввод, обновление и отрисовка кадра.
type PlayState struct {
	sm       *StateMachine
	game     interfaces.Game
	canvas   *render.Canvas
	hud      *render.HUD
	bindings input.Bindings[ebiten.Key]
	log      zerolog.Logger
	clock    func() time.Time
}

// DefaultBindings — стрелки для движения и Z для стрельбы
func DefaultBindings() input.Bindings[ebiten.Key] {
	return input.Bindings[ebiten.Key]{
		input.KeyUp:    {ebiten.KeyArrowUp},
		input.KeyDown:  {ebiten.KeyArrowDown},
		input.KeyLeft:  {ebiten.KeyArrowLeft},
		input.KeyRight: {ebiten.KeyArrowRight},
		input.KeyFire:  {ebiten.KeyZ},
	}
}

// NewPlayState; hud может быть nil — тогда HUD не рисуется.
func NewPlayState(sm *StateMachine, game interfaces.Game, hud *render.HUD, log zerolog.Logger) *PlayState {
	return &PlayState{
		sm:       sm,
		game:     game,
		canvas:   render.NewCanvas(),
		hud:      hud,
		bindings: DefaultBindings(),
		log:      log.With().Str("state", "play").Logger(),
		clock:    time.Now,
	}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update(now time.Time) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		p.sm.SetState(NewPauseState(p.sm, p, p.game, now))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		p.game.QueueSpawn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.log.Info().Msg("reset")
		p.game.Reset(now)
	}

	p.game.Update(now, p.bindings.Capture(ebiten.IsKeyPressed))
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	now := p.clock()
	p.canvas.Begin(screen)
	p.game.Draw(p.canvas, now)
	if p.hud != nil {
		p.hud.Draw(screen, p.game.Status(now), 8, 16, config.TextDarkColor)
	}
}

func (p *PlayState) Exit() {}
