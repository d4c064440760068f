package state

import (
	"time"

	"go-arcade-shooter/internal/assets"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

// LoadingState ждёт, пока все спрайты загрузятся, проверяя раз в
// ReadyPollInterval мс, и только потом запускает игру. Ждёт бесконечно.
type LoadingState struct {
	sm       *StateMachine
	game     interfaces.GameContext
	loader   *assets.SpriteLoader
	next     func() State
	log      zerolog.Logger
	lastPoll time.Time
	polls    int
}

// NewLoadingState — next создаёт состояние, в которое нужно перейти после загрузки.
func NewLoadingState(sm *StateMachine, game interfaces.GameContext, loader *assets.SpriteLoader, log zerolog.Logger, next func() State) *LoadingState {
	return &LoadingState{
		sm:     sm,
		game:   game,
		loader: loader,
		next:   next,
		log:    log.With().Str("state", "loading").Logger(),
	}
}

func (l *LoadingState) Enter() {
	l.game.RequestSprites(l.loader)
	l.log.Info().Int("entities", len(l.game.Targets())).Msg("waiting for sprites")
}

func (l *LoadingState) Update(now time.Time) {
	if !l.lastPoll.IsZero() && now.Sub(l.lastPoll) < config.ReadyPollInterval*time.Millisecond {
		return
	}
	l.lastPoll = now
	l.polls++
	l.loader.Poll()

	if !l.game.Ready() {
		return
	}
	l.log.Info().Int("polls", l.polls).Msg("all sprites ready")
	l.game.Start(now)
	l.sm.SetState(l.next())
}

func (l *LoadingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrint(screen, "Loading...")
}

func (l *LoadingState) Exit() {}
