// cmd/game/main.go
package main

import (
	"flag"
	"os"
	"time"

	"go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/assets"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/logging"
	"go-arcade-shooter/internal/state"
	"go-arcade-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
	width        int
	height       int
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(time.Now())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "path to a JSON/YAML/TOML settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		bootLog := logging.New("info", os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load settings")
	}
	log := logging.New(settings.Log.Level, os.Stderr)

	game, err := app.NewGame(settings, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}
	hud, err := render.NewHUD(12)
	if err != nil {
		log.Warn().Err(err).Msg("hud disabled")
	}

	sm := state.NewStateMachine()
	loader := assets.NewSpriteLoader(log)
	sm.SetState(state.NewLoadingState(sm, game, loader, log, func() state.State {
		return state.NewPlayState(sm, game, hud, log)
	}))

	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowSize(settings.Screen.Width, settings.Screen.Height)
	ebiten.SetWindowTitle("Arcade Shooter")
	if err := ebiten.RunGame(&AppGame{
		stateMachine: sm,
		width:        settings.Screen.Width,
		height:       settings.Screen.Height,
	}); err != nil {
		log.Fatal().Err(err).Msg("game loop stopped")
	}
}
