package render

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// HUD рисует строку состояния поверх поля.
type HUD struct {
	face       font.Face
	lineHeight int
}

// Status — данные для HUD
type Status struct {
	Elapsed      time.Duration
	Phase        string
	ShotsLive    int
	ShotsCap     int
	SplitLive    int
	SplitCap     int
	EnemiesLive  int
	EnemiesCap   int
	ShotsFired   int
	SpawnDropped int
}

// NewHUD создает HUD со встроенным шрифтом Go Regular.
func NewHUD(size float64) (*HUD, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hud font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create hud face: %w", err)
	}
	return &HUD{
		face:       face,
		lineHeight: face.Metrics().Height.Ceil(),
	}, nil
}

// Lines форматирует Status в строки HUD.
func (s Status) Lines() []string {
	return []string{
		fmt.Sprintf("%.1fs  %s", s.Elapsed.Seconds(), s.Phase),
		fmt.Sprintf("shots %d/%d  split %d/%d  enemies %d/%d",
			s.ShotsLive, s.ShotsCap, s.SplitLive, s.SplitCap, s.EnemiesLive, s.EnemiesCap),
		fmt.Sprintf("fired %d  dropped %d", s.ShotsFired, s.SpawnDropped),
	}
}

// Draw рисует строки, начиная с (x, y) — базовая линия первой строки.
func (h *HUD) Draw(screen *ebiten.Image, s Status, x, y int, clr color.Color) {
	for i, line := range s.Lines() {
		text.Draw(screen, line, h.face, x, y+i*h.lineHeight, clr)
	}
}
