// internal/interfaces/game_context.go
package interfaces

import (
	"time"

	"go-arcade-shooter/internal/assets"
)

// GameContext — то, что нужно состоянию загрузки.
type GameContext interface {
	RequestSprites(l *assets.SpriteLoader)
	Targets() []assets.Target
	Ready() bool
	Start(now time.Time)
}
