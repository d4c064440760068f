package config

import (
	"image/color"

	"go-arcade-shooter/internal/utils"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480
	TPS          = 60

	ShotMaxCount  = 10 // основных выстрелов; парных столько же пар
	EnemyMaxCount = 10

	PlayerWidth        = 65.0
	PlayerHeight       = 65.0
	PlayerSpeed        = 3.0
	PlayerFireInterval = 10   // кадров между выстрелами
	EntranceRate       = 50.0 // пикселей в секунду
	EntranceOffsetIn   = 50.0 // старт ниже нижнего края
	EntranceOffsetEnd  = 100.0

	ShotWidth  = 32.0
	ShotHeight = 32.0
	ShotSpeed  = 7.0

	EnemyWidth  = 48.0
	EnemyHeight = 48.0
	EnemySpeed  = 3.0
	EnemyLife   = 1

	ReadyPollInterval = 100 // мс между проверками загрузки

	BlinkPeriodMs = 100
	BlinkOnMs     = 50
	BlinkAlpha    = 0.5
)

// Углы в радианах. Вверх в экранных координатах — 270°.
var (
	AngleUp       = utils.DegToRad(270)
	SplitAngleCW  = utils.DegToRad(280)
	SplitAngleCCW = utils.DegToRad(260)
)

const (
	PlayerImage     = "./image/viper.png"
	ShotImage       = "./image/viper_shot.png"
	SplitShotImage  = "./image/viper_single_shot.png"
	EnemySmallImage = "./image/enemy_small.png"
)

var (
	BackgroundColor  = color.RGBA{0xee, 0xee, 0xee, 255}
	PlaceholderColor = color.RGBA{220, 60, 60, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
)
