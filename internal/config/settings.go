package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings — параметры, которые можно переопределить файлом или окружением.
type Settings struct {
	Screen ScreenSettings `mapstructure:"screen"`
	Pool   PoolSettings   `mapstructure:"pool"`
	Player PlayerSettings `mapstructure:"player"`
	Shot   ShotSettings   `mapstructure:"shot"`
	Enemy  EnemySettings  `mapstructure:"enemy"`
	Assets AssetSettings  `mapstructure:"assets"`
	Log    LogSettings    `mapstructure:"log"`
	Seed   int64          `mapstructure:"seed"`
}

type ScreenSettings struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type PoolSettings struct {
	Shots   int `mapstructure:"shots"`
	Enemies int `mapstructure:"enemies"`
}

type PlayerSettings struct {
	Speed        float64 `mapstructure:"speed"`
	FireInterval int     `mapstructure:"fireInterval"`
	EntranceRate float64 `mapstructure:"entranceRate"`
}

type ShotSettings struct {
	Speed float64 `mapstructure:"speed"`
}

type EnemySettings struct {
	Speed float64 `mapstructure:"speed"`
	Life  int     `mapstructure:"life"`
}

type AssetSettings struct {
	Player    string `mapstructure:"player"`
	Shot      string `mapstructure:"shot"`
	SplitShot string `mapstructure:"splitShot"`
	Enemy     string `mapstructure:"enemy"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
}

// EnvPrefix — префикс переменных окружения (SHOOTER_POOL_SHOTS и т.п.)
const EnvPrefix = "SHOOTER"

func setDefaults(v *viper.Viper) {
	v.SetDefault("screen.width", ScreenWidth)
	v.SetDefault("screen.height", ScreenHeight)

	v.SetDefault("pool.shots", ShotMaxCount)
	v.SetDefault("pool.enemies", EnemyMaxCount)

	v.SetDefault("player.speed", PlayerSpeed)
	v.SetDefault("player.fireInterval", PlayerFireInterval)
	v.SetDefault("player.entranceRate", EntranceRate)

	v.SetDefault("shot.speed", ShotSpeed)

	v.SetDefault("enemy.speed", EnemySpeed)
	v.SetDefault("enemy.life", EnemyLife)

	v.SetDefault("assets.player", PlayerImage)
	v.SetDefault("assets.shot", ShotImage)
	v.SetDefault("assets.splitShot", SplitShotImage)
	v.SetDefault("assets.enemy", EnemySmallImage)

	v.SetDefault("log.level", "info")
	v.SetDefault("seed", 0)
}

// Load читает настройки из path (JSON, YAML или TOML по расширению) поверх
// встроенных значений. Пустой path — только значения по умолчанию и окружение.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	st, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}
	return st, nil
}

// Default возвращает настройки без файла и окружения.
// Паникует, если встроенные значения не декодируются.
func Default() *Settings {
	v := viper.New()
	setDefaults(v)
	s, err := decode(v)
	if err != nil {
		panic(fmt.Sprintf("config: built-in defaults: %v", err))
	}
	return s
}

func decode(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return &s, nil
}

// Validate отклоняет значения, с которыми не смогут работать пулы и поле.
func (s *Settings) Validate() error {
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", s.Screen.Width, s.Screen.Height)
	}
	if s.Pool.Shots <= 0 {
		return fmt.Errorf("pool.shots must be positive, got %d", s.Pool.Shots)
	}
	if s.Pool.Enemies < 0 {
		return fmt.Errorf("pool.enemies must not be negative, got %d", s.Pool.Enemies)
	}
	if s.Player.FireInterval < 0 {
		return fmt.Errorf("player.fireInterval must not be negative, got %d", s.Player.FireInterval)
	}
	if s.Player.EntranceRate <= 0 {
		return fmt.Errorf("player.entranceRate must be positive, got %v", s.Player.EntranceRate)
	}
	return nil
}
