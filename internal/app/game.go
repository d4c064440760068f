package app

import (
	"fmt"
	"time"

	"go-arcade-shooter/internal/assets"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/entity"
	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/internal/input"
	"go-arcade-shooter/internal/interfaces"
	"go-arcade-shooter/internal/telemetry"
	"go-arcade-shooter/internal/utils"
	"go-arcade-shooter/pkg/render"

	"github.com/rs/zerolog"
)

// Game хранит сущности и прогоняет их кадр за кадром.
type Game struct {
	Settings   *config.Settings
	Player     *entity.Player
	Shots      *entity.Pool[*entity.Projectile]
	SplitShots *entity.Pool[*entity.Projectile]
	Enemies    *entity.Pool[*entity.Enemy]
	Events     *event.Dispatcher
	Stats      *telemetry.Stats
	Rng        *utils.PRNGService

	log       zerolog.Logger
	width     float64
	height    float64
	startTime time.Time
	started   bool
	frame     uint64

	// Запросы на спавн врагов; выполняются в конце Update
	pendingSpawns int
}

// NewGame создаёт все пулы один раз; во время игры они не растут.
func NewGame(s *config.Settings, log zerolog.Logger) (*Game, error) {
	if s == nil {
		s = config.Default()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	stats, err := telemetry.NewStats()
	if err != nil {
		return nil, fmt.Errorf("failed to init stats: %w", err)
	}

	dispatcher := event.NewDispatcher()
	stats.Attach(dispatcher)

	g := &Game{
		Settings: s,
		Events:   dispatcher,
		Stats:    stats,
		Rng:      utils.NewPRNGService(s.Seed),
		log:      log.With().Str("component", "game").Logger(),
		width:    float64(s.Screen.Width),
		height:   float64(s.Screen.Height),
	}

	g.Shots = entity.NewPool(s.Pool.Shots, func(int) *entity.Projectile {
		return entity.NewProjectile(config.ShotWidth, config.ShotHeight, s.Shot.Speed, s.Assets.Shot)
	})
	g.SplitShots = entity.NewPairedPool(s.Pool.Shots, func(int) *entity.Projectile {
		return entity.NewProjectile(config.ShotWidth, config.ShotHeight, s.Shot.Speed, s.Assets.SplitShot)
	})
	g.Enemies = entity.NewPool(s.Pool.Enemies, func(int) *entity.Enemy {
		return entity.NewEnemy(config.EnemyWidth, config.EnemyHeight, s.Enemy.Speed, s.Assets.Enemy)
	})

	g.Player = entity.NewPlayer(0, 0, config.PlayerWidth, config.PlayerHeight, s.Assets.Player)
	g.Player.Speed = s.Player.Speed
	g.Player.FireInterval = s.Player.FireInterval
	g.Player.EntranceRate = s.Player.EntranceRate
	g.Player.SetWeapons(g.Shots, g.SplitShots)
	g.Player.SetEvents(dispatcher)

	g.log.Debug().
		Int("shots", g.Shots.Len()).
		Int("split", g.SplitShots.Len()).
		Int("enemies", g.Enemies.Len()).
		Msg("pools allocated")
	return g, nil
}

// Targets — все сущности, которым нужен спрайт.
func (g *Game) Targets() []assets.Target {
	targets := make([]assets.Target, 0, 1+g.Shots.Len()+g.SplitShots.Len()+g.Enemies.Len())
	targets = append(targets, g.Player)
	g.Shots.Each(func(_ int, p *entity.Projectile) { targets = append(targets, p) })
	g.SplitShots.Each(func(_ int, p *entity.Projectile) { targets = append(targets, p) })
	g.Enemies.Each(func(_ int, e *entity.Enemy) { targets = append(targets, e) })
	return targets
}

// RequestSprites ставит все сущности в очередь загрузчика.
func (g *Game) RequestSprites(l *assets.SpriteLoader) {
	l.Request(g.Player.ImagePath, g.Player)
	g.Shots.Each(func(_ int, p *entity.Projectile) { l.Request(p.ImagePath, p) })
	g.SplitShots.Each(func(_ int, p *entity.Projectile) { l.Request(p.ImagePath, p) })
	g.Enemies.Each(func(_ int, e *entity.Enemy) { l.Request(e.ImagePath, e) })
}

// Ready — загружены ли все спрайты.
func (g *Game) Ready() bool {
	return assets.AllReady(g.Targets())
}

// Start фиксирует время старта и запускает вылет игрока снизу экрана.
func (g *Game) Start(now time.Time) {
	g.startTime = now
	g.started = true
	g.frame = 0
	g.Player.SetComing(now,
		g.width/2, g.height+config.EntranceOffsetIn,
		g.width/2, g.height-config.EntranceOffsetEnd,
	)
	g.Events.Dispatch(event.Event{Type: event.AssetsReady})
	g.log.Info().Time("start", now).Msg("game started")
}

// Resume учитывает время, проведённое на паузе.
func (g *Game) Resume(paused time.Duration) {
	g.startTime = g.startTime.Add(paused)
	g.Player.DelayEntrance(paused)
	g.log.Debug().Dur("paused", paused).Msg("game resumed")
}

// Started — был ли уже вызван Start.
func (g *Game) Started() bool {
	return g.started
}

// Elapsed — время с начала игры
func (g *Game) Elapsed(now time.Time) time.Duration {
	if !g.started {
		return 0
	}
	return now.Sub(g.startTime)
}

// Frame — число кадров с момента Start.
func (g *Game) Frame() uint64 {
	return g.frame
}

// Update — один кадр: сначала игрок (он может занять слоты пулов),
// затем снаряды и враги. Новый снаряд сдвинется только в следующем кадре.
func (g *Game) Update(now time.Time, in input.State) {
	f := entity.Frame{
		Now:    now,
		Input:  in,
		Width:  g.width,
		Height: g.height,
		Index:  g.frame,
	}

	g.Player.Update(f)
	g.Shots.Update(f)
	g.SplitShots.Update(f)
	g.Enemies.Update(f)

	for ; g.pendingSpawns > 0; g.pendingSpawns-- {
		if !g.SpawnEnemy() {
			g.log.Debug().Msg("enemy pool full, spawn dropped")
		}
	}

	g.frame++
}

// Draw очищает фон и рисует всё в том же порядке, что и Update.
func (g *Game) Draw(c entity.Canvas, now time.Time) {
	c.SetAlpha(1.0)
	c.FillRect(0, 0, g.width, g.height, config.BackgroundColor)

	g.Player.Draw(c, now)
	g.Shots.Draw(c, now)
	g.SplitShots.Draw(c, now)
	g.Enemies.Draw(c, now)
}

// SpawnEnemy оживляет одного врага над верхним краем в случайной точке X,
// летящего вниз. Возвращает false, если пул заполнен.
func (g *Game) SpawnEnemy() bool {
	i, e, ok := g.Enemies.Acquire()
	if !ok {
		g.Events.Dispatch(event.Event{Type: event.SpawnDropped, Data: event.SpawnData{Pool: event.PoolEnemy, Slot: -1, Frame: g.frame}})
		return false
	}
	x := float64(g.Rng.Intn(int(g.width)))
	y := -e.Height
	e.SetDirection(0, 1)
	e.Set(x, y, g.Settings.Enemy.Life)
	g.Events.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.SpawnData{Pool: event.PoolEnemy, Slot: i, X: x, Y: y, Frame: g.frame}})
	return true
}

// QueueSpawn откладывает спавн врага до конца следующего Update,
// чтобы новый враг, как и снаряды, начал двигаться только со следующего кадра.
func (g *Game) QueueSpawn() {
	g.pendingSpawns++
}

// Reset убивает все снаряды и врагов и заново запускает вылет.
func (g *Game) Reset(now time.Time) {
	g.pendingSpawns = 0
	g.Shots.Reset()
	g.SplitShots.Reset()
	g.Enemies.Reset()
	g.Start(now)
}

// Status собирает данные для HUD.
func (g *Game) Status(now time.Time) render.Status {
	return render.Status{
		Elapsed:      g.Elapsed(now),
		Phase:        g.Player.Phase().String(),
		ShotsLive:    g.Shots.Live(),
		ShotsCap:     g.Shots.Len(),
		SplitLive:    g.SplitShots.Live(),
		SplitCap:     g.SplitShots.Len(),
		EnemiesLive:  g.Enemies.Live(),
		EnemiesCap:   g.Enemies.Len(),
		ShotsFired:   g.Stats.TotalShots(),
		SpawnDropped: g.Stats.TotalDropped(),
	}
}

var (
	_ interfaces.Game        = (*Game)(nil)
	_ interfaces.GameContext = (*Game)(nil)
)
