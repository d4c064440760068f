// Package telemetry считает игровые события: выстрелы, отброшенные спавны.
package telemetry

import (
	"context"
	"fmt"

	"go-arcade-shooter/internal/event"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Stats подписывается на диспетчер и ведёт счётчики. Локальные значения
// показывает HUD, OTel-счётчики уходят в глобальный MeterProvider
// (no-op, пока SDK не настроен).
type Stats struct {
	ShotsFired   map[string]int
	SpawnDropped map[string]int
	EnemySpawns  int
	Entrances    int

	shots     metric.Int64Counter
	dropped   metric.Int64Counter
	enemies   metric.Int64Counter
	entrances metric.Int64Counter
}

// NewStats создает счётчики на глобальном meter.
func NewStats() (*Stats, error) {
	return NewStatsWithMeter(meter())
}

// NewStatsWithMeter — то же, что NewStats, но с явным meter.
func NewStatsWithMeter(m metric.Meter) (*Stats, error) {
	s := &Stats{
		ShotsFired:   make(map[string]int),
		SpawnDropped: make(map[string]int),
	}

	var err error
	s.shots, err = m.Int64Counter(
		"shooter.shots.fired",
		metric.WithDescription("Shots that took a pool slot"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create shots counter: %w", err)
	}
	s.dropped, err = m.Int64Counter(
		"shooter.spawns.dropped",
		metric.WithDescription("Spawn requests dropped because the pool was full"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create dropped counter: %w", err)
	}
	s.enemies, err = m.Int64Counter(
		"shooter.enemies.spawned",
		metric.WithDescription("Enemies revived from the pool"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create enemies counter: %w", err)
	}
	s.entrances, err = m.Int64Counter(
		"shooter.entrance.finished",
		metric.WithDescription("Completed player entrances"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create entrance counter: %w", err)
	}
	return s, nil
}

// Attach подписывает Stats на все нужные события.
func (s *Stats) Attach(d *event.Dispatcher) {
	d.Subscribe(s, event.ShotFired, event.SpawnDropped, event.EnemySpawned, event.EntranceFinished)
}

func (s *Stats) OnEvent(e event.Event) {
	data, _ := e.Data.(event.SpawnData)
	poolAttr := metric.WithAttributes(attribute.String("pool", data.Pool))

	switch e.Type {
	case event.ShotFired:
		s.ShotsFired[data.Pool]++
		s.shots.Add(context.Background(), 1, poolAttr)
	case event.SpawnDropped:
		s.SpawnDropped[data.Pool]++
		s.dropped.Add(context.Background(), 1, poolAttr)
	case event.EnemySpawned:
		s.EnemySpawns++
		s.enemies.Add(context.Background(), 1)
	case event.EntranceFinished:
		s.Entrances++
		s.entrances.Add(context.Background(), 1)
	}
}

// TotalShots — сумма по всем оружиям
func (s *Stats) TotalShots() int {
	n := 0
	for _, v := range s.ShotsFired {
		n += v
	}
	return n
}

// TotalDropped — сумма отброшенных спавнов
func (s *Stats) TotalDropped() int {
	n := 0
	for _, v := range s.SpawnDropped {
		n += v
	}
	return n
}
