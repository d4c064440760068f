// Package logging настраивает zerolog для игры.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New создаёт консольный логгер с заданным уровнем. Неизвестный уровень
// превращается в info, при w == nil пишем в stderr.
func New(level string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
