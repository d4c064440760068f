package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"

	"go-arcade-shooter/internal/config"

	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Target получает спрайт, когда тот загружен. Реализуется entity.Entity.
type Target interface {
	MarkReady(img image.Image)
	Ready() bool
}

type result struct {
	path string
	img  image.Image
	err  error
}

const placeholderSize = 32

// SpriteLoader декодирует изображения в фоновых горутинах, а готовность
// выставляет только в Poll, то есть в горутине игрового цикла.
// Один путь декодируется один раз, все ждущие получают тот же image.Image.
type SpriteLoader struct {
	log     zerolog.Logger
	decode  func(path string) (image.Image, error)
	cache   map[string]image.Image
	pending map[string][]Target
	results chan result
}

// NewSpriteLoader создает загрузчик, читающий файлы с диска.
func NewSpriteLoader(log zerolog.Logger) *SpriteLoader {
	return &SpriteLoader{
		log:     log.With().Str("component", "assets").Logger(),
		decode:  decodeFile,
		cache:   make(map[string]image.Image),
		pending: make(map[string][]Target),
		results: make(chan result, 16),
	}
}

// Request ставит target в очередь на путь path. Если спрайт уже в кэше,
// target помечается готовым сразу.
func (l *SpriteLoader) Request(path string, target Target) {
	if img, ok := l.cache[path]; ok {
		target.MarkReady(img)
		return
	}
	_, inflight := l.pending[path]
	l.pending[path] = append(l.pending[path], target)
	if inflight {
		return
	}
	go func() {
		img, err := l.decode(path)
		l.results <- result{path: path, img: img, err: err}
	}()
}

// Poll забирает все завершённые загрузки без блокировки и возвращает
// число целей, ставших готовыми.
func (l *SpriteLoader) Poll() int {
	marked := 0
	for {
		select {
		case r := <-l.results:
			marked += l.deliver(r)
		default:
			return marked
		}
	}
}

// Pending — сколько путей ещё декодируется.
func (l *SpriteLoader) Pending() int {
	return len(l.pending)
}

func (l *SpriteLoader) deliver(r result) int {
	img := r.img
	if r.err != nil {
		l.log.Warn().Err(r.err).Str("path", r.path).Msg("sprite failed to load, using placeholder")
		img = Placeholder(placeholderSize, placeholderSize)
	} else {
		b := img.Bounds()
		l.log.Debug().Str("path", r.path).Int("w", b.Dx()).Int("h", b.Dy()).Msg("sprite loaded")
	}
	l.cache[r.path] = img

	targets := l.pending[r.path]
	delete(l.pending, r.path)
	for _, t := range targets {
		t.MarkReady(img)
	}
	return len(targets)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", path, err)
	}
	return img, nil
}

// Placeholder — однотонный прямоугольник вместо отсутствующего спрайта.
func Placeholder(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: config.PlaceholderColor}, image.Point{}, draw.Src)
	return img
}

// AllReady — у всех ли целей уже есть спрайт.
func AllReady[T Target](targets []T) bool {
	for _, t := range targets {
		if !t.Ready() {
			return false
		}
	}
	return true
}
