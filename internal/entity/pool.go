package entity

import "time"

// Slot — элемент пула. Живость определяется Life, см. Entity.
type Slot interface {
	Updater
	Drawer
	Alive() bool
	Kill()
}

// Pool — арена фиксированной ёмкости. Все элементы создаются один раз;
// «создание» — это оживление мёртвого слота, «удаление» — Life = 0.
// Переполнение не ошибка: новый спавн просто отбрасывается.
type Pool[T Slot] struct {
	slots []T
}

// NewPool создаёт capacity элементов через newFn(i).
func NewPool[T Slot](capacity int, newFn func(i int) T) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	slots := make([]T, capacity)
	for i := range slots {
		slots[i] = newFn(i)
	}
	return &Pool[T]{slots: slots}
}

// NewPairedPool создаёт пул из pairs пар (ёмкость всегда чётная)
// для оружия, которое стреляет парами.
func NewPairedPool[T Slot](pairs int, newFn func(i int) T) *Pool[T] {
	if pairs < 0 {
		pairs = 0
	}
	return NewPool(pairs*2, newFn)
}

// Len — фиксированная ёмкость пула.
func (p *Pool[T]) Len() int {
	return len(p.slots)
}

// At возвращает слот i.
func (p *Pool[T]) At(i int) T {
	return p.slots[i]
}

// Live считает живые элементы.
func (p *Pool[T]) Live() int {
	n := 0
	for _, s := range p.slots {
		if s.Alive() {
			n++
		}
	}
	return n
}

// Free — индекс первого мёртвого слота при просмотре с 0, или -1.
func (p *Pool[T]) Free() int {
	for i, s := range p.slots {
		if !s.Alive() {
			return i
		}
	}
	return -1
}

// FreePair просматривает пары (0,1), (2,3), ... и возвращает первый индекс
// пары, где оба слота мертвы, или -1. Наполовину занятые пары пропускаются.
func (p *Pool[T]) FreePair() int {
	for i := 0; i+1 < len(p.slots); i += 2 {
		if !p.slots[i].Alive() && !p.slots[i+1].Alive() {
			return i
		}
	}
	return -1
}

// Acquire возвращает индекс и первый свободный слот. Слот остаётся мёртвым,
// пока вызывающий не оживит его своим Set. При переполнении ok == false.
func (p *Pool[T]) Acquire() (int, T, bool) {
	i := p.Free()
	if i < 0 {
		var zero T
		return -1, zero, false
	}
	return i, p.slots[i], true
}

// AcquirePair возвращает индекс первого слота и первую полностью свободную пару.
func (p *Pool[T]) AcquirePair() (int, T, T, bool) {
	i := p.FreePair()
	if i < 0 {
		var zero T
		return -1, zero, zero, false
	}
	return i, p.slots[i], p.slots[i+1], true
}

// Each вызывает fn для каждого слота по порядку, мёртвые тоже.
func (p *Pool[T]) Each(fn func(i int, s T)) {
	for i, s := range p.slots {
		fn(i, s)
	}
}

// Update продвигает все слоты по порядку. Мёртвые сами ничего не делают.
func (p *Pool[T]) Update(f Frame) {
	for _, s := range p.slots {
		s.Update(f)
	}
}

// Draw рисует все слоты по порядку.
func (p *Pool[T]) Draw(c Canvas, now time.Time) {
	for _, s := range p.slots {
		s.Draw(c, now)
	}
}

// Reset убивает все элементы.
func (p *Pool[T]) Reset() {
	for _, s := range p.slots {
		s.Kill()
	}
}
