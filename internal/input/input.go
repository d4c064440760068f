// Package input переводит состояние клавиатуры в логические клавиши игры.
package input

// Key — логическая клавиша
type Key string

const (
	KeyUp    Key = "ArrowUp"
	KeyDown  Key = "ArrowDown"
	KeyLeft  Key = "ArrowLeft"
	KeyRight Key = "ArrowRight"
	KeyFire  Key = "Fire"
)

// Keys — все логические клавиши в постоянном порядке.
var Keys = []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyFire}

// State — снимок нажатых клавиш за один кадр. Сущности его только читают.
type State map[Key]bool

// Pressed — зажата ли k. В nil-State ничего не нажато.
func (s State) Pressed(k Key) bool {
	return s[k]
}

// Bindings сопоставляет логические клавиши физическим (тип K задаёт бэкенд).
type Bindings[K comparable] map[Key][]K

// Capture снимает состояние клавиатуры через isPressed.
// В результате есть каждая клавиша из Keys.
func (b Bindings[K]) Capture(isPressed func(K) bool) State {
	s := make(State, len(Keys))
	for _, logical := range Keys {
		s[logical] = false
		for _, k := range b[logical] {
			if isPressed(k) {
				s[logical] = true
				break
			}
		}
	}
	return s
}
