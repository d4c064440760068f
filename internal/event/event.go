// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие игрового цикла. Data зависит от Type.
type Event struct {
	Type EventType
	Data any
}

// Listener — подписчик на события
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(e Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Publisher — то, что нужно сущностям: только отправка.
type Publisher interface {
	Dispatch(e Event)
}

// Dispatcher доставляет события синхронно, в порядке подписки.
// Всё происходит в горутине игрового цикла, поэтому без блокировок.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на один или несколько типов
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Dispatch — отправка события всем подписчикам. Nil-диспетчер молча ничего не делает.
func (d *Dispatcher) Dispatch(e Event) {
	if d == nil {
		return
	}
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}
