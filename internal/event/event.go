// internal/event/event.go
package event

// EventType — тип уведомления
type EventType string

// Event — структура уведомления
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на уведомления
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher delivers notifications synchronously to collaborators outside
// the core (UI, audio). Systems never rely on it for their own flow.
type Dispatcher struct {
	listeners map[EventType][]subscription
	nextID    uint64
}

type subscription struct {
	id       uint64
	listener Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe registers listener and returns the function that removes it.
// Listeners are told apart by subscription, not by value, so ListenerFunc
// works too.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) (unsubscribe func()) {
	d.nextID++
	id := d.nextID
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: id, listener: listener})
	return func() { d.remove(eventType, id) }
}

func (d *Dispatcher) remove(eventType EventType, id uint64) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.id == id {
			d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, s := range listeners {
			s.listener.OnEvent(event)
		}
	}
}
