package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

// Emitter — всё, куда симуляция может отправить событие.
type Emitter interface {
	Emit(event Event)
}

// Queue копит события за тик и отдаёт их слою отрисовки.
// Перед постановкой в очередь событие проходит через диспетчер,
// чтобы подписчики внутри ядра (эффекты смерти) сработали в том же тике.
type Queue struct {
	dispatcher *Dispatcher
	pending    []Event
}

func NewQueue(dispatcher *Dispatcher) *Queue {
	return &Queue{dispatcher: dispatcher}
}

func (q *Queue) Emit(event Event) {
	if q.dispatcher != nil {
		q.dispatcher.Dispatch(event)
	}
	q.pending = append(q.pending, event)
}

// Drain возвращает накопленные события и очищает очередь.
func (q *Queue) Drain() []Event {
	out := q.pending
	q.pending = nil
	return out
}

func (q *Queue) Len() int {
	return len(q.pending)
}
