package ecs

// EventType names an event stream.
type EventType string

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue. Events live until the end of the tick
// they were pushed in, so every later stage of the same tick can read them.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Each calls fn for every pending event of type t in push order.
func (q *EventQueue) Each(t EventType, fn func(Event)) {
	if q == nil {
		return
	}
	for _, evt := range q.items {
		if evt.Type == t {
			fn(evt)
		}
	}
}

// Count returns the number of pending events of type t.
func (q *EventQueue) Count(t EventType) int {
	n := 0
	q.Each(t, func(Event) { n++ })
	return n
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
