package event

import "reflect"

// EventType names a kind of notification.
type EventType string

// Event is a discrete notification raised by the simulation. Time is the sim
// clock in seconds at which it happened; Data holds one of the payload types
// from payloads.go.
type Event struct {
	Type EventType
	Time float64
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher fans events out to subscribers synchronously, in subscription
// order.
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

// Unsubscribe removes listener from one event type. Only comparable
// listeners (pointers) can be removed; others are left in place.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if !isComparable(listener) {
		return
	}
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if isComparable(l) && l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers event to type subscribers first, then to catch-all ones.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.all {
		listener.OnEvent(event)
	}
}

// isComparable reports whether == on the listener's dynamic type is safe.
func isComparable(l Listener) bool {
	return l != nil && reflect.TypeOf(l).Comparable()
}
