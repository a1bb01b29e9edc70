package event

// Queue buffers events for presentations that poll once per frame instead of
// reacting inside the tick.
type Queue struct {
	events []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) OnEvent(e Event) {
	q.events = append(q.events, e)
}

// Drain returns buffered events in dispatch order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

func (q *Queue) Len() int { return len(q.events) }
