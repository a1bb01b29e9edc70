package system

import (
	"container/heap"

	"spoon-defense/internal/types"
)

// Effect runs when a scheduled entry comes due. now is the sim time of the
// tick that fired it.
type Effect func(now float64)

type scheduled struct {
	at     float64
	seq    uint64
	source types.EntityID
	fn     Effect
}

// effectQueue orders by fire time, then insertion order.
type effectQueue []*scheduled

func (q effectQueue) Len() int { return len(q) }
func (q effectQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}
func (q effectQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *effectQueue) Push(x interface{}) {
	*q = append(*q, x.(*scheduled))
}
func (q *effectQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[0 : n-1]
	return item
}

// Scheduler runs delayed effects (slam landings) inside the tick loop. An
// effect tied to a source entity is dropped if that entity is gone when the
// effect comes due.
type Scheduler struct {
	queue effectQueue
	seq   uint64
	alive func(types.EntityID) bool
}

// NewScheduler builds a scheduler. alive decides whether a source entity
// still exists; a nil alive treats every source as live.
func NewScheduler(alive func(types.EntityID) bool) *Scheduler {
	s := &Scheduler{alive: alive}
	heap.Init(&s.queue)
	return s
}

// Schedule queues fn to run at sim time at. source may be zero for effects
// that do not depend on an entity.
func (s *Scheduler) Schedule(at float64, source types.EntityID, fn Effect) {
	s.seq++
	heap.Push(&s.queue, &scheduled{at: at, seq: s.seq, source: source, fn: fn})
}

// Update runs every effect due at or before now.
func (s *Scheduler) Update(now float64) {
	for s.queue.Len() > 0 && s.queue[0].at <= now {
		item := heap.Pop(&s.queue).(*scheduled)
		if item.source != 0 && s.alive != nil && !s.alive(item.source) {
			continue
		}
		item.fn(now)
	}
}

func (s *Scheduler) Pending() int { return s.queue.Len() }

// Clear drops every pending effect.
func (s *Scheduler) Clear() {
	s.queue = nil
}
