package input

import (
	"snake-arena/game/types"
)

// Queue buffers directional intents between simulation ticks. It
// guarantees that a committed heading is never the exact reverse of
// the heading committed before it.
type Queue struct {
	pending []types.Point
}

func NewQueue() *Queue {
	return &Queue{}
}

// Submit appends a candidate heading. Non-unit vectors and immediate
// reversals of the committed heading are dropped. An older queued
// entry equal to raw is removed so only the most recent request for a
// heading survives, and a request equal to the committed heading is
// not queued at all.
func (q *Queue) Submit(raw, committed types.Point) {
	if !raw.IsUnit() {
		return
	}
	if raw == committed.Reverse() {
		return
	}
	for i, d := range q.pending {
		if d == raw {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			break
		}
	}
	if raw == committed {
		return
	}
	q.pending = append(q.pending, raw)
}

// Next dequeues the heading to commit for this tick, or returns
// committed unchanged when the queue is empty. A stale entry that has
// become the reverse of the committed heading since it was queued is
// discarded without advancing further.
func (q *Queue) Next(committed types.Point) types.Point {
	if len(q.pending) == 0 {
		return committed
	}
	next := q.pending[0]
	q.pending = q.pending[1:]
	if next == committed.Reverse() {
		return committed
	}
	return next
}

// Len reports the number of buffered intents.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Clear drops all buffered intents.
func (q *Queue) Clear() {
	q.pending = q.pending[:0]
}
