package core

import "time"

// Scheduler models the host's animation-frame facility: Schedule queues fn
// for the next frame and returns a function that cancels it.
type Scheduler interface {
	Schedule(fn func(now time.Time)) (cancel func())
}

type frameRequest struct {
	id uint64
	fn func(now time.Time)
}

// FrameQueue is a host-driven Scheduler. Callbacks queued with Schedule run
// on the next call to Run; callbacks queued while Run is executing wait for
// the following frame. It is not safe for concurrent use.
type FrameQueue struct {
	nextID  uint64
	pending []frameRequest
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) Schedule(fn func(now time.Time)) func() {
	q.nextID++
	id := q.nextID
	q.pending = append(q.pending, frameRequest{id: id, fn: fn})
	return func() { q.cancel(id) }
}

// Run fires every callback queued before the call and returns how many ran.
func (q *FrameQueue) Run(now time.Time) int {
	batch := q.pending
	q.pending = nil
	for _, req := range batch {
		req.fn(now)
	}
	return len(batch)
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

func (q *FrameQueue) cancel(id uint64) {
	for i, req := range q.pending {
		if req.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}
