package scheduler

import (
	"container/heap"
	"errors"

	"github.com/kilianp07/ridesim/core/events"
)

// ErrEmptyQueue is returned when popping from an empty queue.
var ErrEmptyQueue = errors.New("scheduler: empty queue")

type entry struct {
	ev  events.Event
	seq uint64
}

type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	ti, tj := h[i].ev.Timestamp(), h[j].ev.Timestamp()
	if ti != tj {
		return ti < tj
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry{}
	*h = old[:n-1]
	return e
}

// Queue is a min-priority queue of events keyed by timestamp, FIFO on ties.
// The zero value is ready to use.
type Queue struct {
	h   entryHeap
	seq uint64
}

// New returns a queue holding evs in the given order.
func New(evs ...events.Event) *Queue {
	q := &Queue{}
	for _, e := range evs {
		q.Push(e)
	}
	return q
}

// Push adds an event in O(log n).
func (q *Queue) Push(e events.Event) {
	heap.Push(&q.h, entry{ev: e, seq: q.seq})
	q.seq++
}

// Pop removes and returns the earliest event.
func (q *Queue) Pop() (events.Event, error) {
	if len(q.h) == 0 {
		return nil, ErrEmptyQueue
	}
	return heap.Pop(&q.h).(entry).ev, nil
}

// Peek returns the earliest event without removing it.
func (q *Queue) Peek() (events.Event, error) {
	if len(q.h) == 0 {
		return nil, ErrEmptyQueue
	}
	return q.h[0].ev, nil
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.h) }

// IsEmpty reports whether no events are pending.
func (q *Queue) IsEmpty() bool { return len(q.h) == 0 }
