package core

import "sort"

// Handle is the index of a process in the process table owned by a simulator.
type Handle int

// ReadyQueue holds handles of arrived, unfinished processes in admission order.
type ReadyQueue struct {
	handles []Handle
}

func NewReadyQueue(capacity int) *ReadyQueue {
	return &ReadyQueue{handles: make([]Handle, 0, capacity)}
}

// Admit queues every process that has arrived by clock and was never queued,
// scanning processes in table order. It returns how many were admitted.
func (q *ReadyQueue) Admit(processes []Process, clock int) int {
	admitted := 0
	for i := range processes {
		process := &processes[i]
		if process.State != NotArrived || process.ArrivalTime > clock || process.RemainingTime <= 0 {
			continue
		}
		process.State = Ready
		q.handles = append(q.handles, Handle(i))
		admitted++
	}
	return admitted
}

func (q *ReadyQueue) Len() int {
	return len(q.handles)
}

// Handles returns the queued handles front to back. Callers must not modify the slice.
func (q *ReadyQueue) Handles() []Handle {
	return q.handles
}

// SortStable reorders the queue; equal elements keep their current queue order.
func (q *ReadyQueue) SortStable(less func(a, b Handle) bool) {
	sort.SliceStable(q.handles, func(i, j int) bool {
		return less(q.handles[i], q.handles[j])
	})
}

func (q *ReadyQueue) PopFront() (Handle, bool) {
	if len(q.handles) == 0 {
		return 0, false
	}
	front := q.handles[0]
	q.handles = q.handles[1:]
	return front, true
}
