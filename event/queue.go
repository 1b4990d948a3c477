package event

import "sync/atomic"

// slot pairs an event with its publication flag so a reader never observes a
// half-written entry
type slot struct {
	ready atomic.Bool
	ev    GameEvent
}

// Queue is a lock-free MPSC ring buffer for outbound fire-control events.
// The engine appends each tick; collaborators (bullet spawner, audio, HUD)
// drain it, decoupling emission from delivery
//
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (game loop)
//   - Ready flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	slots []slot
	mask  uint64
	head  atomic.Uint64 // Read index
	tail  atomic.Uint64 // Write index
}

// NewQueue allocates a queue holding at least capacity events. The backing
// ring is rounded up to a power of two for mask-based index wrapping;
// capacity below one gets a minimal ring
func NewQueue(capacity int) *Queue {
	size := uint64(1)
	for size < uint64(max(capacity, 1)) {
		size <<= 1
	}
	return &Queue{
		slots: make([]slot, size),
		mask:  size - 1,
	}
}

// Cap returns the ring capacity
func (q *Queue) Cap() int { return len(q.slots) }

// Push adds event using lock-free CAS with ready flags
// Safe for concurrent producers. O(1) amortized
func (q *Queue) Push(ev GameEvent) {
	size := uint64(len(q.slots))
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			s := &q.slots[currentTail&q.mask]
			s.ev = ev
			s.ready.Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > size {
				q.head.CompareAndSwap(currentHead, nextTail-size)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head
// Single-consumer design. Checks ready flags for safety
func (q *Queue) Consume() []GameEvent {
	size := uint64(len(q.slots))
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > size {
			maxAvailable = size
			currentHead = currentTail - size
		}

		result := make([]GameEvent, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			s := &q.slots[(currentHead+i)&q.mask]
			if !s.ready.Load() {
				break // Writer incomplete
			}
			result = append(result, s.ev)
			s.ready.Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns approximate pending event count
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > len(q.slots) {
		return len(q.slots)
	}
	return diff
}
