package events

import (
	"sync/atomic"

	"github.com/lixenwraith/zombie-conga/parameter"
)

const (
	queueCap  = parameter.EventQueueSize
	queueMask = parameter.EventBufferMask
)

// EventQueue is a lock-free MPSC ring of simulation cues
//
// Any number of goroutines may Push; exactly one drains with Drain or
// Consume. A slot becomes readable only after its ready flag is set, so a
// drain never observes a half-written event. When the ring is full the
// oldest unread cue is overwritten and counted in Dropped.
type EventQueue struct {
	slots   [queueCap]GameEvent
	ready   [queueCap]atomic.Bool
	read    atomic.Uint64
	write   atomic.Uint64
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push reserves the next write index and publishes ev into its slot
func (eq *EventQueue) Push(ev GameEvent) {
	var at uint64
	for {
		at = eq.write.Load()
		if eq.write.CompareAndSwap(at, at+1) {
			break
		}
	}

	slot := at & queueMask
	eq.slots[slot] = ev
	eq.ready[slot].Store(true)

	// Drag the read index forward past anything just overwritten
	if r := eq.read.Load(); at+1-r > queueCap {
		if eq.read.CompareAndSwap(r, at+1-queueCap) {
			eq.dropped.Add(at + 1 - queueCap - r)
		}
	}
}

// Drain appends every published cue to dst in FIFO order and returns it
// Passing a reused slice keeps the per-frame drain allocation free
func (eq *EventQueue) Drain(dst []GameEvent) []GameEvent {
	for {
		r := eq.read.Load()
		to := eq.write.Load()
		if to == r {
			return dst
		}
		from := r
		if to-from > queueCap {
			from = to - queueCap
		}

		base := len(dst)
		next := from
		for ; next < to; next++ {
			slot := next & queueMask
			if !eq.ready[slot].Load() {
				break // Writer still filling this slot
			}
			dst = append(dst, eq.slots[slot])
			eq.ready[slot].Store(false)
		}

		if eq.read.CompareAndSwap(r, next) {
			return dst
		}
		// A producer lapped the reader mid-drain; take the newer window
		dst = dst[:base]
	}
}

// Consume drains into a fresh slice; nil when nothing is pending
func (eq *EventQueue) Consume() []GameEvent {
	out := eq.Drain(nil)
	if len(out) == 0 {
		return nil
	}
	return out
}

// Len returns the number of unread cues, capped at capacity
func (eq *EventQueue) Len() int {
	return int(min(eq.write.Load()-eq.read.Load(), queueCap))
}

// Dropped returns how many cues were overwritten before being read
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
