package ringchan

import "github.com/gammazero/deque"

// Deque is a Buffer backed by a growable deque and bounded by a logical
// capacity. Storage grows with use instead of being allocated up front,
// which suits channels with a large capacity that are rarely full.
type Deque[T any] struct {
	q        deque.Deque[T]
	capacity int
}

// NewDeque creates a deque buffer holding at most capacity items.
func NewDeque[T any](capacity int) *Deque[T] {
	if capacity <= 0 {
		panic("capacity must be > 0")
	}
	return &Deque[T]{capacity: capacity}
}

func (d *Deque[T]) Add(v T) {
	if d.q.Len() >= d.capacity {
		panic("ringchan: add to full deque")
	}
	d.q.PushBack(v)
}

func (d *Deque[T]) Remove() T {
	if d.q.Len() == 0 {
		panic("ringchan: remove from empty deque")
	}
	return d.q.PopFront()
}

func (d *Deque[T]) Len() int { return d.q.Len() }

func (d *Deque[T]) Cap() int { return d.capacity }

func (d *Deque[T]) Release() { d.q.Clear() }
