package ringchan

// Ring is a bounded FIFO over a power-of-two slot array.
// Slot ownership follows the sequence scheme of the MPMC queue: a slot at
// logical position pos is free when seq == pos and holds a value when
// seq == pos+1. The logical capacity may be smaller than the slot count,
// so any positive capacity is accepted.
type Ring[T any] struct {
	mask     uint64
	capacity uint64
	slots    []slot[T]
	enqueue  uint64 // logical tail index
	dequeue  uint64 // logical head index
}

// NewRing creates a ring holding at most capacity items.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("capacity must be > 0")
	}

	size := uint64(1)
	for size < uint64(capacity) {
		size <<= 1
	}

	slots := make([]slot[T], size)
	for i := uint64(0); i < size; i++ {
		// initial sequence for each slot matches its index
		slots[i].seq = i
	}

	return &Ring[T]{
		mask:     size - 1,
		capacity: uint64(capacity),
		slots:    slots,
	}
}

// Add pushes v at the tail.
func (r *Ring[T]) Add(v T) {
	pos := r.enqueue
	if pos-r.dequeue >= r.capacity {
		panic("ringchan: add to full ring")
	}

	s := &r.slots[pos&r.mask]
	if s.seq != pos {
		// a slot inside the capacity window always belongs to this cycle
		panic("unreached")
	}

	s.val = v
	// publish the value: seq = pos+1
	s.seq = pos + 1
	r.enqueue = pos + 1
}

// Remove pops the value at the head.
func (r *Ring[T]) Remove() T {
	pos := r.dequeue
	if pos == r.enqueue {
		panic("ringchan: remove from empty ring")
	}

	s := &r.slots[pos&r.mask]
	if s.seq != pos+1 {
		panic("unreached")
	}

	var zero T
	v := s.val
	s.val = zero
	// free the slot for the next cycle:
	// next time this physical slot will be used at pos+len(slots)
	s.seq = pos + uint64(len(r.slots))
	r.dequeue = pos + 1

	return v
}

// Len returns the number of buffered items.
func (r *Ring[T]) Len() int {
	return int(r.enqueue - r.dequeue)
}

// Cap returns the fixed logical capacity.
func (r *Ring[T]) Cap() int {
	return int(r.capacity)
}

// Release drops the slot array.
func (r *Ring[T]) Release() {
	r.slots = nil
	r.enqueue, r.dequeue = 0, 0
}
