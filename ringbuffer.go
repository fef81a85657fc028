package ringchan

// Buffer is the bounded FIFO storage owned by a Channel.
// Implementations are not safe for concurrent use: the channel mutex
// serializes every call.
type Buffer[T any] interface {
	// Add appends v. Precondition: Len() < Cap().
	Add(v T)
	// Remove pops the oldest item. Precondition: Len() > 0.
	Remove() T
	Len() int
	Cap() int
	// Release drops the storage. The buffer must not be used afterwards.
	Release()
}

// BufferKind selects the Buffer implementation a channel is created with.
type BufferKind int

const (
	RingBuffer BufferKind = iota
	DequeBuffer
)

func (k BufferKind) String() string {
	switch k {
	case RingBuffer:
		return "ring"
	case DequeBuffer:
		return "deque"
	}
	return "unknown"
}

func newBuffer[T any](kind BufferKind, capacity int) Buffer[T] {
	if kind == DequeBuffer {
		return NewDeque[T](capacity)
	}
	return NewRing[T](capacity)
}

type slot[T any] struct {
	seq uint64 // sequence number (controls slot ownership)
	val T      // actual value stored in this slot
}
