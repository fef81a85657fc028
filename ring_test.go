package ringchan

import (
	"testing"

	"github.com/valyala/fastrand"
)

var bufferKinds = []BufferKind{RingBuffer, DequeBuffer}

// Basic sanity: sequential add/remove with ints, several cycles through the slots.
func TestBufferSequential(t *testing.T) {
	const (
		capacity = 1024
		N        = 100_000
	)

	for _, kind := range bufferKinds {
		t.Run(kind.String(), func(t *testing.T) {
			b := newBuffer[int](kind, capacity)

			next := 0
			for i := 0; i < N; i++ {
				if b.Len() == capacity {
					// drain half to move the window forward
					for j := 0; j < capacity/2; j++ {
						if v := b.Remove(); v != next {
							t.Fatalf("expected %d, got %d (FIFO violated)", next, v)
						}
						next++
					}
				}
				b.Add(i)
			}

			for b.Len() > 0 {
				if v := b.Remove(); v != next {
					t.Fatalf("expected %d, got %d (FIFO violated)", next, v)
				}
				next++
			}

			if next != N {
				t.Fatalf("expected %d items, got %d", N, next)
			}
		})
	}
}

// Capacity is enforced even when it is not a power of two.
func TestBufferCapacityOverflow(t *testing.T) {
	for _, kind := range bufferKinds {
		t.Run(kind.String(), func(t *testing.T) {
			for n := 0; n < 32; n++ {
				capacity := int(fastrand.Uint32n(100)) + 1
				b := newBuffer[int](kind, capacity)

				if b.Cap() != capacity {
					t.Fatalf("expected cap %d, got %d", capacity, b.Cap())
				}
				for i := 0; i < capacity; i++ {
					b.Add(i)
				}
				if b.Len() != capacity {
					t.Fatalf("expected len %d, got %d", capacity, b.Len())
				}

				func() {
					defer func() {
						if recover() == nil {
							t.Fatalf("expected panic on add to full buffer (cap %d)", capacity)
						}
					}()
					b.Add(999)
				}()
			}
		})
	}
}

func TestBufferRemoveEmptyPanics(t *testing.T) {
	for _, kind := range bufferKinds {
		t.Run(kind.String(), func(t *testing.T) {
			b := newBuffer[string](kind, 4)
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic on remove from empty buffer")
				}
			}()
			b.Remove()
		})
	}
}

func TestBufferRelease(t *testing.T) {
	for _, kind := range bufferKinds {
		t.Run(kind.String(), func(t *testing.T) {
			b := newBuffer[int](kind, 3)
			b.Add(1)
			b.Add(2)
			b.Release()
			if b.Len() != 0 {
				t.Fatalf("expected empty buffer after release, got len %d", b.Len())
			}
		})
	}
}

func TestRingRoundsUpSlots(t *testing.T) {
	r := NewRing[int](5)
	if len(r.slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(r.slots))
	}
	if r.Cap() != 5 {
		t.Fatalf("expected cap 5, got %d", r.Cap())
	}
}

func TestNewBufferZeroCapacityPanics(t *testing.T) {
	for _, kind := range bufferKinds {
		t.Run(kind.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for zero capacity")
				}
			}()
			newBuffer[int](kind, 0)
		})
	}
}

func BenchmarkRing(b *testing.B) {
	r := NewRing[int](1 << 10)
	for i := 0; i < b.N; i++ {
		r.Add(i)
		r.Remove()
	}
}

func BenchmarkDeque(b *testing.B) {
	d := NewDeque[int](1 << 10)
	for i := 0; i < b.N; i++ {
		d.Add(i)
		d.Remove()
	}
}
