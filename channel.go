package ringchan

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Channel is a bounded, thread-safe FIFO handoff point.
//
// The mutex guards the buffer, the closed flag and the waiter list as one
// unit. Blocked senders wait on space, blocked receivers wait on data; Close
// broadcasts both so every blocked party observes it.
//
// Items buffered before Close stay receivable: receives drain them and only
// report ErrClosed once the buffer is empty.
type Channel[T any] struct {
	name string
	log  logrus.FieldLogger

	mu        sync.Mutex
	space     sync.Cond // an item left the buffer, or the channel closed
	data      sync.Cond // an item entered the buffer, or the channel closed
	buf       Buffer[T]
	capacity  int
	closed    bool
	destroyed bool
	waiters   waiterList

	stats counters
}

// New creates a channel holding at most capacity items.
// Capacity must be > 0.
func New[T any](capacity int, opts ...Option) *Channel[T] {
	if capacity <= 0 {
		panic("capacity must be > 0")
	}

	o := buildOptions(opts)
	c := &Channel[T]{
		name:     o.name,
		log:      o.logger.WithField("chan", o.name),
		buf:      newBuffer[T](o.buffer, capacity),
		capacity: capacity,
	}
	c.space.L = &c.mu
	c.data.L = &c.mu

	c.log.WithFields(logrus.Fields{
		"capacity": capacity,
		"buffer":   o.buffer.String(),
	}).Debug("channel created")

	return c
}

// Name returns the channel name.
func (c *Channel[T]) Name() string {
	return c.name
}

// Send appends v, blocking while the buffer is full.
// Returns ErrClosed if the channel is or becomes closed before v is added.
func (c *Channel[T]) Send(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return errDestroyed
	}
	c.stats.sendAttempts.Add(1)

	for !c.closed && c.buf.Len() >= c.capacity {
		c.stats.blocked.Add(1)
		c.space.Wait()
		if c.destroyed {
			return errDestroyed
		}
	}

	if c.closed {
		c.stats.closedErrors.Add(1)
		return ErrClosed
	}

	c.add(v)
	return nil
}

// Receive pops the oldest item, blocking while the buffer is empty.
// Returns ErrClosed once the channel is closed and drained.
func (c *Channel[T]) Receive() (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return zero, errDestroyed
	}
	c.stats.recvAttempts.Add(1)

	for !c.closed && c.buf.Len() == 0 {
		c.stats.blocked.Add(1)
		c.data.Wait()
		if c.destroyed {
			return zero, errDestroyed
		}
	}

	if c.buf.Len() == 0 {
		c.stats.closedErrors.Add(1)
		return zero, ErrClosed
	}

	return c.remove(), nil
}

// TrySend appends v without blocking.
// Returns ErrFull if there is no room.
func (c *Channel[T]) TrySend(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return errDestroyed
	}
	c.stats.sendAttempts.Add(1)

	if c.closed {
		c.stats.closedErrors.Add(1)
		return ErrClosed
	}
	if c.buf.Len() >= c.capacity {
		c.stats.sendFull.Add(1)
		return ErrFull
	}

	c.add(v)
	return nil
}

// TryReceive pops the oldest item without blocking.
// Returns ErrEmpty if the buffer is empty and the channel still open.
func (c *Channel[T]) TryReceive() (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return zero, errDestroyed
	}
	c.stats.recvAttempts.Add(1)

	if c.buf.Len() == 0 {
		if c.closed {
			c.stats.closedErrors.Add(1)
			return zero, ErrClosed
		}
		c.stats.recvEmpty.Add(1)
		return zero, ErrEmpty
	}

	return c.remove(), nil
}

// Close marks the channel closed and wakes every blocked sender, receiver
// and select watching it. Closing twice returns ErrClosed.
func (c *Channel[T]) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return errDestroyed
	}
	if c.closed {
		return ErrClosed
	}

	c.closed = true
	c.space.Broadcast()
	c.data.Broadcast()
	c.notify()

	c.log.WithField("buffered", c.buf.Len()).Debug("channel closed")
	return nil
}

// Destroy releases the channel storage. The channel must be closed, and no
// other goroutine may still be using it. Destroy on an open channel returns
// ErrDestroy and leaves the channel usable.
func (c *Channel[T]) Destroy() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return errDestroyed
	}
	if !c.closed {
		c.log.Warn("destroy of open channel")
		return ErrDestroy
	}

	c.destroyed = true
	c.buf.Release()
	c.waiters.reset()
	// any goroutine still parked despite the precondition must not hang
	c.space.Broadcast()
	c.data.Broadcast()

	c.log.Debug("channel destroyed")
	return nil
}

// Len returns the number of buffered items.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return 0
	}
	return c.buf.Len()
}

// Cap returns the capacity fixed at creation.
func (c *Channel[T]) Cap() int {
	return c.capacity
}

// Closed reports whether Close has been called.
func (c *Channel[T]) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Stats retrieves the current statistics of the channel.
func (c *Channel[T]) Stats() Stats {
	c.mu.Lock()
	s := Stats{
		Name:   c.name,
		Cap:    c.capacity,
		Closed: c.closed,
	}
	if !c.destroyed {
		s.Len = c.buf.Len()
	}
	c.mu.Unlock()

	c.stats.load(&s)
	return s
}

// add and remove mutate the buffer and wake whoever waits on the change.
// Must be called with mu held.
func (c *Channel[T]) add(v T) {
	c.buf.Add(v)
	c.data.Signal()
	c.notify()
}

func (c *Channel[T]) remove() T {
	v := c.buf.Remove()
	c.space.Signal()
	c.notify()
	return v
}

func (c *Channel[T]) notify() {
	if n := c.waiters.notifyAll(); n > 0 {
		c.stats.notifications.Add(uint64(n))
	}
}

// register and unregister manage select wakers; each takes mu on its own.
func (c *Channel[T]) register(w *waker) *waiterNode {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return nil
	}
	return c.waiters.insert(w)
}

func (c *Channel[T]) unregister(n *waiterNode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.waiters.remove(n)
}
