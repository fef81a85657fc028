package ringchan

// waker is the private wake-up handle of one Select call.
// Posts coalesce: a pending post is kept until the owner consumes it, and
// further posts before that are dropped. The owner rescans every case after
// each wake, so one pending post is as good as many.
type waker struct {
	ch chan struct{}
}

func newWaker() *waker {
	return &waker{ch: make(chan struct{}, 1)}
}

func (w *waker) post() {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

func (w *waker) wait() {
	<-w.ch
}

// waiterNode is a registration handle. The node does not own its waker.
type waiterNode struct {
	w          *waker
	list       *waiterList
	prev, next *waiterNode
}

// waiterList is the per-channel registry of select wakers.
// All methods must be called with the owning channel's mutex held.
type waiterList struct {
	head, tail *waiterNode
	count      int
}

// insert appends w and returns the handle needed to remove it.
func (l *waiterList) insert(w *waker) *waiterNode {
	n := &waiterNode{w: w, list: l, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.count++
	return n
}

// remove unlinks n. Nodes that no longer belong to l are ignored.
func (l *waiterList) remove(n *waiterNode) {
	if n == nil || n.list != l {
		return
	}

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.prev, n.next, n.list, n.w = nil, nil, nil, nil
	l.count--
}

// notifyAll posts every registered waker in list order and returns how
// many were posted.
func (l *waiterList) notifyAll() int {
	posted := 0
	for n := l.head; n != nil; n = n.next {
		n.w.post()
		posted++
	}
	return posted
}

// reset detaches every node.
func (l *waiterList) reset() {
	for n := l.head; n != nil; {
		next := n.next
		n.prev, n.next, n.list = nil, nil, nil
		n = next
	}
	l.head, l.tail, l.count = nil, nil, 0
}

func (l *waiterList) len() int {
	return l.count
}
