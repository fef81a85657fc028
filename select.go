package ringchan

// Direction is the operation a select case performs.
type Direction int

const (
	DirSend Direction = iota
	DirRecv
)

func (d Direction) String() string {
	if d == DirSend {
		return "send"
	}
	return "recv"
}

// Case is one operation offered to Select. Build cases with SendTo and
// RecvFrom; a single Select may mix channels of different element types.
type Case interface {
	Dir() Direction

	try() error
	register(w *waker) *waiterNode
	unregister(n *waiterNode)
}

type sendCase[T any] struct {
	ch *Channel[T]
	v  T
}

// SendTo returns a case that sends v on ch.
func SendTo[T any](ch *Channel[T], v T) Case {
	return &sendCase[T]{ch: ch, v: v}
}

func (c *sendCase[T]) Dir() Direction { return DirSend }

func (c *sendCase[T]) try() error {
	if c.ch == nil {
		return errNilChan
	}
	return c.ch.TrySend(c.v)
}

func (c *sendCase[T]) register(w *waker) *waiterNode {
	if c.ch == nil {
		return nil
	}
	return c.ch.register(w)
}

func (c *sendCase[T]) unregister(n *waiterNode) {
	if c.ch != nil {
		c.ch.unregister(n)
	}
}

type recvCase[T any] struct {
	ch  *Channel[T]
	out *T
}

// RecvFrom returns a case that receives from ch into out.
// out is written only when the case succeeds; it may be nil to discard.
func RecvFrom[T any](ch *Channel[T], out *T) Case {
	return &recvCase[T]{ch: ch, out: out}
}

func (c *recvCase[T]) Dir() Direction { return DirRecv }

func (c *recvCase[T]) try() error {
	if c.ch == nil {
		return errNilChan
	}
	v, err := c.ch.TryReceive()
	if err == nil && c.out != nil {
		*c.out = v
	}
	return err
}

func (c *recvCase[T]) register(w *waker) *waiterNode {
	if c.ch == nil {
		return nil
	}
	return c.ch.register(w)
}

func (c *recvCase[T]) unregister(n *waiterNode) {
	if c.ch != nil {
		c.ch.unregister(n)
	}
}

// Select blocks until one of cases completes and returns its index.
//
// Cases are tried in index order and the lowest ready index always wins;
// there is no randomization between ready cases. A case that fails with
// ErrClosed or a generic error also resolves the select, and its index and
// error are returned. When no case is ready, Select sleeps until a watched
// channel changes state and then rescans every case. A wake does not
// guarantee progress: another goroutine may claim the change first.
func Select(cases ...Case) (int, error) {
	if len(cases) == 0 {
		return -1, errNoCases
	}

	w := newWaker()
	nodes := make([]*waiterNode, len(cases))
	for i, c := range cases {
		nodes[i] = c.register(w)
	}
	defer func() {
		for i, c := range cases {
			c.unregister(nodes[i])
		}
	}()

	for {
		for i, c := range cases {
			if err := c.try(); !notReady(err) {
				return i, err
			}
		}
		w.wait()
	}
}
