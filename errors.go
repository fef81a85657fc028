package ringchan

import (
	"errors"
	"fmt"
)

var (
	// ErrFull is returned by TrySend when the buffer has no room.
	ErrFull = fmt.Errorf("channel is full")
	// ErrEmpty is returned by TryReceive when the buffer holds nothing.
	ErrEmpty = fmt.Errorf("channel is empty")
	// ErrClosed is returned by every operation on a closed channel,
	// except receives that still find buffered items.
	ErrClosed = fmt.Errorf("channel is closed")
	// ErrDestroy is returned by Destroy on a channel that is still open.
	ErrDestroy = fmt.Errorf("destroy of open channel")
	// ErrGeneric wraps failures that leave a call unusable: a destroyed
	// channel, a nil channel, a malformed select.
	ErrGeneric = fmt.Errorf("channel failure")

	errDestroyed = fmt.Errorf("%w: channel destroyed", ErrGeneric)
	errNilChan   = fmt.Errorf("%w: nil channel", ErrGeneric)
	errNoCases   = fmt.Errorf("%w: select with no cases", ErrGeneric)
)

// Status is the result code vocabulary shared by every channel operation.
type Status int

const (
	StatusSuccess Status = iota
	StatusFull
	StatusEmpty
	StatusClosed
	StatusDestroy
	StatusGeneric
)

var statusNames = [...]string{
	StatusSuccess: "success",
	StatusFull:    "channel full",
	StatusEmpty:   "channel empty",
	StatusClosed:  "closed",
	StatusDestroy: "destroy error",
	StatusGeneric: "generic error",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// StatusOf maps an error returned by this package to its Status.
// Errors from elsewhere map to StatusGeneric.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrFull):
		return StatusFull
	case errors.Is(err, ErrEmpty):
		return StatusEmpty
	case errors.Is(err, ErrClosed):
		return StatusClosed
	case errors.Is(err, ErrDestroy):
		return StatusDestroy
	}
	return StatusGeneric
}

// notReady reports whether err is one of the transient conditions of the
// non-blocking operations.
func notReady(err error) bool {
	return err == ErrFull || err == ErrEmpty
}
