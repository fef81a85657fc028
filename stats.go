package ringchan

import "sync/atomic"

type counters struct {
	sendAttempts  atomic.Uint64
	sendFull      atomic.Uint64
	recvAttempts  atomic.Uint64
	recvEmpty     atomic.Uint64
	blocked       atomic.Uint64
	closedErrors  atomic.Uint64
	notifications atomic.Uint64
}

// Stats is a point-in-time snapshot of a channel.
type Stats struct {
	Name   string
	Len    int
	Cap    int
	Closed bool

	SendAttempts uint64
	SendFull     uint64 // TrySend rejected with ErrFull
	RecvAttempts uint64
	RecvEmpty    uint64 // TryReceive rejected with ErrEmpty

	Blocked       uint64 // suspensions of Send/Receive on a full/empty buffer
	ClosedErrors  uint64
	Notifications uint64 // select wakers posted
}

// StatsSource is anything that can report channel statistics.
type StatsSource interface {
	Stats() Stats
}

func (c *counters) load(s *Stats) {
	s.SendAttempts = c.sendAttempts.Load()
	s.SendFull = c.sendFull.Load()
	s.RecvAttempts = c.recvAttempts.Load()
	s.RecvEmpty = c.recvEmpty.Load()
	s.Blocked = c.blocked.Load()
	s.ClosedErrors = c.closedErrors.Load()
	s.Notifications = c.notifications.Load()
}
