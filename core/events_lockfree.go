//go:build !tinygo

package core

import (
	"fmt"

	ring "github.com/randomizedcoder/go-lock-free-ring"
)

// LockFreeRingSize is the capacity of a LockFreeSink.
const LockFreeRingSize = 1024

// LockFreeSink is an EventSink over a lock-free ring, for hosts where the
// interrupt handler runs on its own goroutine.
type LockFreeSink struct {
	ring *ring.ShardedRing
}

// NewLockFreeSink returns an empty sink with a single producer shard.
func NewLockFreeSink() (*LockFreeSink, error) {
	r, err := ring.NewShardedRing(LockFreeRingSize, 1)
	if err != nil {
		return nil, fmt.Errorf("wake event ring: %w", err)
	}
	return &LockFreeSink{ring: r}, nil
}

func (s *LockFreeSink) Post(ev WakeEvent) bool {
	return s.ring.Write(0, ev)
}

func (s *LockFreeSink) Poll() (WakeEvent, bool) {
	v, ok := s.ring.TryRead()
	if !ok {
		return WakeEvent{}, false
	}
	ev, ok := v.(WakeEvent)
	return ev, ok
}
