package core

// WakeEvent records one dispatched sleeper.
type WakeEvent struct {
	Tick     Tick // tick the sleeper was woken at
	WakeTick Tick // tick it asked for
}

// Late returns how many ticks after its wake tick the sleeper was woken.
func (e WakeEvent) Late() Tick {
	return e.Tick - e.WakeTick
}

// EventSink is the bounded side channel the dispatcher reports through.
// Post is called from the interrupt handler and must not block; it
// returns false when the event was dropped.
type EventSink interface {
	Post(ev WakeEvent) bool
	Poll() (WakeEvent, bool)
}

// WakeRingSize is the capacity of a WakeRing.
const WakeRingSize = 32

// WakeRing is a fixed-size single-producer ring. The producer is the
// interrupt handler and the consumer polls with interrupts off, so the
// indices need no atomics.
type WakeRing struct {
	buf  [WakeRingSize]WakeEvent
	head uint8 // next read
	n    uint8
}

func (r *WakeRing) Post(ev WakeEvent) bool {
	if r.n == WakeRingSize {
		return false
	}
	r.buf[(r.head+r.n)%WakeRingSize] = ev
	r.n++
	return true
}

func (r *WakeRing) Poll() (WakeEvent, bool) {
	if r.n == 0 {
		return WakeEvent{}, false
	}
	ev := r.buf[r.head]
	r.head = (r.head + 1) % WakeRingSize
	r.n--
	return ev, true
}

// DrainEvents hands every queued WakeEvent to fn, oldest first. fn runs
// with interrupts enabled, so it may log.
func (t *Timer) DrainEvents(fn func(WakeEvent)) int {
	n := 0
	for {
		ev, ok := t.pollEvent()
		if !ok {
			return n
		}
		fn(ev)
		n++
	}
}

func (t *Timer) pollEvent() (WakeEvent, bool) {
	state := disableInterrupts(t.intr)
	defer restoreInterrupts(t.intr, state)

	return t.events.Poll()
}
