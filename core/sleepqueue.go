package core

// SleepRequest is one thread's pending wake-up.
type SleepRequest struct {
	WakeTick Tick
	Sema     Semaphore
	next     *SleepRequest
}

// SleepRegistry keeps pending requests sorted by wake tick, oldest arrival
// first among equal wake ticks. It is not synchronized: callers hold
// interrupts off around every call.
type SleepRegistry struct {
	head *SleepRequest
	size int
}

// Enqueue inserts r after every request with a wake tick <= r.WakeTick.
func (q *SleepRegistry) Enqueue(r *SleepRequest) {
	q.size++

	if q.head == nil || r.WakeTick < q.head.WakeTick {
		r.next = q.head
		q.head = r
		return
	}

	current := q.head
	for current.next != nil && current.next.WakeTick <= r.WakeTick {
		current = current.next
	}

	r.next = current.next
	current.next = r
}

// DrainDue detaches every request with WakeTick <= now and returns the
// first of them, or nil. The batch is linked through next in wake order and
// stays valid until the caller walks it; the scan stops at the first
// request that is not yet due.
func (q *SleepRegistry) DrainDue(now Tick) *SleepRequest {
	if q.head == nil || q.head.WakeTick > now {
		return nil
	}

	first := q.head
	last := first
	q.size--
	for last.next != nil && last.next.WakeTick <= now {
		last = last.next
		q.size--
	}

	q.head = last.next
	last.next = nil
	return first
}

// Len returns the number of pending requests.
func (q *SleepRegistry) Len() int {
	return q.size
}

// wakeTicks returns the pending wake ticks in queue order.
func (q *SleepRegistry) wakeTicks() []Tick {
	out := make([]Tick, 0, q.size)
	for r := q.head; r != nil; r = r.next {
		out = append(out, r.WakeTick)
	}
	return out
}
