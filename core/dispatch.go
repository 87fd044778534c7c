package core

// Interrupt is the timer interrupt handler. It runs with interrupts
// suppressed and does a bounded amount of work per woken sleeper, so
// nothing in here may log, allocate, or block.
func (t *Timer) Interrupt() {
	t.ticks++
	now := t.ticks

	for req := t.sleepers.DrainDue(now); req != nil; {
		next := req.next
		req.next = nil

		req.Sema.Up()
		t.wakes++
		if !t.events.Post(WakeEvent{Tick: now, WakeTick: req.WakeTick}) {
			t.dropped++
		}

		req = next
	}

	t.sched.Tick()
}
