package core

// Stats is a consistent snapshot of the timer state.
type Stats struct {
	Ticks          Tick
	LoopsPerTick   uint32
	LoopsPerSecond uint64
	Sleepers       int
	Wakes          uint64
	Dropped        uint64
}

// Stats returns a snapshot taken with interrupts off.
func (t *Timer) Stats() Stats {
	state := disableInterrupts(t.intr)
	defer restoreInterrupts(t.intr, state)

	return Stats{
		Ticks:          t.ticks,
		LoopsPerTick:   t.loopsPerTick,
		LoopsPerSecond: uint64(t.loopsPerTick) * uint64(t.freq),
		Sleepers:       t.sleepers.Len(),
		Wakes:          t.wakes,
		Dropped:        t.dropped,
	}
}

// PrintStats writes the tick count to the debug console.
func (t *Timer) PrintStats() {
	debugPrintln("Timer: " + utoa(uint64(t.Ticks())) + " ticks")
}
