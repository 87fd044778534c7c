package core

// LoopProbe answers the one hardware-dependent question calibration asks.
type LoopProbe interface {
	// TooManyLoops reports whether loops iterations of BusyWait, started
	// right after a tick edge, run past the next tick.
	TooManyLoops(loops uint32) bool
}

// Calibrate measures how many BusyWait iterations fit in one tick and
// stores the result for the sub-tick delays. It must run once at boot with
// interrupts on, before any delay is requested.
func (t *Timer) Calibrate(probe LoopProbe) uint32 {
	if t.intr.Level() != LevelOn {
		Fatalf("timer: Calibrate called with interrupts off")
	}
	debugPrintln("Calibrating timer...  ")

	// Largest power of two still under one tick.
	loops := uint32(1) << 10
	for !probe.TooManyLoops(loops << 1) {
		loops <<= 1
		if loops == 0 {
			Fatalf("timer: loop count overflowed during calibration")
		}
	}

	// Refine the nine bits below the high bit.
	high := loops
	for bit := high >> 1; bit != high>>10; bit >>= 1 {
		if !probe.TooManyLoops(loops | bit) {
			loops |= bit
		}
	}

	t.loopsPerTick = loops
	debugPrintln(grouped(uint64(loops)*uint64(t.freq)) + " loops/s.")
	return loops
}

// LoopsPerTick returns the calibrated loop count, 0 before Calibrate.
func (t *Timer) LoopsPerTick() uint32 {
	return t.loopsPerTick
}

// SpinProbe times BusyWait against the timer's own tick counter. It only
// works while the timer interrupt is being delivered.
type SpinProbe struct {
	Timer *Timer
}

func (p SpinProbe) TooManyLoops(loops uint32) bool {
	// Wait for a tick edge.
	start := p.Timer.Ticks()
	for p.Timer.Ticks() == start {
	}

	start = p.Timer.Ticks()
	BusyWait(int64(loops))
	return start != p.Timer.Ticks()
}

// FakeProbe is a deterministic LoopProbe: any count up to Fit fits in a tick.
type FakeProbe struct {
	Fit   uint32
	Calls int
}

func (p *FakeProbe) TooManyLoops(loops uint32) bool {
	p.Calls++
	return loops > p.Fit
}

// BusyWait spins for loops iterations.
//
//go:noinline
func BusyWait(loops int64) {
	for loops > 0 {
		loops--
	}
}
