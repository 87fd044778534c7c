package core

// Denominators for the real-time sleeps and delays.
const (
	Millisecond int32 = 1000
	Microsecond int32 = 1000 * 1000
	Nanosecond  int32 = 1000 * 1000 * 1000
)

// MSleep sleeps for about ms milliseconds. Interrupts must be on.
func (t *Timer) MSleep(ms int64) { t.realTimeSleep(ms, Millisecond) }

// USleep sleeps for about us microseconds. Interrupts must be on.
func (t *Timer) USleep(us int64) { t.realTimeSleep(us, Microsecond) }

// NSleep sleeps for about ns nanoseconds. Interrupts must be on.
func (t *Timer) NSleep(ns int64) { t.realTimeSleep(ns, Nanosecond) }

// MDelay busy-waits for about ms milliseconds. Interrupts need not be on,
// but spinning with them off for a tick or longer loses ticks; prefer
// MSleep when interrupts are enabled.
func (t *Timer) MDelay(ms int64) { t.realTimeDelay(ms, Millisecond) }

// UDelay busy-waits for about us microseconds.
func (t *Timer) UDelay(us int64) { t.realTimeDelay(us, Microsecond) }

// NDelay busy-waits for about ns nanoseconds.
func (t *Timer) NDelay(ns int64) { t.realTimeDelay(ns, Nanosecond) }

// toTicks converts num/denom seconds to whole ticks, rounding down.
func (t *Timer) toTicks(num int64, denom int32) int64 {
	return num * int64(t.freq) / int64(denom)
}

// realTimeSleep sleeps for num/denom seconds: a tick sleep when at least
// one full tick is requested, a calibrated spin otherwise.
func (t *Timer) realTimeSleep(num int64, denom int32) {
	ticks := t.toTicks(num, denom)

	if t.intr.Level() != LevelOn {
		Fatalf("timer: real-time sleep called with interrupts off")
	}
	if ticks > 0 {
		t.Sleep(ticks)
		return
	}
	t.realTimeDelay(num, denom)
}

// realTimeDelay spins for num/denom seconds.
func (t *Timer) realTimeDelay(num int64, denom int32) {
	if denom%1000 != 0 {
		Fatalf("timer: delay denominator %d is not a multiple of 1000", denom)
	}

	// Scale num and denom down by 1000 first so the product cannot
	// overflow.
	t.spin(int64(t.loopsPerTick) * num / 1000 * int64(t.freq) / int64(denom/1000))
}
