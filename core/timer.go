package core

// Supported interrupt rates. The 8254 divisor is 16 bits wide, which puts
// the floor at 19 Hz.
const (
	MinFrequency     = 19
	MaxFrequency     = 1000
	DefaultFrequency = 100
)

// Tick counts timer interrupts since Init.
type Tick uint64

// Config holds the timer configuration.
type Config struct {
	// Frequency is the interrupt rate in Hz.
	Frequency uint32

	// Events receives one WakeEvent per dispatched sleeper. Nil selects a
	// fixed-size WakeRing.
	Events EventSink
}

// Timer is the periodic-timer subsystem. There is one per machine; it is
// created by Init at boot and lives as long as the kernel.
type Timer struct {
	freq  uint32
	intr  InterruptController
	sched Scheduler

	// Shared with the interrupt handler; guarded by suppressing interrupts.
	ticks    Tick
	sleepers SleepRegistry
	wakes    uint64
	dropped  uint64
	events   EventSink

	loopsPerTick uint32
	spin         func(loops int64)
}

// Init programs pit to interrupt at cfg.Frequency and registers the
// dispatcher on intr. An unsupported frequency is fatal.
func Init(cfg Config, pit PeriodicTimer, intr InterruptController, sched Scheduler) *Timer {
	if cfg.Frequency == 0 {
		cfg.Frequency = DefaultFrequency
	}
	if cfg.Frequency < MinFrequency || cfg.Frequency > MaxFrequency {
		Fatalf("timer: frequency %d Hz outside %d..%d", cfg.Frequency, MinFrequency, MaxFrequency)
	}
	if cfg.Events == nil {
		cfg.Events = &WakeRing{}
	}

	t := &Timer{
		freq:   cfg.Frequency,
		intr:   intr,
		sched:  sched,
		events: cfg.Events,
		spin:   BusyWait,
	}

	pit.Configure(t.freq)
	intr.Register("8254 Timer", t.Interrupt)
	return t
}

// Frequency returns the configured interrupt rate in Hz.
func (t *Timer) Frequency() uint32 {
	return t.freq
}

// Ticks returns the number of timer ticks since Init.
func (t *Timer) Ticks() Tick {
	state := disableInterrupts(t.intr)
	defer restoreInterrupts(t.intr, state)

	return t.ticks
}

// Elapsed returns the ticks since then, a value once returned by Ticks.
func (t *Timer) Elapsed(then Tick) Tick {
	return t.Ticks() - then
}

// Sleep blocks the running thread for about n ticks. Interrupts must be on.
// n <= 0 returns immediately.
func (t *Timer) Sleep(n int64) {
	if t.intr.Level() != LevelOn {
		Fatalf("timer: Sleep called with interrupts off")
	}
	if n <= 0 {
		return
	}

	req := &SleepRequest{
		WakeTick: t.Ticks() + Tick(n),
		Sema:     t.sched.Current().SleepSema(),
	}

	t.enqueue(req)

	// The dispatcher may already have signaled req; a binary semaphore
	// keeps that wake-up for this Down.
	req.Sema.Down()
}

func (t *Timer) enqueue(req *SleepRequest) {
	state := disableInterrupts(t.intr)
	defer restoreInterrupts(t.intr, state)

	t.sleepers.Enqueue(req)
}
