// Package sim runs the timer core on a simulated single-core machine.
//
// Simulated threads are goroutines, but only the one holding the CPU runs;
// the others wait in a FIFO run queue or on a semaphore. A PIT goroutine
// raises the timer interrupt at the configured frequency, or the caller
// drives the clock by hand with Step.
package sim

import (
	"context"
	"fmt"
	"sync"

	"github.com/eapache/queue"
	"github.com/rs/zerolog"

	"ticktimer/core"
)

// DefaultTimeSlice is the number of ticks a thread runs before it is asked
// to yield.
const DefaultTimeSlice = 4

// Config configures a Machine.
type Config struct {
	Frequency   uint32
	TimeSlice   uint32
	ManualClock bool
	Logger      zerolog.Logger
}

// Machine is one simulated CPU with its interrupt controller, PIT and
// timer core.
type Machine struct {
	cfg   Config
	log   zerolog.Logger
	intr  *core.SoftController
	pit   *PIT
	timer *core.Timer

	mu          sync.Mutex
	running     *Thread
	ready       *queue.Queue
	slice       uint32
	yieldOn     bool
	idleTicks   uint64
	threadTicks uint64

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMachine wires the timer core to a fresh simulated machine. The clock
// does not run until Start.
func NewMachine(cfg Config) (*Machine, error) {
	if cfg.TimeSlice == 0 {
		cfg.TimeSlice = DefaultTimeSlice
	}
	sink, err := core.NewLockFreeSink()
	if err != nil {
		return nil, fmt.Errorf("new machine: %w", err)
	}

	m := &Machine{
		cfg:   cfg,
		log:   cfg.Logger.With().Str("component", "sim").Logger(),
		intr:  core.NewSoftController(),
		ready: queue.New(),
	}
	m.pit = &PIT{raise: m.intr.Raise}
	m.timer = core.Init(core.Config{Frequency: cfg.Frequency, Events: sink}, m.pit, m.intr, m)
	return m, nil
}

// Timer returns the machine's timer core.
func (m *Machine) Timer() *core.Timer {
	return m.timer
}

// Start runs the PIT until ctx is done or Stop is called. It is a no-op
// with a manual clock.
func (m *Machine) Start(ctx context.Context) {
	if m.cfg.ManualClock {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.pit.Start(ctx)
	m.log.Debug().
		Uint32("frequency", m.pit.Frequency()).
		Dur("period", m.pit.Period()).
		Msg("PIT started")
}

// Stop halts the PIT.
func (m *Machine) Stop() {
	if m.cancel != nil {
		m.cancel()
		m.pit.Wait()
		m.cancel = nil
	}
}

// Boot calibrates the timer. With a nil probe it times real loops against
// the running PIT, so Start must have been called. Call it before spawning
// threads.
func (m *Machine) Boot(probe core.LoopProbe) uint32 {
	if probe == nil {
		probe = core.SpinProbe{Timer: m.timer}
	}
	loops := m.timer.Calibrate(probe)
	m.log.Info().
		Uint32("loops_per_tick", loops).
		Uint64("loops_per_second", uint64(loops)*uint64(m.timer.Frequency())).
		Msg("timer calibrated")
	return loops
}

// Step delivers n timer interrupts by hand.
func (m *Machine) Step(n int) {
	for i := 0; i < n; i++ {
		m.intr.Raise()
	}
}

// Wait blocks until every spawned thread has returned.
func (m *Machine) Wait() {
	m.wg.Wait()
}

// Idle reports whether no thread is running or ready to run.
func (m *Machine) Idle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.running == nil && m.ready.Length() == 0
}

// Ticks returns how many ticks were spent idle and in threads.
func (m *Machine) Ticks() (idle, busy uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.idleTicks, m.threadTicks
}

// Current returns the thread holding the CPU, or nil.
func (m *Machine) Current() core.Thread {
	if th := m.current(); th != nil {
		return th
	}
	return nil
}

// Tick is the scheduler's per-tick accounting. It runs inside the timer
// interrupt.
func (m *Machine) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	th := m.running
	if th == nil {
		m.idleTicks++
		return
	}
	th.ticks++
	m.threadTicks++
	m.slice++
	if m.slice >= m.cfg.TimeSlice {
		m.yieldOn = true
	}
}

func (m *Machine) current() *Thread {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.running
}

// makeReady queues th, handing it the CPU straight away if nobody holds it.
// Safe from interrupt context.
func (m *Machine) makeReady(th *Thread) {
	m.mu.Lock()
	defer m.mu.Unlock()

	th.state = Ready
	if m.running == nil {
		m.dispatch(th)
		return
	}
	m.ready.Add(th)
}

// switchAway gives up the CPU on behalf of the running thread.
func (m *Machine) switchAway(next State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.running.state = next
	m.running = nil
	if m.ready.Length() > 0 {
		m.dispatch(m.ready.Remove().(*Thread))
	}
}

// dispatch hands the CPU to th. m.mu must be held.
func (m *Machine) dispatch(th *Thread) {
	m.running = th
	m.slice = 0
	m.yieldOn = false
	th.state = Running
	th.run <- struct{}{}
}
