package sim

import (
	"github.com/rs/xid"

	"ticktimer/core"
)

// State is a simulated thread's scheduling state.
type State uint8

const (
	Ready State = iota
	Running
	Blocked
	Dying
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Blocked:
		return "blocked"
	default:
		return "dying"
	}
}

// Thread is a simulated kernel thread.
type Thread struct {
	id    xid.ID
	name  string
	m     *Machine
	sema  *Semaphore
	run   chan struct{}
	state State
	ticks uint64
}

// Spawn creates a thread running fn and makes it ready.
func (m *Machine) Spawn(name string, fn func(th *Thread)) *Thread {
	th := &Thread{
		id:   xid.New(),
		name: name,
		m:    m,
		run:  make(chan struct{}, 1),
	}
	th.sema = NewSemaphore(m)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		<-th.run
		m.log.Debug().Str("thread", name).Str("id", th.id.String()).Msg("thread started")
		fn(th)
		m.log.Debug().Str("thread", name).Uint64("ticks", th.Ticks()).Msg("thread exiting")
		m.switchAway(Dying)
	}()

	m.makeReady(th)
	return th
}

func (th *Thread) Name() string { return th.name }

// ID returns the thread's unique identifier.
func (th *Thread) ID() xid.ID { return th.id }

func (th *Thread) SleepSema() core.Semaphore { return th.sema }

// Timer returns the timer core of the thread's machine.
func (th *Thread) Timer() *core.Timer { return th.m.timer }

// State returns the thread's current scheduling state.
func (th *Thread) State() State {
	th.m.mu.Lock()
	defer th.m.mu.Unlock()

	return th.state
}

// Ticks returns the timer ticks charged to the thread.
func (th *Thread) Ticks() uint64 {
	th.m.mu.Lock()
	defer th.m.mu.Unlock()

	return th.ticks
}

// Yield moves th to the back of the run queue if another thread is ready.
func (th *Thread) Yield() {
	m := th.m
	m.mu.Lock()
	if m.ready.Length() == 0 {
		m.slice = 0
		m.yieldOn = false
		m.mu.Unlock()
		return
	}
	th.state = Ready
	m.ready.Add(th)
	m.dispatch(m.ready.Remove().(*Thread))
	m.mu.Unlock()

	<-th.run
}

// Preempt yields if th has used up its time slice. Simulated threads are
// only preempted at these points.
func (th *Thread) Preempt() {
	th.m.mu.Lock()
	expired := th.m.yieldOn
	th.m.mu.Unlock()

	if expired {
		th.Yield()
	}
}
