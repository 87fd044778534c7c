//go:build rp2040 || rp2350

package main

import (
	"runtime"
	"sync/atomic"

	"ticktimer/core"
)

// board is the scheduler for the firmware's fixed set of threads. Each
// thread is a goroutine; TinyGo only switches goroutines at blocking calls,
// and the only one the threads make is Semaphore.Down, which records the
// owner as current again before returning.
type board struct {
	current *boardThread
}

func (b *board) Current() core.Thread {
	return b.current
}

// Tick runs in the timer interrupt. Threads here only switch when they
// block, so there is no time slice to account.
func (b *board) Tick() {}

// spawn starts fn as a named thread.
func (b *board) spawn(name string, fn func()) {
	th := &boardThread{name: name}
	th.sema = &pollSema{owner: th, b: b}
	go func() {
		b.current = th
		fn()
	}()
	runtime.Gosched()
}

type boardThread struct {
	name string
	sema *pollSema
}

func (th *boardThread) Name() string              { return th.name }
func (th *boardThread) SleepSema() core.Semaphore { return th.sema }

// pollSema is a binary semaphore that yields to other goroutines while it
// waits. Up only stores a flag, so it is safe from the timer interrupt.
type pollSema struct {
	signaled atomic.Bool
	owner    *boardThread
	b        *board
}

func (s *pollSema) Down() {
	for !s.signaled.CompareAndSwap(true, false) {
		runtime.Gosched()
	}
	s.b.current = s.owner
}

func (s *pollSema) Up() {
	s.signaled.Store(true)
}
