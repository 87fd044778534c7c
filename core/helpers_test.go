package core

import (
	"fmt"
	"testing"
)

//go:generate mockgen -destination mock_core_test.go -package core ticktimer/core Semaphore,Thread,Scheduler,LoopProbe

type testPIT struct {
	frequency uint32
}

func (p *testPIT) Configure(frequency uint32) {
	p.frequency = frequency
}

// countingSema is a Semaphore whose Down never blocks.
type countingSema struct {
	downs int
	ups   int
}

func (s *countingSema) Down() { s.downs++ }
func (s *countingSema) Up()   { s.ups++ }

type testThread struct {
	name string
	sema *countingSema
}

func newTestThread(name string) *testThread {
	return &testThread{name: name, sema: &countingSema{}}
}

func (th *testThread) Name() string         { return th.name }
func (th *testThread) SleepSema() Semaphore { return th.sema }

// testSched runs "current" by hand and counts Tick calls.
type testSched struct {
	current Thread
	ticks   int
}

func (s *testSched) Current() Thread { return s.current }
func (s *testSched) Tick()           { s.ticks++ }

func newTestTimer(t *testing.T, freq uint32) (*Timer, *SoftController, *testSched) {
	t.Helper()
	intr := NewSoftController()
	sched := &testSched{}
	return Init(Config{Frequency: freq}, &testPIT{}, intr, sched), intr, sched
}

// advance delivers n timer interrupts.
func advance(intr *SoftController, n int) {
	for i := 0; i < n; i++ {
		intr.Raise()
	}
}

type fatalPanic string

// captureFatal runs fn and returns the Fatalf message it raised, or "".
func captureFatal(t *testing.T, fn func()) (msg string) {
	t.Helper()
	prev := exitFatal
	exitFatal = func(format string, args ...interface{}) {
		panic(fatalPanic(fmt.Sprintf(format, args...)))
	}
	defer func() {
		exitFatal = prev
		if r := recover(); r != nil {
			s, ok := r.(fatalPanic)
			if !ok {
				panic(r)
			}
			msg = string(s)
		}
	}()

	fn()
	return ""
}
