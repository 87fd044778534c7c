//go:build !tinygo

package core

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// SoftController emulates a single-core interrupt controller on regular Go.
//
// Suppressing interrupts takes the mask lock; Raise delivers the timer
// interrupt by taking the same lock, so the handler can never interleave
// with a thread-context critical section. The thread-context level is only
// touched by the one thread that currently owns the CPU.
//
// The handler runs at LevelOff. Calls made on the goroutine running it see
// LevelOff and never touch the mask, so a handler may use the guard.
type SoftController struct {
	mask    sync.Mutex
	level   Level
	name    string
	handler func()

	// goroutine running the handler, 0 outside Raise
	handlerG atomic.Uint64
}

// NewSoftController returns a controller with interrupts enabled.
func NewSoftController() *SoftController {
	return &SoftController{level: LevelOn}
}

func (c *SoftController) Level() Level {
	if c.inHandler() {
		return LevelOff
	}
	return c.level
}

func (c *SoftController) Disable() Level {
	return c.SetLevel(LevelOff)
}

func (c *SoftController) SetLevel(l Level) Level {
	if c.inHandler() {
		return LevelOff
	}

	old := c.level
	switch {
	case old == LevelOn && l == LevelOff:
		c.mask.Lock()
		c.level = LevelOff
	case old == LevelOff && l == LevelOn:
		c.level = LevelOn
		c.mask.Unlock()
	}
	return old
}

func (c *SoftController) Register(name string, handler func()) {
	c.name = name
	c.handler = handler
}

// Name returns the name the timer line was registered under.
func (c *SoftController) Name() string {
	return c.name
}

// Raise delivers one timer interrupt. It waits while a thread holds
// interrupts off, which is how a pending interrupt behaves on hardware.
func (c *SoftController) Raise() {
	c.mask.Lock()
	defer c.mask.Unlock()

	c.handlerG.Store(goroutineID())
	defer c.handlerG.Store(0)

	if c.handler != nil {
		c.handler()
	}
}

// inHandler reports whether the caller is the goroutine inside Raise.
func (c *SoftController) inHandler() bool {
	g := c.handlerG.Load()
	if g == 0 {
		return false
	}
	return goroutineID() == g
}

// goroutineID parses the current goroutine's ID out of its stack header.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] < '0' || buf[i] > '9' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}
