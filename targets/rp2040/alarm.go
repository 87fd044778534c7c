//go:build rp2040 || rp2350

package main

import (
	"device/rp"
	"runtime/interrupt"

	"ticktimer/core"
)

// The RP2040 timer is a free-running 1 MHz counter with four alarms. The
// TinyGo runtime keeps the low alarms for time.Sleep, so the periodic tick
// uses alarm 2.
const (
	timerClock = 1000000
	alarmBit   = 1 << 2
)

// alarmPIT raises a periodic interrupt by re-arming a timer alarm one
// period ahead on every expiry.
type alarmPIT struct {
	period uint32
	next   uint32
	intr   *core.HardwareController
}

func (p *alarmPIT) Configure(frequency uint32) {
	p.period = timerClock / frequency
}

// start arms the first alarm and enables the IRQ. The interrupt number has
// to be a constant, so the vector is declared here rather than in Configure.
func (p *alarmPIT) start() {
	irq := interrupt.New(rp.IRQ_TIMER_IRQ_2, func(interrupt.Interrupt) {
		rp.TIMER.INTR.Set(alarmBit)
		p.next += p.period
		rp.TIMER.ALARM2.Set(p.next)
		p.intr.Dispatch()
	})

	p.next = rp.TIMER.TIMERAWL.Get() + p.period
	rp.TIMER.ALARM2.Set(p.next)
	rp.TIMER.INTE.SetBits(alarmBit)
	irq.Enable()
}
