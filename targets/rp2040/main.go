//go:build rp2040 || rp2350

package main

import (
	"machine"

	"ticktimer/core"
	"ticktimer/protocol"
)

const frequency = 100

var (
	timer *core.Timer
	enc   protocol.Encoder
	frame []byte
)

func main() {
	// Clear any watchdog state left over from the previous run.
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	initConsole()
	core.SetDebugWriter(consolePrintln)
	machine.Serial.Configure(machine.UARTConfig{})
	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})

	intr := &core.HardwareController{}
	pit := &alarmPIT{intr: intr}
	b := &board{}
	timer = core.Init(core.Config{Frequency: frequency}, pit, intr, b)
	pit.start()

	timer.Calibrate(core.SpinProbe{Timer: timer})

	b.spawn("heartbeat", heartbeat)
	b.spawn("telemetry", telemetry)
	select {}
}

// heartbeat blinks the LED at 1 Hz.
func heartbeat() {
	led := false
	for {
		timer.MSleep(500)
		led = !led
		machine.LED.Set(led)
	}
}

// telemetry streams a stats frame every second, preceded by one wake frame
// per sleeper woken since the last report.
func telemetry() {
	for {
		timer.Sleep(int64(frequency))

		timer.DrainEvents(func(ev core.WakeEvent) {
			frame = enc.AppendWake(frame[:0], protocol.Wake{
				Tick:     uint64(ev.Tick),
				WakeTick: uint64(ev.WakeTick),
			})
			machine.Serial.Write(frame)
		})

		s := timer.Stats()
		frame = enc.AppendStats(frame[:0], protocol.Stats{
			Ticks:          uint64(s.Ticks),
			LoopsPerTick:   uint64(s.LoopsPerTick),
			LoopsPerSecond: s.LoopsPerSecond,
			Sleepers:       uint64(s.Sleepers),
			Wakes:          s.Wakes,
			Dropped:        s.Dropped,
		})
		machine.Serial.Write(frame)
		timer.PrintStats()
	}
}
