//go:build tinygo

package core

import "runtime/interrupt"

// HardwareController drives the real interrupt mask through TinyGo's
// runtime/interrupt. On Cortex-M the saved state is PRIMASK, so a zero
// state means interrupts were enabled.
type HardwareController struct {
	name    string
	handler func()
}

func (c *HardwareController) Level() Level {
	state := interrupt.Disable()
	interrupt.Restore(state)
	return levelOf(state)
}

func (c *HardwareController) Disable() Level {
	return levelOf(interrupt.Disable())
}

func (c *HardwareController) SetLevel(l Level) Level {
	old := interrupt.Disable()
	if l == LevelOn {
		interrupt.Restore(0)
	}
	return levelOf(old)
}

// Register records the handler. interrupt.New needs a constant IRQ number,
// so the board wires the vector itself and calls Dispatch from it.
func (c *HardwareController) Register(name string, handler func()) {
	c.name = name
	c.handler = handler
}

// Dispatch runs the registered handler from the board's IRQ vector.
func (c *HardwareController) Dispatch() {
	if c.handler != nil {
		c.handler()
	}
}

func levelOf(state interrupt.State) Level {
	if state == 0 {
		return LevelOn
	}
	return LevelOff
}
