package core

// Level is the interrupt-suppression level of the running context.
type Level uint8

const (
	LevelOff Level = iota // interrupts suppressed
	LevelOn               // interrupts delivered
)

func (l Level) String() string {
	if l == LevelOn {
		return "on"
	}
	return "off"
}

// InterruptController is the slice of the interrupt controller the timer
// needs: query and change the suppression level, and hook the periodic
// timer line.
type InterruptController interface {
	// Level returns the current level of the calling thread context.
	Level() Level

	// Disable suppresses interrupts and returns the previous level.
	Disable() Level

	// SetLevel switches to l and returns the previous level.
	SetLevel(l Level) Level

	// Register installs handler for the periodic timer interrupt line.
	// The handler is always invoked with interrupts suppressed.
	Register(name string, handler func())
}

// disableInterrupts suppresses interrupts on c and returns the level to
// hand back to restoreInterrupts. Callers pair them with defer so the
// prior level is restored on every exit path.
func disableInterrupts(c InterruptController) Level {
	return c.Disable()
}

// restoreInterrupts puts c back to the level returned by disableInterrupts.
func restoreInterrupts(c InterruptController, state Level) {
	c.SetLevel(state)
}
