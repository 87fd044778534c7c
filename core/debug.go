package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// debugPrintln is the console sink for boot messages and stats. Platform
// code points it at UART, USB CDC or stdout. Never called from Interrupt.
var debugPrintln DebugWriter = func(string) {}

// SetDebugWriter sets the platform-specific debug output function.
func SetDebugWriter(writer DebugWriter) {
	if writer == nil {
		writer = func(string) {}
	}
	debugPrintln = writer
}
