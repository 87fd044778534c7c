// Package serial connects the host tools to a board's telemetry link.
package serial

import (
	"io"
)

// Port represents a serial port. Implementations: the native port over
// github.com/tarm/serial, or any io.ReadWriteCloser in tests.
type Port interface {
	io.ReadWriteCloser

	// Flush discards input received but not yet read
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate; USB CDC links ignore it
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultBaud is the telemetry link rate for UART-attached boards.
const DefaultBaud = 115200

// DefaultConfig returns the telemetry link defaults for device.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DefaultBaud,
		ReadTimeout: 100,
	}
}
