//go:build rp2040 || rp2350

package main

import "machine"

var debugUART *machine.UART

// initConsole brings up UART0 on GPIO0 (TX) and GPIO1 (RX) for the boot
// banner and stats. USB CDC carries the telemetry frames.
func initConsole() {
	uart := machine.UART0
	err := uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GPIO0,
		RX:       machine.GPIO1,
	})
	if err != nil {
		return
	}
	debugUART = uart
}

// consolePrintln writes a line to the debug UART.
func consolePrintln(s string) {
	if debugUART == nil {
		return
	}
	debugUART.Write([]byte(s))
	debugUART.Write([]byte("\r\n"))
}
