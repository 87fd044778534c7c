// Command ticktimer runs the timer core on a simulated machine and
// monitors telemetry from boards running it.
package main

import "ticktimer/host/cli"

func main() {
	cli.Execute()
}
