package core

import "github.com/tebeka/atexit"

// exitFatal is swapped out by tests to observe violations without exiting.
var exitFatal = atexit.Fatalf

// Fatalf reports a broken caller contract and terminates the kernel after
// running the registered exit handlers. It does not return.
func Fatalf(format string, args ...interface{}) {
	exitFatal(format, args...)
	panic("timer: fatal handler returned")
}

// OnExit registers fn to run before a fatal exit, e.g. to dump stats.
func OnExit(fn func()) {
	atexit.Register(fn)
}
