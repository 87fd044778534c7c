package core

// Semaphore is a binary semaphore owned by one thread.
type Semaphore interface {
	// Down blocks the calling thread until the semaphore is signaled.
	Down()

	// Up releases exactly one waiter, or leaves the semaphore signaled if
	// nobody is waiting yet. Must not block; it is called from the timer
	// interrupt.
	Up()
}

// Thread is the view of a kernel thread the timer needs.
type Thread interface {
	Name() string

	// SleepSema returns the semaphore the thread parks on while sleeping.
	SleepSema() Semaphore
}

// Scheduler is the thread scheduler as seen from the timer.
type Scheduler interface {
	// Current returns the running thread.
	Current() Thread

	// Tick is the per-tick accounting hook, called once at the end of
	// every timer interrupt.
	Tick()
}

// PeriodicTimer is the hardware timer driver.
type PeriodicTimer interface {
	// Configure programs a periodic interrupt at frequency Hz.
	Configure(frequency uint32)
}
