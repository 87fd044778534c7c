package sim

import "sync"

// Semaphore is a binary semaphore for simulated threads. Up may be called
// from the timer interrupt; Down only from a running thread.
type Semaphore struct {
	m        *Machine
	mu       sync.Mutex
	signaled bool
	waiter   *Thread
}

// NewSemaphore returns an unsignaled semaphore on m.
func NewSemaphore(m *Machine) *Semaphore {
	return &Semaphore{m: m}
}

func (s *Semaphore) Down() {
	s.mu.Lock()
	if s.signaled {
		s.signaled = false
		s.mu.Unlock()
		return
	}
	th := s.m.current()
	s.waiter = th
	s.mu.Unlock()

	s.m.switchAway(Blocked)
	<-th.run
}

func (s *Semaphore) Up() {
	s.mu.Lock()
	th := s.waiter
	s.waiter = nil
	if th == nil {
		s.signaled = true
	}
	s.mu.Unlock()

	if th != nil {
		s.m.makeReady(th)
	}
}
