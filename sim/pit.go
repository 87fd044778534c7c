package sim

import (
	"context"
	"sync"
	"time"
)

// PIT is a simulated programmable interval timer. It raises one interrupt
// per period; ticks that come due while an interrupt is still pending are
// lost, as on hardware.
type PIT struct {
	frequency uint32
	raise     func()
	wg        sync.WaitGroup
}

func (p *PIT) Configure(frequency uint32) {
	p.frequency = frequency
}

// Frequency returns the programmed rate in Hz.
func (p *PIT) Frequency() uint32 {
	return p.frequency
}

// Period returns the time between interrupts.
func (p *PIT) Period() time.Duration {
	return time.Second / time.Duration(p.frequency)
}

// Start raises interrupts until ctx is done.
func (p *PIT) Start(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ticker := time.NewTicker(p.Period())
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.raise()
			}
		}
	}()
}

// Wait blocks until the PIT goroutine has exited.
func (p *PIT) Wait() {
	p.wg.Wait()
}
