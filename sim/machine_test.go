package sim

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"ticktimer/core"
)

var _ = Describe("Machine with a manual clock", func() {
	var m *Machine

	BeforeEach(func() {
		var err error
		m, err = NewMachine(Config{
			Frequency:   100,
			ManualClock: true,
			Logger:      zerolog.New(GinkgoWriter),
		})
		Expect(err).NotTo(HaveOccurred())
		m.Boot(&core.FakeProbe{Fit: 1 << 16})
	})

	AfterEach(func() {
		m.Wait()
	})

	sleeper := func(n int64, woke *core.Tick) func(th *Thread) {
		return func(th *Thread) {
			th.Timer().Sleep(n)
			*woke = th.Timer().Ticks()
		}
	}

	It("should wake a sleeper exactly at its wake tick", func() {
		var woke core.Tick
		m.Step(5)
		a := m.Spawn("a", sleeper(10, &woke))
		Eventually(a.State).Should(Equal(Blocked))

		m.Step(9)
		Consistently(a.State, 50*time.Millisecond).Should(Equal(Blocked))

		m.Step(1)
		Eventually(a.State).Should(Equal(Dying))
		Expect(woke).To(Equal(core.Tick(15)))
	})

	It("should wake earlier deadlines first", func() {
		var wokeA, wokeB core.Tick
		b := m.Spawn("b", sleeper(3, &wokeB))
		Eventually(b.State).Should(Equal(Blocked))
		a := m.Spawn("a", sleeper(5, &wokeA))
		Eventually(a.State).Should(Equal(Blocked))

		m.Step(3)
		Eventually(b.State).Should(Equal(Dying))
		Consistently(a.State, 50*time.Millisecond).Should(Equal(Blocked))

		m.Step(2)
		Eventually(a.State).Should(Equal(Dying))
		Expect(wokeB).To(Equal(core.Tick(3)))
		Expect(wokeA).To(Equal(core.Tick(5)))
	})

	It("should wake equal deadlines in arrival order", func() {
		var mu sync.Mutex
		var order []string
		record := func(name string) func(th *Thread) {
			return func(th *Thread) {
				th.Timer().Sleep(2)
				mu.Lock()
				order = append(order, name)
				mu.Unlock()
			}
		}

		var threads []*Thread
		for _, name := range []string{"first", "second", "third"} {
			th := m.Spawn(name, record(name))
			Eventually(th.State).Should(Equal(Blocked))
			threads = append(threads, th)
		}

		m.Step(2)
		for _, th := range threads {
			Eventually(th.State).Should(Equal(Dying))
		}
		Expect(order).To(Equal([]string{"first", "second", "third"}))
	})

	It("should spin rather than sleep below one tick", func() {
		done := make(chan core.Tick, 1)
		th := m.Spawn("spinner", func(th *Thread) {
			th.Timer().MSleep(5)
			done <- th.Timer().Ticks()
		})

		Eventually(done).Should(Receive(Equal(core.Tick(0))))
		Eventually(th.State).Should(Equal(Dying))
	})

	It("should charge idle ticks when no thread runs", func() {
		m.Step(7)
		idle, busy := m.Ticks()
		Expect(idle).To(Equal(uint64(7)))
		Expect(busy).To(BeZero())
	})

	It("should report wake events outside the interrupt", func() {
		var woke core.Tick
		a := m.Spawn("a", sleeper(4, &woke))
		Eventually(a.State).Should(Equal(Blocked))
		m.Step(4)
		Eventually(a.State).Should(Equal(Dying))
		Eventually(m.Idle).Should(BeTrue())

		var events []core.WakeEvent
		m.Timer().DrainEvents(func(ev core.WakeEvent) { events = append(events, ev) })
		Expect(events).To(Equal([]core.WakeEvent{{Tick: 4, WakeTick: 4}}))
	})
})

var _ = Describe("Threads", func() {
	It("should run one at a time and yield in FIFO order", func() {
		m, err := NewMachine(Config{Frequency: 100, ManualClock: true})
		Expect(err).NotTo(HaveOccurred())

		var trace []string
		gate := make(chan struct{})
		m.Spawn("a", func(th *Thread) {
			<-gate
			trace = append(trace, "a1")
			th.Yield()
			trace = append(trace, "a2")
		})
		m.Spawn("b", func(th *Thread) {
			trace = append(trace, "b1")
			th.Yield()
			trace = append(trace, "b2")
		})

		close(gate)
		m.Wait()
		Expect(trace).To(Equal([]string{"a1", "b1", "a2", "b2"}))
	})

	It("should flag a yield once the time slice is used", func() {
		m, err := NewMachine(Config{Frequency: 100, TimeSlice: 2, ManualClock: true})
		Expect(err).NotTo(HaveOccurred())

		inA := make(chan struct{})
		proceed := make(chan struct{})
		var trace []string
		m.Spawn("a", func(th *Thread) {
			close(inA)
			<-proceed
			th.Preempt()
			trace = append(trace, "a")
		})
		m.Spawn("b", func(th *Thread) {
			trace = append(trace, "b")
		})

		<-inA
		m.Step(2)
		close(proceed)
		m.Wait()
		Expect(trace).To(Equal([]string{"b", "a"}))
	})
})

var _ = Describe("Machine with a running PIT", func() {
	It("should calibrate and wake sleepers on real ticks", func() {
		m, err := NewMachine(Config{Frequency: 1000, Logger: zerolog.New(GinkgoWriter)})
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		m.Start(ctx)
		defer m.Stop()

		Expect(m.Boot(nil)).To(BeNumerically(">=", 1<<10))

		type result struct{ due, woke core.Tick }
		results := make(chan result, 4)
		for _, n := range []int64{3, 1, 8, 3} {
			m.Spawn("sleeper", func(th *Thread) {
				due := th.Timer().Ticks() + core.Tick(n)
				th.Timer().Sleep(n)
				results <- result{due: due, woke: th.Timer().Ticks()}
			})
		}
		m.Wait()
		close(results)

		for r := range results {
			Expect(r.woke).To(BeNumerically(">=", r.due))
		}

		m.Stop()
		Expect(m.Timer().Stats().Wakes).To(Equal(uint64(4)))
		n := m.Timer().DrainEvents(func(ev core.WakeEvent) {
			Expect(ev.Tick).To(BeNumerically(">=", ev.WakeTick))
		})
		Expect(n).To(Equal(4))
	})
})
