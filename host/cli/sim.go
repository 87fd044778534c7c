package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/spf13/cobra"

	"ticktimer/core"
	"ticktimer/protocol"
	"ticktimer/sim"
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run sleeping threads on a simulated machine",
	Long: `Boots a simulated single-core machine, calibrates the busy-wait ` +
		`loop against its PIT, and runs threads that repeatedly sleep for a ` +
		`random number of ticks. A monitor thread reports wake-ups.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		threads, _ := cmd.Flags().GetInt("threads")
		rounds, _ := cmd.Flags().GetInt("rounds")
		maxSleep, _ := cmd.Flags().GetInt64("max-sleep")
		slice, _ := cmd.Flags().GetUint32("time-slice")
		seed, _ := cmd.Flags().GetInt64("seed")
		telemetry, _ := cmd.Flags().GetString("telemetry")

		if threads < 1 || rounds < 1 || maxSleep < 1 {
			return fmt.Errorf("threads, rounds and max-sleep must be positive")
		}

		var out io.Writer = io.Discard
		if telemetry != "" {
			f, err := os.Create(telemetry)
			if err != nil {
				return fmt.Errorf("create telemetry file: %w", err)
			}
			defer f.Close()
			core.OnExit(func() { f.Close() })
			out = f
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return runSim(ctx, simParams{
			threads:   threads,
			rounds:    rounds,
			maxSleep:  maxSleep,
			timeSlice: slice,
			rng:       rand.New(rand.NewSource(seed)),
			telemetry: out,
		})
	},
}

func init() {
	flags := simCmd.Flags()
	flags.Int("threads", 4, "number of sleeper threads")
	flags.Int("rounds", 5, "sleeps per thread")
	flags.Int64("max-sleep", 20, "longest sleep in ticks")
	flags.Uint32("time-slice", sim.DefaultTimeSlice, "ticks per scheduler time slice")
	flags.Int64("seed", 1, "random seed for sleep lengths")
	flags.String("telemetry", "", "write telemetry frames to this file")
	rootCmd.AddCommand(simCmd)
}

type simParams struct {
	threads   int
	rounds    int
	maxSleep  int64
	timeSlice uint32
	rng       *rand.Rand
	telemetry io.Writer
}

func runSim(ctx context.Context, p simParams) error {
	m, err := sim.NewMachine(sim.Config{
		Frequency: cfg.Frequency,
		TimeSlice: p.timeSlice,
		Logger:    log,
	})
	if err != nil {
		return err
	}

	m.Start(ctx)
	defer m.Stop()
	m.Boot(nil)

	var running atomic.Int32
	running.Store(int32(p.threads))
	for i := 0; i < p.threads; i++ {
		sleeps := make([]int64, p.rounds)
		for r := range sleeps {
			sleeps[r] = 1 + p.rng.Int63n(p.maxSleep)
		}
		m.Spawn(fmt.Sprintf("sleeper-%d", i), func(th *sim.Thread) {
			defer running.Add(-1)
			for _, n := range sleeps {
				if ctx.Err() != nil {
					return
				}
				th.Timer().Sleep(n)
				th.Preempt()
			}
		})
	}

	var enc protocol.Encoder
	var frame []byte
	report := func(t *core.Timer) {
		t.DrainEvents(func(ev core.WakeEvent) {
			log.Debug().
				Uint64("tick", uint64(ev.Tick)).
				Uint64("wake_tick", uint64(ev.WakeTick)).
				Uint64("late", uint64(ev.Late())).
				Msg("woke")
			frame = enc.AppendWake(frame[:0], protocol.Wake{Tick: uint64(ev.Tick), WakeTick: uint64(ev.WakeTick)})
			p.telemetry.Write(frame)
		})

		s := t.Stats()
		frame = enc.AppendStats(frame[:0], statsFrame(s))
		p.telemetry.Write(frame)
		log.Info().
			Uint64("ticks", uint64(s.Ticks)).
			Int("sleepers", s.Sleepers).
			Uint64("wakes", s.Wakes).
			Uint64("dropped", s.Dropped).
			Msg("timer")
	}

	// The monitor is a thread itself so it can take the interrupt guard.
	m.Spawn("monitor", func(th *sim.Thread) {
		for running.Load() > 0 && ctx.Err() == nil {
			th.Timer().Sleep(int64(th.Timer().Frequency()))
			report(th.Timer())
		}
		report(th.Timer())
	})

	done := make(chan struct{})
	go func() {
		m.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		// Sleepers never wake once the PIT stops.
		m.Stop()
		log.Warn().Msg("interrupted")
		return ctx.Err()
	}
	m.Stop()

	idle, busy := m.Ticks()
	log.Info().Uint64("idle_ticks", idle).Uint64("thread_ticks", busy).Msg("scheduler")
	m.Timer().PrintStats()
	return nil
}

func statsFrame(s core.Stats) protocol.Stats {
	return protocol.Stats{
		Ticks:          uint64(s.Ticks),
		LoopsPerTick:   uint64(s.LoopsPerTick),
		LoopsPerSecond: s.LoopsPerSecond,
		Sleepers:       uint64(s.Sleepers),
		Wakes:          s.Wakes,
		Dropped:        s.Dropped,
	}
}
