package cli

import (
	"context"

	"github.com/shirou/gopsutil/cpu"
	"github.com/spf13/cobra"

	"ticktimer/sim"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Measure busy-wait loops per tick on this host",
	Long: `Calibrates the busy-wait loop against a simulated PIT running at ` +
		`the configured frequency. Each run boots a fresh machine, since a ` +
		`timer is calibrated exactly once.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runs, _ := cmd.Flags().GetInt("runs")

		model := "unknown"
		if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
			model = infos[0].ModelName
		} else if err != nil {
			log.Warn().Err(err).Msg("cpu info unavailable")
		}

		for i := 0; i < runs; i++ {
			loops, err := calibrateOnce(cmd.Context())
			if err != nil {
				return err
			}
			log.Info().
				Int("run", i+1).
				Str("cpu", model).
				Uint32("frequency", cfg.Frequency).
				Uint32("loops_per_tick", loops).
				Uint64("loops_per_second", uint64(loops)*uint64(cfg.Frequency)).
				Msg("calibrated")
		}
		return nil
	},
}

func init() {
	calibrateCmd.Flags().Int("runs", 1, "number of calibrations to run")
	rootCmd.AddCommand(calibrateCmd)
}

func calibrateOnce(ctx context.Context) (uint32, error) {
	m, err := sim.NewMachine(sim.Config{Frequency: cfg.Frequency, Logger: log})
	if err != nil {
		return 0, err
	}
	m.Start(ctx)
	defer m.Stop()

	return m.Boot(nil), nil
}
