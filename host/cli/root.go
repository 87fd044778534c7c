// Package cli provides the ticktimer command-line interface.
package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"ticktimer/core"
)

var (
	cfg Config
	log zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ticktimer",
	Short: "Run and observe the periodic-timer core.",
	Long: `ticktimer runs the periodic-timer core on a simulated single-core ` +
		`machine, calibrates its busy-wait loop, and decodes telemetry ` +
		`frames streamed by boards over a serial link.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFiles, _ := cmd.Flags().GetStringSlice("env-file")
		loaded, err := LoadConfig(envFiles...)
		if err != nil {
			return err
		}
		cfg = loaded.Override(cmd.Flags())
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err = newLogger(cfg.LogLevel, cfg.LogJSON)
		if err != nil {
			return err
		}
		core.SetDebugWriter(func(s string) { log.Info().Msg(s) })
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringSlice("env-file", nil, "dotenv files to load (default .env if present)")
	flags.Uint32("freq", core.DefaultFrequency, "timer interrupt frequency in Hz")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("log-json", false, "log JSON instead of console output")
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func newLogger(level string, json bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, err
	}

	if json {
		return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger(), nil
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
