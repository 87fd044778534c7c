package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"ticktimer/host/serial"
	"ticktimer/protocol"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Decode timer telemetry from a serial device",
	Long: `Opens the board's serial device and logs every stats and wake ` +
		`frame it streams. Use --file to replay a capture written by ` +
		`"ticktimer sim --telemetry".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		var port serial.Port
		if file != "" {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open capture: %w", err)
			}
			port = fileAsPort{f}
		} else {
			sc := serial.DefaultConfig(cfg.Device)
			sc.Baud = cfg.Baud
			p, err := serial.Open(sc)
			if err != nil {
				return err
			}
			port = p
		}
		defer port.Close()

		// Frames buffered before we attached are stale.
		if err := port.Flush(); err != nil {
			log.Warn().Err(err).Msg("flush failed")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		log.Info().Str("source", sourceName(file)).Msg("monitoring telemetry")
		dropped, err := serial.ReadMessages(ctx, port, logMessage)
		log.Info().Int("resyncs", dropped).Msg("telemetry stream ended")
		return err
	},
}

func init() {
	flags := monitorCmd.Flags()
	flags.String("device", "/dev/ttyACM0", "serial device path")
	flags.Int("baud", serial.DefaultBaud, "baud rate (ignored for USB CDC)")
	flags.String("file", "", "read frames from a capture file instead of a device")
	rootCmd.AddCommand(monitorCmd)
}

func logMessage(msg protocol.Message) error {
	switch msg.ID {
	case protocol.MsgStats:
		s := msg.Stats
		log.Info().
			Uint8("seq", msg.Seq).
			Uint64("ticks", s.Ticks).
			Uint64("loops_per_tick", s.LoopsPerTick).
			Uint64("loops_per_second", s.LoopsPerSecond).
			Uint64("sleepers", s.Sleepers).
			Uint64("wakes", s.Wakes).
			Uint64("dropped", s.Dropped).
			Msg("stats")
	case protocol.MsgWake:
		log.Info().
			Uint8("seq", msg.Seq).
			Uint64("tick", msg.Wake.Tick).
			Uint64("wake_tick", msg.Wake.WakeTick).
			Msg("wake")
	}
	return nil
}

func sourceName(file string) string {
	if file != "" {
		return file
	}
	return cfg.Device
}

// fileAsPort adapts a capture file to serial.Port.
type fileAsPort struct {
	*os.File
}

func (fileAsPort) Flush() error { return nil }
