package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"ticktimer/core"
	"ticktimer/host/serial"
)

// Environment variables read by LoadConfig.
const (
	EnvFrequency = "TICKTIMER_FREQ"
	EnvDevice    = "TICKTIMER_DEVICE"
	EnvBaud      = "TICKTIMER_BAUD"
	EnvLogLevel  = "TICKTIMER_LOG_LEVEL"
	EnvLogJSON   = "TICKTIMER_LOG_JSON"
)

// Config is the CLI configuration after env files, the environment and
// flags have been applied, in that order.
type Config struct {
	Frequency uint32
	Device    string
	Baud      int
	LogLevel  string
	LogJSON   bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Frequency: core.DefaultFrequency,
		Device:    "/dev/ttyACM0",
		Baud:      serial.DefaultBaud,
		LogLevel:  "info",
	}
}

// LoadConfig loads the dotenv files (".env" when none are given, skipped if
// missing) and reads the TICKTIMER_* variables over the defaults. Variables
// already set in the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}

	c := DefaultConfig()
	if v, ok := os.LookupEnv(EnvFrequency); ok {
		f, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvFrequency, err)
		}
		c.Frequency = uint32(f)
	}
	if v, ok := os.LookupEnv(EnvDevice); ok {
		c.Device = v
	}
	if v, ok := os.LookupEnv(EnvBaud); ok {
		b, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvBaud, err)
		}
		c.Baud = b
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogJSON); ok {
		j, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogJSON, err)
		}
		c.LogJSON = j
	}
	return c, nil
}

// Validate rejects settings the timer core would abort on.
func (c Config) Validate() error {
	if c.Frequency < core.MinFrequency || c.Frequency > core.MaxFrequency {
		return fmt.Errorf("frequency %d Hz outside %d..%d",
			c.Frequency, core.MinFrequency, core.MaxFrequency)
	}
	return nil
}

// Override applies the flags the user set explicitly.
func (c Config) Override(flags *pflag.FlagSet) Config {
	if flags.Changed("freq") {
		c.Frequency, _ = flags.GetUint32("freq")
	}
	if flags.Changed("log-level") {
		c.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-json") {
		c.LogJSON, _ = flags.GetBool("log-json")
	}
	if flags.Changed("device") {
		c.Device, _ = flags.GetString("device")
	}
	if flags.Changed("baud") {
		c.Baud, _ = flags.GetInt("baud")
	}
	return c
}
