package config

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigLogLevel       = "log-level"
	ConfigConfigFile     = "config-file"
	ConfigNatsURL        = "nats-url"
	ConfigBotSubject     = "bot-subject"
	ConfigMaxDepth       = "max-depth"
	ConfigOpeningPieces  = "opening-pieces"
	ConfigOpeningMarkMs  = "opening-mark-ms"
	ConfigMidgameBaseMs  = "midgame-base-ms"
	ConfigSafetyMarginMs = "safety-margin-ms"
	ConfigParityWeight   = "parity-weight"
	ConfigCornerBase     = "corner-base"
	ConfigCornerStep     = "corner-step"
	ConfigCornerPeriod   = "corner-period"
)

type Config struct {
	*viper.Viper
}

// AddFlags registers every configuration key as a flag on fs, so that
// binaries can mix in their own flags.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(ConfigLogLevel, "info", "log level: debug, info or disabled")
	fs.String(ConfigConfigFile, "", "optional config file (yaml, json or toml)")
	fs.String(ConfigNatsURL, "nats://localhost:4222", "NATS server to connect to")
	fs.String(ConfigBotSubject, "reversi.bot", "NATS subject the bot listens on")
	fs.Int(ConfigMaxDepth, 24, "deepest iteration of the search")
	fs.Int(ConfigOpeningPieces, 20, "below this many pieces, spend less than a second per move")
	fs.Int(ConfigOpeningMarkMs, 950, "try to finish each move by this many ms into a wall-clock second")
	fs.Int(ConfigMidgameBaseMs, 5500, "base time per move once out of the opening")
	fs.Int(ConfigSafetyMarginMs, 50, "time held back from the remaining budget")
	fs.Int(ConfigParityWeight, 4, "weight of the piece-share term in the evaluation")
	fs.Int(ConfigCornerBase, 4, "value of a corner at the start of the game")
	fs.Int(ConfigCornerStep, 4, "amount the corner value grows by")
	fs.Int(ConfigCornerPeriod, 8, "number of half-moves between corner value increases")
}

// Load parses args into a fresh set of configuration flags.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("reversi", pflag.ContinueOnError)
	return c.LoadFlags(fs, args)
}

// LoadFlags adds the configuration flags to fs, parses args, and layers
// environment variables (REVERSI_MAX_DEPTH etc.) and an optional config
// file under any flags that were set explicitly.
func (c *Config) LoadFlags(fs *pflag.FlagSet, args []string) error {
	AddFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.Viper = viper.New()
	c.SetEnvPrefix("reversi")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	if cf := c.GetString(ConfigConfigFile); cf != "" {
		c.SetConfigFile(cf)
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

func DefaultConfig() Config {
	c := Config{}
	if err := c.Load(nil); err != nil {
		panic(err)
	}
	return c
}

// ApplyLogLevel sets the global log level from log-level.
func (c *Config) ApplyLogLevel() {
	switch strings.ToLower(c.GetString(ConfigLogLevel)) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
