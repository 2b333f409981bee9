package app

import (
	"flag"
	"fmt"
	"time"

	"pingpong/internal/input"

	"github.com/caarlos0/env/v11"
)

// Config represents the command-line and environment parameters for the
// application.
type Config struct {
	Player1Name string        `env:"PINGPONG_PLAYER1"`
	Player2Name string        `env:"PINGPONG_PLAYER2"`
	Store       string        `env:"PINGPONG_STORE"`
	DBPath      string        `env:"PINGPONG_DB"`
	Scale       int           `env:"PINGPONG_SCALE"`
	TPS         int           `env:"PINGPONG_TPS"`
	LongPress   time.Duration `env:"PINGPONG_LONG_PRESS"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Player1Name: "Joel",
		Player2Name: "Luis",
		Store:       "sqlite",
		DBPath:      "pingpong.db",
		Scale:       3,
		TPS:         60,
		LongPress:   input.LongPressThreshold,
	}
}

// LoadEnv overrides defaults with any PINGPONG_* variables that are set.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Player1Name, "p1", c.Player1Name, "name shown for the top player")
	fs.StringVar(&c.Player2Name, "p2", c.Player2Name, "name shown for the bottom player")
	fs.StringVar(&c.Store, "store", c.Store, "storage backend (sqlite or memory)")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "path of the sqlite score file")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.DurationVar(&c.LongPress, "long-press", c.LongPress, "hold time that turns select into reset")
}

// StoreConfig returns the settings handed to the storage backend factory.
func (c *Config) StoreConfig() map[string]string {
	return map[string]string{"path": c.DBPath}
}
