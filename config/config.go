package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DemoPlayer = "player"
	DemoRobot  = "robot"
	DemoAll    = "all"
)

// Config is read from the environment. Empty paths mean the built-in roster
// and demo scripts.
type Config struct {
	RosterPath string `env:"ECB_ROSTER"`
	ScriptPath string `env:"ECB_SCRIPT"`
	Demo       string `env:"ECB_DEMO" envDefault:"all"`
	Verbose    bool   `env:"ECB_VERBOSE" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	switch cfg.Demo {
	case DemoPlayer, DemoRobot, DemoAll:
	default:
		return Config{}, fmt.Errorf("parse env: ECB_DEMO must be %q, %q or %q, got %q", DemoPlayer, DemoRobot, DemoAll, cfg.Demo)
	}
	return cfg, nil
}
