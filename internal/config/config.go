// Package config loads the tuning-constant surface from environment
// variables. Everything here is fixed at startup; nothing is runtime-mutable.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"dicetable/internal/dice"
)

type Config struct {
	ListenAddr  string `env:"DICETABLE_ADDR" envDefault:":8090"`
	HistoryPath string `env:"DICETABLE_HISTORY" envDefault:"rolls.db"`

	// Seed drives the per-throw spin randomness. 0 picks a time-based seed;
	// tests and replays set it explicitly.
	Seed int64 `env:"DICETABLE_SEED" envDefault:"0"`

	ChargeRate float32 `env:"DICETABLE_CHARGE_RATE" envDefault:"2.0"`

	MinForce float32 `env:"DICETABLE_MIN_FORCE" envDefault:"2.0"`
	MaxForce float32 `env:"DICETABLE_MAX_FORCE" envDefault:"12.0"`
	MinSpin  float32 `env:"DICETABLE_MIN_SPIN" envDefault:"30"`
	MaxSpin  float32 `env:"DICETABLE_MAX_SPIN" envDefault:"240"`

	LinearRest   float32 `env:"DICETABLE_LINEAR_REST" envDefault:"0.25"`
	LinearWake   float32 `env:"DICETABLE_LINEAR_WAKE" envDefault:"0.6"`
	AngularRest  float32 `env:"DICETABLE_ANGULAR_REST" envDefault:"20"`
	AngularWake  float32 `env:"DICETABLE_ANGULAR_WAKE" envDefault:"60"`
	SettleDwell  float32 `env:"DICETABLE_SETTLE_DWELL" envDefault:"0.3"`
	StuckTimeout float32 `env:"DICETABLE_STUCK_TIMEOUT" envDefault:"8.0"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Table overlays the env-driven tuning onto the stock table config.
func (c Config) Table() dice.TableConfig {
	tc := dice.DefaultConfig()
	tc.Seed = c.Seed
	tc.ChargeRate = c.ChargeRate
	tc.Impulse.MinForce = c.MinForce
	tc.Impulse.MaxForce = c.MaxForce
	tc.Impulse.MinSpin = c.MinSpin
	tc.Impulse.MaxSpin = c.MaxSpin
	tc.Settle.LinearRest = c.LinearRest
	tc.Settle.LinearWake = c.LinearWake
	tc.Settle.AngularRest = c.AngularRest
	tc.Settle.AngularWake = c.AngularWake
	tc.Settle.Dwell = c.SettleDwell
	tc.Settle.StuckTimeout = c.StuckTimeout
	return tc
}
