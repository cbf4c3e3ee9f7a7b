package config

import "time"

// SimulationConfig holds simulation engine configuration
type SimulationConfig struct {
	// Number of ticks to run in batch mode
	Ticks int `mapstructure:"ticks" validate:"min=0"`

	// Ticks per second in real-time mode
	TickRate int `mapstructure:"tick_rate" validate:"min=1"`

	// Base tick interval for real-time pacing (derived from tick_rate if zero)
	TickInterval time.Duration `mapstructure:"tick_interval"`

	// Reserve matched push/pull amounts between assignments within a tick.
	// Off by default: the historical matcher lets two transporters commit
	// to the same scarce push in one tick.
	ReserveAssigned bool `mapstructure:"reserve_assigned"`

	// Default pull strategy for loaded facilities: "default" or "sustained"
	PullStrategy string `mapstructure:"pull_strategy" validate:"required,oneof=default sustained"`

	// Planning horizon in ticks for the sustained strategy
	SustainHorizon int `mapstructure:"sustain_horizon" validate:"min=1"`
}

// ContentConfig points at the static game-content catalog
type ContentConfig struct {
	// Path to the YAML world definition (resources, recipes, facilities,
	// transporters)
	Path string `mapstructure:"path"`
}
