package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "logistics"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "logistics"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "logistics.db"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Simulation defaults
	if cfg.Simulation.Ticks == 0 {
		cfg.Simulation.Ticks = 100
	}
	if cfg.Simulation.TickRate == 0 {
		cfg.Simulation.TickRate = 10
	}
	if cfg.Simulation.TickInterval == 0 {
		cfg.Simulation.TickInterval = time.Second / time.Duration(cfg.Simulation.TickRate)
	}
	if cfg.Simulation.PullStrategy == "" {
		cfg.Simulation.PullStrategy = "default"
	}
	if cfg.Simulation.SustainHorizon == 0 {
		cfg.Simulation.SustainHorizon = 500
	}

	// Content defaults
	if cfg.Content.Path == "" {
		cfg.Content.Path = "world.yaml"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}
