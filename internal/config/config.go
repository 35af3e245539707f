package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig configures the WebSocket listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RedisConfig configures the stats store connection.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig holds the table timing knobs.
type GameConfig struct {
	TurnTimeout     int `yaml:"turn_timeout"`     // seconds per turn, negative disables timers
	TrickPause      int `yaml:"trick_pause"`      // ms to display a finished trick
	RoundPause      int `yaml:"round_pause"`      // ms to display the round result
	RedealPause     int `yaml:"redeal_pause"`     // ms before redealing after all passed
	DisconnectGrace int `yaml:"disconnect_grace"` // seconds before a lobby seat is dropped
	TableInactivity int `yaml:"table_inactivity"` // minutes before an idle table is reclaimed
	SweepInterval   int `yaml:"sweep_interval"`   // seconds between janitor sweeps
}

// TurnTimeoutDuration returns the per-turn deadline. A non-positive
// duration means turn timers are disabled.
func (c *GameConfig) TurnTimeoutDuration() time.Duration {
	return time.Duration(c.TurnTimeout) * time.Second
}

// TrickPauseDuration returns the trick display pause.
func (c *GameConfig) TrickPauseDuration() time.Duration {
	return time.Duration(c.TrickPause) * time.Millisecond
}

// RoundPauseDuration returns the round result pause.
func (c *GameConfig) RoundPauseDuration() time.Duration {
	return time.Duration(c.RoundPause) * time.Millisecond
}

// RedealPauseDuration returns the pause before a forced redeal.
func (c *GameConfig) RedealPauseDuration() time.Duration {
	return time.Duration(c.RedealPause) * time.Millisecond
}

// DisconnectGraceDuration returns how long a disconnected seat is retained.
func (c *GameConfig) DisconnectGraceDuration() time.Duration {
	return time.Duration(c.DisconnectGrace) * time.Second
}

// TableInactivityDuration returns the idle threshold for table reclamation.
func (c *GameConfig) TableInactivityDuration() time.Duration {
	return time.Duration(c.TableInactivity) * time.Minute
}

// SweepIntervalDuration returns how often the janitor runs.
func (c *GameConfig) SweepIntervalDuration() time.Duration {
	return time.Duration(c.SweepInterval) * time.Second
}

// Load reads a config file, falling back to defaults for missing keys.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 1780
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Game.TurnTimeout == 0 {
		cfg.Game.TurnTimeout = 30
	}
	if cfg.Game.TrickPause == 0 {
		cfg.Game.TrickPause = 2500
	}
	if cfg.Game.RoundPause == 0 {
		cfg.Game.RoundPause = 5500
	}
	if cfg.Game.RedealPause == 0 {
		cfg.Game.RedealPause = 2000
	}
	if cfg.Game.DisconnectGrace == 0 {
		cfg.Game.DisconnectGrace = 60
	}
	if cfg.Game.TableInactivity == 0 {
		cfg.Game.TableInactivity = 5
	}
	if cfg.Game.SweepInterval == 0 {
		cfg.Game.SweepInterval = 60
	}
}
