// Package daemon manages the Kintsugi runtime lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all runtime configuration.
type Config struct {
	Journal   JournalConfig   `toml:"journal"`
	API       APIConfig       `toml:"api"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Logging   LoggingConfig   `toml:"logging"`
}

// JournalConfig controls the engagement engine.
type JournalConfig struct {
	// DayBoundary picks the calendar used for streak day-bucketing:
	// "local" (the machine's time zone) or "utc". The choice materially
	// changes streak outcomes near midnight.
	DayBoundary string `toml:"day_boundary"`

	// NotifyMaxPerDay caps achievement toasts per day.
	NotifyMaxPerDay int    `toml:"notify_max_per_day"`
	NotifyQuietFrom string `toml:"notify_quiet_from"`
	NotifyQuietTo   string `toml:"notify_quiet_to"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// TelemetryConfig controls the Prometheus endpoint.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	homeDir := kintsugiHome()
	return Config{
		Journal: JournalConfig{
			DayBoundary:     "local",
			NotifyMaxPerDay: 3,
			NotifyQuietFrom: "22:00",
			NotifyQuietTo:   "08:00",
		},
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        8460,
			CORSOrigins: []string{"*"},
		},
		Telemetry: TelemetryConfig{
			Prometheus: false,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(homeDir, "kintsugi.log"),
		},
	}
}

// DayLocation resolves the configured day boundary to a time.Location.
func (c Config) DayLocation() *time.Location {
	if c.Journal.DayBoundary == "utc" {
		return time.UTC
	}
	return time.Local
}

// LoadConfig reads config from ~/.kintsugi/config.toml, falling back to
// defaults when the file is absent.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(kintsugiHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to ~/.kintsugi/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(kintsugiHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// kintsugiHome returns the Kintsugi data directory.
func kintsugiHome() string {
	if env := os.Getenv("KINTSUGI_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".kintsugi")
}

// KintsugiHome is exported for use by other packages.
func KintsugiHome() string {
	return kintsugiHome()
}
