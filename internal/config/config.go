// Package config loads the SkyPoint YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/skypoint-project/skypoint-go/pkg/mount"
)

// Duration wraps time.Duration for YAML values like "500ms" or "2s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// ServerConfig locates the property server and mount device.
type ServerConfig struct {
	// Address is "host:port", or "auto" for mDNS discovery.
	Address string `yaml:"address"`

	// Device is the mount device name, or "auto".
	Device string `yaml:"device"`
}

// SiteConfig is the observing location.
type SiteConfig struct {
	LatitudeDeg  float64 `yaml:"latitude_deg"`
	LongitudeDeg float64 `yaml:"longitude_deg"`
	ElevationM   float64 `yaml:"elevation_m"`
}

// RetryConfig is the device operation retry policy.
type RetryConfig struct {
	// Count is the total number of attempts.
	Count int `yaml:"count"`

	// Delay is the pause between attempts.
	Delay Duration `yaml:"delay"`
}

// Config is the full SkyPoint configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Site   SiteConfig   `yaml:"site"`
	Retry  RetryConfig  `yaml:"retry"`

	// StepSizeDeg is the initial manual-nudge step size in degrees.
	StepSizeDeg float64 `yaml:"step_size_deg"`

	// SessionLog is the CBOR session capture file. Empty disables it.
	SessionLog string `yaml:"session_log"`

	// LogLevel is the slog level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address: "auto",
			Device:  "auto",
		},
		Retry: RetryConfig{
			Count: mount.DefaultRetryCount,
			Delay: Duration(mount.DefaultRetryDelay),
		},
		StepSizeDeg: mount.DefaultStepSize,
		LogLevel:    "info",
	}
}

// Load reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.StepSizeDeg < mount.MinStepSize || c.StepSizeDeg > mount.MaxStepSize {
		return fmt.Errorf("step_size_deg %v out of range [%v, %v]",
			c.StepSizeDeg, mount.MinStepSize, mount.MaxStepSize)
	}
	if c.Retry.Count < 1 {
		return fmt.Errorf("retry count must be at least 1, got %d", c.Retry.Count)
	}
	if c.Site.LatitudeDeg < -90 || c.Site.LatitudeDeg > 90 {
		return fmt.Errorf("latitude_deg %v out of range [-90, 90]", c.Site.LatitudeDeg)
	}
	if c.Site.LongitudeDeg < -180 || c.Site.LongitudeDeg > 360 {
		return fmt.Errorf("longitude_deg %v out of range [-180, 360]", c.Site.LongitudeDeg)
	}
	return nil
}

// RetryPolicy converts the retry section into the controller's policy.
func (c *Config) RetryPolicy() mount.RetryPolicy {
	return mount.RetryPolicy{
		Count: c.Retry.Count,
		Delay: time.Duration(c.Retry.Delay),
	}
}

// MountSite converts the site section into the adapter's site value.
func (c *Config) MountSite() mount.Site {
	return mount.Site{
		LatitudeDeg:  c.Site.LatitudeDeg,
		LongitudeDeg: c.Site.LongitudeDeg,
		ElevationM:   c.Site.ElevationM,
	}
}
