package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skypoint-project/skypoint-go/pkg/mount"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skypoint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Server.Address)
	assert.Equal(t, "auto", cfg.Server.Device)
	assert.Equal(t, mount.DefaultRetryCount, cfg.Retry.Count)
	assert.Equal(t, mount.DefaultStepSize, cfg.StepSizeDeg)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  address: "192.168.1.40:7624"
  device: "EQMod Mount"
site:
  latitude_deg: 48.14
  longitude_deg: 11.58
  elevation_m: 520
retry:
  count: 5
  delay: 250ms
step_size_deg: 1.0
session_log: /tmp/session.cbor
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.40:7624", cfg.Server.Address)
	assert.Equal(t, "EQMod Mount", cfg.Server.Device)
	assert.Equal(t, mount.RetryPolicy{Count: 5, Delay: 250 * time.Millisecond}, cfg.RetryPolicy())
	assert.Equal(t, 1.0, cfg.StepSizeDeg)
	assert.Equal(t, 48.14, cfg.MountSite().LatitudeDeg)
	// Unset keys keep their defaults.
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := writeConfig(t, "retry:\n  delay: fast\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"step size too large", func(c *Config) { c.StepSizeDeg = 15 }},
		{"step size too small", func(c *Config) { c.StepSizeDeg = 1.0 / 7200.0 }},
		{"zero retry count", func(c *Config) { c.Retry.Count = 0 }},
		{"latitude out of range", func(c *Config) { c.Site.LatitudeDeg = 95 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
