package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, 10000.0, cfg.Session.Balance)
	assert.Equal(t, 1.0, cfg.Session.RiskPercent)
	assert.Equal(t, "EURUSD", cfg.Session.Pair)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:   "zero risk allowed",
			mutate: func(c *Config) { c.Session.RiskPercent = 0 },
		},
		{
			name:    "negative balance",
			mutate:  func(c *Config) { c.Session.Balance = -1000 },
			wantErr: true,
			errMsg:  "session.balance must not be negative",
		},
		{
			name:    "risk percent too high",
			mutate:  func(c *Config) { c.Session.RiskPercent = 150 },
			wantErr: true,
			errMsg:  "session.risk_percent must be between 0 and 100",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: true,
			errMsg:  "log.level",
		},
		{
			name:    "negative backups",
			mutate:  func(c *Config) { c.Log.MaxBackups = -1 },
			wantErr: true,
			errMsg:  "log rotation limits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
		{"yml format", ".yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Session.Pair = "XAUUSD"
			cfg.Session.Balance = 5000
			path := filepath.Join(tmpDir, "test"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  balance: 2500\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, cfg.Session.Balance)
	assert.Equal(t, 1.0, cfg.Session.RiskPercent)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadInvalid(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  risk_percent: 250\n"), 0644))
	_, err = LoadFromFile(path)
	assert.ErrorContains(t, err, "invalid config")
}
