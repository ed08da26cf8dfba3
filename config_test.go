package vcut

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/vcut/internal/logger"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(8)

	require.Equal(t, 8, cfg.Partitions)
	require.Equal(t, 1.0, cfg.Lambda)
	require.Equal(t, 1.0, cfg.Epsilon)
	require.Equal(t, StrategyHDRF, cfg.Strategy)
	require.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers)
	require.Equal(t, 4*cfg.Workers, cfg.QueueSize)
	require.Equal(t, 2*time.Microsecond, cfg.BackoffBase)
	require.Equal(t, 5*time.Millisecond, cfg.BackoffCeiling)
	require.Zero(t, cfg.MaxLockRetries)
	require.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{Partitions: 4}
		SetDefaults(&cfg)

		require.Equal(t, 1.0, cfg.Epsilon)
		require.Equal(t, StrategyHDRF, cfg.Strategy)
		require.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers)
		require.Equal(t, 4*cfg.Workers, cfg.QueueSize)
		require.Equal(t, 5*time.Millisecond, cfg.BackoffCeiling)
		require.NoError(t, cfg.Validate())
	})

	t.Run("keeps lambda zero", func(t *testing.T) {
		cfg := Config{Partitions: 4}
		SetDefaults(&cfg)

		require.Zero(t, cfg.Lambda)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			Partitions:     16,
			Lambda:         2.5,
			Epsilon:        0.1,
			Strategy:       StrategyDBH,
			Workers:        3,
			QueueSize:      7,
			Seed:           99,
			BackoffBase:    time.Microsecond,
			BackoffCeiling: time.Millisecond,
			MaxLockRetries: 10,
			LogLevel:       "debug",
		}
		want := cfg
		SetDefaults(&cfg)

		require.Equal(t, want, cfg)
	})

	t.Run("queue follows workers", func(t *testing.T) {
		cfg := Config{Partitions: 4, Workers: 2}
		SetDefaults(&cfg)

		require.Equal(t, 8, cfg.QueueSize)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "zero partitions", modify: func(c *Config) { c.Partitions = 0 }, errMsg: "partitions"},
		{name: "negative lambda", modify: func(c *Config) { c.Lambda = -0.5 }, errMsg: "lambda"},
		{name: "negative epsilon", modify: func(c *Config) { c.Epsilon = -1 }, errMsg: "epsilon"},
		{name: "negative ceiling", modify: func(c *Config) { c.BackoffCeiling = -time.Millisecond }, errMsg: "ceiling"},
		{name: "base above ceiling", modify: func(c *Config) { c.BackoffBase = time.Second }, errMsg: "BackoffBase"},
		{name: "no workers", modify: func(c *Config) { c.Workers = 0 }, errMsg: "Workers"},
		{name: "negative queue", modify: func(c *Config) { c.QueueSize = -1 }, errMsg: "QueueSize"},
		{name: "negative retries", modify: func(c *Config) { c.MaxLockRetries = -1 }, errMsg: "MaxLockRetries"},
		{name: "unknown strategy", modify: func(c *Config) { c.Strategy = "metis" }, errMsg: "unknown strategy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig(4)
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_ValidateWithWarnings(t *testing.T) {
	cfg := DefaultConfig(4)
	cfg.Lambda = 0
	cfg.BackoffCeiling = 2 * time.Second

	// must not panic; output goes to the test log
	cfg.ValidateWithWarnings(logger.NewTest(t))
}

func TestLoadConfig(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vcut.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
partitions: 32
lambda: 1.5
strategy: hash
backoffCeiling: 250us
maxLockRetries: 8
trackVertexLoads: true
`), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		require.Equal(t, 32, cfg.Partitions)
		require.Equal(t, 1.5, cfg.Lambda)
		require.Equal(t, StrategyHash, cfg.Strategy)
		require.Equal(t, 250*time.Microsecond, cfg.BackoffCeiling)
		require.Equal(t, 8, cfg.MaxLockRetries)
		require.True(t, cfg.TrackVertexLoads)
		require.Equal(t, 1.0, cfg.Epsilon)
		require.Equal(t, 2*time.Microsecond, cfg.BackoffBase)
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseConfig([]byte("partitions: [1, 2"))
		require.Error(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		cfg := DefaultConfig(12)
		cfg.Seed = 7
		cfg.Strategy = StrategyRoundRobin

		data, err := yaml.Marshal(cfg)
		require.NoError(t, err)

		got, err := ParseConfig(data)
		require.NoError(t, err)
		require.Equal(t, cfg, *got)
	})
}
