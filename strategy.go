package vcut

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/vcut/internal/metrics"
	"github.com/arloliu/vcut/strategy"
)

// NewStrategy builds the strategy named by cfg.Strategy.
//
// Parameters:
//   - cfg: Configuration (defaults are applied, then validated)
//   - opts: Optional configuration (same options as NewPartitioner; logger and
//     metrics are handed to the strategy)
//
// Returns:
//   - PartitionStrategy: HDRF, Hash, DBH or RoundRobin
//   - error: ErrInvalidConfig for an invalid configuration
//
// Example:
//
//	cfg := vcut.DefaultConfig(8)
//	s, err := vcut.NewStrategy(&cfg)
//	p, err := vcut.NewPartitioner(&cfg, s)
func NewStrategy(cfg *Config, opts ...Option) (PartitionStrategy, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	SetDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &partitionerOptions{}
	for _, opt := range opts {
		opt(o)
	}

	sopts := []strategy.Option{
		strategy.WithBackoffBase(cfg.BackoffBase),
		strategy.WithMaxLockRetries(cfg.MaxLockRetries),
		strategy.WithHashSeed(cfg.HashSeed),
	}
	if o.logger != nil {
		sopts = append(sopts, strategy.WithLogger(o.logger))
	}
	if o.metrics != nil {
		sopts = append(sopts, strategy.WithMetrics(o.metrics))
	}

	g := cfg.Globals()
	switch cfg.Strategy {
	case StrategyHDRF:
		return strategy.NewHDRF(g, sopts...), nil
	case StrategyHash:
		return strategy.NewHash(g, sopts...), nil
	case StrategyDBH:
		return strategy.NewDBH(g, sopts...), nil
	case StrategyRoundRobin:
		return strategy.NewRoundRobin(g, sopts...), nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, cfg.Strategy)
	}
}

// NewPrometheusMetrics returns a MetricsCollector exporting to reg under the
// "vcut" namespace.
//
// Metrics are registered on first use. Registering two used collectors on
// one registry panics, as prometheus.MustRegister does.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsCollector {
	return metrics.NewPrometheus(reg, "")
}
