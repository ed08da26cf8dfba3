package vcut

import (
	"fmt"
	"os"
	"runtime"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/vcut/internal/backoff"
	"github.com/arloliu/vcut/types"
)

// Strategy names accepted by Config.Strategy.
const (
	StrategyHDRF       = "hdrf"
	StrategyHash       = "hash"
	StrategyDBH        = "dbh"
	StrategyRoundRobin = "roundrobin"
)

// Strategies lists the accepted strategy names.
var Strategies = []string{StrategyHDRF, StrategyHash, StrategyDBH, StrategyRoundRobin}

// Config is the configuration for the Partitioner.
//
// All duration fields accept standard Go duration strings like "5ms", "2us".
type Config struct {
	// Partitions is the number of target partitions (P). Must be >= 1.
	Partitions int `yaml:"partitions"`

	// Lambda weights the balance term of the HDRF score against the replica
	// terms. 0 ignores balance entirely; larger values trade replication for
	// balance. Must be >= 0.
	Lambda float64 `yaml:"lambda"`

	// Epsilon smooths the balance term denominator. Must be > 0.
	// Default: 1
	Epsilon float64 `yaml:"epsilon"`

	// Strategy selects the partitioning strategy built by NewStrategy.
	// One of "hdrf", "hash", "dbh", "roundrobin".
	// Default: "hdrf"
	Strategy string `yaml:"strategy"`

	// Workers is the number of goroutines assigning edges concurrently.
	// Default: GOMAXPROCS
	Workers int `yaml:"workers"`

	// QueueSize is the capacity of the channel between the edge source and
	// the workers.
	// Default: 4 * Workers
	QueueSize int `yaml:"queueSize"`

	// Seed derives the per-worker random generators used to break score ties.
	// Runs with the same seed, one worker and the same edge order are
	// reproducible.
	Seed uint64 `yaml:"seed"`

	// TrackVertexLoads enables per-partition vertex replica counters.
	TrackVertexLoads bool `yaml:"trackVertexLoads"`

	// BackoffBase is the first polling delay of a contended vertex lock.
	// Default: 2µs
	BackoffBase time.Duration `yaml:"backoffBase"`

	// BackoffCeiling bounds the wait for the second vertex lock of an edge
	// before the assignment restarts.
	// Default: 5ms
	BackoffCeiling time.Duration `yaml:"backoffCeiling"`

	// MaxLockRetries bounds the restarts of one edge; exceeding it fails the
	// edge with ErrLockContention. 0 means unlimited.
	MaxLockRetries int `yaml:"maxLockRetries"`

	// HashSeed seeds the hash and dbh strategies.
	HashSeed uint64 `yaml:"hashSeed"`

	// LogLevel is the level of the default logger built by the CLI
	// ("debug", "info", "warn", "error").
	// Default: "info"
	LogLevel string `yaml:"logLevel"`
}

// DefaultConfig returns a Config with sensible defaults for the given
// partition count.
//
// Parameters:
//   - partitions: Number of target partitions
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig(partitions int) Config {
	g := types.DefaultGlobals(partitions)
	workers := runtime.GOMAXPROCS(0)

	return Config{
		Partitions:     partitions,
		Lambda:         g.Lambda,
		Epsilon:        g.Epsilon,
		Strategy:       StrategyHDRF,
		Workers:        workers,
		QueueSize:      4 * workers,
		BackoffBase:    backoff.DefaultBase,
		BackoffCeiling: g.BackoffCeiling,
		LogLevel:       "info",
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Lambda is left alone since 0 is a meaningful value; Partitions has no
// default and is checked by Validate.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig(cfg.Partitions)

	if cfg.Epsilon == 0 {
		cfg.Epsilon = defaults.Epsilon
	}
	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaults.Workers
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 4 * cfg.Workers
	}
	if cfg.BackoffBase == 0 {
		cfg.BackoffBase = defaults.BackoffBase
	}
	if cfg.BackoffCeiling == 0 {
		cfg.BackoffCeiling = defaults.BackoffCeiling
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
}

// Globals returns the strategy parameters of cfg.
func (cfg *Config) Globals() types.Globals {
	return types.Globals{
		Partitions:     cfg.Partitions,
		Lambda:         cfg.Lambda,
		Epsilon:        cfg.Epsilon,
		BackoffCeiling: cfg.BackoffCeiling,
	}
}

// Validate checks configuration constraints.
//
// Hard Validation Rules:
//   - Partitions >= 1, Lambda >= 0, Epsilon > 0, BackoffCeiling > 0
//   - 0 < BackoffBase <= BackoffCeiling
//   - Workers >= 1, QueueSize >= 0, MaxLockRetries >= 0
//   - Strategy is a known name
//
// Returns:
//   - error: ErrInvalidConfig wrapped with an explanation, nil if valid
func (cfg *Config) Validate() error {
	if err := cfg.Globals().Validate(); err != nil {
		return err
	}

	if cfg.BackoffBase <= 0 || cfg.BackoffBase > cfg.BackoffCeiling {
		return fmt.Errorf("%w: BackoffBase (%v) must be > 0 and <= BackoffCeiling (%v)",
			ErrInvalidConfig, cfg.BackoffBase, cfg.BackoffCeiling)
	}

	if cfg.Workers < 1 {
		return fmt.Errorf("%w: Workers must be >= 1, got %d", ErrInvalidConfig, cfg.Workers)
	}

	if cfg.QueueSize < 0 {
		return fmt.Errorf("%w: QueueSize must be >= 0, got %d", ErrInvalidConfig, cfg.QueueSize)
	}

	if cfg.MaxLockRetries < 0 {
		return fmt.Errorf("%w: MaxLockRetries must be >= 0, got %d", ErrInvalidConfig, cfg.MaxLockRetries)
	}

	if !slices.Contains(Strategies, cfg.Strategy) {
		return fmt.Errorf("%w: unknown strategy %q (want one of %v)", ErrInvalidConfig, cfg.Strategy, Strategies)
	}

	return nil
}

// ValidateWithWarnings logs warnings for valid but questionable values.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.Strategy == StrategyHDRF && cfg.Lambda == 0 {
		logger.Warn("lambda is 0, HDRF ignores partition balance",
			"partitions", cfg.Partitions)
	}

	if cfg.Workers > 1 && cfg.Seed != 0 {
		logger.Warn("seeded run with several workers is not reproducible",
			"workers", cfg.Workers, "seed", cfg.Seed)
	}

	if cfg.BackoffCeiling > time.Second {
		logger.Warn("backoff ceiling is very long, contended edges may stall",
			"backoffCeiling", cfg.BackoffCeiling, "recommended", "a few milliseconds")
	}
}

// LoadConfig reads a YAML configuration file.
//
// Fields missing from the file keep the values of DefaultConfig, so a file
// that only sets "partitions" is a complete configuration.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *Config: Loaded configuration (not validated)
//   - error: Read or decode error
//
// Example:
//
//	cfg, err := vcut.LoadConfig("vcut.yaml")
//	if err != nil { /* handle */ }
//	if err := cfg.Validate(); err != nil { /* handle */ }
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes a YAML configuration over DefaultConfig.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Config: Decoded configuration (not validated)
//   - error: Decode error
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig(0)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	SetDefaults(&cfg)

	return &cfg, nil
}
