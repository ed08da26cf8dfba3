package vcut

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/vcut/internal/hooks"
	"github.com/arloliu/vcut/internal/logger"
	"github.com/arloliu/vcut/internal/metrics"
	"github.com/arloliu/vcut/state"
	"github.com/arloliu/vcut/types"
)

// Partitioner streams edges from a source to a pool of workers that assign
// them with a shared strategy and a shared partition state.
//
// Each worker owns a random generator seeded once from the worker index and
// Config.Seed; the partition state is the only data the workers share.
//
// Thread Safety:
//   - Run may not be called concurrently (ErrAlreadyRunning)
//   - State, Snapshot and Report are safe to call during a run and return
//     possibly stale counters
//
// Lifecycle:
//   - Create with NewPartitioner()
//   - Call Run() once per edge stream; the state accumulates across runs
type Partitioner struct {
	cfg      Config
	strategy PartitionStrategy

	// Optional dependencies
	metrics      MetricsCollector
	logger       Logger
	errorHandler ErrorHandler
	hooks        Hooks

	// Partition state; shared is the view handed to the strategy
	base   *state.State
	shared types.PartitionState
	snap   state.Snapshotter

	running atomic.Bool
	skipped atomic.Int64
}

// NewPartitioner creates a new Partitioner.
//
// Parameters:
//   - cfg: Configuration (defaults are applied in place, then validated)
//   - strategy: Partitioning strategy (see NewStrategy)
//   - opts: Optional configuration (logger, metrics, error handler, hooks)
//
// Returns:
//   - *Partitioner: Initialized partitioner with an empty partition state
//   - error: ErrInvalidConfig or ErrStrategyRequired
//
// Example:
//
//	cfg := vcut.DefaultConfig(8)
//	hdrf, _ := vcut.NewStrategy(&cfg)
//	p, err := vcut.NewPartitioner(&cfg, hdrf, vcut.WithErrorHandler(vcut.SkipTransient))
//	report, err := p.Run(ctx, source.NewStatic(edges))
func NewPartitioner(cfg *Config, strategy PartitionStrategy, opts ...Option) (*Partitioner, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if strategy == nil {
		return nil, ErrStrategyRequired
	}

	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	options := &partitionerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	cfg.ValidateWithWarnings(loggerInstance)

	handler := options.errorHandler
	if handler == nil {
		handler = AbortOnError
	}

	p := &Partitioner{
		cfg:          *cfg,
		strategy:     strategy,
		metrics:      metricsCollector,
		logger:       loggerInstance,
		errorHandler: handler,
		hooks:        hooks.Fill(options.hooks),
	}

	if cfg.TrackVertexLoads {
		c := state.NewCoordinated(cfg.Partitions)
		p.base, p.shared, p.snap = c.State, c, c
	} else {
		s := state.New(cfg.Partitions)
		p.base, p.shared, p.snap = s, s, s
	}

	return p, nil
}

// Run reads src until io.EOF and assigns every edge.
//
// The source is read by a single feeder goroutine; Config.Workers workers
// assign the edges concurrently, so edges are not assigned in source order
// when Workers > 1. A failed edge goes to the ErrorHandler. Run returns when
// the source is exhausted, the context ends, the source fails or the
// handler aborts.
//
// Parameters:
//   - ctx: Context for cancellation
//   - src: Edge source
//
// Returns:
//   - *Report: Report of the cumulative state (also returned with an error,
//     describing the edges assigned before the run stopped)
//   - error: ErrSourceRequired, ErrAlreadyRunning, a source or context error,
//     or ErrAssignmentFailed wrapping the handler's error
func (p *Partitioner) Run(ctx context.Context, src EdgeSource) (*Report, error) {
	if src == nil {
		return nil, ErrSourceRequired
	}
	if !p.running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRunning
	}
	defer p.running.Store(false)

	start := time.Now()
	before := p.snap.Snapshot().Edges
	skippedBefore := p.skipped.Load()
	p.logger.Info("partitioning run started",
		"strategy", p.cfg.Strategy, "partitions", p.cfg.Partitions, "workers", p.cfg.Workers)
	if herr := p.hooks.OnRunStarted(ctx); herr != nil {
		p.logger.Warn("run started hook failed", "error", herr)
	}

	g, gctx := errgroup.WithContext(ctx)
	edges := make(chan Edge, p.cfg.QueueSize)

	g.Go(func() error {
		defer close(edges)

		return p.feed(gctx, src, edges)
	})

	p.metrics.RecordActiveWorkers(p.cfg.Workers)
	for w := range p.cfg.Workers {
		rng := workerRNG(w, p.cfg.Seed)
		g.Go(func() error {
			return p.work(gctx, edges, rng)
		})
	}

	err := g.Wait()
	p.metrics.RecordActiveWorkers(0)

	report := p.Report()
	report.Duration = time.Since(start)

	summary := RunSummary{
		Edges:    report.Edges - before,
		Skipped:  report.Skipped - skippedBefore,
		Duration: report.Duration,
		Err:      err,
	}
	if herr := p.hooks.OnRunCompleted(ctx, summary); herr != nil {
		p.logger.Warn("run completed hook failed", "error", herr)
	}

	if err != nil {
		p.logger.Error("partitioning run stopped", "error", err,
			"edges", summary.Edges, "skipped", summary.Skipped)

		return report, err
	}

	p.logger.Info("partitioning run completed",
		"edges", summary.Edges,
		"skipped", summary.Skipped,
		"replicationFactor", report.ReplicationFactor,
		"imbalance", report.Imbalance,
		"duration", report.Duration)

	return report, nil
}

// feed copies edges from src to out until io.EOF.
func (p *Partitioner) feed(ctx context.Context, src EdgeSource, out chan<- Edge) error {
	for {
		e, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if errors.Is(err, ErrMalformedEdge) {
				if herr := p.handle(ctx, Edge{}, err); herr != nil {
					return herr
				}

				continue
			}

			return fmt.Errorf("read edge source: %w", err)
		}

		select {
		case out <- e:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// work assigns edges from in until it is closed.
func (p *Partitioner) work(ctx context.Context, in <-chan Edge, rng *rand.Rand) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-in:
			if !ok {
				return nil
			}
			if err := p.assign(ctx, e, rng); err != nil {
				return err
			}
		}
	}
}

func (p *Partitioner) assign(ctx context.Context, e Edge, rng *rand.Rand) error {
	start := time.Now()
	err := p.strategy.Assign(ctx, e, p.shared, rng)
	p.metrics.RecordAssignDuration(time.Since(start).Seconds())
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	return p.handle(ctx, e, err)
}

// handle passes a failed edge to the error handler.
func (p *Partitioner) handle(ctx context.Context, e Edge, err error) error {
	p.metrics.RecordAssignError(errorKind(err))
	if herr := p.hooks.OnEdgeFailed(ctx, e, err); herr != nil {
		p.logger.Warn("edge failed hook failed", "edge", e, "error", herr)
	}

	if herr := p.errorHandler(ctx, e, err); herr != nil {
		return fmt.Errorf("%w: edge %s: %w", ErrAssignmentFailed, e, herr)
	}

	p.skipped.Add(1)
	p.metrics.RecordEdgeSkipped()
	p.logger.Warn("edge skipped", "edge", e, "error", err)

	return nil
}

// State returns the base partition state (records and edge loads).
func (p *Partitioner) State() *state.State {
	return p.base
}

// Snapshot returns the current counters, including vertex loads when
// Config.TrackVertexLoads is set.
func (p *Partitioner) Snapshot() state.Snapshot {
	return p.snap.Snapshot()
}

// Report summarizes the current partition state.
func (p *Partitioner) Report() *Report {
	snap := p.snap.Snapshot()
	if snap.VertexLoads == nil {
		snap.VertexLoads = replicaLoads(p.base)
	}

	r := NewReport(snap)
	r.Strategy = p.cfg.Strategy
	r.Skipped = p.skipped.Load()

	return r
}

// workerRNG returns the tie-breaking generator of worker w.
func workerRNG(w int, seed uint64) *rand.Rand {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(w))

	return rand.New(rand.NewPCG(xxh3.HashSeed(buf[:], seed), seed^uint64(w)))
}

// replicaLoads counts replicas per partition by walking the records.
func replicaLoads(s *state.State) []int64 {
	loads := make([]int64, s.NumPartitions())
	s.Range(func(r *state.Record) bool {
		for _, m := range r.Partitions() {
			loads[m]++
		}

		return true
	})

	return loads
}

// errorKind labels err for the assign error metric.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrLockContention):
		return "lock_contention"
	case errors.Is(err, ErrInvalidScore):
		return "invalid_score"
	case errors.Is(err, ErrNoCandidates):
		return "no_candidates"
	case errors.Is(err, ErrPartitionOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrMalformedEdge):
		return "malformed_edge"
	case errors.Is(err, ErrInvalidConfig):
		return "invalid_config"
	default:
		return "other"
	}
}
