// Package vcut provides streaming vertex-cut graph partitioning.
//
// vcut assigns every edge of a graph stream to one of P partitions as it
// arrives. A vertex whose edges end up in several partitions is replicated in
// each of them; the goal is to keep the edge count per partition balanced
// while creating as few replicas as possible. The default strategy is HDRF
// (High-Degree Replicated First), which prefers to replicate high-degree
// vertices since power-law graphs have few of them.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/arloliu/vcut"
//
//	cfg := vcut.DefaultConfig(8)
//	hdrf, err := vcut.NewStrategy(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p, err := vcut.NewPartitioner(&cfg, hdrf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src, _ := source.Open("graph.txt")
//	defer src.Close()
//
//	report, err := p.Run(ctx, src)
//	fmt.Println(report.ReplicationFactor, report.Imbalance)
//
// # Key Features
//
//   - Concurrent: Workers share one partition state guarded by per-vertex locks
//   - Strategies: HDRF, edge hashing, degree-based hashing, round robin
//   - Sources: Edge-list files, gonum graphs, core NATS subjects, JetStream streams
//   - Observability: Structured logging and Prometheus metrics
//
// # Concurrency
//
// Assigning an edge locks its two endpoint records in edge order. The wait
// for the second lock backs off exponentially with jitter; once the delay
// passes Config.BackoffCeiling the first lock is released and the edge is
// retried, so two workers holding (a, b) and (b, a) cannot deadlock.
// Partition load counters are atomics read without locks, so the balance
// term of a score may see slightly stale loads.
//
// # Advanced Usage
//
// Custom strategy with options:
//
//	import (
//	    "github.com/arloliu/vcut"
//	    "github.com/arloliu/vcut/strategy"
//	    "github.com/arloliu/vcut/types"
//	)
//
//	hdrf := strategy.NewHDRF(types.Globals{
//	    Partitions:     16,
//	    Lambda:         1.1,
//	    Epsilon:        1,
//	    BackoffCeiling: 2 * time.Millisecond,
//	}, strategy.WithMaxLockRetries(100))
//
//	p, err := vcut.NewPartitioner(&cfg, hdrf,
//	    vcut.WithErrorHandler(vcut.SkipTransient),
//	    vcut.WithMetrics(vcut.NewPrometheusMetrics(prometheus.DefaultRegisterer)),
//	)
//
// See the examples/ directory for complete working examples.
package vcut
