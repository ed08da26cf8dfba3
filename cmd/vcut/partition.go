package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/vcut"
	"github.com/arloliu/vcut/source"
	"github.com/arloliu/vcut/types"
)

type partitionFlags struct {
	partitions       int
	lambda           float64
	epsilon          float64
	strategy         string
	workers          int
	seed             uint64
	maxLockRetries   int
	trackVertexLoads bool
	skipTransient    bool

	natsURL string
	subject string
	stream  string

	generateNodes  int
	generateDegree int

	format      string
	metricsAddr string
}

func newPartitionCmd(gf *globalFlags) *cobra.Command {
	pf := &partitionFlags{}

	cmd := &cobra.Command{
		Use:   "partition [edge-list]",
		Short: "Partition an edge list, a NATS subject or a generated graph",
		Long: `Partition reads edges from an edge-list file (one "u v" pair per line),
from a NATS subject (--subject), from a JetStream stream (--stream) or from
a generated power-law graph (--generate-nodes) and prints a report.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPartition(cmd, gf, pf, args)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&pf.partitions, "partitions", "p", 8, "number of partitions")
	f.Float64Var(&pf.lambda, "lambda", 1, "HDRF balance weight")
	f.Float64Var(&pf.epsilon, "epsilon", 1, "HDRF balance smoothing")
	f.StringVarP(&pf.strategy, "strategy", "s", vcut.StrategyHDRF, fmt.Sprintf("strategy %v", vcut.Strategies))
	f.IntVarP(&pf.workers, "workers", "w", 0, "assignment workers (default GOMAXPROCS)")
	f.Uint64Var(&pf.seed, "seed", 0, "tie-breaking seed")
	f.IntVar(&pf.maxLockRetries, "max-lock-retries", 0, "restarts per contended edge (0 = unlimited)")
	f.BoolVar(&pf.trackVertexLoads, "track-vertex-loads", false, "maintain per-partition replica counters")
	f.BoolVar(&pf.skipTransient, "skip-transient", false, "skip contended or malformed edges instead of aborting")
	f.StringVar(&pf.natsURL, "nats-url", nats.DefaultURL, "NATS server URL")
	f.StringVar(&pf.subject, "subject", "", "read edges from this NATS subject")
	f.StringVar(&pf.stream, "stream", "", "read --subject from this JetStream stream instead of core NATS")
	f.IntVar(&pf.generateNodes, "generate-nodes", 0, "partition a generated power-law graph with this many nodes")
	f.IntVar(&pf.generateDegree, "generate-degree", 4, "edges per node of the generated graph")
	f.StringVarP(&pf.format, "format", "o", "text", "report format (text, yaml, json)")
	f.StringVar(&pf.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")

	return cmd
}

func runPartition(cmd *cobra.Command, gf *globalFlags, pf *partitionFlags, args []string) error {
	ctx := cmd.Context()

	cfg, err := gf.loadConfig(pf.partitions)
	if err != nil {
		return err
	}
	pf.apply(cmd, cfg)
	vcut.SetDefaults(cfg)

	log := gf.logger(cmd.ErrOrStderr(), cfg.LogLevel)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := vcut.NewPrometheusMetrics(reg)

	if pf.metricsAddr != "" {
		srv := serveMetrics(pf.metricsAddr, reg, log)
		defer shutdown(srv)
	}

	opts := []vcut.Option{vcut.WithLogger(log), vcut.WithMetrics(collector)}
	if pf.skipTransient {
		opts = append(opts, vcut.WithErrorHandler(vcut.SkipTransient))
	}

	s, err := vcut.NewStrategy(cfg, opts...)
	if err != nil {
		return err
	}
	p, err := vcut.NewPartitioner(cfg, s, opts...)
	if err != nil {
		return err
	}

	src, closeSrc, err := pf.openSource(ctx, args)
	if err != nil {
		return err
	}
	defer closeSrc()

	report, runErr := p.Run(ctx, src)
	if report != nil {
		if err := writeReport(cmd.OutOrStdout(), report, pf.format); err != nil {
			return err
		}
	}

	return runErr
}

// apply copies the flags the user set over the loaded configuration.
func (pf *partitionFlags) apply(cmd *cobra.Command, cfg *vcut.Config) {
	f := cmd.Flags()
	if f.Changed("partitions") || cfg.Partitions == 0 {
		cfg.Partitions = pf.partitions
	}
	if f.Changed("lambda") {
		cfg.Lambda = pf.lambda
	}
	if f.Changed("epsilon") {
		cfg.Epsilon = pf.epsilon
	}
	if f.Changed("strategy") {
		cfg.Strategy = pf.strategy
	}
	if f.Changed("workers") {
		cfg.Workers = pf.workers
	}
	if f.Changed("seed") {
		cfg.Seed = pf.seed
	}
	if f.Changed("max-lock-retries") {
		cfg.MaxLockRetries = pf.maxLockRetries
	}
	if f.Changed("track-vertex-loads") {
		cfg.TrackVertexLoads = pf.trackVertexLoads
	}
}

// openSource picks the edge source from the arguments and flags.
func (pf *partitionFlags) openSource(ctx context.Context, args []string) (types.EdgeSource, func(), error) {
	noop := func() {}

	switch {
	case len(args) == 1:
		src, err := source.Open(args[0])
		if err != nil {
			return nil, noop, err
		}

		return src, func() { _ = src.Close() }, nil

	case pf.generateNodes > 0:
		src, err := source.NewPowerLaw(pf.generateNodes, pf.generateDegree, pf.seed)

		return src, noop, err

	case pf.subject != "":
		nc, err := nats.Connect(pf.natsURL, nats.Name("vcut-partition"))
		if err != nil {
			return nil, noop, fmt.Errorf("connect to NATS: %w", err)
		}

		if pf.stream != "" {
			js, err := jetstream.New(nc)
			if err != nil {
				nc.Close()
				return nil, noop, fmt.Errorf("jetstream: %w", err)
			}
			src, err := source.NewStream(ctx, js, pf.stream, pf.subject)
			if err != nil {
				nc.Close()
				return nil, noop, err
			}

			return src, func() { _ = src.Close(); nc.Close() }, nil
		}

		src, err := source.NewNATS(nc, pf.subject)
		if err != nil {
			nc.Close()
			return nil, noop, err
		}

		return src, func() { _ = src.Close(); nc.Close() }, nil

	default:
		return nil, noop, errors.New("no edge source: pass an edge-list file, --subject or --generate-nodes")
	}
}

func writeReport(w io.Writer, report *vcut.Report, format string) error {
	switch format {
	case "text", "":
		return report.WriteText(w)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()

		return enc.Encode(report)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(report)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func serveMetrics(addr string, reg *prometheus.Registry, log vcut.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	log.Info("serving metrics", "addr", addr)

	return srv
}

func shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
}
