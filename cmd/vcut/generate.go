package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/arloliu/vcut/source"
	"github.com/arloliu/vcut/types"
)

func newGenerateCmd() *cobra.Command {
	var (
		nodes  int
		degree int
		seed   uint64
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic power-law edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := source.NewPowerLaw(nodes, degree, seed)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return writeEdges(cmd.Context(), w, src)
		},
	}

	cmd.Flags().IntVarP(&nodes, "nodes", "n", 10000, "number of nodes")
	cmd.Flags().IntVarP(&degree, "degree", "m", 4, "edges per new node")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file (- for stdout)")

	return cmd
}

func writeEdges(ctx context.Context, w io.Writer, src types.EdgeSource) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# vcut power-law edge list")

	for {
		e, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return bw.Flush()
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, source.FormatEdge(e)); err != nil {
			return err
		}
	}
}

func newPublishCmd(gf *globalFlags) *cobra.Command {
	var (
		natsURL string
		subject string
	)

	cmd := &cobra.Command{
		Use:   "publish <edge-list>",
		Short: "Publish an edge list on a NATS subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := gf.logger(cmd.ErrOrStderr(), "info")

			src, err := source.Open(args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			var edges []types.Edge
			for {
				e, err := src.Next(cmd.Context())
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return err
				}
				edges = append(edges, e)
			}

			nc, err := nats.Connect(natsURL, nats.Name("vcut-publish"))
			if err != nil {
				return fmt.Errorf("connect to NATS: %w", err)
			}
			defer nc.Close()

			if err := source.PublishEdges(nc, subject, edges); err != nil {
				return err
			}
			log.Info("published edges", "subject", subject, "edges", len(edges))

			return nil
		},
	}

	cmd.Flags().StringVar(&natsURL, "nats-url", nats.DefaultURL, "NATS server URL")
	cmd.Flags().StringVar(&subject, "subject", "graph.edges", "edge subject")

	return cmd
}
