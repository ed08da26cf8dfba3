package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/vcut"
	"github.com/arloliu/vcut/internal/logging"
)

type globalFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "vcut",
		Short: "Streaming vertex-cut graph partitioning",
		Long: `vcut assigns the edges of a graph stream to partitions, replicating
vertices whose edges span several partitions. The default HDRF strategy
replicates high-degree vertices first to keep the replication factor low.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&gf.configPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&gf.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newPartitionCmd(gf),
		newGenerateCmd(),
		newPublishCmd(gf),
	)

	return cmd
}

// loadConfig reads the configuration file if one was given.
func (gf *globalFlags) loadConfig(partitions int) (*vcut.Config, error) {
	if gf.configPath == "" {
		cfg := vcut.DefaultConfig(partitions)

		return &cfg, nil
	}

	return vcut.LoadConfig(gf.configPath)
}

// logger builds the stderr logger; the flag wins over the config level.
func (gf *globalFlags) logger(w io.Writer, cfgLevel string) *logging.SlogLogger {
	level := cfgLevel
	if gf.logLevel != "" {
		level = gf.logLevel
	}

	return logging.NewText(w, level)
}
