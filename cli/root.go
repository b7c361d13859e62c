// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cli

import (
	"chartcore/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// options are shared by all commands.
type options struct {
	configPath string
	debug      bool
	logger     *zap.Logger
	config     *config.FileConfig
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "time"
	return cfg.Build()
}

func (o *options) init() error {
	if o.logger == nil {
		logger, err := newLogger(o.debug)
		if err != nil {
			return err
		}
		o.logger = logger
	}
	if o.configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		o.configPath = p
	}
	o.config = config.NewFileConfig(o.configPath, o.logger)
	return nil
}

func newRootCommand(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Compute chart frames, axis ticks and chart configuration",
		Long: `chartcore computes what an OHLC or time series chart draws: downsampled series,
pixel geometry of lines, candles and bars, and axis ticks with labels.

Data is synthetic, so the pipeline can be inspected without a data source.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = o.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&o.configPath, "config", "", "chart configuration file (default is the user configuration directory)")
	root.PersistentFlags().BoolVar(&o.debug, "debug", false, "enable debug logging")

	root.AddCommand(newFrameCommand(o))
	root.AddCommand(newTicksCommand(o))
	root.AddCommand(newConfigCommand(o))
	return root
}

// Execute runs the command line.
func Execute() error {
	return newRootCommand(&options{}).Execute()
}
