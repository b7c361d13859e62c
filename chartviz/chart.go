// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartviz

import (
	"chartcore/chartplot"
	"chartcore/chartval"
	"chartcore/config"
	"fmt"

	"go.uber.org/zap"
)

// Chart couples a dataset with its state and configuration.
// It is not safe for concurrent use.
type Chart struct {
	Data    *chartval.Dataset
	State   State
	config  config.ChartConfig
	builder *chartplot.Builder
	logger  *zap.Logger
}

func NewChart(ds *chartval.Dataset, cfg config.Config, width, height int, logger *zap.Logger) (*Chart, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c, err := cfg.Copy()
	if err != nil {
		return nil, fmt.Errorf("reading chart configuration: %w", err)
	}
	c.Sanitize()
	return &Chart{
		Data:    ds,
		State:   NewState(ds, c, width, height),
		config:  c,
		builder: chartplot.NewBuilder(c, logger),
		logger:  logger,
	}, nil
}

func (c *Chart) Config() config.ChartConfig {
	return c.config
}

// Handle applies events in order.
func (c *Chart) Handle(events ...Event) {
	for _, e := range events {
		c.State = Reduce(c.Data, c.config, c.State, e)
		c.logger.Debug("Chart event handled.",
			zap.String("Event", fmt.Sprintf("%T", e)),
			zap.Float64("XMin", c.State.View.XMin),
			zap.Float64("XMax", c.State.View.XMax),
			zap.Float64("YMin", c.State.View.YMin),
			zap.Float64("YMax", c.State.View.YMax))
	}
}

// Frame builds the geometry of the current state.
func (c *Chart) Frame() chartplot.Frame {
	b := *c.builder
	b.Config.LogScale = c.State.LogScale
	return b.Build(c.Data, c.State.View, c.State.Width, c.State.Height, c.State.Overlays...)
}

// Save stores scale mode and overlays in cfg.
func (c *Chart) Save(cfg config.Config) error {
	chartConfig, err := cfg.Lock()
	if err != nil {
		return err
	}
	c.State.SaveTo(chartConfig)
	c.State.SaveTo(&c.config)
	c.builder = chartplot.NewBuilder(c.config, c.logger)
	return cfg.Unlock(chartConfig)
}
