// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"chartcore/chartval"

	"github.com/barkimedes/go-deepcopy"
)

type ChartConfig struct {
	// Maximum number of points of a line series per frame, 0 means one point per plot pixel.
	DownsampleTarget  int     `yaml:",omitempty"`
	MinCandleSlotPx   float64 `yaml:",omitempty"`
	TickCountX        int     `yaml:",omitempty"`
	TickCountY        int     `yaml:",omitempty"`
	MinorSubdivisions int
	MinBarSpacing     float64 `yaml:",omitempty"`
	MaxBarSpacing     float64 `yaml:",omitempty"`
	MinZoomFactor     float64 `yaml:",omitempty"`
	MaxZoomFactor     float64 `yaml:",omitempty"`
	YMargin           float64
	Insets            chartval.Insets
	LogScale          bool            `yaml:",omitempty"`
	Overlays          []OverlayConfig `yaml:",omitempty"`
}

type OverlayConfig struct {
	Kind   string
	Period int      `yaml:",omitempty"`
	Level  *float64 `yaml:",omitempty"`
}

var defaultChartConfig = NewChartConfig()

func NewChartConfig() ChartConfig {
	return ChartConfig{
		MinCandleSlotPx:   3,
		TickCountX:        8,
		TickCountY:        6,
		MinorSubdivisions: 4,
		MinBarSpacing:     0.5,
		MaxBarSpacing:     200,
		MinZoomFactor:     0.1,
		MaxZoomFactor:     10,
		YMargin:           0.02,
		Insets:            chartval.DefaultInsets(),
	}
}

func (c *ChartConfig) deepCopy() ChartConfig {
	d, err := deepcopy.Anything(c)
	if err != nil {
		panic(err)
	}
	return *d.(*ChartConfig)
}

// Sanitize replaces invalid values.
func (c *ChartConfig) Sanitize() {
	c.RestoreDefaults()
	def := defaultChartConfig
	if c.DownsampleTarget < 0 {
		c.DownsampleTarget = 0
	}
	if c.DownsampleTarget == 1 {
		// LTTB keeps first and last point
		c.DownsampleTarget = 2
	}
	if c.MinCandleSlotPx < 1 {
		c.MinCandleSlotPx = 1
	}
	if c.TickCountX < 1 {
		c.TickCountX = def.TickCountX
	}
	if c.TickCountY < 1 {
		c.TickCountY = def.TickCountY
	}
	if c.MinorSubdivisions < 0 {
		c.MinorSubdivisions = 0
	}
	if c.MinBarSpacing < 0 {
		c.MinBarSpacing = def.MinBarSpacing
	}
	if c.MaxBarSpacing < 0 {
		c.MaxBarSpacing = def.MaxBarSpacing
	}
	if c.MinBarSpacing > c.MaxBarSpacing {
		c.MinBarSpacing, c.MaxBarSpacing = c.MaxBarSpacing, c.MinBarSpacing
	}
	if c.MinZoomFactor < 0 {
		c.MinZoomFactor = def.MinZoomFactor
	}
	if c.MaxZoomFactor < 0 {
		c.MaxZoomFactor = def.MaxZoomFactor
	}
	if c.MinZoomFactor > c.MaxZoomFactor {
		c.MinZoomFactor, c.MaxZoomFactor = c.MaxZoomFactor, c.MinZoomFactor
	}
	if c.YMargin < 0 {
		c.YMargin = 0
	}
	c.Insets = sanitizeInsets(c.Insets)
	for i := range c.Overlays {
		if c.Overlays[i].Period < 0 {
			c.Overlays[i].Period = 0
		}
	}
}

func sanitizeInsets(i chartval.Insets) chartval.Insets {
	return chartval.NewInsets(max(i.Left, 0), max(i.Right, 0), max(i.Top, 0), max(i.Bottom, 0))
}

// We do not want to store certain default values in the configuration file,
// so that changed defaults of a new release apply.
func (c *ChartConfig) RemoveDefaults() {
	def := defaultChartConfig
	if c.MinCandleSlotPx == def.MinCandleSlotPx {
		c.MinCandleSlotPx = 0
	}
	if c.TickCountX == def.TickCountX {
		c.TickCountX = 0
	}
	if c.TickCountY == def.TickCountY {
		c.TickCountY = 0
	}
	if c.MinBarSpacing == def.MinBarSpacing {
		c.MinBarSpacing = 0
	}
	if c.MaxBarSpacing == def.MaxBarSpacing {
		c.MaxBarSpacing = 0
	}
	if c.MinZoomFactor == def.MinZoomFactor {
		c.MinZoomFactor = 0
	}
	if c.MaxZoomFactor == def.MaxZoomFactor {
		c.MaxZoomFactor = 0
	}
}

// Restore default values which are not stored in the configuration file.
func (c *ChartConfig) RestoreDefaults() {
	def := defaultChartConfig
	if c.MinCandleSlotPx == 0 {
		c.MinCandleSlotPx = def.MinCandleSlotPx
	}
	if c.TickCountX == 0 {
		c.TickCountX = def.TickCountX
	}
	if c.TickCountY == 0 {
		c.TickCountY = def.TickCountY
	}
	if c.MinBarSpacing == 0 {
		c.MinBarSpacing = def.MinBarSpacing
	}
	if c.MaxBarSpacing == 0 {
		c.MaxBarSpacing = def.MaxBarSpacing
	}
	if c.MinZoomFactor == 0 {
		c.MinZoomFactor = def.MinZoomFactor
	}
	if c.MaxZoomFactor == 0 {
		c.MaxZoomFactor = def.MaxZoomFactor
	}
}
