// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import "chartcore/config"

// NewTestConfig returns an in-memory configuration with defaults changed by modify.
func NewTestConfig(modify func(c *config.ChartConfig)) config.Config {
	c := config.NewChartConfig()
	if modify != nil {
		modify(&c)
	}
	c.Sanitize()
	return config.NewTestConfigFrom(c)
}

// NewChartConfig is NewTestConfig without the Config wrapper.
func NewChartConfig(modify func(c *config.ChartConfig)) config.ChartConfig {
	c, _ := NewTestConfig(modify).Copy()
	return c
}
