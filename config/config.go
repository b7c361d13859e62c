// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

type Config interface {
	Lock() (*ChartConfig, error)
	Unlock(c *ChartConfig) error
	Copy() (ChartConfig, error)
}
