// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"chartcore/chartval"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitize(t *testing.T) {
	c := ChartConfig{
		DownsampleTarget:  1,
		MinCandleSlotPx:   -2,
		TickCountX:        -1,
		MinorSubdivisions: -3,
		MinBarSpacing:     300,
		MaxBarSpacing:     2,
		YMargin:           -1,
		Insets:            chartval.NewInsets(-1, 2, 3, 4),
		Overlays:          []OverlayConfig{{Kind: "sma", Period: -5}},
	}
	c.Sanitize()
	assert.Equal(t, 2, c.DownsampleTarget)
	assert.Equal(t, 1.0, c.MinCandleSlotPx)
	assert.Equal(t, 8, c.TickCountX)
	assert.Equal(t, 6, c.TickCountY)
	assert.Equal(t, 0, c.MinorSubdivisions)
	assert.Equal(t, 2.0, c.MinBarSpacing)
	assert.Equal(t, 300.0, c.MaxBarSpacing)
	assert.Equal(t, 0.1, c.MinZoomFactor)
	assert.Equal(t, 10.0, c.MaxZoomFactor)
	assert.Equal(t, 0.0, c.YMargin)
	assert.Equal(t, chartval.NewInsets(0, 2, 3, 4), c.Insets)
	assert.Equal(t, 0, c.Overlays[0].Period)
}

func TestRemoveRestoreDefaults(t *testing.T) {
	c := NewChartConfig()
	c.TickCountX = 12
	c.RemoveDefaults()
	assert.Equal(t, 12, c.TickCountX)
	assert.Equal(t, 0, c.TickCountY)
	assert.Equal(t, 0.0, c.MaxBarSpacing)
	c.RestoreDefaults()
	want := NewChartConfig()
	want.TickCountX = 12
	assert.Equal(t, want, c)
}

func TestDeepCopy(t *testing.T) {
	level := 5.0
	c := NewChartConfig()
	c.Overlays = []OverlayConfig{{Kind: "hline", Level: &level}}
	d := c.deepCopy()
	*d.Overlays[0].Level = 7
	d.Overlays[0].Kind = "sma"
	assert.Equal(t, 5.0, level)
	assert.Equal(t, "hline", c.Overlays[0].Kind)
}

func TestFileConfigDefaults(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	path := filepath.Join(t.TempDir(), "sub", configFileName)
	fc := NewFileConfig(path, zap.New(core))

	c, err := fc.Copy()
	require.NoError(t, err)
	assert.Equal(t, NewChartConfig(), c)
	assert.Equal(t, 1, logs.FilterMessage("Configuration file does not yet exist, using defaults.").Len())

	// Unchanged configurations are not written.
	l, err := fc.Lock()
	require.NoError(t, err)
	require.NoError(t, fc.Unlock(l))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileConfigWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", configFileName)
	fc := NewFileConfig(path, nil)
	c, err := fc.Lock()
	require.NoError(t, err)
	c.TickCountX = 10
	c.LogScale = true
	c.Overlays = append(c.Overlays, OverlayConfig{Kind: "sma", Period: 20})
	require.NoError(t, fc.Unlock(c))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fileversion: 1")
	assert.Contains(t, string(data), "tickcountx: 10")
	assert.NotContains(t, string(data), "mincandleslotpx")
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	read, err := NewFileConfig(path, nil).Copy()
	require.NoError(t, err)
	assert.Equal(t, 10, read.TickCountX)
	assert.True(t, read.LogScale)
	assert.Equal(t, 3.0, read.MinCandleSlotPx)
	assert.Equal(t, []OverlayConfig{{Kind: "sma", Period: 20}}, read.Overlays)
	assert.Equal(t, chartval.DefaultInsets(), read.Insets)
}

func TestFileConfigNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("fileversion: 2\ntickcountx: 3\n"), 0600))
	_, err := NewFileConfig(path, nil).Copy()
	assert.True(t, errors.Is(err, ErrNewerVersion))
}

func TestFileConfigInvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("tickcountx: [\n"), 0600))
	_, err := NewFileConfig(path, nil).Lock()
	assert.Error(t, err)
}

func TestTestConfig(t *testing.T) {
	tc := NewTestConfig()
	c, err := tc.Lock()
	require.NoError(t, err)
	c.TickCountY = 3
	require.NoError(t, tc.Unlock(c))
	copied, err := tc.Copy()
	require.NoError(t, err)
	assert.Equal(t, 3, copied.TickCountY)
}
