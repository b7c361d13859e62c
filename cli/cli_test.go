// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cli

import (
	"bytes"
	"chartcore/mock"
	"chartcore/overlay"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	logger, _ := mock.NewLogger()
	root := newRootCommand(&options{logger: logger})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(dir, "chartconfig.yaml")}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestTicksCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "ticks", "0", "100", "--count", "5")
	require.NoError(t, err)
	assert.Equal(t, "   500.0  0\n   400.0  20\n   300.0  40\n   200.0  60\n   100.0  80\n     0.0  100\n", out)

	out, err = execute(t, t.TempDir(), "ticks", "1", "1000", "--log", "--minor", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "  1000\n")
	assert.Contains(t, out, "  -\n")

	out, err = execute(t, t.TempDir(), "ticks", "1700000000", "1700086400", "--time", "--count", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "  06:00\n")
	assert.Contains(t, out, "  18:00\n")

	_, err = execute(t, t.TempDir(), "ticks", "zero", "1")
	assert.Error(t, err)
	_, err = execute(t, t.TempDir(), "ticks", "1")
	assert.Error(t, err)
}

func TestFrameCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "frame", "--points", "5000", "--candles", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "plot 1000x500 at 72,24\n")
	assert.Contains(t, out, " linear\n")
	assert.Contains(t, out, "series walk line: 5000 visible, 1000 drawn\n")
	assert.Contains(t, out, "series candles candlestick: 1000 visible, 250 drawn\n")
	assert.Contains(t, out, "x ticks: 0 | ")
}

func TestFrameCommandEvents(t *testing.T) {
	out, err := execute(t, t.TempDir(), "frame", "--points", "1000",
		"--zoom", "0.5,572,274", "--pan", "100,0", "--autoscale", "--log")
	require.NoError(t, err)
	assert.Contains(t, out, " log10\n")
	assert.Contains(t, out, "series walk line: ")
}

func TestFrameCommandSave(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "frame", "--points", "500", "--log", "--overlay", "sma:20", "--overlay", "hline:100", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "overlay SMA(20) line: 481 visible, 481 drawn\n")
	assert.Contains(t, out, "overlay HLine line: 2 visible, 2 drawn\n")
	assert.Contains(t, out, "saved ")

	out, err = execute(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "logscale: true\n")
	assert.Contains(t, out, "kind: sma\n")
	assert.Contains(t, out, "period: 20\n")

	// stored overlays are shown again
	out, err = execute(t, dir, "frame", "--points", "500")
	require.NoError(t, err)
	assert.Contains(t, out, " log10\n")
	assert.Contains(t, out, "overlay SMA(20) line: ")
}

func TestFrameCommandErrors(t *testing.T) {
	for _, args := range [][]string{
		{"frame", "--pan", "1,2,3"},
		{"frame", "--zoom", "a,b,c"},
		{"frame", "--overlay", "unknown"},
		{"frame", "--overlay", "hline:high"},
		{"frame", "extra"},
	} {
		_, err := execute(t, t.TempDir(), args...)
		assert.Error(t, err, "%v", args)
	}
	_, err := execute(t, t.TempDir(), "frame", "--pan", "1")
	assert.ErrorIs(t, err, errFlagFormat)
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "created ")
	assert.FileExists(t, filepath.Join(dir, "chartconfig.yaml"))

	_, err = execute(t, dir, "config", "init")
	assert.ErrorIs(t, err, errConfigExists)

	_, err = execute(t, dir, "config", "init", "--force")
	assert.NoError(t, err)

	out, err = execute(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "tickcounty: 6\n")
}

func TestParseOverlay(t *testing.T) {
	o, err := parseOverlay("SMA:5")
	require.NoError(t, err)
	assert.Equal(t, overlay.NewWithPeriod(overlay.KindSMA, 5), o)

	o, err = parseOverlay("bollinger")
	require.NoError(t, err)
	assert.Equal(t, overlay.New(overlay.KindBollinger), o)

	o, err = parseOverlay("hline:12.5")
	require.NoError(t, err)
	require.NotNil(t, o.Level)
	assert.Equal(t, 12.5, *o.Level)

	_, err = parseOverlay("hline:x")
	assert.ErrorIs(t, err, errFlagFormat)
}

func TestParseFloats(t *testing.T) {
	v, err := parseFloats(" 1.5, -2", 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2}, v)
	_, err = parseFloats("1", 2)
	assert.ErrorIs(t, err, errFlagFormat)
}

func TestNewLogger(t *testing.T) {
	for _, debug := range []bool{false, true} {
		l, err := newLogger(debug)
		require.NoError(t, err)
		assert.NotNil(t, l)
	}
}
