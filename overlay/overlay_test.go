// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package overlay

import (
	"chartcore/chartval"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineDataset(ys ...float64) *chartval.Dataset {
	pts := make([]chartval.Point2D, len(ys))
	for i, y := range ys {
		pts[i] = chartval.Pt(float64(i), y)
	}
	ds := chartval.NewDataset()
	ds.Add(chartval.NewXYSeries(chartval.SeriesTypeLine, "line", pts))
	return ds
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []Kind{KindBollinger, KindEMA, KindHLine, KindSMA}, Kinds())
	assert.True(t, IsKnown(KindSMA))
	assert.False(t, IsKnown("macd"))
	assert.Nil(t, Compute(Overlay{Kind: "macd"}, lineDataset(1, 2, 3)))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "SMA(9)", New(KindSMA).Label())
	assert.Equal(t, "EMA(5)", NewWithPeriod(KindEMA, 5).Label())
	assert.Equal(t, "BB(20, 2)", New(KindBollinger).Label())
	assert.Equal(t, "mine", Overlay{Kind: KindSMA, Name: "mine"}.Label())
}

func TestSma(t *testing.T) {
	out := Compute(NewWithPeriod(KindSMA, 2), lineDataset(1, 2, 3, 4, 5))
	require.Len(t, out, 1)
	assert.Equal(t, "SMA(2)", out[0].Name)
	assert.Equal(t, []chartval.Point2D{{X: 1, Y: 1.5}, {X: 2, Y: 2.5}, {X: 3, Y: 3.5}, {X: 4, Y: 4.5}}, out[0].XY)
}

func TestSmaFromCandles(t *testing.T) {
	ds := chartval.NewDataset()
	ds.Add(chartval.NewCandleSeries("c", []chartval.Candle{
		chartval.MustCandle(10, 1, 3, 1, 2),
		chartval.MustCandle(20, 2, 5, 2, 4),
		chartval.MustCandle(30, 4, 7, 3, 6),
	}))
	out := Compute(NewWithPeriod(KindSMA, 3), ds)
	require.Len(t, out, 1)
	assert.Equal(t, []chartval.Point2D{{X: 30, Y: 4}}, out[0].XY)
}

func TestSmaTooShort(t *testing.T) {
	assert.Nil(t, Compute(New(KindSMA), lineDataset(1, 2, 3)))
	assert.Nil(t, Compute(New(KindSMA), chartval.NewDataset()))
}

func TestEmaConstant(t *testing.T) {
	out := Compute(NewWithPeriod(KindEMA, 2), lineDataset(2, 2, 2))
	require.Len(t, out, 1)
	require.Len(t, out[0].XY, 2)
	for i, p := range out[0].XY {
		assert.Equal(t, float64(i+1), p.X)
		assert.InDelta(t, 2.0, p.Y, 1e-12)
	}
}

func TestBollinger(t *testing.T) {
	o := New(KindBollinger)
	o.Period = 3
	out := Compute(o, lineDataset(1, 2, 3))
	require.Len(t, out, 3)
	assert.Equal(t, "BB(3, 2) upper", out[0].Name)
	assert.Equal(t, "BB(3, 2)", out[1].Name)
	assert.Equal(t, "BB(3, 2) lower", out[2].Name)
	std := math.Sqrt(2.0 / 3)
	assert.InDelta(t, 2+2*std, out[0].XY[0].Y, 1e-9)
	assert.InDelta(t, 2.0, out[1].XY[0].Y, 1e-9)
	assert.InDelta(t, 2-2*std, out[2].XY[0].Y, 1e-9)
	assert.Equal(t, 2.0, out[0].XY[0].X)
}

func TestBollingerFlat(t *testing.T) {
	o := New(KindBollinger)
	o.Period = 5
	out := Compute(o, lineDataset(0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1))
	require.Len(t, out, 3)
	for _, s := range out {
		require.Len(t, s.XY, 3)
		for _, p := range s.XY {
			assert.False(t, math.IsNaN(p.Y))
			assert.InDelta(t, 0.1, p.Y, 1e-6)
		}
	}
}

func TestHLineEvents(t *testing.T) {
	o := New(KindHLine)
	ds := lineDataset(1, 2)
	assert.Nil(t, Compute(o, ds))

	down := HandleEvent(o, Event{Type: PointerDown, X: 3, Y: 5})
	assert.Nil(t, o.Level, "input must not change")
	require.NotNil(t, down.Level)
	assert.Equal(t, 5.0, *down.Level)
	assert.True(t, down.Dragging)

	moved := HandleEvent(down, Event{Type: PointerMove, Y: 7})
	assert.Equal(t, 7.0, *moved.Level)
	assert.Equal(t, 5.0, *down.Level)

	up := HandleEvent(moved, Event{Type: PointerUp, Y: 8})
	assert.False(t, up.Dragging)
	hover := HandleEvent(up, Event{Type: PointerMove, Y: 9})
	assert.Equal(t, 7.0, *hover.Level)

	out := Compute(hover, ds)
	require.Len(t, out, 1)
	assert.Equal(t, []chartval.Point2D{{X: 0, Y: 7}, {X: 10, Y: 7}}, out[0].XY)
}

func TestHandleEventIgnoredByIndicators(t *testing.T) {
	o := New(KindSMA)
	assert.Equal(t, o, HandleEvent(o, Event{Type: PointerDown, Y: 1}))
}

func TestComputeAll(t *testing.T) {
	overlays := []Overlay{NewWithPeriod(KindSMA, 2), New(KindHLine).WithLevel(1)}
	assert.Len(t, ComputeAll(overlays, lineDataset(1, 2, 3)), 2)
}

func TestProperties(t *testing.T) {
	o := New(KindSMA)
	assert.Equal(t, map[string]string{PropertyPeriod: "9"}, Properties(o))

	o, err := SetProperties(o, map[string]string{PropertyPeriod: "14"})
	assert.NoError(t, err)
	assert.Equal(t, 14, o.Period)

	o, err = SetProperties(o, map[string]string{PropertyPeriod: "-3"})
	assert.NoError(t, err)
	assert.Equal(t, 14, o.Period)

	same, err := SetProperties(o, map[string]string{PropertyPeriod: "20", PropertyBandWidth: "3"})
	assert.Error(t, err)
	assert.Equal(t, o, same)
}

func TestPropertiesBollingerAndLine(t *testing.T) {
	b, err := SetProperties(New(KindBollinger), map[string]string{PropertyBandWidth: "2.5"})
	assert.NoError(t, err)
	assert.Equal(t, 2.5, b.BandWidth)
	assert.Equal(t, "2.5", Properties(b)[PropertyBandWidth])

	l, err := SetProperties(New(KindHLine), map[string]string{PropertyLevel: "101.5"})
	assert.NoError(t, err)
	assert.Equal(t, 101.5, *l.Level)
	assert.Equal(t, map[string]string{PropertyLevel: "101.5"}, Properties(l))

	_, err = SetProperties(New(KindHLine), map[string]string{PropertyLevel: "high"})
	assert.Error(t, err)
}
