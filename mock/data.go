// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"chartcore/chartval"
	"math"
	"math/rand"
)

// RandomWalkPoints returns n points at x = 0..n-1 following a gaussian random walk from 100.
func RandomWalkPoints(n int, seed int64) []chartval.Point2D {
	r := rand.New(rand.NewSource(seed))
	out := make([]chartval.Point2D, n)
	y := 100.0
	for i := range out {
		y += r.NormFloat64()
		out[i] = chartval.Pt(float64(i), y)
	}
	return out
}

// SinePoints returns n points of amplitude*sin(x/period*2pi) + offset.
func SinePoints(n int, period, amplitude, offset float64) []chartval.Point2D {
	out := make([]chartval.Point2D, n)
	for i := range out {
		x := float64(i)
		out[i] = chartval.Pt(x, offset+amplitude*math.Sin(x/period*2*math.Pi))
	}
	return out
}

// RandomWalkCandles returns n valid candles starting at start with a time step of step.
// Prices stay positive.
func RandomWalkCandles(n int, seed int64, start, step float64) []chartval.Candle {
	r := rand.New(rand.NewSource(seed))
	out := make([]chartval.Candle, n)
	price := 100.0
	for i := range out {
		o := price
		c := math.Max(o*(1+r.NormFloat64()*0.01), 1)
		h := math.Max(o, c) * (1 + r.Float64()*0.005)
		l := math.Min(o, c) * (1 - r.Float64()*0.005)
		out[i] = chartval.MustCandle(start+float64(i)*step, o, h, l, c)
		price = c
	}
	return out
}

// NewDataset returns a dataset with a random walk line of numPoints points and a
// candlestick series of numCandles candles on the same x range. Empty series are omitted.
func NewDataset(numPoints, numCandles int, seed int64) *chartval.Dataset {
	ds := chartval.NewDataset()
	if numPoints > 0 {
		ds.Add(chartval.NewXYSeries(chartval.SeriesTypeLine, "walk", RandomWalkPoints(numPoints, seed)))
	}
	if numCandles > 0 {
		step := 1.0
		if numPoints > 1 {
			step = float64(numPoints-1) / float64(numCandles)
		}
		ds.Add(chartval.NewCandleSeries("candles", RandomWalkCandles(numCandles, seed+1, 0, step)))
	}
	ds.Autoscale(0.02)
	return ds
}
