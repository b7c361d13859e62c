// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package overlay

import (
	"chartcore/chartval"
	"math"

	"github.com/cinar/indicator"
)

// sourcePoints returns the first XY series, or the closes of the first OHLC series.
func sourcePoints(ds *chartval.Dataset) []chartval.Point2D {
	for _, s := range ds.Series {
		if s.Type.IsXY() && len(s.XY) > 0 {
			return s.XY
		}
	}
	for _, s := range ds.Series {
		if s.Type.IsOHLC() && len(s.OHLC) > 0 {
			return s.Closes()
		}
	}
	return nil
}

func split(points []chartval.Point2D) (x, y []float64) {
	x = make([]float64, len(points))
	y = make([]float64, len(points))
	for i, p := range points {
		x[i], y[i] = p.X, p.Y
	}
	return
}

// zipFrom pairs x and y starting at the first index after the warm-up period.
func zipFrom(x, y []float64, period int) []chartval.Point2D {
	start := period - 1
	if start >= len(y) {
		return []chartval.Point2D{}
	}
	out := make([]chartval.Point2D, 0, len(y)-start)
	for i := start; i < len(y); i++ {
		out = append(out, chartval.Point2D{X: x[i], Y: y[i]})
	}
	return out
}

func movingAverage(o Overlay, ds *chartval.Dataset, f func(int, []float64) []float64) []chartval.Series {
	pts := sourcePoints(ds)
	if o.Period <= 0 || len(pts) < o.Period {
		return nil
	}
	x, y := split(pts)
	return []chartval.Series{chartval.NewXYSeries(chartval.SeriesTypeLine, o.Label(), zipFrom(x, f(o.Period, y), o.Period))}
}

func computeSma(o Overlay, ds *chartval.Dataset) []chartval.Series {
	return movingAverage(o, ds, indicator.Sma)
}

func computeEma(o Overlay, ds *chartval.Dataset) []chartval.Series {
	return movingAverage(o, ds, indicator.Ema)
}

func computeBollinger(o Overlay, ds *chartval.Dataset) []chartval.Series {
	pts := sourcePoints(ds)
	if o.Period <= 0 || len(pts) < o.Period {
		return nil
	}
	x, y := split(pts)
	mid := indicator.Sma(o.Period, y)
	std := indicator.StdFromSma(o.Period, y, mid)
	upper := make([]float64, len(y))
	lower := make([]float64, len(y))
	for i := range y {
		if math.IsNaN(std[i]) {
			// rounding below zero on flat data
			std[i] = 0
		}
		upper[i] = mid[i] + std[i]*o.BandWidth
		lower[i] = mid[i] - std[i]*o.BandWidth
	}
	label := o.Label()
	return []chartval.Series{
		chartval.NewXYSeries(chartval.SeriesTypeLine, label+" upper", zipFrom(x, upper, o.Period)),
		chartval.NewXYSeries(chartval.SeriesTypeLine, label, zipFrom(x, mid, o.Period)),
		chartval.NewXYSeries(chartval.SeriesTypeLine, label+" lower", zipFrom(x, lower, o.Period)),
	}
}
