// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"chartcore/chartval"
	"chartcore/scale"
	"math"
)

const (
	minSlotPx       = 3.0
	candleBodyRatio = 0.7
	barTickRatio    = 0.4
	minBarTickPx    = 2.0
	histogramRatio  = 0.8
	minHistogramPx  = 2.0
)

// slotWidth returns the average pixel distance of consecutive elements at xs.
// Less than two elements share widthPx.
func slotWidth(xs []float32, widthPx float32) float32 {
	if len(xs) < 2 {
		return max(widthPx/float32(max(len(xs), 1)), minSlotPx)
	}
	return max((xs[len(xs)-1]-xs[0])/float32(len(xs)-1), minSlotPx)
}

func candleXs(candles []chartval.Candle, tr scale.Transform) []float32 {
	xs := make([]float32, len(candles))
	for i, c := range candles {
		xs[i] = tr.X.ToPx(c.T)
	}
	return xs
}

// candleWidths returns width of candle body and wick.
func candleWidths(slotPx float32) (body float32, wick float32) {
	body = max(slotPx*candleBodyRatio, 1)
	wick = max(body/16, 1)
	return
}

func barTickWidth(slotPx float32) float32 {
	return max(slotPx*barTickRatio, minBarTickPx)
}

// histogramWidth uses the smallest pixel distance of neighboring bars.
// Without neighbors, widthPx is shared by all bars.
func histogramWidth(xs []float32, widthPx float32) float32 {
	minDx := float32(math.Inf(1))
	for i := 1; i < len(xs); i++ {
		if dx := xs[i] - xs[i-1]; dx > 0 {
			minDx = min(minDx, dx)
		}
	}
	if math.IsInf(float64(minDx), 1) {
		minDx = widthPx / float32(max(len(xs), 1))
	}
	return max(minDx*histogramRatio, minHistogramPx)
}

// sameRoundedPx reports whether two pixel coordinates end up on the same pixel.
func sameRoundedPx(a, b float32) bool {
	return math.Round(float64(a)) == math.Round(float64(b))
}

// plotWidth of the plot area as float.
func plotWidth(r chartval.Rect) float32 {
	return float32(r.Width())
}
