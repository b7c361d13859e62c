// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package downsample

import (
	"chartcore/chartval"
	"math"
)

// AggregateOHLC merges candles into consecutive windows of bucketSize candles.
// Each output candle uses time and open of the first candle, close of the last candle,
// and the extreme high and low of the window. The last window may be shorter.
func AggregateOHLC(candles []chartval.Candle, bucketSize int) []chartval.Candle {
	n := len(candles)
	if bucketSize <= 1 || n <= 2 {
		return append([]chartval.Candle(nil), candles...)
	}
	out := make([]chartval.Candle, 0, (n+bucketSize-1)/bucketSize)
	for i := 0; i < n; i += bucketSize {
		j := min(i+bucketSize, n)
		first := candles[i]
		merged := chartval.Candle{T: first.T, O: first.O, H: first.H, L: first.L, C: candles[j-1].C}
		for _, c := range candles[i+1 : j] {
			merged.L = math.Min(merged.L, c.L)
			merged.H = math.Max(merged.H, c.H)
		}
		out = append(out, merged)
	}
	return out
}

// BucketSizeFor returns the aggregation window needed to reduce n elements to at most target.
func BucketSizeFor(n, target int) int {
	if target <= 0 || n <= target {
		return 1
	}
	return (n + target - 1) / target
}

// ReduceSeries returns a copy of s with at most target elements.
// XY series are downsampled with LTTB, OHLC series are aggregated.
// A target of zero or less disables the reduction.
func ReduceSeries(s chartval.Series, target int) chartval.Series {
	out := s
	if target <= 0 {
		out.XY = append([]chartval.Point2D(nil), s.XY...)
		out.OHLC = append([]chartval.Candle(nil), s.OHLC...)
		return out
	}
	if s.Type.IsOHLC() {
		out.OHLC = AggregateOHLC(s.OHLC, BucketSizeFor(len(s.OHLC), target))
		out.XY = nil
	} else {
		out.XY = LTTB(s.XY, target)
		out.OHLC = nil
	}
	return out
}
