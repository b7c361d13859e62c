// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package ticks

import (
	"chartcore/chartval"
	"math"
	"strconv"
)

func decades(min, max float64) (lo, hi int, ok bool) {
	if min <= 0 || max <= min || !chartval.IsFinite(min) || !chartval.IsFinite(max) {
		return 0, 0, false
	}
	return floorLog10(min), ceilLog10(max), true
}

// LogTicks returns one tick per power of ten from floor(log10 min) to ceil(log10 max).
// Every decade is returned whatever the target, see thinDecades for labelling.
func LogTicks(min, max float64, target int) []float64 {
	lo, hi, ok := decades(min, max)
	if !ok {
		return []float64{}
	}
	out := make([]float64, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		out = append(out, math.Pow10(k))
	}
	return out
}

// thinDecades keeps every k-th tick if there are more than 2*target ticks,
// with k = ceil(count/target).
func thinDecades(majors []float64, target int) []float64 {
	count := len(majors)
	if target <= 0 || count <= 2*target {
		return majors
	}
	stride := (count + target - 1) / target
	out := make([]float64, 0, count/stride+1)
	for i := 0; i < count; i += stride {
		out = append(out, majors[i])
	}
	return out
}

// MinorTicksLog returns m*10^k for m in 2..9 within [min, max].
func MinorTicksLog(min, max float64) []float64 {
	lo, hi, ok := decades(min, max)
	out := []float64{}
	if !ok {
		return out
	}
	for k := lo; k <= hi; k++ {
		base := math.Pow10(k)
		for m := 2; m <= 9; m++ {
			v := float64(m) * base
			if v >= min && v <= max {
				out = append(out, v)
			}
		}
	}
	return out
}

// FormatLogTick prints values of at least one as integers and smaller values as 1e{exp}.
func FormatLogTick(v float64) string {
	a := math.Abs(v)
	switch {
	case a >= 1:
		return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	case a == 0:
		return "0"
	}
	s := "1e" + strconv.Itoa(floorLog10(a))
	if v < 0 {
		return "-" + s
	}
	return s
}
