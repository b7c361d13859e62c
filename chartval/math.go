// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Smallest span treated as non-degenerate.
const Epsilon = 1e-12

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Linspace returns steps evenly spaced values from start to end (inclusive).
func Linspace(start, end float64, steps int) []float64 {
	if steps < 2 {
		return []float64{start, end}
	}
	step := (end - start) / float64(steps-1)
	out := make([]float64, steps)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func IsGreenCandle(o, c float64) bool {
	// this may be adjusted based on whether it is considered to be green if open price equals close price.
	return c >= o
}
