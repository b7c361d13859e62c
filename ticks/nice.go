// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package ticks

import (
	"chartcore/chartval"
	"math"
)

// Tolerance relative to the step when comparing tick values with range bounds.
const stepTolerance = 1e-9

// NiceStep rounds span/target to 1, 2, 5 or 10 times the power of ten at or below it.
// It returns 0 for invalid input.
func NiceStep(span float64, target int) float64 {
	if target <= 0 || !chartval.IsFinite(span) || span < chartval.Epsilon {
		return 0
	}
	raw := span / float64(target)
	base := math.Pow10(floorLog10(raw))
	norm := raw / base
	switch {
	case norm <= 1+stepTolerance:
		return base
	case norm <= 2+stepTolerance:
		return 2 * base
	case norm <= 5+stepTolerance:
		return 5 * base
	default:
		return 10 * base
	}
}

// NiceTicks returns the multiples of NiceStep within [min, max].
// At most 4*target ticks are returned.
func NiceTicks(min, max float64, target int) []float64 {
	out := []float64{}
	if !chartval.IsFinite(min) || !chartval.IsFinite(max) || max-min < chartval.Epsilon {
		return out
	}
	step := NiceStep(max-min, target)
	if step == 0 {
		return out
	}
	first := math.Ceil(min/step - stepTolerance)
	for i := 0; i < target*4; i++ {
		v := (first + float64(i)) * step
		if v > max+step*stepTolerance {
			break
		}
		out = append(out, v)
	}
	return out
}

// floorLog10 returns the exponent of the power of ten at or below v.
// math.Log10 may return slightly less than an exact power.
func floorLog10(v float64) int {
	return int(math.Floor(math.Log10(v) + stepTolerance))
}

func ceilLog10(v float64) int {
	return int(math.Ceil(math.Log10(v) - stepTolerance))
}

// MinorTicksLinear returns subdivisions evenly spaced values strictly between each pair of majors.
func MinorTicksLinear(majors []float64, subdivisions int) []float64 {
	if subdivisions <= 0 || len(majors) < 2 {
		return []float64{}
	}
	out := make([]float64, 0, (len(majors)-1)*subdivisions)
	for i := 1; i < len(majors); i++ {
		a, b := majors[i-1], majors[i]
		d := (b - a) / float64(subdivisions+1)
		for j := 1; j <= subdivisions; j++ {
			out = append(out, a+d*float64(j))
		}
	}
	return out
}
