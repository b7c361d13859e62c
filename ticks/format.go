// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package ticks

import (
	"chartcore/chartval"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ericlagergren/decimal"
)

// Ranges of at least this size use SI suffixes.
const siRange = 1e6

const maxDecimals = 10

var siSuffixes = []struct {
	scale  float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// Decimals returns the number of decimals needed to tell ticks of a range apart.
func Decimals(rng float64) int {
	rng = math.Abs(rng)
	if rng < chartval.Epsilon || !chartval.IsFinite(rng) {
		return 2
	}
	return chartval.Clamp(1-floorLog10(rng), 0, maxDecimals)
}

// FormatTick formats a tick value with a precision based on the displayed range.
func FormatTick(value, rng float64) string {
	if !chartval.IsFinite(value) {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	if math.Abs(rng) >= siRange {
		return formatSI(value)
	}
	return formatFixed(value, Decimals(rng))
}

func formatSI(value float64) string {
	a := math.Abs(value)
	for _, si := range siSuffixes {
		if a >= si.scale {
			return trimZeros(formatFixed(value/si.scale, 2)) + si.suffix
		}
	}
	return trimZeros(formatFixed(value, 2))
}

// The builtin float conversion of decimal.Big is exact, which keeps binary artifacts.
// Convert using the shortest string representation instead.
func formatFixed(value float64, decimals int) string {
	d, ok := new(decimal.Big).SetString(strconv.FormatFloat(value, 'f', -1, 64))
	if !ok {
		return strconv.FormatFloat(value, 'f', decimals, 64)
	}
	// Call Quantize twice, otherwise one digit may be missing, see https://github.com/ericlagergren/decimal/issues/151
	d.Quantize(decimals).Quantize(decimals)
	if d.Sign() == 0 {
		// no negative zero on labels
		d = decimal.New(0, decimals)
	}
	return fmt.Sprintf("%.*f", decimals, d)
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}
