// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package ticks

import (
	"chartcore/scale"
)

// Tick is an axis tick at pixel position Pos. Minor ticks have no label.
type Tick struct {
	Value float64
	Pos   float32
	Label string
	Minor bool
}

// appendMajors appends labelled ticks. A label equal to the previous one is not printed twice.
func appendMajors(out []Tick, values []float64, pos func(float64) float32, label func(float64) string) []Tick {
	var prev string
	for _, v := range values {
		l := label(v)
		if l == prev {
			continue
		}
		prev = l
		out = append(out, Tick{Value: v, Pos: pos(v), Label: l})
	}
	return out
}

func appendMinors(out []Tick, values []float64, pos func(float64) float32) []Tick {
	for _, v := range values {
		out = append(out, Tick{Value: v, Pos: pos(v), Minor: true})
	}
	return out
}

// PlanValueAxis places major and minor ticks on a value axis. Majors come first.
// Log scales use decade ticks, thinned to every k-th decade on wide ranges. Minors are then the mantissas 2 to 9 if subdivisions is positive.
// A log scale spanning less than two decade ticks gets linear ticks.
func PlanValueAxis(vs scale.ValueScale, target, subdivisions int) []Tick {
	r := vs.Range()
	var out []Tick
	if vs.Mode == scale.ModeLog10 {
		var majors []float64
		for _, v := range LogTicks(r.Min, r.Max, target) {
			if v >= r.Min*(1-stepTolerance) && v <= r.Max*(1+stepTolerance) {
				majors = append(majors, v)
			}
		}
		if len(majors) < 2 {
			// less than a decade visible
			return appendMajors(out, NiceTicks(r.Min, r.Max, target), vs.ToPx, func(v float64) string { return FormatTick(v, r.Span()) })
		}
		out = appendMajors(out, thinDecades(majors, target), vs.ToPx, FormatLogTick)
		if subdivisions > 0 {
			out = appendMinors(out, MinorTicksLog(r.Min, r.Max), vs.ToPx)
		}
		return out
	}
	majors := NiceTicks(r.Min, r.Max, target)
	out = appendMajors(out, majors, vs.ToPx, func(v float64) string { return FormatTick(v, r.Span()) })
	return appendMinors(out, MinorTicksLinear(majors, subdivisions), vs.ToPx)
}

// PlanTimeAxis places ticks on the visible part of a time scale. Axes with UNIX timestamps
// get time labels, other axes are labelled like value axes.
func PlanTimeAxis(ts scale.TimeScale, widthPx float32, target int) []Tick {
	r := ts.VisibleRange(widthPx)
	unit := DetectTimeUnit(r.Min, r.Max)
	if unit == TimeNone {
		return appendMajors(nil, NiceTicks(r.Min, r.Max, target), ts.ToPx, func(v float64) string { return FormatTick(v, r.Span()) })
	}
	res := ResolutionForSpan(unit.Seconds(r.Max) - unit.Seconds(r.Min))
	return appendMajors(nil, TimeTicks(r.Min, r.Max, target, unit), ts.ToPx, func(v float64) string { return FormatTimeTick(v, unit, res) })
}
