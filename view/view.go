// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package view

import (
	"chartcore/chartval"
	"math"
)

// Fraction of the y span added above and below the data.
const YMargin = 0.02

// ViewState is the visible logical window of a chart.
// It is owned by the caller and changed in place by pan, zoom and autoscale.
type ViewState struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

func NewViewState(x, y chartval.LogicalRange) ViewState {
	return ViewState{XMin: x.Min, XMax: x.Max, YMin: y.Min, YMax: y.Max}
}

// Unit range used if there is no data.
func UnitView() ViewState {
	return ViewState{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
}

// FromChart fits the view to all series of ds, see FromChartWithMargin.
func FromChart(ds *chartval.Dataset) ViewState {
	return FromChartWithMargin(ds, YMargin)
}

// FromChartWithMargin fits the view to the extents of all series of ds.
// XY series contribute their points and baseline, OHLC series low and high.
// The y range is padded by margin times its span.
func FromChartWithMargin(ds *chartval.Dataset, margin float64) ViewState {
	x, y, ok := ds.Extents()
	if !ok {
		return UnitView()
	}
	x, y = x.Normalized(), y.Normalized()
	m := y.Span() * max(margin, 0)
	return ViewState{XMin: x.Min, XMax: x.Max, YMin: y.Min - m, YMax: y.Max + m}
}

func (v ViewState) XRange() chartval.LogicalRange {
	return chartval.LogicalRange{Min: v.XMin, Max: v.XMax}
}

func (v ViewState) YRange() chartval.LogicalRange {
	return chartval.LogicalRange{Min: v.YMin, Max: v.YMax}
}

// ApplyTo sets the axis bounds of ds to the view.
func (v ViewState) ApplyTo(ds *chartval.Dataset) {
	ds.XAxis.Min, ds.XAxis.Max = v.XMin, v.XMax
	ds.YAxis.Min, ds.YAxis.Max = v.YMin, v.YMax
}

// VisibleYRange returns the y extents of all data with x in [xMin, xMax].
// Baselines of XY series are included. ok is false if no point is inside the window.
func VisibleYRange(ds *chartval.Dataset, xMin, xMax float64) (yMin, yMax float64, ok bool) {
	yMin, yMax = math.Inf(1), math.Inf(-1)
	for _, s := range ds.Series {
		if s.Type.IsOHLC() {
			for _, c := range s.OHLC {
				if c.T >= xMin && c.T <= xMax {
					yMin, yMax = math.Min(yMin, c.L), math.Max(yMax, c.H)
					ok = true
				}
			}
			continue
		}
		for _, p := range s.XY {
			if p.X >= xMin && p.X <= xMax {
				yMin, yMax = math.Min(yMin, p.Y), math.Max(yMax, p.Y)
				ok = true
			}
		}
		if s.Baseline != nil {
			yMin, yMax = math.Min(yMin, *s.Baseline), math.Max(yMax, *s.Baseline)
		}
	}
	return
}

// AutoscaleYVisible fits the y range to the data inside the current x range.
// It returns false and leaves v unchanged if no data is visible.
func (v *ViewState) AutoscaleYVisible(ds *chartval.Dataset) bool {
	return v.AutoscaleYVisibleWithMargin(ds, YMargin)
}

func (v *ViewState) AutoscaleYVisibleWithMargin(ds *chartval.Dataset, margin float64) bool {
	yMin, yMax, ok := VisibleYRange(ds, v.XMin, v.XMax)
	if !ok {
		return false
	}
	y := chartval.LogicalRange{Min: yMin, Max: yMax}.Normalized()
	m := y.Span() * max(margin, 0)
	v.YMin, v.YMax = y.Min-m, y.Max+m
	return true
}
