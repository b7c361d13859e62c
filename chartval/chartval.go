// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import "math"

// Logical coordinate pair. Sequences are expected to be sorted by X.
type Point2D struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// LogicalRange is a data space interval with Min < Max after normalisation.
type LogicalRange struct {
	Min float64
	Max float64
}

func (r LogicalRange) Span() float64 {
	return r.Max - r.Min
}

// Normalized expands degenerate ranges by one logical unit.
func (r LogicalRange) Normalized() LogicalRange {
	if math.Abs(r.Max-r.Min) < Epsilon {
		r.Max = r.Min + 1
	}
	return r
}

func (r LogicalRange) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

func (r LogicalRange) IsFinite() bool {
	return !math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0) && !math.IsNaN(r.Min) && !math.IsNaN(r.Max)
}

// Screen margins in pixels around the plot area.
type Insets struct {
	Left   int `yaml:",omitempty"`
	Right  int `yaml:",omitempty"`
	Top    int `yaml:",omitempty"`
	Bottom int `yaml:",omitempty"`
}

func NewInsets(left, right, top, bottom int) Insets {
	return Insets{Left: left, Right: right, Top: top, Bottom: bottom}
}

// Leaves room for y labels on the left and x labels at the bottom.
func DefaultInsets() Insets {
	return NewInsets(72, 24, 24, 56)
}

func (i Insets) HSum() int {
	return i.Left + i.Right
}

func (i Insets) VSum() int {
	return i.Top + i.Bottom
}

type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

func RectFromLTRB(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

func RectFromLTWH(left, top, width, height int) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

func (r Rect) Width() int {
	return r.Right - r.Left
}

func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// PlotRect returns the plot area of a surface after removing the insets.
// Width and height of the result are at least one pixel.
func PlotRect(width, height int, insets Insets) Rect {
	r := RectFromLTRB(insets.Left, insets.Top, width-insets.Right, height-insets.Bottom)
	if r.Right <= r.Left {
		r.Right = r.Left + 1
	}
	if r.Bottom <= r.Top {
		r.Bottom = r.Top + 1
	}
	return r
}

type Axis struct {
	Label string
	Min   float64
	Max   float64
}

func NewAxis(label string, min, max float64) Axis {
	return Axis{Label: label, Min: min, Max: max}
}

func DefaultXAxis() Axis {
	return NewAxis("Time", 0, 10)
}

func DefaultYAxis() Axis {
	return NewAxis("Price", 0, 100)
}

func (a Axis) Range() LogicalRange {
	return LogicalRange{Min: a.Min, Max: a.Max}
}
