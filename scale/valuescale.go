// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package scale

import (
	"chartcore/chartval"
	"math"
)

type Mode int

const (
	ModeLinear Mode = iota
	ModeLog10
)

func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeLog10:
		return "log10"
	default:
		return "unknown"
	}
}

// Smallest positive value on a log scale.
const minLogValue = 1e-12

// Smallest span after zooming.
const minZoomSpan = 1e-9

// ValueScale maps values to the pixel interval [TopPx, BottomPx], values increasing
// from bottom to top. In log mode the same linear mapping is applied to log10 values.
type ValueScale struct {
	TopPx    float32
	BottomPx float32
	VMin     float64
	VMax     float64
	Mode     Mode
	// cached log10 bounds in log mode
	logMin float64
	logMax float64
}

func NewValueScale(mode Mode, topPx, bottomPx float32, vmin, vmax float64) ValueScale {
	if mode == ModeLog10 {
		return NewLog10(topPx, bottomPx, vmin, vmax)
	}
	return NewLinear(topPx, bottomPx, vmin, vmax)
}

func NewLinear(topPx, bottomPx float32, vmin, vmax float64) ValueScale {
	s := ValueScale{TopPx: topPx, BottomPx: bottomPx, VMin: vmin, VMax: vmax, Mode: ModeLinear}
	if math.Abs(s.VMax-s.VMin) < chartval.Epsilon {
		s.VMax = s.VMin + 1
	}
	return s
}

// NewLog10 requires a strictly positive range. vmin is floored, a vmax not above vmin
// is replaced by one decade above vmin.
func NewLog10(topPx, bottomPx float32, vmin, vmax float64) ValueScale {
	if vmin <= minLogValue {
		vmin = minLogValue
	}
	if vmax <= vmin {
		vmax = vmin * 10
	}
	return ValueScale{
		TopPx:    topPx,
		BottomPx: bottomPx,
		VMin:     vmin,
		VMax:     vmax,
		Mode:     ModeLog10,
		logMin:   math.Log10(vmin),
		logMax:   math.Log10(vmax),
	}
}

// WithMode returns a scale over the same pixels and bounds using another mode.
func (s ValueScale) WithMode(m Mode) ValueScale {
	return NewValueScale(m, s.TopPx, s.BottomPx, s.VMin, s.VMax)
}

func (s ValueScale) Range() chartval.LogicalRange {
	return chartval.LogicalRange{Min: s.VMin, Max: s.VMax}
}

func (s ValueScale) pxSpan() float64 {
	h := float64(s.BottomPx - s.TopPx)
	if h == 0 {
		return 1
	}
	return h
}

// bounds in the space that is linear in pixels
func (s ValueScale) linearBounds() (lo, span float64) {
	if s.Mode == ModeLog10 {
		return s.logMin, max(s.logMax-s.logMin, chartval.Epsilon)
	}
	return s.VMin, max(s.VMax-s.VMin, chartval.Epsilon)
}

func (s *ValueScale) setLinearBounds(lo, hi float64) {
	if s.Mode == ModeLog10 {
		s.logMin, s.logMax = lo, hi
		s.VMin, s.VMax = math.Pow(10, lo), math.Pow(10, hi)
		return
	}
	s.VMin, s.VMax = lo, hi
}

func (s ValueScale) toLinear(y float64) float64 {
	if s.Mode == ModeLog10 {
		return math.Log10(max(y, minLogValue))
	}
	return y
}

func (s ValueScale) fromLinear(v float64) float64 {
	if s.Mode == ModeLog10 {
		return math.Pow(10, v)
	}
	return v
}

func (s ValueScale) ToPx(y float64) float32 {
	lo, span := s.linearBounds()
	return s.BottomPx - float32((s.toLinear(y)-lo)/span*float64(s.BottomPx-s.TopPx))
}

func (s ValueScale) FromPx(py float32) float64 {
	lo, span := s.linearBounds()
	return s.fromLinear(lo + float64(s.BottomPx-py)/s.pxSpan()*span)
}

// PanPx shifts the range by dy pixels. In log mode the shift is applied to log10 values,
// so the same drag moves the content by the same distance in both modes.
func (s *ValueScale) PanPx(dy float32) {
	lo, span := s.linearBounds()
	frac := float64(dy) / max(s.pxSpan(), 1)
	delta := span * frac
	s.setLinearBounds(lo+delta, lo+span+delta)
}

// ZoomCenter divides the visible span by factor around centerY.
// Factors above one zoom in.
func (s *ValueScale) ZoomCenter(centerY float64, factor float32) {
	if factor <= 0 {
		return
	}
	_, span := s.linearBounds()
	c := s.toLinear(centerY)
	newSpan := max(span/float64(factor), minZoomSpan)
	s.setLinearBounds(c-newSpan*0.5, c+newSpan*0.5)
}
