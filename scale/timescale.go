// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package scale

import (
	"chartcore/chartval"
)

// Zoom limits for the bar spacing in pixels per logical unit.
const (
	MinBarSpacing = 0.5
	MaxBarSpacing = 200.0
)

// Spacing floor applied on construction.
const minSpacing = 0.01

// TimeScale maps logical X values (bar index or timestamp) to pixels:
// px = LeftPx + (x - StartLogical) * BarSpacing
// It is built for each frame and never stored.
type TimeScale struct {
	LeftPx       float32
	StartLogical float64
	BarSpacing   float32
}

func NewTimeScale(leftPx float32, startLogical float64, barSpacing float32) TimeScale {
	return TimeScale{LeftPx: leftPx, StartLogical: startLogical, BarSpacing: max(barSpacing, minSpacing)}
}

// TimeScaleFromRange fits the logical range r into widthPx pixels starting at leftPx.
// The spacing is exact, so wide ranges such as unix timestamps are not cut off by the
// construction floor.
func TimeScaleFromRange(leftPx, widthPx float32, r chartval.LogicalRange) TimeScale {
	r = r.Normalized()
	return TimeScale{LeftPx: leftPx, StartLogical: r.Min, BarSpacing: float32(float64(widthPx) / r.Span())}
}

func (s TimeScale) ToPx(x float64) float32 {
	return s.LeftPx + float32((x-s.StartLogical)*float64(s.BarSpacing))
}

func (s TimeScale) FromPx(px float32) float64 {
	return s.StartLogical + float64(px-s.LeftPx)/float64(s.BarSpacing)
}

// VisibleRange returns the logical range covered by widthPx pixels.
func (s TimeScale) VisibleRange(widthPx float32) chartval.LogicalRange {
	return chartval.LogicalRange{Min: s.StartLogical, Max: s.FromPx(s.LeftPx + widthPx)}
}

// ZoomAt scales the bar spacing by factor while the logical value under cursorPx stays
// under cursorPx. The spacing is clamped to [MinBarSpacing, MaxBarSpacing].
func (s *TimeScale) ZoomAt(cursorPx, factor float32) {
	s.ZoomAtClamped(cursorPx, factor, MinBarSpacing, MaxBarSpacing)
}

// ZoomAtClamped is ZoomAt with custom spacing bounds.
func (s *TimeScale) ZoomAtClamped(cursorPx, factor, lo, hi float32) {
	cx := s.FromPx(cursorPx)
	s.BarSpacing = chartval.Clamp(s.BarSpacing*factor, lo, hi)
	s.StartLogical = cx - float64(cursorPx-s.LeftPx)/float64(s.BarSpacing)
}

// PanPx moves the scale by dx pixels. A drag of dx moves the content by dx on screen,
// independent of the zoom level.
func (s *TimeScale) PanPx(dx float32) {
	s.StartLogical -= float64(dx) / float64(s.BarSpacing)
}
