// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package view

import (
	"chartcore/chartval"
	"chartcore/scale"
	"math"
)

// Bounds of the zoom factor of a single scroll event.
const (
	MinZoomFactor = 0.1
	MaxZoomFactor = 10.0
)

// ZoomFactor converts a scroll delta to a span factor 1-scroll clamped to [lo, hi].
// Positive deltas shrink the span and zoom in.
func ZoomFactor(scroll, lo, hi float64) float64 {
	return chartval.Clamp(1-scroll, lo, hi)
}

// LineScroll converts a wheel delta in lines to a scroll delta.
func LineScroll(lines float64) float64 {
	return lines * 0.1
}

// PixelScroll converts a wheel delta in pixels to a scroll delta.
func PixelScroll(px float64) float64 {
	return px / 240
}

func plotSize(width, height int, insets chartval.Insets) (w, h float64) {
	w = math.Max(float64(width-insets.HSum()), 1)
	h = math.Max(float64(height-insets.VSum()), 1)
	return
}

// PixelToLogical maps a surface pixel to logical coordinates of the view.
// The pixel is clamped to the plot area first.
func (v ViewState) PixelToLogical(px, py float64, width, height int, insets chartval.Insets) (x, y float64) {
	w, h := plotSize(width, height, insets)
	l, t := float64(insets.Left), float64(insets.Top)
	cx := chartval.Clamp(px, l, l+w)
	cy := chartval.Clamp(py, t, t+h)
	x = v.XMin + (cx-l)/w*(v.XMax-v.XMin)
	y = v.YMax - (cy-t)/h*(v.YMax-v.YMin)
	return
}

// PanByPixels moves the view by a pixel delta of the plot area.
// Dragging down moves the content down, so the y range moves up.
func (v *ViewState) PanByPixels(dx, dy float64, width, height int, insets chartval.Insets) {
	w, h := plotSize(width, height, insets)
	wx := -dx / w * (v.XMax - v.XMin)
	wy := dy / h * (v.YMax - v.YMin)
	v.XMin += wx
	v.XMax += wx
	v.YMin += wy
	v.YMax += wy
}

// ZoomAround scales both spans by factor. The anchor keeps its fractional position
// within each span.
func (v *ViewState) ZoomAround(factor, anchorX, anchorY float64) {
	xSpan, ySpan := v.XMax-v.XMin, v.YMax-v.YMin
	nx, ny := xSpan*factor, ySpan*factor
	rx, ry := 0.5, 0.5
	if math.Abs(xSpan) >= chartval.Epsilon {
		rx = (anchorX - v.XMin) / xSpan
	}
	if math.Abs(ySpan) >= chartval.Epsilon {
		ry = (v.YMax - anchorY) / ySpan
	}
	v.XMin = anchorX - rx*nx
	v.XMax = v.XMin + nx
	v.YMax = anchorY + ry*ny
	v.YMin = v.YMax - ny
}

// ZoomAtPixel zooms around the cursor with factor ZoomFactor(scroll, MinZoomFactor, MaxZoomFactor).
func (v *ViewState) ZoomAtPixel(scroll, cursorX, cursorY float64, width, height int, insets chartval.Insets) {
	v.ZoomAtPixelFactor(ZoomFactor(scroll, MinZoomFactor, MaxZoomFactor), cursorX, cursorY, width, height, insets, scale.ModeLinear)
}

// ZoomAtPixelFactor zooms around the cursor by factor. With a log value axis the y span is
// scaled in log10 space, so the value under the cursor stays under the cursor on screen.
func (v *ViewState) ZoomAtPixelFactor(factor, cursorX, cursorY float64, width, height int, insets chartval.Insets, mode scale.Mode) {
	v.inAxisSpace(mode, func(a *ViewState) {
		x, y := a.PixelToLogical(cursorX, cursorY, width, height, insets)
		a.ZoomAround(factor, x, y)
	})
}

// ZoomAtPixelMode is ZoomAtPixel for a value axis of the given mode.
func (v *ViewState) ZoomAtPixelMode(scroll, cursorX, cursorY float64, width, height int, insets chartval.Insets, mode scale.Mode) {
	v.ZoomAtPixelFactor(ZoomFactor(scroll, MinZoomFactor, MaxZoomFactor), cursorX, cursorY, width, height, insets, mode)
}

// PanByPixelsMode is PanByPixels for a value axis of the given mode.
func (v *ViewState) PanByPixelsMode(dx, dy float64, width, height int, insets chartval.Insets, mode scale.Mode) {
	v.inAxisSpace(mode, func(a *ViewState) {
		a.PanByPixels(dx, dy, width, height, insets)
	})
}

// inAxisSpace runs f on a view whose y values are linear in pixels.
// Log views with a non-positive range are handled as linear views.
func (v *ViewState) inAxisSpace(mode scale.Mode, f func(*ViewState)) {
	if mode != scale.ModeLog10 || v.YMin <= 0 || v.YMax <= 0 {
		f(v)
		return
	}
	a := *v
	a.YMin, a.YMax = math.Log10(v.YMin), math.Log10(v.YMax)
	f(&a)
	a.YMin, a.YMax = math.Pow(10, a.YMin), math.Pow(10, a.YMax)
	*v = a
}
