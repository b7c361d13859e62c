// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package scale

import (
	"chartcore/chartval"

	"gioui.org/f32"
)

// Transform maps logical points to pixel points of one plot area.
type Transform struct {
	X TimeScale
	Y ValueScale
}

// NewTransform fits xRange and yRange into the plot rect.
func NewTransform(rect chartval.Rect, xRange, yRange chartval.LogicalRange, mode Mode) Transform {
	return Transform{
		X: TimeScaleFromRange(float32(rect.Left), float32(rect.Width()), xRange),
		Y: NewValueScale(mode, float32(rect.Top), float32(rect.Bottom), yRange.Min, yRange.Max),
	}
}

func (t Transform) ToPx(p chartval.Point2D) f32.Point {
	return f32.Pt(t.X.ToPx(p.X), t.Y.ToPx(p.Y))
}

func (t Transform) FromPx(p f32.Point) chartval.Point2D {
	return chartval.Point2D{X: t.X.FromPx(p.X), Y: t.Y.FromPx(p.Y)}
}
