// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"chartcore/chartval"
	"chartcore/scale"

	"gioui.org/f32"
	"gioui.org/x/stroke"
)

// LineGeometry is a polyline in pixels. Path holds the same points as segments.
type LineGeometry struct {
	Points []f32.Point
	Path   stroke.Path
}

// Stroke returns a stroke of the line with the given width.
func (g LineGeometry) Stroke(width float32) stroke.Stroke {
	return stroke.Stroke{Path: g.Path, Width: width, Cap: stroke.RoundCap}
}

// CandleGeometry holds wick and body segments of candles, split by direction.
// Bodies and wicks are vertical segments, to be stroked with BodyWidth and WickWidth.
type CandleGeometry struct {
	UpWicks    stroke.Path
	DownWicks  stroke.Path
	UpBodies   stroke.Path
	DownBodies stroke.Path
	BodyWidth  float32
	WickWidth  float32
}

func (g CandleGeometry) BodyStroke(up bool) stroke.Stroke {
	p := g.DownBodies
	if up {
		p = g.UpBodies
	}
	return stroke.Stroke{Path: p, Width: g.BodyWidth, Cap: stroke.FlatCap}
}

func (g CandleGeometry) WickStroke(up bool) stroke.Stroke {
	p := g.DownWicks
	if up {
		p = g.UpWicks
	}
	return stroke.Stroke{Path: p, Width: g.WickWidth, Cap: stroke.FlatCap}
}

// BarGeometry holds OHLC bars: a high-low stem, the open tick to the left
// and the close tick to the right.
type BarGeometry struct {
	Up   stroke.Path
	Down stroke.Path
	// length of the open and close ticks
	TickWidth float32
	LineWidth float32
}

func (g BarGeometry) Stroke(up bool) stroke.Stroke {
	p := g.Down
	if up {
		p = g.Up
	}
	return stroke.Stroke{Path: p, Width: g.LineWidth, Cap: stroke.FlatCap}
}

// HistogramGeometry holds vertical bars from the baseline to each value.
type HistogramGeometry struct {
	Bars     stroke.Path
	BarWidth float32
}

func (g HistogramGeometry) Stroke() stroke.Stroke {
	return stroke.Stroke{Path: g.Bars, Width: g.BarWidth, Cap: stroke.FlatCap}
}

// AreaGeometry is a closed polygon, the first point is repeated at the end.
type AreaGeometry struct {
	Polygon []f32.Point
}

// SeriesGeometry is the geometry of one series in one frame.
// Only the members matching Type are set.
type SeriesGeometry struct {
	Name string
	Type chartval.SeriesType
	// number of visible elements before and after reduction
	Visible int
	Drawn   int

	Line      *LineGeometry
	Area      *AreaGeometry
	Histogram *HistogramGeometry
	Candles   *CandleGeometry
	Bars      *BarGeometry
}

func appendSegment(p *stroke.Path, from, to f32.Point) {
	p.Segments = append(p.Segments, stroke.MoveTo(from), stroke.LineTo(to))
}

// projectLine maps points to pixels. A point landing on the same integer pixel
// as the previously added one is skipped.
func projectLine(points []chartval.Point2D, tr scale.Transform) LineGeometry {
	var g LineGeometry
	if len(points) == 0 {
		return g
	}
	g.Points = make([]f32.Point, 0, len(points))
	var prevX, prevY int
	for i, p := range points {
		px := tr.ToPx(p)
		x, y := int(px.X), int(px.Y)
		if i > 0 && x == prevX && y == prevY {
			continue
		}
		prevX, prevY = x, y
		if len(g.Points) == 0 {
			g.Path.Segments = append(g.Path.Segments, stroke.MoveTo(px))
		} else {
			g.Path.Segments = append(g.Path.Segments, stroke.LineTo(px))
		}
		g.Points = append(g.Points, px)
	}
	return g
}

// projectArea closes the polygon of a baseline series at the baseline level.
func projectArea(line LineGeometry, baselinePx float32) AreaGeometry {
	if len(line.Points) == 0 {
		return AreaGeometry{}
	}
	first := line.Points[0]
	last := line.Points[len(line.Points)-1]
	poly := make([]f32.Point, 0, len(line.Points)+3)
	poly = append(poly, f32.Pt(first.X, baselinePx))
	poly = append(poly, line.Points...)
	poly = append(poly, f32.Pt(last.X, baselinePx), f32.Pt(first.X, baselinePx))
	return AreaGeometry{Polygon: poly}
}

func projectHistogram(points []chartval.Point2D, baseline float64, tr scale.Transform, widthPx float32) HistogramGeometry {
	xs := make([]float32, len(points))
	for i, p := range points {
		xs[i] = tr.X.ToPx(p.X)
	}
	g := HistogramGeometry{BarWidth: histogramWidth(xs, widthPx)}
	y0 := tr.Y.ToPx(baseline)
	for i, p := range points {
		y := tr.Y.ToPx(p.Y)
		if sameRoundedPx(y, y0) {
			y-- // Use a minimum height of 1 px
		}
		appendSegment(&g.Bars, f32.Pt(xs[i], y0), f32.Pt(xs[i], y))
	}
	return g
}

func projectCandles(candles []chartval.Candle, tr scale.Transform, slotPx float32) CandleGeometry {
	var g CandleGeometry
	g.BodyWidth, g.WickWidth = candleWidths(slotPx)
	for _, c := range candles {
		x := tr.X.ToPx(c.T)
		yHigh := tr.Y.ToPx(c.H)
		yLow := tr.Y.ToPx(c.L)
		yOpen := tr.Y.ToPx(c.O)
		yClose := tr.Y.ToPx(c.C)
		if sameRoundedPx(yHigh, yLow) {
			yHigh-- // Use a minimum height of 1 px
		}
		if sameRoundedPx(yOpen, yClose) {
			yClose--
		}
		if c.IsUp() {
			appendSegment(&g.UpWicks, f32.Pt(x, yLow), f32.Pt(x, yHigh))
			appendSegment(&g.UpBodies, f32.Pt(x, yOpen), f32.Pt(x, yClose))
		} else {
			appendSegment(&g.DownWicks, f32.Pt(x, yLow), f32.Pt(x, yHigh))
			appendSegment(&g.DownBodies, f32.Pt(x, yOpen), f32.Pt(x, yClose))
		}
	}
	return g
}

func projectBars(candles []chartval.Candle, tr scale.Transform, slotPx float32) BarGeometry {
	g := BarGeometry{TickWidth: barTickWidth(slotPx)}
	_, g.LineWidth = candleWidths(slotPx)
	tick := g.TickWidth
	for _, c := range candles {
		x := tr.X.ToPx(c.T)
		yHigh := tr.Y.ToPx(c.H)
		yLow := tr.Y.ToPx(c.L)
		if sameRoundedPx(yHigh, yLow) {
			yHigh--
		}
		yOpen := tr.Y.ToPx(c.O)
		yClose := tr.Y.ToPx(c.C)
		p := &g.Down
		if c.IsUp() {
			p = &g.Up
		}
		appendSegment(p, f32.Pt(x, yLow), f32.Pt(x, yHigh))
		appendSegment(p, f32.Pt(x-tick, yOpen), f32.Pt(x, yOpen))
		appendSegment(p, f32.Pt(x, yClose), f32.Pt(x+tick, yClose))
	}
	return g
}
