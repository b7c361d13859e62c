// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"chartcore/chartval"
	"chartcore/config"
	"chartcore/downsample"
	"chartcore/overlay"
	"chartcore/scale"
	"chartcore/ticks"
	"chartcore/view"
	"sort"

	"go.uber.org/zap"
)

// Frame is everything needed to draw a chart once. It is rebuilt for each frame.
type Frame struct {
	Rect      chartval.Rect
	Transform scale.Transform
	View      view.ViewState
	Series    []SeriesGeometry
	Overlays  []SeriesGeometry
	XTicks    []ticks.Tick
	YTicks    []ticks.Tick
}

// Builder turns a dataset and a view into frame geometry.
type Builder struct {
	Config config.ChartConfig
	Logger *zap.Logger
}

func NewBuilder(cfg config.ChartConfig, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.Sanitize()
	return &Builder{Config: cfg, Logger: logger}
}

func (b *Builder) mode() scale.Mode {
	if b.Config.LogScale {
		return scale.ModeLog10
	}
	return scale.ModeLinear
}

// Build projects all series of ds and the given overlays into a surface of
// width x height pixels. Only data within the visible x range of v is used.
func (b *Builder) Build(ds *chartval.Dataset, v view.ViewState, width, height int, overlays ...overlay.Overlay) Frame {
	rect := chartval.PlotRect(width, height, b.Config.Insets)
	tr := scale.NewTransform(rect, v.XRange(), v.YRange(), b.mode())
	w := plotWidth(rect)
	visible := tr.X.VisibleRange(w)

	f := Frame{Rect: rect, Transform: tr, View: v}
	for _, s := range ds.Series {
		f.Series = append(f.Series, b.buildSeries(s, visible, rect, tr))
	}
	// overlays spanning the axes span the view
	shown := *ds
	v.ApplyTo(&shown)
	for _, s := range overlay.ComputeAll(overlays, &shown) {
		f.Overlays = append(f.Overlays, b.buildSeries(s, visible, rect, tr))
	}
	f.XTicks = ticks.PlanTimeAxis(tr.X, w, b.Config.TickCountX)
	f.YTicks = ticks.PlanValueAxis(tr.Y, b.Config.TickCountY, b.Config.MinorSubdivisions)
	return f
}

// reductionTarget returns the maximum number of elements to draw for series type t.
func (b *Builder) reductionTarget(t chartval.SeriesType, rect chartval.Rect) int {
	if t.IsOHLC() {
		slot := max(b.Config.MinCandleSlotPx, 1)
		return max(int(float64(rect.Width())/slot), 1)
	}
	if b.Config.DownsampleTarget > 0 {
		return max(b.Config.DownsampleTarget, 2)
	}
	return max(rect.Width(), 2)
}

func (b *Builder) buildSeries(s chartval.Series, visible chartval.LogicalRange, rect chartval.Rect, tr scale.Transform) SeriesGeometry {
	lo, hi := VisibleWindow(s, visible.Min, visible.Max)
	part := window(s, lo, hi)
	reduced := downsample.ReduceSeries(part, b.reductionTarget(s.Type, rect))
	g := SeriesGeometry{Name: s.Name, Type: s.Type, Visible: part.Len(), Drawn: reduced.Len()}
	if g.Drawn < g.Visible {
		b.Logger.Debug("Series reduced.",
			zap.String("Series", s.Name),
			zap.Stringer("Type", s.Type),
			zap.Int("Input", g.Visible),
			zap.Int("Output", g.Drawn))
	}

	w := plotWidth(rect)
	switch s.Type {
	case chartval.SeriesTypeLine:
		line := projectLine(reduced.XY, tr)
		g.Line = &line
	case chartval.SeriesTypeBaseline:
		line := projectLine(reduced.XY, tr)
		area := projectArea(line, tr.Y.ToPx(s.BaselineOr(0)))
		g.Line, g.Area = &line, &area
	case chartval.SeriesTypeHistogram:
		h := projectHistogram(reduced.XY, s.BaselineOr(0), tr, w)
		g.Histogram = &h
	case chartval.SeriesTypeCandlestick:
		c := projectCandles(reduced.OHLC, tr, slotWidth(candleXs(reduced.OHLC, tr), w))
		g.Candles = &c
	case chartval.SeriesTypeBar:
		bars := projectBars(reduced.OHLC, tr, slotWidth(candleXs(reduced.OHLC, tr), w))
		g.Bars = &bars
	default:
		b.Logger.Warn("Unknown series type.", zap.String("Series", s.Name), zap.Int("Type", int(s.Type)))
	}
	return g
}

// VisibleWindow returns the index range [lo, hi) of the elements of s with x in
// [xMin, xMax], extended by one neighbor on each side so lines leaving the plot area
// are still drawn to the border. s must be sorted by x.
func VisibleWindow(s chartval.Series, xMin, xMax float64) (lo, hi int) {
	n := s.Len()
	first := sort.Search(n, func(i int) bool { return s.XAt(i) >= xMin })
	last := sort.Search(n, func(i int) bool { return s.XAt(i) > xMax })
	lo = max(first-1, 0)
	hi = min(last+1, n)
	if lo > hi {
		lo = hi
	}
	return
}

func window(s chartval.Series, lo, hi int) chartval.Series {
	out := s
	if s.Type.IsOHLC() {
		out.OHLC = s.OHLC[lo:hi]
	} else {
		out.XY = s.XY[lo:hi]
	}
	return out
}
