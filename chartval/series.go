// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import "math"

type SeriesType int

const (
	SeriesTypeLine SeriesType = iota
	SeriesTypeHistogram
	SeriesTypeBaseline
	SeriesTypeCandlestick
	SeriesTypeBar
)

func (t SeriesType) String() string {
	switch t {
	case SeriesTypeLine:
		return "line"
	case SeriesTypeHistogram:
		return "histogram"
	case SeriesTypeBaseline:
		return "baseline"
	case SeriesTypeCandlestick:
		return "candlestick"
	case SeriesTypeBar:
		return "bar"
	default:
		return "unknown"
	}
}

// XY series use Series.XY.
func (t SeriesType) IsXY() bool {
	return t == SeriesTypeLine || t == SeriesTypeHistogram || t == SeriesTypeBaseline
}

// OHLC series use Series.OHLC.
func (t SeriesType) IsOHLC() bool {
	return t == SeriesTypeCandlestick || t == SeriesTypeBar
}

type Series struct {
	Type     SeriesType
	Name     string
	XY       []Point2D
	OHLC     []Candle
	Baseline *float64 // reference level for histogram and baseline series
}

func NewXYSeries(t SeriesType, name string, data []Point2D) Series {
	return Series{Type: t, Name: name, XY: data}
}

func NewCandleSeries(name string, data []Candle) Series {
	return NewCandleSeriesAs(SeriesTypeCandlestick, name, data)
}

func NewCandleSeriesAs(t SeriesType, name string, data []Candle) Series {
	return Series{Type: t, Name: name, OHLC: data}
}

func (s Series) WithBaseline(v float64) Series {
	s.Baseline = &v
	return s
}

// BaselineOr returns the baseline level, or def if none is set.
func (s Series) BaselineOr(def float64) float64 {
	if s.Baseline != nil {
		return *s.Baseline
	}
	return def
}

func (s Series) Len() int {
	if s.Type.IsOHLC() {
		return len(s.OHLC)
	}
	return len(s.XY)
}

// X value of the i-th element, independent of the series kind.
func (s Series) XAt(i int) float64 {
	if s.Type.IsOHLC() {
		return s.OHLC[i].T
	}
	return s.XY[i].X
}

// Closes projects candle closes to points, t is used as x.
func (s Series) Closes() []Point2D {
	out := make([]Point2D, len(s.OHLC))
	for i, c := range s.OHLC {
		out[i] = Point2D{X: c.T, Y: c.C}
	}
	return out
}

// Extents returns the x and y extents of the series.
// For OHLC data, low and high are used. ok is false if the series has no finite extents.
func (s Series) Extents() (x, y LogicalRange, ok bool) {
	x = LogicalRange{Min: math.Inf(1), Max: math.Inf(-1)}
	y = x
	if s.Type.IsOHLC() {
		for _, c := range s.OHLC {
			x.Min = math.Min(x.Min, c.T)
			x.Max = math.Max(x.Max, c.T)
			y.Min = math.Min(y.Min, c.L)
			y.Max = math.Max(y.Max, c.H)
		}
	} else {
		for _, p := range s.XY {
			x.Min = math.Min(x.Min, p.X)
			x.Max = math.Max(x.Max, p.X)
			y.Min = math.Min(y.Min, p.Y)
			y.Max = math.Max(y.Max, p.Y)
		}
		if s.Baseline != nil {
			y.Min = math.Min(y.Min, *s.Baseline)
			y.Max = math.Max(y.Max, *s.Baseline)
		}
	}
	ok = x.IsFinite() && y.IsFinite()
	return
}

type Dataset struct {
	Series []Series
	XAxis  Axis
	YAxis  Axis
}

func NewDataset() *Dataset {
	return &Dataset{
		XAxis: DefaultXAxis(),
		YAxis: DefaultYAxis(),
	}
}

func (d *Dataset) Add(s Series) {
	d.Series = append(d.Series, s)
}

// Extents over all series. ok is false if no finite extents exist.
func (d *Dataset) Extents() (x, y LogicalRange, ok bool) {
	x = LogicalRange{Min: math.Inf(1), Max: math.Inf(-1)}
	y = x
	for _, s := range d.Series {
		sx, sy, sok := s.Extents()
		if !sok {
			continue
		}
		x.Min, x.Max = math.Min(x.Min, sx.Min), math.Max(x.Max, sx.Max)
		y.Min, y.Max = math.Min(y.Min, sy.Min), math.Max(y.Max, sy.Max)
	}
	ok = x.IsFinite() && y.IsFinite()
	return
}

// Autoscale fits both axes to all series. The y range is expanded by yMarginFrac of its span.
// Axes are left untouched if there is no finite data.
func (d *Dataset) Autoscale(yMarginFrac float64) {
	x, y, ok := d.Extents()
	if !ok {
		return
	}
	x = x.Normalized()
	y = y.Normalized()
	m := y.Span() * max(yMarginFrac, 0)
	d.XAxis.Min, d.XAxis.Max = x.Min, x.Max
	d.YAxis.Min, d.YAxis.Max = y.Min-m, y.Max+m
}
