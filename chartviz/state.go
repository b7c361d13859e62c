// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartviz

import (
	"chartcore/chartval"
	"chartcore/config"
	"chartcore/overlay"
	"chartcore/scale"
	"chartcore/view"

	"gioui.org/f32"
	"golang.org/x/exp/slices"
)

// State is the interactive state of one chart instance.
type State struct {
	View     view.ViewState
	Width    int
	Height   int
	LogScale bool
	Overlays []overlay.Overlay
}

// NewState shows all data of ds on a surface of width x height pixels.
// Overlays of unknown kind in cfg are skipped.
func NewState(ds *chartval.Dataset, cfg config.ChartConfig, width, height int) State {
	s := State{
		View:     view.FromChartWithMargin(ds, cfg.YMargin),
		Width:    width,
		Height:   height,
		LogScale: cfg.LogScale,
	}
	for _, oc := range cfg.Overlays {
		k := overlay.Kind(oc.Kind)
		if !overlay.IsKnown(k) {
			continue
		}
		o := overlay.NewWithPeriod(k, oc.Period)
		if oc.Level != nil {
			o = o.WithLevel(*oc.Level)
		}
		s.Overlays = append(s.Overlays, o)
	}
	return s
}

func (s State) Mode() scale.Mode {
	if s.LogScale {
		return scale.ModeLog10
	}
	return scale.ModeLinear
}

func (s State) PlotRect(cfg config.ChartConfig) chartval.Rect {
	return chartval.PlotRect(s.Width, s.Height, cfg.Insets)
}

// Transform returns the mapping of the current view to the plot area.
func (s State) Transform(cfg config.ChartConfig) scale.Transform {
	return scale.NewTransform(s.PlotRect(cfg), s.View.XRange(), s.View.YRange(), s.Mode())
}

// SaveTo stores the persistent parts of s in cfg.
func (s State) SaveTo(cfg *config.ChartConfig) {
	cfg.LogScale = s.LogScale
	cfg.Overlays = make([]config.OverlayConfig, 0, len(s.Overlays))
	for _, o := range s.Overlays {
		oc := config.OverlayConfig{Kind: string(o.Kind), Period: o.Period}
		if o.Level != nil {
			l := *o.Level
			oc.Level = &l
		}
		cfg.Overlays = append(cfg.Overlays, oc)
	}
}

// Reduce returns the state after e. s is not modified.
func Reduce(ds *chartval.Dataset, cfg config.ChartConfig, s State, e Event) State {
	switch e := e.(type) {
	case Pan:
		s.View.PanByPixelsMode(e.DX, e.DY, s.Width, s.Height, cfg.Insets, s.Mode())
	case Zoom:
		f := view.ZoomFactor(e.Scroll, cfg.MinZoomFactor, cfg.MaxZoomFactor)
		s.View.ZoomAtPixelFactor(f, e.X, e.Y, s.Width, s.Height, cfg.Insets, s.Mode())
	case ZoomTime:
		r := s.PlotRect(cfg)
		ts := s.Transform(cfg).X
		// a fitted view may already be outside the bounds, zooming must not jump into them
		lo := min(float32(cfg.MinBarSpacing), ts.BarSpacing)
		hi := max(float32(cfg.MaxBarSpacing), ts.BarSpacing)
		ts.ZoomAtClamped(float32(e.X), e.Factor, lo, hi)
		x := ts.VisibleRange(float32(r.Width()))
		s.View.XMin, s.View.XMax = x.Min, x.Max
	case Resize:
		if e.Width > 0 && e.Height > 0 {
			s.Width, s.Height = e.Width, e.Height
		}
	case Autoscale:
		s.View.AutoscaleYVisibleWithMargin(ds, cfg.YMargin)
	case Reset:
		s.View = view.FromChartWithMargin(ds, cfg.YMargin)
	case ToggleLog:
		s.LogScale = !s.LogScale
	case OverlayPointer:
		if e.Index < 0 || e.Index >= len(s.Overlays) {
			break
		}
		p := s.logicalAt(cfg, e.PX, e.PY)
		s.Overlays = slices.Clone(s.Overlays)
		s.Overlays[e.Index] = overlay.HandleEvent(s.Overlays[e.Index], overlay.Event{Type: e.Type, X: p.X, Y: p.Y})
	}
	return s
}

// logicalAt maps a surface pixel, clamped to the plot area, to logical coordinates.
func (s State) logicalAt(cfg config.ChartConfig, px, py float64) chartval.Point2D {
	r := s.PlotRect(cfg)
	cx := chartval.Clamp(float32(px), float32(r.Left), float32(r.Right))
	cy := chartval.Clamp(float32(py), float32(r.Top), float32(r.Bottom))
	return s.Transform(cfg).FromPx(f32.Pt(cx, cy))
}
