// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cli

import (
	"chartcore/chartplot"
	"chartcore/chartviz"
	"chartcore/mock"
	"chartcore/overlay"
	"chartcore/ticks"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errFlagFormat = errors.New("invalid flag format")

type frameOptions struct {
	points    int
	candles   int
	seed      int64
	width     int
	height    int
	pan       string
	zoom      string
	logScale  bool
	autoscale bool
	overlays  []string
	save      bool
}

func newFrameCommand(o *options) *cobra.Command {
	fo := &frameOptions{}
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Build one chart frame of synthetic data and print a summary",
		Long: `Build one chart frame from a random walk line and candles.

Examples:
  chartcore frame --points 100000 --candles 5000
  chartcore frame --zoom 0.5,572,274 --autoscale --overlay sma:20 --overlay hline:100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrame(cmd.OutOrStdout(), o, fo)
		},
	}
	f := cmd.Flags()
	f.IntVar(&fo.points, "points", 10000, "number of line points")
	f.IntVar(&fo.candles, "candles", 0, "number of candles")
	f.Int64Var(&fo.seed, "seed", 1, "random seed")
	f.IntVar(&fo.width, "width", 1096, "surface width in pixels")
	f.IntVar(&fo.height, "height", 580, "surface height in pixels")
	f.StringVar(&fo.pan, "pan", "", "pan by dx,dy pixels")
	f.StringVar(&fo.zoom, "zoom", "", "zoom by scroll,x,y")
	f.BoolVar(&fo.logScale, "log", false, "use a log10 value axis")
	f.BoolVar(&fo.autoscale, "autoscale", false, "fit the value axis to the visible data")
	f.StringSliceVar(&fo.overlays, "overlay", nil, "overlay kind[:period or level], may be repeated")
	f.BoolVar(&fo.save, "save", false, "store scale mode and overlays in the configuration")
	return cmd
}

// parseFloats parses exactly n comma separated numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: %q needs %d comma separated values", errFlagFormat, s, n)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", errFlagFormat, s, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseOverlay parses kind[:value]. The value is the level of a horizontal line
// and the period of other kinds.
func parseOverlay(s string) (overlay.Overlay, error) {
	kind, value, hasValue := strings.Cut(s, ":")
	k := overlay.Kind(strings.ToLower(strings.TrimSpace(kind)))
	if !overlay.IsKnown(k) {
		return overlay.Overlay{}, fmt.Errorf("%w: unknown overlay %q", errFlagFormat, kind)
	}
	o := overlay.New(k)
	if !hasValue {
		return o, nil
	}
	prop := overlay.PropertyPeriod
	if k == overlay.KindHLine {
		prop = overlay.PropertyLevel
	}
	o, err := overlay.SetProperties(o, map[string]string{prop: value})
	if err != nil {
		return overlay.Overlay{}, fmt.Errorf("%w: overlay %q: %w", errFlagFormat, s, err)
	}
	return o, nil
}

func frameEvents(fo *frameOptions) ([]chartviz.Event, error) {
	var events []chartviz.Event
	if fo.pan != "" {
		v, err := parseFloats(fo.pan, 2)
		if err != nil {
			return nil, err
		}
		events = append(events, chartviz.Pan{DX: v[0], DY: v[1]})
	}
	if fo.zoom != "" {
		v, err := parseFloats(fo.zoom, 3)
		if err != nil {
			return nil, err
		}
		events = append(events, chartviz.Zoom{Scroll: v[0], X: v[1], Y: v[2]})
	}
	if fo.autoscale {
		events = append(events, chartviz.Autoscale{})
	}
	return events, nil
}

func runFrame(w io.Writer, o *options, fo *frameOptions) error {
	events, err := frameEvents(fo)
	if err != nil {
		return err
	}
	var overlays []overlay.Overlay
	for _, s := range fo.overlays {
		ov, err := parseOverlay(s)
		if err != nil {
			return err
		}
		overlays = append(overlays, ov)
	}

	ds := mock.NewDataset(fo.points, fo.candles, fo.seed)
	chart, err := chartviz.NewChart(ds, o.config, fo.width, fo.height, o.logger)
	if err != nil {
		return err
	}
	if fo.logScale && !chart.State.LogScale {
		events = append([]chartviz.Event{chartviz.ToggleLog{}}, events...)
	}
	chart.State.Overlays = append(chart.State.Overlays, overlays...)
	chart.Handle(events...)

	frame := chart.Frame()
	o.logger.Info("Frame built.",
		zap.Int("Series", len(frame.Series)),
		zap.Int("Overlays", len(frame.Overlays)),
		zap.Int("XTicks", len(frame.XTicks)),
		zap.Int("YTicks", len(frame.YTicks)))
	printFrame(w, frame)

	if fo.save {
		if err := chart.Save(o.config); err != nil {
			return fmt.Errorf("saving chart configuration: %w", err)
		}
		fmt.Fprintf(w, "saved %s\n", o.config.Path())
	}
	return nil
}

func printFrame(w io.Writer, f chartplot.Frame) {
	fmt.Fprintf(w, "plot %dx%d at %d,%d\n", f.Rect.Width(), f.Rect.Height(), f.Rect.Left, f.Rect.Top)
	fmt.Fprintf(w, "view x [%g, %g] y [%g, %g] %s\n", f.View.XMin, f.View.XMax, f.View.YMin, f.View.YMax, f.Transform.Y.Mode)
	for _, s := range f.Series {
		fmt.Fprintf(w, "series %s %s: %d visible, %d drawn\n", s.Name, s.Type, s.Visible, s.Drawn)
	}
	for _, s := range f.Overlays {
		fmt.Fprintf(w, "overlay %s %s: %d visible, %d drawn\n", s.Name, s.Type, s.Visible, s.Drawn)
	}
	fmt.Fprintf(w, "x ticks: %s\n", tickLabels(f.XTicks))
	fmt.Fprintf(w, "y ticks: %s\n", tickLabels(f.YTicks))
}

func tickLabels(t []ticks.Tick) string {
	labels := make([]string, 0, len(t))
	for _, tick := range t {
		if !tick.Minor {
			labels = append(labels, tick.Label)
		}
	}
	return strings.Join(labels, " | ")
}
