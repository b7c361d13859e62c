// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cli

import (
	"chartcore/chartval"
	"chartcore/scale"
	"chartcore/ticks"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type ticksOptions struct {
	count        int
	logScale     bool
	timeAxis     bool
	subdivisions int
	lengthPx     int
}

func newTicksCommand(o *options) *cobra.Command {
	to := &ticksOptions{}
	cmd := &cobra.Command{
		Use:   "ticks MIN MAX",
		Short: "Print axis ticks for a value range",
		Long: `Print label and pixel position of the ticks of an axis showing [MIN, MAX].

Examples:
  chartcore ticks 0 100 --count 5
  chartcore ticks 1 100000 --log
  chartcore ticks 1700000000 1700086400 --time`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parsing MIN: %w", err)
			}
			hi, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parsing MAX: %w", err)
			}
			t := planTicks(lo, hi, to)
			o.logger.Debug("Ticks planned.", zap.Float64("Min", lo), zap.Float64("Max", hi), zap.Int("Ticks", len(t)))
			printTicks(cmd.OutOrStdout(), t)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&to.count, "count", 5, "target number of ticks")
	f.BoolVar(&to.logScale, "log", false, "log10 value axis")
	f.BoolVar(&to.timeAxis, "time", false, "horizontal time axis")
	f.IntVar(&to.subdivisions, "minor", 0, "minor ticks between major ticks")
	f.IntVar(&to.lengthPx, "length", 500, "axis length in pixels")
	return cmd
}

func planTicks(lo, hi float64, to *ticksOptions) []ticks.Tick {
	length := float32(max(to.lengthPx, 1))
	if to.timeAxis {
		ts := scale.TimeScaleFromRange(0, length, chartval.LogicalRange{Min: lo, Max: hi})
		return ticks.PlanTimeAxis(ts, length, to.count)
	}
	mode := scale.ModeLinear
	if to.logScale {
		mode = scale.ModeLog10
	}
	vs := scale.NewValueScale(mode, 0, length, lo, hi)
	return ticks.PlanValueAxis(vs, to.count, to.subdivisions)
}

func printTicks(w io.Writer, t []ticks.Tick) {
	for _, tick := range t {
		if tick.Minor {
			fmt.Fprintf(w, "%8.1f  -\n", tick.Pos)
			continue
		}
		fmt.Fprintf(w, "%8.1f  %s\n", tick.Pos, tick.Label)
	}
}
