// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package ticks

import (
	"chartcore/chartval"
	"chartcore/scale"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNiceStep(t *testing.T) {
	assert.Equal(t, 20.0, NiceStep(100, 5))
	assert.Equal(t, 50.0, NiceStep(100, 4))
	assert.Equal(t, 10.0, NiceStep(70, 10))
	assert.InDelta(t, 0.5, NiceStep(3, 10), 1e-12)
	assert.Equal(t, 10.0, NiceStep(100, 10))
	assert.Equal(t, 0.0, NiceStep(0, 5))
	assert.Equal(t, 0.0, NiceStep(100, 0))
	assert.Equal(t, 0.0, NiceStep(math.Inf(1), 5))
}

func TestNiceTicks(t *testing.T) {
	v := NiceTicks(0, 100, 5)
	assert.Equal(t, []float64{0, 20, 40, 60, 80, 100}, v)
	assert.GreaterOrEqual(t, len(v), 5/2)
	assert.LessOrEqual(t, len(v), 5*2)

	small := NiceTicks(0, 1, 5)
	assert.Len(t, small, 6)
	for i, x := range small {
		assert.InDelta(t, float64(i)*0.2, x, 1e-12)
	}
}

func TestNiceTicksNoNegativeZero(t *testing.T) {
	v := NiceTicks(-0.5, 0.5, 4)
	assert.Equal(t, []float64{-0.5, 0, 0.5}, v)
	assert.False(t, math.Signbit(v[1]))
}

func TestNiceTicksInvalid(t *testing.T) {
	assert.Empty(t, NiceTicks(5, 5, 5))
	assert.Empty(t, NiceTicks(10, 0, 5))
	assert.Empty(t, NiceTicks(math.NaN(), 1, 5))
	assert.Empty(t, NiceTicks(0, math.Inf(1), 5))
	assert.Empty(t, NiceTicks(0, 1, 0))
}

func TestNiceTicksWithinRange(t *testing.T) {
	for _, r := range [][2]float64{{-3.7, 12.2}, {0.001, 0.0013}, {1e6, 3e7}, {-250, -3}} {
		v := NiceTicks(r[0], r[1], 6)
		assert.NotEmpty(t, v)
		assert.LessOrEqual(t, len(v), 24)
		step := NiceStep(r[1]-r[0], 6)
		for _, x := range v {
			assert.GreaterOrEqual(t, x, r[0]-step*1e-6)
			assert.LessOrEqual(t, x, r[1]+step*1e-6)
		}
	}
}

func TestMinorTicksLinear(t *testing.T) {
	assert.Equal(t, []float64{5, 15}, MinorTicksLinear([]float64{0, 10, 20}, 1))
	assert.Equal(t, []float64{2, 4, 6, 8}, MinorTicksLinear([]float64{0, 10}, 4))
	assert.Empty(t, MinorTicksLinear([]float64{0}, 4))
	assert.Empty(t, MinorTicksLinear([]float64{0, 10}, 0))
}

func TestLogTicks(t *testing.T) {
	assert.Equal(t, []float64{1, 10, 100, 1000}, LogTicks(1, 1000, 5))
	assert.Equal(t, []float64{1, 10, 100, 1000}, LogTicks(2, 500, 5))
	assert.Equal(t, []float64{10, 100}, LogTicks(10, 100, 5))
	assert.Empty(t, LogTicks(0, 100, 5))
	assert.Empty(t, LogTicks(-1, 100, 5))
	assert.Empty(t, LogTicks(100, 10, 5))
}

func TestLogTicksWideRange(t *testing.T) {
	v := LogTicks(1e-12, 1e12, 5)
	require.Len(t, v, 25)
	assert.Equal(t, 1e-12, v[0])
	assert.Equal(t, 1e12, v[24])
}

func TestPlanValueAxisLogThinned(t *testing.T) {
	vs := scale.NewLog10(0, 300, 2e-10, 5e9)
	labels := []string{}
	for _, tk := range PlanValueAxis(vs, 5, 0) {
		labels = append(labels, tk.Label)
	}
	assert.Equal(t, []string{"1e-9", "1e-5", "1e-1", "1000", "10000000"}, labels)
}

func TestMinorTicksLog(t *testing.T) {
	assert.Equal(t, []float64{2, 3, 4, 5, 6, 7, 8, 9}, MinorTicksLog(1, 10))
	assert.Equal(t, []float64{30, 40, 50, 60, 70, 80, 90, 200}, MinorTicksLog(25, 250))
	assert.Empty(t, MinorTicksLog(0, 10))
}

func TestFormatTick(t *testing.T) {
	assert.Equal(t, "20", FormatTick(20, 100))
	assert.Equal(t, "0.6", FormatTick(0.6000000000000001, 1))
	assert.Equal(t, "12.50", FormatTick(12.5, 0))
	assert.Equal(t, "0", FormatTick(-0.0001, 10))
	assert.Equal(t, "2.5M", FormatTick(2.5e6, 5e6))
	assert.Equal(t, "1B", FormatTick(1e9, 2e9))
	assert.Equal(t, "3.14T", FormatTick(3.14159e12, 1e13))
	assert.Equal(t, "-1.5K", FormatTick(-1500, 1e6))
	assert.Equal(t, "0", FormatTick(0, 2e6))
}

func TestDecimals(t *testing.T) {
	assert.Equal(t, 0, Decimals(100))
	assert.Equal(t, 0, Decimals(10))
	assert.Equal(t, 1, Decimals(1))
	assert.Equal(t, 3, Decimals(0.05))
	assert.Equal(t, 10, Decimals(1e-11))
	assert.Equal(t, 2, Decimals(0))
}

func TestFormatLogTick(t *testing.T) {
	assert.Equal(t, "1000", FormatLogTick(1000))
	assert.Equal(t, "1", FormatLogTick(1))
	assert.Equal(t, "1e-2", FormatLogTick(0.01))
	assert.Equal(t, "-1e-3", FormatLogTick(-0.001))
	assert.Equal(t, "0", FormatLogTick(0))
}

func TestDetectTimeUnit(t *testing.T) {
	assert.Equal(t, TimeSeconds, DetectTimeUnit(1.7e9, 1.8e9))
	assert.Equal(t, TimeMilliseconds, DetectTimeUnit(1.7e12, 1.71e12))
	assert.Equal(t, TimeNone, DetectTimeUnit(0, 100))
	assert.Equal(t, TimeNone, DetectTimeUnit(1.7e9, 1.7e12))
}

func TestResolutionForSpan(t *testing.T) {
	assert.Equal(t, ResSeconds, ResolutionForSpan(60))
	assert.Equal(t, ResMinutes, ResolutionForSpan(5*3600))
	assert.Equal(t, ResHours, ResolutionForSpan(5*86400))
	assert.Equal(t, ResHours, ResolutionForSpan(31*86400))
	assert.Equal(t, ResDays, ResolutionForSpan(40*86400))
}

func TestFormatTimeTick(t *testing.T) {
	assert.Equal(t, "2023-11-14", FormatTimeTick(1700000000, TimeSeconds, ResDays))
	assert.Equal(t, "22:13:20", FormatTimeTick(1700000000, TimeSeconds, ResSeconds))
	assert.Equal(t, "22:13", FormatTimeTick(1700000000000, TimeMilliseconds, ResMinutes))
	assert.Equal(t, "11-14 22:13", FormatTimeTick(1700000000, TimeSeconds, ResHours))
}

func TestTimeTicks(t *testing.T) {
	assert.Equal(t, 10*60.0, TimeStep(3600, 6).Seconds())
	v := TimeTicks(1700000000, 1700003600, 6, TimeSeconds)
	assert.Len(t, v, 6)
	for _, x := range v {
		assert.Equal(t, 0.0, math.Mod(x, 600))
	}
	ms := TimeTicks(1700000000000, 1700003600000, 6, TimeMilliseconds)
	assert.Len(t, ms, 6)
	assert.Equal(t, v[0]*1000, ms[0])
}

func TestTimeStepYears(t *testing.T) {
	year := 365 * 24 * 3600.0
	assert.Equal(t, 10*year, TimeStep(1e9, 5).Seconds())
}

func TestPlanValueAxisLinear(t *testing.T) {
	vs := scale.NewLinear(0, 100, 0, 100)
	ticks := PlanValueAxis(vs, 5, 1)
	assert.Len(t, ticks, 11)
	assert.Equal(t, Tick{Value: 0, Pos: 100, Label: "0"}, ticks[0])
	assert.Equal(t, Tick{Value: 100, Pos: 0, Label: "100"}, ticks[5])
	assert.Equal(t, Tick{Value: 10, Pos: 90, Minor: true}, ticks[6])
}

func TestPlanValueAxisLog(t *testing.T) {
	vs := scale.NewLog10(0, 300, 1, 1000)
	ticks := PlanValueAxis(vs, 5, 1)
	assert.Len(t, ticks, 28)
	labels := []string{}
	for _, tk := range ticks {
		if !tk.Minor {
			labels = append(labels, tk.Label)
		}
	}
	assert.Equal(t, []string{"1", "10", "100", "1000"}, labels)
	assert.InDelta(t, 200.0, float64(ticks[1].Pos), 1e-3)
}

func TestRepeatedLabelsDropped(t *testing.T) {
	pos := func(v float64) float32 { return float32(v) }
	label := func(v float64) string { return FormatTick(v, 10) }
	ticks := appendMajors(nil, []float64{1.0, 1.2, 2.0, 2.4, 3.0}, pos, label)
	assert.Len(t, ticks, 3)
	assert.Equal(t, "2", ticks[1].Label)
}

func TestPlanTimeAxis(t *testing.T) {
	ts := scale.TimeScaleFromRange(0, 500, chartval.LogicalRange{Min: 0, Max: 100})
	ticks := PlanTimeAxis(ts, 500, 8)
	assert.Len(t, ticks, 6)
	assert.Equal(t, "20", ticks[1].Label)
	assert.Equal(t, float32(100), ticks[1].Pos)

	ts = scale.TimeScaleFromRange(0, 600, chartval.LogicalRange{Min: 1700000000, Max: 1700003600})
	ticks = PlanTimeAxis(ts, 600, 6)
	assert.NotEmpty(t, ticks)
	assert.Equal(t, "22:20:00", ticks[0].Label)
}

func TestPlanValueAxisLogNarrowRange(t *testing.T) {
	vs := scale.NewLog10(0, 300, 90, 110)
	ticks := PlanValueAxis(vs, 5, 4)
	labels := []string{}
	for _, tk := range ticks {
		assert.False(t, tk.Minor)
		labels = append(labels, tk.Label)
	}
	assert.Equal(t, []string{"90", "95", "100", "105", "110"}, labels)
	assert.InDelta(t, 300.0, float64(ticks[0].Pos), 1e-3)
}
