// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package ticks

import (
	"chartcore/chartval"
	"math"
	"time"
)

// TimeUnit describes how axis values map to UNIX time.
type TimeUnit int

const (
	TimeNone TimeUnit = iota
	TimeSeconds
	TimeMilliseconds
)

// Bounds of epoch values treated as timestamps, roughly years 2001 to 2286.
const (
	minEpochSeconds = 1e9
	maxEpochSeconds = 1e10
	minEpochMillis  = 1e12
	maxEpochMillis  = 1e13
)

// DetectTimeUnit guesses from the axis bounds whether values are UNIX timestamps.
func DetectTimeUnit(min, max float64) TimeUnit {
	switch {
	case min >= minEpochSeconds && max < maxEpochSeconds:
		return TimeSeconds
	case min >= minEpochMillis && max < maxEpochMillis:
		return TimeMilliseconds
	default:
		return TimeNone
	}
}

// Seconds converts a value to seconds since the epoch.
func (u TimeUnit) Seconds(v float64) float64 {
	if u == TimeMilliseconds {
		return v / 1000
	}
	return v
}

func (u TimeUnit) FromSeconds(s float64) float64 {
	if u == TimeMilliseconds {
		return s * 1000
	}
	return s
}

func (u TimeUnit) Time(v float64) time.Time {
	return time.UnixMilli(int64(math.Round(u.Seconds(v) * 1000))).UTC()
}

type TimeResolution int

const (
	ResSeconds TimeResolution = iota
	ResMinutes
	ResHours
	ResDays
)

// ResolutionForSpan returns the label resolution for an axis spanning spanSeconds.
func ResolutionForSpan(spanSeconds float64) TimeResolution {
	const day = 24 * time.Hour
	switch {
	case spanSeconds < (2 * time.Hour).Seconds():
		return ResSeconds
	case spanSeconds < (3 * day).Seconds():
		return ResMinutes
	case spanSeconds <= (31 * day).Seconds():
		return ResHours
	default:
		return ResDays
	}
}

func (r TimeResolution) FormatString() string {
	switch r {
	case ResSeconds:
		return "15:04:05"
	case ResMinutes:
		return "15:04"
	case ResHours:
		return "01-02 15:04"
	case ResDays:
		return "2006-01-02"
	default:
		panic("unsupported time resolution")
	}
}

// FormatTimeTick formats an axis value as UTC time.
func FormatTimeTick(v float64, unit TimeUnit, res TimeResolution) string {
	return unit.Time(v).Format(res.FormatString())
}

var timeSteps = []time.Duration{
	time.Second,
	2 * time.Second,
	5 * time.Second,
	10 * time.Second,
	15 * time.Second,
	30 * time.Second,
	time.Minute,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	time.Hour,
	2 * time.Hour,
	3 * time.Hour,
	6 * time.Hour,
	12 * time.Hour,
	24 * time.Hour,
	2 * 24 * time.Hour,
	7 * 24 * time.Hour,
	14 * 24 * time.Hour,
	30 * 24 * time.Hour,
	91 * 24 * time.Hour,
	182 * 24 * time.Hour,
	365 * 24 * time.Hour,
}

// TimeStep returns the smallest step of the time ladder covering spanSeconds/target.
// Steps beyond one year are nice multiples of years.
func TimeStep(spanSeconds float64, target int) time.Duration {
	if target <= 0 {
		target = 1
	}
	raw := spanSeconds / float64(target)
	for _, s := range timeSteps {
		if s.Seconds() >= raw {
			return s
		}
	}
	year := timeSteps[len(timeSteps)-1]
	years := max(NiceStep(spanSeconds/year.Seconds(), target), 1)
	return time.Duration(years * float64(year))
}

// TimeTicks returns tick values in the given unit at multiples of a calendar friendly step,
// so that ticks fall on whole minutes, hours or days. At most 4*target ticks are returned.
func TimeTicks(min, max float64, target int, unit TimeUnit) []float64 {
	out := []float64{}
	if !chartval.IsFinite(min) || !chartval.IsFinite(max) || max-min < chartval.Epsilon || target <= 0 {
		return out
	}
	lo, hi := unit.Seconds(min), unit.Seconds(max)
	step := TimeStep(hi-lo, target).Seconds()
	first := math.Ceil(lo/step - stepTolerance)
	for i := 0; i < target*4; i++ {
		s := (first + float64(i)) * step
		if s > hi+step*stepTolerance {
			break
		}
		out = append(out, unit.FromSeconds(s))
	}
	return out
}
