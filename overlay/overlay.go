// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package overlay

import (
	"chartcore/chartval"
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
)

type Kind string

const (
	KindSMA       Kind = "sma"
	KindEMA       Kind = "ema"
	KindBollinger Kind = "bollinger"
	KindHLine     Kind = "hline"
)

// For sorting
type KindList []Kind

func (x KindList) Len() int           { return len(x) }
func (x KindList) Less(i, j int) bool { return x[i] < x[j] }
func (x KindList) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

const (
	DefaultPeriod          = 9
	DefaultBollingerPeriod = 20
	DefaultBandWidth       = 2.0
)

// Overlay is a chart overlay. Fields not used by Kind are ignored.
type Overlay struct {
	Kind      Kind
	Name      string
	Period    int
	BandWidth float64
	// horizontal line level, nil until set by a pointer event
	Level    *float64
	Dragging bool
}

func New(kind Kind) Overlay {
	o := Overlay{Kind: kind}
	switch kind {
	case KindSMA, KindEMA:
		o.Period = DefaultPeriod
	case KindBollinger:
		o.Period = DefaultBollingerPeriod
		o.BandWidth = DefaultBandWidth
	}
	return o
}

func NewWithPeriod(kind Kind, period int) Overlay {
	o := New(kind)
	if period > 0 {
		o.Period = period
	}
	return o
}

// Label returns Name, or a label derived from kind and parameters.
func (o Overlay) Label() string {
	if o.Name != "" {
		return o.Name
	}
	switch o.Kind {
	case KindSMA:
		return fmt.Sprintf("SMA(%d)", o.Period)
	case KindEMA:
		return fmt.Sprintf("EMA(%d)", o.Period)
	case KindBollinger:
		return fmt.Sprintf("BB(%d, %g)", o.Period, o.BandWidth)
	case KindHLine:
		return "HLine"
	default:
		return string(o.Kind)
	}
}

// ComputeFunc derives overlay series from a dataset.
type ComputeFunc func(o Overlay, ds *chartval.Dataset) []chartval.Series

var Registry = make(map[Kind]ComputeFunc)

func init() {
	Register(KindSMA, computeSma)
	Register(KindEMA, computeEma)
	Register(KindBollinger, computeBollinger)
	Register(KindHLine, computeHLine)
}

func Register(k Kind, f ComputeFunc) {
	Registry[k] = f
}

func IsKnown(k Kind) bool {
	_, ok := Registry[k]
	return ok
}

// Kinds returns all registered kinds in sorted order.
func Kinds() []Kind {
	l := KindList(maps.Keys(Registry))
	sort.Sort(l)
	return l
}

// Compute returns the series of o for ds. Unknown kinds yield no series.
func Compute(o Overlay, ds *chartval.Dataset) []chartval.Series {
	f, ok := Registry[o.Kind]
	if !ok {
		return nil
	}
	return f(o, ds)
}

// ComputeAll concatenates the series of all overlays.
func ComputeAll(overlays []Overlay, ds *chartval.Dataset) []chartval.Series {
	var out []chartval.Series
	for _, o := range overlays {
		out = append(out, Compute(o, ds)...)
	}
	return out
}
