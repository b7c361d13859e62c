// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package overlay

import "chartcore/chartval"

type EventType int

const (
	PointerDown EventType = iota
	PointerMove
	PointerUp
)

// Event is a pointer event in logical coordinates.
type Event struct {
	Type EventType
	X    float64
	Y    float64
}

// HandleEvent returns the overlay state after e. The input overlay is not modified.
// A horizontal line is placed at the pointer on press and follows the pointer while dragged.
// Other kinds ignore pointer events.
func HandleEvent(o Overlay, e Event) Overlay {
	if o.Kind != KindHLine {
		return o
	}
	switch e.Type {
	case PointerDown:
		o.Level = level(e.Y)
		o.Dragging = true
	case PointerMove:
		if o.Dragging {
			o.Level = level(e.Y)
		}
	case PointerUp:
		o.Dragging = false
	}
	return o
}

func level(v float64) *float64 {
	return &v
}

// WithLevel returns o with the line level set to v.
func (o Overlay) WithLevel(v float64) Overlay {
	o.Level = level(v)
	return o
}

// computeHLine returns a line at the overlay level across the x axis of ds.
func computeHLine(o Overlay, ds *chartval.Dataset) []chartval.Series {
	if o.Level == nil {
		return nil
	}
	y := *o.Level
	return []chartval.Series{chartval.NewXYSeries(chartval.SeriesTypeLine, o.Label(), []chartval.Point2D{
		{X: ds.XAxis.Min, Y: y},
		{X: ds.XAxis.Max, Y: y},
	})}
}
