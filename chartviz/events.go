// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartviz

import "chartcore/overlay"

// Event is an input to Reduce. Pixel coordinates are relative to the chart surface.
type Event interface {
	isEvent()
}

// Pan drags the content by DX, DY pixels.
type Pan struct {
	DX, DY float64
}

// Zoom zooms both axes around the cursor at X, Y. Positive Scroll zooms in.
type Zoom struct {
	Scroll float64
	X, Y   float64
}

// ZoomTime zooms the x axis only by Factor around the cursor at X. The resulting
// bar spacing is limited by the configured bounds.
type ZoomTime struct {
	Factor float32
	X      float64
}

type Resize struct {
	Width, Height int
}

// Autoscale fits the y range to the visible data.
type Autoscale struct{}

// Reset shows all data.
type Reset struct{}

type ToggleLog struct{}

// OverlayPointer forwards a pointer event to the overlay at Index.
type OverlayPointer struct {
	Index  int
	Type   overlay.EventType
	PX, PY float64
}

func (Pan) isEvent()            {}
func (Zoom) isEvent()           {}
func (ZoomTime) isEvent()       {}
func (Resize) isEvent()         {}
func (Autoscale) isEvent()      {}
func (Reset) isEvent()          {}
func (ToggleLog) isEvent()      {}
func (OverlayPointer) isEvent() {}
