// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"errors"
	"fmt"
)

var (
	ErrLowAboveBody  = errors.New("low above min(open,close)")
	ErrHighBelowBody = errors.New("high below max(open,close)")
	ErrLowAboveHigh  = errors.New("low above high")
)

// A Candle is valid once constructed, downstream code does not check it again.
type Candle struct {
	T float64 // time or bar index, displayed on X
	O float64
	H float64
	L float64
	C float64
}

func NewCandle(t, o, h, l, c float64) (Candle, error) {
	if l > h {
		return Candle{}, fmt.Errorf("candle at %v: %w", t, ErrLowAboveHigh)
	}
	if l > min(o, c) {
		return Candle{}, fmt.Errorf("candle at %v: %w", t, ErrLowAboveBody)
	}
	if h < max(o, c) {
		return Candle{}, fmt.Errorf("candle at %v: %w", t, ErrHighBelowBody)
	}
	return Candle{T: t, O: o, H: h, L: l, C: c}, nil
}

// MustCandle panics on invalid input. Intended for literals in tests and demos.
func MustCandle(t, o, h, l, c float64) Candle {
	candle, err := NewCandle(t, o, h, l, c)
	if err != nil {
		panic(err)
	}
	return candle
}

func (c Candle) IsUp() bool {
	return IsGreenCandle(c.O, c.C)
}
