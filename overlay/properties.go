// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package overlay

import (
	"fmt"
	"strconv"
)

const (
	PropertyPeriod    = "Time Periods"
	PropertyBandWidth = "Band Width"
	PropertyLevel     = "Level"
)

// Invalid values are ignored.
func setPositiveInt(n *int, value string) {
	v, err := strconv.Atoi(value)
	if err == nil && v > 0 {
		*n = v
	}
}

func setPositiveFloat(f *float64, value string) {
	v, err := strconv.ParseFloat(value, 64)
	if err == nil && v > 0 {
		*f = v
	}
}

// Properties returns the editable properties of o as strings.
func Properties(o Overlay) map[string]string {
	switch o.Kind {
	case KindSMA, KindEMA:
		return map[string]string{
			PropertyPeriod: strconv.Itoa(o.Period),
		}
	case KindBollinger:
		return map[string]string{
			PropertyPeriod:    strconv.Itoa(o.Period),
			PropertyBandWidth: strconv.FormatFloat(o.BandWidth, 'f', -1, 64),
		}
	case KindHLine:
		if o.Level == nil {
			return map[string]string{PropertyLevel: ""}
		}
		return map[string]string{
			PropertyLevel: strconv.FormatFloat(*o.Level, 'f', -1, 64),
		}
	default:
		return map[string]string{}
	}
}

// SetProperties returns o with the given properties applied.
// Keys which o does not support result in an error, o is then returned unchanged.
func SetProperties(o Overlay, prop map[string]string) (Overlay, error) {
	supported := Properties(o)
	out := o
	for key, value := range prop {
		if _, ok := supported[key]; !ok {
			return o, fmt.Errorf("unknown property %q for overlay %s", key, o.Kind)
		}
		switch key {
		case PropertyPeriod:
			setPositiveInt(&out.Period, value)
		case PropertyBandWidth:
			setPositiveFloat(&out.BandWidth, value)
		case PropertyLevel:
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return o, fmt.Errorf("invalid level %q: %w", value, err)
			}
			out = out.WithLevel(v)
		}
	}
	return out, nil
}
