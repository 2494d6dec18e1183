package style

import (
	"fmt"
	"strings"
)

// This file defines unit-safe types and helpers for physical lengths.
// Rendering systems want inches, publication style guides speak in
// millimeters, centimeters, points or pixels; conversion happens here
// and nowhere else.

// Unit represents the unit a style declares its sizing fields in.
type Unit int

const (
	UnitNone Unit = iota // unset / unrecognized
	UnitMM               // millimeters
	UnitCM               // centimeters
	UnitIN               // inches
	UnitPT               // points (1/72 in)
	UnitPX               // pixels at a declared dpi
)

// Conversion constants to inches.
const (
	MmPerInch = 25.4
	CmPerInch = 2.54
	PtPerInch = 72.0
)

// ParseUnit maps a style file's units string to a Unit value.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm":
		return UnitMM, nil
	case "cm":
		return UnitCM, nil
	case "in", "inch", "inches":
		return UnitIN, nil
	case "pt":
		return UnitPT, nil
	case "px":
		return UnitPX, nil
	default:
		return UnitNone, fmt.Errorf("unrecognized unit %q", s)
	}
}

// String returns the short form used in style files.
func (u Unit) String() string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	case UnitPX:
		return "px"
	default:
		return ""
	}
}

// Inches converts v, a value in unit u, to inches. dpi is consulted only
// for UnitPX; passing 0 for any other unit is fine.
func (u Unit) Inches(v, dpi float64) float64 {
	switch u {
	case UnitMM:
		return v / MmPerInch
	case UnitCM:
		return v / CmPerInch
	case UnitIN:
		return v
	case UnitPT:
		return v / PtPerInch
	case UnitPX:
		if dpi <= 0 {
			return v
		}
		return v / dpi
	default:
		return v
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (l Length) IsZero() bool { return l.Value == 0 }

// Inches converts this length to inches. dpi applies only to pixel lengths.
func (l Length) Inches(dpi float64) float64 { return l.Unit.Inches(l.Value, dpi) }
