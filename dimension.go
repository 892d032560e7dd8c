package kir

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit specifies how a Dimension value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content
	UnitPx                  // Absolute pixels
	UnitPercent             // Percentage of parent content box (0-100 scale)
	UnitFlex                // Main-axis weight inside a flex parent
	UnitVw                  // Percentage of viewport width
	UnitVh                  // Percentage of viewport height
	UnitVmin                // Percentage of min(viewport width, viewport height)
	UnitVmax                // Percentage of max(viewport width, viewport height)
	UnitRem                 // Multiple of the root font size
	UnitEm                  // Multiple of the parent font size
)

var unitSuffixes = [...]string{
	UnitAuto:    "auto",
	UnitPx:      "px",
	UnitPercent: "%",
	UnitFlex:    "fr",
	UnitVw:      "vw",
	UnitVh:      "vh",
	UnitVmin:    "vmin",
	UnitVmax:    "vmax",
	UnitRem:     "rem",
	UnitEm:      "em",
}

// Dimension is a sizing value with a unit. The zero value is Auto, so a
// zero-initialized Style inherits content-based sizing.
type Dimension struct {
	Unit  Unit
	Value float64
}

// Auto returns a Dimension computed from content.
func Auto() Dimension { return Dimension{} }

// Px returns an absolute pixel Dimension.
func Px(v float64) Dimension { return Dimension{Unit: UnitPx, Value: v} }

// Percent returns a Dimension relative to the parent content box.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(v float64) Dimension { return Dimension{Unit: UnitPercent, Value: v} }

// Flex returns a main-axis weight Dimension for flex children.
func Flex(v float64) Dimension { return Dimension{Unit: UnitFlex, Value: v} }

// Vw returns a Dimension relative to viewport width.
func Vw(v float64) Dimension { return Dimension{Unit: UnitVw, Value: v} }

// Vh returns a Dimension relative to viewport height.
func Vh(v float64) Dimension { return Dimension{Unit: UnitVh, Value: v} }

// Rem returns a Dimension in multiples of the root font size.
func Rem(v float64) Dimension { return Dimension{Unit: UnitRem, Value: v} }

// Em returns a Dimension in multiples of the parent font size.
func Em(v float64) Dimension { return Dimension{Unit: UnitEm, Value: v} }

// IsAuto reports whether the dimension is computed from content.
func (d Dimension) IsAuto() bool { return d.Unit == UnitAuto }

// String renders the dimension in CSS-like notation ("120px", "50%", "auto").
func (d Dimension) String() string {
	if d.Unit == UnitAuto {
		return "auto"
	}
	suffix := "px"
	if int(d.Unit) < len(unitSuffixes) {
		suffix = unitSuffixes[d.Unit]
	}
	return trimFloat(d.Value) + suffix
}

// ParseDimension parses CSS-like dimension notation. Unknown or empty input
// yields Auto.
func ParseDimension(s string) Dimension {
	s = strings.TrimSpace(s)
	if s == "" || s == "auto" {
		return Auto()
	}
	// "em" is a suffix of "rem", so a failed parse tries the next unit rather
	// than giving up.
	for u := len(unitSuffixes) - 1; u > int(UnitAuto); u-- {
		suffix := unitSuffixes[u]
		if strings.HasSuffix(s, suffix) {
			v, err := strconv.ParseFloat(strings.TrimSuffix(s, suffix), 64)
			if err != nil {
				continue
			}
			return Dimension{Unit: Unit(u), Value: v}
		}
	}
	// Bare number means pixels.
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return Px(v)
	}
	return Auto()
}

// trimFloat renders v with the shortest unambiguous representation: integers
// print without a fractional part.
func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%g", v)
}
