package kir

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorKind discriminates the Color variants. Exactly one variant is active
// per value; the zero value is Transparent.
type ColorKind uint8

const (
	ColorTransparent ColorKind = iota
	ColorSolid
	ColorGradient
	ColorVarRef
)

// RGBA is an 8-bit-per-channel color.
type RGBA struct {
	R, G, B, A uint8
}

// Hex renders the color as #rrggbbaa, dropping the alpha component when fully
// opaque.
func (c RGBA) Hex() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// GradientKind selects the gradient geometry.
type GradientKind uint8

const (
	GradientLinear GradientKind = iota
	GradientRadial
	GradientConic
)

// MaxGradientStops caps the stop list; decoders clamp to it rather than fail.
const MaxGradientStops = 8

// GradientStop is one color stop. Positions are in [0, 1] and must be
// monotonically non-decreasing within a gradient.
type GradientStop struct {
	Position float64
	Color    RGBA
}

// Gradient describes a linear, radial, or conic color ramp.
type Gradient struct {
	Kind    GradientKind
	Angle   float64 // degrees, linear gradients
	CenterX float64 // [0,1] fraction, radial/conic gradients
	CenterY float64
	Stops   []GradientStop
}

// AddStop appends a stop, silently dropping stops past MaxGradientStops.
func (g *Gradient) AddStop(pos float64, c RGBA) {
	if len(g.Stops) >= MaxGradientStops {
		return
	}
	g.Stops = append(g.Stops, GradientStop{Position: pos, Color: c})
}

// Color is a tagged union over solid, transparent, gradient, and
// variable-reference colors. The zero value is Transparent.
type Color struct {
	Kind     ColorKind
	RGBA     RGBA      // valid when Kind == ColorSolid
	Gradient *Gradient // valid when Kind == ColorGradient
	VarIndex uint16    // valid when Kind == ColorVarRef
}

// Solid returns an opaque or translucent solid color.
func Solid(r, g, b, a uint8) Color {
	return Color{Kind: ColorSolid, RGBA: RGBA{R: r, G: g, B: b, A: a}}
}

// Transparent returns the transparent color (also the zero value).
func Transparent() Color { return Color{} }

// GradientColor wraps a gradient descriptor as a Color.
func GradientColor(g *Gradient) Color {
	return Color{Kind: ColorGradient, Gradient: g}
}

// VarRef returns a color that resolves through a VarTable at render time.
func VarRef(index uint16) Color {
	return Color{Kind: ColorVarRef, VarIndex: index}
}

// IsTransparent reports whether the color paints nothing.
func (c Color) IsTransparent() bool {
	return c.Kind == ColorTransparent || (c.Kind == ColorSolid && c.RGBA.A == 0)
}

// Resolve follows VarRef indirection through vars, returning the color itself
// for non-reference kinds. A nil or out-of-range table yields Transparent.
func (c Color) Resolve(vars *VarTable) Color {
	if c.Kind != ColorVarRef {
		return c
	}
	if vars == nil {
		return Transparent()
	}
	return vars.Color(c.VarIndex)
}

// String renders solid colors as hex, other kinds symbolically.
func (c Color) String() string {
	switch c.Kind {
	case ColorSolid:
		return c.RGBA.Hex()
	case ColorGradient:
		if c.Gradient == nil {
			return "gradient()"
		}
		kinds := [...]string{"linear", "radial", "conic"}
		return fmt.Sprintf("%s-gradient(%d stops)", kinds[c.Gradient.Kind], len(c.Gradient.Stops))
	case ColorVarRef:
		return fmt.Sprintf("var(%d)", c.VarIndex)
	default:
		return "transparent"
	}
}

// ParseColor parses #rgb, #rrggbb, and #rrggbbaa hex notation plus the
// keyword "transparent". Unparseable input yields Transparent.
func ParseColor(s string) Color {
	s = strings.TrimSpace(s)
	if s == "" || s == "transparent" {
		return Transparent()
	}
	if !strings.HasPrefix(s, "#") {
		return Transparent()
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		fallthrough
	case 6:
		hex += "ff"
	case 8:
	default:
		return Transparent()
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Transparent()
	}
	return Solid(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
}
