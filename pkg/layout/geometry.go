// Package layout computes pixel bounds for every component in a tree given a
// root constraint box. It implements flexbox and grid distribution, resolves
// dimension units against parent and viewport context, and applies min/max
// clamping. Layout never fails: malformed input is clamped so that a
// renderable (if degenerate) tree always comes out.
package layout

import "github.com/waozixyz/kir"

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Inset shrinks the rectangle by the given edges. Width and height floor at
// zero so over-large padding cannot produce negative content boxes.
func (r Rect) Inset(e kir.Edges) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  maxf(0, r.Width-e.Horizontal()),
		Height: maxf(0, r.Height-e.Vertical()),
	}
}

// Expand grows the rectangle by the given edges.
func (r Rect) Expand(e kir.Edges) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Horizontal(),
		Height: r.Height + e.Vertical(),
	}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if hi >= 0 && v > hi {
		return hi
	}
	return v
}
