package layout

import "github.com/waozixyz/kir"

// DefaultFontSize is the root font size used when none is configured.
const DefaultFontSize = 16

// Context carries the ambient values dimension resolution needs. It flows
// down the tree unchanged except for ParentFontSize, which tracks the
// nearest explicit font size.
type Context struct {
	ViewportWidth  float64
	ViewportHeight float64
	RootFontSize   float64
	ParentFontSize float64
}

// NewContext returns a Context for the given viewport with default font
// sizes.
func NewContext(viewportW, viewportH float64) Context {
	return Context{
		ViewportWidth:  viewportW,
		ViewportHeight: viewportH,
		RootFontSize:   DefaultFontSize,
		ParentFontSize: DefaultFontSize,
	}
}

// Resolve converts a dimension to pixels. It is a pure function: the same
// arguments always produce the same result.
//
// Percent resolves against parentSize; when the parent axis is itself
// unresolved (parentSize < 0) the result is 0 rather than triggering
// re-layout. Flex carries no intrinsic size and resolves to 0; its value acts
// as a grow weight in the parent's distribution pass. Auto resolves to 0
// here; callers substitute content-derived sizes.
func Resolve(d kir.Dimension, parentSize float64, ctx Context) float64 {
	switch d.Unit {
	case kir.UnitPx:
		return d.Value
	case kir.UnitPercent:
		if parentSize < 0 {
			return 0
		}
		return d.Value / 100 * parentSize
	case kir.UnitVw:
		return d.Value / 100 * ctx.ViewportWidth
	case kir.UnitVh:
		return d.Value / 100 * ctx.ViewportHeight
	case kir.UnitVmin:
		return d.Value / 100 * minf(ctx.ViewportWidth, ctx.ViewportHeight)
	case kir.UnitVmax:
		return d.Value / 100 * maxf(ctx.ViewportWidth, ctx.ViewportHeight)
	case kir.UnitRem:
		return d.Value * ctx.RootFontSize
	case kir.UnitEm:
		return d.Value * ctx.ParentFontSize
	default:
		// Auto and Flex have no intrinsic pixel size.
		return 0
	}
}

// resolveBound resolves a min/max constraint dimension. Auto means
// unconstrained, signalled as -1 so clamping can skip it.
func resolveBound(d kir.Dimension, parentSize float64, ctx Context) float64 {
	if d.IsAuto() {
		return -1
	}
	return Resolve(d, parentSize, ctx)
}

// clampAxis applies min/max constraints to a resolved size. A negative bound
// means unconstrained on that side. Min wins over max when they conflict.
func clampAxis(size, min, max float64) float64 {
	if max >= 0 && size > max {
		size = max
	}
	if min >= 0 && size < min {
		size = min
	}
	return maxf(0, size)
}
