package layout

import "github.com/waozixyz/kir"

// Engine computes layout with a configurable text measurer. The zero value
// works, falling back to a character-count measurer and the default root
// font size.
type Engine struct {
	Measurer     TextMeasurer
	RootFontSize float64
}

// Compute calculates bounds for every component in the tree using a default
// Engine.
func Compute(root *kir.Component, viewportW, viewportH float64) {
	Engine{}.Compute(root, viewportW, viewportH)
}

// Compute walks the tree and writes final bounds into every component.
// It is deterministic: two calls with the same tree and viewport produce
// identical bounds. It never fails; malformed configuration degrades to
// zero-size boxes.
func (e Engine) Compute(root *kir.Component, viewportW, viewportH float64) {
	if root == nil {
		return
	}
	m := e.Measurer
	if m == nil {
		m = charMeasurer{}
	}
	ctx := NewContext(viewportW, viewportH)
	if e.RootFontSize > 0 {
		ctx.RootFontSize = e.RootFontSize
		ctx.ParentFontSize = e.RootFontSize
	}

	s := effStyle(root)
	l := effLayout(root)

	iw, ih := intrinsicSize(root, ctx, m)
	w := outerSize(s.Width, viewportW, iw, ctx)
	h := outerSize(s.Height, viewportH, ih, ctx)
	w = clampAxis(w, resolveBound(l.MinWidth, viewportW, ctx), resolveBound(l.MaxWidth, viewportW, ctx))
	h = clampAxis(h, resolveBound(l.MinHeight, viewportH, ctx), resolveBound(l.MaxHeight, viewportH, ctx))

	place(root, NewRect(0, 0, w, h), ctx, m)
}

// defaults shared by components without explicit style or layout. Read-only.
var (
	defaultStyle  = kir.NewStyle()
	defaultLayout = kir.NewLayoutConfig()
)

func effStyle(c *kir.Component) *kir.Style {
	if c.Style != nil {
		return c.Style
	}
	return defaultStyle
}

func effLayout(c *kir.Component) *kir.LayoutConfig {
	if c.Layout != nil {
		return c.Layout
	}
	return defaultLayout
}

// effPadding prefers the style's padding, falling back to the layout
// config's when the style carries none.
func effPadding(c *kir.Component) kir.Edges {
	s, l := effStyle(c), effLayout(c)
	if !s.Padding.IsZero() || l.Padding.IsZero() {
		return s.Padding
	}
	return l.Padding
}

func effMargin(c *kir.Component) kir.Edges {
	s, l := effStyle(c), effLayout(c)
	if !s.Margin.IsZero() || l.Margin.IsZero() {
		return s.Margin
	}
	return l.Margin
}

// outerSize resolves an explicit dimension or substitutes the intrinsic
// content size for Auto. Flex dimensions outside a flex distribution behave
// as Auto.
func outerSize(d kir.Dimension, parentSize, intrinsic float64, ctx Context) float64 {
	if d.IsAuto() || d.Unit == kir.UnitFlex {
		return intrinsic
	}
	return Resolve(d, parentSize, ctx)
}

// childContext derives the resolution context for a component's children,
// tracking the nearest explicit font size for em units.
func childContext(c *kir.Component, ctx Context) Context {
	if s := c.Style; s != nil && s.Font.Size > 0 {
		ctx.ParentFontSize = s.Font.Size
	}
	return ctx
}

// inFlow reports whether a child participates in its parent's normal flow.
func inFlow(c *kir.Component) bool {
	return c.Style == nil || c.Style.Position == kir.PositionRelative
}

// isRowKind reports whether a component lays its children out horizontally.
func isRowKind(k kir.Kind) bool {
	switch k {
	case kir.KindRow, kir.KindCenter, kir.KindTabBar, kir.KindTableRow:
		return true
	}
	return false
}

// place assigns the border box rect to a component and lays out its
// children inside the content box.
func place(c *kir.Component, borderBox Rect, ctx Context, m TextMeasurer) {
	c.Bounds = kir.Bounds{
		X:      borderBox.X,
		Y:      borderBox.Y,
		Width:  borderBox.Width,
		Height: borderBox.Height,
		Valid:  true,
	}

	s := effStyle(c)
	content := borderBox.Inset(effPadding(c))
	if bw := s.Border.Width; bw > 0 {
		content = content.Inset(kir.EdgeAll(bw))
	}

	cctx := childContext(c, ctx)

	if len(c.Children) > 0 {
		switch effLayout(c).Mode {
		case kir.LayoutGrid:
			gridLayout(c, content, cctx, m)
		case kir.LayoutBlock:
			blockLayout(c, content, cctx, m)
		default:
			flexLayout(c, content, cctx, m)
		}
	}

	for _, ch := range c.Children {
		if !inFlow(ch) {
			placeAbsolute(ch, cctx, m)
		}
	}
}

// placeAbsolute positions an out-of-flow child at its absolute offsets
// relative to its containing block: the nearest non-relative ancestor for
// Absolute, the root for Fixed.
func placeAbsolute(c *kir.Component, ctx Context, m TextMeasurer) {
	s := effStyle(c)
	cb := containingBlock(c, s.Position, ctx)

	iw, ih := intrinsicSize(c, ctx, m)
	w := outerSize(s.Width, cb.Width, iw, ctx)
	h := outerSize(s.Height, cb.Height, ih, ctx)

	l := effLayout(c)
	w = clampAxis(w, resolveBound(l.MinWidth, cb.Width, ctx), resolveBound(l.MaxWidth, cb.Width, ctx))
	h = clampAxis(h, resolveBound(l.MinHeight, cb.Height, ctx), resolveBound(l.MaxHeight, cb.Height, ctx))

	place(c, NewRect(cb.X+s.AbsoluteX, cb.Y+s.AbsoluteY, w, h), ctx, m)
}

// containingBlock finds the rect absolute offsets are relative to. Parents
// are placed before their children, so ancestor bounds are already final.
func containingBlock(c *kir.Component, mode kir.PositionMode, ctx Context) Rect {
	if mode == kir.PositionFixed {
		return NewRect(0, 0, ctx.ViewportWidth, ctx.ViewportHeight)
	}
	for p := c.Parent(); p != nil; p = p.Parent() {
		if p.Parent() == nil || (p.Style != nil && p.Style.Position != kir.PositionRelative) {
			b := p.Bounds
			return NewRect(b.X, b.Y, b.Width, b.Height)
		}
	}
	return NewRect(0, 0, ctx.ViewportWidth, ctx.ViewportHeight)
}

// blockLayout stacks in-flow children vertically, each taking the full
// content width unless explicitly sized.
func blockLayout(c *kir.Component, content Rect, ctx Context, m TextMeasurer) {
	y := content.Y
	for _, ch := range c.Children {
		if !inFlow(ch) {
			continue
		}
		s := effStyle(ch)
		l := effLayout(ch)
		margin := effMargin(ch)

		iw, ih := intrinsicSize(ch, ctx, m)
		w := content.Width - margin.Horizontal()
		if !s.Width.IsAuto() && s.Width.Unit != kir.UnitFlex {
			w = Resolve(s.Width, content.Width, ctx)
		} else if iw < w && ch.Kind.IsInline() {
			w = iw
		}
		h := outerSize(s.Height, content.Height, ih, ctx)

		w = clampAxis(w, resolveBound(l.MinWidth, content.Width, ctx), resolveBound(l.MaxWidth, content.Width, ctx))
		h = clampAxis(h, resolveBound(l.MinHeight, content.Height, ctx), resolveBound(l.MaxHeight, content.Height, ctx))

		y += margin.Top
		place(ch, NewRect(content.X+margin.Left, y, maxf(0, w), h), ctx, m)
		y += h + margin.Bottom
	}
}
