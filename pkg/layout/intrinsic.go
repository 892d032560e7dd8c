package layout

import "github.com/waozixyz/kir"

// intrinsicSize computes the content-derived size of a component: text is
// measured, containers accumulate children along their layout direction.
// Explicit pixel-like dimensions short-circuit the content walk per axis.
func intrinsicSize(c *kir.Component, ctx Context, m TextMeasurer) (w, h float64) {
	s := effStyle(c)

	explicitW := !s.Width.IsAuto() && s.Width.Unit != kir.UnitFlex && s.Width.Unit != kir.UnitPercent
	explicitH := !s.Height.IsAuto() && s.Height.Unit != kir.UnitFlex && s.Height.Unit != kir.UnitPercent
	if explicitW {
		w = Resolve(s.Width, -1, ctx)
	}
	if explicitH {
		h = Resolve(s.Height, -1, ctx)
	}
	if explicitW && explicitH {
		return w, h
	}

	cw, ch := contentSize(c, ctx, m)
	pad := effPadding(c)
	cw += pad.Horizontal() + 2*s.Border.Width
	ch += pad.Vertical() + 2*s.Border.Width

	if !explicitW {
		w = cw
	}
	if !explicitH {
		h = ch
	}
	return w, h
}

// contentSize measures what a component's own content occupies, before
// padding and border.
func contentSize(c *kir.Component, ctx Context, m TextMeasurer) (float64, float64) {
	if c.Kind.IsTextual() && c.Text != "" {
		s := effStyle(c)
		maxW := Resolve(s.TextEffect.MaxWidth, -1, ctx)
		return m.Measure(c.Text, s.Font, maxW)
	}
	if len(c.Children) == 0 {
		return 0, 0
	}

	cctx := childContext(c, ctx)
	gap := effLayout(c).Flex.Gap
	isRow := isRowKind(c.Kind)

	var main, cross float64
	n := 0
	for _, ch := range c.Children {
		if !inFlow(ch) {
			continue
		}
		cw, chh := intrinsicSize(ch, cctx, m)
		margin := effMargin(ch)
		cw += margin.Horizontal()
		chh += margin.Vertical()

		cm, cc := chh, cw
		if isRow {
			cm, cc = cw, chh
		}
		main += cm
		cross = maxf(cross, cc)
		n++
	}
	if n > 1 {
		main += gap * float64(n-1)
	}

	if isRow {
		return main, cross
	}
	return cross, main
}
