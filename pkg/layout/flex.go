package layout

import "github.com/waozixyz/kir"

// flexItem holds intermediate distribution state for one in-flow child.
// It is stack-allocated per layout call, never stored on components.
type flexItem struct {
	node *kir.Component

	base      float64 // resolved main size before distribution
	mainSize  float64
	crossSize float64
	crossAuto bool // cross size came from content, may stretch

	mainMargin  float64 // margin sum along the main axis
	crossMargin float64
	marginMain  float64 // margin before the item on the main axis
	marginCross float64

	grow   float64
	shrink float64

	minMain, maxMain   float64
	minCross, maxCross float64
}

// flexLayout arranges in-flow children of a flex container inside its
// content rect: base sizes, grow/shrink distribution, min/max clamping,
// line wrapping, justify offsets, and cross-axis alignment.
func flexLayout(c *kir.Component, content Rect, ctx Context, m TextMeasurer) {
	cfg := effLayout(c).Flex
	isRow := isRowKind(c.Kind)

	mainAvail := content.Width
	crossAvail := content.Height
	if !isRow {
		mainAvail, crossAvail = crossAvail, mainAvail
	}

	justify := cfg.Justify
	align := cfg.Align
	if c.Kind == kir.KindCenter {
		justify, align = kir.AlignCenter, kir.AlignCenter
	}

	items := buildFlexItems(c, isRow, mainAvail, crossAvail, ctx, m)
	if len(items) == 0 {
		return
	}

	lines := wrapLines(items, cfg.Wrap, cfg.Gap, mainAvail)

	crossPos := 0.0
	for _, line := range lines {
		distributeLine(line, cfg.Gap, mainAvail, justify)

		// A single unwrapped line spans the full cross axis; wrapped
		// lines take the tallest item.
		lineCross := crossAvail
		if len(lines) > 1 {
			lineCross = 0
			for i := range line {
				lineCross = maxf(lineCross, line[i].crossSize+line[i].crossMargin)
			}
		}

		positionLine(c, line, isRow, content, crossPos, lineCross, align, ctx, m)
		crossPos += lineCross
	}
}

func buildFlexItems(c *kir.Component, isRow bool, mainAvail, crossAvail float64, ctx Context, m TextMeasurer) []flexItem {
	items := make([]flexItem, 0, len(c.Children))
	for _, ch := range c.Children {
		if !inFlow(ch) {
			continue
		}
		s := effStyle(ch)
		l := effLayout(ch)
		margin := effMargin(ch)

		item := flexItem{node: ch, grow: l.Flex.Grow, shrink: l.Flex.Shrink}
		if ch.Layout == nil {
			item.shrink = 1
		}

		mainDim, crossDim := s.Height, s.Width
		if isRow {
			mainDim, crossDim = s.Width, s.Height
		}
		if isRow {
			item.mainMargin = margin.Horizontal()
			item.crossMargin = margin.Vertical()
			item.marginMain = margin.Left
			item.marginCross = margin.Top
		} else {
			item.mainMargin = margin.Vertical()
			item.crossMargin = margin.Horizontal()
			item.marginMain = margin.Top
			item.marginCross = margin.Left
		}

		iw, ih := intrinsicSize(ch, ctx, m)
		imain, icross := ih, iw
		if isRow {
			imain, icross = iw, ih
		}

		switch {
		case mainDim.Unit == kir.UnitFlex:
			// A flex-typed dimension is a grow weight with no base size.
			item.base = 0
			item.grow += mainDim.Value
		case mainDim.IsAuto():
			item.base = imain
		default:
			item.base = Resolve(mainDim, mainAvail, ctx)
		}

		if crossDim.IsAuto() || crossDim.Unit == kir.UnitFlex {
			item.crossSize = icross
			item.crossAuto = true
		} else {
			item.crossSize = Resolve(crossDim, crossAvail, ctx)
		}

		minW := resolveBound(l.MinWidth, mainAvail, ctx)
		maxW := resolveBound(l.MaxWidth, mainAvail, ctx)
		minH := resolveBound(l.MinHeight, crossAvail, ctx)
		maxH := resolveBound(l.MaxHeight, crossAvail, ctx)
		if isRow {
			item.minMain, item.maxMain = minW, maxW
			item.minCross, item.maxCross = minH, maxH
		} else {
			item.minMain, item.maxMain = minH, maxH
			item.minCross, item.maxCross = minW, maxW
		}

		item.crossSize = clampAxis(item.crossSize, item.minCross, item.maxCross)
		items = append(items, item)
	}
	return items
}

// wrapLines splits items into lines. Without wrapping everything stays on
// one line; with wrapping a line breaks before the item that would overflow
// the resolved main size, gap included. Every line holds at least one item.
func wrapLines(items []flexItem, wrap bool, gap, mainAvail float64) [][]flexItem {
	if !wrap || mainAvail <= 0 {
		return [][]flexItem{items}
	}
	var lines [][]flexItem
	start := 0
	used := 0.0
	for i := range items {
		outer := items[i].base + items[i].mainMargin
		need := used + outer
		if i > start {
			need += gap
		}
		if i > start && need > mainAvail {
			lines = append(lines, items[start:i])
			start = i
			used = outer
			continue
		}
		used = need
	}
	lines = append(lines, items[start:])
	return lines
}

// distributeLine assigns final main sizes within one line: grow on surplus,
// shrink on deficit (floored at zero), then min/max clamping. Clamping runs
// after distribution so growth never pushes an item past its explicit max.
func distributeLine(line []flexItem, gap, mainAvail float64, justify kir.Alignment) {
	totalBase := 0.0
	totalGrow := 0.0
	totalShrink := 0.0
	for i := range line {
		totalBase += line[i].base + line[i].mainMargin
		totalGrow += line[i].grow
		totalShrink += line[i].shrink
	}
	totalGap := gap * float64(len(line)-1)
	free := mainAvail - totalBase - totalGap

	switch {
	case free > 0 && totalGrow > 0:
		for i := range line {
			line[i].mainSize = line[i].base + free*line[i].grow/totalGrow
		}
	case free < 0 && totalShrink > 0:
		deficit := -free
		for i := range line {
			reduction := deficit * line[i].shrink / totalShrink
			line[i].mainSize = maxf(0, line[i].base-reduction)
		}
	case free > 0 && justify == kir.AlignStretch:
		extra := free / float64(len(line))
		for i := range line {
			line[i].mainSize = line[i].base + extra
		}
	default:
		for i := range line {
			line[i].mainSize = line[i].base
		}
	}

	for i := range line {
		line[i].mainSize = clampAxis(line[i].mainSize, line[i].minMain, line[i].maxMain)
	}
}

// positionLine computes main-axis offsets per the justify rule, aligns each
// item on the cross axis, and recursively places children.
func positionLine(parent *kir.Component, line []flexItem, isRow bool, content Rect, crossPos, lineCross float64, align kir.Alignment, ctx Context, m TextMeasurer) {
	gap := effLayout(parent).Flex.Gap
	justify := effLayout(parent).Flex.Justify
	if parent.Kind == kir.KindCenter {
		justify = kir.AlignCenter
	}

	mainAvail := content.Width
	if !isRow {
		mainAvail = content.Height
	}

	used := gap * float64(len(line)-1)
	for i := range line {
		used += line[i].mainSize + line[i].mainMargin
	}
	free := maxf(0, mainAvail-used)

	lead, spacing := 0.0, 0.0
	switch justify {
	case kir.AlignCenter:
		lead = free / 2
	case kir.AlignEnd:
		lead = free
	case kir.AlignSpaceBetween:
		if len(line) > 1 {
			spacing = free / float64(len(line)-1)
		}
	case kir.AlignSpaceAround:
		spacing = free / float64(len(line))
		lead = spacing / 2
	case kir.AlignSpaceEvenly:
		spacing = free / float64(len(line)+1)
		lead = spacing
	}

	mainPos := lead
	for i := range line {
		item := &line[i]

		cross := item.crossSize
		if align == kir.AlignStretch && item.crossAuto {
			cross = clampAxis(lineCross-item.crossMargin, item.minCross, item.maxCross)
		}
		crossOff := item.marginCross
		switch align {
		case kir.AlignCenter:
			crossOff += (lineCross - cross - item.crossMargin) / 2
		case kir.AlignEnd:
			crossOff += lineCross - cross - item.crossMargin
		}

		var rect Rect
		if isRow {
			rect = NewRect(content.X+mainPos+item.marginMain, content.Y+crossPos+crossOff, item.mainSize, cross)
		} else {
			rect = NewRect(content.X+crossPos+crossOff, content.Y+mainPos+item.marginMain, cross, item.mainSize)
		}
		place(item.node, rect, ctx, m)

		mainPos += item.mainSize + item.mainMargin + gap + spacing
	}
}
