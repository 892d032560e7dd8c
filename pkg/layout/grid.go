package layout

import "github.com/waozixyz/kir"

// gridItem pairs a child with its resolved cell span.
type gridItem struct {
	node                   *kir.Component
	rowStart, rowEnd       int // [start, end) line range
	colStart, colEnd       int
	explicit               bool
	intrinsicW, intrinsicH float64
}

// gridLayout resolves track sizes and places children into cells. Fixed
// tracks resolve first; FR tracks share the remaining space by weight.
// Items place explicitly when they carry line indices, otherwise by
// auto-flow with optional dense packing, document order breaking ties.
func gridLayout(c *kir.Component, content Rect, ctx Context, m TextMeasurer) {
	cfg := effLayout(c).Grid

	items := collectGridItems(c, ctx, m)
	if len(items) == 0 {
		return
	}

	colCount := len(cfg.Columns)
	if colCount == 0 {
		colCount = 1
	}
	rowCount := len(cfg.Rows)
	for i := range items {
		if items[i].explicit && items[i].rowEnd > rowCount {
			rowCount = items[i].rowEnd
		}
	}
	if rowCount == 0 {
		rowCount = 1
	}
	placeGridItems(items, colCount, rowCount, cfg.AutoFlowRow, cfg.AutoFlowDense)

	// Auto flow grows the implicit grid along the flow axis.
	for i := range items {
		if items[i].rowEnd > rowCount {
			rowCount = items[i].rowEnd
		}
		if items[i].colEnd > colCount {
			colCount = items[i].colEnd
		}
	}

	colSizes := resolveTracks(cfg.Columns, colCount, content.Width, cfg.ColumnGap, items, true)
	rowSizes := resolveTracks(cfg.Rows, rowCount, content.Height, cfg.RowGap, items, false)

	colOffsets := trackOffsets(colSizes, cfg.ColumnGap)
	rowOffsets := trackOffsets(rowSizes, cfg.RowGap)

	for i := range items {
		it := &items[i]
		cell := cellRect(content, colOffsets, colSizes, rowOffsets, rowSizes,
			it.colStart, it.colEnd, it.rowStart, it.rowEnd, cfg.ColumnGap, cfg.RowGap)
		placeInCell(it.node, cell, cfg, ctx, m)
	}
}

func collectGridItems(c *kir.Component, ctx Context, m TextMeasurer) []gridItem {
	items := make([]gridItem, 0, len(c.Children))
	for _, ch := range c.Children {
		if !inFlow(ch) {
			continue
		}
		it := gridItem{node: ch}
		it.intrinsicW, it.intrinsicH = intrinsicSize(ch, ctx, m)

		if s := ch.Style; s != nil && !s.GridItem.IsAuto() {
			p := s.GridItem
			it.explicit = true
			it.rowStart = spanStart(p.RowStart)
			it.rowEnd = spanEnd(p.RowStart, p.RowEnd)
			it.colStart = spanStart(p.ColumnStart)
			it.colEnd = spanEnd(p.ColumnStart, p.ColumnEnd)
		}
		items = append(items, it)
	}
	return items
}

func spanStart(start int16) int {
	if start < 0 {
		return 0
	}
	return int(start)
}

func spanEnd(start, end int16) int {
	s := spanStart(start)
	if int(end) <= s {
		return s + 1
	}
	return int(end)
}

// placeGridItems fills in cell positions for auto-placed items using an
// occupancy map. The cross axis wraps at the explicit track count while the
// flow axis grows implicitly, so the scan always reaches a fresh row or
// column and terminates. Dense packing rescans from the origin for every
// item; sparse placement keeps a moving cursor.
func placeGridItems(items []gridItem, colCount, rowCount int, flowRow, dense bool) {
	occupied := map[[2]int]bool{}

	mark := func(it *gridItem) {
		for r := it.rowStart; r < it.rowEnd; r++ {
			for col := it.colStart; col < it.colEnd; col++ {
				occupied[[2]int{r, col}] = true
			}
		}
	}
	fits := func(r, col, rowSpan, colSpan int) bool {
		if flowRow && col+colSpan > colCount {
			return false
		}
		if !flowRow && r+rowSpan > rowCount {
			return false
		}
		for dr := 0; dr < rowSpan; dr++ {
			for dc := 0; dc < colSpan; dc++ {
				if occupied[[2]int{r + dr, col + dc}] {
					return false
				}
			}
		}
		return true
	}

	// Explicit placements claim their cells first. Out-of-range columns
	// clamp in place against the explicit track count.
	for i := range items {
		if items[i].explicit {
			if items[i].colEnd > colCount {
				items[i].colStart = minInt(items[i].colStart, colCount-1)
				items[i].colEnd = colCount
			}
			mark(&items[i])
		}
	}

	cursorRow, cursorCol := 0, 0
	for i := range items {
		it := &items[i]
		if it.explicit {
			continue
		}
		rowSpan, colSpan := 1, 1

		r, col := cursorRow, cursorCol
		if dense {
			r, col = 0, 0
		}
		for !fits(r, col, rowSpan, colSpan) {
			if flowRow {
				col++
				if col >= colCount {
					col = 0
					r++
				}
			} else {
				r++
				if r >= rowCount {
					r = 0
					col++
				}
			}
		}
		it.rowStart, it.rowEnd = r, r+rowSpan
		it.colStart, it.colEnd = col, col+colSpan
		mark(it)

		if !dense {
			cursorRow, cursorCol = r, col
		}
	}
}

// resolveTracks converts track definitions to pixel sizes. Content-sized
// tracks take the largest intrinsic size among single-span items occupying
// them; FR tracks then split whatever the fixed tracks and gaps left over.
func resolveTracks(tracks []kir.GridTrack, count int, avail, gap float64, items []gridItem, columns bool) []float64 {
	sizes := make([]float64, count)

	contentSize := func(idx int) float64 {
		best := 0.0
		for i := range items {
			it := &items[i]
			if columns {
				if it.colStart == idx && it.colEnd == idx+1 {
					best = maxf(best, it.intrinsicW)
				}
			} else {
				if it.rowStart == idx && it.rowEnd == idx+1 {
					best = maxf(best, it.intrinsicH)
				}
			}
		}
		return best
	}

	fixed := 0.0
	totalFr := 0.0
	for i := 0; i < count; i++ {
		var t kir.GridTrack
		if i < len(tracks) {
			t = tracks[i]
		} else {
			t = kir.GridTrack{Kind: kir.TrackAuto}
		}
		switch t.Kind {
		case kir.TrackPx:
			sizes[i] = maxf(0, t.Value)
		case kir.TrackPercent:
			sizes[i] = maxf(0, t.Value/100*avail)
		case kir.TrackFr:
			totalFr += maxf(0, t.Value)
			continue
		default:
			// Auto, MinContent, MaxContent size to their occupants.
			sizes[i] = contentSize(i)
		}
		fixed += sizes[i]
	}

	if totalFr > 0 {
		remaining := maxf(0, avail-fixed-gap*float64(count-1))
		for i := 0; i < count; i++ {
			if i < len(tracks) && tracks[i].Kind == kir.TrackFr {
				sizes[i] = remaining * maxf(0, tracks[i].Value) / totalFr
			}
		}
	}
	return sizes
}

func trackOffsets(sizes []float64, gap float64) []float64 {
	offsets := make([]float64, len(sizes))
	pos := 0.0
	for i, s := range sizes {
		offsets[i] = pos
		pos += s + gap
	}
	return offsets
}

func cellRect(content Rect, colOff, colSizes, rowOff, rowSizes []float64, colStart, colEnd, rowStart, rowEnd int, colGap, rowGap float64) Rect {
	x := content.X
	y := content.Y
	w, h := 0.0, 0.0

	if colStart < len(colOff) {
		x += colOff[colStart]
		end := minInt(colEnd, len(colSizes))
		for i := colStart; i < end; i++ {
			w += colSizes[i]
		}
		w += colGap * float64(maxInt(0, end-colStart-1))
	}
	if rowStart < len(rowOff) {
		y += rowOff[rowStart]
		end := minInt(rowEnd, len(rowSizes))
		for i := rowStart; i < end; i++ {
			h += rowSizes[i]
		}
		h += rowGap * float64(maxInt(0, end-rowStart-1))
	}
	return NewRect(x, y, w, h)
}

// placeInCell sizes and aligns one item within its cell. Auto-sized axes
// stretch to fill the cell; explicitly sized axes align per the item's
// self-alignment, falling back to the container's item alignment.
func placeInCell(c *kir.Component, cell Rect, cfg kir.GridConfig, ctx Context, m TextMeasurer) {
	s := effStyle(c)
	l := effLayout(c)

	w := cell.Width
	if !s.Width.IsAuto() && s.Width.Unit != kir.UnitFlex {
		w = Resolve(s.Width, cell.Width, ctx)
	}
	h := cell.Height
	if !s.Height.IsAuto() && s.Height.Unit != kir.UnitFlex {
		h = Resolve(s.Height, cell.Height, ctx)
	}
	w = clampAxis(w, resolveBound(l.MinWidth, cell.Width, ctx), resolveBound(l.MaxWidth, cell.Width, ctx))
	h = clampAxis(h, resolveBound(l.MinHeight, cell.Height, ctx), resolveBound(l.MaxHeight, cell.Height, ctx))

	justify := cfg.JustifyItems
	alignV := cfg.AlignItems
	if s.GridItem.JustifySelf != kir.AlignStart {
		justify = s.GridItem.JustifySelf
	}
	if s.GridItem.AlignSelf != kir.AlignStart {
		alignV = s.GridItem.AlignSelf
	}

	x := cell.X + alignOffset(justify, cell.Width, w)
	y := cell.Y + alignOffset(alignV, cell.Height, h)
	place(c, NewRect(x, y, w, h), ctx, m)
}

func alignOffset(a kir.Alignment, avail, size float64) float64 {
	switch a {
	case kir.AlignCenter:
		return maxf(0, (avail-size)/2)
	case kir.AlignEnd:
		return maxf(0, avail-size)
	}
	return 0
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
