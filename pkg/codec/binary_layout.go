package codec

import "github.com/waozixyz/kir"

func encodeLayoutConfig(w *writer, l *kir.LayoutConfig) {
	if l == nil {
		w.u8(0)
		return
	}
	w.u8(1)

	w.u8(uint8(l.Mode))
	encodeDimension(w, l.MinWidth)
	encodeDimension(w, l.MinHeight)
	encodeDimension(w, l.MaxWidth)
	encodeDimension(w, l.MaxHeight)

	encodeFlex(w, l.Flex)
	encodeGrid(w, l.Grid)

	encodeEdges(w, l.Margin)
	encodeEdges(w, l.Padding)
	w.f32(l.AspectRatio)
}

func decodeLayoutConfig(r *reader) *kir.LayoutConfig {
	if !r.bool() || r.err != nil {
		return nil
	}
	l := &kir.LayoutConfig{}

	l.Mode = kir.LayoutMode(r.enum(uint8(kir.LayoutBlock), "layout mode"))
	l.MinWidth = decodeDimension(r)
	l.MinHeight = decodeDimension(r)
	l.MaxWidth = decodeDimension(r)
	l.MaxHeight = decodeDimension(r)

	l.Flex = decodeFlex(r)
	l.Grid = decodeGrid(r)

	l.Margin = decodeEdges(r)
	l.Padding = decodeEdges(r)
	l.AspectRatio = r.f32()

	if r.err != nil {
		return nil
	}
	return l
}

// Flex records carry three trailing direction/bidi bytes the data model
// derives from the component kind instead; they encode as zero and are
// skipped on decode.
func encodeFlex(w *writer, f kir.FlexConfig) {
	w.bool(f.Wrap)
	w.u32(uint32(clampNonNeg(f.Gap)))
	w.u8(uint8(f.Align))
	w.u8(uint8(f.Justify))
	w.u8(uint8(clampU8(f.Grow)))
	w.u8(uint8(clampU8(f.Shrink)))
	w.u8(0)
	w.u8(0)
	w.u8(0)
}

func decodeFlex(r *reader) kir.FlexConfig {
	f := kir.FlexConfig{
		Wrap:    r.bool(),
		Gap:     float64(r.u32()),
		Align:   kir.Alignment(r.enum(uint8(kir.AlignStretch), "align")),
		Justify: kir.Alignment(r.enum(uint8(kir.AlignStretch), "justify")),
		Grow:    float64(r.u8()),
		Shrink:  float64(r.u8()),
	}
	r.u8()
	r.u8()
	r.u8()
	return f
}

func encodeGrid(w *writer, g kir.GridConfig) {
	encodeTracks(w, g.Rows)
	encodeTracks(w, g.Columns)

	w.f32(g.RowGap)
	w.f32(g.ColumnGap)
	w.u8(uint8(g.JustifyItems))
	w.u8(uint8(g.AlignItems))
	w.u8(uint8(g.JustifyContent))
	w.u8(uint8(g.AlignContent))
	w.bool(g.AutoFlowRow)
	w.bool(g.AutoFlowDense)
}

func decodeGrid(r *reader) kir.GridConfig {
	g := kir.GridConfig{
		Rows:    decodeTracks(r),
		Columns: decodeTracks(r),
	}
	g.RowGap = r.f32()
	g.ColumnGap = r.f32()
	g.JustifyItems = kir.Alignment(r.enum(uint8(kir.AlignStretch), "justify-items"))
	g.AlignItems = kir.Alignment(r.enum(uint8(kir.AlignStretch), "align-items"))
	g.JustifyContent = kir.Alignment(r.enum(uint8(kir.AlignStretch), "justify-content"))
	g.AlignContent = kir.Alignment(r.enum(uint8(kir.AlignStretch), "align-content"))
	g.AutoFlowRow = r.bool()
	g.AutoFlowDense = r.bool()
	return g
}

func encodeTracks(w *writer, tracks []kir.GridTrack) {
	n := len(tracks)
	if n > 255 {
		n = 255
	}
	w.u8(uint8(n))
	for _, t := range tracks[:n] {
		w.u8(uint8(t.Kind))
		w.f32(t.Value)
	}
}

func decodeTracks(r *reader) []kir.GridTrack {
	n := int(r.u8())
	var tracks []kir.GridTrack
	for i := 0; i < n && r.err == nil; i++ {
		tracks = append(tracks, kir.GridTrack{
			Kind:  kir.TrackKind(r.enum(uint8(kir.TrackMaxContent), "track kind")),
			Value: r.f32(),
		})
	}
	return tracks
}

func clampNonNeg(v float64) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
