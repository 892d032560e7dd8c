package codec

import "github.com/waozixyz/kir"

// encodeStyle writes the style record. Field order is fixed by the format:
// dimensions, colors, border, spacing, typography, transform, animations,
// transitions, then the V2 extensions through the pseudo-state bits.
func encodeStyle(w *writer, s *kir.Style) {
	if s == nil {
		w.u8(0)
		return
	}
	w.u8(1)

	encodeDimension(w, s.Width)
	encodeDimension(w, s.Height)

	encodeColor(w, s.Background)
	encodeColor(w, s.Border.Color)

	w.f32(s.Border.Width)
	encodeColor(w, s.Border.Color)
	w.u8(uint8(clampU8(s.Border.Radius)))

	encodeEdges(w, s.Margin)
	encodeEdges(w, s.Padding)

	w.f32(s.Font.Size)
	encodeColor(w, s.Font.Color)
	w.bool(s.Font.Bold)
	w.bool(s.Font.Italic)
	w.str(s.Font.Family)
	w.u16(s.Font.Weight)
	w.f32(s.Font.LineHeight)
	w.f32(s.Font.LetterSpacing)
	w.f32(s.Font.WordSpacing)
	w.u8(uint8(s.Font.Align))
	w.u8(s.Font.Decoration)

	encodeTransform(w, s.Transform)

	w.u32(uint32(len(s.Animations)))
	for _, a := range s.Animations {
		encodeAnimation(w, a)
	}
	w.u32(uint32(len(s.Transitions)))
	for _, t := range s.Transitions {
		encodeTransition(w, t)
	}

	w.u32(uint32(s.ZIndex))
	w.bool(s.Visible)
	w.f32(s.Opacity)

	w.u8(uint8(s.Position))
	w.f32(s.AbsoluteX)
	w.f32(s.AbsoluteY)

	w.u8(uint8(s.OverflowX))
	w.u8(uint8(s.OverflowY))

	encodeGridItem(w, s.GridItem)
	encodeTextEffect(w, s.TextEffect)
	encodeBoxShadow(w, s.BoxShadow)

	w.u8(uint8(len(s.Filters)))
	for _, f := range s.Filters {
		w.u8(uint8(f.Kind))
		w.f32(f.Value)
	}

	w.u8(uint8(len(s.Breakpoints)))
	for i := range s.Breakpoints {
		encodeBreakpoint(w, &s.Breakpoints[i])
	}

	w.u8(uint8(s.ContainerType))
	w.str(s.ContainerName)

	w.u8(uint8(len(s.PseudoStyles)))
	for i := range s.PseudoStyles {
		encodePseudoStyle(w, &s.PseudoStyles[i])
	}

	w.u32(uint32(s.PseudoStates))
}

// decodeStyle reads a style record. Legacy files stop after the transform
// block; every later field keeps its NewStyle default.
func decodeStyle(r *reader, legacy bool) *kir.Style {
	if !r.bool() || r.err != nil {
		return nil
	}
	s := kir.NewStyle()

	s.Width = decodeDimension(r)
	s.Height = decodeDimension(r)

	s.Background = decodeColor(r)
	decodeColor(r) // duplicate border color slot; the border record below wins
	s.Border.Width = r.f32()
	s.Border.Color = decodeColor(r)
	s.Border.Radius = float64(r.u8())

	s.Margin = decodeEdges(r)
	s.Padding = decodeEdges(r)

	s.Font.Size = r.f32()
	s.Font.Color = decodeColor(r)
	s.Font.Bold = r.bool()
	s.Font.Italic = r.bool()
	s.Font.Family = r.str()
	s.Font.Weight = r.u16()
	s.Font.LineHeight = r.f32()
	s.Font.LetterSpacing = r.f32()
	s.Font.WordSpacing = r.f32()
	s.Font.Align = kir.TextAlign(r.enum(uint8(kir.TextAlignJustify), "text align"))
	s.Font.Decoration = r.u8()

	s.Transform = decodeTransform(r)

	if legacy {
		return s
	}

	animCount := r.clampCount(r.u32(), "animation count")
	for i := uint32(0); i < animCount && r.err == nil; i++ {
		if a := decodeAnimation(r); a != nil {
			s.Animations = append(s.Animations, a)
		}
	}
	transCount := r.clampCount(r.u32(), "transition count")
	for i := uint32(0); i < transCount && r.err == nil; i++ {
		if t := decodeTransition(r); t != nil {
			s.Transitions = append(s.Transitions, t)
		}
	}

	s.ZIndex = int32(r.u32())
	s.Visible = r.bool()
	s.Opacity = r.f32()

	s.Position = kir.PositionMode(r.enum(uint8(kir.PositionFixed), "position mode"))
	s.AbsoluteX = r.f32()
	s.AbsoluteY = r.f32()

	s.OverflowX = kir.Overflow(r.enum(uint8(kir.OverflowAuto), "overflow"))
	s.OverflowY = kir.Overflow(r.enum(uint8(kir.OverflowAuto), "overflow"))

	s.GridItem = decodeGridItem(r)
	s.TextEffect = decodeTextEffect(r)
	s.BoxShadow = decodeBoxShadow(r)

	filterCount := int(r.u8())
	for i := 0; i < filterCount && r.err == nil; i++ {
		s.Filters = append(s.Filters, kir.Filter{
			Kind:  kir.FilterKind(r.enum(uint8(kir.FilterOpacity), "filter kind")),
			Value: r.f32(),
		})
	}

	bpCount := int(r.u8())
	for i := 0; i < bpCount && r.err == nil; i++ {
		s.Breakpoints = append(s.Breakpoints, decodeBreakpoint(r))
	}

	s.ContainerType = kir.ContainerType(r.enum(uint8(kir.ContainerSize), "container type"))
	s.ContainerName = r.str()

	psCount := int(r.u8())
	for i := 0; i < psCount && r.err == nil; i++ {
		s.PseudoStyles = append(s.PseudoStyles, decodePseudoStyle(r))
	}

	s.PseudoStates = kir.PseudoState(r.u32())

	if r.err != nil {
		return nil
	}
	return s
}

func clampU8(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}

func encodeGridItem(w *writer, g kir.GridItemPlacement) {
	w.u16(uint16(g.RowStart))
	w.u16(uint16(g.RowEnd))
	w.u16(uint16(g.ColumnStart))
	w.u16(uint16(g.ColumnEnd))
	w.u8(uint8(g.JustifySelf))
	w.u8(uint8(g.AlignSelf))
}

func decodeGridItem(r *reader) kir.GridItemPlacement {
	return kir.GridItemPlacement{
		RowStart:    int16(r.u16()),
		RowEnd:      int16(r.u16()),
		ColumnStart: int16(r.u16()),
		ColumnEnd:   int16(r.u16()),
		JustifySelf: kir.Alignment(r.enum(uint8(kir.AlignStretch), "justify-self")),
		AlignSelf:   kir.Alignment(r.enum(uint8(kir.AlignStretch), "align-self")),
	}
}

func encodeTextShadow(w *writer, t kir.TextShadow) {
	w.f32(t.OffsetX)
	w.f32(t.OffsetY)
	w.f32(t.BlurRadius)
	encodeColor(w, t.Color)
	w.bool(t.Enabled)
}

func decodeTextShadow(r *reader) kir.TextShadow {
	return kir.TextShadow{
		OffsetX:    r.f32(),
		OffsetY:    r.f32(),
		BlurRadius: r.f32(),
		Color:      decodeColor(r),
		Enabled:    r.bool(),
	}
}

func encodeTextEffect(w *writer, t kir.TextEffect) {
	w.u8(uint8(t.Overflow))
	w.u8(uint8(t.Fade))
	w.f32(t.FadeLength)
	encodeTextShadow(w, t.Shadow)
	encodeDimension(w, t.MaxWidth)
	w.u8(uint8(t.Direction))
	w.str(t.Language)
}

func decodeTextEffect(r *reader) kir.TextEffect {
	return kir.TextEffect{
		Overflow:   kir.Overflow(r.enum(uint8(kir.OverflowAuto), "text overflow")),
		Fade:       kir.FadeKind(r.enum(uint8(kir.FadeBottom), "fade kind")),
		FadeLength: r.f32(),
		Shadow:     decodeTextShadow(r),
		MaxWidth:   decodeDimension(r),
		Direction:  kir.TextDirection(r.enum(uint8(kir.TextDirRTL), "text direction")),
		Language:   r.str(),
	}
}

func encodeBoxShadow(w *writer, b kir.BoxShadow) {
	w.f32(b.OffsetX)
	w.f32(b.OffsetY)
	w.f32(b.BlurRadius)
	w.f32(b.SpreadRadius)
	encodeColor(w, b.Color)
	w.bool(b.Inset)
	w.bool(b.Enabled)
}

func decodeBoxShadow(r *reader) kir.BoxShadow {
	return kir.BoxShadow{
		OffsetX:      r.f32(),
		OffsetY:      r.f32(),
		BlurRadius:   r.f32(),
		SpreadRadius: r.f32(),
		Color:        decodeColor(r),
		Inset:        r.bool(),
		Enabled:      r.bool(),
	}
}

func encodeAnimation(w *writer, a *kir.Animation) {
	w.str(a.Name)
	w.f32(a.Duration)
	w.f32(a.Delay)
	w.u32(uint32(a.Iterations))
	w.bool(a.Alternate)
	w.u8(uint8(a.Easing))

	n := len(a.Keyframes)
	if n > 255 {
		n = 255
	}
	w.u8(uint8(n))
	for i := range a.Keyframes[:n] {
		encodeKeyframe(w, &a.Keyframes[i])
	}
}

func decodeAnimation(r *reader) *kir.Animation {
	a := &kir.Animation{
		Name:       r.str(),
		Duration:   r.f32(),
		Delay:      r.f32(),
		Iterations: int32(r.u32()),
		Alternate:  r.bool(),
		Easing:     kir.Easing(r.enum(uint8(kir.EaseOutBounce), "easing")),
	}
	n := int(r.u8())
	for i := 0; i < n && r.err == nil; i++ {
		a.Keyframes = append(a.Keyframes, decodeKeyframe(r))
	}
	if r.err != nil {
		return nil
	}
	return a
}

func encodeKeyframe(w *writer, k *kir.Keyframe) {
	w.f32(k.Offset)
	w.u8(uint8(k.Easing))

	n := len(k.Properties)
	if n > 255 {
		n = 255
	}
	w.u8(uint8(n))
	for _, p := range k.Properties[:n] {
		w.u8(uint8(p.Property))
		w.f32(p.Value)
		encodeColor(w, p.Color)
		w.bool(p.Set)
	}
}

func decodeKeyframe(r *reader) kir.Keyframe {
	k := kir.Keyframe{
		Offset: r.f32(),
		Easing: kir.Easing(r.enum(uint8(kir.EaseOutBounce), "easing")),
	}
	n := int(r.u8())
	for i := 0; i < n && r.err == nil; i++ {
		k.Properties = append(k.Properties, kir.KeyframeProp{
			Property: kir.AnimProperty(r.enum(uint8(kir.AnimCustom), "animation property")),
			Value:    r.f32(),
			Color:    decodeColor(r),
			Set:      r.bool(),
		})
	}
	return k
}

func encodeTransition(w *writer, t *kir.Transition) {
	w.u8(uint8(t.Property))
	w.f32(t.Duration)
	w.f32(t.Delay)
	w.u8(uint8(t.Easing))
	w.u32(uint32(t.TriggerState))
}

func decodeTransition(r *reader) *kir.Transition {
	t := &kir.Transition{
		Property:     kir.AnimProperty(r.enum(uint8(kir.AnimCustom), "animation property")),
		Duration:     r.f32(),
		Delay:        r.f32(),
		Easing:       kir.Easing(r.enum(uint8(kir.EaseOutBounce), "easing")),
		TriggerState: kir.PseudoState(r.u32()),
	}
	if r.err != nil {
		return nil
	}
	return t
}

func encodeBreakpoint(w *writer, b *kir.Breakpoint) {
	n := len(b.Conditions)
	if n > 255 {
		n = 255
	}
	w.u8(uint8(n))
	for _, c := range b.Conditions[:n] {
		w.u8(uint8(c.Kind))
		w.f32(c.Value)
	}

	encodeDimension(w, b.Width)
	encodeDimension(w, b.Height)
	w.bool(b.Visible)
	w.f32(b.Opacity)
	w.u8(uint8(b.LayoutMode))
	w.bool(b.HasLayout)
}

func decodeBreakpoint(r *reader) kir.Breakpoint {
	var b kir.Breakpoint
	n := int(r.u8())
	for i := 0; i < n && r.err == nil; i++ {
		b.Conditions = append(b.Conditions, kir.QueryCondition{
			Kind:  kir.QueryKind(r.enum(uint8(kir.QueryMaxHeight), "query kind")),
			Value: r.f32(),
		})
	}
	b.Width = decodeDimension(r)
	b.Height = decodeDimension(r)
	b.Visible = r.bool()
	b.Opacity = r.f32()
	b.LayoutMode = kir.LayoutMode(r.enum(uint8(kir.LayoutBlock), "layout mode"))
	b.HasLayout = r.bool()
	return b
}

func encodePseudoStyle(w *writer, p *kir.PseudoStyle) {
	w.u32(uint32(p.State))
	encodeColor(w, p.Background)
	encodeColor(w, p.TextColor)
	encodeColor(w, p.BorderColor)
	w.f32(p.Opacity)
	encodeTransform(w, p.Transform)
	w.bool(p.HasBackground)
	w.bool(p.HasTextColor)
	w.bool(p.HasBorderColor)
	w.bool(p.HasOpacity)
	w.bool(p.HasTransform)
}

func decodePseudoStyle(r *reader) kir.PseudoStyle {
	return kir.PseudoStyle{
		State:          kir.PseudoState(r.u32()),
		Background:     decodeColor(r),
		TextColor:      decodeColor(r),
		BorderColor:    decodeColor(r),
		Opacity:        r.f32(),
		Transform:      decodeTransform(r),
		HasBackground:  r.bool(),
		HasTextColor:   r.bool(),
		HasBorderColor: r.bool(),
		HasOpacity:     r.bool(),
		HasTransform:   r.bool(),
	}
}
