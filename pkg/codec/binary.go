package codec

import "github.com/waozixyz/kir"

// EncodeBinary serializes a document to the KIRB binary format.
func EncodeBinary(doc *Document) []byte {
	w := &writer{}

	var flags uint8
	if doc.Manifest != nil && doc.Manifest.Len() > 0 {
		flags |= flagManifest
	}
	if doc.Logic != nil && !doc.Logic.Empty() {
		flags |= flagLogic
	}

	w.u32(Magic)
	w.u16(VersionMajor)
	w.u16(VersionMinor)
	w.u32(endiannessCheck)
	w.u8(flags)

	encodeComponent(w, doc.Root)

	if flags&flagManifest != 0 {
		encodeManifest(w, doc.Manifest)
	}
	if flags&flagLogic != 0 {
		encodeLogicBlock(w, doc.Logic)
	}
	return w.buf
}

// DecodeBinary parses KIRB bytes back into a document. Legacy "KRY" files
// decode through a reduced style path and never carry manifest or logic
// sections.
func DecodeBinary(data []byte, opts ...Option) (*Document, error) {
	o := buildOptions(opts)
	r := &reader{data: data, strict: o.strict}

	magic := r.u32()
	legacy := false
	switch magic {
	case Magic:
	case MagicLegacy:
		legacy = true
	default:
		return nil, &DecodeError{Offset: 0, Message: "bad magic number"}
	}

	major := r.u16()
	r.u16() // minor: forward-compatible within a major version
	if major > VersionMajor {
		return nil, &DecodeError{Offset: 4, Message: "unsupported format version"}
	}
	if check := r.u32(); check != endiannessCheck && r.err == nil {
		return nil, &DecodeError{Offset: 8, Message: "endianness mismatch"}
	}

	var flags uint8
	if !legacy {
		flags = r.u8()
	}

	doc := &Document{}
	doc.Root = decodeComponent(r, legacy)
	if doc.Root != nil {
		doc.Root.Adopt()
		reserveIDs(doc.Root)
	}

	if flags&flagManifest != 0 {
		doc.Manifest = decodeManifest(r)
	}
	if flags&flagLogic != 0 {
		doc.Logic = decodeLogicBlock(r)
	}

	if r.err != nil {
		return nil, r.err
	}
	return doc, nil
}

func reserveIDs(root *kir.Component) {
	root.Walk(func(c *kir.Component) bool {
		kir.ReserveID(c.ID)
		return true
	})
}

func encodeComponent(w *writer, c *kir.Component) {
	if c == nil {
		w.u8(0)
		return
	}
	w.u8(1)

	w.u32(c.ID)
	w.u8(uint8(c.Kind))
	w.str(c.Tag)
	w.str(c.Text)
	w.str(encodeCustomData(c.Data))

	encodeStyle(w, c.Style)
	encodeLayoutConfig(w, c.Layout)

	w.u32(uint32(len(c.Events)))
	for _, ev := range c.Events {
		w.u8(1)
		w.u8(uint8(ev.Type))
		w.str(ev.Handler)
		w.str(ev.Data)
	}

	w.u32(uint32(len(c.Children)))
	for _, ch := range c.Children {
		encodeComponent(w, ch)
	}
}

// maxComponentCount bounds child/event counts so corrupt length prefixes
// cannot drive allocation. Strict mode fails instead of clamping.
const maxComponentCount = 1 << 20

func decodeComponent(r *reader, legacy bool) *kir.Component {
	if !r.bool() || r.err != nil {
		return nil
	}

	c := &kir.Component{}
	c.ID = r.u32()
	c.Kind = kir.Kind(r.enum(uint8(kir.KindCustom), "component kind"))
	c.Tag = r.str()
	c.Text = r.str()
	custom := r.str()

	c.Style = decodeStyle(r, legacy)
	if !legacy {
		c.Layout = decodeLayoutConfig(r)
	}
	c.Data = decodeCustomData(c.Kind, custom)

	eventCount := r.clampCount(r.u32(), "event count")
	for i := uint32(0); i < eventCount && r.err == nil; i++ {
		if !r.bool() {
			continue
		}
		ev := kir.Event{
			Type:    kir.EventType(r.enum(uint8(kir.EventCustom), "event type")),
			Handler: r.str(),
			Data:    r.str(),
		}
		c.Events = append(c.Events, ev)
	}

	childCount := r.clampCount(r.u32(), "child count")
	for i := uint32(0); i < childCount && r.err == nil; i++ {
		if ch := decodeComponent(r, legacy); ch != nil {
			c.Children = append(c.Children, ch)
		}
	}

	if r.err != nil {
		return nil
	}
	return c
}

func (r *reader) clampCount(n uint32, what string) uint32 {
	if n > maxComponentCount {
		if r.strict {
			r.fail("%s %d exceeds limit", what, n)
		}
		return 0
	}
	return n
}

func encodeDimension(w *writer, d kir.Dimension) {
	w.u8(uint8(d.Unit))
	w.f32(d.Value)
}

func decodeDimension(r *reader) kir.Dimension {
	return kir.Dimension{
		Unit:  kir.Unit(r.enum(uint8(kir.UnitEm), "dimension unit")),
		Value: r.f32(),
	}
}

func encodeColor(w *writer, c kir.Color) {
	w.u8(uint8(c.Kind))
	if c.Kind == kir.ColorGradient {
		encodeGradient(w, c.Gradient)
		return
	}
	if c.Kind == kir.ColorVarRef {
		// The variable index occupies the four-byte payload slot.
		w.u8(uint8(c.VarIndex))
		w.u8(uint8(c.VarIndex >> 8))
		w.u8(0)
		w.u8(0)
		return
	}
	w.u8(c.RGBA.R)
	w.u8(c.RGBA.G)
	w.u8(c.RGBA.B)
	w.u8(c.RGBA.A)
}

func decodeColor(r *reader) kir.Color {
	kind := kir.ColorKind(r.enum(uint8(kir.ColorVarRef), "color kind"))
	if kind == kir.ColorGradient {
		g := decodeGradient(r)
		if g == nil {
			return kir.Transparent()
		}
		return kir.GradientColor(g)
	}
	b0, b1, b2, b3 := r.u8(), r.u8(), r.u8(), r.u8()
	if kind == kir.ColorVarRef {
		return kir.VarRef(uint16(b0) | uint16(b1)<<8)
	}
	return kir.Color{Kind: kind, RGBA: kir.RGBA{R: b0, G: b1, B: b2, A: b3}}
}

func encodeGradient(w *writer, g *kir.Gradient) {
	if g == nil {
		w.u8(0)
		return
	}
	w.u8(1)
	w.u8(uint8(g.Kind))
	w.f32(g.Angle)
	w.f32(g.CenterX)
	w.f32(g.CenterY)

	n := len(g.Stops)
	if n > kir.MaxGradientStops {
		n = kir.MaxGradientStops
	}
	w.u8(uint8(n))
	for _, s := range g.Stops[:n] {
		w.f32(s.Position)
		w.u8(s.Color.R)
		w.u8(s.Color.G)
		w.u8(s.Color.B)
		w.u8(s.Color.A)
	}
}

func decodeGradient(r *reader) *kir.Gradient {
	if !r.bool() {
		return nil
	}
	g := &kir.Gradient{
		Kind:    kir.GradientKind(r.enum(uint8(kir.GradientConic), "gradient kind")),
		Angle:   r.f32(),
		CenterX: r.f32(),
		CenterY: r.f32(),
	}
	n := int(r.u8())
	if n > kir.MaxGradientStops {
		if r.strict {
			r.fail("gradient stop count %d exceeds %d", n, kir.MaxGradientStops)
			return nil
		}
		n = kir.MaxGradientStops
	}
	for i := 0; i < n && r.err == nil; i++ {
		pos := r.f32()
		c := kir.RGBA{R: r.u8(), G: r.u8(), B: r.u8(), A: r.u8()}
		g.Stops = append(g.Stops, kir.GradientStop{Position: pos, Color: c})
	}
	return g
}

func encodeEdges(w *writer, e kir.Edges) {
	w.f32(e.Top)
	w.f32(e.Right)
	w.f32(e.Bottom)
	w.f32(e.Left)
}

func decodeEdges(r *reader) kir.Edges {
	return kir.Edges{Top: r.f32(), Right: r.f32(), Bottom: r.f32(), Left: r.f32()}
}

func encodeTransform(w *writer, t kir.Transform) {
	w.f32(t.TranslateX)
	w.f32(t.TranslateY)
	w.f32(t.ScaleX)
	w.f32(t.ScaleY)
	w.f32(t.Rotate)
}

func decodeTransform(r *reader) kir.Transform {
	return kir.Transform{
		TranslateX: r.f32(),
		TranslateY: r.f32(),
		ScaleX:     r.f32(),
		ScaleY:     r.f32(),
		Rotate:     r.f32(),
	}
}
