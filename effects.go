package kir

// Edges holds spacing for four sides of a box, in pixels.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(v float64) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float64 { return e.Top + e.Bottom }

// IsZero reports whether all four sides are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

// Border describes the box border.
type Border struct {
	Width  float64
	Radius float64
	Color  Color
}

// BoxShadow is a CSS-style drop shadow around the border box.
type BoxShadow struct {
	OffsetX      float64
	OffsetY      float64
	BlurRadius   float64
	SpreadRadius float64
	Color        Color
	Inset        bool
	Enabled      bool
}

// TextShadow is a drop shadow behind rendered text.
type TextShadow struct {
	OffsetX    float64
	OffsetY    float64
	BlurRadius float64
	Color      Color
	Enabled    bool
}

// FilterKind selects a visual filter operation.
type FilterKind uint8

const (
	FilterBlur FilterKind = iota
	FilterBrightness
	FilterContrast
	FilterGrayscale
	FilterSaturate
	FilterSepia
	FilterInvert
	FilterHueRotate
	FilterOpacity
)

// Filter is one typed filter operation with a single float parameter.
// Filters apply in list order.
type Filter struct {
	Kind  FilterKind
	Value float64
}

// Overflow controls how content exceeding the box is handled, per axis.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
)

// PositionMode removes a component from normal flow when non-relative.
type PositionMode uint8

const (
	PositionRelative PositionMode = iota
	PositionAbsolute
	PositionFixed
)

// FadeKind selects the text-fade direction.
type FadeKind uint8

const (
	FadeNone FadeKind = iota
	FadeRight
	FadeBottom
)

// TextDirection controls horizontal text flow.
type TextDirection uint8

const (
	TextDirAuto TextDirection = iota
	TextDirLTR
	TextDirRTL
)

// TextEffect groups per-component text rendering controls.
type TextEffect struct {
	Overflow   Overflow
	Fade       FadeKind
	FadeLength float64
	Shadow     TextShadow
	MaxWidth   Dimension
	Direction  TextDirection
	Language   string
}

// Transform is a 2D affine transform in the order translate, scale, rotate.
type Transform struct {
	TranslateX float64
	TranslateY float64
	ScaleX     float64
	ScaleY     float64
	Rotate     float64 // degrees
}

// IdentityTransform returns the no-op transform.
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// IsIdentity reports whether the transform changes nothing.
func (t Transform) IsIdentity() bool {
	return t.TranslateX == 0 && t.TranslateY == 0 &&
		t.ScaleX == 1 && t.ScaleY == 1 && t.Rotate == 0
}
