package kir

// Style holds the visual properties of a component. Every field is optional
// in the sense that the NewStyle defaults render as an unstyled box; layout
// reads only the dimension, spacing, and position fields.
type Style struct {
	Width  Dimension
	Height Dimension

	Background Color
	Border     Border

	Margin  Edges
	Padding Edges

	Font Font

	Transform Transform

	Animations  []*Animation
	Transitions []*Transition

	ZIndex  int32
	Visible bool
	Opacity float64

	Position  PositionMode
	AbsoluteX float64
	AbsoluteY float64

	OverflowX Overflow
	OverflowY Overflow

	GridItem   GridItemPlacement
	TextEffect TextEffect
	BoxShadow  BoxShadow
	Filters    []Filter

	Breakpoints []Breakpoint

	ContainerType ContainerType
	ContainerName string

	PseudoStyles []PseudoStyle
	PseudoStates PseudoState // current runtime state bits
}

// NewStyle returns a style with renderable defaults: visible, fully opaque,
// identity transform, auto dimensions, auto grid placement, CSS-standard
// line height.
func NewStyle() *Style {
	return &Style{
		Visible:   true,
		Opacity:   1,
		Transform: IdentityTransform(),
		Font:      Font{LineHeight: 1.5},
		GridItem:  AutoGridItem(),
	}
}

// ActiveBreakpoint returns the first breakpoint whose conditions match the
// given dimensions, or nil.
func (s *Style) ActiveBreakpoint(width, height float64) *Breakpoint {
	for i := range s.Breakpoints {
		if s.Breakpoints[i].Active(width, height) {
			return &s.Breakpoints[i]
		}
	}
	return nil
}

// PseudoOverride returns the first pseudo style whose state bits are all
// active in the current PseudoStates, or nil.
func (s *Style) PseudoOverride() *PseudoStyle {
	for i := range s.PseudoStyles {
		ps := &s.PseudoStyles[i]
		if ps.State != 0 && s.PseudoStates.Has(ps.State) {
			return ps
		}
	}
	return nil
}

// InFlow reports whether a component with this style participates in its
// parent's normal flow.
func (s *Style) InFlow() bool {
	return s == nil || s.Position == PositionRelative
}
