package kir

// QueryKind is the comparison a responsive breakpoint condition performs.
type QueryKind uint8

const (
	QueryMinWidth QueryKind = iota
	QueryMaxWidth
	QueryMinHeight
	QueryMaxHeight
)

// QueryCondition is one threshold test against the viewport or container.
type QueryCondition struct {
	Kind  QueryKind
	Value float64 // pixels
}

// Matches evaluates the condition against the given dimensions.
func (q QueryCondition) Matches(width, height float64) bool {
	switch q.Kind {
	case QueryMinWidth:
		return width >= q.Value
	case QueryMaxWidth:
		return width <= q.Value
	case QueryMinHeight:
		return height >= q.Value
	case QueryMaxHeight:
		return height <= q.Value
	}
	return false
}

// Breakpoint is a conditional style override. It activates when every
// condition matches, and overrides only the fields it carries.
type Breakpoint struct {
	Conditions []QueryCondition
	Width      Dimension
	Height     Dimension
	Visible    bool
	Opacity    float64
	LayoutMode LayoutMode
	HasLayout  bool
}

// Active reports whether all conditions hold for the given dimensions. A
// breakpoint with no conditions never activates.
func (b *Breakpoint) Active(width, height float64) bool {
	if len(b.Conditions) == 0 {
		return false
	}
	for _, c := range b.Conditions {
		if !c.Matches(width, height) {
			return false
		}
	}
	return true
}

// ContainerType opts a component into container queries: descendants'
// breakpoints measure this box instead of the viewport.
type ContainerType uint8

const (
	ContainerNone ContainerType = iota
	ContainerInlineSize
	ContainerSize
)
