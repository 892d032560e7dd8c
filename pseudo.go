package kir

// PseudoState is a bitmask of interaction conditions a component can be in.
type PseudoState uint32

const (
	StateHover PseudoState = 1 << iota
	StateActive
	StateFocus
	StateDisabled
	StateChecked
	StateFirstChild
	StateLastChild
	StateVisited
)

// Has reports whether all bits in q are set.
func (s PseudoState) Has(q PseudoState) bool { return s&q == q }

// PseudoStyle is a sparse style override applied while every bit in State is
// active. Each Has flag marks the matching field as present; unset fields
// leave the base style untouched.
type PseudoStyle struct {
	State       PseudoState
	Background  Color
	TextColor   Color
	BorderColor Color
	Opacity     float64
	Transform   Transform

	HasBackground  bool
	HasTextColor   bool
	HasBorderColor bool
	HasOpacity     bool
	HasTransform   bool
}
