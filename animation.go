package kir

// Easing selects an interpolation curve for animations and transitions.
type Easing uint8

const (
	EaseLinear Easing = iota
	EaseIn
	EaseOut
	EaseInOut
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInBounce
	EaseOutBounce
)

// AnimProperty names the style property a keyframe or transition animates.
type AnimProperty uint8

const (
	AnimOpacity AnimProperty = iota
	AnimTranslateX
	AnimTranslateY
	AnimScaleX
	AnimScaleY
	AnimRotate
	AnimWidth
	AnimHeight
	AnimBackgroundColor
	AnimCustom
)

// KeyframeProp is one animated property within a keyframe. Color properties
// carry Color; everything else carries Value. Set distinguishes an
// explicit zero from an absent property.
type KeyframeProp struct {
	Property AnimProperty
	Value    float64
	Color    Color
	Set      bool
}

// Keyframe is a point on an animation timeline. Offset is a fraction of the
// duration in [0, 1].
type Keyframe struct {
	Offset     float64
	Easing     Easing
	Properties []KeyframeProp
}

// InfiniteIterations makes an animation repeat until removed.
const InfiniteIterations = -1

// Animation is a named, keyframed timeline attached to a style.
type Animation struct {
	Name       string
	Duration   float64 // seconds
	Delay      float64
	Iterations int32 // InfiniteIterations for unbounded
	Alternate  bool
	Easing     Easing // default for keyframes without their own
	Keyframes  []Keyframe
}

// Transition animates a single property when the given pseudo-state bits
// become active.
type Transition struct {
	Property     AnimProperty
	Duration     float64
	Delay        float64
	Easing       Easing
	TriggerState PseudoState
}
