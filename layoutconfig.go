package kir

// LayoutMode selects the algorithm used to place a container's children.
type LayoutMode uint8

const (
	LayoutFlex LayoutMode = iota
	LayoutGrid
	LayoutBlock
)

// Alignment positions children along an axis. It is shared by flex
// justify/align and grid content/item alignment.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignSpaceBetween
	AlignSpaceAround
	AlignSpaceEvenly
	AlignStretch
)

// FlexConfig tunes flexbox distribution. Direction comes from the component
// kind (Row, Column) rather than being stored here.
type FlexConfig struct {
	Grow    float64
	Shrink  float64
	Wrap    bool
	Gap     float64
	Justify Alignment // main axis content distribution
	Align   Alignment // cross axis child alignment
}

// TrackKind types one grid track.
type TrackKind uint8

const (
	TrackPx TrackKind = iota
	TrackPercent
	TrackFr
	TrackAuto
	TrackMinContent
	TrackMaxContent
)

// GridTrack is one row or column definition.
type GridTrack struct {
	Kind  TrackKind
	Value float64 // pixels, percent, or fraction weight depending on Kind
}

// FrTrack is a fractional track with the given weight.
func FrTrack(weight float64) GridTrack { return GridTrack{Kind: TrackFr, Value: weight} }

// PxTrack is a fixed pixel track.
func PxTrack(px float64) GridTrack { return GridTrack{Kind: TrackPx, Value: px} }

// GridConfig describes a grid container.
type GridConfig struct {
	Rows           []GridTrack
	Columns        []GridTrack
	RowGap         float64
	ColumnGap      float64
	JustifyItems   Alignment
	AlignItems     Alignment
	JustifyContent Alignment
	AlignContent   Alignment
	AutoFlowRow    bool // row-major auto placement when true
	AutoFlowDense  bool // backfill earlier holes
}

// AutoPlacement marks a grid line index as auto-assigned.
const AutoPlacement = -1

// GridItemPlacement positions one child within its grid parent. Line indices
// are 0-based; AutoPlacement defers to auto-flow.
type GridItemPlacement struct {
	RowStart    int16
	RowEnd      int16
	ColumnStart int16
	ColumnEnd   int16
	JustifySelf Alignment
	AlignSelf   Alignment
}

// AutoGridItem returns a placement fully deferred to auto-flow.
func AutoGridItem() GridItemPlacement {
	return GridItemPlacement{
		RowStart:    AutoPlacement,
		RowEnd:      AutoPlacement,
		ColumnStart: AutoPlacement,
		ColumnEnd:   AutoPlacement,
	}
}

// IsAuto reports whether no explicit grid lines are set.
func (p GridItemPlacement) IsAuto() bool {
	return p.RowStart == AutoPlacement && p.ColumnStart == AutoPlacement
}

// LayoutConfig holds per-component sizing and placement rules. All fields are
// optional; the zero value means flex mode with no constraints.
type LayoutConfig struct {
	Mode LayoutMode

	MinWidth  Dimension
	MinHeight Dimension
	MaxWidth  Dimension
	MaxHeight Dimension

	Flex FlexConfig
	Grid GridConfig

	Margin  Edges
	Padding Edges

	AspectRatio float64 // width/height, 0 = unconstrained
}

// NewLayoutConfig returns a LayoutConfig with defaults: flex mode, shrink
// weight 1, unconstrained min/max.
func NewLayoutConfig() *LayoutConfig {
	return &LayoutConfig{Flex: FlexConfig{Shrink: 1}}
}
