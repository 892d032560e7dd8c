package layout

import (
	"testing"
	"time"

	"github.com/waozixyz/kir"
)

func newGrid(t *testing.T, width, height float64, cols []kir.GridTrack, children int) *kir.Component {
	t.Helper()
	root := kir.New(kir.KindContainer)
	root.Style = kir.NewStyle()
	root.Style.Width = kir.Px(width)
	root.Style.Height = kir.Px(height)
	root.Layout = kir.NewLayoutConfig()
	root.Layout.Mode = kir.LayoutGrid
	root.Layout.Grid.Columns = cols
	// Auto rows size to content; explicit tracks keep cell heights
	// predictable for empty test children.
	root.Layout.Grid.Rows = []kir.GridTrack{kir.PxTrack(height)}
	root.Layout.Grid.AutoFlowRow = true

	for i := 0; i < children; i++ {
		attach(t, root, kir.New(kir.KindContainer))
	}
	return root
}

func TestGridFrTracksShareRemainder(t *testing.T) {
	root := newGrid(t, 250, 100,
		[]kir.GridTrack{kir.FrTrack(1), kir.FrTrack(1), kir.PxTrack(50)}, 3)

	Compute(root, 800, 600)

	// 250 - 50 fixed leaves 200 for two equal FR columns.
	checkBounds(t, root.Children[0], 0, 0, 100, 100)
	checkBounds(t, root.Children[1], 100, 0, 100, 100)
	checkBounds(t, root.Children[2], 200, 0, 50, 100)
}

func TestGridAutoFlowWrapsRows(t *testing.T) {
	root := newGrid(t, 200, 100,
		[]kir.GridTrack{kir.FrTrack(1), kir.FrTrack(1)}, 3)
	root.Layout.Grid.Rows = []kir.GridTrack{kir.PxTrack(40), kir.PxTrack(40)}

	Compute(root, 800, 600)

	checkBounds(t, root.Children[0], 0, 0, 100, 40)
	checkBounds(t, root.Children[1], 100, 0, 100, 40)
	checkBounds(t, root.Children[2], 0, 40, 100, 40)
}

func TestGridGapsReduceFrSpace(t *testing.T) {
	root := newGrid(t, 210, 100,
		[]kir.GridTrack{kir.FrTrack(1), kir.FrTrack(1)}, 2)
	root.Layout.Grid.ColumnGap = 10

	Compute(root, 800, 600)

	checkBounds(t, root.Children[0], 0, 0, 100, 100)
	checkBounds(t, root.Children[1], 110, 0, 100, 100)
}

func TestGridExplicitPlacement(t *testing.T) {
	root := newGrid(t, 300, 90,
		[]kir.GridTrack{kir.FrTrack(1), kir.FrTrack(1), kir.FrTrack(1)}, 0)
	root.Layout.Grid.Rows = []kir.GridTrack{kir.PxTrack(30), kir.PxTrack(30), kir.PxTrack(30)}

	spanner := kir.New(kir.KindContainer)
	spanner.Style = kir.NewStyle()
	spanner.Style.GridItem = kir.GridItemPlacement{
		RowStart: 1, RowEnd: 2,
		ColumnStart: 0, ColumnEnd: 2,
	}
	auto := kir.New(kir.KindContainer)
	attach(t, root, spanner, auto)

	Compute(root, 800, 600)

	// The spanner covers columns 0-1 of row 1; the auto item takes the first
	// free cell, row 0 column 0.
	checkBounds(t, spanner, 0, 30, 200, 30)
	checkBounds(t, auto, 0, 0, 100, 30)
}

func TestGridColumnFlowFillsColumnsFirst(t *testing.T) {
	root := newGrid(t, 200, 80,
		[]kir.GridTrack{kir.FrTrack(1), kir.FrTrack(1)}, 3)
	root.Layout.Grid.Rows = []kir.GridTrack{kir.PxTrack(40), kir.PxTrack(40)}
	root.Layout.Grid.AutoFlowRow = false

	Compute(root, 800, 600)

	// Column flow walks down each column before moving right.
	checkBounds(t, root.Children[0], 0, 0, 100, 40)
	checkBounds(t, root.Children[1], 0, 40, 100, 40)
	checkBounds(t, root.Children[2], 100, 0, 100, 40)
}

func TestGridColumnFlowGrowsImplicitColumns(t *testing.T) {
	// A full explicit column forces the auto item past the last defined
	// column track; placement must create an implicit column and finish.
	root := newGrid(t, 150, 90, []kir.GridTrack{kir.FrTrack(1)}, 0)
	root.Layout.Grid.Rows = []kir.GridTrack{kir.PxTrack(30), kir.PxTrack(30), kir.PxTrack(30)}
	root.Layout.Grid.AutoFlowRow = false

	spanner := kir.New(kir.KindContainer)
	spanner.Style = kir.NewStyle()
	spanner.Style.GridItem = kir.GridItemPlacement{
		RowStart: 0, RowEnd: 3,
		ColumnStart: 0, ColumnEnd: 1,
	}
	auto := kir.New(kir.KindContainer)
	attach(t, root, spanner, auto)

	done := make(chan struct{})
	go func() {
		Compute(root, 800, 600)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Compute did not finish: column flow must grow implicit columns")
	}

	checkBounds(t, spanner, 0, 0, 150, 90)
	// The implicit column has no track definition and no content, so the
	// auto item lands just past the FR column with zero width.
	checkBounds(t, auto, 150, 0, 0, 30)
}

func TestGridDensePackingBackfills(t *testing.T) {
	root := newGrid(t, 200, 80,
		[]kir.GridTrack{kir.FrTrack(1), kir.FrTrack(1)}, 0)
	root.Layout.Grid.Rows = []kir.GridTrack{kir.PxTrack(40), kir.PxTrack(40)}
	root.Layout.Grid.AutoFlowDense = true

	blocker := kir.New(kir.KindContainer)
	blocker.Style = kir.NewStyle()
	blocker.Style.GridItem = kir.GridItemPlacement{
		RowStart: 0, RowEnd: 1,
		ColumnStart: 1, ColumnEnd: 2,
	}
	a := kir.New(kir.KindContainer)
	b := kir.New(kir.KindContainer)
	c := kir.New(kir.KindContainer)
	attach(t, root, blocker, a, b, c)

	Compute(root, 800, 600)

	// Dense packing rescans from the origin, filling every free cell in
	// row-major order around the explicit item.
	checkBounds(t, blocker, 100, 0, 100, 40)
	checkBounds(t, a, 0, 0, 100, 40)
	checkBounds(t, b, 0, 40, 100, 40)
	checkBounds(t, c, 100, 40, 100, 40)
}

func TestGridExplicitPlacementClampsInPlace(t *testing.T) {
	root := newGrid(t, 300, 30,
		[]kir.GridTrack{kir.FrTrack(1), kir.FrTrack(1), kir.FrTrack(1)}, 0)
	root.Layout.Grid.Rows = []kir.GridTrack{kir.PxTrack(30)}

	item := kir.New(kir.KindContainer)
	item.Style = kir.NewStyle()
	item.Style.GridItem = kir.GridItemPlacement{
		RowStart: 0, RowEnd: 1,
		ColumnStart: 2, ColumnEnd: 5,
	}
	attach(t, root, item)

	Compute(root, 800, 600)

	// The span truncates to the last column instead of relocating to 0.
	checkBounds(t, item, 200, 0, 100, 30)
}

func TestGridPercentAndAutoTracks(t *testing.T) {
	root := newGrid(t, 200, 100,
		[]kir.GridTrack{{Kind: kir.TrackPercent, Value: 25}, kir.FrTrack(1)}, 2)

	Compute(root, 800, 600)

	checkBounds(t, root.Children[0], 0, 0, 50, 100)
	checkBounds(t, root.Children[1], 50, 0, 150, 100)
}

func TestGridItemSelfAlignment(t *testing.T) {
	root := newGrid(t, 100, 100, []kir.GridTrack{kir.FrTrack(1)}, 0)

	item := kir.New(kir.KindContainer)
	item.Style = kir.NewStyle()
	item.Style.Width = kir.Px(40)
	item.Style.Height = kir.Px(20)
	item.Style.GridItem.JustifySelf = kir.AlignCenter
	item.Style.GridItem.AlignSelf = kir.AlignEnd
	attach(t, root, item)

	Compute(root, 800, 600)

	checkBounds(t, item, 30, 80, 40, 20)
}
