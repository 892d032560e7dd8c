package layout

import (
	"math"
	"testing"

	"github.com/waozixyz/kir"
)

func attach(t *testing.T, parent *kir.Component, children ...*kir.Component) {
	t.Helper()
	for _, ch := range children {
		if err := parent.AddChild(ch); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func checkBounds(t *testing.T, c *kir.Component, x, y, w, h float64) {
	t.Helper()
	b := c.Bounds
	if !b.Valid {
		t.Fatalf("%s #%d: bounds not valid", c.Kind, c.ID)
	}
	if !almostEqual(b.X, x) || !almostEqual(b.Y, y) || !almostEqual(b.Width, w) || !almostEqual(b.Height, h) {
		t.Errorf("%s #%d: bounds (%g,%g %gx%g), want (%g,%g %gx%g)",
			c.Kind, c.ID, b.X, b.Y, b.Width, b.Height, x, y, w, h)
	}
}

func TestColumnAutoHeightSumsChildren(t *testing.T) {
	root := kir.New(kir.KindColumn)
	root.Style = kir.NewStyle()
	root.Style.Width = kir.Px(600)
	root.Style.Padding = kir.EdgeAll(20)

	for i := 0; i < 5; i++ {
		attach(t, root, kir.NewText("line"))
	}

	e := Engine{Measurer: FixedMeasurer(100, 30)}
	e.Compute(root, 800, 600)

	// 5 children x 30px plus 20px padding on each side.
	checkBounds(t, root, 0, 0, 600, 190)

	for i, ch := range root.Children {
		checkBounds(t, ch, 20, 20+float64(i)*30, 100, 30)
	}
}

func TestRowGrowSplitsFreeSpace(t *testing.T) {
	root := kir.New(kir.KindRow)
	root.Style = kir.NewStyle()
	root.Style.Width = kir.Px(300)
	root.Style.Height = kir.Px(100)

	for i := 0; i < 3; i++ {
		ch := kir.New(kir.KindContainer)
		ch.Layout = kir.NewLayoutConfig()
		ch.Layout.Flex.Grow = 1
		attach(t, root, ch)
	}

	Compute(root, 800, 600)

	for i, ch := range root.Children {
		if got := ch.Bounds.Width; !almostEqual(got, 100) {
			t.Errorf("child %d width = %g, want 100", i, got)
		}
		if got := ch.Bounds.X; !almostEqual(got, float64(i)*100) {
			t.Errorf("child %d x = %g, want %g", i, got, float64(i)*100)
		}
	}
}

func TestFlexDimensionActsAsGrowWeight(t *testing.T) {
	root := kir.New(kir.KindRow)
	root.Style = kir.NewStyle()
	root.Style.Width = kir.Px(300)
	root.Style.Height = kir.Px(50)

	a := kir.New(kir.KindContainer)
	a.Style = kir.NewStyle()
	a.Style.Width = kir.Flex(1)
	b := kir.New(kir.KindContainer)
	b.Style = kir.NewStyle()
	b.Style.Width = kir.Flex(2)
	attach(t, root, a, b)

	Compute(root, 800, 600)

	checkBounds(t, a, 0, 0, 100, 0)
	checkBounds(t, b, 100, 0, 200, 0)
}

func TestAbsoluteChildExcludedFromFlow(t *testing.T) {
	root := kir.New(kir.KindRow)
	root.Style = kir.NewStyle()
	root.Style.Width = kir.Px(300)
	root.Style.Height = kir.Px(100)

	first := kir.New(kir.KindContainer)
	first.Style = kir.NewStyle()
	first.Style.Width = kir.Px(100)
	first.Style.Height = kir.Px(100)

	floating := kir.New(kir.KindContainer)
	floating.Style = kir.NewStyle()
	floating.Style.Position = kir.PositionAbsolute
	floating.Style.AbsoluteX = 10
	floating.Style.AbsoluteY = 20
	floating.Style.Width = kir.Px(50)
	floating.Style.Height = kir.Px(50)

	second := kir.New(kir.KindContainer)
	second.Style = kir.NewStyle()
	second.Style.Width = kir.Px(100)
	second.Style.Height = kir.Px(100)

	attach(t, root, first, floating, second)

	Compute(root, 800, 600)

	// Sibling flow is unaffected by the absolute child.
	checkBounds(t, first, 0, 0, 100, 100)
	checkBounds(t, second, 100, 0, 100, 100)
	// Absolute offsets are relative to the containing block (the root here).
	checkBounds(t, floating, 10, 20, 50, 50)
}

func TestFixedPositionUsesViewport(t *testing.T) {
	root := kir.New(kir.KindColumn)
	root.Style = kir.NewStyle()
	root.Style.Width = kir.Px(200)
	root.Style.Height = kir.Px(200)

	inner := kir.New(kir.KindContainer)
	attach(t, root, inner)

	pinned := kir.New(kir.KindContainer)
	pinned.Style = kir.NewStyle()
	pinned.Style.Position = kir.PositionFixed
	pinned.Style.AbsoluteX = 700
	pinned.Style.AbsoluteY = 500
	pinned.Style.Width = kir.Px(80)
	pinned.Style.Height = kir.Px(40)
	attach(t, inner, pinned)

	Compute(root, 800, 600)

	checkBounds(t, pinned, 700, 500, 80, 40)
}

func TestCenterKindCentersChild(t *testing.T) {
	root := kir.New(kir.KindCenter)
	root.Style = kir.NewStyle()
	root.Style.Width = kir.Px(200)
	root.Style.Height = kir.Px(100)

	ch := kir.New(kir.KindContainer)
	ch.Style = kir.NewStyle()
	ch.Style.Width = kir.Px(50)
	ch.Style.Height = kir.Px(20)
	attach(t, root, ch)

	Compute(root, 800, 600)

	checkBounds(t, ch, 75, 40, 50, 20)
}

func TestJustifyAndAlign(t *testing.T) {
	tests := []struct {
		name    string
		justify kir.Alignment
		wantX   [2]float64
	}{
		{"start", kir.AlignStart, [2]float64{0, 50}},
		{"center", kir.AlignCenter, [2]float64{50, 100}},
		{"end", kir.AlignEnd, [2]float64{100, 150}},
		{"space-between", kir.AlignSpaceBetween, [2]float64{0, 150}},
		{"space-evenly", kir.AlignSpaceEvenly, [2]float64{100.0 / 3, 50 + 200.0/3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := kir.New(kir.KindRow)
			root.Style = kir.NewStyle()
			root.Style.Width = kir.Px(200)
			root.Style.Height = kir.Px(50)
			root.Layout = kir.NewLayoutConfig()
			root.Layout.Flex.Justify = tt.justify

			for i := 0; i < 2; i++ {
				ch := kir.New(kir.KindContainer)
				ch.Style = kir.NewStyle()
				ch.Style.Width = kir.Px(50)
				ch.Style.Height = kir.Px(50)
				attach(t, root, ch)
			}

			Compute(root, 800, 600)
			for i, ch := range root.Children {
				if got := ch.Bounds.X; !almostEqual(got, tt.wantX[i]) {
					t.Errorf("child %d x = %g, want %g", i, got, tt.wantX[i])
				}
			}
		})
	}
}

func TestFlexGapAndWrap(t *testing.T) {
	root := kir.New(kir.KindRow)
	root.Style = kir.NewStyle()
	root.Style.Width = kir.Px(120)
	root.Style.Height = kir.Px(100)
	root.Layout = kir.NewLayoutConfig()
	root.Layout.Flex.Wrap = true
	root.Layout.Flex.Gap = 10

	for i := 0; i < 3; i++ {
		ch := kir.New(kir.KindContainer)
		ch.Style = kir.NewStyle()
		ch.Style.Width = kir.Px(50)
		ch.Style.Height = kir.Px(20)
		attach(t, root, ch)
	}

	Compute(root, 800, 600)

	// 50 + 10 + 50 fits; the third child wraps to a second line.
	checkBounds(t, root.Children[0], 0, 0, 50, 20)
	checkBounds(t, root.Children[1], 60, 0, 50, 20)
	if got := root.Children[2].Bounds.Y; got <= 0 {
		t.Errorf("third child y = %g, want wrapped below first line", got)
	}
	if got := root.Children[2].Bounds.X; !almostEqual(got, 0) {
		t.Errorf("third child x = %g, want 0", got)
	}
}

func TestShrinkDistributesDeficit(t *testing.T) {
	root := kir.New(kir.KindRow)
	root.Style = kir.NewStyle()
	root.Style.Width = kir.Px(100)
	root.Style.Height = kir.Px(50)

	for i := 0; i < 2; i++ {
		ch := kir.New(kir.KindContainer)
		ch.Style = kir.NewStyle()
		ch.Style.Width = kir.Px(120)
		ch.Style.Height = kir.Px(50)
		attach(t, root, ch)
	}

	Compute(root, 800, 600)

	total := 0.0
	for _, ch := range root.Children {
		if ch.Bounds.Width < 0 {
			t.Fatalf("negative width %g", ch.Bounds.Width)
		}
		total += ch.Bounds.Width
	}
	if !almostEqual(total, 100) {
		t.Errorf("total width = %g, want 100", total)
	}
}

func TestMinMaxClampWinsOverGrow(t *testing.T) {
	root := kir.New(kir.KindRow)
	root.Style = kir.NewStyle()
	root.Style.Width = kir.Px(300)
	root.Style.Height = kir.Px(50)

	capped := kir.New(kir.KindContainer)
	capped.Layout = kir.NewLayoutConfig()
	capped.Layout.Flex.Grow = 1
	capped.Layout.MaxWidth = kir.Px(80)

	free := kir.New(kir.KindContainer)
	free.Layout = kir.NewLayoutConfig()
	free.Layout.Flex.Grow = 1

	attach(t, root, capped, free)

	Compute(root, 800, 600)

	if got := capped.Bounds.Width; !almostEqual(got, 80) {
		t.Errorf("capped width = %g, want 80", got)
	}
}

func TestBlockLayoutStacksVertically(t *testing.T) {
	root := kir.New(kir.KindContainer)
	root.Style = kir.NewStyle()
	root.Style.Width = kir.Px(200)
	root.Layout = kir.NewLayoutConfig()
	root.Layout.Mode = kir.LayoutBlock

	a := kir.New(kir.KindContainer)
	a.Style = kir.NewStyle()
	a.Style.Height = kir.Px(30)
	b := kir.New(kir.KindContainer)
	b.Style = kir.NewStyle()
	b.Style.Height = kir.Px(40)
	b.Style.Margin = kir.EdgeTRBL(10, 0, 0, 5)
	attach(t, root, a, b)

	Compute(root, 800, 600)

	checkBounds(t, a, 0, 0, 200, 30)
	checkBounds(t, b, 5, 40, 195, 40)
}

func TestHiddenStyleStillOccupiesSpace(t *testing.T) {
	// Visibility affects rendering, not layout.
	root := kir.New(kir.KindColumn)
	root.Style = kir.NewStyle()
	root.Style.Width = kir.Px(100)
	root.Style.Height = kir.Px(100)

	hidden := kir.New(kir.KindContainer)
	hidden.Style = kir.NewStyle()
	hidden.Style.Visible = false
	hidden.Style.Height = kir.Px(30)

	after := kir.New(kir.KindContainer)
	after.Style = kir.NewStyle()
	after.Style.Height = kir.Px(30)
	attach(t, root, hidden, after)

	Compute(root, 800, 600)

	if got := after.Bounds.Y; !almostEqual(got, 30) {
		t.Errorf("after y = %g, want 30", got)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	root := kir.New(kir.KindColumn)
	root.Style = kir.NewStyle()
	root.Style.Width = kir.Percent(50)
	ch := kir.NewText("hello world")
	attach(t, root, ch)

	e := Engine{Measurer: FixedMeasurer(88, 22)}
	e.Compute(root, 400, 300)
	first := ch.Bounds
	e.Compute(root, 400, 300)
	if ch.Bounds != first {
		t.Errorf("second pass produced %+v, first %+v", ch.Bounds, first)
	}
}
