package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waozixyz/kir"
)

// laidOut builds a component with computed bounds, as the layout engine would
// leave it.
func laidOut(kind kir.Kind, x, y, w, h float64) *kir.Component {
	c := kir.New(kind)
	c.Bounds = kir.Bounds{X: x, Y: y, Width: w, Height: h, Valid: true}
	return c
}

func ops(cmds []Command) []Op {
	out := make([]Op, len(cmds))
	for i, c := range cmds {
		out[i] = c.Op
	}
	return out
}

func TestEmitBackgroundAndBorder(t *testing.T) {
	c := laidOut(kir.KindContainer, 10, 20, 100, 50)
	c.Style = kir.NewStyle()
	c.Style.Background = kir.Solid(0x11, 0x22, 0x33, 0xFF)
	c.Style.Border = kir.Border{Width: 2, Radius: 4, Color: kir.Solid(0, 0, 0, 0xFF)}

	e := &Emitter{}
	cmds := e.Emit(c)

	require.Equal(t, []Op{OpRect, OpBorder}, ops(cmds))
	assert.Equal(t, &RectCmd{X: 10, Y: 20, W: 100, H: 50,
		Color: kir.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}, Radius: 4}, cmds[0].Rect)
	assert.Equal(t, &BorderCmd{X: 10, Y: 20, W: 100, H: 50,
		Width: 2, Color: kir.RGBA{A: 0xFF}, Radius: 4}, cmds[1].Border)
}

func TestEmitGradientBackground(t *testing.T) {
	g := &kir.Gradient{Kind: kir.GradientLinear, Angle: 90}
	g.AddStop(0, kir.RGBA{R: 0xFF, A: 0xFF})
	g.AddStop(1, kir.RGBA{B: 0xFF, A: 0xFF})

	c := laidOut(kir.KindContainer, 0, 0, 200, 100)
	c.Style = kir.NewStyle()
	c.Style.Background = kir.GradientColor(g)
	c.Style.Opacity = 0.5

	e := &Emitter{}
	cmds := e.Emit(c)

	require.Equal(t, []Op{OpGradient}, ops(cmds))
	got := cmds[0].Gradient.Gradient
	require.Len(t, got.Stops, 2)
	assert.Equal(t, uint8(0x7F), got.Stops[0].Color.A, "stop alpha scaled by opacity")
	assert.Equal(t, uint8(0xFF), g.Stops[0].Color.A, "source gradient untouched")
}

func TestEmitShadowBeforeBackground(t *testing.T) {
	c := laidOut(kir.KindContainer, 10, 10, 50, 50)
	c.Style = kir.NewStyle()
	c.Style.Background = kir.Solid(0xFF, 0xFF, 0xFF, 0xFF)
	c.Style.BoxShadow = kir.BoxShadow{
		OffsetX: 3, OffsetY: 4, BlurRadius: 8,
		Color: kir.Solid(0, 0, 0, 0x80), Enabled: true,
	}

	e := &Emitter{}
	cmds := e.Emit(c)

	require.Equal(t, []Op{OpShadow, OpRect}, ops(cmds))
	assert.Equal(t, 13.0, cmds[0].Shadow.X)
	assert.Equal(t, 14.0, cmds[0].Shadow.Y)

	// Inset shadows are not drawn behind the box.
	c.Style.BoxShadow.Inset = true
	cmds = e.Emit(c)
	assert.Equal(t, []Op{OpRect}, ops(cmds))
}

func TestEmitClipWrapsChildren(t *testing.T) {
	child := laidOut(kir.KindContainer, 0, 0, 300, 40)
	child.Style = kir.NewStyle()
	child.Style.Background = kir.Solid(0xFF, 0, 0, 0xFF)

	parent := laidOut(kir.KindContainer, 0, 0, 200, 100)
	parent.Style = kir.NewStyle()
	parent.Style.Background = kir.Solid(0, 0xFF, 0, 0xFF)
	parent.Style.OverflowX = kir.OverflowHidden
	require.NoError(t, parent.AddChild(child))

	e := &Emitter{}
	cmds := e.Emit(parent)

	require.Equal(t, []Op{OpRect, OpClipPush, OpRect, OpClipPop}, ops(cmds))
	assert.Equal(t, &ClipCmd{X: 0, Y: 0, W: 200, H: 100}, cmds[1].Clip)
}

func TestEmitOpacityMultipliesDownTree(t *testing.T) {
	child := laidOut(kir.KindContainer, 0, 0, 10, 10)
	child.Style = kir.NewStyle()
	child.Style.Opacity = 0.5
	child.Style.Background = kir.Solid(0, 0, 0, 0xFF)

	parent := laidOut(kir.KindContainer, 0, 0, 20, 20)
	parent.Style = kir.NewStyle()
	parent.Style.Opacity = 0.5
	require.NoError(t, parent.AddChild(child))

	e := &Emitter{}
	cmds := e.Emit(parent)

	require.Equal(t, []Op{OpRect}, ops(cmds))
	assert.Equal(t, uint8(63), cmds[0].Rect.Color.A, "0.5 * 0.5 of 255")
}

func TestEmitSkipsHiddenAndUnlaidOut(t *testing.T) {
	hidden := laidOut(kir.KindContainer, 0, 0, 10, 10)
	hidden.Style = kir.NewStyle()
	hidden.Style.Visible = false
	hidden.Style.Background = kir.Solid(0xFF, 0, 0, 0xFF)

	unlaid := kir.New(kir.KindContainer)
	unlaid.Style = kir.NewStyle()
	unlaid.Style.Background = kir.Solid(0xFF, 0, 0, 0xFF)

	parent := laidOut(kir.KindContainer, 0, 0, 100, 100)
	require.NoError(t, parent.AddChild(hidden))
	require.NoError(t, parent.AddChild(unlaid))

	e := &Emitter{}
	assert.Empty(t, e.Emit(parent))
}

func TestEmitTextDefaults(t *testing.T) {
	text := laidOut(kir.KindText, 5, 5, 80, 20)
	text.Text = "hello"

	e := &Emitter{}
	cmds := e.Emit(text)
	require.Equal(t, []Op{OpText}, ops(cmds))
	assert.Equal(t, "hello", cmds[0].Text.Text)
	assert.Equal(t, kir.RGBA{A: 0xFF}, cmds[0].Text.Color, "default text color is opaque black")

	// Non-textual kinds never emit text runs even when Text is set.
	box := laidOut(kir.KindContainer, 0, 0, 10, 10)
	box.Text = "ignored"
	assert.Empty(t, e.Emit(box))
}

func TestEmitResolvesVarColors(t *testing.T) {
	c := laidOut(kir.KindContainer, 0, 0, 10, 10)
	c.Style = kir.NewStyle()
	c.Style.Background = kir.VarRef(4)

	vars := kir.NewVarTable()
	vars.Set(4, "accent", kir.Solid(0x12, 0x34, 0x56, 0xFF))

	e := &Emitter{Vars: vars}
	cmds := e.Emit(c)
	require.Equal(t, []Op{OpRect}, ops(cmds))
	assert.Equal(t, kir.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}, cmds[0].Rect.Color)

	// Without a table the reference resolves to transparent and paints nothing.
	bare := &Emitter{}
	assert.Empty(t, bare.Emit(c))
}
