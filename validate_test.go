package kir

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCleanTree(t *testing.T) {
	root := New(KindColumn)
	child := New(KindText)
	child.Style = NewStyle()
	g := &Gradient{Kind: GradientLinear}
	g.AddStop(0, RGBA{A: 0xFF})
	g.AddStop(0.5, RGBA{A: 0xFF})
	g.AddStop(1, RGBA{A: 0xFF})
	child.Style.Background = GradientColor(g)
	require.NoError(t, root.AddChild(child))

	assert.Empty(t, Validate(root))
}

func TestValidateDuplicateIDs(t *testing.T) {
	root := New(KindColumn)
	a := New(KindText)
	b := New(KindText)
	b.ID = a.ID
	require.NoError(t, root.AddChild(a))
	require.NoError(t, root.AddChild(b))

	errs := Validate(root)
	require.Len(t, errs, 1)
	assert.Equal(t, b.ID, errs[0].ComponentID)
	assert.Contains(t, errs[0].Error(), "duplicate id")
}

func TestValidateBrokenParentLink(t *testing.T) {
	// A tree assembled without Adopt has nil parent pointers.
	child := &Component{Kind: KindText, ID: 2}
	root := &Component{Kind: KindColumn, ID: 1, Children: []*Component{child}}

	errs := Validate(root)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "parent link")

	root.Adopt()
	assert.Empty(t, Validate(root))
}

func TestValidateGradientStops(t *testing.T) {
	c := New(KindContainer)
	c.Style = NewStyle()
	c.Style.Background = GradientColor(&Gradient{
		Kind: GradientLinear,
		Stops: []GradientStop{
			{Position: 0.8},
			{Position: 0.2}, // decreases
			{Position: 1.5}, // out of range
		},
	})

	errs := Validate(c)
	require.Len(t, errs, 2)
	var messages []string
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	joined := strings.Join(messages, "\n")
	assert.Contains(t, joined, "decreases")
	assert.Contains(t, joined, "outside [0,1]")
}

func TestValidateChecksAllColorSlots(t *testing.T) {
	bad := &Gradient{Kind: GradientLinear, Stops: []GradientStop{{Position: 1}, {Position: 0}}}
	c := New(KindContainer)
	c.Style = NewStyle()
	c.Style.Border.Color = GradientColor(bad)
	c.Style.Font.Color = GradientColor(bad)

	errs := Validate(c)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Message, "border gradient")
	assert.Contains(t, errs[1].Message, "font gradient")
}
