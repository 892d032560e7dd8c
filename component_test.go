package kir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChildOwnership(t *testing.T) {
	parent := New(KindColumn)
	child := New(KindText)

	require.NoError(t, parent.AddChild(child))
	assert.Same(t, parent, child.Parent())

	other := New(KindRow)
	assert.ErrorIs(t, other.AddChild(child), ErrHasParent)

	require.True(t, parent.RemoveChild(child))
	assert.Nil(t, child.Parent())
	require.NoError(t, other.AddChild(child))

	assert.False(t, parent.RemoveChild(child), "removing a detached child reports false")
}

func TestWalkPreOrder(t *testing.T) {
	root := New(KindColumn)
	a := New(KindText)
	b := New(KindRow)
	c := New(KindText)
	require.NoError(t, root.AddChild(a))
	require.NoError(t, root.AddChild(b))
	require.NoError(t, b.AddChild(c))

	var order []uint32
	root.Walk(func(n *Component) bool {
		order = append(order, n.ID)
		return true
	})
	assert.Equal(t, []uint32{root.ID, a.ID, b.ID, c.ID}, order)

	// Returning false prunes the subtree.
	order = order[:0]
	root.Walk(func(n *Component) bool {
		order = append(order, n.ID)
		return n != b
	})
	assert.Equal(t, []uint32{root.ID, a.ID, b.ID}, order)
}

func TestFindByID(t *testing.T) {
	root := New(KindColumn)
	inner := New(KindButton)
	require.NoError(t, root.AddChild(New(KindText)))
	require.NoError(t, root.AddChild(inner))

	assert.Same(t, inner, root.FindByID(inner.ID))
	assert.Nil(t, root.FindByID(0))
}

func TestInvalidateClearsAncestorBounds(t *testing.T) {
	root := New(KindColumn)
	mid := New(KindRow)
	leaf := New(KindText)
	require.NoError(t, root.AddChild(mid))
	require.NoError(t, mid.AddChild(leaf))

	for _, c := range []*Component{root, mid, leaf} {
		c.Bounds.Valid = true
	}
	sibling := New(KindText)
	require.NoError(t, root.AddChild(sibling))
	sibling.Bounds.Valid = true

	leaf.SetText("changed")

	assert.False(t, leaf.Bounds.Valid)
	assert.False(t, mid.Bounds.Valid)
	assert.False(t, root.Bounds.Valid)
	assert.True(t, sibling.Bounds.Valid, "siblings keep their bounds")
}

func TestAdoptAndRoot(t *testing.T) {
	// Decoders fill Children directly and fix parent links afterwards.
	leaf := &Component{Kind: KindText, ID: 3}
	mid := &Component{Kind: KindRow, ID: 2, Children: []*Component{leaf}}
	root := &Component{Kind: KindColumn, ID: 1, Children: []*Component{mid}}

	assert.Nil(t, leaf.Parent())
	root.Adopt()
	assert.Same(t, mid, leaf.Parent())
	assert.Same(t, root, leaf.Root())
	assert.Equal(t, 3, root.Count())
}

func TestReserveIDKeepsNewIDsUnique(t *testing.T) {
	before := New(KindContainer)
	ReserveID(before.ID + 100)
	after := New(KindContainer)
	assert.Greater(t, after.ID, before.ID+100)
}

func TestVisibleWithoutStyle(t *testing.T) {
	c := New(KindContainer)
	assert.True(t, c.Visible())

	c.Style = NewStyle()
	c.Style.Visible = false
	assert.False(t, c.Visible())
}
