package kir

import (
	"errors"
	"sync/atomic"
)

// ErrHasParent is returned by AddChild when the child is already attached
// elsewhere. The caller must remove it from its current parent first.
var ErrHasParent = errors.New("kir: child already has a parent")

// Bounds is the pixel rectangle a component occupies after layout. Valid is
// false until layout has run, and is cleared again by mutations.
type Bounds struct {
	X, Y          float64
	Width, Height float64
	Valid         bool
}

// idCounter backs fresh component ids. Decoders reserve wire ids through
// ReserveID so later New calls never collide with a loaded tree.
var idCounter atomic.Uint32

// ReserveID ensures subsequently created components get ids above id.
func ReserveID(id uint32) {
	for {
		cur := idCounter.Load()
		if cur >= id {
			return
		}
		if idCounter.CompareAndSwap(cur, id) {
			return
		}
	}
}

// Component is the universal tree node. It owns its children, style, layout,
// custom data, and events; the parent link is a non-owning back-reference.
type Component struct {
	Kind   Kind
	ID     uint32
	Tag    string
	Text   string
	Style  *Style
	Layout *LayoutConfig
	Data   CustomData
	Events []Event

	Children []*Component
	parent   *Component

	Bounds Bounds
}

// New creates a detached component with a fresh unique id and no style or
// layout attached.
func New(kind Kind) *Component {
	return &Component{Kind: kind, ID: idCounter.Add(1)}
}

// NewText creates a Text component holding s.
func NewText(s string) *Component {
	c := New(KindText)
	c.Text = s
	return c
}

// Parent returns the component holding this one, or nil for a root.
func (c *Component) Parent() *Component { return c.parent }

// AddChild appends child and sets its parent link. It fails if child is
// already attached; ownership must be released with RemoveChild first.
func (c *Component) AddChild(child *Component) error {
	if child.parent != nil {
		return ErrHasParent
	}
	child.parent = c
	c.Children = append(c.Children, child)
	c.Invalidate()
	return nil
}

// RemoveChild detaches child, clearing its parent link. It reports whether
// child was found.
func (c *Component) RemoveChild(child *Component) bool {
	for i, ch := range c.Children {
		if ch == child {
			c.Children = append(c.Children[:i], c.Children[i+1:]...)
			child.parent = nil
			c.Invalidate()
			return true
		}
	}
	return false
}

// SetText replaces the text content and invalidates layout.
func (c *Component) SetText(s string) {
	c.Text = s
	c.Invalidate()
}

// SetStyle attaches a style and invalidates layout.
func (c *Component) SetStyle(s *Style) {
	c.Style = s
	c.Invalidate()
}

// SetLayout attaches a layout config and invalidates layout.
func (c *Component) SetLayout(l *LayoutConfig) {
	c.Layout = l
	c.Invalidate()
}

// Invalidate clears computed bounds on this component and every ancestor.
// Layout recomputes conservatively from the root, so ancestor invalidation is
// enough to force a full pass over the affected subtree.
func (c *Component) Invalidate() {
	for n := c; n != nil; n = n.parent {
		n.Bounds.Valid = false
	}
}

// Walk visits the component and its descendants pre-order. Returning false
// from fn skips the node's children.
func (c *Component) Walk(fn func(*Component) bool) {
	if c == nil {
		return
	}
	if !fn(c) {
		return
	}
	for _, ch := range c.Children {
		ch.Walk(fn)
	}
}

// FindByID returns the component with the given id in this subtree, or nil.
func (c *Component) FindByID(id uint32) *Component {
	var found *Component
	c.Walk(func(n *Component) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Root follows parent links to the top of the tree.
func (c *Component) Root() *Component {
	n := c
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Count returns the number of components in the subtree, including c.
func (c *Component) Count() int {
	n := 0
	c.Walk(func(*Component) bool {
		n++
		return true
	})
	return n
}

// Visible reports whether the component should be rendered. A nil style
// means visible.
func (c *Component) Visible() bool {
	return c.Style == nil || c.Style.Visible
}

// Adopt sets parent links throughout the subtree to match the Children
// slices. Decoders build trees by filling Children directly and call Adopt
// once on the root.
func (c *Component) Adopt() {
	for _, ch := range c.Children {
		ch.parent = c
		ch.Adopt()
	}
}
