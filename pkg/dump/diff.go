package dump

import (
	"fmt"
	"strings"

	"github.com/waozixyz/kir"
)

// Diff compares two trees structurally and returns whether they differ plus
// a human-readable report. Comparison covers kind, id, text, the style
// scalar fields layout consumes, and child count and order. A kind mismatch
// stops descent into that subtree, since the children of differently-typed
// nodes are not comparable.
func Diff(a, b *kir.Component) (bool, string) {
	var r strings.Builder
	diffNode(&r, a, b, "root")
	report := r.String()
	return report != "", report
}

func diffNode(r *strings.Builder, a, b *kir.Component, path string) {
	switch {
	case a == nil && b == nil:
		return
	case a == nil:
		fmt.Fprintf(r, "%s: only in right: %s #%d\n", path, b.Kind, b.ID)
		return
	case b == nil:
		fmt.Fprintf(r, "%s: only in left: %s #%d\n", path, a.Kind, a.ID)
		return
	}

	if a.Kind != b.Kind {
		fmt.Fprintf(r, "%s: type %s != %s\n", path, a.Kind, b.Kind)
		return
	}
	if a.ID != b.ID {
		fmt.Fprintf(r, "%s: id %d != %d\n", path, a.ID, b.ID)
	}
	if a.Text != b.Text {
		fmt.Fprintf(r, "%s: text %q != %q\n", path, truncate(a.Text, 32), truncate(b.Text, 32))
	}
	diffStyle(r, a.Style, b.Style, path)

	if len(a.Children) != len(b.Children) {
		fmt.Fprintf(r, "%s: child count %d != %d\n", path, len(a.Children), len(b.Children))
	}
	n := len(a.Children)
	if len(b.Children) < n {
		n = len(b.Children)
	}
	for i := 0; i < n; i++ {
		diffNode(r, a.Children[i], b.Children[i], fmt.Sprintf("%s/%s[%d]", path, a.Children[i].Kind, i))
	}
	for i := n; i < len(a.Children); i++ {
		fmt.Fprintf(r, "%s: only in left: %s #%d\n", path, a.Children[i].Kind, a.Children[i].ID)
	}
	for i := n; i < len(b.Children); i++ {
		fmt.Fprintf(r, "%s: only in right: %s #%d\n", path, b.Children[i].Kind, b.Children[i].ID)
	}
}

func diffStyle(r *strings.Builder, a, b *kir.Style, path string) {
	if a == nil && b == nil {
		return
	}
	if a == nil || b == nil {
		fmt.Fprintf(r, "%s: style present on one side only\n", path)
		return
	}
	cmp := func(field string, av, bv any) {
		if av != bv {
			fmt.Fprintf(r, "%s: %s %v != %v\n", path, field, av, bv)
		}
	}
	cmp("width", a.Width, b.Width)
	cmp("height", a.Height, b.Height)
	cmp("opacity", a.Opacity, b.Opacity)
	cmp("visible", a.Visible, b.Visible)
	cmp("zIndex", a.ZIndex, b.ZIndex)
	cmp("position", a.Position, b.Position)
	cmp("absoluteX", a.AbsoluteX, b.AbsoluteX)
	cmp("absoluteY", a.AbsoluteY, b.AbsoluteY)
	cmp("margin", a.Margin, b.Margin)
	cmp("padding", a.Padding, b.Padding)
	cmp("borderWidth", a.Border.Width, b.Border.Width)
	cmp("fontSize", a.Font.Size, b.Font.Size)
	cmp("transform", a.Transform, b.Transform)
}
