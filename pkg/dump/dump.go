// Package dump renders component trees as text and reports structural
// differences between two trees. Both operations are pure inspections used
// by tests and the CLI; neither can fail.
package dump

import (
	"fmt"
	"strings"

	"github.com/waozixyz/kir"
)

// Options controls what Tree includes per node. The zero value prints every
// visible node with no style or bounds detail.
type Options struct {
	MaxDepth   int  // 0 = unlimited
	ShowStyle  bool // append key style fields to each line
	ShowBounds bool // append computed bounds to each line
	ShowHidden bool // include nodes whose style hides them
}

// Tree renders the subtree rooted at c, one line per node, with box-drawing
// branch prefixes.
func Tree(c *kir.Component, opts Options) string {
	var b strings.Builder
	if c == nil {
		return ""
	}
	writeNode(&b, c, opts, nil, 0)
	return b.String()
}

// writeNode emits one node and recurses. lastAtDepth records, per ancestor
// depth, whether that ancestor was the last of its siblings; the branch
// prefix is derived from it.
func writeNode(b *strings.Builder, c *kir.Component, opts Options, lastAtDepth []bool, depth int) {
	if !opts.ShowHidden && !c.Visible() {
		return
	}
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		return
	}

	for i, last := range lastAtDepth {
		if i == len(lastAtDepth)-1 {
			if last {
				b.WriteString("└── ")
			} else {
				b.WriteString("├── ")
			}
		} else {
			if last {
				b.WriteString("    ")
			} else {
				b.WriteString("│   ")
			}
		}
	}

	b.WriteString(c.Kind.String())
	fmt.Fprintf(b, " #%d", c.ID)
	if c.Tag != "" {
		fmt.Fprintf(b, " <%s>", c.Tag)
	}
	if c.Text != "" {
		fmt.Fprintf(b, " %q", truncate(c.Text, 32))
	}
	if opts.ShowStyle && c.Style != nil {
		writeStyle(b, c.Style)
	}
	if opts.ShowBounds && c.Bounds.Valid {
		fmt.Fprintf(b, " [%.0f,%.0f %.0fx%.0f]",
			c.Bounds.X, c.Bounds.Y, c.Bounds.Width, c.Bounds.Height)
	}
	if !opts.ShowHidden && hasHiddenChildren(c) {
		// Count stays honest when hidden children are elided.
		b.WriteString(" …")
	}
	b.WriteByte('\n')

	visible := c.Children
	if !opts.ShowHidden {
		visible = visibleChildren(c)
	}
	for i, ch := range visible {
		writeNode(b, ch, opts, append(lastAtDepth, i == len(visible)-1), depth+1)
	}
}

func writeStyle(b *strings.Builder, s *kir.Style) {
	var parts []string
	if !s.Width.IsAuto() {
		parts = append(parts, "w="+s.Width.String())
	}
	if !s.Height.IsAuto() {
		parts = append(parts, "h="+s.Height.String())
	}
	if !s.Background.IsTransparent() {
		parts = append(parts, "bg="+s.Background.String())
	}
	if s.Opacity != 1 {
		parts = append(parts, fmt.Sprintf("opacity=%g", s.Opacity))
	}
	if s.Position != kir.PositionRelative {
		parts = append(parts, fmt.Sprintf("pos=(%g,%g)", s.AbsoluteX, s.AbsoluteY))
	}
	if len(parts) > 0 {
		fmt.Fprintf(b, " {%s}", strings.Join(parts, " "))
	}
}

func visibleChildren(c *kir.Component) []*kir.Component {
	out := make([]*kir.Component, 0, len(c.Children))
	for _, ch := range c.Children {
		if ch.Visible() {
			out = append(out, ch)
		}
	}
	return out
}

func hasHiddenChildren(c *kir.Component) bool {
	for _, ch := range c.Children {
		if !ch.Visible() {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
