package render

import "github.com/waozixyz/kir"

// Emitter turns computed trees into command lists. Vars resolves variable
// reference colors; it may be nil when no tree uses them.
type Emitter struct {
	Vars *kir.VarTable
}

// Emit walks the tree pre-order and produces draw commands for every visible
// node with valid bounds. The caller must have run layout first; nodes
// without valid bounds emit nothing.
func (e *Emitter) Emit(root *kir.Component) []Command {
	var cmds []Command
	e.emit(root, 1, &cmds)
	return cmds
}

func (e *Emitter) emit(c *kir.Component, opacity float64, cmds *[]Command) {
	if c == nil || !c.Visible() || !c.Bounds.Valid {
		return
	}
	s := c.Style
	x, y := c.Bounds.X, c.Bounds.Y
	w, h := c.Bounds.Width, c.Bounds.Height

	clip := false
	if s != nil {
		opacity *= s.Opacity

		if s.BoxShadow.Enabled && !s.BoxShadow.Inset {
			if col, ok := e.resolve(s.BoxShadow.Color, opacity); ok {
				*cmds = append(*cmds, shadow(&ShadowCmd{
					X: x + s.BoxShadow.OffsetX, Y: y + s.BoxShadow.OffsetY,
					W: w, H: h,
					BlurRadius:   s.BoxShadow.BlurRadius,
					SpreadRadius: s.BoxShadow.SpreadRadius,
					Color:        col,
				}))
			}
		}

		if s.Background.Kind == kir.ColorGradient && s.Background.Gradient != nil {
			// Copy the stops so opacity scaling never writes back into the tree.
			g := *s.Background.Gradient
			g.Stops = append([]kir.GradientStop(nil), g.Stops...)
			for i := range g.Stops {
				g.Stops[i].Color = applyOpacity(g.Stops[i].Color, opacity)
			}
			*cmds = append(*cmds, gradient(&GradientCmd{X: x, Y: y, W: w, H: h, Gradient: g}))
		} else if col, ok := e.resolve(s.Background, opacity); ok {
			*cmds = append(*cmds, rect(&RectCmd{
				X: x, Y: y, W: w, H: h,
				Color: col, Radius: s.Border.Radius,
			}))
		}

		if s.Border.Width > 0 {
			if col, ok := e.resolve(s.Border.Color, opacity); ok {
				*cmds = append(*cmds, border(&BorderCmd{
					X: x, Y: y, W: w, H: h,
					Width: s.Border.Width, Color: col, Radius: s.Border.Radius,
				}))
			}
		}

		clip = s.OverflowX == kir.OverflowHidden || s.OverflowY == kir.OverflowHidden ||
			s.OverflowX == kir.OverflowScroll || s.OverflowY == kir.OverflowScroll
	}

	if c.Text != "" && c.Kind.IsTextual() {
		var font kir.Font
		var align kir.TextAlign
		textColor := kir.RGBA{A: 0xFF} // renderer default: opaque black
		if s != nil {
			font = s.Font
			align = s.Font.Align
			if col, ok := e.resolve(s.Font.Color, opacity); ok {
				textColor = col
			}
		}
		*cmds = append(*cmds, text(&TextCmd{
			X: x, Y: y, W: w, H: h,
			Text: c.Text, Font: font, Color: textColor, Align: align,
		}))
	}

	if clip {
		*cmds = append(*cmds, clipPush(&ClipCmd{X: x, Y: y, W: w, H: h}))
	}
	for _, ch := range c.Children {
		e.emit(ch, opacity, cmds)
	}
	if clip {
		*cmds = append(*cmds, clipPop())
	}
}

// resolve follows var references and applies cumulative opacity. The second
// return is false when the color paints nothing.
func (e *Emitter) resolve(c kir.Color, opacity float64) (kir.RGBA, bool) {
	c = c.Resolve(e.Vars)
	if c.IsTransparent() || c.Kind != kir.ColorSolid {
		return kir.RGBA{}, false
	}
	col := applyOpacity(c.RGBA, opacity)
	if col.A == 0 {
		return kir.RGBA{}, false
	}
	return col, true
}

func applyOpacity(c kir.RGBA, opacity float64) kir.RGBA {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	c.A = uint8(float64(c.A) * opacity)
	return c
}
