// Package render translates a laid-out component tree into a flat list of
// backend-agnostic draw commands. A renderer replays the list in order;
// clipping is expressed as push/pop pairs around a node's children.
package render

import "github.com/waozixyz/kir"

// Command is one draw operation. Exactly one of the pointer fields is set,
// discriminated by Op.
type Command struct {
	Op       Op
	Rect     *RectCmd
	Gradient *GradientCmd
	Shadow   *ShadowCmd
	Border   *BorderCmd
	Text     *TextCmd
	Clip     *ClipCmd
}

// Op discriminates Command variants.
type Op uint8

const (
	OpRect Op = iota
	OpGradient
	OpShadow
	OpBorder
	OpText
	OpClipPush
	OpClipPop
)

// RectCmd fills a rectangle, optionally rounded.
type RectCmd struct {
	X, Y, W, H float64
	Color      kir.RGBA
	Radius     float64
}

// GradientCmd fills a rectangle with a gradient ramp.
type GradientCmd struct {
	X, Y, W, H float64
	Gradient   kir.Gradient
}

// ShadowCmd draws a drop shadow behind a box.
type ShadowCmd struct {
	X, Y, W, H   float64
	BlurRadius   float64
	SpreadRadius float64
	Color        kir.RGBA
}

// BorderCmd strokes a rectangle outline.
type BorderCmd struct {
	X, Y, W, H float64
	Width      float64
	Color      kir.RGBA
	Radius     float64
}

// TextCmd draws a text run inside a box.
type TextCmd struct {
	X, Y, W, H float64
	Text       string
	Font       kir.Font
	Color      kir.RGBA
	Align      kir.TextAlign
}

// ClipCmd pushes a clip rectangle; OpClipPop restores the previous one.
type ClipCmd struct {
	X, Y, W, H float64
}

func rect(c *RectCmd) Command     { return Command{Op: OpRect, Rect: c} }
func gradient(c *GradientCmd) Command {
	return Command{Op: OpGradient, Gradient: c}
}
func shadow(c *ShadowCmd) Command { return Command{Op: OpShadow, Shadow: c} }
func border(c *BorderCmd) Command { return Command{Op: OpBorder, Border: c} }
func text(c *TextCmd) Command     { return Command{Op: OpText, Text: c} }
func clipPush(c *ClipCmd) Command { return Command{Op: OpClipPush, Clip: c} }
func clipPop() Command            { return Command{Op: OpClipPop} }
