package codec

import (
	"encoding/json"
	"fmt"

	"github.com/waozixyz/kir"
	"github.com/waozixyz/kir/pkg/logic"
)

// The JSON format flattens style and layout properties into each component
// object next to "type" and "children". The document version is implicit in
// the top-level shape: a "root" wrapper with sibling "logic_block" and
// "reactive_manifest" sections is v3; a bare component object is the v2
// fallback accepted on decode.

type documentJSON struct {
	Root     *componentJSON  `json:"root"`
	Manifest *manifestJSON   `json:"reactive_manifest,omitempty"`
	Logic    *logicBlockJSON `json:"logic_block,omitempty"`
}

type componentJSON struct {
	ID   uint32 `json:"id"`
	Type string `json:"type"`
	Tag  string `json:"tag,omitempty"`
	Text string `json:"text,omitempty"`

	styleJSON
	layoutJSON

	CustomData string           `json:"custom_data,omitempty"`
	Events     []eventJSON      `json:"events,omitempty"`
	Children   []*componentJSON `json:"children,omitempty"`
}

type styleJSON struct {
	Width              string         `json:"width,omitempty"`
	Height             string         `json:"height,omitempty"`
	Background         string         `json:"background,omitempty"`
	BackgroundGradient *gradientJSON  `json:"backgroundGradient,omitempty"`
	Border             *borderJSON    `json:"border,omitempty"`
	Position           string         `json:"position,omitempty"`
	Left               *float64       `json:"left,omitempty"`
	Top                *float64       `json:"top,omitempty"`
	FontSize           *float64       `json:"fontSize,omitempty"`
	FontFamily         string         `json:"fontFamily,omitempty"`
	FontWeight         *uint16        `json:"fontWeight,omitempty"`
	FontBold           bool           `json:"fontBold,omitempty"`
	FontItalic         bool           `json:"fontItalic,omitempty"`
	LineHeight         *float64       `json:"lineHeight,omitempty"`
	Color              string         `json:"color,omitempty"`
	TextAlign          string         `json:"textAlign,omitempty"`
	LetterSpacing      *float64       `json:"letterSpacing,omitempty"`
	WordSpacing        *float64       `json:"wordSpacing,omitempty"`
	TextDecoration     *uint8         `json:"textDecoration,omitempty"`
	Padding            *edgesJSON     `json:"padding,omitempty"`
	Margin             *edgesJSON     `json:"margin,omitempty"`
	Transform          *transformJSON `json:"transform,omitempty"`
	Opacity            *float64       `json:"opacity,omitempty"`
	Visible            *bool          `json:"visible,omitempty"`
	ZIndex             *int32         `json:"zIndex,omitempty"`
	OverflowX          string         `json:"overflowX,omitempty"`
	OverflowY          string         `json:"overflowY,omitempty"`
	GridItem           *gridItemJSON  `json:"gridItem,omitempty"`
	TextEffect         *textEffJSON   `json:"textEffect,omitempty"`
	BoxShadow          *boxShadowJSON `json:"boxShadow,omitempty"`
	Filters            []filterJSON   `json:"filters,omitempty"`
	Animations         []animJSON     `json:"animations,omitempty"`
	Transitions        []transJSON    `json:"transitions,omitempty"`
	Breakpoints        []bpJSON       `json:"breakpoints,omitempty"`
	ContainerType      string         `json:"containerType,omitempty"`
	ContainerName      string         `json:"containerName,omitempty"`
	PseudoStyles       []pseudoJSON   `json:"pseudoStyles,omitempty"`
}

type layoutJSON struct {
	Display        string      `json:"display,omitempty"`
	MinWidth       string      `json:"minWidth,omitempty"`
	MinHeight      string      `json:"minHeight,omitempty"`
	MaxWidth       string      `json:"maxWidth,omitempty"`
	MaxHeight      string      `json:"maxHeight,omitempty"`
	JustifyContent string      `json:"justifyContent,omitempty"`
	AlignItems     string      `json:"alignItems,omitempty"`
	Gap            *float64    `json:"gap,omitempty"`
	FlexGrow       *float64    `json:"flexGrow,omitempty"`
	FlexShrink     *float64    `json:"flexShrink,omitempty"`
	FlexWrap       bool        `json:"flexWrap,omitempty"`
	AspectRatio    *float64    `json:"aspectRatio,omitempty"`
	GridColumns    []trackJSON `json:"gridColumns,omitempty"`
	GridRows       []trackJSON `json:"gridRows,omitempty"`
	RowGap         *float64    `json:"rowGap,omitempty"`
	ColumnGap      *float64    `json:"columnGap,omitempty"`
	JustifyItems   string      `json:"justifyItems,omitempty"`
	GridAlignItems string      `json:"gridAlignItems,omitempty"`
	AutoFlow       string      `json:"gridAutoFlow,omitempty"`
	LayoutMargin   *edgesJSON  `json:"layoutMargin,omitempty"`
	LayoutPadding  *edgesJSON  `json:"layoutPadding,omitempty"`
}

type gradientJSON struct {
	Type    string     `json:"type"`
	Angle   float64    `json:"angle,omitempty"`
	CenterX float64    `json:"centerX,omitempty"`
	CenterY float64    `json:"centerY,omitempty"`
	Stops   []stopJSON `json:"stops"`
}

type stopJSON struct {
	Position float64 `json:"position"`
	Color    string  `json:"color"`
}

type borderJSON struct {
	Width  float64 `json:"width,omitempty"`
	Color  string  `json:"color,omitempty"`
	Radius float64 `json:"radius,omitempty"`
}

type edgesJSON struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

type transformJSON struct {
	Translate *pointJSON `json:"translate,omitempty"`
	Scale     *pointJSON `json:"scale,omitempty"`
	Rotate    float64    `json:"rotate,omitempty"`
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type gridItemJSON struct {
	RowStart    int16  `json:"rowStart"`
	RowEnd      int16  `json:"rowEnd"`
	ColumnStart int16  `json:"columnStart"`
	ColumnEnd   int16  `json:"columnEnd"`
	JustifySelf string `json:"justifySelf,omitempty"`
	AlignSelf   string `json:"alignSelf,omitempty"`
}

type textEffJSON struct {
	Overflow   string          `json:"overflow,omitempty"`
	Fade       string          `json:"fade,omitempty"`
	FadeLength float64         `json:"fadeLength,omitempty"`
	Shadow     *textShadowJSON `json:"shadow,omitempty"`
	MaxWidth   string          `json:"maxWidth,omitempty"`
	Direction  string          `json:"direction,omitempty"`
	Language   string          `json:"language,omitempty"`
}

type textShadowJSON struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Blur    float64 `json:"blur"`
	Color   string  `json:"color,omitempty"`
}

type boxShadowJSON struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Blur    float64 `json:"blur"`
	Spread  float64 `json:"spread"`
	Color   string  `json:"color,omitempty"`
	Inset   bool    `json:"inset,omitempty"`
}

type filterJSON struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

type animJSON struct {
	Name       string         `json:"name,omitempty"`
	Duration   float64        `json:"duration"`
	Delay      float64        `json:"delay,omitempty"`
	Iterations int32          `json:"iterations,omitempty"`
	Alternate  bool           `json:"alternate,omitempty"`
	Easing     string         `json:"easing,omitempty"`
	Keyframes  []keyframeJSON `json:"keyframes,omitempty"`
}

type keyframeJSON struct {
	Offset     float64        `json:"offset"`
	Easing     string         `json:"easing,omitempty"`
	Properties []animPropJSON `json:"properties,omitempty"`
}

type animPropJSON struct {
	Property string  `json:"property"`
	Value    float64 `json:"value,omitempty"`
	Color    string  `json:"color,omitempty"`
}

type transJSON struct {
	Property string  `json:"property"`
	Duration float64 `json:"duration"`
	Delay    float64 `json:"delay,omitempty"`
	Easing   string  `json:"easing,omitempty"`
	Trigger  uint32  `json:"trigger,omitempty"`
}

type bpJSON struct {
	Conditions []condJSON `json:"conditions"`
	Width      string     `json:"width,omitempty"`
	Height     string     `json:"height,omitempty"`
	Visible    bool       `json:"visible"`
	Opacity    float64    `json:"opacity"`
	Display    string     `json:"display,omitempty"`
}

type condJSON struct {
	Query string  `json:"query"`
	Value float64 `json:"value"`
}

type pseudoJSON struct {
	State       uint32         `json:"state"`
	Background  string         `json:"background,omitempty"`
	Color       string         `json:"color,omitempty"`
	BorderColor string         `json:"borderColor,omitempty"`
	Opacity     *float64       `json:"opacity,omitempty"`
	Transform   *transformJSON `json:"transform,omitempty"`
}

type eventJSON struct {
	Type        string `json:"type"`
	LogicID     string `json:"logic_id,omitempty"`
	HandlerData string `json:"handler_data,omitempty"`
}

type manifestJSON struct {
	Variables []manifestVarJSON `json:"variables"`
}

type manifestVarJSON struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	InitialValue string `json:"initial_value,omitempty"`
}

type logicBlockJSON struct {
	Functions     []functionJSON `json:"functions,omitempty"`
	EventBindings []bindingJSON  `json:"event_bindings,omitempty"`
}

type functionJSON struct {
	Name      string         `json:"name"`
	Universal *universalJSON `json:"universal,omitempty"`
	Sources   []sourceJSON   `json:"sources,omitempty"`
}

type universalJSON struct {
	Params     []string          `json:"params,omitempty"`
	Statements []json.RawMessage `json:"statements"`
}

type sourceJSON struct {
	Language string `json:"language"`
	Source   string `json:"source"`
}

type bindingJSON struct {
	ComponentID uint32 `json:"component_id"`
	EventType   string `json:"event_type"`
	HandlerName string `json:"handler_name"`
}

// EncodeJSON serializes a document to the v3 JSON format.
func EncodeJSON(doc *Document) ([]byte, error) {
	out := documentJSON{Root: componentToJSON(doc.Root)}
	if doc.Manifest != nil && doc.Manifest.Len() > 0 {
		out.Manifest = manifestToJSON(doc.Manifest)
	}
	if doc.Logic != nil && !doc.Logic.Empty() {
		out.Logic = logicToJSON(doc.Logic)
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return b, nil
}

func componentToJSON(c *kir.Component) *componentJSON {
	if c == nil {
		return nil
	}
	out := &componentJSON{
		ID:         c.ID,
		Type:       c.Kind.String(),
		Tag:        c.Tag,
		Text:       c.Text,
		CustomData: encodeCustomData(c.Data),
	}
	if c.Style != nil {
		out.styleJSON = styleToJSON(c.Style)
	}
	if c.Layout != nil {
		out.layoutJSON = layoutToJSON(c.Layout)
	}
	for _, ev := range c.Events {
		out.Events = append(out.Events, eventJSON{
			Type:        ev.Type.String(),
			LogicID:     ev.Handler,
			HandlerData: ev.Data,
		})
	}
	for _, ch := range c.Children {
		out.Children = append(out.Children, componentToJSON(ch))
	}
	return out
}

var alignmentNames = [...]string{
	kir.AlignStart:        "start",
	kir.AlignCenter:       "center",
	kir.AlignEnd:          "end",
	kir.AlignSpaceBetween: "space-between",
	kir.AlignSpaceAround:  "space-around",
	kir.AlignSpaceEvenly:  "space-evenly",
	kir.AlignStretch:      "stretch",
}

func alignmentName(a kir.Alignment) string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return "start"
}

func parseAlignment(s string) kir.Alignment {
	switch s {
	case "flex-start":
		return kir.AlignStart
	case "flex-end":
		return kir.AlignEnd
	}
	for a, n := range alignmentNames {
		if n == s {
			return kir.Alignment(a)
		}
	}
	return kir.AlignStart
}

// colorString renders a color for a flat JSON slot. Gradients have no flat
// form; the caller carries them in a dedicated gradient key where the
// format supports one, so here they collapse to their first stop.
func colorString(c kir.Color) string {
	switch c.Kind {
	case kir.ColorSolid:
		return c.RGBA.Hex()
	case kir.ColorVarRef:
		return fmt.Sprintf("var(%d)", c.VarIndex)
	case kir.ColorGradient:
		if c.Gradient != nil && len(c.Gradient.Stops) > 0 {
			return c.Gradient.Stops[0].Color.Hex()
		}
		return ""
	default:
		return ""
	}
}

func gradientToJSON(g *kir.Gradient) *gradientJSON {
	if g == nil {
		return nil
	}
	names := [...]string{"linear", "radial", "conic"}
	out := &gradientJSON{
		Type:    names[g.Kind],
		Angle:   g.Angle,
		CenterX: g.CenterX,
		CenterY: g.CenterY,
	}
	for _, s := range g.Stops {
		out.Stops = append(out.Stops, stopJSON{Position: s.Position, Color: s.Color.Hex()})
	}
	return out
}

func edgesToJSON(e kir.Edges) *edgesJSON {
	if e.IsZero() {
		return nil
	}
	return &edgesJSON{Top: e.Top, Right: e.Right, Bottom: e.Bottom, Left: e.Left}
}

func fptr(v float64) *float64 { return &v }

var (
	textAlignJSONNames = [...]string{"left", "center", "right", "justify"}
	overflowNames      = [...]string{"visible", "hidden", "scroll", "auto"}
	easingNames        = [...]string{
		"linear", "ease-in", "ease-out", "ease-in-out",
		"ease-in-quad", "ease-out-quad", "ease-in-out-quad",
		"ease-in-cubic", "ease-out-cubic", "ease-in-out-cubic",
		"ease-in-bounce", "ease-out-bounce",
	}
	filterNames = [...]string{
		"blur", "brightness", "contrast", "grayscale", "saturate",
		"sepia", "invert", "hue-rotate", "opacity",
	}
	animPropNames = [...]string{
		"opacity", "translateX", "translateY", "scaleX", "scaleY",
		"rotate", "width", "height", "backgroundColor", "custom",
	}
	queryNames = [...]string{"min-width", "max-width", "min-height", "max-height"}
)

func styleToJSON(s *kir.Style) styleJSON {
	var out styleJSON

	if !s.Width.IsAuto() {
		out.Width = s.Width.String()
	}
	if !s.Height.IsAuto() {
		out.Height = s.Height.String()
	}

	if s.Background.Kind == kir.ColorGradient {
		out.BackgroundGradient = gradientToJSON(s.Background.Gradient)
	} else if !s.Background.IsTransparent() || s.Background.Kind == kir.ColorVarRef {
		out.Background = colorString(s.Background)
	}

	if s.Border.Width != 0 || s.Border.Radius != 0 || !s.Border.Color.IsTransparent() {
		out.Border = &borderJSON{
			Width:  s.Border.Width,
			Color:  colorString(s.Border.Color),
			Radius: s.Border.Radius,
		}
	}

	switch s.Position {
	case kir.PositionAbsolute:
		out.Position = "absolute"
	case kir.PositionFixed:
		out.Position = "fixed"
	}
	if s.Position != kir.PositionRelative {
		out.Left = fptr(s.AbsoluteX)
		out.Top = fptr(s.AbsoluteY)
	}

	if s.Font.Size > 0 {
		out.FontSize = fptr(s.Font.Size)
	}
	out.FontFamily = s.Font.Family
	if s.Font.Weight != 0 {
		w := s.Font.Weight
		out.FontWeight = &w
	}
	out.FontBold = s.Font.Bold
	out.FontItalic = s.Font.Italic
	if s.Font.LineHeight != 0 && s.Font.LineHeight != 1.5 {
		out.LineHeight = fptr(s.Font.LineHeight)
	}
	if !s.Font.Color.IsTransparent() || s.Font.Color.Kind == kir.ColorVarRef {
		out.Color = colorString(s.Font.Color)
	}
	if s.Font.Align != kir.TextAlignLeft {
		out.TextAlign = textAlignJSONNames[s.Font.Align]
	}
	if s.Font.LetterSpacing != 0 {
		out.LetterSpacing = fptr(s.Font.LetterSpacing)
	}
	if s.Font.WordSpacing != 0 {
		out.WordSpacing = fptr(s.Font.WordSpacing)
	}
	if s.Font.Decoration != 0 {
		d := s.Font.Decoration
		out.TextDecoration = &d
	}

	out.Padding = edgesToJSON(s.Padding)
	out.Margin = edgesToJSON(s.Margin)

	if !s.Transform.IsIdentity() {
		t := &transformJSON{Rotate: s.Transform.Rotate}
		if s.Transform.TranslateX != 0 || s.Transform.TranslateY != 0 {
			t.Translate = &pointJSON{X: s.Transform.TranslateX, Y: s.Transform.TranslateY}
		}
		if s.Transform.ScaleX != 1 || s.Transform.ScaleY != 1 {
			t.Scale = &pointJSON{X: s.Transform.ScaleX, Y: s.Transform.ScaleY}
		}
		out.Transform = t
	}

	if s.Opacity != 1 {
		out.Opacity = fptr(s.Opacity)
	}
	if !s.Visible {
		v := false
		out.Visible = &v
	}
	if s.ZIndex != 0 {
		z := s.ZIndex
		out.ZIndex = &z
	}
	if s.OverflowX != kir.OverflowVisible {
		out.OverflowX = overflowNames[s.OverflowX]
	}
	if s.OverflowY != kir.OverflowVisible {
		out.OverflowY = overflowNames[s.OverflowY]
	}

	if !s.GridItem.IsAuto() || s.GridItem.JustifySelf != kir.AlignStart || s.GridItem.AlignSelf != kir.AlignStart {
		out.GridItem = &gridItemJSON{
			RowStart:    s.GridItem.RowStart,
			RowEnd:      s.GridItem.RowEnd,
			ColumnStart: s.GridItem.ColumnStart,
			ColumnEnd:   s.GridItem.ColumnEnd,
			JustifySelf: alignmentName(s.GridItem.JustifySelf),
			AlignSelf:   alignmentName(s.GridItem.AlignSelf),
		}
	}

	out.TextEffect = textEffectToJSON(s.TextEffect)

	if s.BoxShadow.Enabled {
		out.BoxShadow = &boxShadowJSON{
			OffsetX: s.BoxShadow.OffsetX,
			OffsetY: s.BoxShadow.OffsetY,
			Blur:    s.BoxShadow.BlurRadius,
			Spread:  s.BoxShadow.SpreadRadius,
			Color:   colorString(s.BoxShadow.Color),
			Inset:   s.BoxShadow.Inset,
		}
	}

	for _, f := range s.Filters {
		out.Filters = append(out.Filters, filterJSON{Type: filterNames[f.Kind], Value: f.Value})
	}
	for _, a := range s.Animations {
		out.Animations = append(out.Animations, animToJSON(a))
	}
	for _, t := range s.Transitions {
		out.Transitions = append(out.Transitions, transJSON{
			Property: animPropNames[t.Property],
			Duration: t.Duration,
			Delay:    t.Delay,
			Easing:   easingNames[t.Easing],
			Trigger:  uint32(t.TriggerState),
		})
	}
	for i := range s.Breakpoints {
		out.Breakpoints = append(out.Breakpoints, bpToJSON(&s.Breakpoints[i]))
	}

	switch s.ContainerType {
	case kir.ContainerInlineSize:
		out.ContainerType = "inline-size"
	case kir.ContainerSize:
		out.ContainerType = "size"
	}
	out.ContainerName = s.ContainerName

	for i := range s.PseudoStyles {
		ps := &s.PseudoStyles[i]
		pj := pseudoJSON{State: uint32(ps.State)}
		if ps.HasBackground {
			pj.Background = colorString(ps.Background)
		}
		if ps.HasTextColor {
			pj.Color = colorString(ps.TextColor)
		}
		if ps.HasBorderColor {
			pj.BorderColor = colorString(ps.BorderColor)
		}
		if ps.HasOpacity {
			pj.Opacity = fptr(ps.Opacity)
		}
		if ps.HasTransform {
			pj.Transform = &transformJSON{
				Translate: &pointJSON{X: ps.Transform.TranslateX, Y: ps.Transform.TranslateY},
				Scale:     &pointJSON{X: ps.Transform.ScaleX, Y: ps.Transform.ScaleY},
				Rotate:    ps.Transform.Rotate,
			}
		}
		out.PseudoStyles = append(out.PseudoStyles, pj)
	}

	return out
}

func textEffectToJSON(t kir.TextEffect) *textEffJSON {
	zero := t.Overflow == kir.OverflowVisible && t.Fade == kir.FadeNone &&
		t.FadeLength == 0 && !t.Shadow.Enabled && t.MaxWidth.IsAuto() &&
		t.Direction == kir.TextDirAuto && t.Language == ""
	if zero {
		return nil
	}
	out := &textEffJSON{
		FadeLength: t.FadeLength,
		Language:   t.Language,
	}
	if t.Overflow != kir.OverflowVisible {
		out.Overflow = overflowNames[t.Overflow]
	}
	switch t.Fade {
	case kir.FadeRight:
		out.Fade = "right"
	case kir.FadeBottom:
		out.Fade = "bottom"
	}
	if t.Shadow.Enabled {
		out.Shadow = &textShadowJSON{
			OffsetX: t.Shadow.OffsetX,
			OffsetY: t.Shadow.OffsetY,
			Blur:    t.Shadow.BlurRadius,
			Color:   colorString(t.Shadow.Color),
		}
	}
	if !t.MaxWidth.IsAuto() {
		out.MaxWidth = t.MaxWidth.String()
	}
	switch t.Direction {
	case kir.TextDirLTR:
		out.Direction = "ltr"
	case kir.TextDirRTL:
		out.Direction = "rtl"
	}
	return out
}

func animToJSON(a *kir.Animation) animJSON {
	out := animJSON{
		Name:       a.Name,
		Duration:   a.Duration,
		Delay:      a.Delay,
		Iterations: a.Iterations,
		Alternate:  a.Alternate,
		Easing:     easingNames[a.Easing],
	}
	for i := range a.Keyframes {
		k := &a.Keyframes[i]
		kj := keyframeJSON{Offset: k.Offset, Easing: easingNames[k.Easing]}
		for _, p := range k.Properties {
			if !p.Set {
				continue
			}
			kj.Properties = append(kj.Properties, animPropJSON{
				Property: animPropNames[p.Property],
				Value:    p.Value,
				Color:    colorString(p.Color),
			})
		}
		out.Keyframes = append(out.Keyframes, kj)
	}
	return out
}

func bpToJSON(b *kir.Breakpoint) bpJSON {
	out := bpJSON{Visible: b.Visible, Opacity: b.Opacity}
	for _, c := range b.Conditions {
		out.Conditions = append(out.Conditions, condJSON{Query: queryNames[c.Kind], Value: c.Value})
	}
	if !b.Width.IsAuto() {
		out.Width = b.Width.String()
	}
	if !b.Height.IsAuto() {
		out.Height = b.Height.String()
	}
	if b.HasLayout {
		out.Display = displayNames[b.LayoutMode]
	}
	return out
}

var displayNames = [...]string{"flex", "grid", "block"}

func layoutToJSON(l *kir.LayoutConfig) layoutJSON {
	var out layoutJSON
	out.Display = displayNames[l.Mode]

	if !l.MinWidth.IsAuto() {
		out.MinWidth = l.MinWidth.String()
	}
	if !l.MinHeight.IsAuto() {
		out.MinHeight = l.MinHeight.String()
	}
	if !l.MaxWidth.IsAuto() {
		out.MaxWidth = l.MaxWidth.String()
	}
	if !l.MaxHeight.IsAuto() {
		out.MaxHeight = l.MaxHeight.String()
	}

	if l.Flex.Justify != kir.AlignStart {
		out.JustifyContent = alignmentName(l.Flex.Justify)
	}
	if l.Flex.Align != kir.AlignStart {
		out.AlignItems = alignmentName(l.Flex.Align)
	}
	if l.Flex.Gap != 0 {
		out.Gap = fptr(l.Flex.Gap)
	}
	if l.Flex.Grow != 0 {
		out.FlexGrow = fptr(l.Flex.Grow)
	}
	if l.Flex.Shrink != 1 {
		out.FlexShrink = fptr(l.Flex.Shrink)
	}
	out.FlexWrap = l.Flex.Wrap
	if l.AspectRatio != 0 {
		out.AspectRatio = fptr(l.AspectRatio)
	}

	for _, t := range l.Grid.Columns {
		out.GridColumns = append(out.GridColumns, trackToJSON(t))
	}
	for _, t := range l.Grid.Rows {
		out.GridRows = append(out.GridRows, trackToJSON(t))
	}
	if l.Grid.RowGap != 0 {
		out.RowGap = fptr(l.Grid.RowGap)
	}
	if l.Grid.ColumnGap != 0 {
		out.ColumnGap = fptr(l.Grid.ColumnGap)
	}
	if l.Grid.JustifyItems != kir.AlignStart {
		out.JustifyItems = alignmentName(l.Grid.JustifyItems)
	}
	if l.Grid.AlignItems != kir.AlignStart {
		out.GridAlignItems = alignmentName(l.Grid.AlignItems)
	}
	out.AutoFlow = autoFlowName(l.Grid)

	out.LayoutMargin = edgesToJSON(l.Margin)
	out.LayoutPadding = edgesToJSON(l.Padding)
	return out
}

var trackKindNames = [...]string{"px", "percent", "fr", "auto", "min-content", "max-content"}

type trackJSON struct {
	Type  string  `json:"type"`
	Value float64 `json:"value,omitempty"`
}

func trackToJSON(t kir.GridTrack) trackJSON {
	return trackJSON{Type: trackKindNames[t.Kind], Value: t.Value}
}

func autoFlowName(g kir.GridConfig) string {
	switch {
	case g.AutoFlowRow && g.AutoFlowDense:
		return "row dense"
	case g.AutoFlowRow:
		return "row"
	case g.AutoFlowDense:
		return "column dense"
	default:
		return ""
	}
}

func manifestToJSON(m *logic.Manifest) *manifestJSON {
	out := &manifestJSON{}
	typeNames := [...]string{"null", "int", "float", "bool", "string"}
	for _, name := range m.Names() {
		v, _ := m.Get(name)
		out.Variables = append(out.Variables, manifestVarJSON{
			Name:         name,
			Type:         typeNames[v.Kind],
			InitialValue: v.String(),
		})
	}
	return out
}

func logicToJSON(b *logic.Block) *logicBlockJSON {
	out := &logicBlockJSON{}
	for _, name := range b.FunctionNames() {
		f := b.Function(name)
		fj := functionJSON{Name: f.Name}
		if f.IsUniversal() {
			u := &universalJSON{Params: f.Universal.Params}
			for _, s := range f.Universal.Statements {
				u.Statements = append(u.Statements, stmtToJSON(s))
			}
			fj.Universal = u
		} else {
			for _, lang := range sortedKeys(f.Sources) {
				fj.Sources = append(fj.Sources, sourceJSON{Language: lang, Source: f.Sources[lang]})
			}
		}
		out.Functions = append(out.Functions, fj)
	}
	for _, bind := range b.Bindings() {
		out.EventBindings = append(out.EventBindings, bindingJSON{
			ComponentID: bind.ComponentID,
			EventType:   bind.Event.String(),
			HandlerName: bind.Handler,
		})
	}
	return out
}
