package codec

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/waozixyz/kir"
	"github.com/waozixyz/kir/pkg/logic"
)

// DecodeJSON parses a JSON document. It accepts the v3 "root" wrapper, the
// older "component" wrapper, and a bare component object in that order.
func DecodeJSON(data []byte) (*Document, error) {
	var wrapper struct {
		Root      *componentJSON  `json:"root"`
		Component *componentJSON  `json:"component"`
		Manifest  *manifestJSON   `json:"reactive_manifest"`
		Logic     *logicBlockJSON `json:"logic_block"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	rootJSON := wrapper.Root
	if rootJSON == nil {
		rootJSON = wrapper.Component
	}
	if rootJSON == nil {
		var bare componentJSON
		if err := json.Unmarshal(data, &bare); err != nil {
			return nil, fmt.Errorf("parsing component: %w", err)
		}
		if bare.Type == "" {
			return nil, &DecodeError{Message: "no root component"}
		}
		rootJSON = &bare
	}

	doc := &Document{Root: componentFromJSON(rootJSON)}
	if doc.Root != nil {
		doc.Root.Adopt()
		reserveIDs(doc.Root)
	}

	if wrapper.Manifest != nil {
		doc.Manifest = manifestFromJSON(wrapper.Manifest)
	}
	if wrapper.Logic != nil {
		block, err := logicFromJSON(wrapper.Logic)
		if err != nil {
			return nil, err
		}
		doc.Logic = block
	}
	return doc, nil
}

func componentFromJSON(cj *componentJSON) *kir.Component {
	if cj == nil {
		return nil
	}
	c := &kir.Component{
		ID:   cj.ID,
		Kind: kir.ParseKind(cj.Type),
		Tag:  cj.Tag,
		Text: cj.Text,
	}
	c.Data = decodeCustomData(c.Kind, cj.CustomData)
	if !cj.styleJSON.isEmpty() {
		c.Style = styleFromJSON(&cj.styleJSON)
	}
	if !cj.layoutJSON.isEmpty() {
		c.Layout = layoutFromJSON(&cj.layoutJSON)
	}
	for _, ev := range cj.Events {
		c.Events = append(c.Events, kir.Event{
			Type:    kir.ParseEventType(ev.Type),
			Handler: ev.LogicID,
			Data:    ev.HandlerData,
		})
	}
	for _, ch := range cj.Children {
		c.Children = append(c.Children, componentFromJSON(ch))
	}
	return c
}

func (s *styleJSON) isEmpty() bool {
	return s.Width == "" && s.Height == "" && s.Background == "" &&
		s.BackgroundGradient == nil && s.Border == nil && s.Position == "" &&
		s.Left == nil && s.Top == nil && s.FontSize == nil && s.FontFamily == "" &&
		s.FontWeight == nil && !s.FontBold && !s.FontItalic && s.LineHeight == nil &&
		s.Color == "" && s.TextAlign == "" && s.LetterSpacing == nil &&
		s.WordSpacing == nil && s.TextDecoration == nil && s.Padding == nil &&
		s.Margin == nil && s.Transform == nil && s.Opacity == nil &&
		s.Visible == nil && s.ZIndex == nil && s.OverflowX == "" && s.OverflowY == "" &&
		s.GridItem == nil && s.TextEffect == nil && s.BoxShadow == nil &&
		len(s.Filters) == 0 && len(s.Animations) == 0 && len(s.Transitions) == 0 &&
		len(s.Breakpoints) == 0 && s.ContainerType == "" && s.ContainerName == "" &&
		len(s.PseudoStyles) == 0
}

func (l *layoutJSON) isEmpty() bool {
	return l.Display == "" && l.MinWidth == "" && l.MinHeight == "" &&
		l.MaxWidth == "" && l.MaxHeight == "" && l.JustifyContent == "" &&
		l.AlignItems == "" && l.Gap == nil && l.FlexGrow == nil &&
		l.FlexShrink == nil && !l.FlexWrap && l.AspectRatio == nil &&
		len(l.GridColumns) == 0 && len(l.GridRows) == 0 && l.RowGap == nil &&
		l.ColumnGap == nil && l.JustifyItems == "" && l.GridAlignItems == "" &&
		l.AutoFlow == "" && l.LayoutMargin == nil && l.LayoutPadding == nil
}

// colorFromString parses flat color notation, including var(N) references.
func colorFromString(s string) kir.Color {
	if strings.HasPrefix(s, "var(") && strings.HasSuffix(s, ")") {
		idx, err := strconv.ParseUint(s[4:len(s)-1], 10, 16)
		if err != nil {
			return kir.Transparent()
		}
		return kir.VarRef(uint16(idx))
	}
	return kir.ParseColor(s)
}

func gradientFromJSON(gj *gradientJSON) *kir.Gradient {
	g := &kir.Gradient{
		Angle:   gj.Angle,
		CenterX: gj.CenterX,
		CenterY: gj.CenterY,
	}
	switch gj.Type {
	case "radial":
		g.Kind = kir.GradientRadial
	case "conic":
		g.Kind = kir.GradientConic
	}
	for _, s := range gj.Stops {
		g.AddStop(s.Position, kir.ParseColor(s.Color).RGBA)
	}
	return g
}

func edgesFromJSON(ej *edgesJSON) kir.Edges {
	if ej == nil {
		return kir.Edges{}
	}
	return kir.Edges{Top: ej.Top, Right: ej.Right, Bottom: ej.Bottom, Left: ej.Left}
}

func transformFromJSON(tj *transformJSON) kir.Transform {
	t := kir.IdentityTransform()
	if tj.Translate != nil {
		t.TranslateX = tj.Translate.X
		t.TranslateY = tj.Translate.Y
	}
	if tj.Scale != nil {
		t.ScaleX = tj.Scale.X
		t.ScaleY = tj.Scale.Y
	}
	t.Rotate = tj.Rotate
	return t
}

func parseNamed(names []string, s string, fallback uint8) uint8 {
	for i, n := range names {
		if n == s {
			return uint8(i)
		}
	}
	return fallback
}

func styleFromJSON(sj *styleJSON) *kir.Style {
	s := kir.NewStyle()

	s.Width = kir.ParseDimension(sj.Width)
	s.Height = kir.ParseDimension(sj.Height)

	if sj.BackgroundGradient != nil {
		s.Background = kir.GradientColor(gradientFromJSON(sj.BackgroundGradient))
	} else if sj.Background != "" {
		s.Background = colorFromString(sj.Background)
	}

	if sj.Border != nil {
		s.Border = kir.Border{
			Width:  sj.Border.Width,
			Radius: sj.Border.Radius,
			Color:  colorFromString(sj.Border.Color),
		}
	}

	switch sj.Position {
	case "absolute":
		s.Position = kir.PositionAbsolute
	case "fixed":
		s.Position = kir.PositionFixed
	}
	if sj.Left != nil {
		s.AbsoluteX = *sj.Left
	}
	if sj.Top != nil {
		s.AbsoluteY = *sj.Top
	}

	if sj.FontSize != nil {
		s.Font.Size = *sj.FontSize
	}
	s.Font.Family = sj.FontFamily
	if sj.FontWeight != nil {
		s.Font.Weight = *sj.FontWeight
	}
	s.Font.Bold = sj.FontBold
	s.Font.Italic = sj.FontItalic
	if sj.LineHeight != nil {
		s.Font.LineHeight = *sj.LineHeight
	}
	if sj.Color != "" {
		s.Font.Color = colorFromString(sj.Color)
	}
	if sj.TextAlign != "" {
		s.Font.Align = kir.TextAlign(parseNamed(textAlignJSONNames[:], sj.TextAlign, 0))
	}
	if sj.LetterSpacing != nil {
		s.Font.LetterSpacing = *sj.LetterSpacing
	}
	if sj.WordSpacing != nil {
		s.Font.WordSpacing = *sj.WordSpacing
	}
	if sj.TextDecoration != nil {
		s.Font.Decoration = *sj.TextDecoration
	}

	s.Padding = edgesFromJSON(sj.Padding)
	s.Margin = edgesFromJSON(sj.Margin)

	if sj.Transform != nil {
		s.Transform = transformFromJSON(sj.Transform)
	}

	if sj.Opacity != nil {
		s.Opacity = *sj.Opacity
	}
	if sj.Visible != nil {
		s.Visible = *sj.Visible
	}
	if sj.ZIndex != nil {
		s.ZIndex = *sj.ZIndex
	}
	if sj.OverflowX != "" {
		s.OverflowX = kir.Overflow(parseNamed(overflowNames[:], sj.OverflowX, 0))
	}
	if sj.OverflowY != "" {
		s.OverflowY = kir.Overflow(parseNamed(overflowNames[:], sj.OverflowY, 0))
	}

	if sj.GridItem != nil {
		s.GridItem = kir.GridItemPlacement{
			RowStart:    sj.GridItem.RowStart,
			RowEnd:      sj.GridItem.RowEnd,
			ColumnStart: sj.GridItem.ColumnStart,
			ColumnEnd:   sj.GridItem.ColumnEnd,
			JustifySelf: parseAlignment(sj.GridItem.JustifySelf),
			AlignSelf:   parseAlignment(sj.GridItem.AlignSelf),
		}
	}

	if sj.TextEffect != nil {
		s.TextEffect = textEffectFromJSON(sj.TextEffect)
	}

	if sj.BoxShadow != nil {
		s.BoxShadow = kir.BoxShadow{
			OffsetX:      sj.BoxShadow.OffsetX,
			OffsetY:      sj.BoxShadow.OffsetY,
			BlurRadius:   sj.BoxShadow.Blur,
			SpreadRadius: sj.BoxShadow.Spread,
			Color:        colorFromString(sj.BoxShadow.Color),
			Inset:        sj.BoxShadow.Inset,
			Enabled:      true,
		}
	}

	for _, f := range sj.Filters {
		s.Filters = append(s.Filters, kir.Filter{
			Kind:  kir.FilterKind(parseNamed(filterNames[:], f.Type, 0)),
			Value: f.Value,
		})
	}
	for i := range sj.Animations {
		s.Animations = append(s.Animations, animFromJSON(&sj.Animations[i]))
	}
	for _, t := range sj.Transitions {
		s.Transitions = append(s.Transitions, &kir.Transition{
			Property:     kir.AnimProperty(parseNamed(animPropNames[:], t.Property, 0)),
			Duration:     t.Duration,
			Delay:        t.Delay,
			Easing:       kir.Easing(parseNamed(easingNames[:], t.Easing, 0)),
			TriggerState: kir.PseudoState(t.Trigger),
		})
	}
	for i := range sj.Breakpoints {
		s.Breakpoints = append(s.Breakpoints, bpFromJSON(&sj.Breakpoints[i]))
	}

	switch sj.ContainerType {
	case "inline-size":
		s.ContainerType = kir.ContainerInlineSize
	case "size":
		s.ContainerType = kir.ContainerSize
	}
	s.ContainerName = sj.ContainerName

	for _, pj := range sj.PseudoStyles {
		ps := kir.PseudoStyle{State: kir.PseudoState(pj.State)}
		if pj.Background != "" {
			ps.Background = colorFromString(pj.Background)
			ps.HasBackground = true
		}
		if pj.Color != "" {
			ps.TextColor = colorFromString(pj.Color)
			ps.HasTextColor = true
		}
		if pj.BorderColor != "" {
			ps.BorderColor = colorFromString(pj.BorderColor)
			ps.HasBorderColor = true
		}
		if pj.Opacity != nil {
			ps.Opacity = *pj.Opacity
			ps.HasOpacity = true
		}
		if pj.Transform != nil {
			ps.Transform = transformFromJSON(pj.Transform)
			ps.HasTransform = true
		}
		s.PseudoStyles = append(s.PseudoStyles, ps)
	}

	return s
}

func textEffectFromJSON(tj *textEffJSON) kir.TextEffect {
	t := kir.TextEffect{
		FadeLength: tj.FadeLength,
		MaxWidth:   kir.ParseDimension(tj.MaxWidth),
		Language:   tj.Language,
	}
	if tj.Overflow != "" {
		t.Overflow = kir.Overflow(parseNamed(overflowNames[:], tj.Overflow, 0))
	}
	switch tj.Fade {
	case "right":
		t.Fade = kir.FadeRight
	case "bottom":
		t.Fade = kir.FadeBottom
	}
	if tj.Shadow != nil {
		t.Shadow = kir.TextShadow{
			OffsetX:    tj.Shadow.OffsetX,
			OffsetY:    tj.Shadow.OffsetY,
			BlurRadius: tj.Shadow.Blur,
			Color:      colorFromString(tj.Shadow.Color),
			Enabled:    true,
		}
	}
	switch tj.Direction {
	case "ltr":
		t.Direction = kir.TextDirLTR
	case "rtl":
		t.Direction = kir.TextDirRTL
	}
	return t
}

func animFromJSON(aj *animJSON) *kir.Animation {
	a := &kir.Animation{
		Name:       aj.Name,
		Duration:   aj.Duration,
		Delay:      aj.Delay,
		Iterations: aj.Iterations,
		Alternate:  aj.Alternate,
		Easing:     kir.Easing(parseNamed(easingNames[:], aj.Easing, 0)),
	}
	for _, kj := range aj.Keyframes {
		k := kir.Keyframe{
			Offset: kj.Offset,
			Easing: kir.Easing(parseNamed(easingNames[:], kj.Easing, 0)),
		}
		for _, pj := range kj.Properties {
			k.Properties = append(k.Properties, kir.KeyframeProp{
				Property: kir.AnimProperty(parseNamed(animPropNames[:], pj.Property, 0)),
				Value:    pj.Value,
				Color:    colorFromString(pj.Color),
				Set:      true,
			})
		}
		a.Keyframes = append(a.Keyframes, k)
	}
	return a
}

func bpFromJSON(bj *bpJSON) kir.Breakpoint {
	b := kir.Breakpoint{
		Width:   kir.ParseDimension(bj.Width),
		Height:  kir.ParseDimension(bj.Height),
		Visible: bj.Visible,
		Opacity: bj.Opacity,
	}
	for _, c := range bj.Conditions {
		b.Conditions = append(b.Conditions, kir.QueryCondition{
			Kind:  kir.QueryKind(parseNamed(queryNames[:], c.Query, 0)),
			Value: c.Value,
		})
	}
	if bj.Display != "" {
		b.LayoutMode = kir.LayoutMode(parseNamed(displayNames[:], bj.Display, 0))
		b.HasLayout = true
	}
	return b
}

func layoutFromJSON(lj *layoutJSON) *kir.LayoutConfig {
	l := kir.NewLayoutConfig()

	if lj.Display != "" {
		l.Mode = kir.LayoutMode(parseNamed(displayNames[:], lj.Display, 0))
	}
	l.MinWidth = kir.ParseDimension(lj.MinWidth)
	l.MinHeight = kir.ParseDimension(lj.MinHeight)
	l.MaxWidth = kir.ParseDimension(lj.MaxWidth)
	l.MaxHeight = kir.ParseDimension(lj.MaxHeight)

	if lj.JustifyContent != "" {
		l.Flex.Justify = parseAlignment(lj.JustifyContent)
	}
	if lj.AlignItems != "" {
		l.Flex.Align = parseAlignment(lj.AlignItems)
	}
	if lj.Gap != nil {
		l.Flex.Gap = *lj.Gap
	}
	if lj.FlexGrow != nil {
		l.Flex.Grow = *lj.FlexGrow
	}
	if lj.FlexShrink != nil {
		l.Flex.Shrink = *lj.FlexShrink
	}
	l.Flex.Wrap = lj.FlexWrap
	if lj.AspectRatio != nil {
		l.AspectRatio = *lj.AspectRatio
	}

	for _, t := range lj.GridColumns {
		l.Grid.Columns = append(l.Grid.Columns, trackFromJSON(t))
	}
	for _, t := range lj.GridRows {
		l.Grid.Rows = append(l.Grid.Rows, trackFromJSON(t))
	}
	if lj.RowGap != nil {
		l.Grid.RowGap = *lj.RowGap
	}
	if lj.ColumnGap != nil {
		l.Grid.ColumnGap = *lj.ColumnGap
	}
	if lj.JustifyItems != "" {
		l.Grid.JustifyItems = parseAlignment(lj.JustifyItems)
	}
	if lj.GridAlignItems != "" {
		l.Grid.AlignItems = parseAlignment(lj.GridAlignItems)
	}
	switch lj.AutoFlow {
	case "row":
		l.Grid.AutoFlowRow = true
	case "row dense":
		l.Grid.AutoFlowRow = true
		l.Grid.AutoFlowDense = true
	case "column dense":
		l.Grid.AutoFlowDense = true
	}

	l.Margin = edgesFromJSON(lj.LayoutMargin)
	l.Padding = edgesFromJSON(lj.LayoutPadding)
	return l
}

func trackFromJSON(tj trackJSON) kir.GridTrack {
	return kir.GridTrack{
		Kind:  kir.TrackKind(parseNamed(trackKindNames[:], tj.Type, 0)),
		Value: tj.Value,
	}
}

func manifestFromJSON(mj *manifestJSON) *logic.Manifest {
	m := logic.NewManifest()
	for _, v := range mj.Variables {
		m.Set(v.Name, manifestValue(v.Type, v.InitialValue))
	}
	return m
}

func manifestValue(typ, raw string) logic.Value {
	switch typ {
	case "int":
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return logic.IntValue(v)
		}
		return logic.IntValue(0)
	case "float":
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return logic.FloatValue(v)
		}
		return logic.FloatValue(0)
	case "bool":
		v, _ := strconv.ParseBool(raw)
		return logic.BoolValue(v)
	case "string":
		if s, err := strconv.Unquote(raw); err == nil {
			return logic.StringValue(s)
		}
		return logic.StringValue(raw)
	default:
		return logic.NullValue()
	}
}

func logicFromJSON(lj *logicBlockJSON) (*logic.Block, error) {
	b := logic.NewBlock()
	for _, fj := range lj.Functions {
		f := &logic.Function{Name: fj.Name}
		if fj.Universal != nil {
			stmts, err := stmtsFromJSON(fj.Universal.Statements)
			if err != nil {
				return nil, fmt.Errorf("function %q: %w", fj.Name, err)
			}
			f.Universal = &logic.UniversalBody{Params: fj.Universal.Params, Statements: stmts}
		} else {
			f.Sources = make(map[string]string, len(fj.Sources))
			for _, src := range fj.Sources {
				f.Sources[src.Language] = src.Source
			}
		}
		b.AddFunction(f)
	}
	for _, bind := range lj.EventBindings {
		b.Bind(bind.ComponentID, kir.ParseEventType(bind.EventType), bind.HandlerName)
	}
	return b, nil
}
