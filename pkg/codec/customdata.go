package codec

import (
	"encoding/json"

	"github.com/waozixyz/kir"
)

// Custom data travels as a JSON string payload inside both wire formats.
// The concrete shape is keyed by the component kind, so decoding dispatches
// on the kind rather than on the payload itself.

type headingJSON struct {
	Level  int    `json:"level"`
	Anchor string `json:"id_attr,omitempty"`
}

type listJSON struct {
	Ordered bool `json:"ordered"`
	Start   int  `json:"start,omitempty"`
	Tight   bool `json:"tight,omitempty"`
}

type listItemJSON struct {
	Number  int    `json:"number,omitempty"`
	Marker  string `json:"marker,omitempty"`
	Task    bool   `json:"task,omitempty"`
	Checked bool   `json:"checked,omitempty"`
}

type blockquoteJSON struct {
	Depth int `json:"depth,omitempty"`
}

type codeBlockJSON struct {
	Language    string `json:"language,omitempty"`
	LineNumbers bool   `json:"showLineNumbers,omitempty"`
	StartLine   int    `json:"startLine,omitempty"`
}

type linkJSON struct {
	Href   string `json:"url"`
	Title  string `json:"title,omitempty"`
	Target string `json:"target,omitempty"`
	Rel    string `json:"rel,omitempty"`
}

type tableCellJSON struct {
	ColSpan int    `json:"colspan,omitempty"`
	RowSpan int    `json:"rowspan,omitempty"`
	Align   string `json:"alignment,omitempty"`
}

type dropdownJSON struct {
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
	Selected    int      `json:"selectedIndex"`
}

type modalJSON struct {
	Open     bool   `json:"isOpen"`
	Title    string `json:"title,omitempty"`
	Backdrop string `json:"backdrop,omitempty"`
}

type tabJSON struct {
	Title    string `json:"title,omitempty"`
	Selected int    `json:"selectedIndex,omitempty"`
}

var alignNames = map[kir.TextAlign]string{
	kir.TextAlignLeft:    "left",
	kir.TextAlignCenter:  "center",
	kir.TextAlignRight:   "right",
	kir.TextAlignJustify: "justify",
}

func parseAlign(s string) kir.TextAlign {
	for a, n := range alignNames {
		if n == s {
			return a
		}
	}
	return kir.TextAlignLeft
}

// encodeCustomData renders typed custom data as its JSON payload string.
// Nil data encodes as the empty string.
func encodeCustomData(d kir.CustomData) string {
	if d == nil {
		return ""
	}
	var v any
	switch t := d.(type) {
	case *kir.HeadingData:
		v = headingJSON{Level: t.Level, Anchor: t.Anchor}
	case *kir.ListData:
		v = listJSON{Ordered: t.Ordered, Start: t.Start, Tight: t.Tight}
	case *kir.ListItemData:
		v = listItemJSON{Number: t.Number, Marker: t.Marker, Task: t.Task, Checked: t.Checked}
	case *kir.BlockquoteData:
		v = blockquoteJSON{Depth: t.Depth}
	case *kir.CodeBlockData:
		v = codeBlockJSON{Language: t.Language, LineNumbers: t.LineNumbers, StartLine: t.StartLine}
	case *kir.LinkData:
		v = linkJSON{Href: t.Href, Title: t.Title, Target: t.Target, Rel: t.Rel}
	case *kir.TableCellData:
		v = tableCellJSON{ColSpan: t.ColSpan, RowSpan: t.RowSpan, Align: alignNames[t.Align]}
	case *kir.DropdownData:
		v = dropdownJSON{Placeholder: t.Placeholder, Options: t.Options, Selected: t.Selected}
	case *kir.ModalData:
		v = modalJSON{Open: t.Open, Title: t.Title, Backdrop: t.Backdrop.String()}
	case *kir.TabData:
		v = tabJSON{Title: t.Title, Selected: t.Selected}
	default:
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// decodeCustomData parses the payload string for the given component kind.
// Unparseable payloads decode as nil data rather than failing.
func decodeCustomData(kind kir.Kind, payload string) kir.CustomData {
	if payload == "" {
		return nil
	}
	data := []byte(payload)
	switch kind {
	case kir.KindHeading:
		var v headingJSON
		if json.Unmarshal(data, &v) == nil {
			return &kir.HeadingData{Level: v.Level, Anchor: v.Anchor}
		}
	case kir.KindList:
		var v listJSON
		if json.Unmarshal(data, &v) == nil {
			return &kir.ListData{Ordered: v.Ordered, Start: v.Start, Tight: v.Tight}
		}
	case kir.KindListItem:
		var v listItemJSON
		if json.Unmarshal(data, &v) == nil {
			return &kir.ListItemData{Number: v.Number, Marker: v.Marker, Task: v.Task, Checked: v.Checked}
		}
	case kir.KindBlockquote:
		var v blockquoteJSON
		if json.Unmarshal(data, &v) == nil {
			return &kir.BlockquoteData{Depth: v.Depth}
		}
	case kir.KindCodeBlock:
		var v codeBlockJSON
		if json.Unmarshal(data, &v) == nil {
			return &kir.CodeBlockData{Language: v.Language, LineNumbers: v.LineNumbers, StartLine: v.StartLine}
		}
	case kir.KindLink:
		var v linkJSON
		if json.Unmarshal(data, &v) == nil {
			return &kir.LinkData{Href: v.Href, Title: v.Title, Target: v.Target, Rel: v.Rel}
		}
	case kir.KindTableCell, kir.KindTableHeaderCell:
		var v tableCellJSON
		if json.Unmarshal(data, &v) == nil {
			return &kir.TableCellData{ColSpan: v.ColSpan, RowSpan: v.RowSpan, Align: parseAlign(v.Align)}
		}
	case kir.KindDropdown:
		var v dropdownJSON
		if json.Unmarshal(data, &v) == nil {
			return &kir.DropdownData{Placeholder: v.Placeholder, Options: v.Options, Selected: v.Selected}
		}
	case kir.KindModal:
		var v modalJSON
		if json.Unmarshal(data, &v) == nil {
			return &kir.ModalData{Open: v.Open, Title: v.Title, Backdrop: kir.ParseColor(v.Backdrop)}
		}
	case kir.KindTab, kir.KindTabGroup:
		var v tabJSON
		if json.Unmarshal(data, &v) == nil {
			return &kir.TabData{Title: v.Title, Selected: v.Selected}
		}
	}
	return nil
}
