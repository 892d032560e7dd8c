package kir

// Kind identifies what a Component is. It selects layout behavior (Row and
// Column fix the flex direction), rendering, and the shape of the component's
// custom data.
type Kind uint8

const (
	KindContainer Kind = iota
	KindRow
	KindColumn
	KindCenter
	KindText
	KindButton
	KindInput
	KindCheckbox
	KindImage
	KindCanvas
	KindDropdown
	KindModal
	KindMarkdown
	KindTabGroup
	KindTabBar
	KindTab
	KindTabContent
	KindTabPanel
	KindTable
	KindTableHead
	KindTableBody
	KindTableFoot
	KindTableRow
	KindTableCell
	KindTableHeaderCell
	KindHeading
	KindParagraph
	KindBlockquote
	KindCodeBlock
	KindHorizontalRule
	KindList
	KindListItem
	KindLink
	KindSpan
	KindStrong
	KindEm
	KindCodeInline
	KindSmall
	KindMark
	KindCustom

	kindCount
)

var kindNames = [...]string{
	KindContainer:       "Container",
	KindRow:             "Row",
	KindColumn:          "Column",
	KindCenter:          "Center",
	KindText:            "Text",
	KindButton:          "Button",
	KindInput:           "Input",
	KindCheckbox:        "Checkbox",
	KindImage:           "Image",
	KindCanvas:          "Canvas",
	KindDropdown:        "Dropdown",
	KindModal:           "Modal",
	KindMarkdown:        "Markdown",
	KindTabGroup:        "TabGroup",
	KindTabBar:          "TabBar",
	KindTab:             "Tab",
	KindTabContent:      "TabContent",
	KindTabPanel:        "TabPanel",
	KindTable:           "Table",
	KindTableHead:       "TableHead",
	KindTableBody:       "TableBody",
	KindTableFoot:       "TableFoot",
	KindTableRow:        "TableRow",
	KindTableCell:       "TableCell",
	KindTableHeaderCell: "TableHeaderCell",
	KindHeading:         "Heading",
	KindParagraph:       "Paragraph",
	KindBlockquote:      "Blockquote",
	KindCodeBlock:       "CodeBlock",
	KindHorizontalRule:  "HorizontalRule",
	KindList:            "List",
	KindListItem:        "ListItem",
	KindLink:            "Link",
	KindSpan:            "Span",
	KindStrong:          "Strong",
	KindEm:              "Em",
	KindCodeInline:      "CodeInline",
	KindSmall:           "Small",
	KindMark:            "Mark",
	KindCustom:          "Custom",
}

// String returns the canonical CamelCase name used in the KIR JSON format.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Container"
}

// ParseKind maps a KIR type name back to a Kind. "Body" is accepted as an
// alias for Container; unknown names decode as Container so that malformed
// documents still produce a renderable tree.
func ParseKind(name string) Kind {
	if name == "Body" {
		return KindContainer
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k)
		}
	}
	return KindContainer
}

// IsTextual reports whether the component's primary content is its text.
func (k Kind) IsTextual() bool {
	switch k {
	case KindText, KindButton, KindHeading, KindParagraph, KindLink,
		KindSpan, KindStrong, KindEm, KindCodeInline, KindSmall, KindMark:
		return true
	}
	return false
}

// IsInline reports whether the component participates in inline rich-text
// flow rather than block layout.
func (k Kind) IsInline() bool {
	switch k {
	case KindSpan, KindStrong, KindEm, KindCodeInline, KindSmall, KindMark, KindLink:
		return true
	}
	return false
}
